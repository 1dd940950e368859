package handlers

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ethuang3393/MyVibeSaaS/services"
)

const (
	sessionCookieName = "vibesaas_jwt"
	flashCookieName   = "vibesaas_flash"

	sessionMaxAge = 3600 * 24 * 7
)

func sessionSecret() []byte {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("myvibesaas_secret_key")
}

// Session is the identity carried by the signed cookie.
type Session struct {
	UserID   string
	UserName string
	Tier     string
}

func generateSessionToken(s Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   s.UserID,
		"user_name": s.UserName,
		"tier":      s.Tier,
		"exp":       time.Now().Add(time.Hour * 24 * 7).Unix(),
	})
	return token.SignedString(sessionSecret())
}

// ParseSessionToken validates a session cookie value and returns the
// identity it carries. An off-enum tier claim is normalized to free so
// nothing outside the three plans ever reaches a handler.
func ParseSessionToken(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return sessionSecret(), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	s := Session{}
	s.UserID, _ = claims["user_id"].(string)
	s.UserName, _ = claims["user_name"].(string)
	s.Tier, _ = claims["tier"].(string)
	if s.UserID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if !services.IsValidTier(s.Tier) {
		s.Tier = services.TierFree
	}
	return &s, nil
}

// IssueSession signs the identity into the session cookie.
func IssueSession(c *gin.Context, s Session) error {
	token, err := generateSessionToken(s)
	if err != nil {
		return err
	}
	c.SetCookie(sessionCookieName, token, sessionMaxAge, "/", "", false, true) // HttpOnly=true, Secure=false (dev)
	return nil
}

func clearSession(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}

func sessionFromCookie(c *gin.Context) *Session {
	tokenString, err := c.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}
	s, err := ParseSessionToken(tokenString)
	if err != nil {
		return nil
	}
	return s
}

// setFlash stores a one-shot notice shown by the next rendered view.
// Stands in for server-side flash messages; the cookie is cleared on
// read.
func setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookieName, message, 60, "/", "", false, true)
}

func takeFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookieName)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	return message
}
