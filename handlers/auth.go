package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ethuang3393/MyVibeSaaS/db"
	"github.com/ethuang3393/MyVibeSaaS/services"
)

// Index is the anonymous entry point: the login form, or a bounce to the
// tier check when a session already exists.
func Index(c *gin.Context) {
	if sessionFromCookie(c) != nil {
		c.Redirect(http.StatusFound, "/check_redirect")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Login",
		"Flash": takeFlash(c),
	})
}

// Login upserts a user by name and establishes the session. First login
// with a new name creates the user on the free tier.
func Login(c *gin.Context) {
	userName := strings.TrimSpace(c.PostForm("user_name"))
	if userName == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var session Session
	if user := db.GetUserByName(userName); user != nil {
		tier := user.Tier
		if !services.IsValidTier(tier) {
			tier = services.TierFree // Handle legacy users
		}
		session = Session{UserID: user.ID, UserName: user.Name, Tier: tier}
	} else {
		newID := uuid.NewString()
		if !db.CreateUser(newID, userName) {
			setFlash(c, "Error creating user")
			c.Redirect(http.StatusFound, "/")
			return
		}
		session = Session{UserID: newID, UserName: userName, Tier: services.TierFree}

		// Fire-and-forget signup notice
		go services.SendWelcomeEmail(userName)
	}

	if err := IssueSession(c, session); err != nil {
		setFlash(c, "Error creating session")
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.Redirect(http.StatusFound, "/check_redirect")
}

// CheckRedirect dispatches on tier: free users see the subscription page
// first, everyone else lands on the to-do dashboard.
func CheckRedirect(c *gin.Context) {
	tier := c.GetString("tier")
	if tier == services.TierFree {
		c.Redirect(http.StatusFound, "/subscription")
		return
	}
	c.Redirect(http.StatusFound, "/todo")
}

// Logout clears all session state unconditionally.
func Logout(c *gin.Context) {
	clearSession(c)
	c.Redirect(http.StatusFound, "/")
}
