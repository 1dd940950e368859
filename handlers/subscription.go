package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ethuang3393/MyVibeSaaS/db"
	"github.com/ethuang3393/MyVibeSaaS/services"
)

// ShowSubscription renders the tier-selection view.
func ShowSubscription(c *gin.Context) {
	c.HTML(http.StatusOK, "subscription.html", gin.H{
		"Title":       "Choose your plan",
		"UserName":    c.GetString("userName"),
		"CurrentTier": c.GetString("tier"),
		"Flash":       takeFlash(c),
	})
}

// SelectTier persists the chosen tier and forwards to the to-do
// dashboard. There is no payment step; picking a paid plan just records
// it. Values outside the three plans are ignored, leaving the prior
// tier.
func SelectTier(c *gin.Context) {
	selected := c.PostForm("tier")

	if services.IsValidTier(selected) {
		userID := c.GetString("userID")
		if db.UpdateUserTier(userID, selected) {
			// Session caches the tier, so reissue the cookie
			session := Session{
				UserID:   userID,
				UserName: c.GetString("userName"),
				Tier:     selected,
			}
			if err := IssueSession(c, session); err == nil {
				setFlash(c, "You are now on the "+capitalize(selected)+" plan!")
			}
		} else {
			setFlash(c, "Could not update your plan. Please try again.")
		}
	}

	c.Redirect(http.StatusFound, "/todo")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
