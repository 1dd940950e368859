package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ethuang3393/MyVibeSaaS/db"
	"github.com/ethuang3393/MyVibeSaaS/services"
)

// StashDashboard renders the user's stashed URLs.
func StashDashboard(c *gin.Context) {
	stashes := db.GetUserStashes(c.GetString("userID"))

	c.HTML(http.StatusOK, "stash.html", gin.H{
		"Title":     "Stash",
		"UserName":  c.GetString("userName"),
		"Tier":      c.GetString("tier"),
		"ActiveTab": "stash",
		"Stashes":   stashes,
		"Flash":     takeFlash(c),
	})
}

// StashURL fetches and summarizes the submitted page, then persists the
// stash. Fetch and model failures land as canned summary/tag values
// rather than blocking the save.
func StashURL(c *gin.Context) {
	url := strings.TrimSpace(c.PostForm("url_link"))
	if url == "" {
		setFlash(c, "URL is required")
		c.Redirect(http.StatusFound, "/stash")
		return
	}

	result := services.SummarizeContent(url)

	if !db.SaveStash(uuid.NewString(), c.GetString("userID"), url, result.Summary, result.Tags) {
		setFlash(c, "Could not save the stash. Please try again.")
	}
	c.Redirect(http.StatusFound, "/stash")
}

func RemoveStash(c *gin.Context) {
	if !db.DeleteStash(c.Param("id")) {
		setFlash(c, "Could not delete the stash.")
	}
	c.Redirect(http.StatusFound, "/stash")
}
