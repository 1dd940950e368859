package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ethuang3393/MyVibeSaaS/db"
	"github.com/ethuang3393/MyVibeSaaS/services"
)

// TodoDashboard renders the user's lists with their tasks.
func TodoDashboard(c *gin.Context) {
	lists := db.GetUserListsWithTasks(c.GetString("userID"))

	c.HTML(http.StatusOK, "todo.html", gin.H{
		"Title":     "To-Do",
		"UserName":  c.GetString("userName"),
		"Tier":      c.GetString("tier"),
		"ActiveTab": "todo",
		"Lists":     lists,
		"Flash":     takeFlash(c),
	})
}

// CreateList asks the model for a 5-step breakdown of the title and
// persists the list with its tasks in one batch. The breakdown degrades
// to a canned one when the model is unavailable, so this route never
// blocks on AI health.
func CreateList(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("list_title"))
	if title == "" {
		setFlash(c, "List title is required")
		c.Redirect(http.StatusFound, "/todo")
		return
	}

	subtasks := services.GenerateSubtasks(title)

	listID := uuid.NewString()
	tasks := make([]db.TaskInput, 0, len(subtasks))
	for _, desc := range subtasks {
		tasks = append(tasks, db.TaskInput{ID: uuid.NewString(), Description: desc})
	}

	if !db.SaveListAndTasks(c.GetString("userID"), listID, title, tasks) {
		setFlash(c, "Could not save the list. Please try again.")
	}
	c.Redirect(http.StatusFound, "/todo")
}

func RemoveList(c *gin.Context) {
	if !db.DeleteList(c.Param("id")) {
		setFlash(c, "Could not delete the list.")
	}
	c.Redirect(http.StatusFound, "/todo")
}

func RemoveTask(c *gin.Context) {
	if !db.DeleteTask(c.Param("id")) {
		setFlash(c, "Could not delete the task.")
	}
	c.Redirect(http.StatusFound, "/todo")
}

func ToggleTask(c *gin.Context) {
	isCompleted := c.PostForm("is_completed") == "true"
	if !db.ToggleTaskStatus(c.Param("id"), isCompleted) {
		setFlash(c, "Could not update the task.")
	}
	c.Redirect(http.StatusFound, "/todo")
}
