package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ethuang3393/MyVibeSaaS/config"
	"github.com/ethuang3393/MyVibeSaaS/db"
	"github.com/ethuang3393/MyVibeSaaS/handlers"
	"github.com/ethuang3393/MyVibeSaaS/middleware"
	"github.com/ethuang3393/MyVibeSaaS/services"
)

func runMigrations() {
	sqlBytes, err := os.ReadFile("schema.sql")
	if err != nil {
		log.Fatal("Failed to read schema.sql:", err)
	}

	if _, err := db.GetDB().Exec(string(sqlBytes)); err != nil {
		log.Fatal("Failed to apply schema:", err)
	}
	log.Println("Database schema verified")
}

func setupRouter() *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	// Anonymous entry points
	r.GET("/", handlers.Index)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// Everything else needs a session
	authed := r.Group("", middleware.AuthRequired())
	{
		authed.GET("/check_redirect", handlers.CheckRedirect)
		authed.GET("/subscription", handlers.ShowSubscription)
		authed.POST("/subscription", handlers.SelectTier)

		authed.GET("/todo", handlers.TodoDashboard)
		authed.POST("/create_list", handlers.CreateList)
		authed.POST("/delete_list/:id", handlers.RemoveList)
		authed.POST("/delete_task/:id", handlers.RemoveTask)
		authed.POST("/toggle_task/:id", handlers.ToggleTask)

		authed.GET("/stash", handlers.StashDashboard)
		authed.POST("/stash_url", handlers.StashURL)
		authed.POST("/delete_stash/:id", handlers.RemoveStash)
	}

	return r
}

func main() {
	cfg := config.Load()

	if err := db.InitDB(cfg.DSN()); err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	runMigrations()

	services.ConfigureGemini(cfg.GeminiAPIKey, cfg.GeminiBaseURL)
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set; AI features will use fallback output")
	}

	r := setupRouter()

	fmt.Println("Server starting on port " + cfg.Port)
	r.Run(":" + cfg.Port)
}
