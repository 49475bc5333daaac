package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"go-jobpost-extraction/internal/config"
	"go-jobpost-extraction/internal/database"
	"go-jobpost-extraction/internal/extractor"
	"go-jobpost-extraction/internal/extractor/browser"
	"go-jobpost-extraction/internal/extractor/scrape"
	"go-jobpost-extraction/internal/extractor/snapshot"
	"go-jobpost-extraction/internal/llm"
	"go-jobpost-extraction/internal/reporter"
)

type extractRequest struct {
	URL string `json:"url" binding:"required"`
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}
	cfg := config.Load(configPath)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	//optional collaborators: persistence and notifications
	var repo *database.Repository
	if cfg.DatabaseURL != "" {
		var err error
		repo, err = database.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Failed to connect to database: %v", err)
		}
		defer repo.Close()
		log.Println("🗄️ Database connected.")
	}

	var tg *reporter.TelegramReporter
	if cfg.TelegramToken != "" {
		var err error
		tg, err = reporter.NewTelegramReporter(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("❌ Failed to init Telegram reporter: %v", err)
		}
		log.Println("🤖 Telegram reporter initialized.")
	}

	client := llm.NewGroqClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqVisionModel, nil)
	pipeline := extractor.NewPipeline(
		scrape.New(scrape.NewFirecrawlClient(cfg.FirecrawlEndpoint, cfg.FirecrawlAPIKey, nil), client),
		browser.New(browser.NewPlaywrightRenderer(cfg.NavigationTimeout)),
		snapshot.New(snapshot.NewScreenshotClient(cfg.ScreenshotEndpoint, cfg.ScreenshotAPIKey, nil), client, nil),
	)

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Job Posting Extraction API is running!",
			"status":  "healthy",
		})
	})

	r.POST("/api/extract", func(c *gin.Context) {
		var req extractRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
			return
		}

		job, err := pipeline.Extract(c.Request.Context(), req.URL)
		if err != nil {
			if tg != nil {
				if sendErr := tg.SendError(req.URL, err); sendErr != nil {
					log.Printf("⚠️ Failed to send error to Telegram: %v", sendErr)
				}
			}
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		if repo != nil {
			if _, err := repo.SaveJobPosting(c.Request.Context(), job); err != nil {
				log.Printf("⚠️ Failed to save job posting: %v", err)
			}
		}
		if tg != nil {
			if err := tg.SendExtraction(job); err != nil {
				log.Printf("⚠️ Failed to send job to Telegram: %v", err)
			}
		}

		c.JSON(http.StatusOK, job)
	})

	r.GET("/api/jobs", func(c *gin.Context) {
		if repo == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
			return
		}
		url := c.Query("url")
		if url == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
			return
		}
		job, err := repo.GetJobPostingByURL(c.Request.Context(), url)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, job)
	})

	log.Printf("Server listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
