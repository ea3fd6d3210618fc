package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "investormatch/docs"
	"investormatch/pkg/cache"
	"investormatch/pkg/chat"
	"investormatch/pkg/classify"
	"investormatch/pkg/db"
	"investormatch/pkg/investors"
	"investormatch/pkg/match"
	"investormatch/pkg/sendemail"
)

const version = "1.0.0"

// @title           Investor Matching API
// @version         1.0
// @description     REST API matching startup founders to investor profiles

// @BasePath  /

// @schemes   http https

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()

	// Message log store. Unreachable Postgres only disables the message
	// endpoints; matching keeps working.
	var msgStore chat.MessageStore
	pool, err := db.Connect(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Printf("message store unavailable: %v", err)
	} else {
		defer pool.Close()
		msgStore = chat.NewPostgresMessageStore(pool)
	}

	// Response cache. A missing or unreachable Redis means every match is
	// computed fresh.
	var responseCache match.ResponseCache
	if host := os.Getenv("REDIS_HOST"); host != "" {
		redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
		client, err := cache.Connect(ctx, cache.Config{
			Host:     host,
			Port:     os.Getenv("REDIS_PORT"),
			DB:       redisDB,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err != nil {
			log.Printf("cache unavailable, matching runs uncached: %v", err)
		} else {
			defer client.Close()
			responseCache = client
		}
	}

	// Classification collaborator.
	var generator classify.Generator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		geminiClient, err := classify.NewGeminiClient(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("classification service unavailable: %v", err)
		} else {
			generator = geminiClient
		}
	}

	catalog := investors.Load(ctx, catalogSource())
	log.Printf("investor catalog loaded: %d investors", catalog.Len())

	emailService := sendemail.NewEmailService(
		os.Getenv("SENDGRID_API_KEY"),
		os.Getenv("SENDGRID_SENDER_EMAIL"),
		os.Getenv("SENDGRID_SENDER_NAME"),
	)

	investorsService := investors.NewInvestorService(catalog, emailService)
	investorsHandler := investors.NewInvestorHandler(investorsService)

	matchService := match.NewMatchService(catalog, responseCache)
	matchHandler := match.NewMatchHandler(matchService)

	classifyService := classify.NewClassifyService(generator)
	classifyHandler := classify.NewClassifyHandler(classifyService)

	chatManager := chat.NewConnectionManager()
	chatHandler := chat.NewHandler(chatManager)
	if msgStore != nil {
		chatHandler.SetStore(msgStore)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(corsConfig()))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "running",
			"message": "Startup Investor Matching API",
			"version": version,
		})
	})

	investorsHandler.RegisterRoutes(router)
	matchHandler.RegisterRoutes(router)
	classifyHandler.RegisterRoutes(router)
	chatHandler.RegisterRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		certFile := os.Getenv("TLS_CERT_PATH")
		keyFile := os.Getenv("TLS_KEY_PATH")
		if certFile != "" && keyFile != "" {
			if err := srv.ListenAndServeTLS(certFile, keyFile); err != nil && err != http.ErrServerClosed {
				log.Fatalf("listen (TLS): %v", err)
			}
			return
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

// catalogSource picks the investor data source for this deployment:
// Google Sheets when configured, then a YAML file, then the built-in list.
func catalogSource() investors.Source {
	credsFile := os.Getenv("SHEETS_CREDENTIALS_FILE")
	spreadsheetID := os.Getenv("SPREADSHEET_ID")
	if credsFile != "" && spreadsheetID != "" {
		return investors.NewSheetsSource(credsFile, spreadsheetID, os.Getenv("SHEET_RANGE"))
	}
	if path := os.Getenv("INVESTORS_FILE"); path != "" {
		return investors.NewFileSource(path)
	}
	return investors.NewDefaultSource()
}

func corsConfig() cors.Config {
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	var origins []string
	if allowedOrigins == "" {
		origins = []string{"*"}
	} else {
		parts := strings.Split(allowedOrigins, ",")
		origins = make([]string, 0, len(parts))
		for _, p := range parts {
			if o := strings.TrimSpace(p); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) == 0 {
			origins = []string{"*"}
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: strings.EqualFold(os.Getenv("CORS_ALLOW_CREDENTIALS"), "true"),
		MaxAge:           12 * time.Hour,
	}
}
