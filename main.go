package main

import (
	"log"
	"time"

	"codedrop-app/config"
	"codedrop-app/database"
	routes "codedrop-app/internal/app/http"
	"codedrop-app/internal/domain/activity"
	"codedrop-app/internal/domain/events"
	"codedrop-app/internal/storage"
	"codedrop-app/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	slogger := logger.New()

	store, err := storage.New(storage.Config{
		Backend:      config.STORAGE_BACKEND,
		Dir:          config.FILES_DIR,
		Endpoint:     config.S3_ENDPOINT,
		Region:       config.S3_REGION,
		AccessKey:    config.S3_ACCESS_KEY,
		SecretKey:    config.S3_SECRET_KEY,
		Bucket:       config.S3_BUCKET,
		Prefix:       config.S3_PREFIX,
		UsePathStyle: config.S3_PATH_STYLE,
	})
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	dispatcher := events.NewDispatcher()
	dispatcher.Subscribe(events.KindCodeRedeemed, func(e events.Event) {
		slogger.Info("code redeemed", "code", e.SubjectID)
	})
	dispatcher.Subscribe(events.KindFilePreDownload, func(e events.Event) {
		slogger.Info("file download starting", "file_id", e.SubjectID)
	})

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		DB:            database.DB,
		Store:         store,
		Events:        dispatcher,
		Activity:      &activity.Logger{Log: slogger},
		SessionSecret: config.SESSION_SECRET,
	})

	r.Run(":" + config.PORT)
}
