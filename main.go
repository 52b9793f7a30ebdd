package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"kbs-store/config"
	"kbs-store/controllers"
	_ "kbs-store/docs"
	"kbs-store/libs"
	"kbs-store/middleware"
	"kbs-store/models"
	"kbs-store/repositories"
	"kbs-store/routes"
	"kbs-store/services"
)

func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	models.InitRedis()
	defer models.CloseRedis()

	itemRepo := repositories.NewItemRepository(config.DB)
	pinRepo := repositories.NewPinRepository(config.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := itemRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create item indexes: %v", err)
	}
	if err := pinRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create pin indexes: %v", err)
	}
	cancel()

	uploader := newUploader()
	sender := newPinSender()

	catalog := services.NewCatalogService(itemRepo, uploader)
	pins := services.NewPinService(pinRepo, sender, config.AppConfig.PinTTL, config.AppConfig.PinInResponse)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go services.NewPinSweeper(pinRepo, time.Minute).Run(sweepCtx)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, controllers.NewItemController(catalog), controllers.NewPinController(pins))

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newUploader() services.Uploader {
	uploader, err := libs.NewCloudinaryService()
	if err == nil {
		log.Println("Image uploads: Cloudinary")
		return uploader
	}
	log.Println("Cloudinary not configured, storing images locally:", err)

	local, err := libs.NewLocalStore(config.AppConfig.UploadDir)
	if err != nil {
		log.Fatalf("Failed to set up local image storage: %v", err)
	}
	return local
}

func newPinSender() services.PinSender {
	sender, err := models.NewEmailService()
	if err != nil {
		log.Println("PIN email delivery disabled:", err)
		return nil
	}
	log.Println("PIN delivery: email")
	return sender
}
