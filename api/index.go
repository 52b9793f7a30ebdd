package api

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"kbs-store/config"
	"kbs-store/controllers"
	"kbs-store/libs"
	"kbs-store/middleware"
	"kbs-store/models"
	"kbs-store/repositories"
	"kbs-store/routes"
	"kbs-store/services"
)

var (
	router *gin.Engine
	once   sync.Once
)

// initApp mirrors main but without the background sweeper: on serverless
// the store-level TTL index is the only expiry mechanism.
func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()
		models.InitRedis()

		itemRepo := repositories.NewItemRepository(config.DB)
		pinRepo := repositories.NewPinRepository(config.DB)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := itemRepo.EnsureIndexes(ctx); err != nil {
			log.Println("Failed to create item indexes:", err)
		}
		if err := pinRepo.EnsureIndexes(ctx); err != nil {
			log.Println("Failed to create pin indexes:", err)
		}

		var uploader services.Uploader
		if cld, err := libs.NewCloudinaryService(); err == nil {
			uploader = cld
		}

		var sender services.PinSender
		if mail, err := models.NewEmailService(); err == nil {
			sender = mail
		}

		catalog := services.NewCatalogService(itemRepo, uploader)
		pins := services.NewPinService(pinRepo, sender, config.AppConfig.PinTTL, config.AppConfig.PinInResponse)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())
		routes.SetupRoutes(router, controllers.NewItemController(catalog), controllers.NewPinController(pins))
	})
}

// Handler is the Vercel serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
