package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"kbs-store/controllers"
)

var apiEndpoints = []string{
	"GET /api/health",
	"GET /api/items",
	"GET /api/items/:id",
	"POST /api/items",
	"PUT /api/items/:id",
	"DELETE /api/items/:id",
	"POST /api/generate-pin",
	"POST /api/verify-pin",
}

func SetupRoutes(router *gin.Engine, itemCtrl *controllers.ItemController, pinCtrl *controllers.PinController) {
	healthCtrl := &controllers.HealthController{}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	banner := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "KBS Store API is running",
			"version":   "1.0.0",
			"endpoints": apiEndpoints,
		})
	}
	router.GET("/", banner)
	router.GET("/api", banner)

	api := router.Group("/api")
	{
		api.GET("/health", healthCtrl.Health)

		api.GET("/items", itemCtrl.GetItems)
		api.GET("/items/:id", itemCtrl.GetItem)
		api.POST("/items", itemCtrl.CreateItem)
		api.PUT("/items/:id", itemCtrl.UpdateItem)
		api.DELETE("/items/:id", itemCtrl.DeleteItem)

		api.POST("/generate-pin", pinCtrl.GeneratePin)
		api.POST("/verify-pin", pinCtrl.VerifyPin)
	}

	router.Static("/uploads", "./uploads")

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":           "Route not found",
			"method":          c.Request.Method,
			"path":            c.Request.URL.Path,
			"availableRoutes": apiEndpoints,
		})
	})
}
