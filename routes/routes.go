package routes

import (
	"net/http"
	"time"

	"heirloom/handlers"
	"heirloom/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSalesRoutes registers listing search and detail endpoints.
func RegisterSalesRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sales")
	{
		api.GET("", hb.SearchSalesHandler)
		api.GET("/state", hb.SearchStateHandler)
		api.GET("/:id", hb.SaleDetailsHandler)
	}
}

// RegisterGeocodeRoute registers the address lookup endpoint.
func RegisterGeocodeRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/geocode", hb.GeocodeAddressHandler)
}

// RegisterSavedRoutes registers the saved-sales endpoints. All of them are
// scoped by the X-Device-ID header.
func RegisterSavedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/saved")
	{
		api.GET("", hb.ListSavedHandler)
		api.GET("/contains/:id", hb.ContainsSavedHandler)
		api.POST("/toggle/:id", hb.ToggleSavedHandler)
		api.DELETE("/:id", hb.RemoveSavedHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", handlers.DeviceIDHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSalesRoutes(r, hb)
	RegisterGeocodeRoute(r, hb)
	RegisterSavedRoutes(r, hb)
	RegisterHealthRoute(r)
}
