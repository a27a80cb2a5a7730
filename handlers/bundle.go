package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups every route handler wired in main.
type HandlerBundle struct {
	// Sales endpoints.
	SearchSalesHandler gin.HandlerFunc
	SaleDetailsHandler gin.HandlerFunc
	SearchStateHandler gin.HandlerFunc

	// Geocode endpoint.
	GeocodeAddressHandler gin.HandlerFunc

	// Saved-sales endpoints.
	ListSavedHandler     gin.HandlerFunc
	ToggleSavedHandler   gin.HandlerFunc
	RemoveSavedHandler   gin.HandlerFunc
	ContainsSavedHandler gin.HandlerFunc
}
