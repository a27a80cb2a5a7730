package handlers

import (
	"net/http"

	"heirloom/services/search"
	"heirloom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeocodeHandler serves GET /api/geocode.
type GeocodeHandler struct {
	Service search.SearchService
}

func NewGeocodeHandler(svc search.SearchService) *GeocodeHandler {
	return &GeocodeHandler{Service: svc}
}

// GeocodeAddressHandler resolves a free-text address to coordinates.
func (h *GeocodeHandler) GeocodeAddressHandler(c *gin.Context) {
	logger := getLogger(c)

	address := c.Query("address")
	if address == "" {
		utils.JSONError(c, http.StatusBadRequest, "address is required")
		return
	}

	resp := h.Service.Geocode(c.Request.Context(), address)
	if !resp.Success {
		logger.Debug("Geocode miss", zap.String("address", address))
		c.JSON(http.StatusNotFound, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
