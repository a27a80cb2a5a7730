package handlers

import (
	"net/http"

	"heirloom/services/saved"
	"heirloom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeviceIDHeader identifies the caller's saved-set slot. The browser client
// generates one id per install and sends it on every saved-set request.
const DeviceIDHeader = "X-Device-ID"

// SavedHandler serves the saved-sales endpoints.
type SavedHandler struct {
	Service saved.SavedSetService
}

func NewSavedHandler(svc saved.SavedSetService) *SavedHandler {
	return &SavedHandler{Service: svc}
}

func deviceID(c *gin.Context) (string, bool) {
	id := c.GetHeader(DeviceIDHeader)
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, DeviceIDHeader+" header is required")
		return "", false
	}
	return id, true
}

// ListSavedHandler handles GET /api/saved.
func (h *SavedHandler) ListSavedHandler(c *gin.Context) {
	logger := getLogger(c)
	device, ok := deviceID(c)
	if !ok {
		return
	}

	ids, err := h.Service.List(c.Request.Context(), device)
	if err != nil {
		logger.Error("Failed to list saved sales", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load saved sales")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": ids})
}

// ToggleSavedHandler handles POST /api/saved/toggle/:id.
func (h *SavedHandler) ToggleSavedHandler(c *gin.Context) {
	logger := getLogger(c)
	device, ok := deviceID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	nowSaved, err := h.Service.Toggle(c.Request.Context(), device, id)
	if err != nil {
		logger.Error("Failed to toggle saved sale", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update saved sales")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "saved": nowSaved})
}

// RemoveSavedHandler handles DELETE /api/saved/:id.
func (h *SavedHandler) RemoveSavedHandler(c *gin.Context) {
	logger := getLogger(c)
	device, ok := deviceID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := h.Service.Remove(c.Request.Context(), device, id); err != nil {
		logger.Error("Failed to remove saved sale", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update saved sales")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ContainsSavedHandler handles GET /api/saved/contains/:id.
func (h *SavedHandler) ContainsSavedHandler(c *gin.Context) {
	logger := getLogger(c)
	device, ok := deviceID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	isSaved, err := h.Service.Contains(c.Request.Context(), device, id)
	if err != nil {
		logger.Error("Failed to check saved sale", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load saved sales")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "saved": isSaved})
}
