package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"heirloom/models"
	"heirloom/services/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SalesHandler serves listing search, detail, and search-state endpoints.
type SalesHandler struct {
	Service search.SearchService
}

func NewSalesHandler(svc search.SearchService) *SalesHandler {
	return &SalesHandler{Service: svc}
}

// SearchSalesHandler handles GET /api/sales.
func (h *SalesHandler) SearchSalesHandler(c *gin.Context) {
	logger := getLogger(c)

	req, err := parseSearchRequest(c)
	if err != nil {
		logger.Warn("Invalid search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.SearchResponse{
			Success: false,
			Error:   err.Error(),
			Data:    []models.Listing{},
		})
		return
	}

	resp := h.Service.Search(c.Request.Context(), req)
	if !resp.Success {
		c.JSON(http.StatusBadGateway, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SaleDetailsHandler handles GET /api/sales/:id.
func (h *SalesHandler) SaleDetailsHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	resp := h.Service.GetDetails(c.Request.Context(), id)
	if !resp.Success {
		if resp.Error == "Sale not found" {
			logger.Warn("Sale not found", zap.String("id", id))
			c.JSON(http.StatusNotFound, resp)
			return
		}
		c.JSON(http.StatusBadGateway, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchStateHandler handles GET /api/sales/state, exposing the lifecycle
// snapshot of the newest search.
func (h *SalesHandler) SearchStateHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.State())
}

// parseSearchRequest builds a SearchRequest from query parameters. lat and
// lng must be supplied together; dates, type, price, and categories are
// optional and default to "filter does not apply".
func parseSearchRequest(c *gin.Context) (models.SearchRequest, error) {
	var req models.SearchRequest

	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if (latStr == "") != (lngStr == "") {
		return req, fmt.Errorf("lat and lng must be supplied together")
	}
	if latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return req, fmt.Errorf("invalid lat: %q", latStr)
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return req, fmt.Errorf("invalid lng: %q", lngStr)
		}
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			return req, fmt.Errorf("coordinates out of range")
		}
		req.Origin = &models.Coordinates{Latitude: lat, Longitude: lng}
	}

	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err := strconv.Atoi(radiusStr)
		if err != nil || radius <= 0 {
			return req, fmt.Errorf("invalid radius: %q", radiusStr)
		}
		req.Radius = radius
	}

	req.Query = c.Query("q")

	filters := models.FilterState{
		Dates:      models.DateBucket(c.Query("dates")),
		Distance:   req.Radius,
		Type:       models.ListingType(c.DefaultQuery("type", "all")),
		PriceRange: models.PriceTier(c.DefaultQuery("price", "all")),
	}
	if catsStr := c.Query("categories"); catsStr != "" {
		for _, cat := range strings.Split(catsStr, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				filters.Categories = append(filters.Categories, cat)
			}
		}
	}
	if filters.Dates == models.DatesCustom {
		r, err := parseDateRange(c.Query("from"), c.Query("to"))
		if err != nil {
			return req, err
		}
		filters.CustomRange = r
	}
	req.Filters = filters
	return req, nil
}

// parseDateRange accepts YYYY-MM-DD bounds. An incomplete range is allowed:
// the date predicate is then a no-op, matching the filter contract.
func parseDateRange(from, to string) (*models.DateRange, error) {
	if from == "" || to == "" {
		return nil, nil
	}
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("invalid from date: %q", from)
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("invalid to date: %q", to)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("date range end precedes start")
	}
	return &models.DateRange{Start: start, End: end}, nil
}
