package pricing

import (
	"net/http"
	"strconv"
	"time"

	"camply/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetConfig handles GET /api/v1/pricing/config
func (c *Controller) GetConfig(ctx *gin.Context) {
	cfg, err := c.service.GetConfig(ctx.Request.Context())
	if err != nil {
		if err == ErrMissingConfig {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "No pricing config has been set up", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load pricing config", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Pricing config retrieved successfully", cfg, nil)
}

// UpdateConfig handles PUT /api/v1/pricing/config
func (c *Controller) UpdateConfig(ctx *gin.Context) {
	var req ConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	cfg, err := c.service.UpdateConfig(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to update pricing config", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Pricing config updated successfully", cfg, nil)
}

// GetQuote handles GET /api/v1/pricing/quote
//
// Query params: check_in, check_out (YYYY-MM-DD), family_count, visitor_count.
func (c *Controller) GetQuote(ctx *gin.Context) {
	checkIn, err := time.ParseInLocation(dateLayout, ctx.Query("check_in"), time.Local)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid check_in date", nil, err.Error())
		return
	}

	checkOut, err := time.ParseInLocation(dateLayout, ctx.Query("check_out"), time.Local)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid check_out date", nil, err.Error())
		return
	}

	if checkOut.Before(checkIn) {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "check_out must not be earlier than check_in", nil, nil)
		return
	}

	familyCount, err := strconv.Atoi(ctx.DefaultQuery("family_count", "1"))
	if err != nil || familyCount < 0 {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid family_count", nil, nil)
		return
	}

	visitorCount, err := strconv.Atoi(ctx.DefaultQuery("visitor_count", "0"))
	if err != nil || visitorCount < 0 {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid visitor_count", nil, nil)
		return
	}

	breakdown, err := c.service.Quote(ctx.Request.Context(), checkIn, checkOut, familyCount, visitorCount)
	if err != nil {
		if err == ErrMissingConfig {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "No pricing config has been set up", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to compute quote", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Quote computed successfully", breakdown, nil)
}
