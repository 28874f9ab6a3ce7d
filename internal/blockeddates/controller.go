package blockeddates

import (
	"errors"
	"net/http"
	"time"

	"camply/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Block handles POST /api/v1/blocked-dates
func (c *Controller) Block(ctx *gin.Context) {
	var req BlockedDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	blocked, err := c.service.Block(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to block date", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Date blocked successfully", blocked, nil)
}

// Unblock handles DELETE /api/v1/blocked-dates/:id
func (c *Controller) Unblock(ctx *gin.Context) {
	blockedID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid blocked date ID", nil, nil)
		return
	}

	if err := c.service.Unblock(ctx.Request.Context(), blockedID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Blocked date not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to unblock date", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Date unblocked successfully", nil, nil)
}

// ListRange handles GET /api/v1/blocked-dates?from=YYYY-MM-DD&to=YYYY-MM-DD
func (c *Controller) ListRange(ctx *gin.Context) {
	from, err := time.ParseInLocation(dateLayout, ctx.DefaultQuery("from", time.Now().Format(dateLayout)), time.Local)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid from date", nil, nil)
		return
	}

	to, err := time.ParseInLocation(dateLayout, ctx.DefaultQuery("to", from.AddDate(0, 3, 0).Format(dateLayout)), time.Local)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid to date", nil, nil)
		return
	}

	blocked, err := c.service.ListRange(ctx.Request.Context(), from, to)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list blocked dates", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Blocked dates retrieved successfully", gin.H{
		"blocked_dates": blocked,
		"count":         len(blocked),
	}, nil)
}
