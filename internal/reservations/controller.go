package reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"camply/internal/pricing"
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

// Quote handles POST /api/v1/reservations/quote
func (c *Controller) Quote(ctx *gin.Context) {
	var req QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	quote, err := c.service.Quote(ctx.Request.Context(), req)
	if err != nil {
		c.respondServiceError(ctx, err, "Failed to compute quote")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Quote computed successfully", quote, nil)
}

// Create handles POST /api/v1/reservations
func (c *Controller) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	reservation, err := c.service.Create(ctx.Request.Context(), userID, req)
	if err != nil {
		c.respondServiceError(ctx, err, "Failed to create reservation")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Reservation created successfully", reservation, nil)
}

// GetReservation handles GET /api/v1/reservations/:id
func (c *Controller) GetReservation(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	reservationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid reservation ID", nil, nil)
		return
	}

	reservation, err := c.service.GetReservation(ctx.Request.Context(), reservationID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Reservation not found", nil, err.Error())
		return
	}

	role, _ := ctx.Get("user_role")
	if role != "ADMIN" && reservation.UserID != userID {
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Access denied", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation retrieved successfully", reservation, nil)
}

// GetUserReservations handles GET /api/v1/users/reservations
func (c *Controller) GetUserReservations(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	reservations, err := c.service.GetUserReservations(ctx.Request.Context(), userID, limit, offset)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get reservations", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservations retrieved successfully", gin.H{
		"reservations": reservations,
		"count":        len(reservations),
		"limit":        limit,
		"offset":       offset,
	}, nil)
}

// ConfirmPayment handles POST /api/v1/reservations/:id/confirm
func (c *Controller) ConfirmPayment(ctx *gin.Context) {
	reservationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid reservation ID", nil, nil)
		return
	}

	if err := c.service.ConfirmPayment(ctx.Request.Context(), reservationID); err != nil {
		c.respondServiceError(ctx, err, "Failed to confirm reservation")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation confirmed successfully", nil, nil)
}

// Cancel handles POST /api/v1/reservations/:id/cancel
func (c *Controller) Cancel(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	reservationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid reservation ID", nil, nil)
		return
	}

	if err := c.service.Cancel(ctx.Request.Context(), reservationID, userID); err != nil {
		c.respondServiceError(ctx, err, "Failed to cancel reservation")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation cancelled successfully", nil, nil)
}

// RequestRefund handles POST /api/v1/reservations/:id/refund-request
func (c *Controller) RequestRefund(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	reservationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid reservation ID", nil, nil)
		return
	}

	if err := c.service.RequestRefund(ctx.Request.Context(), reservationID, userID); err != nil {
		c.respondServiceError(ctx, err, "Failed to request refund")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Refund requested successfully", nil, nil)
}

// ProcessRefund handles POST /api/v1/reservations/:id/refund
func (c *Controller) ProcessRefund(ctx *gin.Context) {
	reservationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid reservation ID", nil, nil)
		return
	}

	reservation, err := c.service.ProcessRefund(ctx.Request.Context(), reservationID)
	if err != nil {
		c.respondServiceError(ctx, err, "Failed to process refund")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Refund processed successfully", reservation, nil)
}

// Complete handles POST /api/v1/reservations/:id/complete
func (c *Controller) Complete(ctx *gin.Context) {
	reservationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid reservation ID", nil, nil)
		return
	}

	if err := c.service.Complete(ctx.Request.Context(), reservationID); err != nil {
		c.respondServiceError(ctx, err, "Failed to complete reservation")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Reservation completed successfully", nil, nil)
}

// Sweep handles POST /api/v1/reservations/sweep
func (c *Controller) Sweep(ctx *gin.Context) {
	result, err := c.service.SweepOverdue(ctx.Request.Context(), time.Now())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Sweep failed", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Sweep completed", result, nil)
}

// respondServiceError maps service errors onto HTTP statuses, keeping the
// policy block distinguishable from plain validation failures.
func (c *Controller) respondServiceError(ctx *gin.Context, err error, message string) {
	var ineligible *IneligibleError
	switch {
	case errors.As(err, &ineligible):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Date range blocked by the weekend one-night policy", gin.H{
			"eligibility": ineligible.Result,
		}, nil)
	case errors.Is(err, ErrNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Reservation not found", nil, nil)
	case errors.Is(err, ErrSiteUnavailable):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Site is already reserved for part of the stay", nil, nil)
	case errors.Is(err, ErrStatusConflict):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Reservation is not in the expected state", nil, err.Error())
	case errors.Is(err, pricing.ErrMissingConfig):
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "No pricing config has been set up", nil, nil)
	case errors.Is(err, ErrInvalidDateRange), errors.Is(err, ErrInvalidOccupancy), errors.Is(err, ErrOverCapacity):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusBadRequest, message, nil, err.Error())
	}
}

func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userIDInterface, exists := ctx.Get("user_id")
	if !exists {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return uuid.Nil, false
	}

	userIDStr, ok := userIDInterface.(string)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Invalid user ID format", nil, nil)
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, nil)
		return uuid.Nil, false
	}

	return userID, true
}
