package sites

import (
	"errors"
	"net/http"

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

// ListSites handles GET /api/v1/sites
func (c *Controller) ListSites(ctx *gin.Context) {
	sites, err := c.service.ListSites(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list sites", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Sites retrieved successfully", gin.H{
		"sites": sites,
		"count": len(sites),
	}, nil)
}

// GetSite handles GET /api/v1/sites/:id
func (c *Controller) GetSite(ctx *gin.Context) {
	siteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid site ID", nil, nil)
		return
	}

	site, err := c.service.GetSite(ctx.Request.Context(), siteID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Site not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get site", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Site retrieved successfully", site, nil)
}

// CreateSite handles POST /api/v1/sites
func (c *Controller) CreateSite(ctx *gin.Context) {
	var req SiteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	site, err := c.service.CreateSite(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create site", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Site created successfully", site, nil)
}

// UpdateSite handles PUT /api/v1/sites/:id
func (c *Controller) UpdateSite(ctx *gin.Context) {
	siteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid site ID", nil, nil)
		return
	}

	var req SiteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	site, err := c.service.UpdateSite(ctx.Request.Context(), siteID, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Site not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update site", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Site updated successfully", site, nil)
}
