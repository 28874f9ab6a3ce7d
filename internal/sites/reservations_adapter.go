package sites

import (
	"context"

	"camply/internal/reservations"

	"github.com/google/uuid"
)

// ReservationCatalogAdapter adapts the sites service to the catalog
// interface the reservation flow consumes.
type ReservationCatalogAdapter struct {
	service Service
}

// NewReservationCatalogAdapter creates an adapter backed by the sites service
func NewReservationCatalogAdapter(service Service) *ReservationCatalogAdapter {
	return &ReservationCatalogAdapter{service: service}
}

// GetSiteInfo implements reservations.SiteCatalog
func (a *ReservationCatalogAdapter) GetSiteInfo(ctx context.Context, id uuid.UUID) (*reservations.SiteInfo, error) {
	site, err := a.service.GetSite(ctx, id)
	if err != nil {
		return nil, err
	}
	if !site.Active {
		return nil, ErrNotFound
	}

	return &reservations.SiteInfo{
		ID:           site.ID,
		Name:         site.Name,
		MaxOccupancy: site.MaxOccupancy,
	}, nil
}
