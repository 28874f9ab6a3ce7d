package reservations

const dateLayout = "2006-01-02"

// QuoteRequest prices and validates a candidate stay without creating it.
type QuoteRequest struct {
	SiteID       string `json:"site_id" binding:"required,uuid"`
	CheckIn      string `json:"check_in" binding:"required"`
	CheckOut     string `json:"check_out" binding:"required"`
	FamilyCount  int    `json:"family_count" binding:"min=0"`
	VisitorCount int    `json:"visitor_count" binding:"min=0"`
}

// CreateReservationRequest creates a reservation in PENDING.
type CreateReservationRequest struct {
	SiteID       string `json:"site_id" binding:"required,uuid"`
	CheckIn      string `json:"check_in" binding:"required"`
	CheckOut     string `json:"check_out" binding:"required"`
	FamilyCount  int    `json:"family_count" binding:"min=0"`
	VisitorCount int    `json:"visitor_count" binding:"min=0"`
	VehicleCount int    `json:"vehicle_count" binding:"min=0"`
}
