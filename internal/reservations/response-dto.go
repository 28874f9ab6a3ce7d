package reservations

import (
	"camply/internal/eligibility"
	"camply/internal/pricing"
)

// QuoteResponse pairs the price breakdown with the eligibility decision so
// the booking form can show the block reason alongside the price.
type QuoteResponse struct {
	SiteID      string             `json:"site_id"`
	SiteName    string             `json:"site_name"`
	Breakdown   pricing.Breakdown  `json:"breakdown"`
	Eligibility eligibility.Result `json:"eligibility"`
}
