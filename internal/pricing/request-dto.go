package pricing

// SeasonRequest describes one peak window in a config update.
type SeasonRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	StartMonth int    `json:"start_month" validate:"min=1,max=12"`
	StartDay   int    `json:"start_day" validate:"min=1,max=31"`
	EndMonth   int    `json:"end_month" validate:"min=1,max=12"`
	EndDay     int    `json:"end_day" validate:"min=1,max=31"`
}

// ConfigRequest is the admin payload for creating or updating the pricing
// config. All monetary fields are integer minor units and must be
// non-negative.
type ConfigRequest struct {
	Weekday          int64           `json:"weekday" validate:"min=0"`
	Weekend          int64           `json:"weekend" validate:"min=0"`
	PeakWeekday      int64           `json:"peak_weekday" validate:"min=0"`
	PeakWeekend      int64           `json:"peak_weekend" validate:"min=0"`
	ExtraFamily      int64           `json:"extra_family" validate:"min=0"`
	Visitor          int64           `json:"visitor" validate:"min=0"`
	LongStayDiscount int64           `json:"long_stay_discount" validate:"min=0"`
	Seasons          []SeasonRequest `json:"seasons" validate:"dive"`
}
