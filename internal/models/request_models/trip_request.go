package request_models

type UpdateTripRequest struct {
	Title       string   `json:"title"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Budget      *float64 `json:"budget"`
	IsPublic    *bool    `json:"is_public"`
	Tags        []string `json:"tags"`
}

type PublicTripFilter struct {
	Destination string  `form:"destination"`
	MinBudget   float64 `form:"min_budget"`
	MaxBudget   float64 `form:"max_budget"`
	MinDays     int     `form:"min_days"`
	MaxDays     int     `form:"max_days"`
	Page        int     `form:"page"`
	PageSize    int     `form:"page_size"`
}
