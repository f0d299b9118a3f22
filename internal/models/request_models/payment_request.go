package request_models

type CreateCheckoutRequest struct {
	TripID    string `json:"trip_id" binding:"required,uuid"`
	CancelURL string `json:"cancel_url" binding:"required,url"`
	ReturnURL string `json:"return_url" binding:"required,url"`
}
