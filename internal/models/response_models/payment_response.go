package response_models

type CreateCheckoutResponse struct {
	OrderCode  int64  `json:"order_code"`
	Amount     int    `json:"amount"`
	PaymentURL string `json:"payment_url"`
	Provider   string `json:"provider"`
}
