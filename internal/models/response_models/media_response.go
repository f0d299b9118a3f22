package response_models

type MediaItem struct {
	ID         int    `json:"id"`
	PageURL    string `json:"page_url"`
	PreviewURL string `json:"preview_url"`
	FullURL    string `json:"full_url"`
	Credit     string `json:"credit"`
}

type MediaSearchResponse struct {
	Query string      `json:"query"`
	Kind  string      `json:"kind"`
	Items []MediaItem `json:"items"`
}

type TravelContentResponse struct {
	Query  string      `json:"query"`
	Images []MediaItem `json:"images"`
	Videos []MediaItem `json:"videos"`
}
