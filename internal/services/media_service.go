package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tobugo/internal/models/response_models"
)

type MediaServiceInterface interface {
	SearchImages(ctx context.Context, query string, limit int) (*response_models.MediaSearchResponse, error)
	SearchVideos(ctx context.Context, query string, limit int) (*response_models.MediaSearchResponse, error)
	SearchTravelContent(ctx context.Context, query string, limit int) (*response_models.TravelContentResponse, error)
}

type PixabayConfig struct {
	APIKey  string
	BaseURL string
}

type MediaService struct {
	cfg    PixabayConfig
	client *http.Client
}

func NewMediaService(cfg PixabayConfig) MediaServiceInterface {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://pixabay.com/api"
	}
	return &MediaService{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *MediaService) SearchImages(ctx context.Context, query string, limit int) (*response_models.MediaSearchResponse, error) {
	return m.search(ctx, m.cfg.BaseURL+"/", "image", query, limit)
}

func (m *MediaService) SearchVideos(ctx context.Context, query string, limit int) (*response_models.MediaSearchResponse, error) {
	return m.search(ctx, m.cfg.BaseURL+"/videos/", "video", query, limit)
}

// SearchTravelContent bundles image and video results for one destination.
// A failure on one side degrades to the other rather than failing the call.
func (m *MediaService) SearchTravelContent(ctx context.Context, query string, limit int) (*response_models.TravelContentResponse, error) {
	images, imgErr := m.SearchImages(ctx, query, limit)
	videos, vidErr := m.SearchVideos(ctx, query, limit)
	if imgErr != nil && vidErr != nil {
		return nil, imgErr
	}

	out := &response_models.TravelContentResponse{Query: query}
	if imgErr == nil {
		out.Images = images.Items
	}
	if vidErr == nil {
		out.Videos = videos.Items
	}
	return out, nil
}

type pixabayHit struct {
	ID           int    `json:"id"`
	PageURL      string `json:"pageURL"`
	PreviewURL   string `json:"previewURL"`
	WebformatURL string `json:"webformatURL"`
	LargeImage   string `json:"largeImageURL"`
	User         string `json:"user"`
	Videos       struct {
		Medium struct {
			URL string `json:"url"`
		} `json:"medium"`
		Tiny struct {
			URL string `json:"url"`
		} `json:"tiny"`
	} `json:"videos"`
}

func (m *MediaService) search(ctx context.Context, endpoint, kind, query string, limit int) (*response_models.MediaSearchResponse, error) {
	if limit < 1 || limit > 50 {
		limit = 12
	}

	params := url.Values{}
	params.Set("key", m.cfg.APIKey)
	params.Set("q", query)
	params.Set("category", "travel")
	params.Set("safesearch", "true")
	params.Set("per_page", fmt.Sprint(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pixabay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pixabay: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Hits []pixabayHit `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("pixabay: %w", err)
	}

	out := &response_models.MediaSearchResponse{
		Query: query,
		Kind:  kind,
		Items: make([]response_models.MediaItem, 0, len(payload.Hits)),
	}
	for _, hit := range payload.Hits {
		item := response_models.MediaItem{
			ID:      hit.ID,
			PageURL: hit.PageURL,
			Credit:  hit.User,
		}
		if kind == "video" {
			item.PreviewURL = hit.Videos.Tiny.URL
			item.FullURL = hit.Videos.Medium.URL
		} else {
			item.PreviewURL = hit.PreviewURL
			item.FullURL = hit.LargeImage
			if item.FullURL == "" {
				item.FullURL = hit.WebformatURL
			}
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}
