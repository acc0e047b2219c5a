package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/ideaforge/internal/domain"
	"github.com/bnema/ideaforge/internal/ports"
)

const defaultBaseURL = "https://google.serper.dev"

// Source pulls technology news through the Serper API. Without an API
// key the source reports itself disabled and is skipped.
type Source struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSource(apiKey, baseURL string) *Source {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Source{
		name:    "serper",
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

var _ ports.TrendSource = (*Source)(nil)

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Enabled() bool {
	return s.apiKey != ""
}

func (s *Source) Fetch(ctx context.Context, topic string, limit int) ([]domain.Trend, error) {
	if topic == "" {
		topic = "AI"
	}

	body, err := json.Marshal(map[string]any{
		"q":   fmt.Sprintf("%s technology trends", topic),
		"num": limit,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/news", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news search returned status %d", resp.StatusCode)
	}

	var payload struct {
		News []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"news"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}

	if limit <= 0 || limit > len(payload.News) {
		limit = len(payload.News)
	}

	trends := make([]domain.Trend, 0, limit)
	for _, item := range payload.News[:limit] {
		trends = append(trends, domain.Trend{
			Title:   item.Title,
			Summary: item.Snippet,
			Source:  s.name,
			URL:     item.Link,
		})
	}

	return trends, nil
}
