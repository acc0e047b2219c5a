package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/ideaforge/internal/domain"
	"github.com/bnema/ideaforge/internal/ports"
)

const (
	defaultBaseURL = "https://api.github.com"
	minStars       = 100
	searchWindow   = 30 * 24 * time.Hour
)

// Source finds recently created, heavily starred repositories through
// the public search API. No credentials needed, so it is always enabled.
type Source struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewSource(baseURL string) *Source {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Source{
		name:    "github",
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
	return true
}

func (s *Source) Fetch(ctx context.Context, topic string, limit int) ([]domain.Trend, error) {
	since := time.Now().Add(-searchWindow).Format("2006-01-02")
	query := fmt.Sprintf("stars:>%d created:>%s", minStars, since)
	if topic != "" {
		query = topic + " " + query
	}

	values := url.Values{}
	values.Set("q", query)
	values.Set("sort", "stars")
	values.Set("order", "desc")
	values.Set("per_page", "20")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/search/repositories?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "ideaforge")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("repository search returned status %d", resp.StatusCode)
	}

	var payload struct {
		Items []struct {
			FullName        string `json:"full_name"`
			Description     string `json:"description"`
			HTMLURL         string `json:"html_url"`
			StargazersCount int    `json:"stargazers_count"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode repository search response: %w", err)
	}

	if limit <= 0 || limit > len(payload.Items) {
		limit = len(payload.Items)
	}

	trends := make([]domain.Trend, 0, limit)
	for _, item := range payload.Items[:limit] {
		trends = append(trends, domain.Trend{
			Title:   item.FullName,
			Summary: item.Description,
			Source:  s.name,
			URL:     item.HTMLURL,
			Stars:   item.StargazersCount,
		})
	}

	return trends, nil
}
