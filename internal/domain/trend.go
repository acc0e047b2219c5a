package domain

// Trend is one snippet of current ecosystem activity fed into project
// generation: a trending repository, a news item, or similar.
type Trend struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Source  string `json:"source"`
	URL     string `json:"url,omitempty"`
	Stars   int    `json:"stars,omitempty"`
}
