package domain

import "sort"

// ProjectIdea is one ranked recommendation as returned by the model.
// Scores are model-assigned; nothing here recomputes them.
type ProjectIdea struct {
	Rank             int      `json:"rank"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Domain           string   `json:"domain,omitempty"`
	Technologies     []string `json:"technologies"`
	Difficulty       string   `json:"difficulty"`
	EstimatedTime    string   `json:"estimated_time"`
	LearningOutcomes []string `json:"learning_outcomes,omitempty"`
	OverallScore     float64  `json:"overall_score"`
	RelevanceScore   float64  `json:"relevance_score"`
	FeasibilityScore float64  `json:"feasibility_score"`
	ImpactScore      float64  `json:"impact_score"`
	Rationale        string   `json:"selection_rationale,omitempty"`
	PortfolioValue   string   `json:"portfolio_value,omitempty"`
}

// SortByRank orders ideas by ascending rank, keeping unranked entries
// (rank 0) after ranked ones without disturbing their relative order.
func SortByRank(ideas []ProjectIdea) {
	sort.SliceStable(ideas, func(i, j int) bool {
		ri, rj := ideas[i].Rank, ideas[j].Rank
		if ri == 0 {
			return false
		}
		if rj == 0 {
			return true
		}
		return ri < rj
	})
}
