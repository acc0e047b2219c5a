package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/ideaforge/internal/domain"
)

// CleanJSON strips the markdown code fences models like to wrap JSON in.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// ParseProjectIdeas decodes the ranking stage output into ranked
// projects, ordered by rank.
func ParseProjectIdeas(raw string) ([]domain.ProjectIdea, error) {
	var ideas []domain.ProjectIdea
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &ideas); err != nil {
		return nil, fmt.Errorf("decode ranked projects: %w", err)
	}
	if len(ideas) == 0 {
		return nil, errors.New("ranking stage returned no projects")
	}

	domain.SortByRank(ideas)

	return ideas, nil
}
