package ports

import (
	"context"

	"github.com/bnema/ideaforge/internal/domain"
)

// TrendSource supplies current ecosystem snippets for project
// generation. A disabled source reports Enabled() == false and is
// skipped without error.
type TrendSource interface {
	Name() string
	Enabled() bool
	Fetch(ctx context.Context, topic string, limit int) ([]domain.Trend, error)
}
