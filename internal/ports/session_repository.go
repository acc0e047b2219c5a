package ports

import (
	"context"

	"github.com/bnema/ideaforge/internal/domain"
)

type SessionRepository interface {
	GetByID(ctx context.Context, id domain.SessionID) (domain.SessionRecord, error)
	List(ctx context.Context) ([]domain.SessionRecord, error)
	Append(ctx context.Context, record domain.SessionRecord) error
}
