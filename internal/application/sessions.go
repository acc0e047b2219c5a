package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/ideaforge/internal/domain"
	"github.com/bnema/ideaforge/internal/ports"
)

type SessionService struct {
	history ports.SessionRepository
}

func NewSessionService(history ports.SessionRepository) *SessionService {
	return &SessionService{history: history}
}

// List returns the run history, newest first.
func (s *SessionService) List(ctx context.Context) ([]domain.SessionRecord, error) {
	records, err := s.history.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartedAt.After(records[j].StartedAt)
	})

	return records, nil
}

func (s *SessionService) Get(ctx context.Context, id domain.SessionID) (domain.SessionRecord, error) {
	record, err := s.history.GetByID(ctx, id)
	if err != nil {
		return domain.SessionRecord{}, fmt.Errorf("get session %s: %w", id, err)
	}

	return record, nil
}
