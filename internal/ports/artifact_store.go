package ports

import (
	"context"

	"github.com/bnema/ideaforge/internal/domain"
)

// ArtifactStore writes the text artifacts of one run into the output
// directory. The dialogue itself never touches files; everything below
// it goes through this boundary. Each write returns the path written.
type ArtifactStore interface {
	EnsureDir() (string, error)
	WriteResults(ctx context.Context, doc domain.ResultsDocument) (string, error)
	WriteProjectsCSV(ctx context.Context, id domain.SessionID, ideas []domain.ProjectIdea) (string, error)
	WritePresentation(ctx context.Context, id domain.SessionID, text string) (string, error)
	WriteFeedback(ctx context.Context, id domain.SessionID, entries []domain.FeedbackEntry) (string, error)
}
