package artifacts

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/ideaforge/internal/domain"
	"github.com/bnema/ideaforge/internal/ports"
)

const (
	outputDirMode  = 0o700
	outputFileMode = 0o600
)

// Store writes the text artifacts of one run into a flat output
// directory: results JSON, projects CSV, presentation markdown and
// feedback JSON, all named after the session.
type Store struct {
	dir string
}

var _ ports.ArtifactStore = (*Store)(nil)

func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

func (s *Store) EnsureDir() (string, error) {
	absDir, err := filepath.Abs(s.dir)
	if err != nil {
		return "", fmt.Errorf("resolve output directory: %w", err)
	}

	if err := os.MkdirAll(absDir, outputDirMode); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	s.dir = absDir
	return absDir, nil
}

func (s *Store) WriteResults(ctx context.Context, doc domain.ResultsDocument) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := marshalIndented(doc)
	if err != nil {
		return "", fmt.Errorf("encode results: %w", err)
	}

	return s.writeFile(fmt.Sprintf("results_%s.json", doc.SessionID), data)
}

func (s *Store) WriteProjectsCSV(ctx context.Context, id domain.SessionID, ideas []domain.ProjectIdea) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"rank", "title", "domain", "difficulty", "technologies",
		"estimated_time", "overall_score", "relevance_score",
		"feasibility_score", "impact_score", "portfolio_value",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, idea := range ideas {
		row := []string{
			strconv.Itoa(idea.Rank),
			idea.Title,
			idea.Domain,
			idea.Difficulty,
			strings.Join(idea.Technologies, "; "),
			idea.EstimatedTime,
			formatScore(idea.OverallScore),
			formatScore(idea.RelevanceScore),
			formatScore(idea.FeasibilityScore),
			formatScore(idea.ImpactScore),
			idea.PortfolioValue,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}

	return s.writeFile(fmt.Sprintf("project_recommendations_%s.csv", id), buf.Bytes())
}

func (s *Store) WritePresentation(ctx context.Context, id domain.SessionID, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	return s.writeFile(fmt.Sprintf("presentation_%s.md", id), []byte(text))
}

func (s *Store) WriteFeedback(ctx context.Context, id domain.SessionID, entries []domain.FeedbackEntry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := marshalIndented(entries)
	if err != nil {
		return "", fmt.Errorf("encode feedback: %w", err)
	}

	return s.writeFile(fmt.Sprintf("feedback_%s.json", id), data)
}

// writeFile writes through a temp file in the same directory so a
// crashed run never leaves a half-written artifact behind.
func (s *Store) writeFile(name string, data []byte) (string, error) {
	if _, err := s.EnsureDir(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)

	tempFile, err := os.CreateTemp(s.dir, "."+name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp artifact: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return "", fmt.Errorf("write temp artifact: %w", err)
	}

	if err := tempFile.Chmod(outputFileMode); err != nil {
		_ = tempFile.Close()
		return "", fmt.Errorf("chmod temp artifact: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return "", fmt.Errorf("close temp artifact: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return "", fmt.Errorf("replace artifact %s: %w", name, err)
	}

	cleanup = false
	return path, nil
}

func marshalIndented(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}
