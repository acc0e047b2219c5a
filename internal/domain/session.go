package domain

import (
	"fmt"
	"strings"
	"time"
)

type SessionID string

// NewSessionID derives the session identifier from the wall clock,
// matching the session_YYYYMMDD_HHMMSS naming of the output artifacts.
func NewSessionID(now time.Time) SessionID {
	return SessionID("session_" + now.Format("20060102_150405"))
}

type RunStatus string

const (
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

type StageResult struct {
	Name     string
	Status   RunStatus
	Duration time.Duration
	Error    string
}

// SessionRecord is one entry of the execution history: a single
// interview-plus-pipeline run, completed or failed.
type SessionRecord struct {
	ID         SessionID
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Status     RunStatus
	Model      string
	Answered   int
	Skipped    int
	Projects   int
	OutputDir  string
	Stages     []StageResult
}

func (r SessionRecord) Validate() error {
	if strings.TrimSpace(string(r.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if r.StartedAt.IsZero() {
		return fmt.Errorf("start time is required")
	}
	if r.Status != RunStatusCompleted && r.Status != RunStatusFailed {
		return fmt.Errorf("unsupported status %q", r.Status)
	}

	return nil
}

func (r SessionRecord) Duration() time.Duration {
	if r.FinishedAt.IsZero() || r.FinishedAt.Before(r.StartedAt) {
		return 0
	}

	return r.FinishedAt.Sub(r.StartedAt)
}
