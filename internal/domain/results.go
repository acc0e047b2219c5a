package domain

import "time"

type StageOutput struct {
	Name   string `json:"name"`
	Output string `json:"output"`
}

// ResultsDocument is the full record of one completed run, written as
// the results_<session>.json artifact.
type ResultsDocument struct {
	SessionID    SessionID     `json:"session_id"`
	RunID        string        `json:"run_id"`
	StartedAt    time.Time     `json:"started_at"`
	FinishedAt   time.Time     `json:"finished_at"`
	Model        string        `json:"model"`
	Profile      Profile       `json:"user_profile"`
	Stages       []StageOutput `json:"stage_outputs"`
	Projects     []ProjectIdea `json:"recommendations"`
	Presentation string        `json:"presentation"`
}

type FeedbackEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
