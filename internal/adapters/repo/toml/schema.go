package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Sessions []sessionSchema `toml:"sessions"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported sessions schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	ID         string        `toml:"id"`
	RunID      string        `toml:"run_id"`
	StartedAt  string        `toml:"started_at"`
	FinishedAt string        `toml:"finished_at"`
	Status     string        `toml:"status"`
	Model      string        `toml:"model,omitempty"`
	Answered   int           `toml:"answered"`
	Skipped    int           `toml:"skipped"`
	Projects   int           `toml:"projects"`
	OutputDir  string        `toml:"output_dir,omitempty"`
	Stages     []stageSchema `toml:"stages,omitempty"`
}

type stageSchema struct {
	Name       string `toml:"name"`
	Status     string `toml:"status"`
	DurationMS int64  `toml:"duration_ms"`
	Error      string `toml:"error,omitempty"`
}
