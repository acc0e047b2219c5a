package report

import (
	"testing"
	"time"

	"github.com/bnema/ideaforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReportListsRankedProjects(t *testing.T) {
	startedAt := time.Date(2026, 8, 21, 10, 15, 0, 0, time.UTC)

	output, err := Render(ReportData{
		Profile: domain.Profile{Name: "Ada", ExperienceLevel: "intermediate"},
		Projects: []domain.ProjectIdea{
			{
				Rank:          1,
				Title:         "Trail Conditions API",
				Description:   "A public API aggregating hiking trail conditions.",
				Domain:        "Web Development",
				Difficulty:    "intermediate",
				EstimatedTime: "4 weeks at 10h/week",
				Technologies:  []string{"Go", "PostgreSQL"},
				OverallScore:  8.6,
				Rationale:     "Best fit for stated backend interest.",
			},
			{Rank: 2, Title: "Sensor Anomaly Notebook", OverallScore: 7.9},
		},
		Record: domain.SessionRecord{
			ID:        "session_20260821_101500",
			Model:     "gemini-2.0-flash",
			StartedAt: startedAt,
			Status:    domain.RunStatusCompleted,
		},
		ResultsPath:      "/tmp/out/results_session_20260821_101500.json",
		CSVPath:          "/tmp/out/project_recommendations_session_20260821_101500.csv",
		PresentationPath: "/tmp/out/presentation_session_20260821_101500.md",
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Project recommendations for Ada")
	assert.Contains(t, output, "session: session_20260821_101500")
	assert.Contains(t, output, "#1 Trail Conditions API (8.6/10)")
	assert.Contains(t, output, "Web Development | intermediate | 4 weeks at 10h/week")
	assert.Contains(t, output, "tech: Go, PostgreSQL")
	assert.Contains(t, output, "#2 Sensor Anomaly Notebook")
	assert.Contains(t, output, "results_session_20260821_101500.json")
}

func TestRenderReportWithoutProjects(t *testing.T) {
	output, err := Render(ReportData{
		Profile: domain.Profile{},
		Record:  domain.SessionRecord{ID: "session_x"},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Project recommendations for you")
	assert.Contains(t, output, "No projects survived ranking.")
}

func TestQuestionShowsCounterRequiredMarkerAndPriorAnswer(t *testing.T) {
	q := domain.Question{ID: domain.QuestionName, Prompt: "What's your name?", Required: true}

	output := Question(q, 1, 10, "Ada")
	assert.Contains(t, output, "[1/10]")
	assert.Contains(t, output, "*")
	assert.Contains(t, output, "What's your name?")
	assert.Contains(t, output, "(enter to keep: Ada)")

	optional := domain.Question{ID: domain.QuestionBudgetConstraints, Prompt: "Budget?"}
	output = Question(optional, 10, 10, "")
	assert.Contains(t, output, "[10/10]")
	assert.NotContains(t, output, "enter to keep")
}

func TestAnswerSummaryMarksSkippedQuestions(t *testing.T) {
	questions := domain.Questionnaire{
		{ID: domain.QuestionName, Prompt: "Name?", Required: true},
		{ID: domain.QuestionInterests, Prompt: "Interests?", Required: true},
	}
	summary := domain.Summary{
		Entries: []domain.SummaryEntry{{QuestionID: domain.QuestionName, Answer: "Ada"}},
		Skipped: 1,
	}

	output := AnswerSummary(questions, summary)
	assert.Contains(t, output, "Name: Ada")
	assert.Contains(t, output, "Interests: (skipped)")
	assert.Contains(t, output, "1 question(s) skipped")
}

func TestSessionsTable(t *testing.T) {
	startedAt := time.Date(2026, 8, 21, 10, 15, 0, 0, time.UTC)
	records := []domain.SessionRecord{
		{
			ID:         "session_20260821_101500",
			StartedAt:  startedAt,
			FinishedAt: startedAt.Add(90 * time.Second),
			Status:     domain.RunStatusCompleted,
			Projects:   10,
		},
		{
			ID:        "session_20260820_090000",
			StartedAt: startedAt.Add(-25 * time.Hour),
			Status:    domain.RunStatusFailed,
		},
	}

	output := SessionsTable(records)
	assert.Contains(t, output, "session_20260821_101500")
	assert.Contains(t, output, "completed")
	assert.Contains(t, output, "failed")
	assert.Contains(t, output, "1m30s")

	assert.Contains(t, SessionsTable(nil), "No sessions recorded yet.")
}

func TestSessionDetailIncludesStages(t *testing.T) {
	startedAt := time.Date(2026, 8, 21, 10, 15, 0, 0, time.UTC)
	record := domain.SessionRecord{
		ID:         "session_20260821_101500",
		RunID:      "run-1",
		StartedAt:  startedAt,
		FinishedAt: startedAt.Add(3 * time.Minute),
		Status:     domain.RunStatusFailed,
		Model:      "gemini-2.0-flash",
		Answered:   7,
		Skipped:    3,
		OutputDir:  "/tmp/out",
		Stages: []domain.StageResult{
			{Name: "onboarding", Status: domain.RunStatusCompleted, Duration: 1200 * time.Millisecond},
			{Name: "profile_analysis", Status: domain.RunStatusFailed, Duration: 400 * time.Millisecond, Error: "model unavailable"},
		},
	}

	output := SessionDetail(record)
	assert.Contains(t, output, "run-1")
	assert.Contains(t, output, "answered/skipped: 7/3")
	assert.Contains(t, output, "onboarding")
	assert.Contains(t, output, "model unavailable")
}
