package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardizeExperienceLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain beginner", raw: "beginner", want: "beginner"},
		{name: "new to coding", raw: "I'm new to all of this", want: "beginner"},
		{name: "just starting", raw: "just STARTing out", want: "beginner"},
		{name: "some experience", raw: "some experience here and there", want: "intermediate"},
		{name: "moderate", raw: "Moderate", want: "intermediate"},
		{name: "senior", raw: "senior engineer", want: "advanced"},
		{name: "experienced", raw: "fairly experienced", want: "advanced"},
		{name: "professional", raw: "working professional", want: "expert"},
		{name: "master", raw: "master of none", want: "expert"},
		{name: "unrecognized passes through", raw: "  WiZaRd  ", want: "wizard"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, StandardizeExperienceLevel(tc.raw))
		})
	}
}

func TestParseLanguageSkills(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []LanguageSkill
	}{
		{
			name: "language with level",
			raw:  "Python - intermediate, JavaScript - beginner",
			want: []LanguageSkill{
				{Language: "Python", Level: "intermediate"},
				{Language: "JavaScript", Level: "beginner"},
			},
		},
		{
			name: "bare language defaults to unknown",
			raw:  "Go",
			want: []LanguageSkill{{Language: "Go", Level: "unknown"}},
		},
		{
			name: "mixed with stray commas",
			raw:  "Go, , Rust - learning,",
			want: []LanguageSkill{
				{Language: "Go", Level: "unknown"},
				{Language: "Rust", Level: "learning"},
			},
		},
		{name: "empty input", raw: "", want: nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ParseLanguageSkills(tc.raw))
		})
	}
}

func TestBuildProfile(t *testing.T) {
	t.Parallel()

	summary := Summary{
		Entries: []SummaryEntry{
			{QuestionID: QuestionName, Answer: "Ada"},
			{QuestionID: QuestionCurrentRole, Answer: "student"},
			{QuestionID: QuestionExperienceLevel, Answer: "I'm fairly experienced"},
			{QuestionID: QuestionProgrammingLanguages, Answer: "Python - intermediate, Go - beginner"},
			{QuestionID: QuestionInterests, Answer: "AI/ML, Web Development"},
			{QuestionID: QuestionCareerGoals, Answer: "ship real software"},
			{QuestionID: QuestionTimeCommitment, Answer: "5-10 hours"},
		},
		Skipped: 3,
	}

	createdAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	profile := BuildProfile(summary, "session_20260301_093000", createdAt)

	assert.Equal(t, SessionID("session_20260301_093000"), profile.SessionID)
	assert.Equal(t, createdAt, profile.CreatedAt)
	assert.Equal(t, "Ada", profile.Name)
	assert.Equal(t, "advanced", profile.ExperienceLevel)
	require.Len(t, profile.Languages, 2)
	assert.Equal(t, "Python", profile.Languages[0].Language)
	assert.Equal(t, []string{"AI/ML", "Web Development"}, profile.Interests)
	assert.Equal(t, "5-10 hours", profile.TimeCommitment)

	// Unanswered budget falls back to free.
	assert.Equal(t, "free", profile.Budget)
	assert.Empty(t, profile.TechnologiesToLearn)
}

func TestSummaryValue(t *testing.T) {
	t.Parallel()

	summary := Summary{Entries: []SummaryEntry{{QuestionID: "name", Answer: "Ada"}}}

	v, ok := summary.Value("name")
	require.True(t, ok)
	assert.Equal(t, "Ada", v)

	_, ok = summary.Value("missing")
	assert.False(t, ok)
}
