package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeQuestions() Questionnaire {
	return Questionnaire{
		{ID: "name", Prompt: "Name?", Required: true},
		{ID: "skill", Prompt: "Skill?", Required: true},
		{ID: "interest", Prompt: "Interest?", Required: true},
	}
}

func mustInterview(t *testing.T, qs Questionnaire) *Interview {
	t.Helper()
	iv, err := NewInterview(qs)
	require.NoError(t, err)
	return iv
}

func TestInterviewAnswerEveryQuestionCompletes(t *testing.T) {
	t.Parallel()

	iv := mustInterview(t, threeQuestions())
	inputs := []string{"Ada", "Go", "Compilers"}

	for i, input := range inputs {
		require.Equal(t, StatusInProgress, iv.Status())
		require.Equal(t, i, iv.Index())

		res, err := iv.Apply(input)
		require.NoError(t, err)
		assert.Equal(t, StepAnswered, res.Event)
	}

	assert.Equal(t, StatusCompleted, iv.Status())
	assert.Equal(t, iv.Len(), iv.Index())

	summary, err := iv.Summary()
	require.NoError(t, err)
	assert.Equal(t, []SummaryEntry{
		{QuestionID: "name", Answer: "Ada"},
		{QuestionID: "skill", Answer: "Go"},
		{QuestionID: "interest", Answer: "Compilers"},
	}, summary.Entries)
	assert.Zero(t, summary.Skipped)
}

func TestInterviewBackAtFirstQuestionIsNoOp(t *testing.T) {
	t.Parallel()

	iv := mustInterview(t, threeQuestions())

	res, err := iv.Apply("back")
	require.NoError(t, err)

	assert.Equal(t, StepAtFirst, res.Event)
	require.NotNil(t, res.Next)
	assert.Equal(t, QuestionID("name"), res.Next.ID)
	assert.Equal(t, 0, iv.Index())
	assert.Equal(t, StatusInProgress, iv.Status())
	assert.Zero(t, iv.Answered())
}

func TestInterviewBackDiscardsPreviousAnswer(t *testing.T) {
	t.Parallel()

	iv := mustInterview(t, threeQuestions())

	_, err := iv.Apply("Ada")
	require.NoError(t, err)

	res, err := iv.Apply("back")
	require.NoError(t, err)
	assert.Equal(t, StepMovedBack, res.Event)
	assert.Equal(t, 0, iv.Index())

	_, answered := iv.Answer("name")
	assert.False(t, answered)
}

func TestInterviewSkipThenBackThenAnswer(t *testing.T) {
	t.Parallel()

	iv := mustInterview(t, threeQuestions())

	res, err := iv.Apply("skip")
	require.NoError(t, err)
	require.Equal(t, StepSkipped, res.Event)
	require.Equal(t, 1, iv.Index())

	res, err = iv.Apply("back")
	require.NoError(t, err)
	require.Equal(t, StepMovedBack, res.Event)
	require.Equal(t, 0, iv.Index())

	res, err = iv.Apply("Ada")
	require.NoError(t, err)
	require.Equal(t, StepAnswered, res.Event)

	answer, ok := iv.Answer("name")
	require.True(t, ok)
	assert.Equal(t, "Ada", answer)
	assert.Equal(t, 1, iv.Answered())
}

func TestInterviewQuitAbortsAtAnyIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		before     []string
		quitInput  string
	}{
		{name: "at first question", quitInput: "quit"},
		{name: "mid interview", before: []string{"Ada"}, quitInput: "quit"},
		{name: "at last question", before: []string{"Ada", "Go"}, quitInput: "quit"},
		{name: "uppercase", before: []string{"Ada"}, quitInput: "QUIT"},
		{name: "surrounding whitespace", before: []string{"Ada"}, quitInput: "  quit  "},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			iv := mustInterview(t, threeQuestions())
			for _, input := range tc.before {
				_, err := iv.Apply(input)
				require.NoError(t, err)
			}

			res, err := iv.Apply(tc.quitInput)
			require.NoError(t, err)
			assert.Equal(t, StepAborted, res.Event)
			assert.Nil(t, res.Next)
			assert.Equal(t, StatusAborted, iv.Status())

			_, err = iv.Summary()
			assert.ErrorIs(t, err, ErrSummaryNotAvailable)
		})
	}
}

func TestInterviewSummaryIsIdempotent(t *testing.T) {
	t.Parallel()

	iv := mustInterview(t, threeQuestions())
	for _, input := range []string{"Ada", "skip", "ML"} {
		_, err := iv.Apply(input)
		require.NoError(t, err)
	}
	require.Equal(t, StatusCompleted, iv.Status())

	first, err := iv.Summary()
	require.NoError(t, err)

	// Mutating the returned copy must not leak into later reads.
	first.Entries[0].Answer = "mangled"

	second, err := iv.Summary()
	require.NoError(t, err)
	third, err := iv.Summary()
	require.NoError(t, err)

	assert.Equal(t, second, third)
	assert.Equal(t, "Ada", second.Entries[0].Answer)
	assert.Equal(t, 1, second.Skipped)
}

func TestInterviewTraceBackDiscardsSkipPasses(t *testing.T) {
	t.Parallel()

	iv := mustInterview(t, threeQuestions())

	steps := []struct {
		input     string
		wantEvent StepEvent
		wantIndex int
	}{
		{input: "Ada", wantEvent: StepAnswered, wantIndex: 1},
		{input: "back", wantEvent: StepMovedBack, wantIndex: 0},
		{input: "Python", wantEvent: StepAnswered, wantIndex: 1},
		{input: "skip", wantEvent: StepSkipped, wantIndex: 2},
		{input: "ML", wantEvent: StepAnswered, wantIndex: 3},
	}

	for _, step := range steps {
		res, err := iv.Apply(step.input)
		require.NoError(t, err, "input %q", step.input)
		assert.Equal(t, step.wantEvent, res.Event, "input %q", step.input)
		assert.Equal(t, step.wantIndex, iv.Index(), "input %q", step.input)
	}

	require.Equal(t, StatusCompleted, iv.Status())

	summary, err := iv.Summary()
	require.NoError(t, err)
	assert.Equal(t, []SummaryEntry{
		{QuestionID: "name", Answer: "Python"},
		{QuestionID: "interest", Answer: "ML"},
	}, summary.Entries)
	assert.Equal(t, 1, summary.Skipped)
}

func TestInterviewEmptyInputOnRequiredQuestionReprompts(t *testing.T) {
	t.Parallel()

	iv := mustInterview(t, threeQuestions())

	for _, input := range []string{"", "   ", "\t"} {
		res, err := iv.Apply(input)
		require.NoError(t, err)
		assert.Equal(t, StepAnswerRequired, res.Event)
		assert.Equal(t, 0, iv.Index())
	}

	assert.Zero(t, iv.Answered())
	assert.Equal(t, StatusInProgress, iv.Status())
}

func TestInterviewEmptyInputOnOptionalQuestionPasses(t *testing.T) {
	t.Parallel()

	iv := mustInterview(t, Questionnaire{
		{ID: "name", Prompt: "Name?", Required: true},
		{ID: "budget", Prompt: "Budget?"},
	})

	_, err := iv.Apply("Ada")
	require.NoError(t, err)

	res, err := iv.Apply("")
	require.NoError(t, err)
	assert.Equal(t, StepPassed, res.Event)
	assert.Equal(t, StatusCompleted, iv.Status())

	summary, err := iv.Summary()
	require.NoError(t, err)
	assert.Len(t, summary.Entries, 1)
	assert.Equal(t, 1, summary.Skipped)
}

func TestInterviewReanswerOverwrites(t *testing.T) {
	t.Parallel()

	iv := mustInterview(t, threeQuestions())

	_, err := iv.Apply("Ada")
	require.NoError(t, err)
	_, err = iv.Apply("back")
	require.NoError(t, err)
	_, err = iv.Apply("Grace")
	require.NoError(t, err)

	answer, ok := iv.Answer("name")
	require.True(t, ok)
	assert.Equal(t, "Grace", answer)
	assert.Equal(t, 1, iv.Answered())
}

func TestInterviewAnswersAreTrimmed(t *testing.T) {
	t.Parallel()

	iv := mustInterview(t, threeQuestions())

	_, err := iv.Apply("  Ada Lovelace \n")
	require.NoError(t, err)

	answer, ok := iv.Answer("name")
	require.True(t, ok)
	assert.Equal(t, "Ada Lovelace", answer)
}

func TestInterviewControlTokensAreCaseInsensitive(t *testing.T) {
	t.Parallel()

	iv := mustInterview(t, threeQuestions())

	res, err := iv.Apply("SKIP")
	require.NoError(t, err)
	assert.Equal(t, StepSkipped, res.Event)

	res, err = iv.Apply(" Back ")
	require.NoError(t, err)
	assert.Equal(t, StepMovedBack, res.Event)
	assert.Equal(t, 0, iv.Index())
}

func TestInterviewApplyAfterTerminalStateFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		inputs []string
	}{
		{name: "completed", inputs: []string{"Ada", "Go", "ML"}},
		{name: "aborted", inputs: []string{"quit"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			iv := mustInterview(t, threeQuestions())
			for _, input := range tc.inputs {
				_, err := iv.Apply(input)
				require.NoError(t, err)
			}

			_, err := iv.Apply("more")
			assert.ErrorIs(t, err, ErrInterviewFinished)
		})
	}
}

func TestInterviewIndexStaysWithinBounds(t *testing.T) {
	t.Parallel()

	iv := mustInterview(t, threeQuestions())
	inputs := []string{"back", "back", "a", "b", "back", "back", "back", "x", "y", "z"}

	for _, input := range inputs {
		if iv.Status() != StatusInProgress {
			break
		}
		_, err := iv.Apply(input)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, iv.Index(), 0)
		assert.LessOrEqual(t, iv.Index(), iv.Len())
	}

	if iv.Status() == StatusCompleted {
		assert.Equal(t, iv.Len(), iv.Index())
	}
}

func TestInterviewLongRun(t *testing.T) {
	t.Parallel()

	var qs Questionnaire
	for i := 0; i < 25; i++ {
		qs = append(qs, Question{
			ID:       QuestionID(fmt.Sprintf("q%02d", i)),
			Prompt:   fmt.Sprintf("Question %d?", i),
			Required: i%2 == 0,
		})
	}

	iv := mustInterview(t, qs)
	for i := 0; iv.Status() == StatusInProgress; i++ {
		_, err := iv.Apply(fmt.Sprintf("answer %d", i))
		require.NoError(t, err)
	}

	summary, err := iv.Summary()
	require.NoError(t, err)
	assert.Len(t, summary.Entries, 25)
	assert.Zero(t, summary.Skipped)

	for i, entry := range summary.Entries {
		assert.Equal(t, qs[i].ID, entry.QuestionID)
	}
}
