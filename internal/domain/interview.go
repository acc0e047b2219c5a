package domain

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusAborted    Status = "aborted"
)

// Control tokens recognized by the dialogue. Matching is case-insensitive
// on the trimmed input line.
const (
	CommandSkip = "skip"
	CommandBack = "back"
	CommandQuit = "quit"
)

type StepEvent string

const (
	StepAnswered       StepEvent = "answered"
	StepSkipped        StepEvent = "skipped"
	StepPassed         StepEvent = "passed"
	StepMovedBack      StepEvent = "moved_back"
	StepAtFirst        StepEvent = "at_first"
	StepAnswerRequired StepEvent = "answer_required"
	StepAborted        StepEvent = "aborted"
)

type StepResult struct {
	Event StepEvent
	// Next is the question now awaiting an answer, nil once the
	// interview reached a terminal state.
	Next *Question
}

// Interview walks one user through a questionnaire, one input line per
// step. It is a single-caller turn-taking machine and is not safe for
// concurrent use.
type Interview struct {
	questions Questionnaire
	index     int
	answers   map[QuestionID]string
	status    Status
}

func NewInterview(questions Questionnaire) (*Interview, error) {
	if err := questions.Validate(); err != nil {
		return nil, fmt.Errorf("invalid questionnaire: %w", err)
	}

	return &Interview{
		questions: questions,
		answers:   make(map[QuestionID]string, len(questions)),
		status:    StatusInProgress,
	}, nil
}

func (iv *Interview) Status() Status { return iv.status }

// Index is the 0-based position of the question awaiting an answer.
// It equals Len() exactly when the interview completed.
func (iv *Interview) Index() int { return iv.index }

func (iv *Interview) Len() int { return len(iv.questions) }

func (iv *Interview) Answered() int { return len(iv.answers) }

// Questions returns a copy of the questionnaire being walked through.
func (iv *Interview) Questions() Questionnaire {
	return append(Questionnaire(nil), iv.questions...)
}

func (iv *Interview) Answer(id QuestionID) (string, bool) {
	answer, ok := iv.answers[id]
	return answer, ok
}

func (iv *Interview) CurrentQuestion() (Question, bool) {
	if iv.status != StatusInProgress || iv.index >= len(iv.questions) {
		return Question{}, false
	}

	return iv.questions[iv.index], true
}

// Apply consumes one raw input line and advances the dialogue:
// quit aborts, skip moves on without recording, back returns to the
// previous question discarding its answer, an empty line on a required
// question re-prompts, and anything else is recorded (trimmed) as the
// answer, overwriting any prior value.
func (iv *Interview) Apply(raw string) (StepResult, error) {
	if iv.status != StatusInProgress {
		return StepResult{}, ErrInterviewFinished
	}

	input := strings.TrimSpace(raw)
	switch strings.ToLower(input) {
	case CommandQuit:
		iv.status = StatusAborted
		return StepResult{Event: StepAborted}, nil
	case CommandSkip:
		return iv.advance(StepSkipped), nil
	case CommandBack:
		if iv.index == 0 {
			return StepResult{Event: StepAtFirst, Next: iv.current()}, nil
		}
		iv.index--
		delete(iv.answers, iv.questions[iv.index].ID)
		return StepResult{Event: StepMovedBack, Next: iv.current()}, nil
	}

	question := iv.questions[iv.index]
	if input == "" {
		if question.Required {
			return StepResult{Event: StepAnswerRequired, Next: iv.current()}, nil
		}
		return iv.advance(StepPassed), nil
	}

	iv.answers[question.ID] = input
	return iv.advance(StepAnswered), nil
}

func (iv *Interview) advance(event StepEvent) StepResult {
	iv.index++
	if iv.index >= len(iv.questions) {
		iv.index = len(iv.questions)
		iv.status = StatusCompleted
		return StepResult{Event: event}
	}

	return StepResult{Event: event, Next: iv.current()}
}

func (iv *Interview) current() *Question {
	if iv.index < 0 || iv.index >= len(iv.questions) {
		return nil
	}

	q := iv.questions[iv.index]
	return &q
}

type SummaryEntry struct {
	QuestionID QuestionID
	Answer     string
}

// Summary is the finalized answer set of a completed interview: every
// answered question in question order, plus how many were left
// unanswered.
type Summary struct {
	Entries []SummaryEntry
	Skipped int
}

func (s Summary) Value(id QuestionID) (string, bool) {
	for _, entry := range s.Entries {
		if entry.QuestionID == id {
			return entry.Answer, true
		}
	}

	return "", false
}

// Summary returns the ordered answer set of a completed interview.
// It never mutates the interview; repeated calls return equal values.
// Aborted or in-progress interviews have no summary.
func (iv *Interview) Summary() (Summary, error) {
	if iv.status != StatusCompleted {
		return Summary{}, ErrSummaryNotAvailable
	}

	entries := make([]SummaryEntry, 0, len(iv.answers))
	for _, q := range iv.questions {
		if answer, ok := iv.answers[q.ID]; ok {
			entries = append(entries, SummaryEntry{QuestionID: q.ID, Answer: answer})
		}
	}

	return Summary{
		Entries: entries,
		Skipped: len(iv.questions) - len(entries),
	}, nil
}
