package domain

import (
	"fmt"
	"strings"
)

type QuestionID string

const (
	QuestionName                 QuestionID = "name"
	QuestionCurrentRole          QuestionID = "current_role"
	QuestionExperienceLevel      QuestionID = "experience_level"
	QuestionProgrammingLanguages QuestionID = "programming_languages"
	QuestionInterests            QuestionID = "interests"
	QuestionCareerGoals          QuestionID = "career_goals"
	QuestionTimeCommitment       QuestionID = "time_commitment"
	QuestionProjectPreferences   QuestionID = "project_preferences"
	QuestionTechnologiesToLearn  QuestionID = "technologies_to_learn"
	QuestionBudgetConstraints    QuestionID = "budget_constraints"
)

type Question struct {
	ID       QuestionID
	Prompt   string
	Required bool
}

func (q Question) Validate() error {
	if strings.TrimSpace(string(q.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}

	return nil
}

// Questionnaire is the fixed ordered list of questions for one dialogue.
type Questionnaire []Question

func (qs Questionnaire) Validate() error {
	if len(qs) == 0 {
		return fmt.Errorf("at least one question is required")
	}

	seen := make(map[QuestionID]struct{}, len(qs))
	for i, q := range qs {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
		if _, ok := seen[q.ID]; ok {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}
	}

	return nil
}

func (qs Questionnaire) Question(id QuestionID) (Question, error) {
	for _, q := range qs {
		if q.ID == id {
			return q, nil
		}
	}

	return Question{}, ErrQuestionNotFound
}

// DefaultQuestionnaire returns the onboarding questions asked before
// recommendations are generated.
func DefaultQuestionnaire() Questionnaire {
	return Questionnaire{
		{
			ID:       QuestionName,
			Prompt:   "What's your name? (or what would you like me to call you?)",
			Required: true,
		},
		{
			ID:       QuestionCurrentRole,
			Prompt:   "What's your current role or status? (e.g., student, software developer, career changer, etc.)",
			Required: true,
		},
		{
			ID:       QuestionExperienceLevel,
			Prompt:   "How would you describe your overall experience with programming/technology? (beginner, intermediate, advanced, expert)",
			Required: true,
		},
		{
			ID:       QuestionProgrammingLanguages,
			Prompt:   "Which programming languages do you know? Please list them with your comfort level (e.g., 'Python - intermediate, JavaScript - beginner')",
			Required: true,
		},
		{
			ID:       QuestionInterests,
			Prompt:   "What areas of technology interest you most? (e.g., AI/ML, Web Development, Mobile Apps, Data Science, Game Development, etc.)",
			Required: true,
		},
		{
			ID:       QuestionCareerGoals,
			Prompt:   "What are your career goals? What do you hope to achieve in the next 6-12 months?",
			Required: true,
		},
		{
			ID:       QuestionTimeCommitment,
			Prompt:   "How much time can you dedicate to a project per week? (e.g., 2-3 hours, 5-10 hours, 15+ hours)",
			Required: true,
		},
		{
			ID:       QuestionProjectPreferences,
			Prompt:   "What type of projects appeal to you? (learning projects, portfolio pieces, potential business ideas, open source contributions, etc.)",
			Required: false,
		},
		{
			ID:       QuestionTechnologiesToLearn,
			Prompt:   "Are there any specific technologies or frameworks you're excited to learn?",
			Required: false,
		},
		{
			ID:       QuestionBudgetConstraints,
			Prompt:   "Do you have any budget constraints for tools, hosting, or resources? (free only, low budget, moderate budget, no constraints)",
			Required: false,
		},
	}
}

// FeedbackQuestionnaire returns the optional questions asked after the
// recommendations have been presented.
func FeedbackQuestionnaire() Questionnaire {
	return Questionnaire{
		{
			ID:     "satisfaction",
			Prompt: "How satisfied are you with these recommendations? (1-10)",
		},
		{
			ID:     "favorite_project",
			Prompt: "Which project interests you most?",
		},
		{
			ID:     "improvement_wishes",
			Prompt: "Is there anything specific you'd like to see in future recommendations?",
		},
	}
}
