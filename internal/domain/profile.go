package domain

import (
	"strings"
	"time"
)

type LanguageSkill struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

// Profile is the structured form of an interview summary, assembled
// locally before anything is sent to the model.
type Profile struct {
	SessionID           SessionID       `json:"profile_id"`
	CreatedAt           time.Time       `json:"created_at"`
	Name                string          `json:"name"`
	CurrentRole         string          `json:"current_role"`
	ExperienceLevel     string          `json:"experience_level"`
	Languages           []LanguageSkill `json:"programming_languages"`
	TechnologiesToLearn []string        `json:"technologies_to_learn,omitempty"`
	Interests           []string        `json:"interests"`
	CareerGoals         string          `json:"career_goals"`
	ProjectPreferences  string          `json:"project_preferences,omitempty"`
	TimeCommitment      string          `json:"time_commitment"`
	Budget              string          `json:"budget"`
}

func BuildProfile(summary Summary, sessionID SessionID, createdAt time.Time) Profile {
	value := func(id QuestionID) string {
		v, _ := summary.Value(id)
		return v
	}

	budget := value(QuestionBudgetConstraints)
	if budget == "" {
		budget = "free"
	}

	return Profile{
		SessionID:           sessionID,
		CreatedAt:           createdAt,
		Name:                value(QuestionName),
		CurrentRole:         value(QuestionCurrentRole),
		ExperienceLevel:     StandardizeExperienceLevel(value(QuestionExperienceLevel)),
		Languages:           ParseLanguageSkills(value(QuestionProgrammingLanguages)),
		TechnologiesToLearn: splitAndTrim(value(QuestionTechnologiesToLearn)),
		Interests:           splitAndTrim(value(QuestionInterests)),
		CareerGoals:         value(QuestionCareerGoals),
		ProjectPreferences:  value(QuestionProjectPreferences),
		TimeCommitment:      value(QuestionTimeCommitment),
		Budget:              budget,
	}
}

// StandardizeExperienceLevel maps free-text experience descriptions onto
// beginner/intermediate/advanced/expert. Unrecognized input passes
// through lowercased and trimmed.
func StandardizeExperienceLevel(raw string) string {
	level := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case containsAny(level, "beginner", "new", "start", "learning"):
		return "beginner"
	case containsAny(level, "intermediate", "some", "moderate"):
		return "intermediate"
	case containsAny(level, "advanced", "experienced", "senior"):
		return "advanced"
	case containsAny(level, "expert", "professional", "master"):
		return "expert"
	}

	return level
}

// ParseLanguageSkills splits a comma-separated language list, reading an
// optional "language - level" pair from each element.
func ParseLanguageSkills(raw string) []LanguageSkill {
	var skills []LanguageSkill
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		language, level, found := strings.Cut(part, "-")
		if !found {
			skills = append(skills, LanguageSkill{Language: part, Level: "unknown"})
			continue
		}

		skills = append(skills, LanguageSkill{
			Language: strings.TrimSpace(language),
			Level:    strings.TrimSpace(level),
		})
	}

	return skills
}

func splitAndTrim(raw string) []string {
	var values []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		values = append(values, part)
	}

	return values
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}

	return false
}
