package report

import (
	"fmt"
	"strings"

	"github.com/bnema/ideaforge/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ReportData is everything the final run report shows: who it is for,
// what was recommended, and where the artifacts ended up.
type ReportData struct {
	Profile          domain.Profile
	Projects         []domain.ProjectIdea
	Record           domain.SessionRecord
	ResultsPath      string
	CSVPath          string
	PresentationPath string
}

// Banner opens the interview.
func Banner() string {
	s := newStyles()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.banner.Render("IdeaForge"),
		s.tagline.Render("A few questions about you, then ranked project ideas built for you."),
		s.tip.Render("Answer freely. Type 'skip' to pass, 'back' to revisit, 'quit' to leave."),
	)
}

// Question renders one dialogue turn. A non-empty prior answer is shown
// so the user can keep it with an empty line when re-running the
// dialogue after rejecting the summary.
func Question(q domain.Question, position, total int, prior string) string {
	s := newStyles()

	header := s.counter.Render(fmt.Sprintf("[%d/%d]", position, total))
	if q.Required {
		header += " " + s.required.Render("*")
	}

	lines := []string{
		header,
		s.prompt.Render(q.Prompt),
	}
	if prior != "" {
		lines = append(lines, s.prior.Render(fmt.Sprintf("(enter to keep: %s)", prior)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// AnswerSummary is the confirmation card shown before the pipeline runs.
func AnswerSummary(questions domain.Questionnaire, summary domain.Summary) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Here's what I got:"),
	}

	for _, q := range questions {
		answer, ok := summary.Value(q.ID)
		if !ok {
			lines = append(lines, fmt.Sprintf("%s %s",
				s.label.Render(labelFor(q.ID)+":"),
				s.empty.Render("(skipped)")))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s",
			s.label.Render(labelFor(q.ID)+":"),
			s.value.Render(answer)))
	}

	if summary.Skipped > 0 {
		lines = append(lines, s.empty.Render(fmt.Sprintf("%d question(s) skipped", summary.Skipped)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderReport(data ReportData, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Project recommendations for %s", displayName(data.Profile))),
		s.counter.Render(fmt.Sprintf("session: %s | model: %s | projects: %d",
			data.Record.ID, data.Record.Model, len(data.Projects))),
	}

	if len(data.Projects) == 0 {
		lines = append(lines, s.empty.Render("No projects survived ranking."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, idea := range data.Projects {
		lines = append(lines, s.section.Render(renderProject(idea, s)))
	}

	lines = append(lines, s.section.Render(renderArtifacts(data, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProject(idea domain.ProjectIdea, s styles) string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.rank.Render(fmt.Sprintf("#%d", idea.Rank)),
		" ",
		s.projectName.Render(idea.Title),
		" ",
		s.score.Render(fmt.Sprintf("(%.1f/10)", idea.OverallScore)),
	)

	parts := []string{header}
	if idea.Description != "" {
		parts = append(parts, s.detail.Render(idea.Description))
	}

	meta := make([]string, 0, 3)
	if idea.Domain != "" {
		meta = append(meta, idea.Domain)
	}
	if idea.Difficulty != "" {
		meta = append(meta, idea.Difficulty)
	}
	if idea.EstimatedTime != "" {
		meta = append(meta, idea.EstimatedTime)
	}
	if len(meta) > 0 {
		parts = append(parts, s.label.Render(strings.Join(meta, " | ")))
	}
	if len(idea.Technologies) > 0 {
		parts = append(parts, s.label.Render("tech: ")+s.value.Render(strings.Join(idea.Technologies, ", ")))
	}
	if idea.Rationale != "" {
		parts = append(parts, s.tip.Render(idea.Rationale))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderArtifacts(data ReportData, s styles) string {
	lines := []string{
		s.success.Render("Saved:"),
	}
	for _, path := range []string{data.ResultsPath, data.CSVPath, data.PresentationPath} {
		if path == "" {
			continue
		}
		lines = append(lines, s.value.Render("  "+path))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// SessionsTable lists the execution history, one line per run.
func SessionsTable(records []domain.SessionRecord) string {
	s := newStyles()

	if len(records) == 0 {
		return s.empty.Render("No sessions recorded yet.")
	}

	lines := []string{
		s.tableHeader.Render(fmt.Sprintf("%-26s %-20s %-10s %8s %10s", "ID", "STARTED", "STATUS", "PROJECTS", "DURATION")),
	}
	for _, record := range records {
		status := string(record.Status)
		line := fmt.Sprintf("%-26s %-20s %-10s %8d %10s",
			record.ID,
			record.StartedAt.Format("2006-01-02 15:04:05"),
			status,
			record.Projects,
			record.Duration().Round(timeRounding),
		)
		if record.Status == domain.RunStatusFailed {
			lines = append(lines, s.warning.Render(line))
			continue
		}
		lines = append(lines, s.value.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// SessionDetail shows one history record including its stage timings.
func SessionDetail(record domain.SessionRecord) string {
	s := newStyles()

	lines := []string{
		s.title.Render(string(record.ID)),
		s.label.Render("run: ") + s.value.Render(record.RunID),
		s.label.Render("status: ") + statusStyle(record.Status, s).Render(string(record.Status)),
		s.label.Render("model: ") + s.value.Render(record.Model),
		s.label.Render("started: ") + s.value.Render(record.StartedAt.Format("2006-01-02 15:04:05")),
		s.label.Render("answered/skipped: ") + s.value.Render(fmt.Sprintf("%d/%d", record.Answered, record.Skipped)),
		s.label.Render("projects: ") + s.value.Render(fmt.Sprintf("%d", record.Projects)),
		s.label.Render("output: ") + s.value.Render(record.OutputDir),
	}

	if len(record.Stages) > 0 {
		lines = append(lines, s.section.Render(s.tableHeader.Render("stages")))
		for _, stage := range record.Stages {
			line := fmt.Sprintf("  %-20s %-10s %8s", stage.Name, stage.Status, stage.Duration.Round(timeRounding))
			if stage.Error != "" {
				line += "  " + stage.Error
			}
			lines = append(lines, statusStyle(stage.Status, s).Render(line))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statusStyle(status domain.RunStatus, s styles) lipgloss.Style {
	if status == domain.RunStatusFailed {
		return s.warning
	}
	return s.value
}

func labelFor(id domain.QuestionID) string {
	label := strings.ReplaceAll(string(id), "_", " ")
	if label == "" {
		return label
	}

	return strings.ToUpper(label[:1]) + label[1:]
}

func displayName(profile domain.Profile) string {
	if profile.Name == "" {
		return "you"
	}
	return profile.Name
}
