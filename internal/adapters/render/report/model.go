package report

import (
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

const timeRounding = 100 * time.Millisecond

type renderReadyMsg struct{}

type model struct {
	data   ReportData
	styles styles
	output string
}

func newModel(data ReportData) model {
	return model{
		data:   data,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderReport(m.data, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render produces the final run report through a one-shot bubbletea
// program so lipgloss resolves the color profile the same way the
// interactive views do.
func Render(data ReportData) (string, error) {
	p := tea.NewProgram(
		newModel(data),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
