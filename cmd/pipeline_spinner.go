package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/ideaforge/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type stageStartedMsg struct {
	name string
}

type pipelineDoneMsg struct {
	result application.RunResult
	err    error
}

type pipelineSpinnerModel struct {
	spinner spinner.Model
	stage   string
	run     tea.Cmd
	result  application.RunResult
	err     error
	done    bool
}

func newPipelineSpinnerModel(run tea.Cmd) pipelineSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return pipelineSpinnerModel{
		spinner: s,
		stage:   "warming up",
		run:     run,
	}
}

func (m pipelineSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m pipelineSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stageStartedMsg:
		m.stage = msg.name
		return m, nil
	case pipelineDoneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m pipelineSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s Running %s...", m.spinner.View(), m.stage)
}

// runPipelineWithSpinner drives the full pipeline behind an animated
// stage indicator. The pipeline itself runs inside a bubbletea command;
// stage transitions arrive as messages through the run hooks.
func runPipelineWithSpinner(
	ctx context.Context,
	output io.Writer,
	run func(context.Context, application.RunHooks) (application.RunResult, error),
) (application.RunResult, error) {
	var p *tea.Program

	runCmd := func() tea.Msg {
		result, err := run(ctx, application.RunHooks{
			StageStarted: func(name string) {
				p.Send(stageStartedMsg{name: name})
			},
		})
		return pipelineDoneMsg{result: result, err: err}
	}

	p = tea.NewProgram(
		newPipelineSpinnerModel(runCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return application.RunResult{}, err
	}

	result, ok := finalModel.(pipelineSpinnerModel)
	if !ok {
		return application.RunResult{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.result, result.err
}

// runPipelinePlain is the non-TTY fallback: one line per stage.
func runPipelinePlain(
	ctx context.Context,
	output io.Writer,
	run func(context.Context, application.RunHooks) (application.RunResult, error),
) (application.RunResult, error) {
	return run(ctx, application.RunHooks{
		StageStarted: func(name string) {
			fmt.Fprintf(output, "running %s...\n", name)
		},
		StageFinished: func(name string, err error) {
			if err != nil {
				fmt.Fprintf(output, "%s failed: %v\n", name, err)
			}
		},
	})
}
