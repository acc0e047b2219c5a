package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/ideaforge/internal/adapters/render/report"
	"github.com/bnema/ideaforge/internal/application"
	"github.com/bnema/ideaforge/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInterviewCmd(app *app) *cobra.Command {
	var model string
	var outputDir string
	var skipFeedback bool

	cmd := &cobra.Command{
		Use:   "interview",
		Short: "Answer the onboarding questions and get ranked project ideas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInterview(cmd, app, model, outputDir, skipFeedback)
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "Model to use (default from config)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for run artifacts (default from config)")
	cmd.Flags().BoolVar(&skipFeedback, "skip-feedback", false, "Skip the feedback questions after the report")

	return cmd
}

func runInterview(cmd *cobra.Command, app *app, model, outputDir string, skipFeedback bool) error {
	out := cmd.OutOrStdout()

	if err := app.requireAPIKey(); err != nil {
		return err
	}
	if app.config.SearchAPIKey == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "note: no Serper API key configured; news trends are disabled")
	}

	fmt.Fprintln(out, report.Banner())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	questions := domain.DefaultQuestionnaire()

	// The dialogue restarts from the top when the user rejects the
	// summary; answers from the rejected pass are offered per question
	// and an empty line re-enters them.
	var prior map[domain.QuestionID]string
	var interview *domain.Interview

	for {
		var err error
		interview, err = domain.NewInterview(questions)
		if err != nil {
			return err
		}

		aborted, err := runDialogue(cmd, interview, scanner, prior)
		if err != nil {
			return err
		}
		if aborted {
			fmt.Fprintln(out, "\nNo problem, nothing was saved. Come back any time.")
			return nil
		}

		summary, err := interview.Summary()
		if err != nil {
			return err
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, report.AnswerSummary(questions, summary))
		fmt.Fprint(out, "\nDoes this look correct? (y/n) ")

		line, ok := readLine(scanner)
		if !ok || confirms(line) {
			break
		}

		prior = make(map[domain.QuestionID]string, len(summary.Entries))
		for _, entry := range summary.Entries {
			prior[entry.QuestionID] = entry.Answer
		}
		fmt.Fprintln(out, "\nLet's run through it again. Press enter to keep an answer.")
	}

	pipeline := app.pipelineService(model, outputDir)
	run := func(ctx context.Context, hooks application.RunHooks) (application.RunResult, error) {
		return pipeline.Run(ctx, interview, hooks)
	}

	fmt.Fprintln(out)
	var result application.RunResult
	var err error
	if term.IsTerminal(int(os.Stdout.Fd())) {
		result, err = runPipelineWithSpinner(cmd.Context(), cmd.ErrOrStderr(), run)
	} else {
		result, err = runPipelinePlain(cmd.Context(), cmd.ErrOrStderr(), run)
	}
	if err != nil {
		return err
	}

	rendered, err := report.Render(report.ReportData{
		Profile:          result.Profile,
		Projects:         result.Projects,
		Record:           result.Record,
		ResultsPath:      result.ResultsPath,
		CSVPath:          result.CSVPath,
		PresentationPath: result.PresentationPath,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, rendered)

	if skipFeedback {
		return nil
	}

	// Feedback is a bonus round; failing to collect or save it never
	// fails a run that already produced its artifacts.
	if err := runFeedback(cmd, pipeline, scanner, result.Record.ID); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "feedback not saved: %v\n", err)
	}

	return nil
}

// runDialogue walks one interview to a terminal state, one input line
// per question. It reports whether the user quit.
func runDialogue(cmd *cobra.Command, interview *domain.Interview, scanner *bufio.Scanner, prior map[domain.QuestionID]string) (bool, error) {
	out := cmd.OutOrStdout()

	question, ok := interview.CurrentQuestion()
	if !ok {
		return false, fmt.Errorf("interview has no current question")
	}

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, report.Question(question, interview.Index()+1, interview.Len(), prior[question.ID]))
		fmt.Fprint(out, "> ")

		line, ok := readLine(scanner)
		if !ok {
			// Input source is gone; treat it as quitting.
			line = domain.CommandQuit
		}
		if strings.TrimSpace(line) == "" {
			if keep, exists := prior[question.ID]; exists {
				line = keep
			}
		}

		result, err := interview.Apply(line)
		if err != nil {
			return false, err
		}

		switch result.Event {
		case domain.StepAborted:
			return true, nil
		case domain.StepAnswerRequired:
			fmt.Fprintln(out, "This one needs an answer (or 'skip' to move on).")
		case domain.StepAtFirst:
			fmt.Fprintln(out, "Already at the first question.")
		}

		if result.Next == nil {
			return false, nil
		}
		question = *result.Next
	}
}

func runFeedback(cmd *cobra.Command, pipeline *application.PipelineService, scanner *bufio.Scanner, id domain.SessionID) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\nOne last thing: quick feedback? Enter skips a question, 'quit' skips it all.")

	questions := domain.FeedbackQuestionnaire()
	interview, err := domain.NewInterview(questions)
	if err != nil {
		return err
	}

	aborted, err := runDialogue(cmd, interview, scanner, nil)
	if err != nil || aborted {
		return err
	}

	summary, err := interview.Summary()
	if err != nil {
		return err
	}

	path, err := pipeline.SaveFeedback(cmd.Context(), id, questions, summary)
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(out, "Thanks! Feedback saved to %s\n", path)
	}

	return nil
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}

	return scanner.Text(), true
}

func confirms(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}
