package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/ideaforge/internal/domain"
	"github.com/spf13/cobra"
)

func newQuestionsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the onboarding questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			questions := domain.DefaultQuestionnaire()

			if asJSON {
				type questionJSON struct {
					ID       domain.QuestionID `json:"id"`
					Prompt   string            `json:"prompt"`
					Required bool              `json:"required"`
				}
				out := make([]questionJSON, 0, len(questions))
				for _, q := range questions {
					out = append(out, questionJSON{ID: q.ID, Prompt: q.Prompt, Required: q.Required})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			for i, q := range questions {
				marker := " "
				if q.Required {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%2d %s %-24s %s\n", i+1, marker, q.ID, q.Prompt)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\n* required")

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
