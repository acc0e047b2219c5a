package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/bnema/ideaforge/internal/application"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored API keys (gemini, serper)",
	}

	cmd.AddCommand(newAuthSetCmd(app), newAuthShowCmd(app), newAuthRemoveCmd(app))

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set <gemini|serper>",
		Short: "Store an API key in the secret store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := parseKeyName(args[0])
			if err != nil {
				return err
			}

			if value == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Enter %s API key: ", name)
				reader := bufio.NewReader(cmd.InOrStdin())
				line, err := reader.ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read key value: %w", err)
				}
				value = strings.TrimSpace(line)
			}

			if err := app.keys.Set(cmd.Context(), name, value); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s key.\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Key value (prompted when omitted)")

	return cmd
}

func newAuthShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <gemini|serper>",
		Short: "Show a stored API key, masked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := parseKeyName(args[0])
			if err != nil {
				return err
			}

			value, err := app.keys.Get(cmd.Context(), name)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, application.Mask(value))
			return nil
		},
	}
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <gemini|serper>",
		Aliases: []string{"remove"},
		Short:   "Remove a stored API key",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := parseKeyName(args[0])
			if err != nil {
				return err
			}

			if err := app.keys.Delete(cmd.Context(), name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s key.\n", name)
			return nil
		},
	}
}

func parseKeyName(raw string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	switch name {
	case application.KeyGemini, application.KeySerper:
		return name, nil
	default:
		return "", fmt.Errorf("unsupported key name %q (expected gemini or serper)", raw)
	}
}
