package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type keyStatus struct {
	Present bool   `json:"present"`
	Source  string `json:"source,omitempty"`
}

type statusReport struct {
	ConfigFile   string               `json:"config_file,omitempty"`
	Model        string               `json:"model"`
	OutputDir    string               `json:"output_dir"`
	Keys         map[string]keyStatus `json:"keys"`
	TrendSources map[string]bool      `json:"trend_sources"`
}

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show configuration diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := statusReport{
				ConfigFile: app.config.ConfigFile,
				Model:      app.config.Model,
				OutputDir:  app.config.OutputDir,
				Keys: map[string]keyStatus{
					"gemini": {Present: app.config.APIKey != "", Source: app.config.APIKeySource},
					"serper": {Present: app.config.SearchAPIKey != "", Source: app.config.SearchAPIKeySource},
				},
				TrendSources: map[string]bool{
					"github": true,
					"serper": app.config.SearchAPIKey != "",
				},
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			return writeStatusReport(cmd, report)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeStatusReport(cmd *cobra.Command, report statusReport) error {
	out := cmd.OutOrStdout()

	configFile := report.ConfigFile
	if configFile == "" {
		configFile = "(none)"
	}
	fmt.Fprintf(out, "config file:  %s\n", configFile)
	fmt.Fprintf(out, "model:        %s\n", report.Model)
	fmt.Fprintf(out, "output dir:   %s\n", report.OutputDir)

	for _, name := range []string{"gemini", "serper"} {
		key := report.Keys[name]
		if key.Present {
			fmt.Fprintf(out, "%s key:   set (%s)\n", name, key.Source)
			continue
		}
		fmt.Fprintf(out, "%s key:   missing\n", name)
	}

	for _, name := range []string{"github", "serper"} {
		state := "disabled"
		if report.TrendSources[name] {
			state = "enabled"
		}
		fmt.Fprintf(out, "trends/%s: %s\n", name, state)
	}

	if !report.Keys["gemini"].Present {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: no Gemini API key configured; 'ideaforge interview' will not run the pipeline.")
	}

	return nil
}
