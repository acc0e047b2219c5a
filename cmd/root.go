package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ideaforge",
		Short:         "IdeaForge: interview yourself, get ranked project ideas",
		Long:          "ideaforge interviews you about your background and goals, runs the answers through a multi-stage recommendation pipeline, and writes ranked, personalized project suggestions to an output directory.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newInterviewCmd(app),
		newQuestionsCmd(),
		newSessionsCmd(app),
		newAuthCmd(app),
		newStatusCmd(app),
	)

	return rootCmd
}
