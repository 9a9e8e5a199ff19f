package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <diagram.uml>...",
	Short: "Lint diagrams",
	Long:  "Parse each diagram and report declarations that lost information while parsing. Exits non-zero when any error is found.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	b, err := newBuilder()
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading diagram: %w", err)
		}

		project, err := b.RenderProject(path, src)
		if project == nil {
			return err
		}
		printDiagnostics(cmd.OutOrStdout(), path, project.Diagnostics)
		if project.HasErrors() {
			failed++
		}
	}

	if failed > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("%d of %d diagram(s) have errors", failed, len(args))
	}
	return nil
}
