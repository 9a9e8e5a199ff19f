package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:   "parse <diagram.uml>",
	Short: "Parse a diagram and print its model",
	Long:  "Parse a text UML diagram and print the resulting classes and interfaces as a summary, JSON or YAML.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading diagram: %w", err)
	}

	b, err := newBuilder()
	if err != nil {
		return err
	}

	project, err := b.RenderProject(path, src)
	if err != nil {
		if project != nil {
			printDiagnostics(os.Stderr, path, project.Diagnostics)
		}
		return err
	}

	if viper.GetBool("verbose") {
		printDiagnostics(os.Stderr, path, project.Diagnostics)
	}

	return writeProject(cmd.OutOrStdout(), project, viper.GetString("format"))
}
