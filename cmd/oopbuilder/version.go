package main

import (
	"fmt"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
)

var version = semver.Version{
	Major: 0,
	Minor: 3,
	Patch: 0,
	Build: semver.Commit(),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application's version number",
	RunE: func(cmd *cobra.Command, args []string) error {
		if showBuildInfo, _ := cmd.Flags().GetBool("build-info"); showBuildInfo {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), version.Core())
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("build-info", false, "Show build information")
	rootCmd.AddCommand(versionCmd)
}
