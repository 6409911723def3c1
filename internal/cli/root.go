// Package cli implements the diffview command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "diffview",
	Short: "Parse unified diffs and render them as HTML for the dashboard",
	Long: `diffview is the diff engine behind the VibeDispatch dashboard. It parses
unified git diffs into a structured file-and-line model and renders them as
safe, styleable HTML fragments with aggregate change statistics.

Diffs can come from stdin, a commit range, or the working tree:

  git diff | diffview render -     # pipe any diff
  diffview render main...HEAD      # branch vs main
  diffview stat                    # HEAD vs parent`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(statCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
