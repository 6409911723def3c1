package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vibedispatch/diffview/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [commit-range]",
	Short: "Render a diff as an HTML fragment",
	Long: `Parse a unified diff and print it as an HTML fragment suitable for
embedding in a dashboard container element.

Examples:
  diffview render                  # HEAD vs parent
  diffview render main...HEAD      # branch vs main
  git diff | diffview render -     # pipe any diff`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntP("context", "C", 3, "lines of context around changes")
	renderCmd.Flags().Bool("full-page", false, "wrap the fragment in a standalone HTML page")
	renderCmd.Flags().StringP("output", "o", "", "write HTML to file instead of stdout")
	renderCmd.Flags().String("empty-message", "", "placeholder text for diffs with no changes")
}

func runRender(cmd *cobra.Command, args []string) error {
	contextLines, _ := cmd.Flags().GetInt("context")

	raw, err := getDiff(args, contextLines)
	if err != nil {
		return err
	}

	emptyMsg, _ := cmd.Flags().GetString("empty-message")
	fragment := render.HTMLWith(raw, render.Options{EmptyMessage: emptyMsg})

	out := fragment
	if fullPage, _ := cmd.Flags().GetBool("full-page"); fullPage {
		out = pageHTML(fragment)
	}

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "HTML written to %s\n", path)
		return nil
	}

	fmt.Println(out)
	return nil
}

// pageHTML wraps an already-escaped fragment in a minimal standalone page.
func pageHTML(fragment string) string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>diffview</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 980px; margin: 40px auto; padding: 0 20px; background: #282a36; color: #f8f8f2; }
  .dv-file { margin-bottom: 24px; border: 1px solid #44475a; border-radius: 8px; overflow: hidden; }
  .dv-file-header { background: #343746; padding: 8px 12px; font-weight: bold; }
  .dv-filename { color: #8be9fd; }
  .dv-add { color: #50fa7b; }
  .dv-del { color: #ff5555; }
  .dv-lines { width: 100%; border-collapse: collapse; font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 0.85em; }
  .dv-num { width: 1%; min-width: 40px; padding: 0 8px; text-align: right; color: #6272a4; user-select: none; }
  .dv-content { padding: 0 8px; white-space: pre-wrap; }
  .dv-header .dv-content { color: #6272a4; }
  .dv-hunk { background: #343746; }
  .dv-hunk .dv-content { color: #bd93f9; }
  .dv-addition { background: rgba(80, 250, 123, 0.12); }
  .dv-deletion { background: rgba(255, 85, 85, 0.12); }
  .dv-empty { color: #6272a4; padding: 16px; }
</style>
</head>
<body>
` + fragment + `
</body>
</html>`
}
