package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vibedispatch/diffview/internal/diff"
)

// Stat output styles, matching the dashboard palette.
var (
	statFileStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8be9fd"))
	statAddStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#50fa7b"))
	statDelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
	statTotalStyle = lipgloss.NewStyle().Bold(true)
)

var statCmd = &cobra.Command{
	Use:   "stat [commit-range]",
	Short: "Print per-file and aggregate change statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStat,
}

func init() {
	statCmd.Flags().IntP("context", "C", 3, "lines of context around changes")
	statCmd.Flags().StringP("format", "f", "text", "output format: text, json")
}

func runStat(cmd *cobra.Command, args []string) error {
	contextLines, _ := cmd.Flags().GetInt("context")

	raw, err := getDiff(args, contextLines)
	if err != nil {
		return err
	}

	files := diff.Parse(raw)
	stats := diff.Reduce(files)

	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	if len(files) == 0 {
		fmt.Println("No changes.")
		return nil
	}

	for _, f := range files {
		name := f.Filename
		if pad := 50 - len(name); pad > 0 {
			name += strings.Repeat(" ", pad)
		}
		fmt.Printf("  %s %s %s\n",
			statFileStyle.Render(name),
			statAddStyle.Render(fmt.Sprintf("+%-4d", f.Additions)),
			statDelStyle.Render(fmt.Sprintf("-%d", f.Deletions)))
	}

	fmt.Println()
	fmt.Println(statTotalStyle.Render(fmt.Sprintf("%d file(s) changed, %d insertions(+), %d deletions(-)",
		stats.Files, stats.Additions, stats.Deletions)))

	return nil
}
