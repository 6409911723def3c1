package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// getDiff sources the raw diff text: stdin when "-" is passed, an explicit
// commit range, or HEAD against its parent by default.
func getDiff(args []string, contextLines int) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := os.ReadFile("/dev/stdin")
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	repoDir, err := gitRepoRoot()
	if err != nil {
		return "", fmt.Errorf("not in a git repository (or git not installed): %w", err)
	}

	if len(args) == 1 {
		return gitDiff(repoDir, fmt.Sprintf("-U%d", contextLines), args[0])
	}

	return gitDiff(repoDir, fmt.Sprintf("-U%d", contextLines), "HEAD~1", "HEAD")
}

// gitDiff runs `git diff` with the given arguments and returns the raw output.
func gitDiff(repoDir string, args ...string) (string, error) {
	cmdArgs := append([]string{"diff"}, args...)
	cmd := exec.Command("git", cmdArgs...)
	cmd.Dir = repoDir
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git diff: %w", err)
	}

	return string(out), nil
}

func gitRepoRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
