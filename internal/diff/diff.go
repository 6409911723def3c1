// Package diff parses unified git diffs into structured representations.
package diff

import (
	"regexp"
	"strconv"
	"strings"
)

// LineType classifies a single physical line of diff output.
type LineType int

const (
	LineContext LineType = iota
	LineAddition
	LineDeletion
	LineHeader
	LineHunk
)

func (t LineType) String() string {
	switch t {
	case LineContext:
		return "context"
	case LineAddition:
		return "addition"
	case LineDeletion:
		return "deletion"
	case LineHeader:
		return "header"
	case LineHunk:
		return "hunk"
	default:
		return "unknown"
	}
}

// Line is one physical line of a parsed diff. Content has the +/-/space
// marker stripped for addition, deletion and context lines, and is the raw
// text for header and hunk lines. Line numbers are 1-based; 0 means the line
// carries no number on that side.
type Line struct {
	Type      LineType
	Content   string
	OldNumber int
	NewNumber int
}

// File represents a single changed file within a diff.
type File struct {
	Filename  string
	Additions int
	Deletions int
	Lines     []Line
}

var (
	fileHeaderRe = regexp.MustCompile(`^diff --git a/(.+) b/(.+)$`)
	hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@`)
)

// headerPrefixes mark file metadata lines. They are recorded verbatim and
// never touch the line counters. The check must run before the +/-
// classification so "+++ b/..." is never counted as an addition.
var headerPrefixes = []string{
	"index ",
	"---",
	"+++",
	"new file",
	"deleted file",
	"rename from",
	"rename to",
}

func isHeaderLine(line string) bool {
	for _, p := range headerPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// Parse reads unified diff text and returns one File per changed file, in
// order of appearance. It never fails: a "diff --git" line that doesn't match
// the two-path pattern yields the filename "unknown", a malformed hunk header
// leaves the running counters alone, and lines that precede any file header
// or match no known prefix are dropped.
func Parse(text string) []*File {
	var (
		files   []*File
		current *File
		oldLine int
		newLine int
	)

	for _, raw := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(raw, "diff --git"):
			if current != nil {
				files = append(files, current)
			}
			name := "unknown"
			if m := fileHeaderRe.FindStringSubmatch(raw); m != nil {
				name = m[2]
			}
			current = &File{Filename: name}
			current.Lines = append(current.Lines, Line{Type: LineHeader, Content: raw})

		case isHeaderLine(raw):
			if current == nil {
				continue
			}
			current.Lines = append(current.Lines, Line{Type: LineHeader, Content: raw})

		case strings.HasPrefix(raw, "@@"):
			if current == nil {
				continue
			}
			if m := hunkHeaderRe.FindStringSubmatch(raw); m != nil {
				oldLine, _ = strconv.Atoi(m[1])
				newLine, _ = strconv.Atoi(m[2])
			}
			current.Lines = append(current.Lines, Line{Type: LineHunk, Content: raw})

		case strings.HasPrefix(raw, "+"):
			if current == nil {
				continue
			}
			current.Additions++
			current.Lines = append(current.Lines, Line{
				Type:      LineAddition,
				Content:   raw[1:],
				NewNumber: newLine,
			})
			newLine++

		case strings.HasPrefix(raw, "-"):
			if current == nil {
				continue
			}
			current.Deletions++
			current.Lines = append(current.Lines, Line{
				Type:      LineDeletion,
				Content:   raw[1:],
				OldNumber: oldLine,
			})
			oldLine++

		case raw == "" || strings.HasPrefix(raw, " "):
			if current == nil {
				continue
			}
			current.Lines = append(current.Lines, Line{
				Type:      LineContext,
				Content:   strings.TrimPrefix(raw, " "),
				OldNumber: oldLine,
				NewNumber: newLine,
			})
			oldLine++
			newLine++

		default:
			// Unrecognized line inside a file; dropped.
		}
	}

	if current != nil {
		files = append(files, current)
	}

	return files
}
