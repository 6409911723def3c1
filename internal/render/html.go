// Package render turns parsed diffs into HTML fragments for the dashboard.
//
// Every piece of text that originated in the diff flows through
// html/template's contextual escaping at the point of insertion; nothing in
// this package concatenates raw input into markup.
package render

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/vibedispatch/diffview/internal/diff"
)

// DefaultEmptyMessage is the placeholder shown when a diff contains no file
// changes. It is deliberately non-empty so callers can't mistake an empty
// diff for a failed render.
const DefaultEmptyMessage = "No changes"

// Options control fragment rendering.
type Options struct {
	// EmptyMessage overrides the placeholder text for empty diffs.
	EmptyMessage string
}

const fragmentSrc = `{{range .}}<div class="dv-file">
<div class="dv-file-header"><span class="dv-filename">{{.Filename}}</span> <span class="dv-add">+{{.Additions}}</span> <span class="dv-del">-{{.Deletions}}</span></div>
<table class="dv-lines">
{{range .Rows}}{{if .Hunk}}<tr class="{{.Class}}"><td class="dv-num" colspan="2"></td><td class="dv-content">{{.Content}}</td></tr>
{{else}}<tr class="{{.Class}}"><td class="dv-num">{{.Old}}</td><td class="dv-num">{{.New}}</td><td class="dv-content">{{.Content}}</td></tr>
{{end}}{{end}}</table>
</div>
{{end}}`

const emptySrc = `<div class="dv-empty">{{.}}</div>`

var (
	fragmentTmpl = template.Must(template.New("fragment").Parse(fragmentSrc))
	emptyTmpl    = template.Must(template.New("empty").Parse(emptySrc))
)

// fileView is the template model for one file.
type fileView struct {
	Filename  string
	Additions int
	Deletions int
	Rows      []rowView
}

// rowView is the template model for one table row. Content is still raw
// diff text here; the template escapes it on insertion.
type rowView struct {
	Class   string
	Hunk    bool
	Old     string
	New     string
	Content string
}

// HTML renders unified diff text as an HTML fragment with default options.
func HTML(text string) string {
	return HTMLWith(text, Options{})
}

// HTMLWith renders unified diff text as an HTML fragment. It never fails: an
// empty or unparseable diff yields the placeholder fragment.
func HTMLWith(text string, opts Options) string {
	files := diff.Parse(text)

	var b strings.Builder
	if len(files) == 0 {
		msg := opts.EmptyMessage
		if msg == "" {
			msg = DefaultEmptyMessage
		}
		// Execution on a strings.Builder with in-memory data cannot fail.
		_ = emptyTmpl.Execute(&b, msg)
		return b.String()
	}

	views := make([]fileView, 0, len(files))
	for _, f := range files {
		views = append(views, fileView{
			Filename:  f.Filename,
			Additions: f.Additions,
			Deletions: f.Deletions,
			Rows:      buildRows(f.Lines),
		})
	}

	_ = fragmentTmpl.Execute(&b, views)
	return b.String()
}

func buildRows(lines []diff.Line) []rowView {
	rows := make([]rowView, 0, len(lines))
	for _, l := range lines {
		switch l.Type {
		case diff.LineHeader:
			rows = append(rows, rowView{Class: "dv-header", Content: l.Content})
		case diff.LineHunk:
			rows = append(rows, rowView{Class: "dv-hunk", Hunk: true, Content: l.Content})
		default:
			rows = append(rows, rowView{
				Class:   "dv-" + l.Type.String(),
				Old:     lineNumber(l.OldNumber),
				New:     lineNumber(l.NewNumber),
				Content: marker(l.Type) + l.Content,
			})
		}
	}
	return rows
}

func lineNumber(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func marker(t diff.LineType) string {
	switch t {
	case diff.LineAddition:
		return "+"
	case diff.LineDeletion:
		return "-"
	default:
		return " "
	}
}
