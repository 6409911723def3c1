package render

import (
	"strings"
	"testing"
)

const sampleDiff = `diff --git a/example.txt b/example.txt
index abc1234..def5678 100644
--- a/example.txt
+++ b/example.txt
@@ -1,3 +1,4 @@
 first line
 second line
-old third line
+new third line
+fourth line
`

func TestHTMLEmpty(t *testing.T) {
	got := HTML("")
	if got != `<div class="dv-empty">No changes</div>` {
		t.Errorf("unexpected placeholder: %q", got)
	}
}

func TestHTMLWithCustomEmptyMessage(t *testing.T) {
	got := HTMLWith("", Options{EmptyMessage: "Nothing to show"})
	if !strings.Contains(got, "Nothing to show") {
		t.Errorf("expected custom message in %q", got)
	}
}

func TestHTMLEscapesEmptyMessage(t *testing.T) {
	got := HTMLWith("", Options{EmptyMessage: "<b>none</b>"})
	if strings.Contains(got, "<b>") {
		t.Errorf("empty message not escaped: %q", got)
	}
}

func TestHTMLStructure(t *testing.T) {
	got := HTML(sampleDiff)

	for _, want := range []string{
		`<div class="dv-file">`,
		`<span class="dv-filename">example.txt</span>`,
		`<span class="dv-add">+2</span>`,
		`<span class="dv-del">-1</span>`,
		`<table class="dv-lines">`,
		`<tr class="dv-hunk"><td class="dv-num" colspan="2"></td>`,
		`<td class="dv-content">@@ -1,3 +1,4 @@</td>`,
		`<tr class="dv-context"><td class="dv-num">1</td><td class="dv-num">1</td><td class="dv-content"> first line</td></tr>`,
		`<tr class="dv-deletion"><td class="dv-num">3</td><td class="dv-num"></td><td class="dv-content">-old third line</td></tr>`,
		`<tr class="dv-addition"><td class="dv-num"></td><td class="dv-num">3</td><td class="dv-content">+new third line</td></tr>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\nfull output:\n%s", want, got)
		}
	}
}

func TestHTMLHeaderRowsHaveEmptyNumberCells(t *testing.T) {
	got := HTML(sampleDiff)
	want := `<tr class="dv-header"><td class="dv-num"></td><td class="dv-num"></td><td class="dv-content">index abc1234..def5678 100644</td></tr>`
	if !strings.Contains(got, want) {
		t.Errorf("output missing header row %q\nfull output:\n%s", want, got)
	}
}

func TestHTMLEscapesScriptContent(t *testing.T) {
	const hostile = `diff --git a/x.html b/x.html
@@ -1,1 +1,1 @@
-safe
+<script>alert(1)</script>
`
	got := HTML(hostile)

	if strings.Contains(got, "<script>") {
		t.Fatalf("unescaped script tag in output:\n%s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Errorf("expected escaped script content, got:\n%s", got)
	}
}

func TestHTMLEscapesFilename(t *testing.T) {
	const hostile = `diff --git a/<img src=x>.txt b/<img src=x>.txt
@@ -1,1 +1,1 @@
+x
`
	got := HTML(hostile)
	if strings.Contains(got, "<img") {
		t.Fatalf("unescaped filename in output:\n%s", got)
	}
	if !strings.Contains(got, "&lt;img src=x&gt;.txt") {
		t.Errorf("expected escaped filename, got:\n%s", got)
	}
}
