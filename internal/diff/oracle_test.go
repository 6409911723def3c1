package diff

import (
	"strings"
	"testing"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
)

// On well-formed input our lenient parser and go-gitdiff must agree on the
// file count and the per-file addition/deletion tallies. gitdiff cannot
// replace the parser (it rejects malformed input instead of degrading), but
// it keeps the happy path honest.
func TestParseAgreesWithGitdiff(t *testing.T) {
	files := Parse(sampleDiff)

	parsed, _, err := gitdiff.Parse(strings.NewReader(sampleDiff))
	if err != nil {
		t.Fatalf("gitdiff.Parse failed: %v", err)
	}

	if len(files) != len(parsed) {
		t.Fatalf("file count mismatch: parser %d, gitdiff %d", len(files), len(parsed))
	}

	for i, f := range files {
		var adds, dels int
		for _, frag := range parsed[i].TextFragments {
			for _, line := range frag.Lines {
				switch line.Op {
				case gitdiff.OpAdd:
					adds++
				case gitdiff.OpDelete:
					dels++
				}
			}
		}
		if f.Additions != adds {
			t.Errorf("%s: additions %d, gitdiff %d", f.Filename, f.Additions, adds)
		}
		if f.Deletions != dels {
			t.Errorf("%s: deletions %d, gitdiff %d", f.Filename, f.Deletions, dels)
		}
	}
}
