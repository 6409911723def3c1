package api

import (
	"net/http"

	"github.com/vibedispatch/diffview/internal/diff"
	"github.com/vibedispatch/diffview/internal/render"
)

// --- Health ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- Parse ---

// An empty diff is a valid request throughout: the parser never fails, so
// the only 400 on these endpoints is a malformed JSON body.

type diffRequest struct {
	Diff string `json:"diff"`
}

type parseResponse struct {
	Files []fileJSON `json:"files"`
	Stats diff.Stats `json:"stats"`
}

type fileJSON struct {
	Filename  string     `json:"filename"`
	Additions int        `json:"additions"`
	Deletions int        `json:"deletions"`
	Lines     []lineJSON `json:"lines"`
}

type lineJSON struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	OldLine int    `json:"old_line,omitempty"`
	NewLine int    `json:"new_line,omitempty"`
}

func toFileJSON(files []*diff.File) []fileJSON {
	out := make([]fileJSON, 0, len(files))
	for _, f := range files {
		fj := fileJSON{
			Filename:  f.Filename,
			Additions: f.Additions,
			Deletions: f.Deletions,
			Lines:     make([]lineJSON, 0, len(f.Lines)),
		}
		for _, l := range f.Lines {
			fj.Lines = append(fj.Lines, lineJSON{
				Type:    l.Type.String(),
				Content: l.Content,
				OldLine: l.OldNumber,
				NewLine: l.NewNumber,
			})
		}
		out = append(out, fj)
	}
	return out
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req diffRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	files := diff.Parse(req.Diff)

	writeJSON(w, http.StatusOK, parseResponse{
		Files: toFileJSON(files),
		Stats: diff.Reduce(files),
	})
}

// --- Render ---

type renderResponse struct {
	HTML  string     `json:"html"`
	Stats diff.Stats `json:"stats"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req diffRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{
		HTML:  render.HTMLWith(req.Diff, s.renderOpts),
		Stats: diff.Summarize(req.Diff),
	})
}

// --- Stats ---

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var req diffRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, diff.Summarize(req.Diff))
}
