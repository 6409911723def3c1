package diff

// Stats holds aggregate change counts for a diff.
type Stats struct {
	Files     int `json:"files"`
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// Summarize parses text and reduces it to aggregate counts.
func Summarize(text string) Stats {
	return Reduce(Parse(text))
}

// Reduce sums the per-file tallies of an already-parsed diff.
func Reduce(files []*File) Stats {
	s := Stats{Files: len(files)}
	for _, f := range files {
		s.Additions += f.Additions
		s.Deletions += f.Deletions
	}
	return s
}
