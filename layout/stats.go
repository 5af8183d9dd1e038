package layout

import "strings"

// Stats summarizes a formatted extraction for downstream consumers.
type Stats struct {
	TextLength int `json:"textLength"`
	WordCount  int `json:"wordCount"`
	PageCount  int `json:"pageCount"`
}

// ComputeStats derives statistics from formatted text. The page count
// comes from the extractor rather than from page splitting so it stays
// accurate when splitting is disabled.
func ComputeStats(text string, pageCount int) Stats {
	return Stats{
		TextLength: len(text),
		WordCount:  len(strings.Fields(text)),
		PageCount:  pageCount,
	}
}
