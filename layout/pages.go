package layout

import "strings"

// SplitPages partitions formatted text on form-feed page markers inserted
// by the extractor. Segments that are empty after trimming are dropped;
// kept segments retain their original content and relative order.
func SplitPages(text string) []string {
	segments := strings.Split(text, "\f")
	pages := make([]string, 0, len(segments))
	for _, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		pages = append(pages, seg)
	}
	return pages
}
