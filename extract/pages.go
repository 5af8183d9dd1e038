package extract

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePageRange parses a page selection like "1-5", "1,3,5", or "2,4-6"
// into a PageSelector. "all" and the empty string select every page and
// return a nil selector, which Extract treats as unrestricted.
func ParsePageRange(spec string) (PageSelector, error) {
	spec = strings.TrimSpace(strings.ToLower(spec))
	if spec == "" || spec == "all" {
		return nil, nil
	}

	type span struct{ from, to int }
	var spans []span

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		from, to, found := strings.Cut(part, "-")
		a, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil || a < 1 {
			return nil, fmt.Errorf("invalid page range %q", part)
		}
		b := a
		if found {
			b, err = strconv.Atoi(strings.TrimSpace(to))
			if err != nil || b < a {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
		}
		spans = append(spans, span{a, b})
	}
	if len(spans) == 0 {
		return nil, fmt.Errorf("invalid page range %q", spec)
	}

	return func(page int) bool {
		for _, s := range spans {
			if page >= s.from && page <= s.to {
				return true
			}
		}
		return false
	}, nil
}
