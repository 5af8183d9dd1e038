package layout

// structured.go — line breaks before recognizable field tokens.
//
// The recognizers are locale-leaning, best-effort heuristics, not
// validators: a numeric token shaped like a phone number is broken onto its
// own line whether or not it is one. Mis-fires are an accepted cost; there
// is no ground truth to validate against.

import "regexp"

var structuredRules = []rule{
	normalizeNewlines,
	repairWordBoundaries,
	breakBeforeToken(structURLRe),
	breakBeforeToken(structEmailRe),
	breakBeforeToken(structPhoneRe),
	breakBeforeToken(structStatePostRe),
	breakBeforeToken(structHeaderRe),
	collapseSpaces,
	singleBlankLines,
	trimLines,
}

var (
	structURLRe   = regexp.MustCompile(`(?:https?://|www\.)[^\s]+`)
	structEmailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	structPhoneRe = regexp.MustCompile(`\+?\(?\d[\d ().-]{6,}\d`)

	// Australian state + postcode pairs, the tail of a postal address.
	structStatePostRe = regexp.MustCompile(`\b(?:NSW|VIC|QLD|WA|SA|TAS|ACT|NT)[ \t]+\d{4}\b`)

	// Literal section headers commonly flattened into surrounding text.
	structHeaderRe = regexp.MustCompile(`\b(?:TAX INVOICE|INVOICE|STATEMENT|RECEIPT|REMITTANCE ADVICE|ACCOUNT SUMMARY|DESCRIPTION|AMOUNT DUE|TOTAL DUE)\b`)
)

// breakBeforeToken inserts a line break before every match of re that is
// not already at the start of a line. The preceding character is kept; any
// whitespace it leaves dangling is cleaned up by the trailing trim rule.
func breakBeforeToken(re *regexp.Regexp) rule {
	combined := regexp.MustCompile(`([^\n])(` + re.String() + `)`)
	return func(s string) string {
		return combined.ReplaceAllString(s, "$1\n$2")
	}
}
