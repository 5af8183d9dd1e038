package layout

// rules.go — primitive rewrite rules shared across formatting modes.
//
// All rules are linear or near-linear scans over the text and total over
// arbitrary string input. Several are deliberately not idempotent: they
// build on the output of earlier rules in a mode's sequence.

import (
	"regexp"
	"strings"
)

// normalizeNewlines converts CRLF and stray CR line endings to a single \n.
// Every mode runs this first; formatted output never contains \r.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Word-boundary transitions introduced when the extractor drops the space
// between adjacent tokens. Repaired in three passes; each pass handles one
// character-class transition.
var (
	lowerUpperRe  = regexp.MustCompile(`([a-z])([A-Z])`)
	digitLetterRe = regexp.MustCompile(`([0-9])([A-Za-z])`)
	letterDigitRe = regexp.MustCompile(`([A-Za-z])([0-9])`)
)

// repairWordBoundaries inserts a single space at lower→upper, digit→letter
// and letter→digit transitions, undoing run-together extraction artifacts
// like "InvoiceNumber123ABC".
func repairWordBoundaries(s string) string {
	s = lowerUpperRe.ReplaceAllString(s, "$1 $2")
	s = digitLetterRe.ReplaceAllString(s, "$1 $2")
	return letterDigitRe.ReplaceAllString(s, "$1 $2")
}

// trimLines strips leading and trailing spaces/tabs on every line
// independently. Blank lines survive as empty lines; collapsing them is a
// separate rule. Form-feed page markers are not whitespace here — they must
// survive formatting so the page splitter still sees them.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Trim(line, " \t")
	}
	return strings.Join(lines, "\n")
}

var blankRunRe = regexp.MustCompile(`\n{4,}`)

// collapseBlankRuns caps runs of 4+ consecutive line breaks at max breaks,
// preserving deliberate paragraph spacing without unbounded blank regions.
func collapseBlankRuns(max int) rule {
	repl := strings.Repeat("\n", max)
	return func(s string) string {
		return blankRunRe.ReplaceAllString(s, repl)
	}
}

var excessBlankRe = regexp.MustCompile(`\n{3,}`)

// singleBlankLines reduces any run of blank lines to a single blank line.
func singleBlankLines(s string) string {
	return excessBlankRe.ReplaceAllString(s, "\n\n")
}

var (
	hspaceRe    = regexp.MustCompile(`[ \t]+`)
	hspaceBigRe = regexp.MustCompile(`[ \t]{4,}`)
)

// collapseSpaces reduces runs of spaces and tabs to a single space.
func collapseSpaces(s string) string {
	return hspaceRe.ReplaceAllString(s, " ")
}

// capSpaces reduces runs of 4+ spaces/tabs to exactly three spaces, keeping
// shorter runs intact. Used by modes that preserve intentional multi-space
// columns.
func capSpaces(s string) string {
	return hspaceBigRe.ReplaceAllString(s, "   ")
}

var paragraphBreakRe = regexp.MustCompile(`\n[ \t]*\n[\s]*`)

// compactWhitespace collapses all whitespace to single spaces while keeping
// a single blank line between paragraphs. Runs of 2+ line breaks mark a
// paragraph boundary; everything else inside a paragraph becomes one space.
func compactWhitespace(s string) string {
	paras := paragraphBreakRe.Split(s, -1)
	out := paras[:0]
	for _, p := range paras {
		fields := strings.Fields(p)
		if len(fields) == 0 {
			continue
		}
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, "\n\n")
}
