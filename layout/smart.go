package layout

// smart.go — paragraph-oriented reformatting with field-token fixups.
//
// The smart mode targets prose-heavy documents: it repairs run-together
// tokens, restores paragraph breaks after sentence-ending punctuation, and
// applies a short list of literal fixups for label tokens the extractor is
// known to mangle.

import (
	"regexp"
	"strings"
)

var smartRules = []rule{
	normalizeNewlines,
	repairWordBoundaries,
	fixKnownLabels,
	breakParagraphsAfterSentences,
	isolateDates,
	isolateNoticeMarkers,
	collapseBlankRuns(3),
	trimLines,
}

// Run-together label tokens that word-boundary repair cannot split because
// they contain no case or digit transition. Restored to their canonical
// spacing verbatim.
var labelFixups = []struct{ from, to string }{
	{"TAXINVOICE", "TAX INVOICE"},
	{"PAYMENTADVICE", "PAYMENT ADVICE"},
	{"REMITTANCEADVICE", "REMITTANCE ADVICE"},
}

func fixKnownLabels(s string) string {
	for _, f := range labelFixups {
		s = strings.ReplaceAll(s, f.from, f.to)
	}
	return s
}

var sentenceEOLRe = regexp.MustCompile(`([.!?])\n`)

// breakParagraphsAfterSentences upgrades a line break that directly follows
// sentence-terminating punctuation to a paragraph break.
func breakParagraphsAfterSentences(s string) string {
	return sentenceEOLRe.ReplaceAllString(s, "$1\n\n")
}

// Date tokens are strong field markers in invoices and statements; giving
// them their own line keeps them adjacent to their labels after later
// collapsing.
const datePattern = `\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}`

var (
	dateBeforeRe = regexp.MustCompile(`([^\n])(` + datePattern + `)`)
	dateAfterRe  = regexp.MustCompile(`(` + datePattern + `)[ \t]*([^\n])`)
)

func isolateDates(s string) string {
	s = dateBeforeRe.ReplaceAllString(s, "$1\n$2")
	return dateAfterRe.ReplaceAllString(s, "$1\n$2")
}

const noticePattern = `(?:IMPORTANT NOTICE|IMPORTANT):?`

var (
	noticeBeforeRe = regexp.MustCompile(`([^\n])(` + noticePattern + `)`)
	noticeAfterRe  = regexp.MustCompile(`(` + noticePattern + `)[ \t]*([^\n])`)
)

func isolateNoticeMarkers(s string) string {
	s = noticeBeforeRe.ReplaceAllString(s, "$1\n$2")
	return noticeAfterRe.ReplaceAllString(s, "$1\n$2")
}
