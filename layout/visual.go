package layout

// visual.go — gap-width layout recovery.
//
// With no glyph coordinates available, the width of a space run between two
// tokens is the most reliable lexical proxy for column and field
// boundaries. The classifier grades runs by an empirical confidence
// ordering: 8+ spaces is a column break, 5–7 a section break, 3–4
// intentional internal spacing (kept as exactly three spaces), 2 kept
// verbatim. The remaining rules recover labels, contact tokens, list
// markers, section headers, and visual separator lines.

import (
	"regexp"
	"strings"
)

var visualRules = []rule{
	normalizeNewlines,
	repairWordBoundaries,
	classifyGaps,
	breakAfterLongLabels,
	joinShortLabelValues,
	breakBeforeContactTokens,
	breakBeforeListMarkers,
	breakAroundCapsHeadings,
	breakAfterSentenceBoundaries,
	isolateSeparators,
	collapseBlankRuns(3),
	capSpaces,
	trimLines,
	singleBlankLines,
}

// classifyGaps rewrites runs of spaces/tabs between two non-space
// characters according to the graduated width thresholds. Runs at the
// start or end of a line are left for the trim rule. Single-pass scan;
// consecutive gaps on one line are each classified independently.
func classifyGaps(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	ink := false // non-space seen since the last line break
	for i := 0; i < len(s); {
		c := s[i]
		if c == '\n' {
			ink = false
			sb.WriteByte(c)
			i++
			continue
		}
		if c != ' ' && c != '\t' {
			ink = true
			sb.WriteByte(c)
			i++
			continue
		}

		j := i
		for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
			j++
		}
		width := j - i
		interior := ink && j < len(s) && s[j] != '\n'

		switch {
		case interior && width >= 8: // column break
			sb.WriteByte('\n')
		case interior && width >= 5: // section break
			sb.WriteByte('\n')
		case interior && width >= 3: // intentional spacing
			sb.WriteString("   ")
		default:
			sb.WriteString(s[i:j])
		}
		i = j
	}
	return sb.String()
}

// Conservative colon handling: a label ending in ':' followed by
// whitespace and an all-caps span of 10+ characters or any span of 20+
// characters gets a break after the colon. Checked caps-first so a long
// caps value is classified as caps, not merely long. At least one space
// is required after the colon; run-together pairs belong to the
// short-label join rule below.
var (
	labelCapsValueRe = regexp.MustCompile(`([^\n:]{3,}):[ \t]+([A-Z][A-Z0-9 &.,'-]{9,})`)
	labelLongValueRe = regexp.MustCompile(`([^\n:]{3,}):[ \t]+([^\n]{20,})`)
)

func breakAfterLongLabels(s string) string {
	s = labelCapsValueRe.ReplaceAllString(s, "$1:\n$2")
	return labelLongValueRe.ReplaceAllString(s, "$1:\n$2")
}

// Short label:value pairs (label 2–8 chars, value 1–15) stay on one line
// with a single separating space. Only inserts a missing space — existing
// spacing, including preserved 3-space gaps, is never collapsed here.
var shortLabelValueRe = regexp.MustCompile(`\b([A-Za-z]\w{1,7}):([A-Za-z0-9][\w.,@-]{0,14})\b`)

func joinShortLabelValues(s string) string {
	return shortLabelValueRe.ReplaceAllString(s, "$1: $2")
}

// Contact tokens trailing a word are pushed onto their own line. Email and
// phone require a separating space so that a run-together token is not
// split mid-match; URLs have an unambiguous prefix and may touch the word.
var (
	inlineURLRe   = regexp.MustCompile(`(\w)[ \t]*((?:https?://|www\.)[^\s]+)`)
	inlineEmailRe = regexp.MustCompile(`(\w)[ \t]+([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`)
	inlinePhoneRe = regexp.MustCompile(`([A-Za-z])[ \t]+(\+?\(?\d[\d ().-]{6,}\d)`)
)

func breakBeforeContactTokens(s string) string {
	s = inlineURLRe.ReplaceAllString(s, "$1\n$2")
	s = inlineEmailRe.ReplaceAllString(s, "$1\n$2")
	return inlinePhoneRe.ReplaceAllString(s, "$1\n$2")
}

// Numbered-list markers and currency-prefixed amounts start a new line when
// preceded by a non-digit, non-newline character.
var (
	listMarkerRe     = regexp.MustCompile(`([^\d\n])[ \t]*(\d+[.)][ \t])`)
	currencyAmountRe = regexp.MustCompile(`([^\d\n])[ \t]*([$€£][ \t]?\d[\d,]*(?:\.\d{2})?)`)
)

func breakBeforeListMarkers(s string) string {
	s = listMarkerRe.ReplaceAllString(s, "$1\n$2")
	return currencyAmountRe.ReplaceAllString(s, "$1\n$2")
}

// Transitions into and out of ALL-CAPS spans (4+ caps per word) mark
// section-header boundaries.
var (
	capsEntryRe = regexp.MustCompile(`([^\n A-Z\t])[ \t]+([A-Z]{4,}(?:[ \t]+[A-Z]{4,})*)`)
	capsExitRe  = regexp.MustCompile(`([A-Z]{4,})[ \t]+([A-Z]?[a-z]\w*)`)
)

func breakAroundCapsHeadings(s string) string {
	s = capsEntryRe.ReplaceAllString(s, "$1\n\n$2")
	return capsExitRe.ReplaceAllString(s, "$1\n\n$2")
}

// A sentence boundary followed by a capitalized word of 5+ letters is
// treated as a line break the extractor dropped.
var sentenceCapRe = regexp.MustCompile(`([^\d\n][.!?])[ \t]+([A-Z][a-z]{4,})`)

func breakAfterSentenceBoundaries(s string) string {
	return sentenceCapRe.ReplaceAllString(s, "$1\n$2")
}

// Runs of 4+ dash/underscore/equals characters are visual separators and
// get their own line.
var separatorRe = regexp.MustCompile(`[ \t]*([-_=]{4,})[ \t]*`)

func isolateSeparators(s string) string {
	return separatorRe.ReplaceAllString(s, "\n$1\n")
}
