// Package layout reconstructs plausible line and paragraph structure from
// flat PDF-extracted text.
//
// PDF text extraction yields a whitespace-ambiguous character stream with no
// glyph coordinates. The formatter applies ordered sequences of lexical
// rewrite rules — character-class transitions, gap widths, punctuation,
// recognizable field patterns — to approximate the original visual layout.
// Every mode is a pure function: text in, text out, no I/O, no errors.
package layout

// Mode selects which rule sequence Format applies.
type Mode string

const (
	// ModeRaw normalizes line endings and nothing else — the maximally
	// information-preserving mode and the safe default.
	ModeRaw Mode = "raw"

	// ModeMinimal keeps every extracted line break verbatim, collapsing
	// only horizontal whitespace and per-line padding.
	ModeMinimal Mode = "minimal"

	// ModeCompact collapses all whitespace to single spaces, trading
	// structure for density.
	ModeCompact Mode = "compact"

	// ModeSmart repairs run-together tokens and inserts paragraph breaks
	// after sentence-ending punctuation.
	ModeSmart Mode = "smart"

	// ModeStructured breaks before recognizable field tokens: URLs,
	// emails, phone numbers, state/postcode groups, section headers.
	ModeStructured Mode = "structured"

	// ModeVisual applies the full gap-width classifier plus label, list,
	// and section-header heuristics to approximate the page layout.
	ModeVisual Mode = "visual"
)

// rule is a single text rewrite. Rules within a mode run strictly in
// sequence; later rules observe the output of earlier ones, so ordering is
// part of each mode's contract.
type rule func(string) string

// modeRules maps each mode to its rule sequence. Modes are data, not code:
// adding a mode means adding a row here.
var modeRules = map[Mode][]rule{
	ModeRaw:        {normalizeNewlines},
	ModeMinimal:    {normalizeNewlines, collapseSpaces, trimLines},
	ModeCompact:    {normalizeNewlines, compactWhitespace},
	ModeSmart:      smartRules,
	ModeStructured: structuredRules,
	ModeVisual:     visualRules,
}

// Format applies the rule sequence for mode to text. Unknown modes return
// the input unchanged rather than erroring, mirroring permissive handling
// of partially specified caller configuration. Format never fails for any
// string input.
func Format(text string, mode Mode) string {
	rules, ok := modeRules[mode]
	if !ok {
		return text
	}
	for _, r := range rules {
		text = r(text)
	}
	return text
}

// ParseMode maps a mode name to its Mode value. The bool reports whether
// the name is known; unknown names still yield a usable Mode because Format
// treats them as pass-through.
func ParseMode(s string) (Mode, bool) {
	m := Mode(s)
	_, ok := modeRules[m]
	return m, ok
}

// Modes returns the supported mode names in documentation order.
func Modes() []Mode {
	return []Mode{ModeRaw, ModeMinimal, ModeCompact, ModeSmart, ModeStructured, ModeVisual}
}
