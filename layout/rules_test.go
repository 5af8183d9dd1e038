package layout

import "testing"

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a\r\nb", "a\nb"},
		{"a\rb", "a\nb"},
		{"a\r\n\r\nb", "a\n\nb"},
		{"no endings", "no endings"},
		{"", ""},
	}
	for _, tt := range tests {
		assertEqual(t, normalizeNewlines(tt.in), tt.want)
	}
}

func TestRepairWordBoundaries(t *testing.T) {
	tests := []struct{ in, want string }{
		// The canonical extractor artifact: all three transition classes.
		{"InvoiceNumber123ABC", "Invoice Number 123 ABC"},
		{"lowerUpper", "lower Upper"},
		{"abc123", "abc 123"},
		{"123abc", "123 abc"},
		{"already spaced", "already spaced"},
		{"ALLCAPS", "ALLCAPS"},
		{"", ""},
	}
	for _, tt := range tests {
		assertEqual(t, repairWordBoundaries(tt.in), tt.want)
	}
}

func TestTrimLines(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  a  \n\tb\t", "a\nb"},
		{"a\n   \nb", "a\n\nb"},
		{"   ", ""},
		{"no trim needed", "no trim needed"},
	}
	for _, tt := range tests {
		assertEqual(t, trimLines(tt.in), tt.want)
	}
}

func TestTrimLines_KeepsFormFeeds(t *testing.T) {
	// Page markers start a line after extraction; trimming must not eat
	// them or page splitting after formatting would lose boundaries.
	assertEqual(t, trimLines("end.\n\fnext page  "), "end.\n\fnext page")
}

func TestCollapseBlankRuns(t *testing.T) {
	capAt3 := collapseBlankRuns(3)
	tests := []struct{ in, want string }{
		{"a\n\n\n\n\nb", "a\n\n\nb"},   // 5 breaks capped at 3
		{"a\n\n\n\nb", "a\n\n\nb"},     // 4 breaks capped at 3
		{"a\n\n\nb", "a\n\n\nb"},       // 3 breaks untouched
		{"a\nb", "a\nb"},               // single break untouched
	}
	for _, tt := range tests {
		assertEqual(t, capAt3(tt.in), tt.want)
	}
}

func TestSingleBlankLines(t *testing.T) {
	assertEqual(t, singleBlankLines("a\n\n\n\n\nb"), "a\n\nb")
	assertEqual(t, singleBlankLines("a\n\nb"), "a\n\nb")
}

func TestCollapseSpaces(t *testing.T) {
	assertEqual(t, collapseSpaces("a   b\t\tc"), "a b c")
	assertEqual(t, collapseSpaces("a\nb"), "a\nb") // line breaks untouched
}

func TestCapSpaces(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a        b", "a   b"}, // 8 spaces capped
		{"a    b", "a   b"},     // 4 spaces capped
		{"a   b", "a   b"},      // 3 spaces kept
		{"a  b", "a  b"},        // 2 spaces kept
		{"a b", "a b"},
	}
	for _, tt := range tests {
		assertEqual(t, capSpaces(tt.in), tt.want)
	}
}

func TestCompactWhitespace(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a  b\nc", "a b c"},
		{"a\n\nb", "a\n\nb"},
		{"a\n \n \n\nb", "a\n\nb"},
		{"  only   one  ", "only one"},
		{"", ""},
		{" \n \n ", ""},
	}
	for _, tt := range tests {
		assertEqual(t, compactWhitespace(tt.in), tt.want)
	}
}
