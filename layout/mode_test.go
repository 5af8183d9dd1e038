package layout

import (
	"strings"
	"testing"
)

// ---- dispatch --------------------------------------------------------------

func TestFormat_UnknownModePassesThrough(t *testing.T) {
	in := "some  text\r\nwith   odd spacing"
	assertEqual(t, Format(in, Mode("fancy")), in)
}

func TestFormat_EmptyInputAllModes(t *testing.T) {
	for _, m := range Modes() {
		if got := Format("", m); got != "" {
			t.Errorf("mode %s: Format(\"\") = %q, want \"\"", m, got)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name  string
		known bool
	}{
		{"raw", true},
		{"minimal", true},
		{"compact", true},
		{"smart", true},
		{"structured", true},
		{"visual", true},
		{"", false},
		{"RAW", false},
		{"fancy", false},
	}
	for _, tt := range tests {
		m, ok := ParseMode(tt.name)
		if ok != tt.known {
			t.Errorf("ParseMode(%q) known = %v, want %v", tt.name, ok, tt.known)
		}
		if string(m) != tt.name {
			t.Errorf("ParseMode(%q) mode = %q", tt.name, m)
		}
	}
}

func TestModes_CountAndOrder(t *testing.T) {
	modes := Modes()
	if len(modes) != 6 {
		t.Fatalf("expected 6 modes, got %d", len(modes))
	}
	if modes[0] != ModeRaw {
		t.Errorf("first mode = %s, want raw", modes[0])
	}
}

// ---- raw mode --------------------------------------------------------------

func TestFormat_Raw_NormalizesLineEndingsOnly(t *testing.T) {
	in := "Line one\r\nLine two\r\nkept   spacing"
	want := "Line one\nLine two\nkept   spacing"
	assertEqual(t, Format(in, ModeRaw), want)
}

func TestFormat_Raw_EquivalentToCRLFSubstitution(t *testing.T) {
	inputs := []string{
		"plain text",
		"a\r\nb\r\nc",
		"trailing\r\n",
		"  spaces   kept  \t tabs too",
		"form\ffeed\fkept",
	}
	for _, in := range inputs {
		want := strings.ReplaceAll(in, "\r\n", "\n")
		assertEqual(t, Format(in, ModeRaw), want)
	}
}

// ---- minimal mode ----------------------------------------------------------

func TestFormat_Minimal_CollapsesSpacesKeepsBreaks(t *testing.T) {
	in := "  Hello   world  \nsecond\t\tline\n\nthird"
	want := "Hello world\nsecond line\n\nthird"
	assertEqual(t, Format(in, ModeMinimal), want)
}

func TestFormat_Minimal_Idempotent(t *testing.T) {
	inputs := []string{
		"  Hello   world  \nsecond\t\tline",
		"a\r\nb\r\n\r\nc",
		"   \n   \n",
		"no change needed",
	}
	for _, in := range inputs {
		once := Format(in, ModeMinimal)
		twice := Format(once, ModeMinimal)
		if once != twice {
			t.Errorf("minimal not idempotent for %q:\nonce:  %q\ntwice: %q", in, once, twice)
		}
	}
}

// ---- compact mode ----------------------------------------------------------

func TestFormat_Compact_CollapsesAllWhitespace(t *testing.T) {
	in := "  Hello   world\nsame paragraph\n\n\nnext   paragraph  "
	want := "Hello world same paragraph\n\nnext paragraph"
	assertEqual(t, Format(in, ModeCompact), want)
}

func TestFormat_Compact_NoConsecutiveWhitespace(t *testing.T) {
	inputs := []string{
		"a  b\t\tc\n\n\n\nd",
		"   leading and trailing   ",
		"one\ntwo\nthree",
		"tabs\t\t\tand\r\n\r\nreturns",
	}
	for _, in := range inputs {
		got := Format(in, ModeCompact)
		stripped := strings.ReplaceAll(got, "\n\n", "|")
		for _, bad := range []string{"  ", "\t", "\r", " \n", "\n "} {
			if strings.Contains(stripped, bad) {
				t.Errorf("compact output %q contains %q", got, bad)
			}
		}
		if got != strings.TrimSpace(got) {
			t.Errorf("compact output %q has leading/trailing whitespace", got)
		}
	}
}

// ---- totality --------------------------------------------------------------

// Every mode must terminate and return without panicking for any input,
// including adversarial ones.
func TestFormat_TotalOverAdversarialInputs(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"\n\n\n\n\n\n\n\n",
		"\f\f\f",
		"\r\r\r\n\r",
		strings.Repeat("x", 100_000),
		strings.Repeat(" ", 5_000),
		strings.Repeat("word ", 10_000),
		"héllo wörld — ünïcode ¶",
		"\x00\x01\x02 control bytes",
		"a:b:c:d::::",
		strings.Repeat("-", 10_000),
	}
	for _, m := range Modes() {
		for i, in := range inputs {
			got := Format(in, m)
			if strings.Contains(got, "\r") {
				t.Errorf("mode %s input %d: output contains \\r", m, i)
			}
		}
	}
}
