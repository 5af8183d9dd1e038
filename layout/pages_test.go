package layout

import "testing"

func assertPages(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d pages %q, want %d %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("page %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitPages_Basic(t *testing.T) {
	assertPages(t, SplitPages("Page1\fPage2\fPage3"), []string{"Page1", "Page2", "Page3"})
}

func TestSplitPages_KeepsSegmentContent(t *testing.T) {
	assertPages(t, SplitPages("A\fB\f\f C"), []string{"A", "B", " C"})
}

func TestSplitPages_DropsWhitespaceOnlySegments(t *testing.T) {
	assertPages(t, SplitPages("Page1\fPage2\f\n\fPage3"), []string{"Page1", "Page2", "Page3"})
}

func TestSplitPages_NoMarkers(t *testing.T) {
	assertPages(t, SplitPages("single page of text"), []string{"single page of text"})
}

func TestSplitPages_Empty(t *testing.T) {
	assertPages(t, SplitPages(""), []string{})
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats("one two  three", 4)
	if s.TextLength != 14 {
		t.Errorf("TextLength = %d, want 14", s.TextLength)
	}
	if s.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", s.WordCount)
	}
	if s.PageCount != 4 {
		t.Errorf("PageCount = %d, want 4", s.PageCount)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats("", 0)
	if s.TextLength != 0 || s.WordCount != 0 || s.PageCount != 0 {
		t.Errorf("empty stats = %+v, want zeroes", s)
	}
}
