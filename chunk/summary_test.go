package chunk

import "testing"

func TestSummarize(t *testing.T) {
	cases := []struct {
		text  string
		bytes uint64
		chars uint64
		lines uint64
	}{
		{"", 0, 0, 0},
		{"abc", 3, 3, 0},
		{"a\nbb\nccc", 8, 8, 2},
		{"😀", 4, 1, 0},
		{"Ä\n", 3, 2, 1},
		{"\n\n\n", 3, 3, 3},
	}
	for _, c := range cases {
		s := Summarize(c.text)
		if s.Bytes != c.bytes || s.Chars != c.chars || s.Lines != c.lines {
			t.Errorf("Summarize(%q) = %+v", c.text, s)
		}
	}
}

func TestSummaryAdd(t *testing.T) {
	a := Summarize("a\n")
	b := Summarize("😀b")
	sum := a.Add(b)
	if sum != Summarize("a\n😀b") {
		t.Fatalf("summary addition mismatch: %+v", sum)
	}
	if !(Summary{}).IsZero() {
		t.Fatalf("zero summary should report IsZero")
	}
	if sum.Add(Summary{}) != sum {
		t.Fatalf("zero summary should be the identity")
	}
}
