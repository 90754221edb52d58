package knaptext

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestLineStartBytes(t *testing.T) {
	text := mustText(t, "a\nbb\nccc")
	for line, want := range []uint64{0, 2, 5} {
		got, err := text.LineStartByte(uint64(line))
		if err != nil {
			t.Fatalf("line start of %d failed: %v", line, err)
		}
		if got != want {
			t.Errorf("line %d starts at %d, want %d", line, got, want)
		}
	}
	if _, err := text.LineStartByte(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestLineStartAfterTrailingNewline(t *testing.T) {
	text := mustText(t, "a\nbb\n")
	got, err := text.LineStartByte(2)
	if err != nil {
		t.Fatalf("line start of 2 failed: %v", err)
	}
	// The line after a trailing newline is the empty last line.
	if got != text.Len() {
		t.Errorf("last line starts at %d, want %d", got, text.Len())
	}
}

func TestLineOfByte(t *testing.T) {
	text := mustText(t, "a\nbb\nccc")
	cases := []struct{ b, line uint64 }{
		{0, 0}, {1, 0}, {2, 1}, {4, 1}, {5, 2}, {6, 2}, {8, 2},
	}
	for _, c := range cases {
		got, err := text.LineOfByte(c.b)
		if err != nil {
			t.Fatalf("line of byte %d failed: %v", c.b, err)
		}
		if got != c.line {
			t.Errorf("byte %d is on line %d, want %d", c.b, got, c.line)
		}
	}
	if _, err := text.LineOfByte(9); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestCharByteRoundTrip(t *testing.T) {
	s := "Hä😀\nx"
	text := mustText(t, s)
	if text.CharCount() != 5 {
		t.Fatalf("char count = %d, want 5", text.CharCount())
	}
	starts := []uint64{0, 1, 3, 7, 8}
	for ci, b := range starts {
		char, err := text.CharIndexOfByte(b)
		if err != nil {
			t.Fatalf("char of byte %d failed: %v", b, err)
		}
		if char != uint64(ci) {
			t.Errorf("char of byte %d = %d, want %d", b, char, ci)
		}
		back, err := text.ByteIndexOfChar(uint64(ci))
		if err != nil {
			t.Fatalf("byte of char %d failed: %v", ci, err)
		}
		if back != b {
			t.Errorf("byte of char %d = %d, want %d", ci, back, b)
		}
	}
	// Both seeks address the end of the text.
	if char, err := text.CharIndexOfByte(text.Len()); err != nil || char != 5 {
		t.Errorf("char of end = %d/%v", char, err)
	}
	if b, err := text.ByteIndexOfChar(5); err != nil || b != text.Len() {
		t.Errorf("byte of last char = %d/%v", b, err)
	}
	// Interior bytes of an encoded character are not addressable.
	for _, b := range []uint64{2, 4, 5, 6} {
		if _, err := text.CharIndexOfByte(b); !errors.Is(err, ErrInvalidBoundary) {
			t.Errorf("byte %d: expected ErrInvalidBoundary, got %v", b, err)
		}
	}
	if _, err := text.CharIndexOfByte(10); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := text.ByteIndexOfChar(6); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestSeeksAcrossFragments(t *testing.T) {
	line := "0123456789 αβγδ 0123456789 0123456\n"
	s := strings.Repeat(line, 400)
	text := mustText(t, s)
	if text.FragmentCount() < 2 {
		t.Fatalf("test needs a fragmented text")
	}
	if text.LineBreakCount() != 400 {
		t.Fatalf("line break count = %d, want 400", text.LineBreakCount())
	}
	lineLen := uint64(len(line))
	r := rand.New(rand.NewSource(5))
	for k := 0; k < 200; k++ {
		ln := uint64(r.Intn(401))
		got, err := text.LineStartByte(ln)
		if err != nil {
			t.Fatalf("line start of %d failed: %v", ln, err)
		}
		if got != ln*lineLen {
			t.Fatalf("line %d starts at %d, want %d", ln, got, ln*lineLen)
		}
		back, err := text.LineOfByte(got)
		if err != nil {
			t.Fatalf("line of byte %d failed: %v", got, err)
		}
		if back != ln {
			t.Fatalf("byte %d is on line %d, want %d", got, back, ln)
		}
	}
	// Rune start offsets of the flat string drive the char/byte seeks.
	chars := 0
	for i := range s {
		if chars%97 == 0 {
			ci, err := text.CharIndexOfByte(uint64(i))
			if err != nil {
				t.Fatalf("char of byte %d failed: %v", i, err)
			}
			if ci != uint64(chars) {
				t.Fatalf("char of byte %d = %d, want %d", i, ci, chars)
			}
			bi, err := text.ByteIndexOfChar(ci)
			if err != nil {
				t.Fatalf("byte of char %d failed: %v", ci, err)
			}
			if bi != uint64(i) {
				t.Fatalf("byte of char %d = %d, want %d", ci, bi, i)
			}
		}
		chars++
	}
}
