package chunk

import (
	"errors"
	"strings"
	"testing"
)

func TestNewComputesSummary(t *testing.T) {
	c, err := New("a\n😀b")
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	if c.Len() != 7 {
		t.Fatalf("unexpected len: %d", c.Len())
	}
	s := c.Summary()
	if s.Bytes != 7 || s.Chars != 4 || s.Lines != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestNewRejectsInvalidUTF8(t *testing.T) {
	_, err := New(string([]byte{0xff}))
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	_, err = NewBytes([]byte{'a', 0xc3})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8 from NewBytes, got %v", err)
	}
}

func TestNewRejectsOversizedText(t *testing.T) {
	_, err := New(strings.Repeat("a", MaxSize+1))
	if !errors.Is(err, ErrChunkTooLarge) {
		t.Fatalf("expected ErrChunkTooLarge, got %v", err)
	}
	if _, err = New(strings.Repeat("a", MaxSize)); err != nil {
		t.Fatalf("chunk of exactly MaxSize should be legal, got %v", err)
	}
}

func TestNewBytesCopiesInput(t *testing.T) {
	src := []byte("ab😀\n")
	c, err := NewBytes(src)
	if err != nil {
		t.Fatalf("unexpected NewBytes error: %v", err)
	}
	src[0] = 'X'
	if c.String() != "ab😀\n" {
		t.Fatalf("chunk should not alias source bytes, got %q", c.String())
	}
}

func TestCharBoundary(t *testing.T) {
	c, err := New("ab😀cd")
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	for _, off := range []int{0, 1, 2, 6, 7, 8} {
		if !c.IsCharBoundary(off) {
			t.Errorf("expected boundary at %d", off)
		}
	}
	for _, off := range []int{3, 4, 5, -1, 9} {
		if c.IsCharBoundary(off) {
			t.Errorf("unexpected boundary at %d", off)
		}
	}
}

func TestSliceAndSplitAt(t *testing.T) {
	c, err := New("ab😀cd")
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	s, err := c.Slice(2, 6)
	if err != nil {
		t.Fatalf("unexpected Slice error: %v", err)
	}
	if s.String() != "😀" {
		t.Fatalf("unexpected slice text: %q", s.String())
	}
	if s.Summary().Chars != 1 {
		t.Fatalf("unexpected slice summary: %+v", s.Summary())
	}
	left, right, err := c.SplitAt(2)
	if err != nil {
		t.Fatalf("unexpected SplitAt error: %v", err)
	}
	if left.String() != "ab" || right.String() != "😀cd" {
		t.Fatalf("unexpected split result: %q | %q", left.String(), right.String())
	}
	if _, _, err = c.SplitAt(3); !errors.Is(err, ErrNotCharBoundary) {
		t.Fatalf("expected ErrNotCharBoundary, got %v", err)
	}
	if _, err = c.Slice(0, 100); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestAppendMergesUpToCapacity(t *testing.T) {
	a, _ := New("hello ")
	b, _ := New("world")
	merged, ok := a.Append(b)
	if !ok || merged.String() != "hello world" {
		t.Fatalf("unexpected append result: %q ok=%v", merged.String(), ok)
	}
	if merged.Summary().Bytes != 11 {
		t.Fatalf("unexpected merged summary: %+v", merged.Summary())
	}
	big, _ := New(strings.Repeat("x", MaxSize))
	same, ok := big.Append(b)
	if ok || same.Len() != MaxSize {
		t.Fatalf("append beyond capacity should refuse, ok=%v len=%d", ok, same.Len())
	}
}

func TestByte(t *testing.T) {
	c, _ := New("a\nb")
	b, err := c.Byte(1)
	if err != nil || b != '\n' {
		t.Fatalf("unexpected Byte result: %c %v", b, err)
	}
	if _, err = c.Byte(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestLocalScans(t *testing.T) {
	c, err := New("a\nbb\nccc")
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	chars, err := c.CharsBefore(5)
	if err != nil || chars != 5 {
		t.Fatalf("unexpected CharsBefore: %d %v", chars, err)
	}
	lines, err := c.LinesBefore(5)
	if err != nil || lines != 2 {
		t.Fatalf("unexpected LinesBefore: %d %v", lines, err)
	}
	off, err := c.OffsetOfLine(2)
	if err != nil || off != 5 {
		t.Fatalf("unexpected OffsetOfLine(2): %d %v", off, err)
	}
	off, err = c.OffsetOfLine(0)
	if err != nil || off != 0 {
		t.Fatalf("unexpected OffsetOfLine(0): %d %v", off, err)
	}
	if _, err = c.OffsetOfLine(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestLocalScansMultibyte(t *testing.T) {
	c, err := New("Ä😀x")
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	off, err := c.OffsetOfChar(2)
	if err != nil || off != 6 {
		t.Fatalf("unexpected OffsetOfChar(2): %d %v", off, err)
	}
	off, err = c.OffsetOfChar(3)
	if err != nil || off != 7 {
		t.Fatalf("unexpected OffsetOfChar(3): %d %v", off, err)
	}
	if _, err = c.OffsetOfChar(4); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err = c.CharsBefore(1); !errors.Is(err, ErrNotCharBoundary) {
		t.Fatalf("expected ErrNotCharBoundary, got %v", err)
	}
	chars, err := c.CharsBefore(6)
	if err != nil || chars != 2 {
		t.Fatalf("unexpected CharsBefore(6): %d %v", chars, err)
	}
}
