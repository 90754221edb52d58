package knaptext

/*
BSD 3-Clause License

Copyright (c) 2026, yamgent

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"strings"

	"github.com/yamgent/knaptext/chunk"
)

// Text stores immutable UTF-8 text fragments in a persistent summarized
// binary tree.
//
// A text created by
//
//	Text{}
//
// is a valid object and behaves like the empty string.
//
// Methods that take or return positions use byte offsets.
//
// Every editing operation returns a new Text sharing all unaffected
// fragments with its input, so keeping old versions around is cheap and
// concurrent readers of older versions need no synchronization.
type Text struct {
	root *textNode
}

// FromString creates a text from a Go string.
//
// The input must be valid UTF-8; anything else is rejected with
// chunk.ErrInvalidUTF8.
func FromString(s string) (Text, error) {
	parts, err := splitToChunks([]byte(s))
	if err != nil {
		return Text{}, err
	}
	return textFromNode(buildBalanced(parts)), nil
}

// node returns the root node, substituting the designated empty leaf for
// the zero value's absent root.
func (text Text) node() *textNode {
	if text.root == nil {
		return emptyLeaf
	}
	return text.root
}

func textFromNode(n *textNode) Text {
	if n == nil || n.isEmpty() {
		return Text{root: emptyLeaf}
	}
	return Text{root: n}
}

// String returns the complete text as a Go string. This may be an expensive
// operation, as it will allocate a buffer for all the bytes of the text and
// collect all fragments to a single continuous string.
func (text Text) String() string {
	n := text.node()
	if n.isEmpty() {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(n.summary.Bytes))
	for c := range text.RangeChunk() {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// IsVoid reports whether the text has no bytes.
func (text Text) IsVoid() bool {
	return text.node().isEmpty()
}

// Len returns the text length in bytes.
func (text Text) Len() uint64 {
	return text.node().summary.Bytes
}

// Summary returns aggregate byte/char/newline counts for the text.
func (text Text) Summary() chunk.Summary {
	return text.node().summary
}

// CharCount returns the number of UTF-8 encoded characters in the text.
func (text Text) CharCount() uint64 {
	return text.node().summary.Chars
}

// LineBreakCount returns the number of newline characters in the text.
//
// A text with k newlines spans k+1 lines; the last line may be empty.
func (text Text) LineBreakCount() uint64 {
	return text.node().summary.Lines
}

// Height returns the total height of the text's tree. The empty text has
// height 0.
func (text Text) Height() int {
	return text.node().height
}

// FragmentCount returns the number of chunks the text is stored in.
func (text Text) FragmentCount() int {
	cnt := 0
	for range text.RangeChunk() {
		cnt++
	}
	return cnt
}

// RangeChunk returns an iterator over all chunks in logical order.
func (text Text) RangeChunk() iter.Seq[chunk.Chunk] {
	return func(yield func(chunk.Chunk) bool) {
		rangeChunks(text.node(), yield)
	}
}

func rangeChunks(n *textNode, yield func(chunk.Chunk) bool) bool {
	if n.isLeaf() {
		if n.isEmpty() {
			return true
		}
		return yield(n.payload)
	}
	return rangeChunks(n.left, yield) && rangeChunks(n.right, yield)
}

// EachChunk visits all chunks in logical order.
//
// The callback receives each chunk and its starting byte offset. Iteration
// stops at the first callback error and returns that error to the caller.
func (text Text) EachChunk(f func(chunk.Chunk, uint64) error) error {
	var err error
	var pos uint64
	for c := range text.RangeChunk() {
		if err = f(c, pos); err != nil {
			return err
		}
		pos += c.Summary().Bytes
	}
	return nil
}
