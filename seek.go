package knaptext

import (
	"errors"
	"fmt"

	"github.com/yamgent/knaptext/chunk"
)

// Seeks descend the tree guided by one of the cached summary dimensions.
// Routing compares the target against the left child's aggregate and either
// recurses left or subtracts and recurses right, so every seek visits at
// most one path of the tree plus one chunk-local scan.

// CharIndexOfByte returns the character index of byte offset b.
//
// b may equal the text length, addressing the end of the text. Fails with
// ErrInvalidBoundary if b points into the interior of a multi-byte
// character encoding.
func (text Text) CharIndexOfByte(b uint64) (uint64, error) {
	n := text.node()
	if b > n.summary.Bytes {
		return 0, ErrIndexOutOfBounds
	}
	if b == n.summary.Bytes {
		return n.summary.Chars, nil
	}
	var chars uint64
	for !n.isLeaf() {
		leftBytes := n.left.summary.Bytes
		if b < leftBytes {
			n = n.left
		} else {
			b -= leftBytes
			chars += n.left.summary.Chars
			n = n.right
		}
	}
	local, err := n.payload.CharsBefore(int(b))
	if err != nil {
		if errors.Is(err, chunk.ErrNotCharBoundary) {
			return 0, fmt.Errorf("byte offset is not on an encoded character boundary: %w", ErrInvalidBoundary)
		}
		return 0, err
	}
	return chars + local, nil
}

// ByteIndexOfChar returns the byte offset of the character with index c.
//
// c may equal the character count, addressing the end of the text.
func (text Text) ByteIndexOfChar(c uint64) (uint64, error) {
	n := text.node()
	if c > n.summary.Chars {
		return 0, ErrIndexOutOfBounds
	}
	if c == n.summary.Chars {
		return n.summary.Bytes, nil
	}
	var bytes uint64
	for !n.isLeaf() {
		leftChars := n.left.summary.Chars
		if c < leftChars {
			n = n.left
		} else {
			c -= leftChars
			bytes += n.left.summary.Bytes
			n = n.right
		}
	}
	local, err := n.payload.OffsetOfChar(c)
	if err != nil {
		return 0, err
	}
	return bytes + uint64(local), nil
}

// LineStartByte returns the byte offset of the first character of the
// 0-based line.
//
// Line numbering follows newline counting: a text with k newlines has the
// valid lines 0 through k, where line k may be empty when the text ends in
// a newline. The seek routes on the cached newline aggregates and never
// scans more than one chunk.
func (text Text) LineStartByte(line uint64) (uint64, error) {
	n := text.node()
	if line > n.summary.Lines {
		return 0, ErrIndexOutOfBounds
	}
	if line == 0 {
		return 0, nil
	}
	var bytes uint64
	for !n.isLeaf() {
		leftLines := n.left.summary.Lines
		if line <= leftLines {
			n = n.left
		} else {
			line -= leftLines
			bytes += n.left.summary.Bytes
			n = n.right
		}
	}
	local, err := n.payload.OffsetOfLine(line)
	if err != nil {
		return 0, err
	}
	return bytes + uint64(local), nil
}

// LineOfByte returns the 0-based line containing byte offset b, which is
// the number of newlines in [0,b).
//
// b may equal the text length, addressing the (possibly empty) last line.
func (text Text) LineOfByte(b uint64) (uint64, error) {
	n := text.node()
	if b > n.summary.Bytes {
		return 0, ErrIndexOutOfBounds
	}
	var lines uint64
	for !n.isLeaf() {
		leftBytes := n.left.summary.Bytes
		if b < leftBytes {
			n = n.left
		} else {
			b -= leftBytes
			lines += n.left.summary.Lines
			n = n.right
		}
	}
	local, err := n.payload.LinesBefore(int(b))
	if err != nil {
		return 0, err
	}
	return lines + local, nil
}
