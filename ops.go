package knaptext

import (
	"strings"

	"github.com/yamgent/knaptext/chunk"
)

// Concat concatenates text with others, in order, and returns the resulting
// text. The inputs stay valid and unchanged.
func Concat(text Text, others ...Text) Text {
	n := text.node()
	for _, o := range others {
		n = join(n, o.node())
	}
	return textFromNode(n)
}

// Insert inserts text ins at byte offset i.
//
// Inserting at i == text.Len() appends. Fails with ErrIndexOutOfBounds for
// larger offsets and with ErrInvalidBoundary if i points into the interior
// of a multi-byte character encoding.
func Insert(text Text, ins Text, i uint64) (Text, error) {
	if i > text.Len() {
		return text, ErrIndexOutOfBounds
	}
	if ins.IsVoid() {
		return text, nil
	}
	l, r, err := splitNode(text.node(), i)
	if err != nil {
		return text, err
	}
	return textFromNode(join(join(l, ins.node()), r)), nil
}

// InsertString inserts string s at byte offset i.
//
// s must be valid UTF-8; anything else is rejected with chunk.ErrInvalidUTF8
// and the text stays unchanged.
func InsertString(text Text, s string, i uint64) (Text, error) {
	if s == "" {
		if i > text.Len() {
			return text, ErrIndexOutOfBounds
		}
		return text, nil
	}
	ins, err := FromString(s)
	if err != nil {
		return text, err
	}
	return Insert(text, ins, i)
}

// Split splits text at byte offset i and returns both sides.
func Split(text Text, i uint64) (Text, Text, error) {
	if i > text.Len() {
		return text, Text{}, ErrIndexOutOfBounds
	}
	l, r, err := splitNode(text.node(), i)
	if err != nil {
		return text, Text{}, err
	}
	return textFromNode(l), textFromNode(r), nil
}

// Cut removes the byte range [i,i+l) from text.
//
// It returns the remainder and the removed piece. Both boundaries must lie
// on encoded character boundaries.
func Cut(text Text, i, l uint64) (Text, Text, error) {
	if i > text.Len() || l > text.Len()-i {
		return text, Text{}, ErrIndexOutOfBounds
	}
	if l == 0 {
		return text, Text{}, nil
	}
	a, rest, err := splitNode(text.node(), i)
	if err != nil {
		return text, Text{}, err
	}
	mid, c, err := splitNode(rest, l)
	if err != nil {
		return text, Text{}, err
	}
	return textFromNode(join(a, c)), textFromNode(mid), nil
}

// Delete removes the byte range [i,i+l) from text and returns the remainder.
func Delete(text Text, i, l uint64) (Text, error) {
	rest, _, err := Cut(text, i, l)
	return rest, err
}

// Substr returns the byte range [i,i+l) as a new text.
//
// The result shares fragments with the input where the range covers whole
// chunks.
func Substr(text Text, i, l uint64) (Text, error) {
	if i > text.Len() || l > text.Len()-i {
		return Text{}, ErrIndexOutOfBounds
	}
	if l == 0 {
		return Text{}, nil
	}
	_, rest, err := splitNode(text.node(), i)
	if err != nil {
		return Text{}, err
	}
	mid, _, err := splitNode(rest, l)
	if err != nil {
		return Text{}, err
	}
	return textFromNode(mid), nil
}

// Report returns the byte range [i,i+l) as a string.
//
// Report is a read-only view: it walks the fragments covering the range
// without restructuring the tree. The range is not required to align with
// character boundaries; callers wanting guaranteed well-formed UTF-8 resolve
// their offsets first.
func (text Text) Report(i, l uint64) (string, error) {
	n := text.node()
	if i > n.summary.Bytes || l > n.summary.Bytes-i {
		return "", ErrIndexOutOfBounds
	}
	if l == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.Grow(int(l))
	reportNode(n, i, l, &sb)
	return sb.String(), nil
}

func reportNode(n *textNode, i, l uint64, sb *strings.Builder) {
	if n.isLeaf() {
		sb.WriteString(n.payload.String()[i : i+l])
		return
	}
	leftBytes := n.left.summary.Bytes
	if i >= leftBytes {
		reportNode(n.right, i-leftBytes, l, sb)
		return
	}
	take := leftBytes - i
	if take > l {
		take = l
	}
	reportNode(n.left, i, take, sb)
	if l > take {
		reportNode(n.right, 0, l-take, sb)
	}
}

// Index locates the fragment containing byte offset i.
//
// It returns the chunk and the offset of i within that chunk.
func (text Text) Index(i uint64) (chunk.Chunk, uint64, error) {
	n := text.node()
	if i >= n.summary.Bytes {
		return chunk.Chunk{}, 0, ErrIndexOutOfBounds
	}
	for !n.isLeaf() {
		leftBytes := n.left.summary.Bytes
		if i < leftBytes {
			n = n.left
		} else {
			i -= leftBytes
			n = n.right
		}
	}
	return n.payload, i, nil
}

// Byte returns the byte at offset i.
func (text Text) Byte(i uint64) (byte, error) {
	c, local, err := text.Index(i)
	if err != nil {
		return 0, err
	}
	return c.Byte(int(local))
}
