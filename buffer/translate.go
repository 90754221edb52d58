package buffer

import (
	"fmt"
	"unicode/utf8"

	"github.com/yamgent/knaptext"
	"github.com/yamgent/knaptext/grapheme"
)

// Translator converts positions between the four coordinate schemes of a
// document.
//
// A translator is a value bound to one immutable rope version and one set
// of measurement options; it stays valid and consistent however the buffer
// it came from moves on. Byte and code point conversions route through the
// rope's cached aggregates in O(log n). Grapheme and column conversions
// additionally consult the width oracle and walk line content, because
// cluster counts are not cached per subtree; their cost is bounded by the
// length of the lines walked.
type Translator struct {
	text knaptext.Text
	opts grapheme.Options
}

// NewTranslator creates a translator for a rope version.
func NewTranslator(text knaptext.Text, opts grapheme.Options) Translator {
	return Translator{text: text, opts: opts}
}

// Text returns the rope version the translator is bound to.
func (tr Translator) Text() knaptext.Text {
	return tr.text
}

// ByteToChar returns the code point index of a byte offset.
//
// Fails with knaptext.ErrInvalidBoundary if b points into the interior of
// an encoded character.
func (tr Translator) ByteToChar(b BytePos) (CharPos, error) {
	c, err := tr.text.CharIndexOfByte(uint64(b))
	return CharPos(c), err
}

// CharToByte returns the byte offset of a code point index.
func (tr Translator) CharToByte(c CharPos) (BytePos, error) {
	b, err := tr.text.ByteIndexOfChar(uint64(c))
	return BytePos(b), err
}

// ByteToLineCol returns the line and display column of a byte offset.
//
// The column is the cumulative display width of the clusters between the
// line start and b. A byte offset inside a wide cluster reports the
// cluster's column; one inside an encoded character fails with
// knaptext.ErrInvalidBoundary.
func (tr Translator) ByteToLineCol(b BytePos) (LineCol, error) {
	line, err := tr.text.LineOfByte(uint64(b))
	if err != nil {
		return LineCol{}, err
	}
	start, content, err := tr.lineContent(line)
	if err != nil {
		return LineCol{}, err
	}
	local := uint64(b) - start
	var col uint64
	for off, cluster := range grapheme.Clusters(content) {
		if uint64(off) >= local {
			break
		}
		if uint64(off+len(cluster)) > local {
			// b lands inside this cluster
			if !utf8.RuneStart(content[local]) {
				return LineCol{}, fmt.Errorf("byte offset %d is not on an encoded character boundary: %w", b, knaptext.ErrInvalidBoundary)
			}
			break
		}
		col += uint64(tr.opts.Width(cluster))
	}
	return LineCol{Line: line, Col: col}, nil
}

// LineColToByte returns the byte offset of a line/column position.
//
// A column past the end of the line clamps to the end of the line, and a
// column inside a wide cluster snaps to the cluster's start. Only the line
// number can be out of bounds.
func (tr Translator) LineColToByte(lc LineCol) (BytePos, error) {
	start, content, err := tr.lineContent(lc.Line)
	if err != nil {
		return 0, err
	}
	var col uint64
	for off, cluster := range grapheme.Clusters(content) {
		if col == lc.Col {
			return BytePos(start + uint64(off)), nil
		}
		w := uint64(tr.opts.Width(cluster))
		if col+w > lc.Col {
			return BytePos(start + uint64(off)), nil
		}
		col += w
	}
	return BytePos(start + uint64(len(content))), nil
}

// GraphemeToByte returns the byte offset of a grapheme cluster index.
//
// The walk is anchored at line starts: cluster counting restarts on every
// line, with each line break counting as one cluster. g may equal the total
// cluster count, addressing the end of the text.
func (tr Translator) GraphemeToByte(g GraphemePos) (BytePos, error) {
	remaining := uint64(g)
	breaks := tr.text.LineBreakCount()
	for line := uint64(0); ; line++ {
		start, content, err := tr.lineContent(line)
		if err != nil {
			return 0, err
		}
		count := uint64(grapheme.Count(content))
		if remaining < count {
			var idx uint64
			for off := range grapheme.Boundaries(content) {
				if idx == remaining {
					return BytePos(start + uint64(off)), nil
				}
				idx++
			}
		}
		remaining -= count
		if line == breaks {
			break
		}
		if remaining == 0 {
			// the position of the line break itself
			return BytePos(start + uint64(len(content))), nil
		}
		remaining--
	}
	if remaining == 0 {
		return BytePos(tr.text.Len()), nil
	}
	return 0, knaptext.ErrIndexOutOfBounds
}

// ByteToGrapheme returns the grapheme cluster index of a byte offset.
//
// Fails with knaptext.ErrInvalidBoundary if b is not the start of a
// cluster. b may equal the text length, addressing the end of the text.
func (tr Translator) ByteToGrapheme(b BytePos) (GraphemePos, error) {
	if uint64(b) > tr.text.Len() {
		return 0, knaptext.ErrIndexOutOfBounds
	}
	line, err := tr.text.LineOfByte(uint64(b))
	if err != nil {
		return 0, err
	}
	var total uint64
	for ln := uint64(0); ln < line; ln++ {
		_, content, err := tr.lineContent(ln)
		if err != nil {
			return 0, err
		}
		total += uint64(grapheme.Count(content)) + 1
	}
	start, content, err := tr.lineContent(line)
	if err != nil {
		return 0, err
	}
	local := uint64(b) - start
	if local == uint64(len(content)) {
		// the line break position, or the end of the text
		return GraphemePos(total + uint64(grapheme.Count(content))), nil
	}
	var idx uint64
	for off := range grapheme.Boundaries(content) {
		if uint64(off) == local {
			return GraphemePos(total + idx), nil
		}
		if uint64(off) > local {
			break
		}
		idx++
	}
	return 0, fmt.Errorf("byte offset %d is not on a cluster boundary: %w", b, knaptext.ErrInvalidBoundary)
}

// SnapToChar floors a byte offset to the nearest encoded character start at
// or before it. Offsets past the end clamp to the end.
func (tr Translator) SnapToChar(b BytePos) BytePos {
	if uint64(b) >= tr.text.Len() {
		return BytePos(tr.text.Len())
	}
	x := uint64(b)
	for x > 0 {
		c, err := tr.text.Byte(x)
		if err != nil || utf8.RuneStart(c) {
			break
		}
		x--
	}
	return BytePos(x)
}

// SnapToCluster floors a byte offset to the nearest grapheme cluster start
// at or before it. Offsets past the end clamp to the end.
func (tr Translator) SnapToCluster(b BytePos) BytePos {
	if uint64(b) >= tr.text.Len() {
		return BytePos(tr.text.Len())
	}
	line, err := tr.text.LineOfByte(uint64(b))
	if err != nil {
		return b
	}
	start, content, err := tr.lineContent(line)
	if err != nil {
		return b
	}
	local := uint64(b) - start
	if local >= uint64(len(content)) {
		// line break positions are cluster starts
		return BytePos(start + uint64(len(content)))
	}
	var floor uint64
	for off := range grapheme.Boundaries(content) {
		if uint64(off) > local {
			break
		}
		floor = uint64(off)
	}
	return BytePos(start + floor)
}

// Resolve maps any tagged position to a byte offset.
//
// Byte positions must already lie on an encoded character boundary; the
// other schemes address boundaries by construction. Column positions past
// the end of their line clamp rather than fail.
func (tr Translator) Resolve(p Position) (uint64, error) {
	switch pos := p.(type) {
	case BytePos:
		if _, err := tr.text.CharIndexOfByte(uint64(pos)); err != nil {
			return 0, err
		}
		return uint64(pos), nil
	case CharPos:
		return tr.text.ByteIndexOfChar(uint64(pos))
	case GraphemePos:
		b, err := tr.GraphemeToByte(pos)
		return uint64(b), err
	case LineCol:
		b, err := tr.LineColToByte(pos)
		return uint64(b), err
	}
	return 0, knaptext.ErrIllegalArguments
}

// lineSpan returns the byte offset of the line's first character and the
// byte length of the line's content, excluding the terminating newline.
func (tr Translator) lineSpan(line uint64) (uint64, uint64, error) {
	start, err := tr.text.LineStartByte(line)
	if err != nil {
		return 0, 0, err
	}
	end := tr.text.Len()
	if line < tr.text.LineBreakCount() {
		next, err := tr.text.LineStartByte(line + 1)
		if err != nil {
			return 0, 0, err
		}
		end = next - 1
	}
	return start, end - start, nil
}

func (tr Translator) lineContent(line uint64) (uint64, string, error) {
	start, l, err := tr.lineSpan(line)
	if err != nil {
		return 0, "", err
	}
	content, err := tr.text.Report(start, l)
	return start, content, err
}
