package buffer

// Position is a tagged buffer coordinate.
//
// The tag records which of the four addressing schemes the value belongs
// to. Positions of different schemes addressing the same spot are different
// numbers; Translator.Resolve is the only way to map between them.
//
// Position is a sealed interface: BytePos, CharPos, GraphemePos and LineCol
// are its only implementations.
type Position interface {
	position()
}

// BytePos addresses a byte offset in [0, length].
type BytePos uint64

// CharPos addresses a code point index in [0, character count].
type CharPos uint64

// GraphemePos addresses a grapheme cluster index. Every line break counts
// as one cluster of its own.
type GraphemePos uint64

// LineCol addresses a 0-based line and a display column within that line.
//
// Col counts terminal cells, not characters: a wide character advances the
// column by two, an attached combining mark by zero.
type LineCol struct {
	Line uint64
	Col  uint64
}

func (BytePos) position()     {}
func (CharPos) position()     {}
func (GraphemePos) position() {}
func (LineCol) position()     {}
