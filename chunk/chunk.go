package chunk

import (
	"strings"
	"unicode/utf8"
)

// Size policy for chunk payloads, in bytes.
//
// Tree-level code keeps leaves between MinSize and MaxSize: leaves above
// MaxSize are split, leaves below MinSize are merged with a neighbor where
// one is available. Fresh ingest aims for TargetSize.
const (
	// MinSize is the lower occupancy bound for leaves with neighbors.
	MinSize = 512
	// TargetSize is the preferred payload length for fresh chunks.
	TargetSize = 1024
	// MaxSize is the maximum chunk payload length in bytes.
	MaxSize = 2048
)

// Chunk stores an immutable run of UTF-8 text together with precomputed
// aggregate metrics.
//
// The chunk is immutable by convention: editing operations return a new
// Chunk. Sub-chunks share the backing string of their origin.
type Chunk struct {
	text    string
	summary Summary
}

// New creates a chunk from UTF-8 text.
//
// Returns an error if the text is not valid UTF-8 or exceeds MaxSize bytes.
func New(text string) (Chunk, error) {
	if !utf8.ValidString(text) {
		return Chunk{}, ErrInvalidUTF8
	}
	if len(text) > MaxSize {
		return Chunk{}, ErrChunkTooLarge
	}
	return Chunk{text: text, summary: Summarize(text)}, nil
}

// NewBytes creates a chunk from UTF-8 bytes. The bytes are copied.
//
// Important for ingest pipelines: callers should split raw input only at
// UTF-8 rune boundaries before calling NewBytes for each chunk. This
// constructor validates UTF-8 and will reject byte slices that start or end
// in the middle of a multi-byte rune.
func NewBytes(text []byte) (Chunk, error) {
	return New(string(text))
}

// Len returns the text length in bytes.
func (c Chunk) Len() int {
	return len(c.text)
}

// IsEmpty reports whether the chunk has no bytes.
func (c Chunk) IsEmpty() bool {
	return len(c.text) == 0
}

// String returns the chunk text.
func (c Chunk) String() string {
	return c.text
}

// Bytes returns a copied byte slice of the chunk text.
func (c Chunk) Bytes() []byte {
	return []byte(c.text)
}

// Byte returns the byte at a chunk-local offset.
func (c Chunk) Byte(offset int) (byte, error) {
	if offset < 0 || offset >= len(c.text) {
		return 0, ErrIndexOutOfBounds
	}
	return c.text[offset], nil
}

// Summary returns aggregate metrics for this chunk.
func (c Chunk) Summary() Summary {
	return c.summary
}

// IsCharBoundary reports whether offset is a UTF-8 boundary inside this chunk.
func (c Chunk) IsCharBoundary(offset int) bool {
	if offset == len(c.text) {
		return true
	}
	if offset < 0 || offset > len(c.text) {
		return false
	}
	return utf8.RuneStart(c.text[offset])
}

// Slice returns the sub-chunk for [start,end) in chunk-local byte offsets.
//
// Both offsets must lie on UTF-8 boundaries. The sub-chunk shares the
// backing string.
func (c Chunk) Slice(start, end int) (Chunk, error) {
	if start < 0 || end < start || end > len(c.text) {
		return Chunk{}, ErrIndexOutOfBounds
	}
	if !c.IsCharBoundary(start) || !c.IsCharBoundary(end) {
		return Chunk{}, ErrNotCharBoundary
	}
	sub := c.text[start:end]
	return Chunk{text: sub, summary: Summarize(sub)}, nil
}

// SplitAt splits a chunk into left/right sub-chunks at byte offset mid.
func (c Chunk) SplitAt(mid int) (Chunk, Chunk, error) {
	left, err := c.Slice(0, mid)
	if err != nil {
		return Chunk{}, Chunk{}, err
	}
	right, err := c.Slice(mid, len(c.text))
	if err != nil {
		return Chunk{}, Chunk{}, err
	}
	return left, right, nil
}

// Append returns a new chunk with other's text appended.
//
// The boolean is false if the append would exceed MaxSize; in that case, the
// original chunk is returned unchanged.
func (c Chunk) Append(other Chunk) (Chunk, bool) {
	if other.IsEmpty() {
		return c, true
	}
	if len(c.text)+len(other.text) > MaxSize {
		return c, false
	}
	merged := c.text + other.text
	return Chunk{text: merged, summary: c.summary.Add(other.summary)}, true
}

// --- Local coordinate scans ------------------------------------------------

// CharsBefore returns the number of runes in the chunk prefix [0,offset).
//
// offset must lie on a UTF-8 boundary.
func (c Chunk) CharsBefore(offset int) (uint64, error) {
	if offset < 0 || offset > len(c.text) {
		return 0, ErrIndexOutOfBounds
	}
	if !c.IsCharBoundary(offset) {
		return 0, ErrNotCharBoundary
	}
	return uint64(utf8.RuneCountInString(c.text[:offset])), nil
}

// LinesBefore returns the number of newlines in the chunk prefix [0,offset).
func (c Chunk) LinesBefore(offset int) (uint64, error) {
	if offset < 0 || offset > len(c.text) {
		return 0, ErrIndexOutOfBounds
	}
	return uint64(strings.Count(c.text[:offset], "\n")), nil
}

// OffsetOfChar returns the byte offset of the n-th rune in the chunk.
//
// n may equal the chunk's rune count, addressing the end of the chunk.
func (c Chunk) OffsetOfChar(n uint64) (int, error) {
	if n > c.summary.Chars {
		return 0, ErrIndexOutOfBounds
	}
	offset := 0
	for ; n > 0; n-- {
		_, size := utf8.DecodeRuneInString(c.text[offset:])
		offset += size
	}
	return offset, nil
}

// OffsetOfLine returns the byte offset where chunk-local line n starts.
//
// Line 0 starts at offset 0; line n starts right after the n-th newline.
// n may not exceed the chunk's newline count.
func (c Chunk) OffsetOfLine(n uint64) (int, error) {
	if n > c.summary.Lines {
		return 0, ErrIndexOutOfBounds
	}
	offset := 0
	for ; n > 0; n-- {
		nl := strings.IndexByte(c.text[offset:], '\n')
		if nl < 0 {
			return 0, ErrIndexOutOfBounds
		}
		offset += nl + 1
	}
	return offset, nil
}
