package knaptext

import (
	"unicode/utf8"

	"github.com/yamgent/knaptext/chunk"
)

// Builder incrementally stages text and finalizes it into a Text.
//
// Builder collects UTF-8 text as chunks and materializes the tree only when
// Text() is called, building it balanced in one pass. This is the preferred
// way to ingest whole documents: repeated Insert calls would pay tree
// restructuring per call, the builder pays it once.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended chunks in reverse logical order.
	front []chunk.Chunk
	// back keeps appended chunks in logical order.
	back []chunk.Chunk

	done  bool
	dirty bool
	text  Text
}

// NewBuilder creates a new and empty text builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Text returns the text built from all staged fragments.
//
// It is illegal to continue adding fragments after Text has been called, but
// Text may be called multiple times.
func (b *Builder) Text() Text {
	if b == nil {
		return Text{}
	}
	if b.dirty {
		b.text = textFromNode(buildBalanced(b.orderedChunks()))
		b.dirty = false
	}
	b.done = true
	if b.text.IsVoid() {
		T().Debugf("text builder: text is void")
	}
	return b.text
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.text = Text{}
}

// AppendString appends UTF-8 text to the staged build.
func (b *Builder) AppendString(text string) error {
	if !utf8.ValidString(text) {
		return chunk.ErrInvalidUTF8
	}
	return b.AppendBytes([]byte(text))
}

// PrependString prepends UTF-8 text to the staged build.
func (b *Builder) PrependString(text string) error {
	if !utf8.ValidString(text) {
		return chunk.ErrInvalidUTF8
	}
	return b.PrependBytes([]byte(text))
}

// AppendBytes appends UTF-8 bytes to the staged build.
func (b *Builder) AppendBytes(text []byte) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTextCompleted
	}
	chunks, err := splitToChunks(text)
	if err != nil {
		return err
	}
	for _, c := range chunks {
		if len(b.back) > 0 {
			last := len(b.back) - 1
			if b.back[last].Len() < chunk.TargetSize {
				merged, ok := b.back[last].Append(c)
				if ok {
					b.back[last] = merged
					continue
				}
			}
		}
		b.back = append(b.back, c)
	}
	if len(chunks) > 0 {
		b.dirty = true
	}
	return nil
}

// PrependBytes prepends UTF-8 bytes to the staged build.
func (b *Builder) PrependBytes(text []byte) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTextCompleted
	}
	chunks, err := splitToChunks(text)
	if err != nil {
		return err
	}
	// front is stored in reverse logical order.
	for i := len(chunks) - 1; i >= 0; i-- {
		b.front = append(b.front, chunks[i])
	}
	if len(chunks) > 0 {
		b.dirty = true
	}
	return nil
}

// AppendChunk appends a pre-built chunk.
func (b *Builder) AppendChunk(c chunk.Chunk) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTextCompleted
	}
	if c.IsEmpty() {
		return nil
	}
	if len(b.back) > 0 {
		last := len(b.back) - 1
		if b.back[last].Len() < chunk.TargetSize {
			merged, ok := b.back[last].Append(c)
			if ok {
				b.back[last] = merged
				b.dirty = true
				return nil
			}
		}
	}
	b.back = append(b.back, c)
	b.dirty = true
	return nil
}

// PrependChunk prepends a pre-built chunk.
func (b *Builder) PrependChunk(c chunk.Chunk) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTextCompleted
	}
	if c.IsEmpty() {
		return nil
	}
	b.front = append(b.front, c)
	b.dirty = true
	return nil
}

func (b *Builder) orderedChunks() []chunk.Chunk {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]chunk.Chunk, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}

// splitToChunks splits UTF-8 bytes into chunk-sized pieces.
//
// The byte count is distributed evenly over the minimal number of
// target-sized chunks, so no undersized tail chunk is produced; boundaries
// are adjusted so no chunk starts or ends in the middle of a UTF-8 rune.
func splitToChunks(text []byte) ([]chunk.Chunk, error) {
	if len(text) == 0 {
		return nil, nil
	}
	if !utf8.Valid(text) {
		return nil, chunk.ErrInvalidUTF8
	}
	pieces := 1 + (len(text)-1)/chunk.TargetSize
	parts := make([]chunk.Chunk, 0, pieces)
	for i, rest := 0, len(text); i < len(text); {
		per := rest / (pieces - len(parts))
		end := i + per
		if end >= len(text) {
			end = len(text)
		} else {
			for end > i && !utf8.RuneStart(text[end]) {
				end--
			}
			if end == i {
				return nil, chunk.ErrInvalidUTF8
			}
		}
		c, err := chunk.NewBytes(text[i:end])
		if err != nil {
			return nil, err
		}
		parts = append(parts, c)
		rest -= end - i
		i = end
	}
	return parts, nil
}
