package buffer

import (
	"strings"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/yamgent/knaptext"
	"github.com/yamgent/knaptext/chunk"
	"github.com/yamgent/knaptext/grapheme"
)

// State is the lifecycle state of a Buffer.
type State int

const (
	// Ready accepts operations.
	Ready State = iota
	// Closed rejects every operation with ErrBufferClosed.
	Closed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Closed:
		return "closed"
	}
	return "invalid"
}

// Buffer is an editable document.
//
// A buffer holds the current rope version and a revision counter. Editing
// operations are atomic: they either fully apply, advance the revision and
// emit a ChangeEvent, or reject the input and leave the buffer untouched.
//
// A buffer must be mutated from a single goroutine. It carries no lock;
// concurrent reads go through snapshots, which edits never disturb.
type Buffer struct {
	text     knaptext.Text
	rev      uint64
	state    State
	measure  grapheme.Options
	eventCap uint
	cast     *caster.Caster
}

// Open creates a buffer holding initial.
//
// The initial text must be valid UTF-8; anything else is rejected with
// chunk.ErrInvalidUTF8. Windows line endings ("\r\n") are normalized to
// "\n" before the text is stored.
func Open(initial string, opts ...Option) (*Buffer, error) {
	if !utf8.ValidString(initial) {
		return nil, chunk.ErrInvalidUTF8
	}
	b := knaptext.NewBuilder()
	if err := b.AppendString(strings.ReplaceAll(initial, "\r\n", "\n")); err != nil {
		return nil, err
	}
	buf := &Buffer{
		text:     b.Text(),
		eventCap: eventBufferSize,
		cast:     caster.New(nil),
	}
	for _, opt := range opts {
		opt(buf)
	}
	tracer().Debugf("opened buffer with %d bytes in %d fragments", buf.text.Len(), buf.text.FragmentCount())
	return buf, nil
}

// State returns the lifecycle state of the buffer.
func (buf *Buffer) State() State {
	return buf.state
}

// Close moves the buffer to the Closed state and ends the event stream.
//
// Snapshots taken before closing stay valid. A second close fails with
// ErrBufferClosed like any other operation.
func (buf *Buffer) Close() error {
	if buf.state != Ready {
		return ErrBufferClosed
	}
	buf.state = Closed
	buf.cast.Close()
	tracer().Debugf("buffer closed at revision %d", buf.rev)
	return nil
}

// Len returns the buffer length in bytes.
func (buf *Buffer) Len() uint64 {
	return buf.text.Len()
}

// CharCount returns the number of encoded characters in the buffer.
func (buf *Buffer) CharCount() uint64 {
	return buf.text.CharCount()
}

// LineBreakCount returns the number of newlines in the buffer.
func (buf *Buffer) LineBreakCount() uint64 {
	return buf.text.LineBreakCount()
}

// Lines returns the number of lines. The empty buffer has one line, and a
// trailing newline opens a last, empty line.
func (buf *Buffer) Lines() uint64 {
	return buf.text.LineBreakCount() + 1
}

// Revision returns the number of edits applied so far.
func (buf *Buffer) Revision() uint64 {
	return buf.rev
}

// String returns the complete buffer content.
func (buf *Buffer) String() string {
	return buf.text.String()
}

// Translator returns a coordinate translator for the current version.
func (buf *Buffer) Translator() Translator {
	return Translator{text: buf.text, opts: buf.measure}
}

// Snapshot captures the current version as an immutable view.
//
// The capture is O(1): the snapshot shares the rope version with the
// buffer, and later edits path-copy away from it.
func (buf *Buffer) Snapshot() (Snapshot, error) {
	if buf.state != Ready {
		return Snapshot{}, ErrBufferClosed
	}
	return Snapshot{text: buf.text, rev: buf.rev, measure: buf.measure}, nil
}

// InsertAt inserts text at a position.
//
// The position is resolved to a byte offset first: a BytePos must lie on an
// encoded character boundary (knaptext.ErrInvalidBoundary otherwise), the
// other schemes address boundaries by construction. The text must be valid
// UTF-8. On success the revision advances and a ChangeEvent is emitted;
// on failure the buffer is untouched.
func (buf *Buffer) InsertAt(pos Position, text string) error {
	if buf.state != Ready {
		return ErrBufferClosed
	}
	if !utf8.ValidString(text) {
		return chunk.ErrInvalidUTF8
	}
	at, err := buf.Translator().Resolve(pos)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	updated, err := knaptext.InsertString(buf.text, text, at)
	if err != nil {
		return err
	}
	buf.commit(updated,
		Range{Start: at, End: at},
		Range{Start: at, End: at + uint64(len(text))})
	return nil
}

// DeleteRange removes the text between two positions.
//
// Both positions are resolved to byte offsets first; the range is
// half-open. Fails with ErrInvalidRange if from resolves behind to. On
// success the revision advances and a ChangeEvent is emitted; on failure
// the buffer is untouched.
func (buf *Buffer) DeleteRange(from, to Position) error {
	if buf.state != Ready {
		return ErrBufferClosed
	}
	tr := buf.Translator()
	start, err := tr.Resolve(from)
	if err != nil {
		return err
	}
	end, err := tr.Resolve(to)
	if err != nil {
		return err
	}
	if start > end {
		return ErrInvalidRange
	}
	if start == end {
		return nil
	}
	updated, err := knaptext.Delete(buf.text, start, end-start)
	if err != nil {
		return err
	}
	buf.commit(updated,
		Range{Start: start, End: end},
		Range{Start: start, End: start})
	return nil
}

// TextIn returns the bytes between two positions as a string.
func (buf *Buffer) TextIn(from, to Position) (string, error) {
	if buf.state != Ready {
		return "", ErrBufferClosed
	}
	tr := buf.Translator()
	start, err := tr.Resolve(from)
	if err != nil {
		return "", err
	}
	end, err := tr.Resolve(to)
	if err != nil {
		return "", err
	}
	if start > end {
		return "", ErrInvalidRange
	}
	return buf.text.Report(start, end-start)
}

// RunesIn returns the characters between two positions as Unicode scalar
// values.
func (buf *Buffer) RunesIn(from, to Position) ([]rune, error) {
	s, err := buf.TextIn(from, to)
	if err != nil {
		return nil, err
	}
	return []rune(s), nil
}

// LineStartByte returns the byte position of the first character of the
// 0-based line.
func (buf *Buffer) LineStartByte(line uint64) (BytePos, error) {
	if buf.state != Ready {
		return 0, ErrBufferClosed
	}
	b, err := buf.text.LineStartByte(line)
	return BytePos(b), err
}

// commit installs the edited rope version and publishes the change.
func (buf *Buffer) commit(text knaptext.Text, removed, inserted Range) {
	buf.text = text
	buf.rev++
	ev := ChangeEvent{
		Removed:  removed,
		Inserted: inserted,
		NewLen:   text.Len(),
		Revision: buf.rev,
	}
	tracer().Debugf("buffer change: -%d +%d bytes at %d, revision %d",
		removed.Len(), inserted.Len(), removed.Start, buf.rev)
	buf.cast.Pub(ev)
}
