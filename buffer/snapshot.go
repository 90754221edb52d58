package buffer

import (
	"github.com/yamgent/knaptext"
	"github.com/yamgent/knaptext/grapheme"
)

// Snapshot is an immutable view of one buffer revision.
//
// A snapshot stays readable after any number of later edits and after the
// buffer is closed. Two snapshots of the same revision are interchangeable.
// Snapshots are safe for concurrent use.
type Snapshot struct {
	text    knaptext.Text
	rev     uint64
	measure grapheme.Options
}

// Text returns the underlying rope version.
func (s Snapshot) Text() knaptext.Text {
	return s.text
}

// Revision identifies the buffer revision this snapshot was taken at.
func (s Snapshot) Revision() uint64 {
	return s.rev
}

// Len returns the snapshot length in bytes.
func (s Snapshot) Len() uint64 {
	return s.text.Len()
}

// String returns the complete snapshot content.
func (s Snapshot) String() string {
	return s.text.String()
}

// Translator returns a coordinate translator pinned to this snapshot's
// revision.
func (s Snapshot) Translator() Translator {
	return Translator{text: s.text, opts: s.measure}
}
