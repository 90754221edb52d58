/*
Package buffer is the public entry point to the knap text buffer.

A Buffer owns one rope of text (package knaptext) and composes the pieces an
editor needs around it: coordinate translation between the four addressing
schemes of a document, editing operations, snapshots, and a change-event
stream for renderers and undo history.

# Coordinates

A spot in a document can be addressed four ways: byte offset, code point
index, grapheme cluster index, or line and display column. The same spot is
a different number in each scheme, and mixing them up is the classic editor
bug. Positions are therefore tagged types (BytePos, CharPos, GraphemePos,
LineCol) which only a Translator converts; there is no implicit conversion
and no arithmetic across schemes.

# Concurrency

A Buffer is a single-writer object: exactly one goroutine may call its
mutating operations. The buffer itself does no locking. Reads against
snapshots need no synchronization at all, because every edit produces a new
immutable rope version and snapshots keep referencing the old one. Readers
and the writer never contend; the embedding application is responsible for
not mutating from two goroutines.

# Errors

Operations report failure, never panic: knaptext.ErrIndexOutOfBounds for
positions outside the document, knaptext.ErrInvalidBoundary for byte offsets
splitting an encoded character, chunk.ErrInvalidUTF8 for malformed input
text, ErrInvalidRange for inverted ranges, and ErrBufferClosed for any
operation after Close.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, yamgent

All rights reserved.

Please refer to the LICENSE file for details.
*/
package buffer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'knaptext'
func tracer() tracing.Trace {
	return tracing.Select("knaptext")
}

// BufferError is an error type for the buffer package.
type BufferError string

func (e BufferError) Error() string {
	return string(e)
}

// ErrBufferClosed is flagged by every operation on a closed buffer.
const ErrBufferClosed = BufferError("buffer is closed")

// ErrInvalidRange is flagged when a range's start resolves to a byte offset
// behind its end.
const ErrInvalidRange = BufferError("range start is behind range end")
