/*
Package knaptext implements the text buffer core of the knap editor.

The package stores document text as a rope: fragments of immutable text
organized in a binary tree. Every subtree caches aggregate counts (bytes,
characters, newlines), which makes positional editing and coordinate lookups
sub-linear in document size.

# Text

Text is the rope type. A text created by

	Text{}

is a valid object and behaves like the empty string. Editing operations never
mutate a Text; they return a new version which shares all untouched fragments
with its predecessor. Holding on to an old version is therefore cheap, and
old versions stay readable from any goroutine without synchronization. This
is what an editor needs for snapshots: undo history and renderers keep
references to earlier versions while the live buffer moves on.

Due to their internal structure texts have performance characteristics
differing from Go strings or byte arrays.

	Operation     |   Rope          |  String
	--------------+-----------------+--------
	Index         |   O(log n)      |   O(1)
	Split         |   O(log n)      |   O(1)
	Iterate       |   O(n)          |   O(n)

	Concatenate   |   O(log n)      |   O(n)
	Insert        |   O(log n)      |   O(n)
	Delete        |   O(log n)      |   O(n)

Fragments are kept between 512 and 2048 bytes (package chunk); edits split
and re-join the tree at byte positions, merging undersized fragments with a
neighbor so the tree stays shallow and dense.

Positions taken or returned by this package are byte offsets. Higher-level
coordinates (character index, grapheme index, line and column) are the
business of package buffer, which translates them against the aggregate
counts kept here.

# Unicode

Stored text is always valid UTF-8: constructors reject anything else.
Splitting inside a multi-byte character encoding is refused with
ErrInvalidBoundary, so a Text can never hold torn characters.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, yamgent

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package knaptext

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TextError is an error type for the knaptext module.
type TextError string

func (e TextError) Error() string {
	return string(e)
}

// ErrTextCompleted signals that a builder has already completed a text and
// it's illegal to further add fragments.
const ErrTextCompleted = TextError("forbidden to add fragments; text has been completed")

// ErrIndexOutOfBounds is flagged whenever a text position is
// greater than the length of the text.
const ErrIndexOutOfBounds = TextError("index out of bounds")

// ErrInvalidBoundary is flagged whenever a byte position points into the
// interior of a multi-byte character encoding.
const ErrInvalidBoundary = TextError("position splits an encoded character")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TextError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
