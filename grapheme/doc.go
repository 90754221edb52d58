/*
Package grapheme segments text into user-perceived characters and measures
their display width.

Editors move cursors and count columns in grapheme clusters, not in bytes or
code points: a combining sequence, a regional-indicator flag or a
zero-width-joiner emoji is one unit of user-perceived text however many code
points it spans. This package is the single place where the knap editor
consults Unicode segmentation (UAX #29) and East Asian width (UAX #11).

Segmentation and measurement work on plain strings. Callers hand in bounded
windows of text, typically one line; clusters never span a hard line break,
so a line is always a complete segmentation context.

All functions are pure and safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, yamgent

All rights reserved.

Please refer to the LICENSE file for details.
*/
package grapheme

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'knaptext'
func tracer() tracing.Trace {
	return tracing.Select("knaptext")
}
