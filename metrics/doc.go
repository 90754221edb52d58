/*
Package metrics provides some pre-manufactured metrics on texts.

Metrics measure a byte range of a text without changing it: word spans and
counts for status lines, and regex-delimited spans for lightweight document
structure. Results are reported as byte spans into the measured version, so
they can be fed straight back into translators and editing operations.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, yamgent

All rights reserved.

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'knaptext'
func tracer() tracing.Trace {
	return tracing.Select("knaptext")
}
