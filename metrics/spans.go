package metrics

import (
	"regexp"

	"github.com/yamgent/knaptext"
)

// FindSpans returns the spans of all non-overlapping matches of re in [i,j)
// of a text, leftmost first.
//
// The range is materialized for matching, so FindSpans is meant for bounded
// ranges like the visible region of a document, not for whole large texts.
func FindSpans(text knaptext.Text, i, j uint64, re *regexp.Regexp) ([]Span, error) {
	if re == nil {
		return nil, knaptext.ErrIllegalArguments
	}
	if i > text.Len() || j > text.Len() || j < i {
		return nil, knaptext.ErrIndexOutOfBounds
	}
	content, err := text.Report(i, j-i)
	if err != nil {
		return nil, err
	}
	matches := re.FindAllStringIndex(content, -1)
	spans := make([]Span, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, Span{Pos: i + uint64(m[0]), Len: uint64(m[1] - m[0])})
	}
	return spans, nil
}
