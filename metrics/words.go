package metrics

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/yamgent/knaptext"
	"github.com/yamgent/knaptext/chunk"
)

// Span is a byte-range descriptor inside a text version.
//
// Pos is the start byte offset, Len is the span length in bytes.
type Span struct {
	Pos uint64
	Len uint64
}

// End returns the byte offset just past the span.
func (sp Span) End() uint64 {
	return sp.Pos + sp.Len
}

// errScanDone stops fragment iteration once the scan range is exhausted.
var errScanDone = errors.New("scan done")

// WordSpans scans [i,j) of a text and returns the byte spans of all words.
//
// A word is a maximal run of non-spacing characters, with spacing decided
// by unicode.IsSpace. The range bounds are taken verbatim: a bound inside a
// word clips the word at the bound. The scan streams over the text's
// fragments and never materializes the range.
func WordSpans(text knaptext.Text, i, j uint64) ([]Span, error) {
	if i > text.Len() || j > text.Len() || j < i {
		return nil, knaptext.ErrIndexOutOfBounds
	}
	if i == j {
		return nil, nil
	}
	var spans []Span
	inWord := false
	var start uint64
	err := text.EachChunk(func(c chunk.Chunk, pos uint64) error {
		end := pos + uint64(c.Len())
		if end <= i {
			return nil
		}
		if pos >= j {
			return errScanDone
		}
		lo, hi := pos, end
		if lo < i {
			lo = i
		}
		if hi > j {
			hi = j
		}
		s := c.String()[lo-pos : hi-pos]
		for k := 0; k < len(s); {
			r, width := utf8.DecodeRuneInString(s[k:])
			if unicode.IsSpace(r) {
				if inWord {
					spans = append(spans, Span{Pos: start, Len: lo + uint64(k) - start})
					inWord = false
				}
			} else if !inWord {
				inWord = true
				start = lo + uint64(k)
			}
			k += width
		}
		return nil
	})
	if err != nil && err != errScanDone {
		return nil, err
	}
	if inWord {
		spans = append(spans, Span{Pos: start, Len: j - start})
	}
	return spans, nil
}

// WordCount counts the words in [i,j) of a text.
func WordCount(text knaptext.Text, i, j uint64) (int, error) {
	spans, err := WordSpans(text, i, j)
	if err != nil {
		return -1, err
	}
	return len(spans), nil
}

// WordsText materializes the words of [i,j) as a new text, concatenated in
// logical order with all separators dropped.
func WordsText(text knaptext.Text, i, j uint64) (knaptext.Text, error) {
	spans, err := WordSpans(text, i, j)
	if err != nil {
		return knaptext.Text{}, err
	}
	b := knaptext.NewBuilder()
	for _, sp := range spans {
		word, err := text.Report(sp.Pos, sp.Len)
		if err != nil {
			return knaptext.Text{}, err
		}
		if err := b.AppendString(word); err != nil {
			return knaptext.Text{}, err
		}
	}
	return b.Text(), nil
}
