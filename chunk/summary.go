package chunk

import (
	"strings"
	"unicode/utf8"
)

// Summary aggregates chunk-level text metrics for tree routing.
//
// Tree-level code uses this summary to navigate and aggregate, while chunk
// code keeps ownership of local byte/rune boundary logic. Lines counts
// newline characters, not lines: text with k newlines spans k+1 lines.
type Summary struct {
	Bytes uint64
	Chars uint64
	Lines uint64
}

// Summarize computes aggregate metrics for UTF-8 text.
func Summarize(text string) Summary {
	return Summary{
		Bytes: uint64(len(text)),
		Chars: uint64(utf8.RuneCountInString(text)),
		Lines: uint64(strings.Count(text, "\n")),
	}
}

// Add combines two summaries. The zero value is the identity.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Bytes: s.Bytes + other.Bytes,
		Chars: s.Chars + other.Chars,
		Lines: s.Lines + other.Lines,
	}
}

// IsZero reports whether the summary is the identity.
func (s Summary) IsZero() bool {
	return s == Summary{}
}
