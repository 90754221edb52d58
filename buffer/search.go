package buffer

import (
	"strings"

	"github.com/yamgent/knaptext"
)

// SearchDirection selects which way Find scans from the start position.
type SearchDirection int

const (
	// SearchForward scans towards the end of the buffer, wrapping around
	// to the beginning.
	SearchForward SearchDirection = iota
	// SearchBackward scans towards the beginning of the buffer, wrapping
	// around to the end.
	SearchBackward
)

// searchWindowSize is the number of bytes a forward scan materializes at a
// time. Consecutive windows overlap by len(needle)-1 bytes so matches on a
// window seam are found.
const searchWindowSize = 64 * 1024

// Find locates a byte-exact occurrence of needle, starting at from.
//
// Forward search returns the first match at or after from, wrapping around
// to the buffer start if none follows. Backward search returns the last
// match starting strictly before from, wrapping around to the buffer end.
// The start position may be any byte offset up to the buffer length; it
// does not need to lie on a character boundary. An empty needle matches at
// from. The second result reports whether a match was found.
func (buf *Buffer) Find(needle string, from BytePos, dir SearchDirection) (BytePos, bool, error) {
	if buf.state != Ready {
		return 0, false, ErrBufferClosed
	}
	start := uint64(from)
	if start > buf.text.Len() {
		return 0, false, knaptext.ErrIndexOutOfBounds
	}
	if needle == "" {
		return from, true, nil
	}
	var pos uint64
	var found bool
	var err error
	if dir == SearchBackward {
		pos, found, err = buf.findBackward(needle, start)
	} else {
		pos, found, err = buf.findForward(needle, start)
	}
	return BytePos(pos), found, err
}

func (buf *Buffer) findForward(needle string, start uint64) (uint64, bool, error) {
	if pos, ok, err := buf.scanForward(needle, start, buf.text.Len()); ok || err != nil {
		return pos, ok, err
	}
	if start == 0 {
		return 0, false, nil
	}
	return buf.scanForward(needle, 0, start)
}

// scanForward finds the first match whose start lies in [lo, hiStart). It
// reads up to len(needle)-1 bytes past hiStart so a match crossing the
// limit is still found.
func (buf *Buffer) scanForward(needle string, lo, hiStart uint64) (uint64, bool, error) {
	m := uint64(len(needle))
	readEnd := hiStart + m - 1
	if n := buf.text.Len(); readEnd > n {
		readEnd = n
	}
	for winStart := lo; winStart < hiStart; {
		winEnd := winStart + searchWindowSize
		if winEnd > readEnd {
			winEnd = readEnd
		}
		window, err := buf.text.Report(winStart, winEnd-winStart)
		if err != nil {
			return 0, false, err
		}
		if idx := strings.Index(window, needle); idx >= 0 {
			pos := winStart + uint64(idx)
			if pos < hiStart {
				return pos, true, nil
			}
			return 0, false, nil
		}
		if winEnd-winStart < m {
			break
		}
		winStart = winEnd - (m - 1)
	}
	return 0, false, nil
}

// findBackward materializes the prefix up to the start position and takes
// the last match in it. Any match there starts before the start position,
// since a match begins at least len(needle) bytes before the prefix end.
func (buf *Buffer) findBackward(needle string, start uint64) (uint64, bool, error) {
	m := uint64(len(needle))
	readEnd := start + m - 1
	n := buf.text.Len()
	if readEnd > n {
		readEnd = n
	}
	prefix, err := buf.text.Report(0, readEnd)
	if err != nil {
		return 0, false, err
	}
	if idx := strings.LastIndex(prefix, needle); idx >= 0 {
		return uint64(idx), true, nil
	}
	if readEnd == n {
		return 0, false, nil
	}
	if idx := strings.LastIndex(buf.text.String(), needle); idx >= 0 {
		return uint64(idx), true, nil
	}
	return 0, false, nil
}
