package knaptext

import "io"

// Reader returns a reader for the bytes of text.
//
// The reader is bound to the text version it was created from; edits on
// descendants of that version do not disturb it.
func (text Text) Reader() io.Reader {
	return &textReader{text: text}
}

type textReader struct {
	text   Text
	cursor uint64
}

func (tr *textReader) Read(p []byte) (n int, err error) {
	l := uint64(len(p))
	if tr.cursor+l > tr.text.Len() {
		l = tr.text.Len() - tr.cursor
		if l == 0 {
			return 0, io.EOF
		}
	}
	s, err := tr.text.Report(tr.cursor, l)
	if err != nil {
		return 0, err
	}
	n = copy(p, s)
	tr.cursor += uint64(n)
	return n, nil
}
