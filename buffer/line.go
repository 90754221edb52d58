package buffer

// LineText returns the content of the 0-based line without its trailing
// newline. The line past a trailing newline is empty.
func (buf *Buffer) LineText(line uint64) (string, error) {
	if buf.state != Ready {
		return "", ErrBufferClosed
	}
	_, content, err := buf.Translator().lineContent(line)
	return content, err
}

// LineLen returns the length of the 0-based line in bytes, excluding the
// trailing newline.
func (buf *Buffer) LineLen(line uint64) (uint64, error) {
	if buf.state != Ready {
		return 0, ErrBufferClosed
	}
	_, l, err := buf.Translator().lineSpan(line)
	return l, err
}
