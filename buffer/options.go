package buffer

import "github.com/yamgent/knaptext/grapheme"

// Option configures a Buffer during Open.
type Option func(*Buffer)

// WithMeasurement sets the width measurement options used by the buffer's
// coordinate translators, e.g. an East Asian width context from
// grapheme.OptionsFromEnvironment.
func WithMeasurement(opts grapheme.Options) Option {
	return func(buf *Buffer) {
		buf.measure = opts
	}
}

// WithTabWidth sets the number of display cells a tab occupies in column
// calculations. Values below 1 select grapheme.DefaultTabWidth.
func WithTabWidth(width int) Option {
	return func(buf *Buffer) {
		buf.measure.TabWidth = width
	}
}

// WithEventCapacity sets the channel capacity handed to each change event
// subscriber. A subscriber that falls further behind misses events. Values
// below 1 keep the default capacity.
func WithEventCapacity(n int) Option {
	return func(buf *Buffer) {
		if n >= 1 {
			buf.eventCap = uint(n)
		}
	}
}
