package grapheme

import (
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DefaultTabWidth is the tab cell width used when Options.TabWidth is zero.
const DefaultTabWidth = 4

// Options configure width measurement.
//
// The zero value is valid: tabs count DefaultTabWidth cells and ambiguous
// East Asian characters measure narrow.
type Options struct {
	// TabWidth is the cell width of a tab cluster; 0 selects DefaultTabWidth.
	TabWidth int

	// Context resolves ambiguous East Asian widths (UAX #11). With a nil
	// context, measurement uses a Latin-centric fast path.
	Context *uax11.Context
}

// OptionsFromEnvironment creates measurement options for the current process
// environment.
//
// With stdout connected to a terminal, the East Asian width context is
// derived from locale heuristics; otherwise a Latin context is used.
func OptionsFromEnvironment() Options {
	opts := Options{TabWidth: DefaultTabWidth}
	if term.IsTerminal(0) {
		opts.Context = uax11.ContextFromEnvironment()
		tracer().Debugf("grapheme measurement uses environment context")
	} else {
		opts.Context = uax11.LatinContext
	}
	return opts
}

func (opts Options) tabWidth() int {
	if opts.TabWidth <= 0 {
		return DefaultTabWidth
	}
	return opts.TabWidth
}
