package grapheme

import (
	"iter"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	uaxgrapheme "github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/rivo/uniseg"
)

// Span is one measured cluster of a string.
type Span struct {
	Start   int    // byte offset of the cluster
	Cluster string // cluster text
	Width   int    // display cells
}

// Width returns the number of terminal cells cluster occupies.
//
// A tab counts Options.TabWidth cells. A cluster containing invalid bytes
// counts one cell per byte; measurement never fails. With a configured
// Context, the cluster is measured under UAX #11 East Asian width rules for
// that context. Otherwise wide characters and emoji presentation count two
// cells, attached marks count zero, and the rest one.
func (opts Options) Width(cluster string) int {
	if cluster == "" {
		return 0
	}
	if cluster == "\t" {
		return opts.tabWidth()
	}
	if !utf8.ValidString(cluster) {
		return len(cluster)
	}
	if opts.Context != nil {
		return uax11.StringWidth(uaxgrapheme.StringFromString(cluster), opts.Context)
	}
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	// runewidth underestimates regional-indicator flags; take the wider
	// measure.
	if fallback := uniseg.StringWidth(cluster); fallback > w {
		w = fallback
	}
	return w
}

// StringWidth returns the total display width of s: the sum of its cluster
// widths.
func (opts Options) StringWidth(s string) int {
	w := 0
	for _, cluster := range Clusters(s) {
		w += opts.Width(cluster)
	}
	return w
}

// Spans returns the measured clusters of s, in order.
func (opts Options) Spans(s string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for offset, cluster := range Clusters(s) {
			if !yield(Span{Start: offset, Cluster: cluster, Width: opts.Width(cluster)}) {
				return
			}
		}
	}
}

// Width measures a single cluster with default options.
func Width(cluster string) int {
	return Options{}.Width(cluster)
}

// StringWidth measures s with default options.
func StringWidth(s string) int {
	return Options{}.StringWidth(s)
}
