package grapheme

import (
	"iter"

	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Boundaries returns the cluster start offsets of s, in ascending order.
//
// The sequence is finite and restartable. A non-empty s always yields 0
// first; len(s), where the final cluster ends, is not part of the sequence.
func Boundaries(s string) iter.Seq[int] {
	return func(yield func(int) bool) {
		offset := 0
		state := -1
		for len(s) > 0 {
			cluster, rest, _, newState := uniseg.StepString(s, state)
			if !yield(offset) {
				return
			}
			offset += len(cluster)
			s = rest
			state = newState
		}
	}
}

// Clusters returns the (start offset, cluster) pairs of s, in order.
//
// Splitting follows extended grapheme clusters (UAX #29): combining
// sequences, regional-indicator flags and zero-width-joiner emoji stay in
// one cluster. Bytes that are not valid UTF-8 form one cluster per byte;
// segmentation never fails.
func Clusters(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		offset := 0
		state := -1
		for len(s) > 0 {
			cluster, rest, _, newState := uniseg.StepString(s, state)
			if !yield(offset, cluster) {
				return
			}
			offset += len(cluster)
			s = rest
			state = newState
		}
	}
}
