package knaptext

import (
	"errors"
	"fmt"

	"github.com/yamgent/knaptext/chunk"
)

// textNode is a node of the persistent rope tree.
//
// A leaf owns one chunk of text; an inner node owns exactly two children.
// Every node caches the aggregate summary of its subtree, so positional
// seeks route by comparing against the left child's summary. Nodes are
// immutable: all mutation happens by path-copying towards a new root.
type textNode struct {
	left, right *textNode     // both nil for leaves
	summary     chunk.Summary // aggregates over the whole subtree
	height      int           // leaves have height 0
	payload     chunk.Chunk   // leaf text; zero for inner nodes
}

// emptyLeaf is the designated node for empty texts. Operations treat the
// empty text as this leaf, never as an absent node, so they are total over
// every valid text. Joins drop empty sides, so no tree embeds it internally.
var emptyLeaf = &textNode{}

func leafNode(c chunk.Chunk) *textNode {
	return &textNode{summary: c.Summary(), payload: c}
}

func innerNode(l, r *textNode) *textNode {
	assert(l != nil && r != nil, "inner node requires two children")
	h := l.height
	if r.height > h {
		h = r.height
	}
	return &textNode{
		left:    l,
		right:   r,
		summary: l.summary.Add(r.summary),
		height:  h + 1,
	}
}

func (n *textNode) isLeaf() bool {
	return n.left == nil
}

func (n *textNode) isEmpty() bool {
	return n == nil || n.summary.Bytes == 0
}

// --- Join ------------------------------------------------------------------

// join concatenates two subtrees into a height-balanced tree.
//
// When both sides are of similar height the result is a fresh parent node
// reusing both subtrees unchanged; otherwise the smaller side is attached
// along the taller side's spine with at most O(height difference) new nodes.
// Undersized leaves at the seam are merged into their neighbor chunk, which
// keeps leaf occupancy above chunk.MinSize wherever a neighbor exists.
func join(l, r *textNode) *textNode {
	if l.isEmpty() {
		if r == nil {
			return nil
		}
		return r
	}
	if r.isEmpty() {
		return l
	}
	if l.isLeaf() && r.isLeaf() {
		if l.summary.Bytes < chunk.MinSize || r.summary.Bytes < chunk.MinSize {
			if merged, ok := l.payload.Append(r.payload); ok {
				return leafNode(merged)
			}
		}
		return innerNode(l, r)
	}
	if l.isLeaf() && l.summary.Bytes < chunk.MinSize {
		if n, ok := prependChunk(r, l.payload); ok {
			return n
		}
	}
	if r.isLeaf() && r.summary.Bytes < chunk.MinSize {
		if n, ok := appendChunk(l, r.payload); ok {
			return n
		}
	}
	switch {
	case l.height > r.height+1:
		return joinRight(l, r)
	case r.height > l.height+1:
		return joinLeft(l, r)
	default:
		return innerNode(l, r)
	}
}

// joinRight attaches the lower tree r along l's right spine.
//
// Descends until the spine height is within one of r, then re-balances the
// copied path with rotations on the way out.
func joinRight(l, r *textNode) *textNode {
	ll, lr := l.left, l.right
	if lr.height <= r.height+1 {
		t := innerNode(lr, r)
		if t.height <= ll.height+1 {
			return innerNode(ll, t)
		}
		return rotateLeft(innerNode(ll, rotateRight(t)))
	}
	t := joinRight(lr, r)
	if t.height <= ll.height+1 {
		return innerNode(ll, t)
	}
	return rotateLeft(innerNode(ll, t))
}

// joinLeft attaches the lower tree l along r's left spine.
func joinLeft(l, r *textNode) *textNode {
	rl, rr := r.left, r.right
	if rl.height <= l.height+1 {
		t := innerNode(l, rl)
		if t.height <= rr.height+1 {
			return innerNode(t, rr)
		}
		return rotateRight(innerNode(rotateLeft(t), rr))
	}
	t := joinLeft(l, rl)
	if t.height <= rr.height+1 {
		return innerNode(t, rr)
	}
	return rotateRight(innerNode(t, rr))
}

// rotateLeft lifts the right child. Summaries and heights are recomputed by
// the node constructor; the rotation path-copies two nodes.
func rotateLeft(n *textNode) *textNode {
	r := n.right
	return innerNode(innerNode(n.left, r.left), r.right)
}

// rotateRight lifts the left child.
func rotateRight(n *textNode) *textNode {
	l := n.left
	return innerNode(l.left, innerNode(l.right, n.right))
}

// prependChunk merges c into the leftmost leaf of n, if it fits.
//
// The tree shape does not change, only summaries along the copied left
// spine, so balance is preserved.
func prependChunk(n *textNode, c chunk.Chunk) (*textNode, bool) {
	if n.isLeaf() {
		merged, ok := c.Append(n.payload)
		if !ok {
			return n, false
		}
		return leafNode(merged), true
	}
	l, ok := prependChunk(n.left, c)
	if !ok {
		return n, false
	}
	return innerNode(l, n.right), true
}

// appendChunk merges c into the rightmost leaf of n, if it fits.
func appendChunk(n *textNode, c chunk.Chunk) (*textNode, bool) {
	if n.isLeaf() {
		merged, ok := n.payload.Append(c)
		if !ok {
			return n, false
		}
		return leafNode(merged), true
	}
	r, ok := appendChunk(n.right, c)
	if !ok {
		return n, false
	}
	return innerNode(n.left, r), true
}

// --- Split -----------------------------------------------------------------

// splitNode splits a subtree at absolute byte offset i into two trees.
//
// Either side may come back nil when the cut sits at the subtree edge.
// Splitting inside a multi-byte character encoding fails with
// ErrInvalidBoundary.
func splitNode(n *textNode, i uint64) (*textNode, *textNode, error) {
	if n.isLeaf() {
		switch i {
		case 0:
			return nil, n, nil
		case n.summary.Bytes:
			return n, nil, nil
		}
		lc, rc, err := n.payload.SplitAt(int(i))
		if err != nil {
			if errors.Is(err, chunk.ErrNotCharBoundary) {
				return nil, nil, fmt.Errorf("split offset %d is not on an encoded character boundary: %w", i, ErrInvalidBoundary)
			}
			return nil, nil, err
		}
		return leafNode(lc), leafNode(rc), nil
	}
	leftBytes := n.left.summary.Bytes
	switch {
	case i < leftBytes:
		l, r, err := splitNode(n.left, i)
		if err != nil {
			return nil, nil, err
		}
		return l, join(r, n.right), nil
	case i == leftBytes:
		return n.left, n.right, nil
	default:
		l, r, err := splitNode(n.right, i-leftBytes)
		if err != nil {
			return nil, nil, err
		}
		return join(n.left, l), r, nil
	}
}

// --- Construction and traversal --------------------------------------------

// buildBalanced builds a minimal-height tree over ordered chunks.
func buildBalanced(parts []chunk.Chunk) *textNode {
	switch len(parts) {
	case 0:
		return nil
	case 1:
		return leafNode(parts[0])
	}
	mid := len(parts) / 2
	return innerNode(buildBalanced(parts[:mid]), buildBalanced(parts[mid:]))
}

func eachNode(n *textNode, pos uint64, depth int, f func(*textNode, uint64, int) error) error {
	if err := f(n, pos, depth); err != nil {
		return err
	}
	if n.isLeaf() {
		return nil
	}
	if err := eachNode(n.left, pos, depth+1, f); err != nil {
		return err
	}
	return eachNode(n.right, pos+n.left.summary.Bytes, depth+1, f)
}

// checkNode verifies structural invariants of a subtree: summary sums,
// height bookkeeping, balance, and leaf occupancy. Used by tests.
func checkNode(n *textNode) error {
	if n == nil {
		return nil
	}
	if n.isLeaf() {
		if n.right != nil {
			return fmt.Errorf("leaf with right child")
		}
		if n.height != 0 {
			return fmt.Errorf("leaf with height %d", n.height)
		}
		if n.summary != n.payload.Summary() {
			return fmt.Errorf("leaf summary mismatch: %+v", n.summary)
		}
		if n != emptyLeaf && n.payload.IsEmpty() {
			return fmt.Errorf("empty leaf inside tree")
		}
		if n.payload.Len() > chunk.MaxSize {
			return fmt.Errorf("oversized leaf: %d bytes", n.payload.Len())
		}
		return nil
	}
	if n.left == nil || n.right == nil {
		return fmt.Errorf("inner node with missing child")
	}
	if err := checkNode(n.left); err != nil {
		return err
	}
	if err := checkNode(n.right); err != nil {
		return err
	}
	if n.summary != n.left.summary.Add(n.right.summary) {
		return fmt.Errorf("inner summary mismatch: %+v", n.summary)
	}
	h := n.left.height
	if n.right.height > h {
		h = n.right.height
	}
	if n.height != h+1 {
		return fmt.Errorf("height bookkeeping mismatch: %d", n.height)
	}
	diff := n.left.height - n.right.height
	if diff < -1 || diff > 1 {
		return fmt.Errorf("unbalanced node: left %d right %d", n.left.height, n.right.height)
	}
	if n.left.isEmpty() || n.right.isEmpty() {
		return fmt.Errorf("empty subtree inside tree")
	}
	return nil
}
