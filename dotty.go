package knaptext

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type nodeids struct {
	idTable map[*textNode]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*textNode]int),
		max:     1,
	}
}

func (ids nodeids) find(node *textNode) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *textNode) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Text2Dot outputs the internal structure of a Text in Graphviz DOT format
// (for debugging purposes).
func Text2Dot(text Text, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	err := text.each(func(node *textNode, pos uint64, depth int) error {
		ID := ids.alloc(node)
		styles := nodeDotStyles(node.isLeaf())
		if node.isLeaf() {
			label := fmt.Sprintf("%d @%d\\n“%s”", node.summary.Bytes, pos, strstart(node))
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
		} else {
			_ = ids.alloc(node.left)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(node.left))
			_ = ids.alloc(node.right)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(node.right))
			label := fmt.Sprintf("%d|%d|%d", node.summary.Bytes, node.summary.Chars, node.summary.Lines)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
		}
		return nil
	})
	if err != nil {
		T().Errorf("text DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

// each visits every node with its starting byte position and depth.
func (text Text) each(f func(node *textNode, pos uint64, depth int) error) error {
	return eachNode(text.node(), 0, 0, f)
}

// DumpTree prints an indented listing of the tree to w, one node per line,
// colorizing inner nodes and leaves differently (for debugging purposes).
func DumpTree(w io.Writer, text Text) {
	innerStyle := color.New(color.FgBlue)
	leafStyle := color.New(color.FgGreen)
	err := text.each(func(node *textNode, pos uint64, depth int) error {
		indent := strings.Repeat("  ", depth)
		if node.isLeaf() {
			leafStyle.Fprintf(w, "%s▪ leaf @%d %d bytes “%s”\n", indent, pos, node.summary.Bytes, strstart(node))
			return nil
		}
		innerStyle.Fprintf(w, "%s◦ node @%d bytes=%d chars=%d breaks=%d height=%d\n",
			indent, pos, node.summary.Bytes, node.summary.Chars, node.summary.Lines, node.height)
		return nil
	})
	if err != nil {
		T().Errorf("text dump: %s", err.Error())
	}
}

// strstart returns a short printable prefix of a leaf's text.
func strstart(node *textNode) string {
	const max = 10
	s := node.payload.String()
	if len(s) > max {
		i := max
		for i > 0 && !node.payload.IsCharBoundary(i) {
			i--
		}
		s = s[:i] + "…"
	}
	s = strings.ReplaceAll(s, "\n", "⏎")
	return strings.ReplaceAll(s, "\"", "'")
}
