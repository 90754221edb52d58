package html

import (
	"io"

	"github.com/yamgent/knaptext"
	"golang.org/x/net/html"
)

// InnerText creates a text for the textual content of an HTML element and
// all its descendants. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that only script and style elements are suppressed;
// CSS styling hiding other descendants is not interpreted.
//
// The fragment organization of the resulting text will reflect the
// hierarchy of the element node's descendants.
func InnerText(n *html.Node) (knaptext.Text, error) {
	if n == nil {
		return knaptext.Text{}, knaptext.ErrIllegalArguments
	}
	b := knaptext.NewBuilder()
	if err := collectText(n, b); err != nil {
		return knaptext.Text{}, err
	}
	return b.Text(), nil
}

func collectText(n *html.Node, b *knaptext.Builder) error {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return nil
	}
	if n.Type == html.TextNode {
		if err := b.AppendString(n.Data); err != nil {
			return err
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectText(c, b); err != nil {
			return err
		}
	}
	return nil
}

// TextFromHTML creates a knaptext.Text from the textual content of an HTML
// fragment. It does no interpretation of layout and styling, but extracts
// the pure text.
func TextFromHTML(input io.Reader) (knaptext.Text, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return knaptext.Text{}, err
	}
	b := knaptext.NewBuilder()
	for _, n := range nodes {
		if err := collectText(n, b); err != nil {
			return knaptext.Text{}, err
		}
	}
	return b.Text(), nil
}
