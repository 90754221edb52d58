package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/yamgent/knaptext"
	"golang.org/x/net/html"
)

func TestTextFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knaptext")
	defer teardown()
	text, err := TextFromHTML(strings.NewReader("<p>Hello <b>World</b>!</p>"))
	if err != nil {
		t.Fatalf("TextFromHTML failed: %v", err)
	}
	if text.String() != "Hello World!" {
		t.Errorf("extracted text is %q", text.String())
	}
}

func TestTextFromHTMLDecodesEntities(t *testing.T) {
	text, err := TextFromHTML(strings.NewReader("<p>Gr&uuml;&szlig; &amp; servus</p>"))
	if err != nil {
		t.Fatalf("TextFromHTML failed: %v", err)
	}
	if text.String() != "Grüß & servus" {
		t.Errorf("extracted text is %q", text.String())
	}
}

func TestTextFromHTMLSkipsScriptAndStyle(t *testing.T) {
	input := "<p>a</p><script>var x = 1;</script><style>p { color: red }</style><p>b</p>"
	text, err := TextFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("TextFromHTML failed: %v", err)
	}
	if text.String() != "ab" {
		t.Errorf("extracted text is %q", text.String())
	}
}

func TestInnerText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader("<html><body><p>one</p><p>two</p></body></html>"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	text, err := InnerText(doc)
	if err != nil {
		t.Fatalf("InnerText failed: %v", err)
	}
	if text.String() != "onetwo" {
		t.Errorf("extracted text is %q", text.String())
	}
}

func TestInnerTextNilNode(t *testing.T) {
	if _, err := InnerText(nil); !errors.Is(err, knaptext.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for a nil node, got %v", err)
	}
}
