// Package markdown renders the Markdown fragments of class pages (links,
// hierarchies, member rows and blocks) and parses generated pages back for
// analysis.
package markdown

import (
	"bytes"
	"regexp"
	"sort"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Heading is an ATX or setext heading found in a parsed page.
type Heading struct {
	Level int
	Text  string
}

// ExtractLinks parses a Markdown body and extracts link-like constructs in
// document order, followed by reference definitions sorted by label.
func ExtractLinks(body []byte) ([]Link, error) {
	md := goldmark.New()
	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	links := make([]Link, 0)
	err := gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Label: string(node.Label(body)), Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Label: plainText(node, body), Destination: string(node.Destination)})
		case *gmast.Link:
			links = append(links, Link{Kind: LinkKindInline, Label: plainText(node, body), Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	// Reference definitions live in the parse context, not in the AST.
	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool {
		return string(refs[i].Label()) < string(refs[j].Label())
	})
	for _, ref := range refs {
		links = append(links, Link{Kind: LinkKindReferenceDefinition, Label: string(ref.Label()), Destination: string(ref.Destination())})
	}
	return links, nil
}

// ExtractHeadings parses a Markdown body and returns its headings in order.
func ExtractHeadings(body []byte) ([]Heading, error) {
	root := goldmark.New().Parser().Parse(text.NewReader(body))
	headings := make([]Heading, 0)
	err := gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if h, ok := n.(*gmast.Heading); ok && entering {
			headings = append(headings, Heading{Level: h.Level, Text: plainText(h, body)})
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return headings, nil
}

var anchorAttr = regexp.MustCompile(`(?i)\s(?:id|name)\s*=\s*"([^"]+)"`)

// ExtractAnchorIDs returns the id and name attributes of raw HTML in a
// Markdown body, in document order.
func ExtractAnchorIDs(body []byte) ([]string, error) {
	root := goldmark.New().Parser().Parse(text.NewReader(body))
	ids := make([]string, 0)
	collect := func(raw []byte) {
		for _, m := range anchorAttr.FindAllSubmatch(raw, -1) {
			ids = append(ids, string(m[1]))
		}
	}
	err := gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.RawHTML:
			var raw bytes.Buffer
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				raw.Write(seg.Value(body))
			}
			collect(raw.Bytes())
		case *gmast.HTMLBlock:
			var raw bytes.Buffer
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				raw.Write(seg.Value(body))
			}
			collect(raw.Bytes())
		}
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func plainText(n gmast.Node, source []byte) string {
	var buf bytes.Buffer
	collectText(n, source, &buf)
	return buf.String()
}

func collectText(n gmast.Node, source []byte, buf *bytes.Buffer) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gmast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(t.Value)
		default:
			collectText(c, source, buf)
		}
	}
}
