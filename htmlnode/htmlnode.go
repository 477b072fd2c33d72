// Package htmlnode implements the mdrender node factory on top of
// golang.org/x/net/html node trees. It is the factory of choice when the
// rendered tree is ultimately serialized to HTML text.
package htmlnode

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	mdrender "github.com/dpotapov/go-mdrender"
)

// Factory builds *html.Node trees. Fragments become html.DocumentNode
// containers and are spliced into their parent when appended as children,
// so they never show up in a finished tree below the top level.
type Factory struct{}

var _ mdrender.NodeFactory = (*Factory)(nil)
var _ mdrender.Serializer = (*Factory)(nil)

func New() *Factory {
	return &Factory{}
}

func (f *Factory) NewText(text string) mdrender.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

func (f *Factory) NewNode(elemType string, attrs mdrender.Attrs, children []mdrender.Node) mdrender.Node {
	var n *html.Node
	if elemType == mdrender.Fragment {
		n = &html.Node{Type: html.DocumentNode}
	} else {
		n = &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Lookup([]byte(elemType)),
			Data:     elemType,
			Attr:     buildAttrs(attrs),
		}
	}
	for _, c := range children {
		appendChild(n, c)
	}
	return n
}

// WrapOrdered returns the children unchanged: html.Node child lists are
// ordered by construction, so position survives without extra keying.
func (f *Factory) WrapOrdered(children []mdrender.Node) []mdrender.Node {
	return children
}

func (f *Factory) TextContent(n mdrender.Node) string {
	root, ok := n.(*html.Node)
	if !ok {
		if n == nil {
			return ""
		}
		return fmt.Sprint(n)
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(h *html.Node) {
		if h.Type == html.TextNode {
			b.WriteString(h.Data)
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return b.String()
}

// Serialize renders the finished nodes as HTML text.
func (f *Factory) Serialize(nodes ...mdrender.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		h, ok := n.(*html.Node)
		if !ok {
			if n != nil {
				b.WriteString(fmt.Sprint(n))
			}
			continue
		}
		if err := html.Render(&b, h); err != nil {
			return "", fmt.Errorf("htmlnode: render: %w", err)
		}
	}
	return b.String(), nil
}

// appendChild attaches a produced child to n. Fragment containers are
// spliced in, and non-node values are stringified into text nodes.
func appendChild(n *html.Node, c mdrender.Node) {
	switch v := c.(type) {
	case nil:
	case *html.Node:
		if v.Type == html.DocumentNode {
			for child := v.FirstChild; child != nil; {
				next := child.NextSibling
				v.RemoveChild(child)
				n.AppendChild(child)
				child = next
			}
			return
		}
		n.AppendChild(v)
	default:
		n.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(v)})
	}
}

// buildAttrs converts the projected attribute mapping into html attributes
// in deterministic (sorted) order. The host-facing class-list key is
// translated back to "class".
func buildAttrs(attrs mdrender.Attrs) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(attrs))
	for _, k := range keys {
		key := k
		if key == mdrender.ClassName {
			key = "class"
		}
		out = append(out, html.Attribute{Key: key, Val: attrValue(attrs[k])})
	}
	return out
}

// attrValue stringifies one projected attribute value. Structured style
// maps are re-serialized as declaration lists with hyphenated property
// names; everything else goes through fmt.Sprint.
func attrValue(v any) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return vv
	case map[string]string:
		props := make([]string, 0, len(vv))
		for p := range vv {
			props = append(props, p)
		}
		sort.Strings(props)
		var b strings.Builder
		for i, p := range props {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(toKebabCase(p))
			b.WriteString(": ")
			b.WriteString(vv[p])
		}
		return b.String()
	default:
		s := fmt.Sprint(v)
		if s == "<nil>" {
			s = ""
		}
		return s
	}
}

// toKebabCase converts a camel-cased CSS property name back to its
// hyphenated form: "backgroundColor" becomes "background-color".
func toKebabCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
