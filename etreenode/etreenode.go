// Package etreenode implements the mdrender node factory on top of
// github.com/beevik/etree token trees, for hosts that post-process the
// rendered tree as XML.
package etreenode

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"

	mdrender "github.com/dpotapov/go-mdrender"
)

// Factory builds etree token trees. Fragments are elements with an empty
// tag; their children are spliced into the enclosing element on append and
// into the document on serialization, so no empty-tag element survives in
// the output.
type Factory struct{}

var _ mdrender.NodeFactory = (*Factory)(nil)
var _ mdrender.Serializer = (*Factory)(nil)

func New() *Factory {
	return &Factory{}
}

func (f *Factory) NewText(text string) mdrender.Node {
	return etree.NewText(text)
}

func (f *Factory) NewNode(elemType string, attrs mdrender.Attrs, children []mdrender.Node) mdrender.Node {
	el := &etree.Element{}
	if elemType != mdrender.Fragment {
		el = etree.NewElement(elemType)
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			key := k
			if key == mdrender.ClassName {
				key = "class"
			}
			el.CreateAttr(key, attrValue(attrs[k]))
		}
	}
	for _, c := range children {
		appendChild(el, c)
	}
	return el
}

// WrapOrdered returns the children unchanged: etree child lists preserve
// insertion order.
func (f *Factory) WrapOrdered(children []mdrender.Node) []mdrender.Node {
	return children
}

func (f *Factory) TextContent(n mdrender.Node) string {
	t, ok := n.(etree.Token)
	if !ok {
		if n == nil {
			return ""
		}
		return fmt.Sprint(n)
	}
	var b strings.Builder
	var walk func(etree.Token)
	walk = func(t etree.Token) {
		switch v := t.(type) {
		case *etree.CharData:
			b.WriteString(v.Data)
		case *etree.Element:
			for _, c := range v.Child {
				walk(c)
			}
		}
	}
	walk(t)
	return b.String()
}

// Serialize writes the finished nodes as XML text.
func (f *Factory) Serialize(nodes ...mdrender.Node) (string, error) {
	doc := etree.NewDocument()
	for _, n := range nodes {
		switch v := n.(type) {
		case nil:
		case *etree.Element:
			if v.Tag == "" {
				for _, c := range detachChildren(v) {
					doc.AddChild(c)
				}
				continue
			}
			doc.AddChild(v)
		case etree.Token:
			doc.AddChild(v)
		default:
			doc.AddChild(etree.NewText(fmt.Sprint(v)))
		}
	}
	return doc.WriteToString()
}

// appendChild attaches a produced child to el. Fragment containers are
// spliced in, and non-node values are stringified into character data.
func appendChild(el *etree.Element, c mdrender.Node) {
	switch v := c.(type) {
	case nil:
	case *etree.Element:
		if v.Tag == "" {
			for _, tok := range detachChildren(v) {
				el.AddChild(tok)
			}
			return
		}
		el.AddChild(v)
	case etree.Token:
		el.AddChild(v)
	default:
		el.AddChild(etree.NewText(fmt.Sprint(v)))
	}
}

// detachChildren snapshots a fragment's children before re-parenting them;
// AddChild mutates the source child list while iterating otherwise.
func detachChildren(el *etree.Element) []etree.Token {
	return append([]etree.Token(nil), el.Child...)
}

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
		parts := make([]string, 0, len(props))
		for _, p := range props {
			parts = append(parts, p+": "+vv[p])
		}
		return strings.Join(parts, "; ")
	default:
		s := fmt.Sprint(v)
		if s == "<nil>" {
			s = ""
		}
		return s
	}
}
