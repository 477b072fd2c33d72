// Package tokenizer turns markdown source into the flat token stream
// consumed by mdrender. It wraps the goldmark parser: block structure is
// emitted as Open/Close token pairs, inline content is parsed into
// inline-container tokens carrying their own child sequences.
//
// Raw HTML (blocks and spans) is passed through as plain text tokens; the
// adapter does not attempt to re-parse embedded HTML.
package tokenizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	mdrender "github.com/dpotapov/go-mdrender"
)

// Tokenize parses markdown source into a token sequence. The output is
// guaranteed balanced: every Open token has exactly one matching Close.
func Tokenize(source []byte) []mdrender.Token {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))
	t := &tokenizer{source: source}
	t.blocks(doc)
	return t.tokens
}

type tokenizer struct {
	source []byte
	tokens []mdrender.Token
}

func (t *tokenizer) emit(tok mdrender.Token) {
	t.tokens = append(t.tokens, tok)
}

func (t *tokenizer) blocks(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t.blockNode(c)
	}
}

func (t *tokenizer) blockNode(n ast.Node) {
	switch v := n.(type) {
	case *ast.Heading:
		tag := fmt.Sprintf("h%d", v.Level)
		markup := strings.Repeat("#", v.Level)
		t.emit(mdrender.Token{Type: "heading_open", Tag: tag, Nesting: mdrender.NestingOpen, Markup: markup})
		t.inlineContainer(v)
		t.emit(mdrender.Token{Type: "heading_close", Tag: tag, Nesting: mdrender.NestingClose, Markup: markup})

	case *ast.Paragraph:
		t.emit(mdrender.Token{Type: "paragraph_open", Tag: "p", Nesting: mdrender.NestingOpen})
		t.inlineContainer(v)
		t.emit(mdrender.Token{Type: "paragraph_close", Tag: "p", Nesting: mdrender.NestingClose})

	case *ast.TextBlock:
		// Tight list items carry their inline content without a paragraph.
		t.inlineContainer(v)

	case *ast.Blockquote:
		t.emit(mdrender.Token{Type: "blockquote_open", Tag: "blockquote", Nesting: mdrender.NestingOpen, Markup: ">"})
		t.blocks(v)
		t.emit(mdrender.Token{Type: "blockquote_close", Tag: "blockquote", Nesting: mdrender.NestingClose, Markup: ">"})

	case *ast.List:
		typ, tag := "bullet_list", "ul"
		var attrs []mdrender.Attr
		if v.IsOrdered() {
			typ, tag = "ordered_list", "ol"
			if v.Start != 1 {
				attrs = append(attrs, mdrender.Attr{Key: "start", Value: strconv.Itoa(v.Start)})
			}
		}
		markup := string(v.Marker)
		t.emit(mdrender.Token{Type: typ + "_open", Tag: tag, Nesting: mdrender.NestingOpen, Attrs: attrs, Markup: markup})
		t.blocks(v)
		t.emit(mdrender.Token{Type: typ + "_close", Tag: tag, Nesting: mdrender.NestingClose, Markup: markup})

	case *ast.ListItem:
		t.emit(mdrender.Token{Type: "list_item_open", Tag: "li", Nesting: mdrender.NestingOpen})
		t.blocks(v)
		t.emit(mdrender.Token{Type: "list_item_close", Tag: "li", Nesting: mdrender.NestingClose})

	case *ast.FencedCodeBlock:
		tok := mdrender.Token{
			Type:    "fence",
			Tag:     "code",
			Nesting: mdrender.NestingSelf,
			Content: t.lines(v.Lines()),
			Markup:  "```",
		}
		if lang := v.Language(t.source); len(lang) > 0 {
			tok.Attrs = []mdrender.Attr{{Key: "class", Value: "language-" + string(lang)}}
		}
		t.emit(tok)

	case *ast.CodeBlock:
		t.emit(mdrender.Token{
			Type:    "code_block",
			Tag:     "code",
			Nesting: mdrender.NestingSelf,
			Content: t.lines(v.Lines()),
		})

	case *ast.ThematicBreak:
		t.emit(mdrender.Token{Type: "hr", Tag: "hr", Nesting: mdrender.NestingSelf, Markup: "---"})

	case *ast.HTMLBlock:
		content := t.lines(v.Lines())
		if v.HasClosure() {
			content += string(v.ClosureLine.Value(t.source))
		}
		t.emit(mdrender.Token{Type: "text", Nesting: mdrender.NestingSelf, Content: content})

	default:
		if n.Type() == ast.TypeBlock && n.HasChildren() {
			t.blocks(n)
		}
	}
}

// inlineContainer parses the inline children of a block node into a single
// inline-container token, mirroring the token model's block/inline split.
func (t *tokenizer) inlineContainer(n ast.Node) {
	t.emit(mdrender.Token{Type: mdrender.TypeInline, Children: t.inline(n)})
}

func (t *tokenizer) inline(n ast.Node) []mdrender.Token {
	var out []mdrender.Token
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, t.inlineNode(c)...)
	}
	return out
}

func (t *tokenizer) inlineNode(n ast.Node) []mdrender.Token {
	switch v := n.(type) {
	case *ast.Text:
		var out []mdrender.Token
		if s := string(v.Segment.Value(t.source)); s != "" {
			out = append(out, mdrender.Token{Type: "text", Nesting: mdrender.NestingSelf, Content: s})
		}
		switch {
		case v.HardLineBreak():
			out = append(out, mdrender.Token{Type: "hardbreak", Tag: "br", Nesting: mdrender.NestingSelf})
		case v.SoftLineBreak():
			out = append(out, mdrender.Token{Type: "softbreak", Tag: "br", Nesting: mdrender.NestingSelf})
		}
		return out

	case *ast.String:
		if len(v.Value) == 0 {
			return nil
		}
		return []mdrender.Token{{Type: "text", Nesting: mdrender.NestingSelf, Content: string(v.Value)}}

	case *ast.Emphasis:
		name, markup := "em", "*"
		if v.Level >= 2 {
			name, markup = "strong", "**"
		}
		out := []mdrender.Token{{Type: name + "_open", Tag: name, Nesting: mdrender.NestingOpen, Markup: markup}}
		out = append(out, t.inline(v)...)
		return append(out, mdrender.Token{Type: name + "_close", Tag: name, Nesting: mdrender.NestingClose, Markup: markup})

	case *ast.CodeSpan:
		return []mdrender.Token{{
			Type:    "code_inline",
			Tag:     "code",
			Nesting: mdrender.NestingSelf,
			Content: t.flattenText(v),
			Markup:  "`",
		}}

	case *ast.Link:
		attrs := []mdrender.Attr{{Key: "href", Value: string(v.Destination)}}
		if len(v.Title) > 0 {
			attrs = append(attrs, mdrender.Attr{Key: "title", Value: string(v.Title)})
		}
		out := []mdrender.Token{{Type: "link_open", Tag: "a", Nesting: mdrender.NestingOpen, Attrs: attrs}}
		out = append(out, t.inline(v)...)
		return append(out, mdrender.Token{Type: "link_close", Tag: "a", Nesting: mdrender.NestingClose})

	case *ast.AutoLink:
		url := string(v.URL(t.source))
		href := url
		if v.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(href, "mailto:") {
			href = "mailto:" + href
		}
		return []mdrender.Token{
			{Type: "link_open", Tag: "a", Nesting: mdrender.NestingOpen, Attrs: []mdrender.Attr{{Key: "href", Value: href}}},
			{Type: "text", Nesting: mdrender.NestingSelf, Content: string(v.Label(t.source))},
			{Type: "link_close", Tag: "a", Nesting: mdrender.NestingClose},
		}

	case *ast.Image:
		attrs := []mdrender.Attr{{Key: "src", Value: string(v.Destination)}}
		if len(v.Title) > 0 {
			attrs = append(attrs, mdrender.Attr{Key: "title", Value: string(v.Title)})
		}
		// The alt text travels as Content so the image render rule can
		// derive the alt attribute from the built children.
		return []mdrender.Token{{
			Type:    "image",
			Tag:     "img",
			Nesting: mdrender.NestingSelf,
			Content: t.flattenText(v),
			Attrs:   attrs,
		}}

	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < v.Segments.Len(); i++ {
			seg := v.Segments.At(i)
			b.Write(seg.Value(t.source))
		}
		return []mdrender.Token{{Type: "text", Nesting: mdrender.NestingSelf, Content: b.String()}}

	default:
		if n.HasChildren() {
			return t.inline(n)
		}
		return nil
	}
}

// flattenText concatenates the text content of a node's descendants.
func (t *tokenizer) flattenText(n ast.Node) string {
	var b strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch v := n.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(t.source))
		case *ast.String:
			b.Write(v.Value)
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		walk(c)
	}
	return b.String()
}

func (t *tokenizer) lines(segs *text.Segments) string {
	var b strings.Builder
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(t.source))
	}
	return b.String()
}
