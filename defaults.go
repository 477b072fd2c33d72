package mdrender

import (
	"slices"
	"strings"
)

// Attribute keys injected by the default rule set. The data-* form keeps
// the annotations valid HTML attributes.
const (
	// MarkupAttr preserves the literal source syntax of an emphasis token
	// ("*" vs "_", "**" vs "__") on the opened element.
	MarkupAttr = "data-markup"

	// SoftbreakAttr marks a line break that was soft in the source.
	SoftbreakAttr = "data-softbreak"
)

func defaultTypes() map[string]string {
	return map[string]string{
		// Plain text runs pass through without a wrapping tag.
		"text": Fragment,
	}
}

func defaultHandlers() map[string]TokenHandler {
	return map[string]TokenHandler{
		"softbreak":   renderSoftbreak,
		"em_open":     renderEmphasisOpen,
		"strong_open": renderEmphasisOpen,
	}
}

func defaultRules() map[string]RenderRule {
	return map[string]RenderRule{
		"img": renderImage,
	}
}

// renderSoftbreak annotates a soft line break with SoftbreakAttr before
// handing the token to the default dispatcher. The annotation happens on a
// copy; the caller's token sequence is not modified.
func renderSoftbreak(r *Renderer, tokens []Token, i int, rc *RenderContext) (Node, error) {
	tok := tokens[i]
	tok.Attrs = append(slices.Clip(tok.Attrs), Attr{Key: SoftbreakAttr, Value: "true"})
	return r.RenderToken([]Token{tok}, 0, rc)
}

// renderEmphasisOpen preserves which literal markup produced an emphasis or
// strong token as a MarkupAttr attribute on the opened element, enabling
// round-tripping of the source syntax.
func renderEmphasisOpen(r *Renderer, tokens []Token, i int, rc *RenderContext) (Node, error) {
	tok := tokens[i]
	if tok.Markup != "" {
		tok.Attrs = append(slices.Clip(tok.Attrs), Attr{Key: MarkupAttr, Value: tok.Markup})
	}
	return r.RenderToken([]Token{tok}, 0, rc)
}

// renderImage derives the alt text of an image from its already-built
// children when the projected attributes lack one. Children are otherwise
// dropped: the image element itself is childless.
func renderImage(f NodeFactory, elemType string, attrs Attrs, children []Node) (Node, error) {
	if attrs == nil {
		attrs = make(Attrs, 1)
	}
	if v, ok := attrs["alt"]; !ok || v == "" {
		var b strings.Builder
		for _, c := range children {
			b.WriteString(f.TextContent(c))
		}
		attrs["alt"] = b.String()
	}
	return f.NewNode(elemType, attrs, nil), nil
}
