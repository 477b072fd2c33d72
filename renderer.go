package mdrender

import (
	"fmt"
	"io"
	"log/slog"
)

// TokenHandler is a type-keyed rule with full control over one token's
// dispatch. It receives the whole token sequence, the index of the token to
// process and the live rendering context, and returns the produced node or
// nil when nothing is emitted (e.g. the token only mutated the stack).
// Handlers that only need to tweak a token before standard processing
// should adjust a copy and delegate to r.RenderToken.
type TokenHandler func(r *Renderer, tokens []Token, i int, rc *RenderContext) (Node, error)

// RenderRule is a tag-keyed rule deciding how a closed or self-closing tag
// becomes a node. It fires after the children are fully assembled and never
// sees the stack: only the resolved element type, the projected attributes
// and the ordered finished children.
type RenderRule func(f NodeFactory, elemType string, attrs Attrs, children []Node) (Node, error)

// AttrRemapFunc rewrites one raw attribute during projection. It returns
// the projected key and value; an error keeps the raw pair untouched.
type AttrRemapFunc func(value string) (key string, val any, err error)

// Options configures a Renderer. The zero value is usable; every map is
// merged over the corresponding library default, and a nil callback value
// removes the default registered under that key.
type Options struct {
	// Types maps token types to element types. Consulted before the
	// token's Tag during element-type resolution.
	Types map[string]string

	// Handlers are token-handler rules keyed by token type.
	Handlers map[string]TokenHandler

	// Rules are render rules keyed by tag.
	Rules map[string]RenderRule

	// Remaps extends or overrides the attribute remap table. Ignored when
	// DisableAttrRemap is set.
	Remaps map[string]AttrRemapFunc

	// DisableAttrRemap turns off the attribute remap tier entirely; the
	// projector then copies every raw pair verbatim.
	DisableAttrRemap bool

	// Logger receives debug-level diagnostics. Defaults to a discard
	// logger.
	Logger *slog.Logger
}

// Renderer drives the single pass over a token stream. It holds only
// read-only configuration; all mutable render state lives in the
// per-call RenderContext, so a Renderer is safe for concurrent use.
type Renderer struct {
	factory  NodeFactory
	types    map[string]string
	handlers map[string]TokenHandler
	rules    map[string]RenderRule
	remaps   map[string]AttrRemapFunc
	logger   *slog.Logger
}

// New creates a Renderer over the given node factory. opts may be nil.
func New(f NodeFactory, opts *Options) *Renderer {
	if f == nil {
		panic("mdrender: New called with a nil NodeFactory")
	}
	r := &Renderer{
		factory:  f,
		types:    defaultTypes(),
		handlers: defaultHandlers(),
		rules:    defaultRules(),
		remaps:   DefaultRemaps(),
	}
	if opts != nil {
		for k, v := range opts.Types {
			r.types[k] = v
		}
		for k, v := range opts.Handlers {
			if v == nil {
				delete(r.handlers, k)
			} else {
				r.handlers[k] = v
			}
		}
		for k, v := range opts.Rules {
			if v == nil {
				delete(r.rules, k)
			} else {
				r.rules[k] = v
			}
		}
		for k, v := range opts.Remaps {
			if v == nil {
				delete(r.remaps, k)
			} else {
				r.remaps[k] = v
			}
		}
		if opts.DisableAttrRemap {
			r.remaps = nil
		}
		r.logger = opts.Logger
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Factory returns the node factory the Renderer was constructed with.
func (r *Renderer) Factory() NodeFactory {
	return r.factory
}

// Render processes a complete token sequence into the final ordered list of
// top-level nodes. A fresh RenderContext is created per call and discarded
// on return; a balanced input leaves it empty. The first failure aborts the
// call with no partial result.
func (r *Renderer) Render(tokens []Token) ([]Node, error) {
	rc := &RenderContext{}
	var out []Node
	for i := range tokens {
		if tokens[i].Type == TypeInline {
			// Inline content extends the currently open block frame, so
			// the recursion shares the context instead of starting a new
			// stack.
			ns, err := r.RenderInline(tokens[i].Children, rc)
			if err != nil {
				return nil, err
			}
			out = append(out, ns...)
			continue
		}
		n, err := r.renderOne(tokens, i, rc)
		if err != nil {
			return nil, err
		}
		if n != nil {
			out = append(out, n)
		}
	}
	return r.factory.WrapOrdered(out), nil
}

// RenderInline renders one inline token sequence through the caller's
// context and returns the wrapped nodes that escaped the stack. Most inline
// dispatches are absorbed by an open block frame and contribute nothing to
// the returned slice.
func (r *Renderer) RenderInline(tokens []Token, rc *RenderContext) ([]Node, error) {
	var out []Node
	for i := range tokens {
		n, err := r.renderOne(tokens, i, rc)
		if err != nil {
			return nil, err
		}
		if n != nil {
			out = append(out, n)
		}
	}
	return r.factory.WrapOrdered(out), nil
}

// RenderToString renders the token sequence and serializes the result. The
// node factory must implement Serializer.
func (r *Renderer) RenderToString(tokens []Token) (string, error) {
	s, ok := r.factory.(Serializer)
	if !ok {
		return "", fmt.Errorf("mdrender: factory %T does not implement Serializer", r.factory)
	}
	nodes, err := r.Render(tokens)
	if err != nil {
		return "", err
	}
	return s.Serialize(nodes...)
}

// renderOne dispatches a single token: a registered token handler for its
// type takes full control, otherwise the default dispatcher runs.
func (r *Renderer) renderOne(tokens []Token, i int, rc *RenderContext) (Node, error) {
	if h, ok := r.handlers[tokens[i].Type]; ok {
		return h(r, tokens, i, rc)
	}
	return r.RenderToken(tokens, i, rc)
}

// RenderToken is the default per-token dispatcher: it resolves the element
// type, mutates the stack for Open/Close tokens and finalizes nodes for
// Close/Self tokens. Token handlers delegate here after adjusting a token.
func (r *Renderer) RenderToken(tokens []Token, i int, rc *RenderContext) (Node, error) {
	tok := &tokens[i]

	elemType, err := r.resolveType(tok)
	if err != nil {
		return nil, err
	}

	switch tok.Nesting {
	case NestingOpen:
		rc.Push(elemType, r.projectAttrs(tok))
		return nil, nil

	case NestingClose:
		attrs, children, err := rc.Pop(elemType)
		if err != nil {
			return nil, err
		}
		n, err := r.finalize(tok.Tag, elemType, attrs, children)
		if err != nil {
			return nil, err
		}
		return rc.Emit(n), nil

	default: // NestingSelf
		attrs := r.projectAttrs(tok)
		var children []Node
		if tok.Content != "" {
			children = []Node{r.factory.NewText(tok.Content)}
		}
		n, err := r.finalize(tok.Tag, elemType, attrs, children)
		if err != nil {
			return nil, err
		}
		return rc.Emit(n), nil
	}
}

// finalize turns a closed or self-closing tag into an output node: the
// children are compacted and wrapped, then a render rule for the tag (if
// registered) or the default node constructor produces the final node.
func (r *Renderer) finalize(tag, elemType string, attrs Attrs, children []Node) (Node, error) {
	children = r.factory.WrapOrdered(compact(children))
	if rule, ok := r.rules[tag]; ok {
		return rule(r.factory, elemType, attrs, children)
	}
	return r.factory.NewNode(elemType, attrs, children), nil
}

// compact drops the no-node markers left behind by dispatches that only
// mutated the stack.
func compact(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
