package mdrender

// Nesting describes how a token relates to the output tree structure.
type Nesting int8

const (
	// NestingClose ends the most recently opened matching scope.
	NestingClose Nesting = -1
	// NestingSelf produces a node immediately, with no scope of its own.
	NestingSelf Nesting = 0
	// NestingOpen begins a new scope.
	NestingOpen Nesting = 1
)

// TypeInline is the designated inline-container token type. A token of this
// type carries the parsed contents of one line of inline markup in its
// Children field; Renderer.Render descends into it with the shared context
// instead of dispatching it like a regular token.
const TypeInline = "inline"

// Attr is one raw attribute pair as produced by the tokenizer. Duplicate
// keys are permitted; the attribute projector is last-wins.
type Attr struct {
	Key   string
	Value string
}

// Token is one unit of the flat input sequence. Tokens are produced by an
// external tokenizer and are read-only to the engine: the default handlers
// that annotate a token before delegating operate on a copy.
type Token struct {
	// Type identifies the token's semantic kind, e.g. "paragraph_open",
	// "softbreak" or "text". Token handlers are keyed by this field.
	Type string

	// Tag names the nominal output tag, e.g. "p" or "em". It may be empty
	// for tokens with no natural tag; such tokens need an entry in the
	// element-type mapping to be renderable. Render rules are keyed by
	// this field.
	Tag string

	// Nesting tells whether the token opens a scope, closes one, or stands
	// alone.
	Nesting Nesting

	// Content is the string payload of leaf and self-closing tokens.
	Content string

	// Attrs is the ordered raw attribute list.
	Attrs []Attr

	// Markup captures the literal source syntax that produced the token,
	// e.g. "**" vs "__" for a strong emphasis. Optional.
	Markup string

	// Children holds the nested token sequence of an inline container
	// (Type == TypeInline). Empty for every other token type.
	Children []Token
}

// AttrGet returns the value of the last attribute with the given key, or
// "" if the key is not present.
func (t *Token) AttrGet(key string) string {
	for i := len(t.Attrs) - 1; i >= 0; i-- {
		if t.Attrs[i].Key == key {
			return t.Attrs[i].Value
		}
	}
	return ""
}

// AttrSet replaces the value of the last attribute with the given key, or
// appends a new attribute if the key is not present.
func (t *Token) AttrSet(key, value string) {
	for i := len(t.Attrs) - 1; i >= 0; i-- {
		if t.Attrs[i].Key == key {
			t.Attrs[i].Value = value
			return
		}
	}
	t.Attrs = append(t.Attrs, Attr{Key: key, Value: value})
}
