package tokenizer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	mdrender "github.com/dpotapov/go-mdrender"
	"github.com/dpotapov/go-mdrender/htmlnode"
	"github.com/dpotapov/go-mdrender/tokenizer"
)

func TestTokenizeParagraph(t *testing.T) {
	got := tokenizer.Tokenize([]byte("hello *world*"))

	want := []mdrender.Token{
		{Type: "paragraph_open", Tag: "p", Nesting: mdrender.NestingOpen},
		{Type: mdrender.TypeInline, Children: []mdrender.Token{
			{Type: "text", Nesting: mdrender.NestingSelf, Content: "hello "},
			{Type: "em_open", Tag: "em", Nesting: mdrender.NestingOpen, Markup: "*"},
			{Type: "text", Nesting: mdrender.NestingSelf, Content: "world"},
			{Type: "em_close", Tag: "em", Nesting: mdrender.NestingClose, Markup: "*"},
		}},
		{Type: "paragraph_close", Tag: "p", Nesting: mdrender.NestingClose},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeSoftbreak(t *testing.T) {
	got := tokenizer.Tokenize([]byte("a\nb"))

	want := []mdrender.Token{
		{Type: "paragraph_open", Tag: "p", Nesting: mdrender.NestingOpen},
		{Type: mdrender.TypeInline, Children: []mdrender.Token{
			{Type: "text", Nesting: mdrender.NestingSelf, Content: "a"},
			{Type: "softbreak", Tag: "br", Nesting: mdrender.NestingSelf},
			{Type: "text", Nesting: mdrender.NestingSelf, Content: "b"},
		}},
		{Type: "paragraph_close", Tag: "p", Nesting: mdrender.NestingClose},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeBalance(t *testing.T) {
	// every Open token must have exactly one matching Close
	src := "# h\n\n> q\n\n- a\n- b\n\n1. c\n\n**bold** and [l](u)\n"

	var depth int
	var walk func([]mdrender.Token)
	walk = func(tokens []mdrender.Token) {
		for _, tok := range tokens {
			depth += int(tok.Nesting)
			if depth < 0 {
				t.Fatalf("close without a matching open at token %+v", tok)
			}
			walk(tok.Children)
		}
	}
	walk(tokenizer.Tokenize([]byte(src)))

	if depth != 0 {
		t.Errorf("unbalanced token stream: %d scopes left open", depth)
	}
}

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "paragraph",
			src:  "hello",
			want: "<p>hello</p>",
		},
		{
			name: "heading",
			src:  "# Title",
			want: "<h1>Title</h1>",
		},
		{
			name: "emphasis keeps markup annotation",
			src:  "*x*",
			want: `<p><em data-markup="*">x</em></p>`,
		},
		{
			name: "strong keeps markup annotation",
			src:  "**x**",
			want: `<p><strong data-markup="**">x</strong></p>`,
		},
		{
			name: "bullet list",
			src:  "- a\n- b",
			want: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name: "ordered list with start",
			src:  "3. x",
			want: `<ol start="3"><li>x</li></ol>`,
		},
		{
			name: "blockquote",
			src:  "> quote",
			want: "<blockquote><p>quote</p></blockquote>",
		},
		{
			name: "link",
			src:  "[t](/u)",
			want: `<p><a href="/u">t</a></p>`,
		},
		{
			name: "image alt derived from caption",
			src:  "![cap](p.png)",
			want: `<p><img alt="cap" src="p.png"/></p>`,
		},
		{
			name: "soft line break",
			src:  "a\nb",
			want: `<p>a<br data-softbreak="true"/>b</p>`,
		},
		{
			name: "code span",
			src:  "`x`",
			want: "<p><code>x</code></p>",
		},
		{
			name: "thematic break",
			src:  "---",
			want: "<hr/>",
		},
	}

	r := mdrender.New(htmlnode.New(), nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.RenderToString(tokenizer.Tokenize([]byte(tt.src)))
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tt.want {
				t.Errorf("render(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestRenderFenceWithCustomRule(t *testing.T) {
	opts := &mdrender.Options{
		Rules: map[string]mdrender.RenderRule{
			"code": func(f mdrender.NodeFactory, elemType string, attrs mdrender.Attrs, children []mdrender.Node) (mdrender.Node, error) {
				code := f.NewNode(elemType, attrs, children)
				return f.NewNode("pre", nil, []mdrender.Node{code}), nil
			},
		},
	}
	r := mdrender.New(htmlnode.New(), opts)

	got, err := r.RenderToString(tokenizer.Tokenize([]byte("```go\nx\n```")))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "<pre><code class=\"language-go\">x\n</code></pre>"
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}
