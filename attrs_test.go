package mdrender

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"color", "color"},
		{"font-size", "fontSize"},
		{"background-color", "backgroundColor"},
		{"-webkit-transition", "webkitTransition"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := toCamelCase(tt.in); got != tt.want {
			t.Errorf("toCamelCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseStyle(t *testing.T) {
	got, err := ParseStyle("color: red; font-size: 10px")
	if err != nil {
		t.Fatalf("ParseStyle: %v", err)
	}
	want := map[string]string{
		"color":    "red",
		"fontSize": "10px",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseStyle mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStyleMalformed(t *testing.T) {
	if _, err := ParseStyle("no-colon-here"); err == nil {
		t.Error("ParseStyle: expected an error for a declaration without a colon")
	}
}

func testRenderer(remaps map[string]AttrRemapFunc) *Renderer {
	return &Renderer{
		remaps: remaps,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestProjectAttrs(t *testing.T) {
	tests := []struct {
		name   string
		remaps map[string]AttrRemapFunc
		tok    Token
		want   Attrs
	}{
		{
			name: "no attributes",
			tok:  Token{},
			want: nil,
		},
		{
			name: "identity copy",
			tok:  Token{Attrs: []Attr{{"href", "/a"}, {"title", "t"}}},
			want: Attrs{"href": "/a", "title": "t"},
		},
		{
			name: "duplicate keys are last-wins",
			tok:  Token{Attrs: []Attr{{"id", "first"}, {"id", "second"}}},
			want: Attrs{"id": "second"},
		},
		{
			name:   "class renamed by the default remap",
			remaps: DefaultRemaps(),
			tok:    Token{Attrs: []Attr{{"class", "note"}}},
			want:   Attrs{ClassName: "note"},
		},
		{
			name:   "style transcoded by the default remap",
			remaps: DefaultRemaps(),
			tok:    Token{Attrs: []Attr{{"style", "font-size: 10px"}}},
			want:   Attrs{"style": map[string]string{"fontSize": "10px"}},
		},
		{
			name:   "remap failure keeps the raw pair",
			remaps: DefaultRemaps(),
			tok:    Token{Attrs: []Attr{{"style", "not a declaration"}}},
			want:   Attrs{"style": "not a declaration"},
		},
		{
			name: "remap tier disabled",
			tok:  Token{Attrs: []Attr{{"class", "note"}, {"style", "color: red"}}},
			want: Attrs{"class": "note", "style": "color: red"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRenderer(tt.remaps)
			got := r.projectAttrs(&tt.tok)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("projectAttrs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenAttrHelpers(t *testing.T) {
	tok := Token{Attrs: []Attr{{"id", "a"}, {"id", "b"}}}

	if got := tok.AttrGet("id"); got != "b" {
		t.Errorf("AttrGet = %q, want %q", got, "b")
	}
	if got := tok.AttrGet("missing"); got != "" {
		t.Errorf("AttrGet(missing) = %q, want empty", got)
	}

	tok.AttrSet("id", "c")
	if got := tok.AttrGet("id"); got != "c" {
		t.Errorf("AttrGet after AttrSet = %q, want %q", got, "c")
	}

	tok.AttrSet("title", "t")
	if len(tok.Attrs) != 3 || tok.Attrs[2] != (Attr{"title", "t"}) {
		t.Errorf("AttrSet did not append: %v", tok.Attrs)
	}
}
