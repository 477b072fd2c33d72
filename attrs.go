package mdrender

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ClassName is the projected key of the class-list attribute when the
// default remap table is active. Host factories translate it back to their
// own spelling when building concrete attributes.
const ClassName = "className"

const (
	classAttr = "class"
	styleAttr = "style"
)

// projectAttrs turns a token's raw attribute list into an Attrs mapping.
// Duplicate keys are last-wins. When the remap tier is active, each pair is
// run through the remap table before insertion; a remap failure keeps the
// raw pair and is reported at debug level only.
func (r *Renderer) projectAttrs(tok *Token) Attrs {
	if len(tok.Attrs) == 0 {
		return nil
	}
	m := make(Attrs, len(tok.Attrs))
	for _, a := range tok.Attrs {
		key, val := a.Key, any(a.Value)
		if remap, ok := r.remaps[a.Key]; ok {
			k, v, err := remap(a.Value)
			if err != nil {
				r.logger.Debug("attribute remap failed, keeping raw value",
					"key", a.Key, "error", err)
			} else {
				key, val = k, v
			}
		}
		m[key] = val
	}
	return m
}

// DefaultRemaps returns the built-in attribute remap table: the class-list
// key is renamed to ClassName and inline style declaration strings are
// transcoded into a structured mapping via ParseStyle. The table is merged
// under Options.Remaps, so both entries can be replaced or removed per key.
func DefaultRemaps() map[string]AttrRemapFunc {
	return map[string]AttrRemapFunc{
		classAttr: func(value string) (string, any, error) {
			return ClassName, value, nil
		},
		styleAttr: func(value string) (string, any, error) {
			m, err := ParseStyle(value)
			if err != nil {
				return "", nil, err
			}
			return styleAttr, m, nil
		},
	}
}

// ParseStyle parses an inline CSS declaration list such as
// "color: red; font-size: 10px" into a map keyed by camel-cased property
// names ("fontSize"). Whitespace around properties and values is trimmed.
func ParseStyle(style string) (map[string]string, error) {
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return nil, fmt.Errorf("parse style declarations: %w", err)
	}
	m := make(map[string]string, len(decls))
	for _, d := range decls {
		prop := toCamelCase(strings.TrimSpace(d.Property))
		if prop == "" {
			continue
		}
		m[prop] = strings.TrimSpace(d.Value)
	}
	return m, nil
}

// toCamelCase converts a hyphenated CSS property name to camelCase:
// "background-color" becomes "backgroundColor".
func toCamelCase(s string) string {
	parts := strings.Split(s, "-")
	var b strings.Builder
	b.Grow(len(s))
	first := true
	for _, p := range parts {
		if p == "" {
			continue
		}
		if first {
			b.WriteString(strings.ToLower(p))
			first = false
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(strings.ToLower(p[1:]))
	}
	return b.String()
}
