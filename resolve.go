package mdrender

// resolveType maps a token to the element type it should instantiate: an
// explicit entry in the type mapping wins, otherwise the token's tag is
// used directly as the element identifier.
func (r *Renderer) resolveType(tok *Token) (string, error) {
	if et, ok := r.types[tok.Type]; ok {
		return et, nil
	}
	if tok.Tag != "" {
		return tok.Tag, nil
	}
	return "", &UnknownElementTypeError{Token: *tok}
}
