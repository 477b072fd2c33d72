package mdrender

import "fmt"

// ImbalancedTagsError is returned when a Close token arrives and either no
// frame is open or the innermost open frame was opened for a different
// element type. It signals malformed upstream token input or a resolver
// misconfiguration (the open and close variants of one logical tag
// resolving to different element types).
type ImbalancedTagsError struct {
	// Open is the element type of the innermost open frame at the time of
	// the failure. Empty if the stack was empty.
	Open string

	// Closing is the element type the Close token resolved to.
	Closing string
}

func (e *ImbalancedTagsError) Error() string {
	if e.Open == "" {
		return fmt.Sprintf("mdrender: close %q: no open element", e.Closing)
	}
	return fmt.Sprintf("mdrender: close %q: innermost open element is %q", e.Closing, e.Open)
}

// UnknownElementTypeError is returned when a token has no entry in the
// element-type mapping and an empty tag, leaving the resolver with no
// identifier to instantiate.
type UnknownElementTypeError struct {
	// Token is the offending token.
	Token Token
}

func (e *UnknownElementTypeError) Error() string {
	return fmt.Sprintf("mdrender: token type %q: no element type mapping and empty tag", e.Token.Type)
}
