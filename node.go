package mdrender

// Node is an opaque output node produced by a NodeFactory. A nil Node is
// the "nothing to emit" marker: Open tokens and emissions absorbed by an
// open frame yield nil. A constructed node is always non-nil, even when it
// has no children, so the two cases stay distinguishable.
type Node any

// Attrs is the projected attribute mapping handed to render rules and node
// construction. Values are plain strings unless an attribute remap produced
// a structured value (e.g. a parsed style declaration map).
type Attrs map[string]any

// Fragment is the element type of a transparent container: a factory must
// splice a fragment's children into the enclosing node instead of
// introducing a wrapping tag. The default element-type mapping resolves
// plain "text" tokens to it.
const Fragment = "#fragment"

// NodeFactory is the capability set the engine requires from the host
// output-tree library. The engine never inspects nodes beyond this
// interface.
type NodeFactory interface {
	// NewNode builds a node of the given element type with the projected
	// attributes and the ordered, already-finalized children. It must
	// accept zero children.
	NewNode(elemType string, attrs Attrs, children []Node) Node

	// NewText builds a leaf text node.
	NewText(text string) Node

	// WrapOrdered keys or tags the given values so their relative order
	// survives the host's own merging, diffing or serialization without
	// collapsing structurally equal siblings. Hosts whose child lists are
	// ordered by construction may return the slice unchanged.
	WrapOrdered(children []Node) []Node

	// TextContent flattens an already-built node into its textual content,
	// descending depth-first into any nested children.
	TextContent(n Node) string
}

// Serializer is an optional NodeFactory capability that turns finished
// nodes into a final textual form. Renderer.RenderToString requires it.
type Serializer interface {
	Serialize(nodes ...Node) (string, error)
}
