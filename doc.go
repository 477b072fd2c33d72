// Package mdrender renders a flat, markdown-it style token stream into a
// nested output-node tree.
//
// The engine consumes tokens produced by an external tokenizer (see the
// tokenizer subpackage for a goldmark-backed one) and drives a small stack
// machine: Open tokens push a frame, Close tokens pop it and finalize the
// accumulated children into a node, Self tokens produce a node immediately.
// The concrete node representation is supplied by a NodeFactory (see the
// htmlnode and etreenode subpackages).
//
// Customization is two-tiered: token handlers, keyed by token type, take
// full control over a single token's dispatch and may delegate back to
// RenderToken after tweaking the token; render rules, keyed by tag, only
// decide how a closed or self-closing tag and its finished children become
// a node. Library defaults for both tiers are merged under user overrides
// at construction time.
package mdrender
