package mdrender

// frame is one currently-open tag's accumulated state.
type frame struct {
	elemType string
	attrs    Attrs
	children []Node
}

// RenderContext is the mutable nesting stack of an in-flight render. The
// stack depth at any instant equals the open-tag nesting depth of the
// position being rendered.
//
// A RenderContext is created fresh by Renderer.Render and discarded when
// the call returns; it is never reused or shared across calls. Token
// handlers receive the context of the call that invoked them and must pass
// that same context when delegating.
type RenderContext struct {
	stack []frame
}

// Push opens a new frame for an element of the given type. Nothing is
// emitted until the matching Pop.
func (rc *RenderContext) Push(elemType string, attrs Attrs) {
	rc.stack = append(rc.stack, frame{elemType: elemType, attrs: attrs})
}

// Pop closes the innermost frame and returns its attributes and accumulated
// children. It returns an *ImbalancedTagsError if the stack is empty or the
// innermost frame was opened for a different element type.
func (rc *RenderContext) Pop(elemType string) (Attrs, []Node, error) {
	if len(rc.stack) == 0 {
		return nil, nil, &ImbalancedTagsError{Closing: elemType}
	}
	top := rc.stack[len(rc.stack)-1]
	if top.elemType != elemType {
		return nil, nil, &ImbalancedTagsError{Open: top.elemType, Closing: elemType}
	}
	rc.stack = rc.stack[:len(rc.stack)-1]
	return top.attrs, top.children, nil
}

// Emit hands a produced node to the context: if a frame is open the node is
// appended to its children and nil is returned; otherwise the node escapes
// the machine and is returned to the caller. A nil node is absorbed either
// way.
func (rc *RenderContext) Emit(n Node) Node {
	if n == nil {
		return nil
	}
	if len(rc.stack) == 0 {
		return n
	}
	top := &rc.stack[len(rc.stack)-1]
	top.children = append(top.children, n)
	return nil
}

// Depth returns the number of open frames.
func (rc *RenderContext) Depth() int {
	return len(rc.stack)
}
