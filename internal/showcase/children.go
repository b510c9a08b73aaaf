package showcase

import "github.com/alexisbeaulieu97/showroom/internal/topic"

// ChildRegion holds the composed subtrees of a node's children, in reading order.
type ChildRegion struct {
	children []ChildView
}

// ChildView is one child subtree plus its affordance for jumping back to the parent.
type ChildView struct {
	node     *Node
	parentID topic.ID
	scroll   *ScrollCoordinator
}

// ComposeChildren builds a subtree for every child. ctx must already be at the
// children's level. It returns nil, meaning "no child region", when children is nil or
// empty.
func ComposeChildren(ctx Context, children []topic.Topic, parentID topic.ID) *ChildRegion {
	if len(children) == 0 {
		return nil
	}

	views := make([]ChildView, 0, len(children))
	for _, child := range children {
		views = append(views, ChildView{
			node:     buildNode(ctx, child),
			parentID: parentID,
			scroll:   ctx.Scroll(),
		})
	}
	return &ChildRegion{children: views}
}

// Len is the number of child subtrees.
func (r *ChildRegion) Len() int {
	if r == nil {
		return 0
	}
	return len(r.children)
}

// Children returns the child views in reading order.
func (r *ChildRegion) Children() []ChildView {
	if r == nil {
		return nil
	}
	out := make([]ChildView, len(r.children))
	copy(out, r.children)
	return out
}

// Node is the child's subtree.
func (c ChildView) Node() *Node {
	return c.node
}

// ParentID is the identity the affordance scrolls back to.
func (c ChildView) ParentID() topic.ID {
	return c.parentID
}

// ScrollToParent asks the region's coordinator to bring the parent's anchor to the top.
func (c ChildView) ScrollToParent() {
	if c.scroll == nil {
		return
	}
	c.scroll.ScrollTo(c.parentID)
}
