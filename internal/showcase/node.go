package showcase

import "github.com/alexisbeaulieu97/showroom/internal/topic"

// Node is a fully composed subtree: the topic's own content, the index over its
// children and the child subtrees themselves.
type Node struct {
	topic    topic.Topic
	ctx      Context
	content  Content
	index    *Index
	children *ChildRegion
}

func buildNode(ctx Context, t topic.Topic) *Node {
	ctx = ctx.enter(t.ID)
	childCtx := ctx.Nested()
	childCtx = childCtx.WithRender(childCtx.Render().Inset(gutterWidth))

	return &Node{
		topic:    t,
		ctx:      ctx,
		content:  RenderContent(ctx, t),
		index:    BuildIndex(ctx, t.Children),
		children: ComposeChildren(childCtx, t.Children, t.ID),
	}
}

// Topic is the node's topic.
func (n *Node) Topic() topic.Topic { return n.topic }

// Depth is the node's nesting level.
func (n *Node) Depth() int { return n.ctx.Depth() }

// Context is the resolved context the node rendered with.
func (n *Node) Context() Context { return n.ctx }

// Content is the node's leaf content.
func (n *Node) Content() Content { return n.content }

// Index is the jump list over the node's children, nil when it has none.
func (n *Node) Index() *Index { return n.index }

// Children is the composed child region, nil when the node has no children.
func (n *Node) Children() *ChildRegion { return n.children }
