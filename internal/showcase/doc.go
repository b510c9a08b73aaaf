// Package showcase turns a topic tree into one scrollable terminal region per top-level
// topic.
//
// A render pass walks the tree with an immutable Context carrying the nesting depth, the
// active preview and index styles, the current selection and the region's
// ScrollCoordinator. Each node gets its leaf content (RenderContent), a jump index over its
// immediate children (BuildIndex) and a recursively composed child region
// (ComposeChildren) whose entries can ask the coordinator to scroll back to their parent.
// TopicView ties the pieces together and lays the tree out into lines with anchors.
//
// Missing data produces nothing rather than errors: no children means no index and no
// child region, no preview means no carousel, and scrolling to an unknown anchor does
// nothing.
//
// Nothing in this package is safe for concurrent use; a render pass runs on the UI
// goroutine.
package showcase
