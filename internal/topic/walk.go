package topic

// Walk visits root and its descendants depth-first in reading order. depth starts at 0
// for root. Returning false from fn skips the node's children.
func Walk(root Topic, fn func(t Topic, depth int) bool) {
	walk(root, 0, fn)
}

func walk(t Topic, depth int, fn func(Topic, int) bool) {
	if !fn(t, depth) {
		return
	}
	for _, child := range t.Children {
		walk(child, depth+1, fn)
	}
}

// Find returns the topic with identity id in the tree rooted at root.
func Find(root Topic, id ID) (Topic, bool) {
	var (
		found Topic
		ok    bool
	)
	Walk(root, func(t Topic, _ int) bool {
		if ok {
			return false
		}
		if t.ID == id {
			found, ok = t, true
			return false
		}
		return true
	})
	return found, ok
}

// Count returns the number of topics in the tree rooted at root.
func Count(root Topic) int {
	n := 0
	Walk(root, func(Topic, int) bool {
		n++
		return true
	})
	return n
}
