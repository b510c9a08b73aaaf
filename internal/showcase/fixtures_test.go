package showcase

import (
	"github.com/alexisbeaulieu97/showroom/internal/topic"
	"github.com/alexisbeaulieu97/showroom/internal/ui"
)

func accordion() topic.Topic {
	return topic.Topic{
		ID:          "root",
		Title:       "Accordion",
		Description: "",
		Children:    []topic.Topic{{ID: "c1", Title: "Basic", Children: []topic.Topic{}}},
	}
}

// tree:
//
//	root
//	├── a
//	│   ├── a1
//	│   └── a2
//	│       └── a2x
//	└── b
func tree() topic.Topic {
	return topic.Topic{
		ID:          "root",
		Title:       "Root",
		Description: "The root topic.",
		Children: []topic.Topic{
			{
				ID:          "a",
				Title:       "Alpha",
				Description: "First branch.",
				Children: []topic.Topic{
					{ID: "a1", Title: "Alpha one", Description: "Leaf."},
					{
						ID:       "a2",
						Title:    "Alpha two",
						Children: []topic.Topic{{ID: "a2x", Title: "Alpha two x", Description: "Deep leaf."}},
					},
				},
			},
			{ID: "b", Title: "Beta", Description: "Second branch."},
		},
	}
}

func withPreview(t topic.Topic, captions ...string) topic.Topic {
	items := make([]topic.PreviewItem, 0, len(captions))
	for _, c := range captions {
		items = append(items, topic.PreviewItem{Caption: c, Content: ui.Static("sample " + c)})
	}
	t.Preview = &topic.Preview{Items: items}
	return t
}

func findNode(n *Node, id topic.ID) *Node {
	if n.Topic().ID == id {
		return n
	}
	for _, child := range n.Children().Children() {
		if found := findNode(child.Node(), id); found != nil {
			return found
		}
	}
	return nil
}
