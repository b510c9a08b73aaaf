package showcase

import (
	"sort"
	"time"

	"github.com/tanema/gween/ease"
)

var (
	previewStyles = map[string]PreviewStyle{
		PagedPreviewStyle{}.Name():     PagedPreviewStyle{},
		ScrollingPreviewStyle{}.Name(): ScrollingPreviewStyle{},
	}
	indexStyles = map[string]IndexStyle{
		BulletIndexStyle{}.Name():   BulletIndexStyle{},
		NumberedIndexStyle{}.Name(): NumberedIndexStyle{},
	}
	easings = map[string]ease.TweenFunc{
		"linear":      ease.Linear,
		"out-cubic":   ease.OutCubic,
		"in-out-quad": ease.InOutQuad,
		"out-bounce":  ease.OutBounce,
	}
)

// DefaultPreviewStyle is the paged carousel.
func DefaultPreviewStyle() PreviewStyle { return PagedPreviewStyle{} }

// DefaultIndexStyle is the bullet list.
func DefaultIndexStyle() IndexStyle { return BulletIndexStyle{} }

// DefaultScrollDuration is how long an animated scroll-to-anchor takes.
const DefaultScrollDuration = 250 * time.Millisecond

// PreviewStyleNamed looks a built-in preview style up by name.
func PreviewStyleNamed(name string) (PreviewStyle, bool) {
	style, ok := previewStyles[name]
	return style, ok
}

// IndexStyleNamed looks a built-in index style up by name.
func IndexStyleNamed(name string) (IndexStyle, bool) {
	style, ok := indexStyles[name]
	return style, ok
}

// EasingNamed looks a scroll easing curve up by name.
func EasingNamed(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}

// PreviewStyleNames lists the built-in preview styles.
func PreviewStyleNames() []string { return sortedKeys(previewStyles) }

// IndexStyleNames lists the built-in index styles.
func IndexStyleNames() []string { return sortedKeys(indexStyles) }

// EasingNames lists the scroll easing curves.
func EasingNames() []string { return sortedKeys(easings) }

// NextPreviewStyle returns the built-in preview style after current, wrapping around.
func NextPreviewStyle(current PreviewStyle) PreviewStyle {
	return previewStyles[nextName(PreviewStyleNames(), StyleName(current))]
}

// NextIndexStyle returns the built-in index style after current, wrapping around.
func NextIndexStyle(current IndexStyle) IndexStyle {
	return indexStyles[nextName(IndexStyleNames(), StyleName(current))]
}

func nextName(names []string, current string) string {
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
