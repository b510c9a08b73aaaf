package showcase

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/alexisbeaulieu97/showroom/internal/logger"
	"github.com/alexisbeaulieu97/showroom/internal/topic"
)

// ScrollCoordinator moves one scrollable region so that a registered anchor sits at its
// top. Requests are fire-and-forget: the newest request replaces any animation in flight
// and the host drives progress through Advance.
type ScrollCoordinator struct {
	anchors  map[topic.ID]int
	position float32
	target   int
	pending  topic.ID
	limit    int
	tween    *gween.Tween
	duration time.Duration
	easing   ease.TweenFunc
	log      *logger.Logger
}

// ScrollOption configures a ScrollCoordinator.
type ScrollOption func(*ScrollCoordinator)

// WithDuration sets how long an animated scroll takes. Zero or less jumps immediately.
func WithDuration(d time.Duration) ScrollOption {
	return func(s *ScrollCoordinator) {
		s.duration = d
	}
}

// WithEasing sets the animation curve.
func WithEasing(fn ease.TweenFunc) ScrollOption {
	return func(s *ScrollCoordinator) {
		if fn != nil {
			s.easing = fn
		}
	}
}

// WithLogger attaches a logger for dropped requests.
func WithLogger(log *logger.Logger) ScrollOption {
	return func(s *ScrollCoordinator) {
		s.log = log
	}
}

// NewScrollCoordinator returns an idle coordinator at offset 0 with no bound.
func NewScrollCoordinator(opts ...ScrollOption) *ScrollCoordinator {
	s := &ScrollCoordinator{
		anchors:  make(map[topic.ID]int),
		limit:    -1,
		duration: DefaultScrollDuration,
		easing:   ease.OutCubic,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register records the line at which id's content begins.
func (s *ScrollCoordinator) Register(id topic.ID, line int) {
	s.anchors[id] = line
}

// Anchor returns the line registered for id.
func (s *ScrollCoordinator) Anchor(id topic.ID) (int, bool) {
	line, ok := s.anchors[id]
	return line, ok
}

// Reset forgets every anchor and stops any animation. The offset is kept.
func (s *ScrollCoordinator) Reset() {
	s.anchors = make(map[topic.ID]int)
	s.stop()
}

// ScrollTo starts scrolling so the anchor for id lands at the top of the region.
// Unknown identities are ignored.
func (s *ScrollCoordinator) ScrollTo(id topic.ID) {
	line, ok := s.anchors[id]
	if !ok {
		s.log.ForTopic(id).Debug("scroll request for unregistered anchor ignored")
		return
	}

	target := s.clamp(line)
	if s.tween == nil && target == s.Offset() {
		return
	}
	if s.duration <= 0 {
		s.jump(target)
		return
	}

	s.target = target
	s.pending = id
	s.tween = gween.New(s.position, float32(target), float32(s.duration.Seconds()), s.easing)
}

// Pending returns the anchor an animation in flight is heading for.
func (s *ScrollCoordinator) Pending() (topic.ID, bool) {
	if s.tween == nil {
		return "", false
	}
	return s.pending, true
}

// Offset is the first visible line of the region.
func (s *ScrollCoordinator) Offset() int {
	return int(math.Round(float64(s.position)))
}

// Target is where the region is heading: the animation's end, or the offset when idle.
func (s *ScrollCoordinator) Target() int {
	if s.tween == nil {
		return s.Offset()
	}
	return s.target
}

// SetOffset scrolls to line immediately, cancelling any animation.
func (s *ScrollCoordinator) SetOffset(line int) {
	s.jump(s.clamp(line))
}

// ScrollBy moves the offset by delta lines immediately.
func (s *ScrollCoordinator) ScrollBy(delta int) {
	s.SetOffset(s.Offset() + delta)
}

// SetBounds limits the offset to [0, maxOffset].
func (s *ScrollCoordinator) SetBounds(maxOffset int) {
	s.limit = max(maxOffset, 0)
	if s.Offset() > s.limit {
		s.jump(s.limit)
	}
	if s.tween != nil && s.target > s.limit {
		s.target = s.limit
		s.tween = gween.New(s.position, float32(s.limit), float32(s.duration.Seconds()), s.easing)
	}
}

// Animating reports whether a scroll is in flight.
func (s *ScrollCoordinator) Animating() bool {
	return s.tween != nil
}

// Advance steps the animation by dt and reports whether it is still running.
func (s *ScrollCoordinator) Advance(dt time.Duration) bool {
	if s.tween == nil {
		return false
	}
	value, done := s.tween.Update(float32(dt.Seconds()))
	s.position = value
	if done {
		s.jump(s.target)
		return false
	}
	return true
}

func (s *ScrollCoordinator) jump(line int) {
	s.position = float32(line)
	s.target = line
	s.pending = ""
	s.tween = nil
}

func (s *ScrollCoordinator) stop() {
	s.target = s.Offset()
	s.pending = ""
	s.tween = nil
}

func (s *ScrollCoordinator) clamp(line int) int {
	line = max(line, 0)
	if s.limit >= 0 {
		line = min(line, s.limit)
	}
	return line
}
