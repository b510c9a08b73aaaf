package showcase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"

	"github.com/alexisbeaulieu97/showroom/internal/topic"
)

func TestScrollToUnknownAnchorIsNoop(t *testing.T) {
	s := NewScrollCoordinator()
	s.SetOffset(3)

	s.ScrollTo("missing")

	require.Equal(t, 3, s.Offset())
	require.False(t, s.Animating())
}

func TestScrollToAnimates(t *testing.T) {
	s := NewScrollCoordinator(WithDuration(100*time.Millisecond), WithEasing(ease.Linear))
	s.Register("a", 10)

	s.ScrollTo("a")
	require.True(t, s.Animating())
	require.Equal(t, 10, s.Target())
	require.Zero(t, s.Offset())

	require.True(t, s.Advance(50*time.Millisecond))
	require.Equal(t, 5, s.Offset())

	require.False(t, s.Advance(60*time.Millisecond))
	require.Equal(t, 10, s.Offset())
	require.False(t, s.Animating())
}

func TestScrollToZeroDurationJumps(t *testing.T) {
	s := NewScrollCoordinator(WithDuration(0))
	s.Register("a", 7)

	s.ScrollTo("a")

	require.Equal(t, 7, s.Offset())
	require.False(t, s.Animating())
}

func TestLastScrollRequestWins(t *testing.T) {
	s := NewScrollCoordinator(WithDuration(100 * time.Millisecond))
	s.Register("a", 10)
	s.Register("b", 20)

	s.ScrollTo("a")
	s.Advance(10 * time.Millisecond)
	s.ScrollTo("b")
	require.Equal(t, 20, s.Target())

	for s.Advance(16 * time.Millisecond) {
	}
	require.Equal(t, 20, s.Offset())
}

func TestUnknownAnchorKeepsAnimationInFlight(t *testing.T) {
	s := NewScrollCoordinator()
	s.Register("a", 10)

	s.ScrollTo("a")
	s.ScrollTo("missing")

	require.True(t, s.Animating())
	require.Equal(t, 10, s.Target())
}

func TestScrollToCurrentOffsetWhileIdleIsNoop(t *testing.T) {
	s := NewScrollCoordinator()
	s.Register("top", 0)

	s.ScrollTo("top")
	require.False(t, s.Animating())
}

func TestScrollBounds(t *testing.T) {
	s := NewScrollCoordinator(WithDuration(0))
	s.SetBounds(5)
	s.Register("far", 10)

	s.ScrollTo("far")
	require.Equal(t, 5, s.Offset())

	s.ScrollBy(-10)
	require.Zero(t, s.Offset())

	s.SetOffset(5)
	s.SetBounds(2)
	require.Equal(t, 2, s.Offset())
}

func TestSetBoundsRetargetsAnimation(t *testing.T) {
	s := NewScrollCoordinator()
	s.Register("far", 10)
	s.ScrollTo("far")

	s.SetBounds(4)
	require.Equal(t, 4, s.Target())

	for s.Advance(16 * time.Millisecond) {
	}
	require.Equal(t, 4, s.Offset())
}

func TestSetOffsetCancelsAnimation(t *testing.T) {
	s := NewScrollCoordinator()
	s.Register("a", 10)
	s.ScrollTo("a")

	s.SetOffset(2)

	require.False(t, s.Animating())
	require.Equal(t, 2, s.Offset())
	require.False(t, s.Advance(time.Second))
}

func TestResetForgetsAnchors(t *testing.T) {
	s := NewScrollCoordinator()
	s.Register("a", 4)
	s.ScrollTo("a")

	s.Reset()

	_, ok := s.Anchor("a")
	require.False(t, ok)
	require.False(t, s.Animating())
}

func TestPendingTracksAnimation(t *testing.T) {
	s := NewScrollCoordinator(WithDuration(100 * time.Millisecond))
	s.Register("a", 4)

	_, ok := s.Pending()
	require.False(t, ok)

	s.ScrollTo("a")
	id, ok := s.Pending()
	require.True(t, ok)
	require.Equal(t, topic.ID("a"), id)

	for s.Advance(16 * time.Millisecond) {
	}
	_, ok = s.Pending()
	require.False(t, ok)
}
