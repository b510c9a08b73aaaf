package tui

import (
	"time"

	"github.com/alexisbeaulieu97/showroom/internal/topic"
)

// ViewMode determines which screen to render.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// NavigateMsg asks the browser to open a topic on a new screen.
type NavigateMsg struct {
	ID topic.ID
}

// BackMsg closes the current screen.
type BackMsg struct{}

type frameMsg struct {
	at time.Time
}
