// Package topic defines the immutable content tree that the showcase renders.
package topic

import (
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/showroom/internal/ui"
)

// ID is a topic's stable identity. It must be unique within one rendering session and
// must not change between renders, since it keys scroll anchors and list diffing.
type ID string

// NewID returns a random identity.
func NewID() ID {
	return ID(uuid.NewString())
}

// Topic is one node of the showcase tree. Values are treated as immutable once built.
type Topic struct {
	ID          ID          `validate:"required"`
	Title       string      `validate:"required"`
	Description string
	Preview     *Preview    `validate:"omitempty"`
	Links       []Link      `validate:"dive"`
	CodeBlocks  []CodeBlock `validate:"dive"`
	// Children is nil when the topic has no sub-topics. An empty slice means the same
	// thing to every derived structure.
	Children []Topic `validate:"-"`
}

// HasChildren reports whether the topic has at least one sub-topic.
func (t Topic) HasChildren() bool {
	return len(t.Children) > 0
}

// Preview groups the live samples shown in a topic's preview carousel.
type Preview struct {
	Items []PreviewItem `validate:"dive"`
}

// PreviewItem is a single live sample.
type PreviewItem struct {
	Caption string
	Content ui.Renderable `validate:"required"`
}

// Link points at external documentation.
type Link struct {
	Title string `validate:"required"`
	URL   string `validate:"required,url"`
}

// CodeBlock is a source sample.
type CodeBlock struct {
	Caption  string
	Language string
	Source   string `validate:"required"`
}

// Option configures a Topic built with New.
type Option func(*Topic)

// New builds a topic titled title. Without WithID a random identity is assigned.
func New(title string, opts ...Option) Topic {
	t := Topic{Title: title}
	for _, opt := range opts {
		opt(&t)
	}
	if t.ID == "" {
		t.ID = NewID()
	}
	return t
}

// WithID fixes the topic identity.
func WithID(id ID) Option {
	return func(t *Topic) { t.ID = id }
}

// WithDescription sets the description. Inline markdown is allowed.
func WithDescription(description string) Option {
	return func(t *Topic) { t.Description = description }
}

// WithPreview adds preview items, creating the preview on first use.
func WithPreview(items ...PreviewItem) Option {
	return func(t *Topic) {
		if t.Preview == nil {
			t.Preview = &Preview{}
		}
		t.Preview.Items = append(t.Preview.Items, items...)
	}
}

// WithLinks appends links.
func WithLinks(links ...Link) Option {
	return func(t *Topic) { t.Links = append(t.Links, links...) }
}

// WithCode appends code blocks.
func WithCode(blocks ...CodeBlock) Option {
	return func(t *Topic) { t.CodeBlocks = append(t.CodeBlocks, blocks...) }
}

// WithChildren appends sub-topics in reading order.
func WithChildren(children ...Topic) Option {
	return func(t *Topic) { t.Children = append(t.Children, children...) }
}

// Sample is shorthand for a captioned preview item.
func Sample(caption string, content ui.Renderable) PreviewItem {
	return PreviewItem{Caption: caption, Content: content}
}
