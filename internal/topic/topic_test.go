package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showroom/internal/ui"
	apperrors "github.com/alexisbeaulieu97/showroom/pkg/errors"
)

func sampleTree() Topic {
	return New("Accordion",
		WithID("root"),
		WithChildren(
			New("Basic", WithID("c1")),
			New("Nested", WithID("c2"), WithChildren(
				New("Deep", WithID("c2a")),
			)),
		),
	)
}

func TestNewAssignsRandomIdentity(t *testing.T) {
	a := New("A")
	b := New("B")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewKeepsExplicitIdentity(t *testing.T) {
	assert.Equal(t, ID("fixed"), New("A", WithID("fixed")).ID)
}

func TestWithPreviewCreatesPreviewLazily(t *testing.T) {
	assert.Nil(t, New("plain").Preview)

	withPreview := New("rich", WithPreview(Sample("one", ui.Static("1")), Sample("two", ui.Static("2"))))
	require.NotNil(t, withPreview.Preview)
	assert.Len(t, withPreview.Preview.Items, 2)
}

func TestChildrenAbsentByDefault(t *testing.T) {
	leaf := New("leaf")

	assert.Nil(t, leaf.Children)
	assert.False(t, leaf.HasChildren())
	assert.False(t, Topic{Children: []Topic{}}.HasChildren())
}

func TestWalkVisitsInReadingOrderWithDepth(t *testing.T) {
	var visited []string
	var depths []int

	Walk(sampleTree(), func(t Topic, depth int) bool {
		visited = append(visited, string(t.ID))
		depths = append(depths, depth)
		return true
	})

	assert.Equal(t, []string{"root", "c1", "c2", "c2a"}, visited)
	assert.Equal(t, []int{0, 1, 1, 2}, depths)
}

func TestWalkCanPrune(t *testing.T) {
	var visited []ID
	Walk(sampleTree(), func(t Topic, _ int) bool {
		visited = append(visited, t.ID)
		return t.ID != "c2"
	})

	assert.Equal(t, []ID{"root", "c1", "c2"}, visited)
}

func TestFindAndCount(t *testing.T) {
	tree := sampleTree()

	found, ok := Find(tree, "c2a")
	require.True(t, ok)
	assert.Equal(t, "Deep", found.Title)

	_, ok = Find(tree, "missing")
	assert.False(t, ok)

	assert.Equal(t, 4, Count(tree))
}

func TestValidateAcceptsWellFormedTree(t *testing.T) {
	tree := New("Root",
		WithID("root"),
		WithLinks(Link{Title: "Docs", URL: "https://example.com/docs"}),
		WithCode(CodeBlock{Language: "go", Source: "fmt.Println()"}),
		WithPreview(Sample("x", ui.Static("x"))),
		WithChildren(New("Child", WithID("child"))),
	)

	require.NoError(t, Validate(tree))
}

func TestValidateReportsDuplicateIdentity(t *testing.T) {
	tree := New("Root", WithID("same"), WithChildren(New("Child", WithID("same"))))

	err := Validate(tree)
	require.Error(t, err)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestValidateReportsDuplicatesAcrossRoots(t *testing.T) {
	err := Validate(New("A", WithID("x")), New("B", WithID("x")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate id "x"`)
}

func TestValidateReportsFieldProblems(t *testing.T) {
	tree := Topic{
		ID:    "root",
		Links: []Link{{Title: "Broken", URL: "not a url"}},
		Children: []Topic{
			{ID: "child", Title: "Child", CodeBlocks: []CodeBlock{{Language: "go"}}},
		},
	}

	err := Validate(tree)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "Title")
	assert.Contains(t, msg, "URL")
	assert.Contains(t, msg, "Source")
}
