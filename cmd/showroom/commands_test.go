package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showroom/internal/catalog"
	"github.com/alexisbeaulieu97/showroom/internal/topic"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2025-10-03"

	output, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2025-10-03")
}

func TestListCommandTable(t *testing.T) {
	output, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Equal(t, topic.Count(catalog.Root())+1, len(lines))
	require.Contains(t, lines[0], "DEPTH")
	require.Contains(t, output, "text-typography")
}

func TestListCommandJSON(t *testing.T) {
	output, err := execute(t, "list", "--json")
	require.NoError(t, err)

	var payload struct {
		Count  int           `json:"count"`
		Topics []listedTopic `json:"topics"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &payload))
	require.Equal(t, topic.Count(catalog.Root()), payload.Count)
	require.Equal(t, catalog.RootID, payload.Topics[0].ID)
	require.Zero(t, payload.Topics[0].Depth)
}

func TestRenderCommandPrintsTopic(t *testing.T) {
	output, err := execute(t, "render", "badge", "--width", "60", "--preview-style", "scrolling")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(output, "Badge"))
	require.Contains(t, output, "primary")
	require.Contains(t, output, "danger")
}

func TestRenderCommandUnknownTopic(t *testing.T) {
	_, err := execute(t, "render", "nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "showroom list")
}

func TestRenderCommandRejectsUnknownStyle(t *testing.T) {
	_, err := execute(t, "render", "--index-style", "tree")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown index style")
}

func TestRenderCommandUsesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("index_style: numbered\nwidth: 70\n"), 0o600))

	output, err := execute(t, "--config", path, "render", "layout")
	require.NoError(t, err)
	require.Contains(t, output, "1. Stack")
	require.Contains(t, output, "2. Box")
}

func TestConfigErrorsSurface(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: neon\n"), 0o600))

	_, err := execute(t, "--config", path, "check")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme")
}

func TestCheckCommand(t *testing.T) {
	output, err := execute(t, "check")
	require.NoError(t, err)
	require.Contains(t, output, "topics valid")
}

func TestCheckReportsDuplicateIDs(t *testing.T) {
	root := topic.Topic{ID: "x", Title: "X", Children: []topic.Topic{{ID: "x", Title: "Again"}}}
	cmd := newCheckCmd(&rootFlags{})
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)

	err := runCheck(cmd, &rootFlags{}, root)
	require.Error(t, err)
	require.Contains(t, buf.String(), "duplicate id")
}

func TestStylesCommand(t *testing.T) {
	output, err := execute(t, "styles")
	require.NoError(t, err)

	require.Contains(t, output, "Preview styles:")
	require.Contains(t, output, "* paged")
	require.Contains(t, output, "Scrolling")
	require.Contains(t, output, "Out Cubic")
	require.Contains(t, output, "* default")
}
