package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showroom/internal/catalog"
	"github.com/alexisbeaulieu97/showroom/internal/topic"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every catalog topic with its id and depth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type listedTopic struct {
	ID       topic.ID `json:"id"`
	Title    string   `json:"title"`
	Depth    int      `json:"depth"`
	Children int      `json:"children"`
	Preview  int      `json:"preview_items"`
}

func collectTopics(root topic.Topic) []listedTopic {
	var out []listedTopic
	topic.Walk(root, func(t topic.Topic, depth int) bool {
		entry := listedTopic{ID: t.ID, Title: t.Title, Depth: depth, Children: len(t.Children)}
		if t.Preview != nil {
			entry.Preview = len(t.Preview.Items)
		}
		out = append(out, entry)
		return true
	})
	return out
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	topics := collectTopics(catalog.Root())

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			Count  int           `json:"count"`
			Topics []listedTopic `json:"topics"`
		}{Count: len(topics), Topics: topics})
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tDEPTH\tTITLE\tCHILDREN")
	for _, t := range topics {
		fmt.Fprintf(writer, "%s\t%d\t%s%s\t%d\n", t.ID, t.Depth, strings.Repeat("  ", t.Depth), t.Title, t.Children)
	}
	return writer.Flush()
}
