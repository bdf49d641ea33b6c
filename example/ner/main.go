package main

import (
	"context"
	"fmt"
	"log"

	"github.com/siherrmann/linker"
	"github.com/siherrmann/linker/model"
)

const sampleText = `Meeting notes, August 2026.

Wolfgang from CoCreateAI presented the new roadmap. Montreal Ventures is
interested in leading the round. Action items are tracked in Notion, and the
next meeting will take place in Berlin.`

func main() {
	// An in-memory graph of known entities
	nodes := []*model.GraphNode{
		{
			ID:      1,
			Label:   model.LabelOrganization,
			Name:    "CoCreateAI",
			Aliases: []string{"CoCreate"},
		},
		{
			ID:      2,
			Label:   model.LabelOrganization,
			Name:    "Montreal Ventures",
			Aliases: []string{"MV"},
		},
		{
			ID:    3,
			Label: model.LabelTool,
			Name:  "Notion",
		},
	}

	l := linker.NewInMemoryLinker(nodes, nil)

	// Set up the default NER pipeline (downloads distilbert-NER on first use)
	if err := l.UseDefaultPipeline(); err != nil {
		log.Fatalf("Failed to set up NER pipeline: %v", err)
	}

	ctx := context.Background()
	result, err := l.ExtractAndLink(ctx, sampleText)
	if err != nil {
		log.Fatalf("Failed to extract and link: %v", err)
	}

	fmt.Printf("Extracted %d mentions\n\n", len(result.Mentions))

	fmt.Println("Linked:")
	for _, linked := range result.Linked {
		fmt.Printf("  %-20s -> %s (score %.2f, %s)\n",
			linked.Mention.Value, linked.Match.Node.Name, linked.Match.Score, linked.Action)
	}

	fmt.Println("Unlinked (candidates for new nodes):")
	for _, mention := range result.Unlinked {
		fmt.Printf("  %-20s (%s, would become label %s)\n",
			mention.Value, mention.EntityType, mention.SuggestedLabel())
	}
}
