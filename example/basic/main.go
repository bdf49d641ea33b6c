package main

import (
	"context"
	"fmt"
	"log"

	"github.com/siherrmann/linker"
	"github.com/siherrmann/linker/model"
)

func main() {
	// A small in-memory knowledge graph, no database needed
	nodes := []*model.GraphNode{
		{
			ID:      1,
			Label:   model.LabelOrganization,
			Name:    "CoCreateAI",
			Aliases: []string{"CoCreate", "Co-Create AI"},
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
	ctx := context.Background()

	// Terms as they might come out of meeting notes
	terms := []string{
		"CoCreateAI", // exact match -> link
		"cocreate",   // alias match -> link
		"notian",     // close misspelling -> review
		"montreal",   // weak prefix of a longer name -> create
		"Acme Corp",  // unknown -> create
	}

	results, err := l.MatchBatch(ctx, terms)
	if err != nil {
		log.Fatalf("Failed to match terms: %v", err)
	}

	for _, result := range results {
		if !result.Found {
			fmt.Printf("%-12s -> no match, suggested action: %s\n", result.InputTerm, result.SuggestedAction)
			continue
		}

		best := result.BestMatch
		fmt.Printf("%-12s -> %s (%s, score %.2f, via %q), suggested action: %s\n",
			result.InputTerm, best.Node.Name, best.MatchType, best.Score, best.MatchedTerm, result.SuggestedAction)
	}
}
