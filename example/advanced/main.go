package main

import (
	"context"
	"fmt"
	"log"

	"github.com/siherrmann/linker"
	"github.com/siherrmann/linker/helper"
	"github.com/siherrmann/linker/model"
)

func main() {
	// Start a test PostgreSQL container
	teardown, dbPort, err := helper.MustStartPostgresContainer()
	if err != nil {
		log.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer teardown(context.Background())

	// Create database configuration using the container port
	dbConfig := &helper.DatabaseConfiguration{
		Host:     "localhost",
		Port:     dbPort,
		Database: "database",
		Username: "user",
		Password: "password",
		Schema:   "public",
		SSLMode:  "disable",
	}

	l, err := linker.NewLinker(dbConfig, nil)
	if err != nil {
		log.Fatalf("Failed to create linker: %v", err)
	}
	defer l.Close()

	ctx := context.Background()

	// Seed the knowledge graph
	seed := []*model.GraphNode{
		{
			Label:   model.LabelOrganization,
			Name:    "CoCreateAI",
			Aliases: []string{"CoCreate", "Co-Create AI"},
			Context: "AI startup building co-creation tooling",
		},
		{
			Label:   model.LabelOrganization,
			Name:    "Montreal Ventures",
			Aliases: []string{"MV"},
		},
		{
			Label:   model.LabelTool,
			Name:    "Notion",
			Context: "Docs and wiki tool",
		},
	}
	for _, node := range seed {
		if err := l.Nodes.InsertNode(node); err != nil {
			log.Fatalf("Failed to insert node %s: %v", node.Name, err)
		}
	}
	fmt.Printf("Seeded %d nodes\n", len(seed))

	// Resolve a batch of terms against the graph
	terms := []string{"cocreate", "notian", "Figma"}
	results, err := l.MatchBatch(ctx, terms)
	if err != nil {
		log.Fatalf("Failed to match terms: %v", err)
	}

	for _, result := range results {
		if !result.Found {
			fmt.Printf("%-10s -> no match (%s)\n", result.InputTerm, result.SuggestedAction)
			continue
		}
		fmt.Printf("%-10s -> %s (score %.2f, %s)\n",
			result.InputTerm, result.BestMatch.Node.Name, result.BestMatch.Score, result.SuggestedAction)
	}

	// Record the confident resolution as an audit link
	accepted, err := l.Match(ctx, "cocreate")
	if err != nil {
		log.Fatalf("Failed to match: %v", err)
	}
	link, err := l.RecordLink(accepted, "advanced_example")
	if err != nil {
		log.Fatalf("Failed to record link: %v", err)
	}
	fmt.Printf("Recorded link %s -> %s\n", link.Term, link.NodeRID)

	// Create a node for the unknown term and make it matchable
	created, err := l.CreateNodeForMention(model.Mention{
		Value:      "Figma",
		EntityType: "tool",
		Confidence: 1.0,
		Mentions:   1,
	})
	if err != nil {
		log.Fatalf("Failed to create node: %v", err)
	}
	fmt.Printf("Created node %s (%s)\n", created.Name, created.Label)

	if err := l.Reload(ctx); err != nil {
		log.Fatalf("Failed to reload cache: %v", err)
	}

	result, err := l.Match(ctx, "Figma")
	if err != nil {
		log.Fatalf("Failed to match: %v", err)
	}
	fmt.Printf("After reload: %-10s -> %s (%s)\n",
		result.InputTerm, result.BestMatch.Node.Name, result.SuggestedAction)

	// Inspect the audit trail of the linked node
	links, err := l.Links.SelectLinksByNode(link.NodeRID, 10)
	if err != nil {
		log.Fatalf("Failed to select links: %v", err)
	}
	fmt.Printf("Node %s has %d recorded links\n", accepted.BestMatch.Node.Name, len(links))
}
