package linker

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/siherrmann/linker/core/pipeline"
	"github.com/siherrmann/linker/core/resolution"
	"github.com/siherrmann/linker/database"
	"github.com/siherrmann/linker/helper"
	"github.com/siherrmann/linker/model"
	loadSql "github.com/siherrmann/linker/sql"
)

// Linker provides a unified interface to the resolution engine and the
// database handlers behind it
type Linker struct {
	DB       *helper.Database
	Nodes    *database.NodesDBHandler
	Links    *database.LinksDBHandler
	Engine   *resolution.Engine
	Pipeline *pipeline.Pipeline // Optional mention extraction pipeline
	// Logging
	log *slog.Logger
}

// NewLinker creates a new Linker instance with all handlers initialized.
// A nil matchConfig falls back to the default calibration.
func NewLinker(config *helper.DatabaseConfiguration, matchConfig *model.MatchConfig) (*Linker, error) {
	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	// Initialize database
	db := helper.NewDatabase("linker", config, logger)
	err := loadSql.Init(db.Instance)
	if err != nil {
		return nil, helper.NewError("initialize database extensions", err)
	}

	// Create all handlers in the correct order (nodes first, links reference them)
	// force=false to not reload if functions already exist
	nodes, err := database.NewNodesDBHandler(db, false)
	if err != nil {
		return nil, helper.NewError("create nodes handler", err)
	}

	links, err := database.NewLinksDBHandler(db, false)
	if err != nil {
		return nil, helper.NewError("create links handler", err)
	}

	// Create the resolution engine over the node store
	engine := resolution.NewEngine(nodes, matchConfig, logger)

	return &Linker{
		DB:     db,
		Nodes:  nodes,
		Links:  links,
		Engine: engine,
		log:    logger,
	}, nil
}

// NewInMemoryLinker creates a Linker without a database behind it. Matching
// runs against the given nodes, persistence operations are unavailable.
func NewInMemoryLinker(nodes []*model.GraphNode, matchConfig *model.MatchConfig) *Linker {
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	engine := resolution.NewEngine(resolution.NewStaticSource(nodes), matchConfig, logger)

	return &Linker{
		Engine: engine,
		log:    logger,
	}
}

// Close closes the database connection
func (l *Linker) Close() error {
	if l.DB != nil && l.DB.Instance != nil {
		return l.DB.Instance.Close()
	}
	return nil
}

// SetPipeline sets the mention extraction pipeline for text processing
func (l *Linker) SetPipeline(pipeline *pipeline.Pipeline) {
	l.Pipeline = pipeline
}

// UseDefaultPipeline sets up the default NER mention extraction pipeline.
// This uses the distilbert-NER model and downloads it on first use.
func (l *Linker) UseDefaultPipeline() error {
	extractor, err := pipeline.DefaultMentionExtractor()
	if err != nil {
		return helper.NewError("create default mention extractor", err)
	}

	l.Pipeline = pipeline.NewPipeline(extractor)
	return nil
}

// Match resolves a single term against the cached knowledge graph
func (l *Linker) Match(ctx context.Context, term string) (*model.MatchResult, error) {
	return l.Engine.Match(ctx, term)
}

// MatchBatch resolves multiple terms against one cache snapshot, results are
// index-aligned with the input
func (l *Linker) MatchBatch(ctx context.Context, terms []string) ([]*model.MatchResult, error) {
	return l.Engine.MatchBatch(ctx, terms)
}

// Reload refreshes the node cache from the database
func (l *Linker) Reload(ctx context.Context) error {
	return l.Engine.Reload(ctx)
}

// CachedNodes returns up to limit nodes from the current cache snapshot
func (l *Linker) CachedNodes(limit int) []*model.GraphNode {
	return l.Engine.CachedNodes(limit)
}

// ExtractAndLink extracts mentions from free text and resolves them against
// the graph. The pipeline must be set first.
func (l *Linker) ExtractAndLink(ctx context.Context, text string) (*model.MentionLinkResult, error) {
	if l.Pipeline == nil {
		return nil, helper.NewError("extract mentions", fmt.Errorf("pipeline not set, use SetPipeline() first"))
	}

	mentions, err := l.Pipeline.Extract(text)
	if err != nil {
		return nil, helper.NewError("extract mentions", err)
	}

	l.log.Info("Extracted mentions", slog.Int("num_mentions", len(mentions)))

	result, err := l.Engine.LinkMentions(ctx, mentions)
	if err != nil {
		return nil, helper.NewError("link mentions", err)
	}

	return result, nil
}

// CreateNodeForMention persists a new graph node for an unlinked mention.
// The mention's entity type decides the node label, the description becomes
// the node context. The cache is not reloaded automatically.
func (l *Linker) CreateNodeForMention(mention model.Mention) (*model.GraphNode, error) {
	if l.Nodes == nil {
		return nil, helper.NewError("create node", fmt.Errorf("no database behind this linker"))
	}

	node := &model.GraphNode{
		Label:   mention.SuggestedLabel(),
		Name:    mention.Value,
		Context: mention.Description,
		Metadata: model.Metadata{
			"confidence": mention.Confidence,
			"mentions":   mention.Mentions,
		},
	}

	err := l.Nodes.InsertNode(node)
	if err != nil {
		return nil, helper.NewError("insert node", err)
	}

	l.log.Info("Created node for mention", slog.String("node_rid", node.RID.String()), slog.String("name", node.Name))

	return node, nil
}

// RecordLink persists an accepted resolution as an audit record. Only results
// with a best match and an action other than create can be recorded.
func (l *Linker) RecordLink(result *model.MatchResult, source string) (*model.Link, error) {
	if l.Links == nil {
		return nil, helper.NewError("record link", fmt.Errorf("no database behind this linker"))
	}
	if result == nil || result.BestMatch == nil {
		return nil, helper.NewError("record link", fmt.Errorf("match result has no best match"))
	}
	if result.SuggestedAction == model.ActionCreate {
		return nil, helper.NewError("record link", fmt.Errorf("cannot record a link for a create result"))
	}

	link := &model.Link{
		NodeRID:   result.BestMatch.Node.RID,
		Term:      result.InputTerm,
		Score:     result.BestMatch.Score,
		MatchType: result.BestMatch.MatchType,
		Source:    source,
		Metadata: model.Metadata{
			"matched_term": result.BestMatch.MatchedTerm,
			"action":       string(result.SuggestedAction),
		},
	}

	err := l.Links.InsertLink(link)
	if err != nil {
		return nil, helper.NewError("insert link", err)
	}

	return link, nil
}
