package resolution

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/siherrmann/linker/core/match"
	"github.com/siherrmann/linker/helper"
	"github.com/siherrmann/linker/model"
)

// Engine resolves mention terms against the cached knowledge graph. It is the
// single entry point for matching: one engine, one cache, one configuration.
type Engine struct {
	cache  *NodeCache
	ranker *match.Ranker
	config *model.MatchConfig
	log    *slog.Logger
}

// NewEngine creates an engine over the given node source. A nil config falls
// back to the default calibration, a nil logger to a pretty stderr logger.
func NewEngine(source NodeSource, config *model.MatchConfig, logger *slog.Logger) *Engine {
	if config == nil {
		defaultConfig := model.DefaultMatchConfig()
		config = &defaultConfig
	}
	if logger == nil {
		logger = slog.New(helper.NewPrettyHandler(os.Stderr, helper.PrettyHandlerOptions{
			SlogOpts: slog.HandlerOptions{Level: slog.LevelInfo},
		}))
	}

	return &Engine{
		cache:  NewNodeCache(source, config.Labels, config.NodeLimit, logger),
		ranker: match.NewRanker(config),
		config: config,
		log:    logger,
	}
}

// Match resolves one term against the graph. The cache is loaded lazily on
// first use, a blank term short-circuits to a create result without touching
// the cache.
func (e *Engine) Match(ctx context.Context, term string) (*model.MatchResult, error) {
	if strings.TrimSpace(term) == "" {
		return e.emptyResult(term), nil
	}

	if err := e.cache.Ensure(ctx); err != nil {
		return nil, err
	}

	return e.matchLoaded(term), nil
}

// MatchBatch resolves every term in order against one cache generation. The
// result slice is index-aligned with the input.
func (e *Engine) MatchBatch(ctx context.Context, terms []string) ([]*model.MatchResult, error) {
	if err := e.cache.Ensure(ctx); err != nil {
		return nil, err
	}

	results := make([]*model.MatchResult, 0, len(terms))
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			results = append(results, e.emptyResult(term))
			continue
		}
		results = append(results, e.matchLoaded(term))
	}
	return results, nil
}

// LinkMentions resolves extracted mentions and splits them by outcome. A
// mention counts as linked when its best candidate clears the review band,
// everything else lands in Unlinked and is a candidate for node creation.
func (e *Engine) LinkMentions(ctx context.Context, mentions []model.Mention) (*model.MentionLinkResult, error) {
	if err := e.cache.Ensure(ctx); err != nil {
		return nil, err
	}

	result := &model.MentionLinkResult{
		Mentions: mentions,
		Linked:   []*model.LinkedMention{},
		Unlinked: []model.Mention{},
	}

	for _, mention := range mentions {
		matchResult := e.matchLoaded(mention.Value)
		if matchResult.Found && matchResult.SuggestedAction != model.ActionCreate {
			result.Linked = append(result.Linked, &model.LinkedMention{
				Mention: mention,
				Match:   matchResult.BestMatch,
				Action:  matchResult.SuggestedAction,
			})
			continue
		}
		result.Unlinked = append(result.Unlinked, mention)
	}

	e.log.Debug("linked mentions", slog.Int("linked", len(result.Linked)), slog.Int("unlinked", len(result.Unlinked)))
	return result, nil
}

func (e *Engine) matchLoaded(term string) *model.MatchResult {
	candidates := e.ranker.Rank(term, e.cache.Nodes())
	if len(candidates) == 0 {
		return e.emptyResult(term)
	}

	return &model.MatchResult{
		InputTerm:       term,
		Found:           true,
		Candidates:      candidates,
		BestMatch:       candidates[0],
		SuggestedAction: match.SuggestAction(candidates[0], e.config),
	}
}

func (e *Engine) emptyResult(term string) *model.MatchResult {
	return &model.MatchResult{
		InputTerm:       term,
		Found:           false,
		Candidates:      []*model.MatchCandidate{},
		SuggestedAction: model.ActionCreate,
	}
}

// Reload forces a fresh snapshot from the source. On failure the previous
// generation keeps serving.
func (e *Engine) Reload(ctx context.Context) error {
	if err := e.cache.Load(ctx); err != nil {
		return helper.NewError("reload graph nodes", err)
	}
	return nil
}

// Invalidate marks the cache stale, the next match loads a fresh snapshot.
func (e *Engine) Invalidate() {
	e.cache.Invalidate()
}

// IsLoaded reports whether the cache currently holds a completed load.
func (e *Engine) IsLoaded() bool {
	return e.cache.IsLoaded()
}

// CachedNodes returns up to limit nodes from the current snapshot, all of
// them for limit <= 0. The returned slice is a copy and safe to mutate.
func (e *Engine) CachedNodes(limit int) []*model.GraphNode {
	nodes := e.cache.Nodes()
	if limit > 0 && len(nodes) > limit {
		nodes = nodes[:limit]
	}
	copied := make([]*model.GraphNode, len(nodes))
	copy(copied, nodes)
	return copied
}
