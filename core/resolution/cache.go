package resolution

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/siherrmann/linker/helper"
	"github.com/siherrmann/linker/model"
)

// NodeSource supplies the graph nodes the cache matches against. The database
// handler implements this, tests usually pass a StaticSource.
type NodeSource interface {
	SelectNodesByLabels(ctx context.Context, labels []model.NodeLabel, limit int) ([]*model.GraphNode, error)
}

// generation is one immutable snapshot of the loaded graph. Readers get the
// whole generation through a single atomic pointer load, so a reload never
// exposes a half-swapped node list.
type generation struct {
	nodes  []*model.GraphNode
	loaded bool
}

// NodeCache holds the in-memory projection of the knowledge graph. Loads are
// serialized by a mutex, reads are lock-free against the current generation.
type NodeCache struct {
	source  NodeSource
	labels  []model.NodeLabel
	limit   int
	log     *slog.Logger
	current atomic.Pointer[generation]
	mu      sync.Mutex
}

// NewNodeCache creates an unloaded cache. A nil source is allowed and leads to
// a degraded cache that loads empty, every term then resolves to create.
func NewNodeCache(source NodeSource, labels []model.NodeLabel, limit int, logger *slog.Logger) *NodeCache {
	cache := &NodeCache{
		source: source,
		labels: labels,
		limit:  limit,
		log:    logger,
	}
	cache.current.Store(&generation{nodes: []*model.GraphNode{}})
	return cache
}

// Load fetches a fresh snapshot from the source and swaps it in atomically.
// On failure the previous generation stays in place and keeps serving reads.
func (c *NodeCache) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked(ctx)
}

// Ensure loads the cache once if it has never been loaded. Concurrent callers
// block on the load mutex and find the cache loaded when they acquire it.
func (c *NodeCache) Ensure(ctx context.Context) error {
	if c.current.Load().loaded {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current.Load().loaded {
		return nil
	}
	return c.loadLocked(ctx)
}

func (c *NodeCache) loadLocked(ctx context.Context) error {
	if c.source == nil {
		c.log.Warn("node cache has no source, matching against an empty graph")
		c.current.Store(&generation{nodes: []*model.GraphNode{}, loaded: true})
		return nil
	}

	nodes, err := c.source.SelectNodesByLabels(ctx, c.labels, c.limit)
	if err != nil {
		return helper.NewError("load graph nodes", err)
	}

	valid := make([]*model.GraphNode, 0, len(nodes))
	for _, node := range nodes {
		if node == nil || node.Name == "" {
			c.log.Warn("dropping nameless graph node", slog.Int64("id", nodeID(node)))
			continue
		}
		if node.Aliases == nil {
			node.Aliases = []string{}
		}
		valid = append(valid, node)
	}

	c.current.Store(&generation{nodes: valid, loaded: true})
	c.log.Debug("node cache loaded", slog.Int("nodes", len(valid)))
	return nil
}

// IsLoaded reports whether any load has completed since creation or the last
// Invalidate.
func (c *NodeCache) IsLoaded() bool {
	return c.current.Load().loaded
}

// Nodes returns the current snapshot. Callers must not mutate the slice.
func (c *NodeCache) Nodes() []*model.GraphNode {
	return c.current.Load().nodes
}

// Invalidate marks the cache unloaded while keeping the current nodes in
// place, so reads stay consistent until the next Ensure or Load.
func (c *NodeCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	current := c.current.Load()
	c.current.Store(&generation{nodes: current.nodes})
}

func nodeID(node *model.GraphNode) int64 {
	if node == nil {
		return 0
	}
	return node.ID
}
