package resolution

import (
	"context"

	"github.com/siherrmann/linker/model"
)

// StaticSource serves a fixed node slice as a NodeSource. It backs in-memory
// engines and tests that have no database behind them.
type StaticSource struct {
	nodes []*model.GraphNode
}

// NewStaticSource creates a source over the given nodes. The slice is used as
// is, callers hand over ownership.
func NewStaticSource(nodes []*model.GraphNode) *StaticSource {
	return &StaticSource{nodes: nodes}
}

// SelectNodesByLabels filters the static nodes by label allow-list and limit,
// mirroring the database handler's bulk load semantics. An empty label list
// matches everything.
func (s *StaticSource) SelectNodesByLabels(_ context.Context, labels []model.NodeLabel, limit int) ([]*model.GraphNode, error) {
	allowed := map[model.NodeLabel]bool{}
	for _, label := range labels {
		allowed[label] = true
	}

	var selected []*model.GraphNode
	for _, node := range s.nodes {
		if len(allowed) > 0 && node != nil && !allowed[node.Label] {
			continue
		}
		if limit > 0 && len(selected) >= limit {
			break
		}
		selected = append(selected, node)
	}
	return selected, nil
}
