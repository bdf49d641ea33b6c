package match

import (
	"sort"

	"github.com/siherrmann/linker/model"
)

// Ranker evaluates a query term against a set of graph nodes using tiered
// matching strategies in precedence order: exact name, exact alias, fuzzy
// name, fuzzy alias and partial containment.
type Ranker struct {
	config *model.MatchConfig
}

// NewRanker creates a ranker with the given configuration.
func NewRanker(config *model.MatchConfig) *Ranker {
	return &Ranker{config: config}
}

// Rank scores every node against the term and returns the candidates that
// clear the inclusion threshold, best first, capped at TopK. Equal scores
// preserve the graph load order.
func (r *Ranker) Rank(term string, nodes []*model.GraphNode) []*model.MatchCandidate {
	normalized := Normalize(term)
	if normalized == "" {
		return nil
	}

	var candidates []*model.MatchCandidate
	for _, node := range nodes {
		if candidate := r.scoreNode(term, normalized, node); candidate != nil {
			candidates = append(candidates, candidate)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > r.config.TopK {
		candidates = candidates[:r.config.TopK]
	}

	return candidates
}

// scoreNode runs the match tiers for a single node. Cheap exact checks run
// first and can short-circuit the fuzzy tiers, a later tier only replaces an
// earlier score when it is strictly higher, so a node's score never regresses.
func (r *Ranker) scoreNode(term, normalized string, node *model.GraphNode) *model.MatchCandidate {
	best := 0.0
	bestType := model.MatchType("")
	matchedTerm := ""

	// 1. Exact match on the canonical name
	if Normalize(node.CompareName()) == normalized {
		best = 1.0
		bestType = model.MatchTypeExact
		matchedTerm = node.CompareName()
	}

	// 2. Exact match on aliases, capped below a literal name match
	if best < 1.0 {
		for _, alias := range node.Aliases {
			if Normalize(alias) == normalized {
				best = r.config.AliasScore
				bestType = model.MatchTypeAlias
				matchedTerm = alias
				break
			}
		}
	}

	// 3. Fuzzy match on the canonical name
	if best < r.config.FuzzyCutoff {
		fuzzy := FuzzyScore(term, node.CompareName())
		if fuzzy >= r.config.FuzzyThreshold && fuzzy > best {
			best = fuzzy
			bestType = model.MatchTypeFuzzy
			matchedTerm = node.CompareName()
		}
	}

	// 4. Fuzzy match on aliases
	if best < r.config.FuzzyCutoff {
		for _, alias := range node.Aliases {
			fuzzy := FuzzyScore(term, alias)
			if fuzzy >= r.config.FuzzyThreshold && fuzzy > best {
				best = fuzzy
				bestType = model.MatchTypeFuzzyAlias
				matchedTerm = alias
			}
		}
	}

	// 5. Partial containment on the canonical name
	if best < r.config.FuzzyThreshold {
		partial := PartialScore(term, node.CompareName())
		if partial >= r.config.PartialThreshold && partial > best {
			best = partial
			bestType = model.MatchTypePartial
			matchedTerm = node.CompareName()
		}
	}

	if best < r.config.PartialThreshold {
		return nil
	}

	return &model.MatchCandidate{
		Node:        node,
		Score:       best,
		MatchType:   bestType,
		MatchedTerm: matchedTerm,
	}
}
