package model

// MatchType tags which strategy produced a candidate score.
type MatchType string

const (
	MatchTypeExact      MatchType = "exact"
	MatchTypeAlias      MatchType = "alias"
	MatchTypeFuzzy      MatchType = "fuzzy"
	MatchTypeFuzzyAlias MatchType = "fuzzy_alias"
	MatchTypePartial    MatchType = "partial"
)

// Action is the suggested follow-up for a match result.
type Action string

const (
	ActionLink   Action = "link"   // high confidence, safe for unattended linking
	ActionReview Action = "review" // a curator must confirm before linking
	ActionCreate Action = "create" // treat as a new entity
)

// MatchCandidate references one graph node together with the similarity
// score and the specific string that produced it.
type MatchCandidate struct {
	Node        *GraphNode `json:"node"`
	Score       float64    `json:"score"`
	MatchType   MatchType  `json:"match_type"`
	MatchedTerm string     `json:"matched_term"`
}

// MatchResult is the engine's output for one input term.
type MatchResult struct {
	InputTerm       string            `json:"input_term"`
	Found           bool              `json:"found"`
	Candidates      []*MatchCandidate `json:"candidates"`
	BestMatch       *MatchCandidate   `json:"best_match,omitempty"`
	SuggestedAction Action            `json:"suggested_action"`
}
