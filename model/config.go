package model

// MatchConfig controls candidate inclusion thresholds, tier guards and the
// downstream action bands. Inclusion thresholds (FuzzyThreshold,
// PartialThreshold) decide which candidates are reported at all, the action
// bands (LinkThreshold, ReviewThreshold) decide what happens to the best one.
// The two sets are independent knobs.
type MatchConfig struct {
	// Candidate inclusion parameters
	FuzzyThreshold   float64 `json:"fuzzy_threshold"`   // minimum fuzzy similarity to keep a candidate
	PartialThreshold float64 `json:"partial_threshold"` // minimum containment score to keep a candidate

	// Tier guards
	AliasScore  float64 `json:"alias_score"`  // fixed score for exact alias matches, below 1.0 so a name match always outranks
	FuzzyCutoff float64 `json:"fuzzy_cutoff"` // skip the fuzzy tiers once a node's score reaches this

	// Action bands
	LinkThreshold   float64 `json:"link_threshold"`   // best score >= this suggests link
	ReviewThreshold float64 `json:"review_threshold"` // best score >= this suggests review

	// Result shape
	TopK int `json:"top_k"`

	// Cache load parameters
	Labels    []NodeLabel `json:"labels,omitempty"` // label allow-list for the bulk load
	NodeLimit int         `json:"node_limit"`       // page-size bound on the bulk load
}

// DefaultMatchConfig returns the calibration used by the original curation
// workflow. The constants are configuration defaults, not derived from any
// measured optimum.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		FuzzyThreshold:   0.7,
		PartialThreshold: 0.6,
		AliasScore:       0.95,
		FuzzyCutoff:      0.9,
		LinkThreshold:    0.9,
		ReviewThreshold:  0.7,
		TopK:             5,
		Labels:           DefaultLabels(),
		NodeLimit:        1000,
	}
}
