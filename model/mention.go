package model

// Mention is a raw entity occurrence handed in by an extraction layer.
type Mention struct {
	Value       string  `json:"value"`
	EntityType  string  `json:"entity_type"` // organization, tool, concept, location, product, event, person
	Description string  `json:"description,omitempty"`
	Mentions    int     `json:"mentions"`
	Confidence  float64 `json:"confidence"`
}

var entityTypeLabels = map[string]NodeLabel{
	"organization": LabelOrganization,
	"tool":         LabelTool,
	"concept":      LabelConcept,
	"location":     LabelLocation,
	"product":      LabelProduct,
	"event":        LabelEvent,
	"person":       LabelPerson,
}

// SuggestedLabel returns the node label to use when a new node is created for
// this mention. Unrecognized types fall back to Concept.
func (m Mention) SuggestedLabel() NodeLabel {
	if label, ok := entityTypeLabels[m.EntityType]; ok {
		return label
	}
	return LabelConcept
}

// LinkedMention pairs a mention with the graph candidate it resolved to.
type LinkedMention struct {
	Mention Mention         `json:"mention"`
	Match   *MatchCandidate `json:"match"`
	Action  Action          `json:"action"`
}

// MentionLinkResult splits a batch of mentions into linked and unlinked sets.
type MentionLinkResult struct {
	Mentions []Mention        `json:"mentions"`
	Linked   []*LinkedMention `json:"linked"`
	Unlinked []Mention        `json:"unlinked"`
}
