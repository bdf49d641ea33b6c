package model

import (
	"time"

	"github.com/google/uuid"
)

// NodeLabel is the label taxonomy of the knowledge graph.
type NodeLabel string

const (
	LabelOrganization        NodeLabel = "Organization"
	LabelTool                NodeLabel = "Tool"
	LabelConcept             NodeLabel = "Concept"
	LabelProduct             NodeLabel = "Product"
	LabelPerson              NodeLabel = "Person"
	LabelExternalParticipant NodeLabel = "ExternalParticipant"
	LabelLocation            NodeLabel = "Location"
	LabelEvent               NodeLabel = "Event"
)

// DefaultLabels returns the label allow-list loaded into the node cache by
// default. Location and Event exist in the taxonomy for newly created nodes
// but are not matched against.
func DefaultLabels() []NodeLabel {
	return []NodeLabel{
		LabelOrganization,
		LabelTool,
		LabelConcept,
		LabelProduct,
		LabelPerson,
		LabelExternalParticipant,
	}
}

// GraphNode is a cached projection of a persisted graph entity. Name is
// always non-empty, nodes without a name are dropped at load time. A node is
// immutable within a cache generation and replaced wholesale on reload.
type GraphNode struct {
	ID            int64     `json:"id"`
	RID           uuid.UUID `json:"rid"`
	Label         NodeLabel `json:"label"`
	Name          string    `json:"name"`
	CanonicalName string    `json:"canonical_name,omitempty"`
	Aliases       []string  `json:"aliases"`
	Context       string    `json:"context,omitempty"` // description only, never scored
	Metadata      Metadata  `json:"metadata,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CompareName returns the canonical name if set, otherwise the display name.
// All matching runs against this string.
func (n *GraphNode) CompareName() string {
	if n.CanonicalName != "" {
		return n.CanonicalName
	}
	return n.Name
}
