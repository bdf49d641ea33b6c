package model

import (
	"time"

	"github.com/google/uuid"
)

// Link is a persisted record of an accepted link suggestion: the term that
// matched, the node it was linked to and the score that justified it. Links
// are written by callers acting on a MatchResult, never by the engine.
type Link struct {
	ID        int64     `json:"id"`
	RID       uuid.UUID `json:"rid"`
	NodeRID   uuid.UUID `json:"node_rid"`
	Term      string    `json:"term"`
	Score     float64   `json:"score"`
	MatchType MatchType `json:"match_type"`
	Source    string    `json:"source,omitempty"` // document or transcript reference
	Metadata  Metadata  `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
