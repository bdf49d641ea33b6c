package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestedLabel(t *testing.T) {
	tests := []struct {
		entityType string
		expected   NodeLabel
	}{
		{"organization", LabelOrganization},
		{"tool", LabelTool},
		{"concept", LabelConcept},
		{"location", LabelLocation},
		{"product", LabelProduct},
		{"event", LabelEvent},
		{"person", LabelPerson},
		{"unknown", LabelConcept},
		{"", LabelConcept},
	}

	for _, test := range tests {
		t.Run("Type "+test.entityType, func(t *testing.T) {
			mention := Mention{Value: "x", EntityType: test.entityType}
			assert.Equal(t, test.expected, mention.SuggestedLabel())
		})
	}
}
