package pipeline

import (
	"fmt"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/siherrmann/linker/helper"
	"github.com/siherrmann/linker/model"
)

// DefaultMentionExtractor creates a mention extractor using a NER model
// Uses distilbert-NER for named entity recognition
// Detects: PERSON, ORGANIZATION, LOCATION, MISC entities
func DefaultMentionExtractor() (MentionExtractFunc, error) {
	// Prepare model (download if needed)
	// Using KnightsAnalytics optimized distilbert-NER model
	modelName := "KnightsAnalytics/distilbert-NER"
	modelPath, err := helper.PrepareModel(modelName, "model.onnx")
	if err != nil {
		return nil, err
	}

	// Initialize hugot session with Go backend
	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create hugot session: %w", err)
	}

	// Create token classification pipeline for NER
	config := hugot.TokenClassificationConfig{
		ModelPath: modelPath,
		Name:      "ner-pipeline",
		Options: []hugot.TokenClassificationOption{
			pipelines.WithSimpleAggregation(),
			pipelines.WithIgnoreLabels([]string{"O"}), // Ignore non-entity tokens
		},
	}
	nerPipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		if destroyErr := session.Destroy(); destroyErr != nil {
			return nil, fmt.Errorf("failed to create NER pipeline: %w (cleanup error: %v)", err, destroyErr)
		}
		return nil, fmt.Errorf("failed to create NER pipeline: %w", err)
	}

	return func(text string) ([]model.Mention, error) {
		// Run NER on the text
		result, err := nerPipeline.RunPipeline([]string{text})
		if err != nil {
			return nil, fmt.Errorf("failed to run NER: %w", err)
		}

		if len(result.Entities) == 0 {
			return nil, nil
		}

		// Convert NER results to mentions
		var mentions []model.Mention
		for _, entity := range result.Entities[0] {
			mentions = append(mentions, model.Mention{
				Value:      strings.TrimSpace(entity.Word),
				EntityType: mentionEntityType(entity.Entity),
				Mentions:   1,
				Confidence: float64(entity.Score),
			})
		}

		return mentions, nil
	}, nil
}

// mentionEntityType maps BIO-tagged NER labels to the mention taxonomy.
func mentionEntityType(label string) string {
	// Remove BIO tagging prefixes (B- for beginning, I- for inside)
	label = strings.TrimPrefix(label, "B-")
	label = strings.TrimPrefix(label, "I-")

	switch label {
	case "PER":
		return "person"
	case "ORG":
		return "organization"
	case "LOC":
		return "location"
	default:
		return "concept"
	}
}
