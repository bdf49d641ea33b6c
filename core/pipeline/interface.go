package pipeline

import (
	"github.com/siherrmann/linker/core/match"
	"github.com/siherrmann/linker/model"
)

// MentionExtractFunc extracts entity mentions from free text.
// Returns the raw mentions with their types and confidences.
type MentionExtractFunc func(text string) ([]model.Mention, error)

// Pipeline wraps a mention extractor and post-processes its output before it
// reaches the resolution engine.
type Pipeline struct {
	Extractor MentionExtractFunc
}

// NewPipeline creates a new extraction pipeline
func NewPipeline(extractor MentionExtractFunc) *Pipeline {
	return &Pipeline{
		Extractor: extractor,
	}
}

// Extract runs the extractor and merges duplicate mentions. Mentions that
// normalize to the same term are folded into one: occurrence counts add up,
// the highest confidence wins and the first-seen surface form is kept.
func (p *Pipeline) Extract(text string) ([]model.Mention, error) {
	raw, err := p.Extractor(text)
	if err != nil {
		return nil, err
	}

	var merged []model.Mention
	index := map[string]int{}
	for _, mention := range raw {
		key := match.Normalize(mention.Value)
		if key == "" {
			continue
		}

		count := mention.Mentions
		if count < 1 {
			count = 1
		}

		if i, ok := index[key]; ok {
			merged[i].Mentions += count
			if mention.Confidence > merged[i].Confidence {
				merged[i].Confidence = mention.Confidence
			}
			if merged[i].Description == "" {
				merged[i].Description = mention.Description
			}
			continue
		}

		mention.Mentions = count
		index[key] = len(merged)
		merged = append(merged, mention)
	}

	return merged, nil
}
