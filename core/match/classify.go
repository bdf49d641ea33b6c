package match

import "github.com/siherrmann/linker/model"

// SuggestAction maps the best candidate score to the downstream action. The
// bands are independent of the inclusion thresholds: they decide what happens
// to a reported candidate, not whether it is reported.
func SuggestAction(best *model.MatchCandidate, config *model.MatchConfig) model.Action {
	if best == nil {
		return model.ActionCreate
	}

	switch {
	case best.Score >= config.LinkThreshold:
		return model.ActionLink
	case best.Score >= config.ReviewThreshold:
		return model.ActionReview
	default:
		return model.ActionCreate
	}
}
