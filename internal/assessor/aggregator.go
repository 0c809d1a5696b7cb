package assessor

import (
	"go-image-quality/pkg/models"
)

// Overall tier banding on the weighted percentage.
const (
	overallExcellent = 80.0
	overallGood      = 65.0
	overallFair      = 50.0
)

// Aggregator blends normalized metric scores into one weighted overall
// percentage. Constructing one with an invalid weight table fails
// immediately; per-image calls cannot fail.
type Aggregator struct {
	weights Weights
}

// NewAggregator validates the weight table and returns an aggregator.
func NewAggregator(weights Weights) (*Aggregator, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{weights: weights}, nil
}

// Combine computes the weighted overall score over the applicable
// metric results. Metrics marked NotApplicable are dropped and the
// remaining weights renormalized, so a grayscale image is still scored
// on the full 0-100 scale.
func (ag *Aggregator) Combine(results map[string]models.MetricResult) models.OverallResult {
	var weighted, totalWeight float64
	for _, name := range models.MetricNames {
		result, ok := results[name]
		if !ok || !result.Quality.Applicable() {
			continue
		}
		w := ag.weights.For(name)
		weighted += w * result.Normalized
		totalWeight += w
	}

	var percent float64
	if totalWeight > 0 {
		percent = weighted / totalWeight
	}
	percent = clamp(percent, 0, 100)

	var quality models.Tier
	var summary string
	switch {
	case percent >= overallExcellent:
		quality = models.TierExcellent
		summary = "This is a high-quality image with excellent technical characteristics."
	case percent >= overallGood:
		quality = models.TierGood
		summary = "This is a good quality image with minor areas for improvement."
	case percent >= overallFair:
		quality = models.TierFair
		summary = "This image has acceptable quality but would benefit from enhancement."
	default:
		quality = models.TierPoor
		summary = "This image has significant quality issues that should be addressed."
	}

	return models.OverallResult{
		Score:   round1(percent),
		Quality: quality,
		Summary: summary,
	}
}
