package assessor

import (
	"testing"

	apperrors "go-image-quality/internal/errors"
	"go-image-quality/pkg/models"
)

func applicableResults(normalized float64) map[string]models.MetricResult {
	results := make(map[string]models.MetricResult, len(models.MetricNames))
	for _, name := range models.MetricNames {
		results[name] = models.MetricResult{Quality: models.TierGood, Normalized: normalized}
	}
	return results
}

func TestNewAggregator_RejectsInvalidWeights(t *testing.T) {
	testCases := []struct {
		name    string
		weights Weights
	}{
		{"Sum below one", Weights{Sharpness: 0.25, Brightness: 0.15, Contrast: 0.20, Noise: 0.15, ColorBalance: 0.10, Saturation: 0.05}},
		{"Sum above one", Weights{Sharpness: 0.25, Brightness: 0.15, Contrast: 0.20, Noise: 0.15, ColorBalance: 0.10, Saturation: 0.25}},
		{"Negative weight", Weights{Sharpness: -0.10, Brightness: 0.25, Contrast: 0.25, Noise: 0.20, ColorBalance: 0.20, Saturation: 0.20}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAggregator(tc.weights)
			if err == nil {
				t.Fatal("Expected configuration error, got nil")
			}
			if !apperrors.IsType(err, apperrors.ErrorTypeConfiguration) {
				t.Errorf("Expected configuration error type, got %v", err)
			}
		})
	}
}

func TestNewAggregator_AcceptsDefaultWeights(t *testing.T) {
	if _, err := NewAggregator(DefaultWeights()); err != nil {
		t.Fatalf("Expected default weights to validate, got %v", err)
	}
}

func TestCombine_Bounds(t *testing.T) {
	ag, err := NewAggregator(DefaultWeights())
	if err != nil {
		t.Fatalf("Failed to create aggregator: %v", err)
	}

	testCases := []struct {
		name       string
		normalized float64
		expected   float64
		tier       models.Tier
	}{
		{"All zero", 0, 0, models.TierPoor},
		{"All perfect", 100, 100, models.TierExcellent},
		{"All at fair boundary", 50, 50, models.TierFair},
		{"All at good boundary", 65, 65, models.TierGood},
		{"All at excellent boundary", 80, 80, models.TierExcellent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			overall := ag.Combine(applicableResults(tc.normalized))
			if overall.Score != tc.expected {
				t.Errorf("Expected score %f, got %f", tc.expected, overall.Score)
			}
			if overall.Quality != tc.tier {
				t.Errorf("Expected tier %s, got %s", tc.tier, overall.Quality)
			}
			if overall.Summary == "" {
				t.Error("Expected non-empty summary")
			}
		})
	}
}

func TestCombine_Monotonicity(t *testing.T) {
	ag, err := NewAggregator(DefaultWeights())
	if err != nil {
		t.Fatalf("Failed to create aggregator: %v", err)
	}

	low := applicableResults(60)
	high := applicableResults(60)
	high["sharpness"] = models.MetricResult{Quality: models.TierGood, Normalized: 80}

	if ag.Combine(high).Score <= ag.Combine(low).Score {
		t.Error("Expected overall score to increase when one metric improves")
	}
}

func TestCombine_RenormalizesNotApplicable(t *testing.T) {
	ag, err := NewAggregator(DefaultWeights())
	if err != nil {
		t.Fatalf("Failed to create aggregator: %v", err)
	}

	// Grayscale case: saturation and color balance drop out. The four
	// remaining metrics all sit at 70, so the renormalized overall must
	// stay exactly 70 instead of sagging toward zero.
	results := applicableResults(70)
	results["saturation"] = models.MetricResult{Quality: models.TierNotApplicable}
	results["color_balance"] = models.MetricResult{Quality: models.TierNotApplicable}

	overall := ag.Combine(results)
	if overall.Score != 70 {
		t.Errorf("Expected renormalized score 70, got %f", overall.Score)
	}
	if overall.Quality != models.TierGood {
		t.Errorf("Expected Good tier, got %s", overall.Quality)
	}
}

func TestCombine_AllNotApplicable(t *testing.T) {
	ag, err := NewAggregator(DefaultWeights())
	if err != nil {
		t.Fatalf("Failed to create aggregator: %v", err)
	}

	results := make(map[string]models.MetricResult)
	for _, name := range models.MetricNames {
		results[name] = models.MetricResult{Quality: models.TierNotApplicable}
	}

	overall := ag.Combine(results)
	if overall.Score != 0 {
		t.Errorf("Expected zero score with no applicable metrics, got %f", overall.Score)
	}
	if overall.Quality != models.TierPoor {
		t.Errorf("Expected Poor tier, got %s", overall.Quality)
	}
}

func TestWeightsFor_UnknownMetric(t *testing.T) {
	if w := DefaultWeights().For("banana"); w != 0 {
		t.Errorf("Expected zero weight for unknown metric, got %f", w)
	}
}
