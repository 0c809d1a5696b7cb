package assessor

import (
	"strings"
	"testing"

	"go-image-quality/pkg/models"
)

func goodResults() map[string]models.MetricResult {
	results := make(map[string]models.MetricResult, len(models.MetricNames))
	for _, name := range models.MetricNames {
		results[name] = models.MetricResult{Quality: models.TierGood}
	}
	return results
}

func TestRecommend_NoIssues(t *testing.T) {
	a := newTestAssessor(t)

	recommendations := a.recommend(goodResults())

	if len(recommendations) != 1 {
		t.Fatalf("Expected single fallback recommendation, got %d", len(recommendations))
	}
	if recommendations[0] != noImprovementMessage {
		t.Errorf("Expected fallback message, got %q", recommendations[0])
	}
}

func TestRecommend_CanonicalOrder(t *testing.T) {
	a := newTestAssessor(t)

	results := goodResults()
	results["saturation"] = models.MetricResult{Quality: models.TierPoor, Score: 10}
	results["sharpness"] = models.MetricResult{Quality: models.TierFair, Score: 150}
	results["noise"] = models.MetricResult{Quality: models.TierPoor, Score: 30}

	recommendations := a.recommend(results)

	if len(recommendations) != 3 {
		t.Fatalf("Expected 3 recommendations, got %d: %v", len(recommendations), recommendations)
	}
	if !strings.Contains(recommendations[0], "sharpness") {
		t.Errorf("Expected sharpness advice first, got %q", recommendations[0])
	}
	if !strings.Contains(recommendations[1], "noise reduction") {
		t.Errorf("Expected noise advice second, got %q", recommendations[1])
	}
	if !strings.Contains(recommendations[2], "saturation") {
		t.Errorf("Expected saturation advice last, got %q", recommendations[2])
	}
}

func TestRecommend_ColorBalance(t *testing.T) {
	a := newTestAssessor(t)

	for _, tier := range []models.Tier{models.TierFair, models.TierPoor} {
		t.Run(tier.String(), func(t *testing.T) {
			results := goodResults()
			results["color_balance"] = models.MetricResult{Quality: tier, Score: 40}

			recommendations := a.recommend(results)
			if len(recommendations) != 1 {
				t.Fatalf("Expected 1 recommendation, got %d", len(recommendations))
			}
			if recommendations[0] != "Adjust white balance or apply color correction" {
				t.Errorf("Expected white balance advice, got %q", recommendations[0])
			}
		})
	}
}

func TestRecommend_BrightnessDirection(t *testing.T) {
	a := newTestAssessor(t)

	testCases := []struct {
		name    string
		score   float64
		wording string
	}{
		{"Dark image", 30, "Increase exposure"},
		{"Bright image", 235, "Reduce exposure"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results := goodResults()
			results["brightness"] = models.MetricResult{Quality: models.TierPoor, Score: tc.score}

			recommendations := a.recommend(results)
			if len(recommendations) != 1 {
				t.Fatalf("Expected 1 recommendation, got %d", len(recommendations))
			}
			if !strings.Contains(recommendations[0], tc.wording) {
				t.Errorf("Expected %q advice, got %q", tc.wording, recommendations[0])
			}
		})
	}
}

func TestRecommend_SaturationDirection(t *testing.T) {
	a := newTestAssessor(t)

	testCases := []struct {
		name    string
		score   float64
		wording string
	}{
		{"Washed out", 15, "Increase color saturation"},
		{"Oversaturated", 230, "Reduce saturation"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			results := goodResults()
			results["saturation"] = models.MetricResult{Quality: models.TierPoor, Score: tc.score}

			recommendations := a.recommend(results)
			if len(recommendations) != 1 {
				t.Fatalf("Expected 1 recommendation, got %d", len(recommendations))
			}
			if !strings.Contains(recommendations[0], tc.wording) {
				t.Errorf("Expected %q advice, got %q", tc.wording, recommendations[0])
			}
		})
	}
}

func TestRecommend_SkipsNotApplicable(t *testing.T) {
	a := newTestAssessor(t)

	results := goodResults()
	results["saturation"] = models.MetricResult{Quality: models.TierNotApplicable}
	results["color_balance"] = models.MetricResult{Quality: models.TierNotApplicable}

	recommendations := a.recommend(results)
	if len(recommendations) != 1 || recommendations[0] != noImprovementMessage {
		t.Errorf("Expected fallback message for NA-only issues, got %v", recommendations)
	}
}
