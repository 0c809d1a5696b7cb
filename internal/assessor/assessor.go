// Package assessor implements the image quality assessment engine:
// seven statistical metric evaluators over a decoded raster, a weighted
// aggregator, a recommendation generator and a report renderer.
//
// Evaluators are pure functions of the raster planes, independent of
// one another and of call order. All tunable state (threshold table,
// weight table) is fixed and validated at construction, so a single
// Assessor is safe to share across concurrent assessments.
package assessor

import (
	"image"
	"math"

	"go-image-quality/pkg/models"
)

// Assessor runs the full assessment pipeline over a decoded image.
type Assessor struct {
	thresholds Thresholds
	aggregator *Aggregator
}

// New builds an assessor from explicit threshold and weight tables.
// Invalid configuration fails here, never during per-image calls.
func New(thresholds Thresholds, weights Weights) (*Assessor, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	aggregator, err := NewAggregator(weights)
	if err != nil {
		return nil, err
	}
	return &Assessor{
		thresholds: thresholds,
		aggregator: aggregator,
	}, nil
}

// NewDefault builds an assessor with the standard thresholds and
// weights.
func NewDefault() (*Assessor, error) {
	return New(DefaultThresholds(), DefaultWeights())
}

// Assess evaluates every metric over the image, blends the overall
// score and derives the recommendations. The name identifies the image
// in the report (typically a file name). The only failure mode is a
// malformed or empty raster.
func (a *Assessor) Assess(img image.Image, name string) (*models.AssessmentReport, error) {
	p, err := extractPlanes(img)
	if err != nil {
		return nil, err
	}

	metrics := map[string]models.MetricResult{
		"sharpness":     a.evaluateSharpness(p),
		"brightness":    a.evaluateBrightness(p),
		"contrast":      a.evaluateContrast(p),
		"noise":         a.evaluateNoise(p),
		"color_balance": a.evaluateColorBalance(p),
		"saturation":    a.evaluateSaturation(p),
	}

	report := &models.AssessmentReport{
		Image:           name,
		Overall:         a.aggregator.Combine(metrics),
		Metrics:         metrics,
		Resolution:      a.evaluateResolution(p),
		Recommendations: a.recommend(metrics),
	}
	return report, nil
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func maxOf(values ...float64) float64 {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
