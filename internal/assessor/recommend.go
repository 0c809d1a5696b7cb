package assessor

import (
	"go-image-quality/pkg/models"
)

// noImprovementMessage is emitted when no metric needs attention.
const noImprovementMessage = "Image quality is good - no major improvements needed"

// recommend emits one fixed suggestion per metric whose tier is Fair or
// Poor, in canonical metric order. Brightness and saturation advice is
// direction-aware. Fully deterministic given the metric results.
func (a *Assessor) recommend(results map[string]models.MetricResult) []string {
	t := a.thresholds
	var recommendations []string

	for _, name := range models.MetricNames {
		result, ok := results[name]
		if !ok || !result.Quality.NeedsImprovement() {
			continue
		}

		switch name {
		case "sharpness":
			recommendations = append(recommendations,
				"Consider using a tripod or faster shutter speed to improve sharpness")
		case "brightness":
			if result.Score < t.BrightnessIdealLow {
				recommendations = append(recommendations,
					"Increase exposure or adjust shadows to brighten the image")
			} else {
				recommendations = append(recommendations,
					"Reduce exposure or adjust highlights to prevent overexposure")
			}
		case "contrast":
			recommendations = append(recommendations,
				"Enhance contrast using curves or levels adjustment")
		case "noise":
			recommendations = append(recommendations,
				"Apply noise reduction or use lower ISO settings when capturing")
		case "color_balance":
			recommendations = append(recommendations,
				"Adjust white balance or apply color correction")
		case "saturation":
			if result.Score < t.SaturationGoodLow {
				recommendations = append(recommendations,
					"Increase color saturation for more vibrant appearance")
			} else {
				recommendations = append(recommendations,
					"Reduce saturation for more natural color appearance")
			}
		}
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, noImprovementMessage)
	}
	return recommendations
}
