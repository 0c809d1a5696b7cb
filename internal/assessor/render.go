package assessor

import (
	"fmt"
	"strings"

	"go-image-quality/pkg/models"
)

var metricHeadings = map[string]string{
	"sharpness":     "Sharpness",
	"brightness":    "Brightness",
	"contrast":      "Contrast",
	"noise":         "Noise",
	"color_balance": "Color Balance",
	"saturation":    "Saturation",
}

// RenderText formats a report as the fixed-section plain-text layout:
// header, overall score and summary, resolution, per-metric blocks,
// recommendations. Pure formatting; rendering the same report twice
// yields identical text.
func RenderText(report *models.AssessmentReport) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	divider := strings.Repeat("-", 40)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "IMAGE QUALITY ASSESSMENT REPORT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Image: %s\n", report.Image)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "OVERALL QUALITY: %s (%.1f%%)\n", report.Overall.Quality, report.Overall.Score)
	fmt.Fprintln(&b, report.Overall.Summary)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "DETAILED ANALYSIS:")
	fmt.Fprintln(&b, divider)

	fmt.Fprintln(&b, "Resolution & Detail:")
	fmt.Fprintf(&b, "  - %s\n", report.Resolution.Description)
	fmt.Fprintln(&b)

	for _, name := range models.MetricNames {
		result, ok := report.Metrics[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", metricHeadings[name])
		fmt.Fprintf(&b, "  - Quality: %s\n", result.Quality)
		if result.Quality.Applicable() {
			fmt.Fprintf(&b, "  - Score: %.2f (%s)\n", result.Score, result.Metric)
		}
		fmt.Fprintf(&b, "  - %s\n", result.Description)
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, "RECOMMENDATIONS:")
	fmt.Fprintln(&b, divider)
	for _, rec := range report.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	return b.String()
}
