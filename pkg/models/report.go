package models

// MetricNames is the canonical evaluation order for the scored metrics.
// Recommendations and the text report follow this order, and the weight
// table is keyed by these names.
var MetricNames = []string{
	"sharpness",
	"brightness",
	"contrast",
	"noise",
	"color_balance",
	"saturation",
}

// ChannelMeans holds the per-channel mean intensities (0-255) recorded
// by the color balance evaluator.
type ChannelMeans struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// MetricResult is the outcome of a single metric evaluator. It is
// created once per evaluation and never mutated afterwards.
type MetricResult struct {
	// Score is the raw statistic on the metric's native scale,
	// rounded to two decimals.
	Score float64 `json:"score"`

	Quality     Tier   `json:"quality"`
	Description string `json:"description"`

	// Metric is the unit label shown next to the score, e.g.
	// "Laplacian Variance".
	Metric string `json:"metric"`

	// ChannelMeans is only set by the color balance evaluator.
	ChannelMeans *ChannelMeans `json:"channel_means,omitempty"`

	// Normalized maps the raw score onto a 0-100 scale consistent
	// with the tier bands (Excellent 90-100, Good 65-89, Fair 50-64,
	// Poor 0-49). Internal to the aggregator; not part of the stable
	// JSON shape.
	Normalized float64 `json:"-"`
}

// ResolutionResult describes resolution and detail richness. It carries
// no quality tier and is excluded from the weighted overall score.
type ResolutionResult struct {
	Resolution        string  `json:"resolution"`
	TotalPixels       int     `json:"total_pixels"`
	EdgeDensity       float64 `json:"edge_density"`
	ResolutionQuality string  `json:"resolution_quality"`
	DetailQuality     string  `json:"detail_quality"`
	Description       string  `json:"description"`
}

// OverallResult is the weighted blend of all applicable metric results.
type OverallResult struct {
	// Score is a percentage in [0,100], rounded to one decimal.
	Score   float64 `json:"score"`
	Quality Tier    `json:"quality"`
	Summary string  `json:"summary"`
}

// AssessmentReport aggregates everything produced for one image. It is
// constructed fresh per assessment; no state survives across images.
//
// The field names and nesting are a stable contract: the CLI printer,
// the web JSON responder and the HTML page all bind to this shape.
type AssessmentReport struct {
	Image           string                  `json:"image"`
	Overall         OverallResult           `json:"overall"`
	Metrics         map[string]MetricResult `json:"metrics"`
	Resolution      ResolutionResult        `json:"resolution"`
	Recommendations []string                `json:"recommendations"`
}
