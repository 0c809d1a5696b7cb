package assessor

import (
	"fmt"
	"math"

	apperrors "go-image-quality/internal/errors"
)

// Thresholds is the tier-boundary table for every metric. It is built
// once at startup, validated, and treated as read-only afterwards, so
// it is safe to share across concurrent assessments without locking.
//
// Boundary values resolve to the higher (better) tier: a Laplacian
// variance of exactly 500 is Excellent, a noise estimate of exactly 5
// is Excellent.
type Thresholds struct {
	// Sharpness: variance of the Laplacian-filtered grayscale image.
	SharpnessExcellent float64
	SharpnessGood      float64
	SharpnessFair      float64
	// SharpnessCeiling caps the normalization ramp above the Excellent
	// boundary. Values at or beyond it normalize to 100.
	SharpnessCeiling float64

	// Brightness: mean grayscale intensity on the 0-255 scale, scored
	// by nested ideal/acceptable/marginal bands.
	BrightnessIdealLow, BrightnessIdealHigh float64
	BrightnessGoodLow, BrightnessGoodHigh   float64
	BrightnessFairLow, BrightnessFairHigh   float64

	// Contrast: population standard deviation of grayscale intensity.
	ContrastExcellent float64
	ContrastGood      float64
	ContrastFair      float64
	ContrastCeiling   float64

	// Noise: mean absolute difference between the grayscale image and
	// its Gaussian-blurred version. Lower is better.
	NoiseExcellent float64
	NoiseGood      float64
	NoiseFair      float64
	NoiseFloor     float64

	// Color balance: maximum deviation of any channel mean from the
	// average of the three channel means. Lower is better.
	BalanceExcellent float64
	BalanceGood      float64
	BalanceFair      float64
	BalanceFloor     float64

	// Saturation: mean HSV saturation on the 0-255 scale, scored by
	// nested bands like brightness.
	SaturationIdealLow, SaturationIdealHigh float64
	SaturationGoodLow, SaturationGoodHigh   float64
	SaturationFairLow, SaturationFairHigh   float64

	// Resolution categories (pixel counts) and detail richness
	// (edge density). Advisory only; no tier.
	HighResolutionPixels   int
	MediumResolutionPixels int
	RichDetailDensity      float64
	ModerateDetailDensity  float64
}

// DefaultThresholds returns the standard tier boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SharpnessExcellent: 500,
		SharpnessGood:      200,
		SharpnessFair:      100,
		SharpnessCeiling:   2000,

		BrightnessIdealLow: 80, BrightnessIdealHigh: 180,
		BrightnessGoodLow: 60, BrightnessGoodHigh: 200,
		BrightnessFairLow: 40, BrightnessFairHigh: 220,

		ContrastExcellent: 60,
		ContrastGood:      40,
		ContrastFair:      25,
		ContrastCeiling:   100,

		NoiseExcellent: 5,
		NoiseGood:      10,
		NoiseFair:      20,
		NoiseFloor:     50,

		BalanceExcellent: 10,
		BalanceGood:      20,
		BalanceFair:      35,
		BalanceFloor:     170,

		SaturationIdealLow: 80, SaturationIdealHigh: 150,
		SaturationGoodLow: 60, SaturationGoodHigh: 180,
		SaturationFairLow: 40, SaturationFairHigh: 200,

		HighResolutionPixels:   8_000_000,
		MediumResolutionPixels: 2_000_000,
		RichDetailDensity:      0.1,
		ModerateDetailDensity:  0.05,
	}
}

// Validate checks internal consistency of the threshold table.
func (t Thresholds) Validate() error {
	type chain struct {
		name    string
		ordered bool
	}
	checks := []chain{
		{"sharpness", t.SharpnessFair < t.SharpnessGood && t.SharpnessGood < t.SharpnessExcellent && t.SharpnessExcellent < t.SharpnessCeiling},
		{"contrast", t.ContrastFair < t.ContrastGood && t.ContrastGood < t.ContrastExcellent && t.ContrastExcellent < t.ContrastCeiling},
		{"noise", 0 < t.NoiseExcellent && t.NoiseExcellent < t.NoiseGood && t.NoiseGood < t.NoiseFair && t.NoiseFair < t.NoiseFloor},
		{"color balance", 0 < t.BalanceExcellent && t.BalanceExcellent < t.BalanceGood && t.BalanceGood < t.BalanceFair && t.BalanceFair < t.BalanceFloor},
		{"brightness", t.BrightnessFairLow < t.BrightnessGoodLow && t.BrightnessGoodLow < t.BrightnessIdealLow &&
			t.BrightnessIdealLow < t.BrightnessIdealHigh &&
			t.BrightnessIdealHigh < t.BrightnessGoodHigh && t.BrightnessGoodHigh < t.BrightnessFairHigh},
		{"saturation", t.SaturationFairLow < t.SaturationGoodLow && t.SaturationGoodLow < t.SaturationIdealLow &&
			t.SaturationIdealLow < t.SaturationIdealHigh &&
			t.SaturationIdealHigh < t.SaturationGoodHigh && t.SaturationGoodHigh < t.SaturationFairHigh},
		{"resolution", t.MediumResolutionPixels > 0 && t.MediumResolutionPixels < t.HighResolutionPixels &&
			t.ModerateDetailDensity > 0 && t.ModerateDetailDensity < t.RichDetailDensity},
	}
	for _, c := range checks {
		if !c.ordered {
			return apperrors.NewConfigurationError(
				fmt.Sprintf("%s thresholds are not strictly ordered", c.name), nil)
		}
	}
	return nil
}

// Weights blends the normalized metric scores into the overall
// percentage. The weights must sum to 1.0.
type Weights struct {
	Sharpness    float64
	Brightness   float64
	Contrast     float64
	Noise        float64
	ColorBalance float64
	Saturation   float64
}

// DefaultWeights returns the standard weight table.
func DefaultWeights() Weights {
	return Weights{
		Sharpness:    0.25,
		Brightness:   0.15,
		Contrast:     0.20,
		Noise:        0.15,
		ColorBalance: 0.10,
		Saturation:   0.15,
	}
}

// For returns the weight assigned to a canonical metric name.
func (w Weights) For(name string) float64 {
	switch name {
	case "sharpness":
		return w.Sharpness
	case "brightness":
		return w.Brightness
	case "contrast":
		return w.Contrast
	case "noise":
		return w.Noise
	case "color_balance":
		return w.ColorBalance
	case "saturation":
		return w.Saturation
	default:
		return 0
	}
}

// Validate checks that no weight is negative and that the table sums
// to 1.0 within floating point tolerance.
func (w Weights) Validate() error {
	values := []float64{w.Sharpness, w.Brightness, w.Contrast, w.Noise, w.ColorBalance, w.Saturation}
	sum := 0.0
	for _, v := range values {
		if v < 0 {
			return apperrors.NewConfigurationError("metric weights must not be negative", nil)
		}
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return apperrors.NewConfigurationError(
			fmt.Sprintf("metric weights must sum to 1.0 (got %.4f)", sum), nil)
	}
	return nil
}
