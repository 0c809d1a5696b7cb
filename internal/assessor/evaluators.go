package assessor

import (
	"fmt"
	"strings"

	"go-image-quality/pkg/models"
)

// Normalized tier bands. Every normalized score lands inside the band
// of its tier: Excellent [90,100], Good [65,90), Fair [50,65),
// Poor [0,50).
const (
	bandFairLow      = 50.0
	bandGoodLow      = 65.0
	bandExcellentLow = 90.0
)

func (a *Assessor) evaluateSharpness(p *planes) models.MetricResult {
	t := a.thresholds
	score := laplacianVariance(p.gray, p.width, p.height)

	var quality models.Tier
	var description string
	switch {
	case score >= t.SharpnessExcellent:
		quality = models.TierExcellent
		description = "The image is very sharp with crisp details and clear edges."
	case score >= t.SharpnessGood:
		quality = models.TierGood
		description = "The image has good sharpness with most details clearly visible."
	case score >= t.SharpnessFair:
		quality = models.TierFair
		description = "The image has moderate sharpness but some details may appear soft."
	default:
		quality = models.TierPoor
		description = "The image appears blurry or out of focus with poor detail definition."
	}

	return models.MetricResult{
		Score:       round2(score),
		Quality:     quality,
		Description: description,
		Metric:      "Laplacian Variance",
		Normalized:  normalizeHigherBetter(score, t.SharpnessFair, t.SharpnessGood, t.SharpnessExcellent, t.SharpnessCeiling),
	}
}

func (a *Assessor) evaluateBrightness(p *planes) models.MetricResult {
	t := a.thresholds
	mean, _ := meanStdDev(p.gray)

	var quality models.Tier
	var description string
	switch {
	case mean >= t.BrightnessIdealLow && mean <= t.BrightnessIdealHigh:
		quality = models.TierExcellent
		description = "The image has optimal brightness with good visibility of details."
	case mean >= t.BrightnessGoodLow && mean <= t.BrightnessGoodHigh:
		quality = models.TierGood
		description = "The image brightness is acceptable with minor adjustments needed."
	case mean >= t.BrightnessFairLow && mean <= t.BrightnessFairHigh:
		quality = models.TierFair
		description = "The image is either slightly too dark or too bright."
	case mean < t.BrightnessFairLow:
		quality = models.TierPoor
		description = "The image is too dark, making details difficult to see."
	default:
		quality = models.TierPoor
		description = "The image is overexposed with blown-out highlights."
	}

	return models.MetricResult{
		Score:       round2(mean),
		Quality:     quality,
		Description: description,
		Metric:      "Mean Brightness (0-255)",
		Normalized: normalizeBand(mean,
			t.BrightnessIdealLow, t.BrightnessIdealHigh,
			t.BrightnessGoodLow, t.BrightnessGoodHigh,
			t.BrightnessFairLow, t.BrightnessFairHigh,
			0, 255),
	}
}

func (a *Assessor) evaluateContrast(p *planes) models.MetricResult {
	t := a.thresholds
	_, stddev := meanStdDev(p.gray)

	var quality models.Tier
	var description string
	switch {
	case stddev >= t.ContrastExcellent:
		quality = models.TierExcellent
		description = "The image has excellent contrast with a good range of tones."
	case stddev >= t.ContrastGood:
		quality = models.TierGood
		description = "The image has good contrast with adequate tonal separation."
	case stddev >= t.ContrastFair:
		quality = models.TierFair
		description = "The image has moderate contrast but could benefit from enhancement."
	default:
		quality = models.TierPoor
		description = "The image has poor contrast appearing flat or washed out."
	}

	return models.MetricResult{
		Score:       round2(stddev),
		Quality:     quality,
		Description: description,
		Metric:      "Standard Deviation",
		Normalized:  normalizeHigherBetter(stddev, t.ContrastFair, t.ContrastGood, t.ContrastExcellent, t.ContrastCeiling),
	}
}

func (a *Assessor) evaluateNoise(p *planes) models.MetricResult {
	t := a.thresholds
	score := noiseEstimate(p.gray, p.width, p.height)

	var quality models.Tier
	var description string
	switch {
	case score <= t.NoiseExcellent:
		quality = models.TierExcellent
		description = "The image has minimal noise with clean, smooth areas."
	case score <= t.NoiseGood:
		quality = models.TierGood
		description = "The image has low noise levels that don't significantly impact quality."
	case score <= t.NoiseFair:
		quality = models.TierFair
		description = "The image has moderate noise that may be noticeable in smooth areas."
	default:
		quality = models.TierPoor
		description = "The image has high noise levels that significantly degrade quality."
	}

	return models.MetricResult{
		Score:       round2(score),
		Quality:     quality,
		Description: description,
		Metric:      "Noise Estimate (lower is better)",
		Normalized:  normalizeLowerBetter(score, t.NoiseExcellent, t.NoiseGood, t.NoiseFair, t.NoiseFloor),
	}
}

func (a *Assessor) evaluateColorBalance(p *planes) models.MetricResult {
	if p.grayInput {
		return models.MetricResult{
			Quality:     models.TierNotApplicable,
			Description: "Color balance is not applicable for single-channel grayscale images.",
			Metric:      "Max Channel Deviation",
		}
	}

	t := a.thresholds
	overallMean := (p.meanR + p.meanG + p.meanB) / 3
	maxDeviation := maxOf(
		absFloat(p.meanR-overallMean),
		absFloat(p.meanG-overallMean),
		absFloat(p.meanB-overallMean),
	)

	var quality models.Tier
	var description string
	switch {
	case maxDeviation <= t.BalanceExcellent:
		quality = models.TierExcellent
		description = "The image has excellent color balance with neutral tones."
	case maxDeviation <= t.BalanceGood:
		quality = models.TierGood
		description = "The image has good color balance with minor color casts."
	case maxDeviation <= t.BalanceFair:
		quality = models.TierFair
		description = "The image has noticeable color cast that may need correction."
	default:
		quality = models.TierPoor
		description = fmt.Sprintf("The image has a strong %s color cast affecting overall appearance.",
			dominantCast(p.meanR, p.meanG, p.meanB))
	}

	return models.MetricResult{
		Score:       round2(maxDeviation),
		Quality:     quality,
		Description: description,
		Metric:      "Max Channel Deviation",
		ChannelMeans: &models.ChannelMeans{
			Red:   round2(p.meanR),
			Green: round2(p.meanG),
			Blue:  round2(p.meanB),
		},
		Normalized: normalizeLowerBetter(maxDeviation, t.BalanceExcellent, t.BalanceGood, t.BalanceFair, t.BalanceFloor),
	}
}

func (a *Assessor) evaluateSaturation(p *planes) models.MetricResult {
	if p.grayInput {
		return models.MetricResult{
			Quality:     models.TierNotApplicable,
			Description: "Saturation is not applicable for single-channel grayscale images.",
			Metric:      "Mean Saturation (0-255)",
		}
	}

	t := a.thresholds
	mean, _ := meanStdDev(p.sat)

	var quality models.Tier
	var description string
	switch {
	case mean >= t.SaturationIdealLow && mean <= t.SaturationIdealHigh:
		quality = models.TierExcellent
		description = "The image has optimal color saturation with vibrant but natural colors."
	case mean >= t.SaturationGoodLow && mean <= t.SaturationGoodHigh:
		quality = models.TierGood
		description = "The image has good color saturation with appealing colors."
	case mean >= t.SaturationFairLow && mean <= t.SaturationFairHigh:
		quality = models.TierFair
		description = "The image saturation could be improved for better color appeal."
	case mean < t.SaturationFairLow:
		quality = models.TierPoor
		description = "The image appears washed out with very low color saturation."
	default:
		quality = models.TierPoor
		description = "The image is oversaturated with unnatural, intense colors."
	}

	return models.MetricResult{
		Score:       round2(mean),
		Quality:     quality,
		Description: description,
		Metric:      "Mean Saturation (0-255)",
		Normalized: normalizeBand(mean,
			t.SaturationIdealLow, t.SaturationIdealHigh,
			t.SaturationGoodLow, t.SaturationGoodHigh,
			t.SaturationFairLow, t.SaturationFairHigh,
			0, 255),
	}
}

// evaluateResolution categorizes pixel count and detail richness. It is
// advisory only: no tier, no contribution to the weighted score.
func (a *Assessor) evaluateResolution(p *planes) models.ResolutionResult {
	t := a.thresholds
	total := p.totalPixels()
	density := edgeDensity(p.gray, p.width, p.height)

	var resQuality string
	switch {
	case total >= t.HighResolutionPixels:
		resQuality = "High Resolution"
	case total >= t.MediumResolutionPixels:
		resQuality = "Medium Resolution"
	default:
		resQuality = "Low Resolution"
	}

	var detailQuality, description string
	switch {
	case density > t.RichDetailDensity:
		detailQuality = "Rich Detail"
		description = fmt.Sprintf("The image is %s (%dx%d) with rich detail and sharp edges.",
			strings.ToLower(resQuality), p.width, p.height)
	case density > t.ModerateDetailDensity:
		detailQuality = "Moderate Detail"
		description = fmt.Sprintf("The image is %s (%dx%d) with moderate detail levels.",
			strings.ToLower(resQuality), p.width, p.height)
	default:
		detailQuality = "Low Detail"
		description = fmt.Sprintf("The image is %s (%dx%d) with limited detail or smooth content.",
			strings.ToLower(resQuality), p.width, p.height)
	}

	return models.ResolutionResult{
		Resolution:        fmt.Sprintf("%dx%d", p.width, p.height),
		TotalPixels:       total,
		EdgeDensity:       round4(density),
		ResolutionQuality: resQuality,
		DetailQuality:     detailQuality,
		Description:       description,
	}
}

// normalizeHigherBetter maps a higher-is-better statistic onto the
// normalized 0-100 scale, piecewise linear within each tier band. The
// ceiling caps the Excellent ramp; values at or beyond it score 100.
func normalizeHigherBetter(raw, fair, good, excellent, ceiling float64) float64 {
	switch {
	case raw >= excellent:
		return clamp(bandExcellentLow+10*(raw-excellent)/(ceiling-excellent), bandExcellentLow, 100)
	case raw >= good:
		return bandGoodLow + (bandExcellentLow-bandGoodLow)*(raw-good)/(excellent-good)
	case raw >= fair:
		return bandFairLow + (bandGoodLow-bandFairLow)*(raw-fair)/(good-fair)
	default:
		return clamp(bandFairLow*raw/fair, 0, bandFairLow)
	}
}

// normalizeLowerBetter is the mirror image for lower-is-better
// statistics. The floor bounds the Poor decay; values at or beyond it
// score 0.
func normalizeLowerBetter(raw, excellent, good, fair, floor float64) float64 {
	switch {
	case raw <= excellent:
		return clamp(100-10*raw/excellent, bandExcellentLow, 100)
	case raw <= good:
		return bandGoodLow + (bandExcellentLow-bandGoodLow)*(good-raw)/(good-excellent)
	case raw <= fair:
		return bandFairLow + (bandGoodLow-bandFairLow)*(fair-raw)/(fair-good)
	default:
		return clamp(bandFairLow*(1-(raw-fair)/(floor-fair)), 0, bandFairLow)
	}
}

// normalizeBand scores a statistic with an ideal band: values inside
// the band score 100 and the score decays with distance past each band
// edge, independently per side since the margins may be asymmetric.
func normalizeBand(value, idealLo, idealHi, goodLo, goodHi, fairLo, fairHi, domainLo, domainHi float64) float64 {
	switch {
	case value >= idealLo && value <= idealHi:
		return 100
	case value >= goodLo && value <= goodHi:
		if value < idealLo {
			return bandExcellentLow - (bandExcellentLow-bandGoodLow)*(idealLo-value)/(idealLo-goodLo)
		}
		return bandExcellentLow - (bandExcellentLow-bandGoodLow)*(value-idealHi)/(goodHi-idealHi)
	case value >= fairLo && value <= fairHi:
		if value < goodLo {
			return bandGoodLow - (bandGoodLow-bandFairLow)*(goodLo-value)/(goodLo-fairLo)
		}
		return bandGoodLow - (bandGoodLow-bandFairLow)*(value-goodHi)/(fairHi-goodHi)
	case value < fairLo:
		span := fairLo - domainLo
		if span <= 0 {
			return 0
		}
		return clamp(bandFairLow*(1-(fairLo-value)/span), 0, bandFairLow)
	default:
		span := domainHi - fairHi
		if span <= 0 {
			return 0
		}
		return clamp(bandFairLow*(1-(value-fairHi)/span), 0, bandFairLow)
	}
}

func dominantCast(meanR, meanG, meanB float64) string {
	if meanR > meanG && meanR > meanB {
		return "reddish"
	}
	if meanG > meanR && meanG > meanB {
		return "greenish"
	}
	return "bluish"
}
