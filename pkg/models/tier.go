package models

import (
	"encoding/json"
	"fmt"
)

// Tier is an ordered quality level assigned to each metric and to the
// overall result. Higher values are better; TierNotApplicable sorts
// outside the ordering entirely.
type Tier int

const (
	TierPoor Tier = iota
	TierFair
	TierGood
	TierExcellent
	// TierNotApplicable marks metrics that cannot be computed for the
	// input's channel layout (e.g. saturation on a grayscale image).
	TierNotApplicable
)

// String returns the display name used in reports and JSON.
func (t Tier) String() string {
	switch t {
	case TierPoor:
		return "Poor"
	case TierFair:
		return "Fair"
	case TierGood:
		return "Good"
	case TierExcellent:
		return "Excellent"
	case TierNotApplicable:
		return "Not Applicable"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Applicable reports whether the tier participates in scoring.
func (t Tier) Applicable() bool {
	return t != TierNotApplicable
}

// AtMost reports whether t is no better than other. NotApplicable is
// never ordered against real tiers.
func (t Tier) AtMost(other Tier) bool {
	if !t.Applicable() || !other.Applicable() {
		return false
	}
	return t <= other
}

// NeedsImprovement reports whether the tier should trigger a
// recommendation (Fair or Poor).
func (t Tier) NeedsImprovement() bool {
	return t == TierPoor || t == TierFair
}

// MarshalJSON encodes the tier as its display name.
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a tier from its display name.
func (t *Tier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Poor":
		*t = TierPoor
	case "Fair":
		*t = TierFair
	case "Good":
		*t = TierGood
	case "Excellent":
		*t = TierExcellent
	case "Not Applicable":
		*t = TierNotApplicable
	default:
		return fmt.Errorf("unknown quality tier %q", s)
	}
	return nil
}
