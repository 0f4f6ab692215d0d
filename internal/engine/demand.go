package engine

import (
	"fmt"
	"math"
)

type demandRule struct{}

func (demandRule) Name() string { return "area_demand" }

func (demandRule) Evaluate(_ RenterProfile, l Listing, cfg Config) []Finding {
	var delta int
	switch l.AreaDemand {
	case DemandMedium:
		delta = cfg.Demand.MediumPenalty
	case DemandHigh:
		delta = cfg.Demand.HighPenalty
	default:
		return nil
	}
	if delta == 0 {
		return nil
	}

	return []Finding{{
		Rule:        "area_demand",
		Category:    CategoryDemand,
		Delta:       -delta,
		Explanation: fmt.Sprintf("%s demand area increases competition for this listing", string(l.AreaDemand)),
		Action:      "Consider adding a guarantor to stand out in a competitive area",
	}}
}

type feeRule struct{}

func (feeRule) Name() string { return "application_fee" }

// The fee is weighed against the renter's stated budget when provided,
// falling back to income: a high fee makes a rejected application costlier.
func (feeRule) Evaluate(p RenterProfile, l Listing, cfg Config) []Finding {
	if l.ApplicationFee <= 0 {
		return nil
	}

	denominator := p.MonthlyBudget
	if denominator <= 0 {
		denominator = p.MonthlyIncome
	}

	// The ratio check and the over-threshold fraction are computed in
	// integer micros: decimal thresholds like 5% have no exact float64
	// form, and the drift is enough to push a half-step penalty down a
	// whole point.
	threshold := int64(math.Round(cfg.Fee.RatioThreshold*1e6)) * int64(denominator)
	fee := int64(l.ApplicationFee) * 1_000_000
	if fee <= threshold {
		return nil
	}

	// Proportional above the threshold: the full penalty is reached once
	// the ratio doubles the threshold.
	over := float64(fee-threshold) / float64(threshold)
	delta := int(math.Round(math.Min(over, 1) * float64(cfg.Fee.PenaltyMax)))
	if delta == 0 {
		return nil
	}

	return []Finding{{
		Rule:        "application_fee",
		Category:    CategoryFee,
		Delta:       -delta,
		Explanation: fmt.Sprintf("Application fee of %d is high relative to your monthly resources", l.ApplicationFee),
		Action:      "Confirm whether the application fee is refundable before applying",
	}}
}
