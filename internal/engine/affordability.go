package engine

import (
	"fmt"
	"math"
)

// SuggestedBudget holds the three rent budgets derived from income alone;
// it is returned regardless of how the listing scores.
type SuggestedBudget struct {
	Conservative int `json:"conservative"`
	Recommended  int `json:"recommended"`
	UpperLimit   int `json:"upper_limit"`
}

func suggestedBudget(monthlyIncome int, bands BandsConfig) SuggestedBudget {
	conservative := int(math.Round(float64(monthlyIncome) * bands.Conservative))
	recommended := int(math.Round(float64(monthlyIncome) * bands.Recommended))
	upper := int(math.Round(float64(monthlyIncome) * bands.UpperLimit))

	// Rounding can collapse neighbouring bands for very small incomes;
	// keep them strictly ordered by at least one unit.
	if recommended <= conservative {
		recommended = conservative + 1
	}
	if upper <= recommended {
		upper = recommended + 1
	}

	return SuggestedBudget{
		Conservative: conservative,
		Recommended:  recommended,
		UpperLimit:   upper,
	}
}

type affordabilityRule struct{}

func (affordabilityRule) Name() string { return "affordability" }

func (affordabilityRule) Evaluate(p RenterProfile, l Listing, cfg Config) []Finding {
	income := float64(p.MonthlyIncome)
	rent := float64(l.Rent)
	recommended := income * cfg.Bands.Recommended
	upper := income * cfg.Bands.UpperLimit

	if rent <= recommended {
		return nil
	}

	if rent > upper {
		return []Finding{{
			Rule:        "affordability",
			Category:    CategoryAffordability,
			Delta:       -cfg.Affordability.SeverePenalty,
			Explanation: fmt.Sprintf("Rent %d exceeds the upper affordability band of %d (%.0f%% of income)", l.Rent, int(math.Round(upper)), cfg.Bands.UpperLimit*100),
			Action:      fmt.Sprintf("Target listings at or below your recommended budget of %d", int(math.Round(recommended))),
			Override:    true,
		}}
	}

	// Between the recommended and upper bands the penalty grows linearly
	// with how deep the rent sits in the stretch zone.
	fraction := (rent - recommended) / (upper - recommended)
	delta := int(math.Round(fraction * float64(cfg.Affordability.StretchPenaltyMax)))
	if delta == 0 {
		return nil
	}

	return []Finding{{
		Rule:        "affordability",
		Category:    CategoryAffordability,
		Delta:       -delta,
		Explanation: fmt.Sprintf("Rent %d is above the recommended band of %d but within the upper limit of %d", l.Rent, int(math.Round(recommended)), int(math.Round(upper))),
		Action:      fmt.Sprintf("Target listings at or below your recommended budget of %d", int(math.Round(recommended))),
	}}
}

type upfrontCostRule struct{}

func (upfrontCostRule) Name() string { return "upfront_cost" }

func (upfrontCostRule) Evaluate(p RenterProfile, l Listing, cfg Config) []Finding {
	threshold := float64(p.MonthlyIncome) * cfg.Affordability.UpfrontMultiple
	total := l.TotalUpfront()
	if float64(total) <= threshold {
		return nil
	}

	return []Finding{{
		Rule:        "upfront_cost",
		Category:    CategoryUpfrontCost,
		Delta:       -cfg.Affordability.UpfrontPenalty,
		Explanation: fmt.Sprintf("Total upfront cost of %d (rent + deposit + fee) exceeds %.1fx monthly income", total, cfg.Affordability.UpfrontMultiple),
		Action:      "Plan the upfront cash (first rent, deposit and fee) before applying",
	}}
}
