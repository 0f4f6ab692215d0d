package engine

import "testing"

func TestDemandRule(t *testing.T) {
	cfg := DefaultConfig()
	profile := RenterProfile{RenterType: RenterWorker, MonthlyIncome: 10000}

	cases := []struct {
		demand    AreaDemand
		wantDelta int
	}{
		{DemandLow, 0},
		{DemandMedium, -cfg.Demand.MediumPenalty},
		{DemandHigh, -cfg.Demand.HighPenalty},
	}

	for _, tc := range cases {
		findings := demandRule{}.Evaluate(profile, Listing{Rent: 2500, AreaDemand: tc.demand}, cfg)
		if tc.wantDelta == 0 {
			if len(findings) != 0 {
				t.Fatalf("%s: expected no finding, got %+v", tc.demand, findings)
			}
			continue
		}
		if len(findings) != 1 || findings[0].Delta != tc.wantDelta {
			t.Fatalf("%s: expected delta %d, got %+v", tc.demand, tc.wantDelta, findings)
		}
	}
}

func TestFeeRulePrefersBudgetOverIncome(t *testing.T) {
	cfg := DefaultConfig()

	// Against the 5000 budget the 500 fee is 10%, twice the threshold:
	// the full penalty applies.
	profile := RenterProfile{RenterType: RenterWorker, MonthlyIncome: 50000, MonthlyBudget: 5000}
	listing := Listing{Rent: 4000, ApplicationFee: 500, AreaDemand: DemandLow}
	rule := feeRule{}

	findings := rule.Evaluate(profile, listing, cfg)
	if len(findings) != 1 || findings[0].Delta != -cfg.Fee.PenaltyMax {
		t.Fatalf("expected full fee penalty against budget, got %+v", findings)
	}

	// Without a budget the income denominator makes the same fee harmless.
	profile.MonthlyBudget = 0
	if findings := rule.Evaluate(profile, listing, cfg); len(findings) != 0 {
		t.Fatalf("expected no finding against income, got %+v", findings)
	}
}

func TestFeeRuleProportionalPenalty(t *testing.T) {
	cfg := DefaultConfig()
	profile := RenterProfile{RenterType: RenterWorker, MonthlyIncome: 10000}
	rule := feeRule{}

	// 750 / 10000 = 7.5%: exactly halfway between the threshold and its
	// double, so half the maximum penalty rounds away from zero.
	listing := Listing{Rent: 2500, ApplicationFee: 750, AreaDemand: DemandLow}
	findings := rule.Evaluate(profile, listing, cfg)
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %d", len(findings))
	}
	if findings[0].Delta != -8 {
		t.Fatalf("expected delta -8, got %d", findings[0].Delta)
	}

	// 800 / 10000 = 8%: sixty percent of the way to the full penalty.
	listing.ApplicationFee = 800
	findings = rule.Evaluate(profile, listing, cfg)
	if len(findings) != 1 || findings[0].Delta != -9 {
		t.Fatalf("expected delta -9, got %+v", findings)
	}

	// At or below the threshold nothing fires.
	listing.ApplicationFee = 500
	if findings := rule.Evaluate(profile, listing, cfg); len(findings) != 0 {
		t.Fatalf("expected no finding at the threshold, got %+v", findings)
	}

	// Zero fee is never risky.
	listing.ApplicationFee = 0
	if findings := rule.Evaluate(profile, listing, cfg); len(findings) != 0 {
		t.Fatalf("expected no finding for zero fee, got %+v", findings)
	}
}
