package engine

import "testing"

func TestMapVerdict(t *testing.T) {
	cfg := DefaultConfig().Verdict

	cases := []struct {
		score    int
		override bool
		want     Verdict
	}{
		{100, false, VerdictWorthApplying},
		{70, false, VerdictWorthApplying},
		{69, false, VerdictBorderline},
		{40, false, VerdictBorderline},
		{39, false, VerdictNotWorthIt},
		{0, false, VerdictNotWorthIt},
		{55, true, VerdictNotWorthIt},
		{75, true, VerdictNotWorthIt},
	}

	for _, tc := range cases {
		if got := mapVerdict(tc.score, tc.override, cfg); got != tc.want {
			t.Fatalf("mapVerdict(%d, %v) = %s, want %s", tc.score, tc.override, got, tc.want)
		}
	}
}

func TestMapConfidence(t *testing.T) {
	cfg := DefaultConfig()

	step := func(category Category, delta int) ScoringStep {
		return ScoringStep{Rule: string(category), Delta: delta, category: category}
	}

	cases := []struct {
		name      string
		score     int
		breakdown []ScoringStep
		want      Confidence
	}{
		{"clean sweep far from boundaries", 100, nil, ConfidenceHigh},
		{"single category far from boundaries", 85, []ScoringStep{step(CategoryDemand, -10)}, ConfidenceHigh},
		{"two categories", 80, []ScoringStep{step(CategoryDemand, -10), step(CategoryDocuments, -10)}, ConfidenceMedium},
		{"three categories", 60, []ScoringStep{
			step(CategoryAffordability, -15), step(CategoryDocuments, -10), step(CategoryDemand, -5),
		}, ConfidenceLow},
		{"near worth-applying boundary", 72, []ScoringStep{step(CategoryDemand, -10)}, ConfidenceLow},
		{"near borderline boundary", 43, []ScoringStep{step(CategoryAffordability, -15)}, ConfidenceLow},
		{"duplicate category counts once", 80, []ScoringStep{
			step(CategoryDocuments, -8), step(CategoryDocuments, -10),
		}, ConfidenceHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapConfidence(tc.score, tc.breakdown, cfg.Verdict, cfg.Confidence)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestCompileActionsDeduplicatesPerCategory(t *testing.T) {
	breakdown := []ScoringStep{
		{Rule: "required_documents", Delta: -8, category: CategoryDocuments, action: "gather documents"},
		{Rule: "bank_statement", Delta: -10, category: CategoryDocuments, action: "get a bank statement"},
		{Rule: "area_demand", Delta: -10, category: CategoryDemand, action: "add a guarantor"},
	}

	actions := compileActions(breakdown)
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %v", actions)
	}
	if actions[0] != "gather documents" || actions[1] != "add a guarantor" {
		t.Fatalf("unexpected actions: %v", actions)
	}
}

func TestCompileReasonsKeepsTraceOrder(t *testing.T) {
	breakdown := []ScoringStep{
		{Rule: "affordability", Delta: -15, Explanation: "first", category: CategoryAffordability},
		{Rule: "quiet", Delta: 0, Explanation: "skipped"},
		{Rule: "area_demand", Delta: -5, Explanation: "second", category: CategoryDemand},
	}

	reasons := compileReasons(breakdown)
	if len(reasons) != 2 || reasons[0] != "first" || reasons[1] != "second" {
		t.Fatalf("unexpected reasons: %v", reasons)
	}
}
