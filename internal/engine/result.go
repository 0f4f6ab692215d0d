package engine

// Verdict is the three-way outcome of an evaluation.
type Verdict string

const (
	VerdictWorthApplying Verdict = "WORTH_APPLYING"
	VerdictBorderline    Verdict = "BORDERLINE"
	VerdictNotWorthIt    Verdict = "NOT_WORTH_IT"
)

// Confidence labels how trustworthy the verdict is given how many signals
// fired and how close the score sits to a verdict boundary.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// ScoringStep records one rule's effect on the running score. The breakdown
// is append-only during an evaluation and the single source of truth for
// reasons, actions and confidence; nothing is recomputed for display.
type ScoringStep struct {
	Rule        string `json:"rule"`
	Delta       int    `json:"delta"`
	Before      int    `json:"before"`
	After       int    `json:"after"`
	Explanation string `json:"explanation"`

	category Category
	action   string
}

// Category reports which rule category produced this step.
func (s ScoringStep) Category() Category { return s.category }

// EvaluationResult is the complete, immutable outcome of one evaluation.
type EvaluationResult struct {
	Score           int             `json:"score"`
	Verdict         Verdict         `json:"verdict"`
	Confidence      Confidence      `json:"confidence"`
	Reasons         []string        `json:"reasons"`
	Actions         []string        `json:"actions"`
	SuggestedBudget SuggestedBudget `json:"suggested_budget"`
	Breakdown       []ScoringStep   `json:"breakdown"`
}

func mapVerdict(score int, override bool, cfg VerdictConfig) Verdict {
	// Affordability is the dominant, non-overridable signal: rent above the
	// upper band is NOT_WORTH_IT no matter what the arithmetic says.
	if override {
		return VerdictNotWorthIt
	}
	switch {
	case score >= cfg.WorthApplyingMin:
		return VerdictWorthApplying
	case score >= cfg.BorderlineMin:
		return VerdictBorderline
	default:
		return VerdictNotWorthIt
	}
}

func mapConfidence(score int, breakdown []ScoringStep, verdict VerdictConfig, cfg ConfidenceConfig) Confidence {
	categories := map[Category]struct{}{}
	for _, step := range breakdown {
		if step.Delta != 0 {
			categories[step.category] = struct{}{}
		}
	}

	distance := absInt(score - verdict.WorthApplyingMin)
	if d := absInt(score - verdict.BorderlineMin); d < distance {
		distance = d
	}

	switch {
	case distance <= cfg.BoundaryMargin || len(categories) >= cfg.LowCategoryCount:
		return ConfidenceLow
	case len(categories) <= cfg.HighMaxCategories:
		return ConfidenceHigh
	default:
		return ConfidenceMedium
	}
}

// compileReasons yields one sentence per nonzero step, in trace order.
func compileReasons(breakdown []ScoringStep) []string {
	reasons := make([]string, 0, len(breakdown))
	for _, step := range breakdown {
		if step.Delta != 0 {
			reasons = append(reasons, step.Explanation)
		}
	}
	return reasons
}

// compileActions yields one remedial action per distinct penalty category,
// keeping the first action of each category in firing order.
func compileActions(breakdown []ScoringStep) []string {
	seen := map[Category]struct{}{}
	actions := make([]string, 0, len(breakdown))
	for _, step := range breakdown {
		if step.Delta >= 0 || step.action == "" {
			continue
		}
		if _, ok := seen[step.category]; ok {
			continue
		}
		seen[step.category] = struct{}{}
		actions = append(actions, step.action)
	}
	return actions
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
