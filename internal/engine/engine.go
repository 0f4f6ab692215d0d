// Package engine scores whether applying to a rental listing is worth the
// renter's time and non-refundable fee. It is a pure function of its inputs:
// a fixed pipeline of rules folds additive penalties into a clamped 0..100
// score with a step-by-step explainability trace.
package engine

import "go.uber.org/zap"

const startingScore = 100

type Engine struct {
	cfg    Config
	rules  []Rule
	logger *zap.Logger
}

// New creates an engine with the given thresholds. A nil logger disables
// per-step debug logging.
func New(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:    cfg,
		rules:  pipeline(),
		logger: logger,
	}
}

// Evaluate runs the full rule pipeline for one profile/listing pair. It
// holds no state between calls and is safe for concurrent use.
func (e *Engine) Evaluate(p RenterProfile, l Listing) (*EvaluationResult, error) {
	if err := validateProfile(p); err != nil {
		return nil, err
	}
	if err := validateListing(l); err != nil {
		return nil, err
	}

	score := startingScore
	override := false
	breakdown := make([]ScoringStep, 0, len(e.rules))

	for _, rule := range e.rules {
		for _, finding := range rule.Evaluate(p, l, e.cfg) {
			before := score
			score = clampScore(score + finding.Delta)
			if finding.Override {
				override = true
			}

			breakdown = append(breakdown, ScoringStep{
				Rule:        finding.Rule,
				Delta:       finding.Delta,
				Before:      before,
				After:       score,
				Explanation: finding.Explanation,
				category:    finding.Category,
				action:      finding.Action,
			})

			e.logger.Debug("scoring step",
				zap.String("rule", finding.Rule),
				zap.Int("delta", finding.Delta),
				zap.Int("before", before),
				zap.Int("after", score),
			)
		}
	}

	result := &EvaluationResult{
		Score:           score,
		Verdict:         mapVerdict(score, override, e.cfg.Verdict),
		Confidence:      mapConfidence(score, breakdown, e.cfg.Verdict, e.cfg.Confidence),
		Reasons:         compileReasons(breakdown),
		Actions:         compileActions(breakdown),
		SuggestedBudget: suggestedBudget(p.MonthlyIncome, e.cfg.Bands),
		Breakdown:       breakdown,
	}

	e.logger.Debug("evaluation complete",
		zap.Int("score", result.Score),
		zap.String("verdict", string(result.Verdict)),
		zap.String("confidence", string(result.Confidence)),
		zap.Int("steps", len(result.Breakdown)),
	)

	return result, nil
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
