package engine

// Config carries every tunable threshold of the scoring pipeline. Penalty
// fields are positive magnitudes; rules subtract them. Defaults are the
// documented baseline; rule tuning happens here, never in control flow.
type Config struct {
	Bands         BandsConfig         `mapstructure:"bands"`
	Affordability AffordabilityConfig `mapstructure:"affordability"`
	Documents     DocumentsConfig     `mapstructure:"documents"`
	Demand        DemandConfig        `mapstructure:"demand"`
	Fee           FeeConfig           `mapstructure:"fee"`
	Verdict       VerdictConfig       `mapstructure:"verdict"`
	Confidence    ConfidenceConfig    `mapstructure:"confidence"`
}

// BandsConfig holds the rent-to-income ratios for the suggested budget.
type BandsConfig struct {
	Conservative float64 `mapstructure:"conservative"`
	Recommended  float64 `mapstructure:"recommended"`
	UpperLimit   float64 `mapstructure:"upper-limit"`
}

type AffordabilityConfig struct {
	// StretchPenaltyMax is the linear penalty reached when rent sits at the
	// upper-limit band; between the recommended and upper bands the penalty
	// is interpolated up to this value.
	StretchPenaltyMax int `mapstructure:"stretch-penalty-max"`
	// SeverePenalty applies when rent exceeds the upper-limit band. It also
	// raises the override that forces a NOT_WORTH_IT verdict.
	SeverePenalty int `mapstructure:"severe-penalty"`
	// UpfrontMultiple is the income multiple above which the total upfront
	// cash (rent + deposit + fee) triggers UpfrontPenalty.
	UpfrontMultiple float64 `mapstructure:"upfront-multiple"`
	UpfrontPenalty  int     `mapstructure:"upfront-penalty"`
}

type DocumentsConfig struct {
	MissingRequiredPenalty int `mapstructure:"missing-required-penalty"`
	MissingRequiredCap     int `mapstructure:"missing-required-cap"`
	ClusterNonePenalty     int `mapstructure:"cluster-none-penalty"`
	ClusterPartialPenalty  int `mapstructure:"cluster-partial-penalty"`
	NoBankStatementPenalty int `mapstructure:"no-bank-statement-penalty"`
}

type DemandConfig struct {
	MediumPenalty int `mapstructure:"medium-penalty"`
	HighPenalty   int `mapstructure:"high-penalty"`
}

type FeeConfig struct {
	// RatioThreshold is the fee-to-budget (or fee-to-income) ratio above
	// which the fee is considered risky.
	RatioThreshold float64 `mapstructure:"ratio-threshold"`
	// PenaltyMax caps the proportional penalty; the full value is reached
	// when the ratio hits twice the threshold.
	PenaltyMax int `mapstructure:"penalty-max"`
}

type VerdictConfig struct {
	WorthApplyingMin int `mapstructure:"worth-applying-min"`
	BorderlineMin    int `mapstructure:"borderline-min"`
}

type ConfidenceConfig struct {
	// BoundaryMargin: a final score within this distance of a verdict
	// boundary yields LOW confidence.
	BoundaryMargin int `mapstructure:"boundary-margin"`
	// LowCategoryCount: this many distinct penalty categories firing yields
	// LOW confidence; at most HighMaxCategories firing yields HIGH.
	LowCategoryCount  int `mapstructure:"low-category-count"`
	HighMaxCategories int `mapstructure:"high-max-categories"`
}

// DefaultConfig returns the documented baseline thresholds.
func DefaultConfig() Config {
	return Config{
		Bands: BandsConfig{
			Conservative: 0.25,
			Recommended:  0.30,
			UpperLimit:   0.35,
		},
		Affordability: AffordabilityConfig{
			StretchPenaltyMax: 15,
			SeverePenalty:     25,
			UpfrontMultiple:   2.0,
			UpfrontPenalty:    10,
		},
		Documents: DocumentsConfig{
			MissingRequiredPenalty: 8,
			MissingRequiredCap:     24,
			ClusterNonePenalty:     20,
			ClusterPartialPenalty:  10,
			NoBankStatementPenalty: 10,
		},
		Demand: DemandConfig{
			MediumPenalty: 5,
			HighPenalty:   10,
		},
		Fee: FeeConfig{
			RatioThreshold: 0.05,
			PenaltyMax:     15,
		},
		Verdict: VerdictConfig{
			WorthApplyingMin: 70,
			BorderlineMin:    40,
		},
		Confidence: ConfidenceConfig{
			BoundaryMargin:    5,
			LowCategoryCount:  3,
			HighMaxCategories: 1,
		},
	}
}
