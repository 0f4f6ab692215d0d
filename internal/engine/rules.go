package engine

// Category groups rules for confidence derivation and remedial actions.
// Actions are de-duplicated per category; confidence counts distinct
// categories that fired a nonzero penalty.
type Category string

const (
	CategoryAffordability Category = "affordability"
	CategoryUpfrontCost   Category = "upfront_cost"
	CategoryDocuments     Category = "documents"
	CategoryDemand        Category = "demand"
	CategoryFee           Category = "fee"
)

// Finding is the outcome of one rule: a signed score delta with its
// explanation, plus a remedial action for when the delta is a penalty.
// Override marks the affordability signal that forces NOT_WORTH_IT.
type Finding struct {
	Rule        string
	Category    Category
	Delta       int
	Explanation string
	Action      string
	Override    bool
}

// Rule is a single pure scoring step. Rules never see the running score;
// they report findings and the aggregator folds them in a fixed order.
type Rule interface {
	Name() string
	Evaluate(p RenterProfile, l Listing, cfg Config) []Finding
}

// pipeline returns the rules in their documented, fixed application order.
// The order matters for breakdown readability and trace reproducibility;
// the final score is additive either way.
func pipeline() []Rule {
	return []Rule{
		affordabilityRule{},
		upfrontCostRule{},
		requiredDocumentsRule{},
		clusterRule{},
		bankStatementRule{},
		demandRule{},
		feeRule{},
	}
}
