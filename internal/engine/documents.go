package engine

import (
	"fmt"
	"sort"
	"strings"
)

// docClusters maps each renter type to the documents landlords usually
// accept as proof of income or status for that category. The matcher loop
// is identical across types; only this table differs.
var docClusters = map[RenterType][]DocumentKind{
	RenterWorker:          {DocBankStatement, DocPayslip},
	RenterNewProfessional: {DocEmploymentContract, DocGuarantorLetter},
	RenterStudent:         {DocProofOfRegistration, DocBursaryLetter, DocGuarantorLetter},
}

// relevantCluster resolves the student bursary substitution: without the
// bursary flag a BURSARY_LETTER is not expected and a GUARANTOR_LETTER
// stands in for it.
func relevantCluster(p RenterProfile) []DocumentKind {
	cluster := docClusters[p.RenterType]
	if p.RenterType != RenterStudent || p.StudentBursary {
		return cluster
	}

	out := make([]DocumentKind, 0, len(cluster))
	for _, doc := range cluster {
		if doc == DocBursaryLetter {
			continue
		}
		out = append(out, doc)
	}
	return out
}

type requiredDocumentsRule struct{}

func (requiredDocumentsRule) Name() string { return "required_documents" }

func (requiredDocumentsRule) Evaluate(p RenterProfile, l Listing, cfg Config) []Finding {
	var missing []string
	for _, doc := range l.RequiredDocuments {
		if !p.HasDocument(doc) {
			missing = append(missing, string(doc))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)

	delta := len(missing) * cfg.Documents.MissingRequiredPenalty
	if delta > cfg.Documents.MissingRequiredCap {
		delta = cfg.Documents.MissingRequiredCap
	}

	return []Finding{{
		Rule:        "required_documents",
		Category:    CategoryDocuments,
		Delta:       -delta,
		Explanation: fmt.Sprintf("Missing %d required document(s): %s", len(missing), strings.Join(missing, ", ")),
		Action:      fmt.Sprintf("Gather the missing required documents: %s", strings.Join(missing, ", ")),
	}}
}

type clusterRule struct{}

func (clusterRule) Name() string { return "renter_type_cluster" }

func (clusterRule) Evaluate(p RenterProfile, l Listing, cfg Config) []Finding {
	cluster := relevantCluster(p)

	held := 0
	for _, doc := range cluster {
		if p.HasDocument(doc) {
			held++
		}
	}

	label := strings.ToLower(strings.ReplaceAll(string(p.RenterType), "_", " "))

	switch {
	case held == 0:
		return []Finding{{
			Rule:        "renter_type_cluster",
			Category:    CategoryDocuments,
			Delta:       -cfg.Documents.ClusterNonePenalty,
			Explanation: fmt.Sprintf("No proof of income or status held for a %s applicant", label),
			Action:      fmt.Sprintf("Obtain at least one of: %s", joinDocs(cluster)),
		}}
	case held < len(cluster):
		return []Finding{{
			Rule:        "renter_type_cluster",
			Category:    CategoryDocuments,
			Delta:       -cfg.Documents.ClusterPartialPenalty,
			Explanation: fmt.Sprintf("Only partial proof of income or status held for a %s applicant", label),
			Action:      fmt.Sprintf("Strengthen the application with the rest of: %s", joinDocs(cluster)),
		}}
	default:
		return nil
	}
}

type bankStatementRule struct{}

func (bankStatementRule) Name() string { return "bank_statement" }

// Most landlords ask for a bank statement irrespective of applicant
// category, so this penalty is never suppressed by cluster alternatives.
func (bankStatementRule) Evaluate(p RenterProfile, _ Listing, cfg Config) []Finding {
	if p.HasDocument(DocBankStatement) {
		return nil
	}

	return []Finding{{
		Rule:        "bank_statement",
		Category:    CategoryDocuments,
		Delta:       -cfg.Documents.NoBankStatementPenalty,
		Explanation: "No bank statement held; most landlords ask for one regardless of applicant category",
		Action:      "Request a recent bank statement from your bank",
	}}
}

func joinDocs(docs []DocumentKind) string {
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		parts = append(parts, string(d))
	}
	return strings.Join(parts, ", ")
}
