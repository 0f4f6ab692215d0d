package cmd

import (
	"testing"

	"github.com/rentcheck/rentcheck/internal/engine"
)

func TestRenterConfigToProfileNormalizesInput(t *testing.T) {
	cfg := &RenterConfig{
		Type:          " worker ",
		MonthlyIncome: 15000,
		Documents:     []string{"bank statement", "Payslip", ""},
	}

	profile := cfg.toProfile()

	if profile.RenterType != engine.RenterWorker {
		t.Fatalf("expected renter type %s, got %s", engine.RenterWorker, profile.RenterType)
	}
	if len(profile.DocumentsHeld) != 2 {
		t.Fatalf("expected 2 documents, got %v", profile.DocumentsHeld)
	}
	if profile.DocumentsHeld[0] != engine.DocBankStatement || profile.DocumentsHeld[1] != engine.DocPayslip {
		t.Fatalf("unexpected documents: %v", profile.DocumentsHeld)
	}
}

func TestListingConfigToListing(t *testing.T) {
	cfg := &ListingConfig{
		Name:              "Loft",
		Rent:              5000,
		Deposit:           5000,
		ApplicationFee:    250,
		RequiredDocuments: []string{"bank-statement"},
		AreaDemand:        "high",
	}

	listing := cfg.toListing()

	if listing.AreaDemand != engine.DemandHigh {
		t.Fatalf("expected demand %s, got %s", engine.DemandHigh, listing.AreaDemand)
	}
	if len(listing.RequiredDocuments) != 1 || listing.RequiredDocuments[0] != engine.DocBankStatement {
		t.Fatalf("unexpected required documents: %v", listing.RequiredDocuments)
	}
}

func TestDecodeAnswersWeaklyTyped(t *testing.T) {
	answers := map[string]any{
		"renter_type":          "STUDENT",
		"monthly_income":       "9000",
		"monthly_budget":       "0",
		"documents_held":       []string{"PROOF_OF_REGISTRATION"},
		"student_bursary_flag": true,
	}

	var profile engine.RenterProfile
	if err := decodeAnswers(answers, &profile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.RenterType != engine.RenterStudent {
		t.Fatalf("expected renter type %s, got %s", engine.RenterStudent, profile.RenterType)
	}
	if profile.MonthlyIncome != 9000 {
		t.Fatalf("expected income 9000, got %d", profile.MonthlyIncome)
	}
	if !profile.StudentBursary {
		t.Fatalf("expected bursary flag to be set")
	}
	if len(profile.DocumentsHeld) != 1 || profile.DocumentsHeld[0] != engine.DocProofOfRegistration {
		t.Fatalf("unexpected documents: %v", profile.DocumentsHeld)
	}
}
