package engine

import "strings"

// RenterType categorizes the applicant for document clustering.
type RenterType string

const (
	RenterWorker          RenterType = "WORKER"
	RenterNewProfessional RenterType = "NEW_PROFESSIONAL"
	RenterStudent         RenterType = "STUDENT"
)

func (t RenterType) IsValid() bool {
	switch t {
	case RenterWorker, RenterNewProfessional, RenterStudent:
		return true
	}
	return false
}

// AreaDemand reflects applicant competition in the listing's area.
type AreaDemand string

const (
	DemandLow    AreaDemand = "LOW"
	DemandMedium AreaDemand = "MEDIUM"
	DemandHigh   AreaDemand = "HIGH"
)

func (d AreaDemand) IsValid() bool {
	switch d {
	case DemandLow, DemandMedium, DemandHigh:
		return true
	}
	return false
}

// DocumentKind is a document tag. The constants below form the closed set
// the clustering logic understands; any other tag is carried as-is and only
// participates in required-document matching.
type DocumentKind string

const (
	DocBankStatement       DocumentKind = "BANK_STATEMENT"
	DocPayslip             DocumentKind = "PAYSLIP"
	DocEmploymentContract  DocumentKind = "EMPLOYMENT_CONTRACT"
	DocGuarantorLetter     DocumentKind = "GUARANTOR_LETTER"
	DocProofOfRegistration DocumentKind = "PROOF_OF_REGISTRATION"
	DocBursaryLetter       DocumentKind = "BURSARY_LETTER"
)

func (d DocumentKind) IsKnown() bool {
	switch d {
	case DocBankStatement, DocPayslip, DocEmploymentContract,
		DocGuarantorLetter, DocProofOfRegistration, DocBursaryLetter:
		return true
	}
	return false
}

// NormalizeDocumentKind converts common tag spellings ("bank statement",
// "bank-statement", "Bank_Statement") to the canonical form.
func NormalizeDocumentKind(tag string) DocumentKind {
	normalized := strings.ToUpper(strings.TrimSpace(tag))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	return DocumentKind(normalized)
}

// RenterProfile describes the applicant. MonthlyBudget is the renter's
// self-declared cap; zero means not provided.
type RenterProfile struct {
	RenterType     RenterType     `json:"renter_type" mapstructure:"renter_type"`
	MonthlyIncome  int            `json:"monthly_income" mapstructure:"monthly_income"`
	MonthlyBudget  int            `json:"monthly_budget,omitempty" mapstructure:"monthly_budget"`
	DocumentsHeld  []DocumentKind `json:"documents_held" mapstructure:"documents_held"`
	StudentBursary bool           `json:"student_bursary_flag,omitempty" mapstructure:"student_bursary_flag"`
}

// HasDocument reports whether the profile holds the given document tag.
func (p RenterProfile) HasDocument(doc DocumentKind) bool {
	for _, held := range p.DocumentsHeld {
		if held == doc {
			return true
		}
	}
	return false
}

// Listing is a snapshot of a rental advertisement.
type Listing struct {
	Name              string         `json:"name,omitempty" mapstructure:"name"`
	Rent              int            `json:"rent" mapstructure:"rent"`
	Deposit           int            `json:"deposit" mapstructure:"deposit"`
	ApplicationFee    int            `json:"application_fee" mapstructure:"application_fee"`
	RequiredDocuments []DocumentKind `json:"required_documents" mapstructure:"required_documents"`
	AreaDemand        AreaDemand     `json:"area_demand" mapstructure:"area_demand"`
}

// TotalUpfront is the cash needed on signing: first rent, deposit and the
// non-refundable application fee.
func (l Listing) TotalUpfront() int {
	return l.Rent + l.Deposit + l.ApplicationFee
}
