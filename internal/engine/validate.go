package engine

import (
	"errors"
	"fmt"
)

// Validation failures are fatal to an evaluation: a wrong default for income
// or rent could mislead the user about a real financial decision, so nothing
// is ever coerced or substituted.
var (
	ErrInvalidProfile = errors.New("invalid renter profile")
	ErrInvalidListing = errors.New("invalid listing")
)

func validateProfile(p RenterProfile) error {
	if p.MonthlyIncome <= 0 {
		return fmt.Errorf("%w: monthly_income must be positive, got %d", ErrInvalidProfile, p.MonthlyIncome)
	}
	if !p.RenterType.IsValid() {
		return fmt.Errorf("%w: renter_type %q is not recognized", ErrInvalidProfile, string(p.RenterType))
	}
	if p.StudentBursary && p.RenterType != RenterStudent {
		return fmt.Errorf("%w: student_bursary_flag is only meaningful for renter_type %s", ErrInvalidProfile, RenterStudent)
	}
	if p.MonthlyBudget < 0 {
		return fmt.Errorf("%w: monthly_budget must not be negative, got %d", ErrInvalidProfile, p.MonthlyBudget)
	}
	return nil
}

func validateListing(l Listing) error {
	if l.Rent <= 0 {
		return fmt.Errorf("%w: rent must be positive, got %d", ErrInvalidListing, l.Rent)
	}
	if l.Deposit < 0 {
		return fmt.Errorf("%w: deposit must not be negative, got %d", ErrInvalidListing, l.Deposit)
	}
	if l.ApplicationFee < 0 {
		return fmt.Errorf("%w: application_fee must not be negative, got %d", ErrInvalidListing, l.ApplicationFee)
	}
	if !l.AreaDemand.IsValid() {
		return fmt.Errorf("%w: area_demand %q is not recognized", ErrInvalidListing, string(l.AreaDemand))
	}
	return nil
}
