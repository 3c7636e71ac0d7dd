package apply

import (
	"fmt"

	"github.com/hazwanhalim/suaraform/internal/model"
)

// Eligibility is the estimated STR entitlement for a record, computed
// with the published STR 2026 tiers so it can be spoken at the review
// step before the official submission.
type Eligibility struct {
	Eligible        bool    `json:"eligible"`
	EstimatedAmount float64 `json:"estimated_amount"`
	Reason          string  `json:"reason"`
}

// EstimateEligibility applies the STR 2026 tiered amounts based on
// household income and number of children.
func EstimateEligibility(r *model.ApplicationRecord) Eligibility {
	var income float64
	if r.Applicant.MonthlyIncome != nil {
		income = *r.Applicant.MonthlyIncome
	}
	numChildren := len(r.Children)

	amount := 0.0

	switch {
	case income <= 2500:
		switch {
		case numChildren == 0:
			amount = 150
		case numChildren <= 2:
			amount = 300
		case numChildren <= 4:
			amount = 500
		default:
			amount = 650
		}
	case income <= 5000:
		switch {
		case numChildren == 0:
			amount = 100
		case numChildren <= 2:
			amount = 200
		case numChildren <= 4:
			amount = 250
		default:
			amount = 300
		}
	}

	if amount == 0 {
		return Eligibility{
			Reason: "Income exceeds RM5,000 threshold",
		}
	}

	return Eligibility{
		Eligible:        true,
		EstimatedAmount: amount,
		Reason:          fmt.Sprintf("Household income RM%.2f, %d children", income, numChildren),
	}
}
