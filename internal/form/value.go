package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hazwanhalim/suaraform/internal/model"
)

// Value reads the recorded answer for the given descriptor. The second
// return value reports whether any value has been recorded yet. Boolean
// fields report their value via the pointer being set, so "answered no"
// still counts as recorded.
func Value(r *model.ApplicationRecord, f FieldDescriptor) (string, bool) {
	switch f.Section {
	case SectionApplicant:
		switch f.Field {
		case "name":
			return r.Applicant.Name, r.Applicant.Name != ""
		case "ic_number":
			return r.Applicant.ICNumber, r.Applicant.ICNumber != ""
		case "marital_status":
			return string(r.Applicant.MaritalStatus), r.Applicant.MaritalStatus != ""
		case "monthly_income":
			if r.Applicant.MonthlyIncome == nil {
				return "", false
			}
			return strconv.FormatFloat(*r.Applicant.MonthlyIncome, 'f', -1, 64), true
		}
	case SectionSpouse:
		switch f.Field {
		case "name":
			return r.Spouse.Name, r.Spouse.Name != ""
		case "ic_number":
			return r.Spouse.ICNumber, r.Spouse.ICNumber != ""
		}
	case SectionChildren:
		if f.ChildIndex < 0 || f.ChildIndex >= len(r.Children) {
			return "", false
		}
		switch f.Field {
		case "name":
			return r.Children[f.ChildIndex].Name, r.Children[f.ChildIndex].Name != ""
		case "ic_number":
			return r.Children[f.ChildIndex].ICNumber, r.Children[f.ChildIndex].ICNumber != ""
		}
	case SectionDocuments:
		var b *bool
		switch f.Field {
		case "ic_copy":
			b = r.Documents.ICCopy
		case "income_proof":
			b = r.Documents.IncomeProof
		case "marriage_cert":
			b = r.Documents.MarriageCert
		}
		if b == nil {
			return "", false
		}
		return strconv.FormatBool(*b), true
	case SectionGuardian:
		switch f.Field {
		case "name":
			return r.Guardian.Name, r.Guardian.Name != ""
		case "relationship":
			return r.Guardian.Relationship, r.Guardian.Relationship != ""
		case "phone":
			return r.Guardian.Phone, r.Guardian.Phone != ""
		}
	}

	return "", false
}

// SetValue writes a confirmed answer into the record. Number fields are
// parsed leniently (digits extracted from the value), select fields are
// expected to already be normalized to their enum value.
func SetValue(r *model.ApplicationRecord, f FieldDescriptor, value string) error {
	value = strings.TrimSpace(value)

	switch f.Section {
	case SectionApplicant:
		switch f.Field {
		case "name":
			r.Applicant.Name = value
			return nil
		case "ic_number":
			r.Applicant.ICNumber = digitsOnly(value)
			return nil
		case "marital_status":
			r.Applicant.MaritalStatus = model.MaritalStatus(value)
			return nil
		case "monthly_income":
			income, err := parseAmount(value)
			if err != nil {
				return fmt.Errorf("parse monthly income: %w", err)
			}
			r.Applicant.MonthlyIncome = model.Float64Ptr(income)
			return nil
		}
	case SectionSpouse:
		switch f.Field {
		case "name":
			r.Spouse.Name = value
			return nil
		case "ic_number":
			r.Spouse.ICNumber = digitsOnly(value)
			return nil
		}
	case SectionChildren:
		if f.ChildIndex < 0 || f.ChildIndex >= len(r.Children) {
			return fmt.Errorf("child index %d out of range, %d children recorded", f.ChildIndex, len(r.Children))
		}
		switch f.Field {
		case "name":
			r.Children[f.ChildIndex].Name = value
			return nil
		case "ic_number":
			r.Children[f.ChildIndex].ICNumber = digitsOnly(value)
			return nil
		}
	case SectionGuardian:
		switch f.Field {
		case "name":
			r.Guardian.Name = value
			return nil
		case "relationship":
			r.Guardian.Relationship = value
			return nil
		case "phone":
			r.Guardian.Phone = digitsOnly(value)
			return nil
		}
	}

	return fmt.Errorf("no settable field %q", f.Key)
}

// SetBool writes a boolean answer. Only document fields are boolean.
func SetBool(r *model.ApplicationRecord, f FieldDescriptor, value bool) error {
	if f.Section != SectionDocuments {
		return fmt.Errorf("field %q is not boolean", f.Key)
	}

	switch f.Field {
	case "ic_copy":
		r.Documents.ICCopy = model.BoolPtr(value)
	case "income_proof":
		r.Documents.IncomeProof = model.BoolPtr(value)
	case "marriage_cert":
		r.Documents.MarriageCert = model.BoolPtr(value)
	default:
		return fmt.Errorf("no boolean field %q", f.Key)
	}

	return nil
}

// Asked reports whether the field applies given the answers so far.
// Conditional fields are skipped when their predicate does not hold.
func Asked(r *model.ApplicationRecord, f FieldDescriptor) bool {
	switch f.Conditional {
	case ConditionMarried:
		return r.Applicant.MaritalStatus == model.MaritalMarried
	}

	return true
}

func digitsOnly(s string) string {
	var b strings.Builder

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return strings.TrimSpace(s)
	}

	return b.String()
}

func parseAmount(s string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' {
			return r
		}
		return -1
	}, s)

	if cleaned == "" {
		return 0, fmt.Errorf("no numeric amount in %q", s)
	}

	return strconv.ParseFloat(cleaned, 64)
}
