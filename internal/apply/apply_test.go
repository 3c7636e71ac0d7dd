package apply

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hazwanhalim/suaraform/internal/model"
)

func validRecord() *model.ApplicationRecord {
	record := &model.ApplicationRecord{
		Applicant: model.Applicant{
			Name:          "Ahmad bin Ali",
			ICNumber:      "900101145678",
			MaritalStatus: model.MaritalSingle,
			MonthlyIncome: model.Float64Ptr(1500),
		},
	}
	record.Guardian.Name = "Siti"
	record.Guardian.Phone = "0123456789"

	return record
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name          string
		mutate        func(*model.ApplicationRecord)
		expectedField string
	}{
		{name: "valid", mutate: func(*model.ApplicationRecord) {}},
		{
			name:          "short ic",
			mutate:        func(r *model.ApplicationRecord) { r.Applicant.ICNumber = "12345" },
			expectedField: "ic_number",
		},
		{
			name: "married without spouse",
			mutate: func(r *model.ApplicationRecord) {
				r.Applicant.MaritalStatus = model.MaritalMarried
				r.Spouse.Name = ""
			},
			expectedField: "spouse",
		},
		{
			name: "too many children",
			mutate: func(r *model.ApplicationRecord) {
				r.Children = make([]model.Child, 6)
			},
			expectedField: "children",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			record := validRecord()
			tc.mutate(record)

			errs := Validate(record)

			if tc.expectedField == "" {
				require.Empty(t, errs, "validation errors")
				return
			}

			require.Len(t, errs, 1, "validation errors")
			require.Equal(t, tc.expectedField, errs[0].Field, "field")

			for _, loc := range model.Locales() {
				require.NotEmpty(t, errs[0].Message(loc), "message for %s", loc)
			}
		})
	}
}

func TestValidationErrorMessageFallsBackToEnglish(t *testing.T) {
	err := ValidationError{
		Field:    "ic_number",
		Messages: map[model.Locale]string{model.LocaleEnglish: "IC number must be 12 digits"},
	}

	require.Equal(t, "IC number must be 12 digits", err.Message(model.LocaleTamil))
}

func TestEstimateEligibility(t *testing.T) {
	for _, tc := range []struct {
		name     string
		income   float64
		children int
		amount   float64
	}{
		{name: "low income no children", income: 2000, children: 0, amount: 150},
		{name: "low income two children", income: 2500, children: 2, amount: 300},
		{name: "low income four children", income: 1000, children: 4, amount: 500},
		{name: "low income five children", income: 1000, children: 5, amount: 650},
		{name: "mid income no children", income: 3000, children: 0, amount: 100},
		{name: "mid income one child", income: 4000, children: 1, amount: 200},
		{name: "mid income three children", income: 4500, children: 3, amount: 250},
		{name: "mid income five children", income: 5000, children: 5, amount: 300},
		{name: "above threshold", income: 5001, children: 2, amount: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			record := validRecord()
			record.Applicant.MonthlyIncome = model.Float64Ptr(tc.income)
			record.SetChildren(tc.children)

			e := EstimateEligibility(record)

			require.Equal(t, tc.amount, e.EstimatedAmount, "amount")
			require.Equal(t, tc.amount > 0, e.Eligible, "eligible")

			if !e.Eligible {
				require.NotEmpty(t, e.Reason, "ineligibility reason")
			}
		})
	}
}

func TestDocumentChecklist(t *testing.T) {
	types := func(items []DocumentItem) []string {
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = item.DocumentType
		}
		return out
	}

	t.Run("single without children", func(t *testing.T) {
		record := validRecord()

		docs := types(DocumentChecklist(record))

		require.Contains(t, docs, "ic_copy")
		require.NotContains(t, docs, "marriage_cert")
		require.NotContains(t, docs, "birth_certs")
	})

	t.Run("married with children", func(t *testing.T) {
		record := validRecord()
		record.Applicant.MaritalStatus = model.MaritalMarried
		record.Spouse.Name = "Aminah"
		record.SetChildren(2)

		docs := types(DocumentChecklist(record))

		require.Contains(t, docs, "marriage_cert")
		require.Contains(t, docs, "birth_certs")
	})

	t.Run("divorced", func(t *testing.T) {
		record := validRecord()
		record.Applicant.MaritalStatus = model.MaritalDivorced

		docs := types(DocumentChecklist(record))

		require.Contains(t, docs, "divorce_cert")
	})

	t.Run("widowed", func(t *testing.T) {
		record := validRecord()
		record.Applicant.MaritalStatus = model.MaritalWidowed

		docs := types(DocumentChecklist(record))

		require.Contains(t, docs, "death_cert")
	})

	t.Run("descriptions cover all languages", func(t *testing.T) {
		for _, item := range DocumentChecklist(validRecord()) {
			for _, loc := range model.Locales() {
				require.NotEmpty(t, item.Descriptions[loc], "%s description for %s", item.DocumentType, loc)
			}
		}
	})
}
