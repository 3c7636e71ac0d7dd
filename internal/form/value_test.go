package form

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hazwanhalim/suaraform/internal/model"
)

func fieldByKey(t *testing.T, key string, childCount int) FieldDescriptor {
	t.Helper()

	s := NewSchema()
	s.Materialize(childCount)

	for _, f := range s.Fields() {
		if f.Key == key {
			return f
		}
	}

	t.Fatalf("no field %q in schema", key)
	return FieldDescriptor{}
}

func TestSetValueAndValue(t *testing.T) {
	for _, tc := range []struct {
		name     string
		key      string
		input    string
		expected string
	}{
		{name: "name is kept verbatim", key: "applicant.name", input: "Ahmad bin Ali", expected: "Ahmad bin Ali"},
		{name: "ic keeps digits only", key: "applicant.ic_number", input: "900101-14-5678", expected: "900101145678"},
		{name: "income drops currency words", key: "applicant.monthly_income", input: "RM 1,500", expected: "1500"},
		{name: "phone keeps digits only", key: "guardian.phone", input: "012-345 6789", expected: "0123456789"},
		{name: "child name", key: "children[0].name", input: "Siti", expected: "Siti"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			record := &model.ApplicationRecord{}
			record.SetChildren(1)
			f := fieldByKey(t, tc.key, 1)

			_, recorded := Value(record, f)
			require.False(t, recorded, "recorded before set")

			err := SetValue(record, f, tc.input)
			require.NoError(t, err)

			value, recorded := Value(record, f)
			require.True(t, recorded, "recorded after set")
			require.Equal(t, tc.expected, value, "value")
		})
	}
}

func TestSetValueRejectsUnparsableIncome(t *testing.T) {
	record := &model.ApplicationRecord{}
	f := fieldByKey(t, "applicant.monthly_income", 0)

	err := SetValue(record, f, "about average")
	require.Error(t, err, "non-numeric income")

	_, recorded := Value(record, f)
	require.False(t, recorded, "recorded after rejected set")
}

func TestZeroIncomeCountsAsRecorded(t *testing.T) {
	record := &model.ApplicationRecord{}
	f := fieldByKey(t, "applicant.monthly_income", 0)

	_, recorded := Value(record, f)
	require.False(t, recorded, "recorded before any answer")

	require.NoError(t, SetValue(record, f, "0"))

	value, recorded := Value(record, f)
	require.True(t, recorded, "zero income is a real answer")
	require.Equal(t, "0", value)
}

func TestSetBool(t *testing.T) {
	record := &model.ApplicationRecord{}
	f := fieldByKey(t, "documents.ic_copy", 0)

	_, recorded := Value(record, f)
	require.False(t, recorded, "recorded before set")

	err := SetBool(record, f, false)
	require.NoError(t, err)

	// "no" is a recorded answer, not a missing one
	value, recorded := Value(record, f)
	require.True(t, recorded, "recorded after set")
	require.Equal(t, "false", value, "value")

	err = SetBool(record, fieldByKey(t, "applicant.name", 0), true)
	require.Error(t, err, "non-boolean field")
}

func TestAsked(t *testing.T) {
	record := &model.ApplicationRecord{}
	spouseName := fieldByKey(t, "spouse.name", 0)
	marriageCert := fieldByKey(t, "documents.marriage_cert", 0)
	applicantName := fieldByKey(t, "applicant.name", 0)

	require.True(t, Asked(record, applicantName), "unconditional field")
	require.False(t, Asked(record, spouseName), "spouse field while unmarried")
	require.False(t, Asked(record, marriageCert), "marriage cert while unmarried")

	record.Applicant.MaritalStatus = model.MaritalMarried
	require.True(t, Asked(record, spouseName), "spouse field while married")
	require.True(t, Asked(record, marriageCert), "marriage cert while married")

	record.Applicant.MaritalStatus = model.MaritalDivorced
	require.False(t, Asked(record, spouseName), "spouse field while divorced")
}
