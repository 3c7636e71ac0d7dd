package form

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchemaMaterialize(t *testing.T) {
	for _, tc := range []struct {
		name       string
		childCount int
		expected   int
	}{
		{name: "no children", childCount: 0, expected: 0},
		{name: "two children", childCount: 2, expected: 2},
		{name: "max children", childCount: 5, expected: 5},
		{name: "clamped above max", childCount: 8, expected: 5},
		{name: "clamped below zero", childCount: -1, expected: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			testee := NewSchema()
			before := len(testee.Fields())

			fields := testee.Materialize(tc.childCount)

			require.True(t, testee.Materialized(), "materialized")
			require.Len(t, fields, before-1+tc.expected*2, "field count")

			for _, f := range fields {
				require.False(t, f.Placeholder, "placeholder should be gone")
			}

			childFields := 0
			for _, f := range fields {
				if f.Section == SectionChildren {
					childFields++
				}
			}
			require.Equal(t, tc.expected*2, childFields, "child field count")
		})
	}
}

func TestSchemaMaterializeIsIdempotent(t *testing.T) {
	testee := NewSchema()

	first := testee.Materialize(3)
	second := testee.Materialize(5)

	require.Equal(t, first, second, "second materialization must not change the schema")
	require.Len(t, second, len(template)-1+6, "field count")
}

func TestSchemaMaterializePreservesOrder(t *testing.T) {
	testee := NewSchema()
	fields := testee.Materialize(1)

	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}

	require.Equal(t, []string{
		"applicant.name",
		"applicant.ic_number",
		"applicant.marital_status",
		"applicant.monthly_income",
		"spouse.name",
		"spouse.ic_number",
		"children[0].name",
		"children[0].ic_number",
		"documents.ic_copy",
		"documents.income_proof",
		"documents.marriage_cert",
		"guardian.name",
		"guardian.relationship",
		"guardian.phone",
	}, keys, "field order")
}
