package locale

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hazwanhalim/suaraform/internal/model"
)

var fieldKeys = []string{
	"applicant.name",
	"applicant.ic_number",
	"applicant.marital_status",
	"applicant.monthly_income",
	"spouse.name",
	"spouse.ic_number",
	"documents.ic_copy",
	"documents.income_proof",
	"documents.marriage_cert",
	"guardian.name",
	"guardian.relationship",
	"guardian.phone",
}

func TestTablesAreComplete(t *testing.T) {
	for _, loc := range model.Locales() {
		t.Run(string(loc), func(t *testing.T) {
			table := For(loc)

			for _, key := range fieldKeys {
				require.NotEmpty(t, table.FieldQuestion(key), "question for %s", key)
			}

			require.NotEmpty(t, table.ChildrenCount, "children count question")
			require.NotEmpty(t, table.Completed, "completed message")
			require.NotEmpty(t, table.Retry, "retry message")
			require.NotEmpty(t, table.YesWord, "yes word")
			require.NotEmpty(t, table.NoWord, "no word")

			require.Contains(t, table.ProgressQuestion(2, 10, "Q"), "Q", "progress question embeds the question")
			require.Contains(t, table.ConfirmPrompt("VALUE"), "VALUE", "confirm prompt embeds the value")
			require.Contains(t, table.ChangePrompt("VALUE"), "VALUE", "change prompt embeds the value")
			require.NotEmpty(t, table.ChildNameQuestion(1), "child name question")
			require.NotEmpty(t, table.ChildICQuestion(1), "child ic question")

			for _, status := range []model.MaritalStatus{
				model.MaritalSingle, model.MaritalMarried, model.MaritalDivorced, model.MaritalWidowed,
			} {
				require.NotEmpty(t, table.Marital[status], "marital word for %s", status)
			}
		})
	}
}

func TestKeywordsAreComplete(t *testing.T) {
	for _, loc := range model.Locales() {
		t.Run(string(loc), func(t *testing.T) {
			k := KeywordsFor(loc)

			require.NotEmpty(t, k.Yes, "yes keywords")
			require.NotEmpty(t, k.No, "no keywords")
			require.NotEmpty(t, k.Skip, "skip keywords")
			require.NotEmpty(t, k.Numbers, "number words")

			// Words above the children limit must still be recognized so
			// they can be clamped instead of read as "no children".
			counts := map[int]bool{}
			for _, n := range k.Numbers {
				counts[n] = true
			}
			for n := 0; n <= 10; n++ {
				require.True(t, counts[n], "number word for %d", n)
			}
		})
	}
}

func TestForFallsBackToEnglish(t *testing.T) {
	table := For(model.Locale("xx"))

	require.Equal(t, For(model.LocaleEnglish), table, "unknown locale falls back to English")
}
