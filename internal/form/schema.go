package form

import "github.com/hazwanhalim/suaraform/internal/model"

// template is the static field list with a single children expansion
// point. The order mirrors the six sections of the official STR form.
var template = []FieldDescriptor{
	{Key: "applicant.name", Section: SectionApplicant, Field: "name", Kind: KindText},
	{Key: "applicant.ic_number", Section: SectionApplicant, Field: "ic_number", Kind: KindText},
	{Key: "applicant.marital_status", Section: SectionApplicant, Field: "marital_status", Kind: KindSelect},
	{Key: "applicant.monthly_income", Section: SectionApplicant, Field: "monthly_income", Kind: KindNumber},
	{Key: "spouse.name", Section: SectionSpouse, Field: "name", Kind: KindText, Conditional: ConditionMarried},
	{Key: "spouse.ic_number", Section: SectionSpouse, Field: "ic_number", Kind: KindText, Conditional: ConditionMarried},
	{Key: "children", Section: SectionChildren, Placeholder: true},
	{Key: "documents.ic_copy", Section: SectionDocuments, Field: "ic_copy", Kind: KindBoolean},
	{Key: "documents.income_proof", Section: SectionDocuments, Field: "income_proof", Kind: KindBoolean},
	{Key: "documents.marriage_cert", Section: SectionDocuments, Field: "marriage_cert", Kind: KindBoolean, Conditional: ConditionMarried},
	{Key: "guardian.name", Section: SectionGuardian, Field: "name", Kind: KindText},
	{Key: "guardian.relationship", Section: SectionGuardian, Field: "relationship", Kind: KindText},
	{Key: "guardian.phone", Section: SectionGuardian, Field: "phone", Kind: KindText},
}

// Schema is the ordered question list driving the conversation. It
// starts as the static template and is materialized exactly once, when
// the children count becomes known.
type Schema struct {
	fields       []FieldDescriptor
	materialized bool
}

func NewSchema() *Schema {
	fields := make([]FieldDescriptor, len(template))
	copy(fields, template)

	return &Schema{fields: fields}
}

// Fields returns the current ordered field list. The returned slice must
// not be mutated by the caller.
func (s *Schema) Fields() []FieldDescriptor {
	return s.fields
}

func (s *Schema) Materialized() bool {
	return s.materialized
}

// Materialize replaces the children placeholder with two concrete
// descriptors per child (name, then IC number), preserving the relative
// order of all other fields. The count is clamped into [0,5]. Calling
// Materialize again is a no-op so the field list can never contain
// duplicate child descriptors.
func (s *Schema) Materialize(childCount int) []FieldDescriptor {
	if s.materialized {
		return s.fields
	}

	if childCount < 0 {
		childCount = 0
	}
	if childCount > model.MaxChildren {
		childCount = model.MaxChildren
	}

	fields := make([]FieldDescriptor, 0, len(s.fields)-1+childCount*2)

	for _, f := range s.fields {
		if !f.Placeholder {
			fields = append(fields, f)
			continue
		}

		for i := 0; i < childCount; i++ {
			fields = append(fields,
				FieldDescriptor{
					Key:        childKey(i, "name"),
					Section:    SectionChildren,
					Field:      "name",
					Kind:       KindText,
					ChildIndex: i,
				},
				FieldDescriptor{
					Key:        childKey(i, "ic_number"),
					Section:    SectionChildren,
					Field:      "ic_number",
					Kind:       KindText,
					ChildIndex: i,
				})
		}
	}

	s.fields = fields
	s.materialized = true

	return s.fields
}
