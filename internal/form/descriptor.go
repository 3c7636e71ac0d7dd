package form

import "fmt"

// Kind is the answer type of a form field.
type Kind string

const (
	KindText    Kind = "text"
	KindNumber  Kind = "number"
	KindSelect  Kind = "select"
	KindBoolean Kind = "boolean"
)

// Section names a sub-record of the application.
type Section string

const (
	SectionApplicant Section = "applicant"
	SectionSpouse    Section = "spouse"
	SectionChildren  Section = "children"
	SectionDocuments Section = "documents"
	SectionGuardian  Section = "guardian"
)

// Condition is a predicate tag deciding whether a field is asked at all.
type Condition string

const (
	// ConditionMarried skips the field unless the applicant is married.
	ConditionMarried Condition = "married"
)

// FieldDescriptor describes one question of the application form.
// ChildIndex is only meaningful for children fields and identifies the
// repetition (0-based). The children placeholder is the designated
// expansion point that Materialize replaces.
type FieldDescriptor struct {
	Key         string
	Section     Section
	Field       string
	Kind        Kind
	Conditional Condition
	ChildIndex  int

	// Placeholder marks the children expansion point. It is never asked
	// directly; reaching it triggers the children-count question.
	Placeholder bool
}

func childKey(index int, field string) string {
	return fmt.Sprintf("children[%d].%s", index, field)
}
