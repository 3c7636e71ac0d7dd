package model

// MaritalStatus matches the enum the STR portal backend stores.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

type Applicant struct {
	Name          string        `json:"name,omitempty"`
	ICNumber      string        `json:"ic_number,omitempty"`
	MaritalStatus MaritalStatus `json:"marital_status,omitempty"`
	// MonthlyIncome is a pointer so a recorded zero income is
	// distinguishable from "not asked yet".
	MonthlyIncome *float64 `json:"monthly_income,omitempty"`
}

type Spouse struct {
	Name     string `json:"name,omitempty"`
	ICNumber string `json:"ic_number,omitempty"`
}

type Child struct {
	Name     string `json:"name,omitempty"`
	ICNumber string `json:"ic_number,omitempty"`
}

// Documents tracks the applicant's confirmation that each supporting
// document is at hand. Pointers distinguish "not asked yet" from "no".
type Documents struct {
	ICCopy       *bool `json:"ic_copy,omitempty"`
	IncomeProof  *bool `json:"income_proof,omitempty"`
	MarriageCert *bool `json:"marriage_cert,omitempty"`
}

type Guardian struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// ApplicationRecord is the STR application as it accumulates during the
// voice conversation. Its JSON form is what the submission endpoint
// receives.
type ApplicationRecord struct {
	Applicant Applicant `json:"applicant"`
	Spouse    Spouse    `json:"spouse,omitempty"`
	Children  []Child   `json:"children"`
	Documents Documents `json:"documents"`
	Guardian  Guardian  `json:"guardian,omitempty"`

	Submitted       bool   `json:"-"`
	ReferenceNumber string `json:"-"`
}

const MaxChildren = 5

// SetChildren resizes the children list to n entries, preserving any
// already collected child data. n is expected to be pre-clamped.
func (r *ApplicationRecord) SetChildren(n int) {
	children := make([]Child, n)
	copy(children, r.Children)
	r.Children = children
}

func BoolPtr(b bool) *bool {
	return &b
}

func Float64Ptr(v float64) *float64 {
	return &v
}
