package apply

import (
	"github.com/hazwanhalim/suaraform/internal/model"
)

// ValidationError describes one invalid field with messages in every
// supported language, mirroring the portal's progressive validation.
type ValidationError struct {
	Field    string                  `json:"field"`
	Messages map[model.Locale]string `json:"messages"`
}

func (e ValidationError) Message(loc model.Locale) string {
	if msg, ok := e.Messages[loc]; ok {
		return msg
	}

	return e.Messages[model.LocaleEnglish]
}

// Validate checks an application record before submission. An empty
// result means the record is submittable.
func Validate(r *model.ApplicationRecord) []ValidationError {
	var errs []ValidationError

	if len(r.Applicant.ICNumber) != 12 {
		errs = append(errs, ValidationError{
			Field: "ic_number",
			Messages: map[model.Locale]string{
				model.LocaleEnglish: "IC number must be 12 digits",
				model.LocaleMalay:   "Nombor IC mesti 12 digit",
				model.LocaleChinese: "身份证号码必须是12位数字",
				model.LocaleTamil:   "அடையாள எண் 12 இலக்கங்களாக இருக்க வேண்டும்",
			},
		})
	}

	if r.Applicant.MaritalStatus == model.MaritalMarried && r.Spouse.Name == "" {
		errs = append(errs, ValidationError{
			Field: "spouse",
			Messages: map[model.Locale]string{
				model.LocaleEnglish: "Spouse information is required for married applicants",
				model.LocaleMalay:   "Maklumat pasangan diperlukan untuk pemohon berkahwin",
				model.LocaleChinese: "已婚申请人需要配偶信息",
				model.LocaleTamil:   "திருமணமானவர்களுக்கு மனைவி/கணவர் தகவல் தேவை",
			},
		})
	}

	if len(r.Children) > model.MaxChildren {
		errs = append(errs, ValidationError{
			Field: "children",
			Messages: map[model.Locale]string{
				model.LocaleEnglish: "Maximum 5 children allowed",
				model.LocaleMalay:   "Maksimum 5 orang anak dibenarkan",
				model.LocaleChinese: "最多允许5个孩子",
				model.LocaleTamil:   "அதிகபட்சம் 5 குழந்தைகள் மட்டுமே அனுமதிக்கப்படும்",
			},
		})
	}

	return errs
}
