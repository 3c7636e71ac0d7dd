package apply

import "github.com/hazwanhalim/suaraform/internal/model"

// DocumentItem is one entry of the supporting-document checklist shown
// at the review step.
type DocumentItem struct {
	DocumentType string                  `json:"document_type"`
	Required     bool                    `json:"required"`
	Descriptions map[model.Locale]string `json:"descriptions"`
}

// DocumentChecklist derives the required supporting documents from the
// marital status and children of the record, following the official STR
// requirements.
func DocumentChecklist(r *model.ApplicationRecord) []DocumentItem {
	var documents []DocumentItem

	switch r.Applicant.MaritalStatus {
	case model.MaritalMarried:
		documents = append(documents,
			DocumentItem{
				DocumentType: "marriage_cert",
				Required:     true,
				Descriptions: map[model.Locale]string{
					model.LocaleEnglish: "Marriage Certificate (Sijil Kahwin)",
					model.LocaleMalay:   "Sijil Kahwin",
					model.LocaleChinese: "结婚证书",
					model.LocaleTamil:   "திருமண சான்றிதழ்",
				},
			},
			DocumentItem{
				DocumentType: "spouse_confirmation",
				Required:     true,
				Descriptions: map[model.Locale]string{
					model.LocaleEnglish: "Spouse Confirmation Letter (Pengesahan Pasangan)",
					model.LocaleMalay:   "Pengesahan Pasangan",
					model.LocaleChinese: "配偶确认信",
					model.LocaleTamil:   "மனைவி/கணவர் உறுதிப்படுத்தல்",
				},
			})
	case model.MaritalDivorced:
		documents = append(documents, DocumentItem{
			DocumentType: "divorce_cert",
			Required:     true,
			Descriptions: map[model.Locale]string{
				model.LocaleEnglish: "Divorce Certificate (Sijil Cerai)",
				model.LocaleMalay:   "Sijil Cerai",
				model.LocaleChinese: "离婚证书",
				model.LocaleTamil:   "விவாகரத்து சான்றிதழ்",
			},
		})
	case model.MaritalWidowed:
		documents = append(documents, DocumentItem{
			DocumentType: "death_cert",
			Required:     true,
			Descriptions: map[model.Locale]string{
				model.LocaleEnglish: "Spouse Death Certificate (Sijil Kematian Pasangan)",
				model.LocaleMalay:   "Sijil Kematian Pasangan",
				model.LocaleChinese: "配偶死亡证明",
				model.LocaleTamil:   "மனைவி/கணவர் இறப்பு சான்றிதழ்",
			},
		})
	}

	if len(r.Children) > 0 {
		documents = append(documents, DocumentItem{
			DocumentType: "birth_certs",
			Required:     true,
			Descriptions: map[model.Locale]string{
				model.LocaleEnglish: "Birth Certificates of all children (Sijil Lahir Anak)",
				model.LocaleMalay:   "Sijil Lahir Anak (semua)",
				model.LocaleChinese: "所有子女的出生证明",
				model.LocaleTamil:   "அனைத்து குழந்தைகளின் பிறப்பு சான்றிதழ்கள்",
			},
		})
	}

	documents = append(documents,
		DocumentItem{
			DocumentType: "ic_copy",
			Required:     true,
			Descriptions: map[model.Locale]string{
				model.LocaleEnglish: "MyKad/IC copy (front and back)",
				model.LocaleMalay:   "Salinan MyKad (depan dan belakang)",
				model.LocaleChinese: "身份证副本（正反面）",
				model.LocaleTamil:   "அடையாள அட்டை நகல் (முன் மற்றும் பின்)",
			},
		},
		DocumentItem{
			DocumentType: "bank_statement",
			Required:     false,
			Descriptions: map[model.Locale]string{
				model.LocaleEnglish: "Bank statement (if requested)",
				model.LocaleMalay:   "Penyata bank (jika diminta)",
				model.LocaleChinese: "银行对账单（如要求）",
				model.LocaleTamil:   "வங்கி அறிக்கை (தேவைப்பட்டால்)",
			},
		})

	return documents
}
