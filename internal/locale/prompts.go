package locale

import (
	"fmt"

	"github.com/hazwanhalim/suaraform/internal/model"
)

// Table holds every spoken string for one language. Field questions are
// keyed by the schema field key (without child index).
type Table struct {
	Fields map[string]string

	// Marital renders the stored marital-status enum in this language
	// for spoken prompts.
	Marital map[model.MaritalStatus]string

	Progress      string // progress-annotated question: step, total, question
	Confirm       string // confirmation of an extracted value
	Change        string // "currently X - change it?" for a present value
	ChildrenCount string
	ChildName     string // question for child n's name
	ChildIC       string
	Completed     string
	Retry         string

	YesWord string // spoken rendering of boolean values
	NoWord  string
}

func For(loc model.Locale) Table {
	t, ok := tables[loc]
	if !ok {
		return tables[model.LocaleEnglish]
	}

	return t
}

func (t Table) FieldQuestion(key string) string {
	return t.Fields[key]
}

func (t Table) ProgressQuestion(step, total int, question string) string {
	return fmt.Sprintf(t.Progress, step, total, question)
}

func (t Table) ConfirmPrompt(value string) string {
	return fmt.Sprintf(t.Confirm, value)
}

func (t Table) ChangePrompt(value string) string {
	return fmt.Sprintf(t.Change, value)
}

func (t Table) ChildNameQuestion(n int) string {
	return fmt.Sprintf(t.ChildName, n)
}

func (t Table) ChildICQuestion(n int) string {
	return fmt.Sprintf(t.ChildIC, n)
}

// MaritalWord renders a recorded marital status the way it should be
// spoken, falling back to the raw enum value for unknown statuses.
func (t Table) MaritalWord(s model.MaritalStatus) string {
	if word, ok := t.Marital[s]; ok {
		return word
	}

	return string(s)
}

// BoolWord renders a recorded boolean the way it should be spoken.
func (t Table) BoolWord(b bool) string {
	if b {
		return t.YesWord
	}

	return t.NoWord
}

var tables = map[model.Locale]Table{
	model.LocaleEnglish: {
		Fields: map[string]string{
			"applicant.name":           "Please say your full name.",
			"applicant.ic_number":      "Please say your IC number, digit by digit.",
			"applicant.marital_status": "What is your marital status? Single, married, divorced or widowed?",
			"applicant.monthly_income": "What is your household monthly income in Ringgit?",
			"spouse.name":              "Please say your spouse's full name.",
			"spouse.ic_number":         "Please say your spouse's IC number.",
			"documents.ic_copy":        "Do you have a copy of your IC ready?",
			"documents.income_proof":   "Do you have proof of income ready, such as a payslip?",
			"documents.marriage_cert":  "Do you have your marriage certificate ready?",
			"guardian.name":            "Please say the name of your emergency contact.",
			"guardian.relationship":    "What is their relationship to you? For example parent or sibling.",
			"guardian.phone":           "Please say their phone number, digit by digit.",
		},
		Marital: map[model.MaritalStatus]string{
			model.MaritalSingle:   "single",
			model.MaritalMarried:  "married",
			model.MaritalDivorced: "divorced",
			model.MaritalWidowed:  "widowed",
		},
		Progress:      "Question %d of %d. %s",
		Confirm:       "I heard %s. Is this correct?",
		Change:        "This is currently %s. Do you want to change it?",
		ChildrenCount: "How many children do you have? You can register up to five.",
		ChildName:     "Please say the name of child number %d.",
		ChildIC:       "Please say the IC or MyKid number of child number %d.",
		Completed:     "Thank you. All questions are done. Please review your application before submitting.",
		Retry:         "Sorry, I did not catch that. Please try again.",
		YesWord:       "yes",
		NoWord:        "no",
	},
	model.LocaleMalay: {
		Fields: map[string]string{
			"applicant.name":           "Sila sebut nama penuh anda.",
			"applicant.ic_number":      "Sila sebut nombor IC anda, digit demi digit.",
			"applicant.marital_status": "Apakah status perkahwinan anda? Bujang, berkahwin, bercerai atau balu?",
			"applicant.monthly_income": "Berapakah pendapatan bulanan isi rumah anda dalam Ringgit?",
			"spouse.name":              "Sila sebut nama penuh pasangan anda.",
			"spouse.ic_number":         "Sila sebut nombor IC pasangan anda.",
			"documents.ic_copy":        "Adakah anda mempunyai salinan IC yang sedia?",
			"documents.income_proof":   "Adakah anda mempunyai bukti pendapatan, seperti slip gaji?",
			"documents.marriage_cert":  "Adakah anda mempunyai sijil kahwin yang sedia?",
			"guardian.name":            "Sila sebut nama waris atau hubungan kecemasan anda.",
			"guardian.relationship":    "Apakah hubungan mereka dengan anda? Contohnya ibu bapa atau adik-beradik.",
			"guardian.phone":           "Sila sebut nombor telefon mereka, digit demi digit.",
		},
		Marital: map[model.MaritalStatus]string{
			model.MaritalSingle:   "bujang",
			model.MaritalMarried:  "berkahwin",
			model.MaritalDivorced: "bercerai",
			model.MaritalWidowed:  "balu",
		},
		Progress:      "Soalan %d daripada %d. %s",
		Confirm:       "Saya dengar %s. Betul?",
		Change:        "Nilai semasa ialah %s. Mahu ubah?",
		ChildrenCount: "Berapa orang anak anda? Anda boleh daftar sehingga lima orang.",
		ChildName:     "Sila sebut nama anak ke-%d.",
		ChildIC:       "Sila sebut nombor IC atau MyKid anak ke-%d.",
		Completed:     "Terima kasih. Semua soalan selesai. Sila semak permohonan anda sebelum hantar.",
		Retry:         "Maaf, saya tidak faham. Sila cuba lagi.",
		YesWord:       "ya",
		NoWord:        "tidak",
	},
	model.LocaleChinese: {
		Fields: map[string]string{
			"applicant.name":           "请说出您的全名。",
			"applicant.ic_number":      "请逐位读出您的身份证号码。",
			"applicant.marital_status": "您的婚姻状况是什么？单身、已婚、离婚还是丧偶？",
			"applicant.monthly_income": "您的家庭每月收入是多少令吉？",
			"spouse.name":              "请说出您配偶的全名。",
			"spouse.ic_number":         "请说出您配偶的身份证号码。",
			"documents.ic_copy":        "您准备好身份证副本了吗？",
			"documents.income_proof":   "您准备好收入证明了吗？例如工资单。",
			"documents.marriage_cert":  "您准备好结婚证书了吗？",
			"guardian.name":            "请说出您紧急联系人的姓名。",
			"guardian.relationship":    "他们与您是什么关系？例如父母或兄弟姐妹。",
			"guardian.phone":           "请逐位读出他们的电话号码。",
		},
		Marital: map[model.MaritalStatus]string{
			model.MaritalSingle:   "单身",
			model.MaritalMarried:  "已婚",
			model.MaritalDivorced: "离婚",
			model.MaritalWidowed:  "丧偶",
		},
		Progress:      "第%d题，共%d题。%s",
		Confirm:       "我听到的是%s。对吗？",
		Change:        "目前的值是%s。要更改吗？",
		ChildrenCount: "您有几个孩子？最多可以登记五个。",
		ChildName:     "请说出第%d个孩子的姓名。",
		ChildIC:       "请说出第%d个孩子的身份证或MyKid号码。",
		Completed:     "谢谢。所有问题已完成。提交前请检查您的申请。",
		Retry:         "抱歉，我没听清楚。请再试一次。",
		YesWord:       "是",
		NoWord:        "不是",
	},
	model.LocaleTamil: {
		Fields: map[string]string{
			"applicant.name":           "உங்கள் முழு பெயரைச் சொல்லவும்.",
			"applicant.ic_number":      "உங்கள் அடையாள எண்ணை இலக்கம் இலக்கமாகச் சொல்லவும்.",
			"applicant.marital_status": "உங்கள் திருமண நிலை என்ன? திருமணமாகாதவர், திருமணமானவர், விவாகரத்து அல்லது விதவை?",
			"applicant.monthly_income": "உங்கள் குடும்ப மாத வருமானம் எத்தனை ரிங்கிட்?",
			"spouse.name":              "உங்கள் துணையின் முழு பெயரைச் சொல்லவும்.",
			"spouse.ic_number":         "உங்கள் துணையின் அடையாள எண்ணைச் சொல்லவும்.",
			"documents.ic_copy":        "உங்கள் அடையாள அட்டையின் நகல் தயாராக உள்ளதா?",
			"documents.income_proof":   "வருமானச் சான்று தயாராக உள்ளதா? உதாரணமாக சம்பளச் சீட்டு.",
			"documents.marriage_cert":  "உங்கள் திருமணச் சான்றிதழ் தயாராக உள்ளதா?",
			"guardian.name":            "உங்கள் அவசரத் தொடர்பாளரின் பெயரைச் சொல்லவும்.",
			"guardian.relationship":    "அவர்களுக்கும் உங்களுக்கும் என்ன உறவு? உதாரணமாக பெற்றோர் அல்லது உடன்பிறப்பு.",
			"guardian.phone":           "அவர்களின் தொலைபேசி எண்ணை இலக்கம் இலக்கமாகச் சொல்லவும்.",
		},
		Marital: map[model.MaritalStatus]string{
			model.MaritalSingle:   "திருமணமாகாதவர்",
			model.MaritalMarried:  "திருமணமானவர்",
			model.MaritalDivorced: "விவாகரத்து",
			model.MaritalWidowed:  "விதவை",
		},
		Progress:      "கேள்வி %d இல் %d. %s",
		Confirm:       "நான் கேட்டது %s. சரியா?",
		Change:        "தற்போதைய மதிப்பு %s. மாற்ற வேண்டுமா?",
		ChildrenCount: "உங்களுக்கு எத்தனை குழந்தைகள்? ஐந்து வரை பதிவு செய்யலாம்.",
		ChildName:     "குழந்தை %d இன் பெயரைச் சொல்லவும்.",
		ChildIC:       "குழந்தை %d இன் அடையாள அல்லது MyKid எண்ணைச் சொல்லவும்.",
		Completed:     "நன்றி. எல்லா கேள்விகளும் முடிந்தன. சமர்ப்பிக்கும் முன் உங்கள் விண்ணப்பத்தைச் சரிபார்க்கவும்.",
		Retry:         "மன்னிக்கவும், எனக்குப் புரியவில்லை. மீண்டும் முயற்சிக்கவும்.",
		YesWord:       "ஆம்",
		NoWord:        "இல்லை",
	},
}
