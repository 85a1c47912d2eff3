package model

// BusinessType is the closed set of business categories a client can sign up as.
// Adding a value here requires matching task templates in the seed data.
type BusinessType string

const (
	BusinessTypeLawFirm           BusinessType = "law_firm"
	BusinessTypeWebDesigner       BusinessType = "web_designer"
	BusinessTypeBeautician        BusinessType = "beautician"
	BusinessTypeOnlineSales       BusinessType = "online_sales"
	BusinessTypeFitnessInstructor BusinessType = "fitness_instructor"
)

// BusinessTypes lists every supported category in signup-form order.
func BusinessTypes() []BusinessType {
	return []BusinessType{
		BusinessTypeLawFirm,
		BusinessTypeWebDesigner,
		BusinessTypeBeautician,
		BusinessTypeOnlineSales,
		BusinessTypeFitnessInstructor,
	}
}

// Valid reports whether t is one of the supported categories.
func (t BusinessType) Valid() bool {
	switch t {
	case BusinessTypeLawFirm, BusinessTypeWebDesigner, BusinessTypeBeautician,
		BusinessTypeOnlineSales, BusinessTypeFitnessInstructor:
		return true
	}
	return false
}

// Label returns the human-readable name shown to users.
func (t BusinessType) Label() string {
	switch t {
	case BusinessTypeLawFirm:
		return "Law Firm"
	case BusinessTypeWebDesigner:
		return "Web Designer"
	case BusinessTypeBeautician:
		return "Beautician / Cosmetician"
	case BusinessTypeOnlineSales:
		return "Online Sales Business"
	case BusinessTypeFitnessInstructor:
		return "Fitness Instructor"
	}
	return string(t)
}
