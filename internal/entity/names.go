package entity

import "strings"

// Gender of the child the names are generated for
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderUnisex Gender = "Unisex"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderUnisex}

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnisex:
		return true
	default:
		return false
	}
}

// NameLength is an optional length bucket for the generated names
type NameLength string

const (
	NameLengthAny    NameLength = ""
	NameLengthShort  NameLength = "Short"
	NameLengthMedium NameLength = "Medium"
	NameLengthLong   NameLength = "Long"
)

var NameLengths = []NameLength{NameLengthShort, NameLengthMedium, NameLengthLong}

func (l NameLength) IsValid() bool {
	switch l {
	case NameLengthAny, NameLengthShort, NameLengthMedium, NameLengthLong:
		return true
	default:
		return false
	}
}

// Country is one of the selectable countries together with the culture
// the names should be rooted in.
type Country struct {
	Name    string
	Culture string
}

var Countries = []Country{
	{Name: "USA", Culture: "American"},
	{Name: "Nepal", Culture: "Newar (Newa)"},
	{Name: "India", Culture: "Indian"},
	{Name: "China", Culture: "Chinese"},
	{Name: "Japan", Culture: "Japanese"},
}

// LookupCountry finds a country by name, case-insensitively
func LookupCountry(name string) (Country, bool) {
	for _, c := range Countries {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Country{}, false
}

var Months = []string{
	"January", "February", "March", "April", "May", "June", "July", "August",
	"September", "October", "November", "December",
}

const (
	MinBirthYear = 1900
	MaxBirthYear = 2100

	MinCulturalWeight = 1
	MaxCulturalWeight = 10
)

// GenerationRequest holds everything collected from the form.
// Zero values of the optional fields mean "not set".
type GenerationRequest struct {
	Gender         Gender     `json:"gender"`
	Country        string     `json:"country"`
	BirthMonth     string     `json:"birth_month"`
	BirthYear      int        `json:"birth_year"`
	StartingLetter string     `json:"starting_letter,omitempty"`
	FatherName     string     `json:"father_name,omitempty"`
	MotherName     string     `json:"mother_name,omitempty"`
	NameLength     NameLength `json:"name_length,omitempty"`
	CulturalWeight int        `json:"cultural_weight,omitempty"`
	ModernTwist    bool       `json:"modern_twist,omitempty"`
}

// NameMeaningPair is one parsed "Name - Meaning" line
type NameMeaningPair struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
}

// FormattedLine is a single line of the backend response. Pair is nil for
// lines that did not contain the delimiter; Text then holds the line verbatim.
type FormattedLine struct {
	Text string           `json:"text"`
	Pair *NameMeaningPair `json:"pair,omitempty"`
}

// GenerationResult is the outcome of one generation action
type GenerationResult struct {
	Prompt string          `json:"-"`
	Raw    string          `json:"raw"`
	Failed bool            `json:"failed"`
	Lines  []FormattedLine `json:"lines,omitempty"`
}

// Pairs returns only the delimiter lines
func (r *GenerationResult) Pairs() []NameMeaningPair {
	return PairsOf(r.Lines)
}

// PairsOf collects the pairs of the given lines, keeping their order
func PairsOf(lines []FormattedLine) []NameMeaningPair {
	pairs := make([]NameMeaningPair, 0, len(lines))
	for _, l := range lines {
		if l.Pair != nil {
			pairs = append(pairs, *l.Pair)
		}
	}
	return pairs
}

// ExportFormat is the download format for the generated list
type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatDOCX     ExportFormat = "docx"
	FormatPDF      ExportFormat = "pdf"
)

func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatDOCX, FormatPDF:
		return true
	default:
		return false
	}
}
