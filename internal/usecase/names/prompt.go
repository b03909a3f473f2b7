package names

import (
	"fmt"
	"strings"

	"github.com/futig/babyname/internal/entity"
)

// LetterClausePrefix starts the sentence that restricts the first letter
const LetterClausePrefix = " The names should start with the letter"

// clause renders zero or one fragment of the prompt for a request.
// An empty string means the clause does not apply.
type clause func(req *entity.GenerationRequest, count int) string

// promptClauses is the fixed order in which the prompt is assembled
var promptClauses = []clause{
	baseClause,
	cultureClause,
	formatClause,
	letterClause,
	lengthClause,
	culturalWeightClause,
	modernTwistClause,
	parentsClause,
}

// BuildPrompt renders the instruction sent to the name service.
// The result depends only on its arguments.
func BuildPrompt(req *entity.GenerationRequest, count int) string {
	var b strings.Builder
	for _, c := range promptClauses {
		b.WriteString(c(req, count))
	}
	return b.String()
}

func baseClause(req *entity.GenerationRequest, count int) string {
	return fmt.Sprintf("Generate %d unique baby names for a %s child from %s, born in %s %d.",
		count, req.Gender, req.Country, req.BirthMonth, req.BirthYear)
}

func cultureClause(req *entity.GenerationRequest, _ int) string {
	culture := req.Country
	if c, ok := entity.LookupCountry(req.Country); ok {
		culture = c.Culture
	}
	return fmt.Sprintf(" Each name should have deep roots in %s culture, traditions, and language."+
		" Provide meanings that reflect %s heritage, spirituality, history, or nature.", culture, culture)
}

func formatClause(_ *entity.GenerationRequest, _ int) string {
	return " Format the output as 'Name - Meaning', one name per line." +
		" Include a mix of historical, traditional, and modern names."
}

func letterClause(req *entity.GenerationRequest, _ int) string {
	letter := strings.TrimSpace(req.StartingLetter)
	if letter == "" {
		return ""
	}
	return fmt.Sprintf("%s %s.", LetterClausePrefix, strings.ToUpper(letter))
}

func lengthClause(req *entity.GenerationRequest, _ int) string {
	switch req.NameLength {
	case entity.NameLengthShort:
		return " Prefer short names of at most 4 letters."
	case entity.NameLengthMedium:
		return " Prefer medium-length names of 5 to 7 letters."
	case entity.NameLengthLong:
		return " Prefer long names of 8 or more letters."
	default:
		return ""
	}
}

func culturalWeightClause(req *entity.GenerationRequest, _ int) string {
	w := req.CulturalWeight
	if w < entity.MinCulturalWeight || w > entity.MaxCulturalWeight {
		return ""
	}
	return fmt.Sprintf(" On a scale of %d to %d, weight cultural significance at %d when choosing names.",
		entity.MinCulturalWeight, entity.MaxCulturalWeight, w)
}

func modernTwistClause(req *entity.GenerationRequest, _ int) string {
	if !req.ModernTwist {
		return ""
	}
	return " Favor names with a modern twist over classic ones."
}

func parentsClause(req *entity.GenerationRequest, _ int) string {
	if req.FatherName == "" || req.MotherName == "" {
		return ""
	}
	return fmt.Sprintf(" Include a name inspired by combining the parents' names: %s.",
		CombineNames(req.FatherName, req.MotherName))
}

// CombineNames joins the first half of a with the second half of b.
// Halves are measured in runes and rounded down; empty input is not guarded.
func CombineNames(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	return string(ra[:len(ra)/2]) + string(rb[len(rb)/2:])
}
