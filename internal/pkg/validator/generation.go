package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/futig/babyname/internal/entity"
)

// ValidateGeneration validates a GenerationRequest field by field.
// No relation between fields is checked.
func (v *Validator) ValidateGeneration(req *entity.GenerationRequest) error {
	if req.Gender == "" || req.Country == "" {
		return fmt.Errorf("%w: gender and country", entity.ErrMissingField)
	}

	if !req.Gender.IsValid() {
		return fmt.Errorf("%w: gender %q", entity.ErrInvalidParameter, req.Gender)
	}

	if !v.countries[req.Country] {
		return fmt.Errorf("%w: country %q", entity.ErrInvalidParameter, req.Country)
	}

	if !v.months[req.BirthMonth] {
		return fmt.Errorf("%w: birth month %q", entity.ErrInvalidParameter, req.BirthMonth)
	}

	if req.BirthYear < entity.MinBirthYear || req.BirthYear > entity.MaxBirthYear {
		return fmt.Errorf("%w: birth year must be between %d and %d, got %d",
			entity.ErrInvalidParameter, entity.MinBirthYear, entity.MaxBirthYear, req.BirthYear)
	}

	if err := ValidateLetter(req.StartingLetter); err != nil {
		return err
	}

	if !req.NameLength.IsValid() {
		return fmt.Errorf("%w: name length %q", entity.ErrInvalidParameter, req.NameLength)
	}

	if req.CulturalWeight != 0 &&
		(req.CulturalWeight < entity.MinCulturalWeight || req.CulturalWeight > entity.MaxCulturalWeight) {
		return fmt.Errorf("%w: cultural weight must be between %d and %d, got %d",
			entity.ErrInvalidParameter, entity.MinCulturalWeight, entity.MaxCulturalWeight, req.CulturalWeight)
	}

	return nil
}

// ValidateLetter accepts an empty string or a single ASCII letter
func ValidateLetter(letter string) error {
	letter = strings.TrimSpace(letter)
	if letter == "" {
		return nil
	}
	if utf8.RuneCountInString(letter) != 1 {
		return fmt.Errorf("%w: starting letter must be a single character", entity.ErrInvalidFormat)
	}
	c := letter[0]
	if !(c >= 'A' && c <= 'Z') && !(c >= 'a' && c <= 'z') {
		return fmt.Errorf("%w: starting letter must be A-Z, got %q", entity.ErrInvalidFormat, letter)
	}
	return nil
}
