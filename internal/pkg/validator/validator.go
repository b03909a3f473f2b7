package validator

import "github.com/futig/babyname/internal/entity"

// Validator checks form input against the widget constraints of the UI
type Validator struct {
	countries map[string]bool
	months    map[string]bool
}

func NewValidator() *Validator {
	v := &Validator{
		countries: make(map[string]bool, len(entity.Countries)),
		months:    make(map[string]bool, len(entity.Months)),
	}
	for _, c := range entity.Countries {
		v.countries[c.Name] = true
	}
	for _, m := range entity.Months {
		v.months[m] = true
	}
	return v
}
