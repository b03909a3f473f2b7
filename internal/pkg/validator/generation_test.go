package validator

import (
	"testing"

	"github.com/futig/babyname/internal/entity"
	"github.com/stretchr/testify/assert"
)

func validRequest() *entity.GenerationRequest {
	return &entity.GenerationRequest{
		Gender:     entity.GenderMale,
		Country:    "India",
		BirthMonth: "July",
		BirthYear:  2023,
	}
}

func TestValidateGeneration(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *entity.GenerationRequest)
		wantErr error
	}{
		{name: "valid", modify: func(r *entity.GenerationRequest) {}},
		{
			name: "all optional fields",
			modify: func(r *entity.GenerationRequest) {
				r.StartingLetter = "q"
				r.FatherName = "John"
				r.MotherName = "Mary"
				r.NameLength = entity.NameLengthShort
				r.CulturalWeight = 10
				r.ModernTwist = true
			},
		},
		{
			name: "short length with long parent names is fine",
			modify: func(r *entity.GenerationRequest) {
				r.NameLength = entity.NameLengthShort
				r.FatherName = "Bartholomew"
				r.MotherName = "Maximiliana"
			},
		},
		{name: "missing gender", modify: func(r *entity.GenerationRequest) { r.Gender = "" }, wantErr: entity.ErrMissingField},
		{name: "missing country", modify: func(r *entity.GenerationRequest) { r.Country = "" }, wantErr: entity.ErrMissingField},
		{name: "unknown gender", modify: func(r *entity.GenerationRequest) { r.Gender = "Other" }, wantErr: entity.ErrInvalidParameter},
		{name: "unknown country", modify: func(r *entity.GenerationRequest) { r.Country = "Mars" }, wantErr: entity.ErrInvalidParameter},
		{name: "unknown month", modify: func(r *entity.GenerationRequest) { r.BirthMonth = "Smarch" }, wantErr: entity.ErrInvalidParameter},
		{name: "year too low", modify: func(r *entity.GenerationRequest) { r.BirthYear = 1899 }, wantErr: entity.ErrInvalidParameter},
		{name: "year too high", modify: func(r *entity.GenerationRequest) { r.BirthYear = 2101 }, wantErr: entity.ErrInvalidParameter},
		{name: "year lower bound", modify: func(r *entity.GenerationRequest) { r.BirthYear = 1900 }},
		{name: "year upper bound", modify: func(r *entity.GenerationRequest) { r.BirthYear = 2100 }},
		{name: "two letters", modify: func(r *entity.GenerationRequest) { r.StartingLetter = "AB" }, wantErr: entity.ErrInvalidFormat},
		{name: "digit letter", modify: func(r *entity.GenerationRequest) { r.StartingLetter = "7" }, wantErr: entity.ErrInvalidFormat},
		{name: "unknown length", modify: func(r *entity.GenerationRequest) { r.NameLength = "Huge" }, wantErr: entity.ErrInvalidParameter},
		{name: "weight too high", modify: func(r *entity.GenerationRequest) { r.CulturalWeight = 11 }, wantErr: entity.ErrInvalidParameter},
		{name: "weight negative", modify: func(r *entity.GenerationRequest) { r.CulturalWeight = -1 }, wantErr: entity.ErrInvalidParameter},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(req)

			err := v.ValidateGeneration(req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateLetter(t *testing.T) {
	assert.NoError(t, ValidateLetter(""))
	assert.NoError(t, ValidateLetter(" b "))
	assert.Error(t, ValidateLetter("é"))
	assert.Error(t, ValidateLetter("-"))
}
