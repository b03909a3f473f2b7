package handlers

import (
	"testing"
	"time"

	"github.com/futig/babyname/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestParseGenerateArgs(t *testing.T) {
	tests := []struct {
		name string
		args string
		want *entity.GenerationRequest
	}{
		{
			name: "defaults month and year",
			args: "gender=female country=nepal",
			want: &entity.GenerationRequest{
				Gender:     entity.GenderFemale,
				Country:    "Nepal",
				BirthMonth: "March",
				BirthYear:  2024,
			},
		},
		{
			name: "all options",
			args: `gender=Male country=India month=july year=2023 letter=k father="Jean Luc" mother=Mary length=short culture=7 modern=yes`,
			want: &entity.GenerationRequest{
				Gender:         entity.GenderMale,
				Country:        "India",
				BirthMonth:     "July",
				BirthYear:      2023,
				StartingLetter: "K",
				FatherName:     "Jean Luc",
				MotherName:     "Mary",
				NameLength:     entity.NameLengthShort,
				CulturalWeight: 7,
				ModernTwist:    true,
			},
		},
		{
			name: "empty",
			args: "",
			want: &entity.GenerationRequest{BirthMonth: "March", BirthYear: 2024},
		},
		{
			name: "unknown values are kept for the validator",
			args: "gender=robot country=Atlantis",
			want: &entity.GenerationRequest{
				Gender:     "robot",
				Country:    "Atlantis",
				BirthMonth: "March",
				BirthYear:  2024,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGenerateArgs(tt.args, fixedNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGenerateArgs_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    string
		wantErr error
	}{
		{name: "no equals", args: "gender", wantErr: entity.ErrInvalidFormat},
		{name: "bad year", args: "year=soon", wantErr: entity.ErrInvalidFormat},
		{name: "bad culture", args: "culture=high", wantErr: entity.ErrInvalidFormat},
		{name: "bad modern", args: "modern=maybe", wantErr: entity.ErrInvalidFormat},
		{name: "unknown key", args: "color=blue", wantErr: entity.ErrInvalidParameter},
		{name: "open quote", args: `father="Jean`, wantErr: entity.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGenerateArgs(tt.args, fixedNow)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSplitArgs(t *testing.T) {
	got, err := splitArgs(`  a=1   b="x y"  c=""  `)
	require.NoError(t, err)
	assert.Equal(t, []string{"a=1", "b=x y", "c="}, got)
}
