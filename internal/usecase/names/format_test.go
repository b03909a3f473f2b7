package names

import (
	"testing"

	"github.com/futig/babyname/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResponse_Pairs(t *testing.T) {
	lines := FormatResponse("Amir - Prince\nBadshah - King")

	require.Len(t, lines, 2)
	assert.Equal(t, []entity.NameMeaningPair{
		{Name: "Amir", Meaning: "Prince"},
		{Name: "Badshah", Meaning: "King"},
	}, entity.PairsOf(lines))
}

func TestFormatResponse_Passthrough(t *testing.T) {
	lines := FormatResponse("Here are your names:\nAmir - Prince")

	require.Len(t, lines, 2)
	assert.Nil(t, lines[0].Pair)
	assert.Equal(t, "Here are your names:", lines[0].Text)
	require.NotNil(t, lines[1].Pair)
}

func TestFormatResponse_SplitsOnFirstDelimiter(t *testing.T) {
	lines := FormatResponse("  Sita  -  Pure - born of the earth ")

	require.Len(t, lines, 1)
	require.NotNil(t, lines[0].Pair)
	assert.Equal(t, "Sita", lines[0].Pair.Name)
	assert.Equal(t, "Pure - born of the earth", lines[0].Pair.Meaning)
}

func TestFormatResponse_HyphenWithoutSpacesIsNotDelimiter(t *testing.T) {
	lines := FormatResponse("Mary-Kate: joyful\n")

	require.Len(t, lines, 2)
	assert.Nil(t, lines[0].Pair)
	assert.Equal(t, "Mary-Kate: joyful", lines[0].Text)
	assert.Equal(t, "", lines[1].Text)
}

func TestFormatResponse_NoDeduplication(t *testing.T) {
	lines := FormatResponse("Amir - Prince\nAmir - Prince")

	assert.Len(t, entity.PairsOf(lines), 2)
}

func TestIsErrorText(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Amir - Prince", false},
		{"An error occurred: boom", true},
		{"ERROR: quota exceeded", true},
		{"Amir - Prince\nErrol - Error-free noble", true},
		{"Terror - fear", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IsErrorText(tt.text))
		})
	}
}
