package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/futig/babyname/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestRenderResult(t *testing.T) {
	lines := []entity.FormattedLine{
		{Text: "Here you go:"},
		{Text: "Amir - Prince", Pair: &entity.NameMeaningPair{Name: "Amir", Meaning: "Prince"}},
	}

	got := RenderResult(lines, "A")

	assert.Equal(t, "👶 Suggested names (letter A)\n\nHere you go:\n• Amir - Prince", got)
}

func TestRenderResult_NoPairs(t *testing.T) {
	got := RenderResult([]entity.FormattedLine{{Text: "Sorry"}}, "")

	assert.True(t, strings.HasSuffix(got, MsgNoPairsFound))
	assert.NotContains(t, got, "(letter")
}

func TestRenderLetter(t *testing.T) {
	assert.Equal(t, MsgLetterNone, RenderLetter(""))
	assert.Equal(t, "🔤 Current starting letter: Q", RenderLetter("Q"))
}

func TestTruncate(t *testing.T) {
	short := "hello"
	assert.Equal(t, short, Truncate(short))

	long := strings.Repeat("я", maxMessageLength+10)
	got := Truncate(long)
	assert.Equal(t, maxMessageLength, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "…"))
}
