package names

import (
	"strings"

	"github.com/futig/babyname/internal/entity"
)

// Delimiter separates a name from its meaning on a response line
const Delimiter = " - "

// ErrorMarker is searched case-insensitively in the raw response; its presence
// marks the whole response as failed. A generated meaning that happens to
// contain the word is reported as a failure too.
const ErrorMarker = "error"

// FormatResponse splits the backend text into lines. Lines holding the
// delimiter become pairs split at its first occurrence, others are kept as is.
func FormatResponse(raw string) []entity.FormattedLine {
	rawLines := strings.Split(raw, "\n")
	lines := make([]entity.FormattedLine, 0, len(rawLines))

	for _, line := range rawLines {
		name, meaning, found := strings.Cut(line, Delimiter)
		if !found {
			lines = append(lines, entity.FormattedLine{Text: line})
			continue
		}

		pair := &entity.NameMeaningPair{
			Name:    strings.TrimSpace(name),
			Meaning: strings.TrimSpace(meaning),
		}
		lines = append(lines, entity.FormattedLine{
			Text: pair.Name + Delimiter + pair.Meaning,
			Pair: pair,
		})
	}

	return lines
}

// IsErrorText reports whether the backend text must be treated as a failure
func IsErrorText(text string) bool {
	return strings.Contains(strings.ToLower(text), ErrorMarker)
}
