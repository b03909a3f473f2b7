package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/futig/babyname/internal/entity"
)

// Telegram rejects longer messages
const maxMessageLength = 4096

const (
	// Welcome messages
	MsgWelcome = `👋 Hi! I suggest baby names with their meanings.

Tell me the gender and the country and I will ask the name service for ideas:
/generate gender=Female country=Nepal

Send /help to see every option.`

	MsgHelp = `🤖 Commands:

/generate key=value ... - generate names
/letter X - remember a starting letter
/clearletter - forget the starting letter
/favorite - pick a random name from the last list
/help - show this help

Options for /generate:
gender=Male|Female|Unisex (required)
country=USA|Nepal|India|China|Japan (required)
month=March (default: current month)
year=2024 (default: current year)
letter=A
father=John mother=Mary
length=Short|Medium|Long
culture=1..10
modern=yes|no

Use quotes for values with spaces: father="Jean Luc"`

	MsgUseCommands = `I only understand commands. Send /help to see them.`

	// Generation
	MsgGenerating    = `⏳ Asking the name service...`
	MsgResultHeader  = `👶 Suggested names`
	MsgNoPairsFound  = `The answer did not contain any "Name - Meaning" lines.`
	MsgLetterCleared = `🔤 Starting letter cleared.`
	MsgLetterSet     = `🔤 Names will start with %s.`
	MsgLetterCurrent = `🔤 Current starting letter: %s`
	MsgLetterNone    = `🔤 No starting letter selected. Use /letter X to set one.`

	// Warnings
	MsgSelectGenderCountry = `⚠️ Please select both gender and country.`
	MsgNoNamesYet          = `⚠️ Generate some names first!`

	// Errors
	ErrGeneric            = `❌ Something went wrong. Please try again.`
	ErrInvalidInput       = `❌ %s

Send /help to see the accepted values.`
	ErrNetworkIssue       = `❌ Connection problem. Please try again later.`
	ErrServiceUnavailable = `❌ The name service is unavailable right now.`
	ErrTimeout            = `❌ The request took too long. Please try again.`
	ErrUnknownCommand     = `❌ Unknown command. Send /help to see the list.`
	ErrTooManyRequests    = `⚠️ Too many requests. Please wait a moment.`
)

// RenderResult lists the generated lines. Lines that are not pairs are shown as they came.
func RenderResult(lines []entity.FormattedLine, letter string) string {
	var sb strings.Builder
	sb.WriteString(MsgResultHeader)
	if letter != "" {
		sb.WriteString(fmt.Sprintf(" (letter %s)", letter))
	}
	sb.WriteString("\n\n")

	pairs := 0
	for _, l := range lines {
		if l.Pair != nil {
			pairs++
			sb.WriteString("• ")
		}
		sb.WriteString(l.Text)
		sb.WriteString("\n")
	}

	if pairs == 0 {
		sb.WriteString("\n")
		sb.WriteString(MsgNoPairsFound)
	}

	return Truncate(strings.TrimRight(sb.String(), "\n"))
}

// RenderFailure shows the raw backend answer of a failed generation
func RenderFailure(raw string) string {
	return Truncate("❌ " + raw)
}

// RenderFavorite formats the randomly picked name
func RenderFavorite(pair *entity.NameMeaningPair) string {
	return fmt.Sprintf("💖 Your random favorite: %s - %s", pair.Name, pair.Meaning)
}

// RenderInvalidInput wraps a validation message
func RenderInvalidInput(reason string) string {
	return fmt.Sprintf(ErrInvalidInput, reason)
}

// RenderLetter describes the selected starting letter
func RenderLetter(letter string) string {
	if letter == "" {
		return MsgLetterNone
	}
	return fmt.Sprintf(MsgLetterCurrent, letter)
}

// Truncate cuts text to the Telegram message limit
func Truncate(text string) string {
	if utf8.RuneCountInString(text) <= maxMessageLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxMessageLength-1]) + "…"
}
