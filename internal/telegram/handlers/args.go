package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/futig/babyname/internal/entity"
)

// ParseGenerateArgs turns "/generate key=value ..." arguments into a request.
// Month and year default to now; everything else is left unset.
func ParseGenerateArgs(args string, now time.Time) (*entity.GenerationRequest, error) {
	req := &entity.GenerationRequest{
		BirthMonth: now.Month().String(),
		BirthYear:  now.Year(),
	}

	tokens, err := splitArgs(args)
	if err != nil {
		return nil, err
	}

	for _, tok := range tokens {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			return nil, fmt.Errorf("%w: expected key=value, got %q", entity.ErrInvalidFormat, tok)
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "gender":
			req.Gender = canonicalGender(value)
		case "country":
			req.Country = value
			if c, ok := entity.LookupCountry(value); ok {
				req.Country = c.Name
			}
		case "month":
			req.BirthMonth = canonicalMonth(value)
		case "year":
			year, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("%w: year must be a number, got %q", entity.ErrInvalidFormat, value)
			}
			req.BirthYear = year
		case "letter":
			req.StartingLetter = strings.ToUpper(value)
		case "father":
			req.FatherName = value
		case "mother":
			req.MotherName = value
		case "length":
			req.NameLength = canonicalLength(value)
		case "culture":
			weight, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("%w: culture must be a number, got %q", entity.ErrInvalidFormat, value)
			}
			req.CulturalWeight = weight
		case "modern":
			modern, err := parseFlag(value)
			if err != nil {
				return nil, err
			}
			req.ModernTwist = modern
		default:
			return nil, fmt.Errorf("%w: unknown option %q", entity.ErrInvalidParameter, key)
		}
	}

	return req, nil
}

// splitArgs splits on whitespace and keeps double-quoted runs together
func splitArgs(s string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
		started bool
	)

	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case !quoted && (r == ' ' || r == '\t' || r == '\n'):
			if started {
				tokens = append(tokens, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}

	if quoted {
		return nil, fmt.Errorf("%w: unterminated quote", entity.ErrInvalidFormat)
	}
	if started {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}

func canonicalGender(value string) entity.Gender {
	for _, g := range entity.Genders {
		if strings.EqualFold(string(g), value) {
			return g
		}
	}
	return entity.Gender(value)
}

func canonicalMonth(value string) string {
	for _, m := range entity.Months {
		if strings.EqualFold(m, value) {
			return m
		}
	}
	return value
}

func canonicalLength(value string) entity.NameLength {
	for _, l := range entity.NameLengths {
		if strings.EqualFold(string(l), value) {
			return l
		}
	}
	if strings.EqualFold(value, "any") {
		return entity.NameLengthAny
	}
	return entity.NameLength(value)
}

func parseFlag(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "yes", "y", "true", "1", "on":
		return true, nil
	case "no", "n", "false", "0", "off", "":
		return false, nil
	default:
		return false, fmt.Errorf("%w: modern must be yes or no, got %q", entity.ErrInvalidFormat, value)
	}
}
