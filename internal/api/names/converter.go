package names

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/futig/babyname/internal/entity"
)

// GenerationResponse is the JSON answer of a generation call
type GenerationResponse struct {
	Failed         bool                     `json:"failed"`
	Message        string                   `json:"message,omitempty"`
	SelectedLetter string                   `json:"selected_letter,omitempty"`
	Lines          []string                 `json:"lines"`
	Names          []entity.NameMeaningPair `json:"names"`
}

type NamesListResponse struct {
	SelectedLetter string                   `json:"selected_letter,omitempty"`
	Names          []entity.NameMeaningPair `json:"names"`
}

type FavoriteResponse struct {
	Favorite entity.NameMeaningPair `json:"favorite"`
}

func toGenerationResponse(result *entity.GenerationResult, letter string) *GenerationResponse {
	resp := &GenerationResponse{
		Failed:         result.Failed,
		SelectedLetter: letter,
		Lines:          make([]string, 0, len(result.Lines)),
		Names:          result.Pairs(),
	}
	if result.Failed {
		resp.Message = result.Raw
	}
	for _, l := range result.Lines {
		resp.Lines = append(resp.Lines, l.Text)
	}
	return resp
}

// parseGenerationForm reads the HTML form into a request
func parseGenerationForm(r *http.Request) (*entity.GenerationRequest, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidFormat, err)
	}

	req := &entity.GenerationRequest{
		Gender:         entity.Gender(r.PostFormValue("gender")),
		Country:        r.PostFormValue("country"),
		BirthMonth:     r.PostFormValue("birth_month"),
		StartingLetter: strings.TrimSpace(r.PostFormValue("starting_letter")),
		FatherName:     strings.TrimSpace(r.PostFormValue("father_name")),
		MotherName:     strings.TrimSpace(r.PostFormValue("mother_name")),
		NameLength:     entity.NameLength(r.PostFormValue("name_length")),
		ModernTwist:    r.PostFormValue("modern_twist") != "",
	}

	year, err := atoiOrZero(r.PostFormValue("birth_year"))
	if err != nil {
		return nil, fmt.Errorf("%w: birth_year", entity.ErrInvalidFormat)
	}
	req.BirthYear = year

	weight, err := atoiOrZero(r.PostFormValue("cultural_weight"))
	if err != nil {
		return nil, fmt.Errorf("%w: cultural_weight", entity.ErrInvalidFormat)
	}
	req.CulturalWeight = weight

	return req, nil
}

func atoiOrZero(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
