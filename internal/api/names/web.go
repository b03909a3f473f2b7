package names

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/futig/babyname/internal/api/middleware"
	"github.com/futig/babyname/internal/entity"
	"github.com/futig/babyname/internal/pkg/logger"
	"github.com/futig/babyname/internal/session"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

const (
	msgSelectGenderCountry = "Please select both gender and country."
	msgNoNamesYet          = "Generate some names first!"
	msgTooManyRequests     = "Too many requests. Please wait a moment and try again."
)

// pageData is everything the form page renders
type pageData struct {
	Form        entity.GenerationRequest
	Genders     []entity.Gender
	Countries   []entity.Country
	Months      []string
	NameLengths []entity.NameLength
	Weights     []int
	MinYear     int
	MaxYear     int

	ConfigError string
	Warning     string
	Failure     string
	Lines       []entity.FormattedLine
	HasNames    bool
	Favorite    *entity.NameMeaningPair
	DOCXEnabled bool
}

func (h *Handler) newPageData(st *session.State) *pageData {
	weights := make([]int, 0, entity.MaxCulturalWeight)
	for i := entity.MinCulturalWeight; i <= entity.MaxCulturalWeight; i++ {
		weights = append(weights, i)
	}

	data := &pageData{
		Form: entity.GenerationRequest{
			Gender:         entity.GenderFemale,
			Country:        entity.Countries[0].Name,
			BirthMonth:     entity.Months[time.Now().Month()-1],
			BirthYear:      time.Now().Year(),
			StartingLetter: st.SelectedLetter,
		},
		Genders:     entity.Genders,
		Countries:   entity.Countries,
		Months:      entity.Months,
		NameLengths: entity.NameLengths,
		Weights:     weights,
		MinYear:     entity.MinBirthYear,
		MaxYear:     entity.MaxBirthYear,
		Lines:       st.LastLines,
		HasNames:    len(entity.PairsOf(st.LastLines)) > 0,
		DOCXEnabled: h.formatters.Available(entity.FormatDOCX),
	}

	var credErr *entity.MissingCredentialError
	if err := h.usecase.Ready(); errors.As(err, &credErr) {
		data.ConfigError = credErr.UserMessage()
	} else if err != nil {
		data.ConfigError = err.Error()
	}

	return data
}

// Index handles GET / - Render the form with the session's last names
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Index")

	st := h.loadState(ctx)
	h.render(ctx, w, http.StatusOK, h.newPageData(st))
}

// GenerateForm handles POST /generate - Generate names from the HTML form
func (h *Handler) GenerateForm(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateForm")

	st := h.loadState(ctx)
	data := h.newPageData(st)

	req, err := parseGenerationForm(r)
	if err != nil {
		data.Warning = err.Error()
		h.render(ctx, w, http.StatusBadRequest, data)
		return
	}
	data.Form = *req

	if req.Gender == "" || req.Country == "" {
		data.Warning = msgSelectGenderCountry
		h.render(ctx, w, http.StatusBadRequest, data)
		return
	}

	if err := h.validator.ValidateGeneration(req); err != nil {
		ctxzap.Warn(ctx, "form validation failed", zap.Error(err))
		data.Warning = err.Error()
		h.render(ctx, w, http.StatusBadRequest, data)
		return
	}

	if data.ConfigError != "" {
		h.render(ctx, w, http.StatusServiceUnavailable, data)
		return
	}

	result, err := h.usecase.Generate(ctx, st, req)
	if err != nil {
		ctxzap.Error(ctx, "generation failed", zap.Error(err))
		data.Failure = err.Error()
		h.render(ctx, w, http.StatusInternalServerError, data)
		return
	}
	h.sessions.Save(st)
	data.Form.StartingLetter = st.SelectedLetter

	if result.Failed {
		data.Failure = result.Raw
		data.Lines = nil
		h.render(ctx, w, http.StatusOK, data)
		return
	}

	data.Lines = result.Lines
	data.HasNames = len(result.Pairs()) > 0
	h.render(ctx, w, http.StatusOK, data)
}

// ClearLetterForm handles POST /letter/clear
func (h *Handler) ClearLetterForm(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ClearLetterForm")

	st := h.loadState(ctx)
	h.usecase.ClearLetter(ctx, st)
	h.sessions.Save(st)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// FavoriteForm handles POST /favorite - Show one random name of the last list
func (h *Handler) FavoriteForm(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "FavoriteForm")

	st := h.loadState(ctx)
	data := h.newPageData(st)

	favorite, err := h.usecase.RandomFavorite(ctx, st)
	if errors.Is(err, entity.ErrNoFavorites) {
		data.Warning = msgNoNamesYet
		h.render(ctx, w, http.StatusOK, data)
		return
	}
	if err != nil {
		data.Failure = err.Error()
		h.render(ctx, w, http.StatusInternalServerError, data)
		return
	}

	data.Favorite = favorite
	h.render(ctx, w, http.StatusOK, data)
}

// rateLimitedForm renders the form with a warning instead of the JSON 429 body
func (h *Handler) rateLimitedForm(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateForm")
	ctxzap.Warn(ctx, "generation rate limited")

	data := h.newPageData(h.loadState(ctx))
	if req, err := parseGenerationForm(r); err == nil {
		data.Form = *req
	}
	data.Warning = msgTooManyRequests
	h.render(ctx, w, http.StatusTooManyRequests, data)
}

// ResetForm handles POST /reset - Start over with an empty session
func (h *Handler) ResetForm(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ResetForm")

	h.sessions.Delete(middleware.SessionID(ctx))
	ctxzap.Info(ctx, "session reset")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) render(ctx context.Context, w http.ResponseWriter, status int, data *pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.page.Execute(w, data); err != nil {
		ctxzap.Error(ctx, "failed to render page", zap.Error(err))
	}
}
