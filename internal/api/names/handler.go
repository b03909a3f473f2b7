package names

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/futig/babyname/internal/api/middleware"
	"github.com/futig/babyname/internal/entity"
	"github.com/futig/babyname/internal/pkg/formatter"
	"github.com/futig/babyname/internal/pkg/logger"
	"github.com/futig/babyname/internal/pkg/response"
	"github.com/futig/babyname/internal/pkg/validator"
	"github.com/futig/babyname/internal/session"
	namesuc "github.com/futig/babyname/internal/usecase/names"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase    NamesUsecase
	sessions   SessionStore
	validator  *validator.Validator
	formatters *formatter.Factory
	page       *template.Template
}

func NewHandler(
	usecase NamesUsecase,
	sessions SessionStore,
	validator *validator.Validator,
	formatters *formatter.Factory,
) *Handler {
	return &Handler{
		usecase:    usecase,
		sessions:   sessions,
		validator:  validator,
		formatters: formatters,
		page:       pageTemplate,
	}
}

// GenerateNames handles POST /api/v1/names - Generate names from a JSON request
func (h *Handler) GenerateNames(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateNames")

	var req entity.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateGeneration(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	ctxzap.Info(ctx, "generating names", zap.Any("request", req))

	st := h.loadState(ctx)
	result, err := h.usecase.Generate(ctx, st, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}
	h.sessions.Save(st)

	status := http.StatusOK
	if result.Failed {
		status = http.StatusBadGateway
	}
	response.JSON(w, status, toGenerationResponse(result, st.SelectedLetter))
}

// GetLastNames handles GET /api/v1/names - Names of the last successful generation
func (h *Handler) GetLastNames(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetLastNames")

	st := h.loadState(ctx)
	pairs, err := h.usecase.LastPairs(st)
	if err != nil && !errors.Is(err, entity.ErrNoFavorites) {
		h.handleUsecaseError(ctx, w, err)
		return
	}
	if pairs == nil {
		pairs = []entity.NameMeaningPair{}
	}

	response.Success(w, NamesListResponse{
		SelectedLetter: st.SelectedLetter,
		Names:          pairs,
	})
}

// RandomFavorite handles POST /api/v1/names/favorite - Pick one of the last names
func (h *Handler) RandomFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "RandomFavorite")

	st := h.loadState(ctx)
	favorite, err := h.usecase.RandomFavorite(ctx, st)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, FavoriteResponse{Favorite: *favorite})
}

// ClearLetter handles DELETE /api/v1/letter - Forget the selected starting letter
func (h *Handler) ClearLetter(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ClearLetter")

	st := h.loadState(ctx)
	h.usecase.ClearLetter(ctx, st)
	h.sessions.Save(st)

	response.NoContent(w)
}

// ResetSession handles DELETE /api/v1/session - Forget the letter and the last names
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ResetSession")

	h.sessions.Delete(middleware.SessionID(ctx))
	ctxzap.Info(ctx, "session reset")

	response.NoContent(w)
}

// Export handles GET /export - Download the last generated names
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Export")

	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = string(entity.FormatMarkdown)
	}

	format := entity.ExportFormat(formatParam)
	if !format.IsValid() {
		ctxzap.Warn(ctx, "invalid format parameter", zap.String("format", formatParam))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid format parameter",
			fmt.Errorf("format must be one of: markdown, docx, pdf"))
		return
	}

	ctx = logger.AddFields(ctx, zap.String("format", string(format)))

	pairs, err := h.usecase.LastPairs(h.loadState(ctx))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	fmtr, err := h.formatters.Create(format)
	if errors.Is(err, entity.ErrFormatUnavailable) {
		h.respondError(ctx, w, http.StatusNotImplemented, "format not available", err)
		return
	}
	if err != nil {
		h.respondError(ctx, w, http.StatusNotImplemented, "format not implemented", err)
		return
	}

	out, err := fmtr.Format(pairs)
	if err != nil {
		h.respondError(ctx, w, http.StatusInternalServerError, "failed to format names", err)
		return
	}

	ctxzap.Info(ctx, "names exported", zap.Int("count", len(pairs)))
	w.Header().Set("Content-Type", fmtr.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"baby-names%s\"", fmtr.FileExtension()))
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

// Helper methods

// serializeSession runs one request per session at a time
func (h *Handler) serializeSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		unlock := h.sessions.Lock(middleware.SessionID(r.Context()))
		defer unlock()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) loadState(ctx context.Context) *session.State {
	return h.sessions.Get(middleware.SessionID(ctx))
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	ctxzap.Error(ctx, message, zap.Error(err))
	response.JSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	var credErr *entity.MissingCredentialError
	if errors.As(err, &credErr) {
		h.respondError(ctx, w, http.StatusServiceUnavailable, credErr.UserMessage(), err)
	} else if namesuc.IsConfigError(err) {
		h.respondError(ctx, w, http.StatusServiceUnavailable, "name service is not configured", err)
	} else if errors.Is(err, entity.ErrNoFavorites) {
		h.respondError(ctx, w, http.StatusConflict, "generate some names first", err)
	} else if errors.Is(err, entity.ErrInvalidParameter) || errors.Is(err, entity.ErrInvalidFormat) || errors.Is(err, entity.ErrMissingField) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
