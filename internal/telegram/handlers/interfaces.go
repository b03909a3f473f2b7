package handlers

import (
	"context"

	"github.com/futig/babyname/internal/entity"
	"github.com/futig/babyname/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI is the part of *tgbotapi.BotAPI the handlers use
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// NamesUsecase defines the name generation operations used by the bot
type NamesUsecase interface {
	Ready() error
	Generate(ctx context.Context, st *session.State, req *entity.GenerationRequest) (*entity.GenerationResult, error)
	RandomFavorite(ctx context.Context, st *session.State) (*entity.NameMeaningPair, error)
	SelectLetter(ctx context.Context, st *session.State, letter string)
	ClearLetter(ctx context.Context, st *session.State)
}

// SessionStore loads and saves per-user state
type SessionStore interface {
	Get(id string) *session.State
	Save(st *session.State)
	Delete(id string)
	Lock(id string) (unlock func())
}

// GenerationValidator checks parsed generation parameters
type GenerationValidator interface {
	ValidateGeneration(req *entity.GenerationRequest) error
}
