package names

import (
	"context"

	"github.com/futig/babyname/internal/entity"
	"github.com/futig/babyname/internal/session"
)

type NamesUsecase interface {
	Ready() error
	Generate(ctx context.Context, st *session.State, req *entity.GenerationRequest) (*entity.GenerationResult, error)
	RandomFavorite(ctx context.Context, st *session.State) (*entity.NameMeaningPair, error)
	ClearLetter(ctx context.Context, st *session.State)
	LastPairs(st *session.State) ([]entity.NameMeaningPair, error)
}

type SessionStore interface {
	Get(id string) *session.State
	Save(st *session.State)
	Delete(id string)
	Lock(id string) (unlock func())
}
