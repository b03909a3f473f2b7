package names

import (
	"context"

	"github.com/futig/babyname/internal/entity"
	"github.com/futig/babyname/internal/session"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// RandomFavorite picks one of the last generated pairs uniformly at random
func (uc *NamesUsecase) RandomFavorite(ctx context.Context, st *session.State) (*entity.NameMeaningPair, error) {
	pairs := entity.PairsOf(st.LastLines)
	if len(pairs) == 0 {
		ctxzap.Info(ctx, "no generated names to pick a favorite from")
		return nil, entity.ErrNoFavorites
	}

	favorite := pairs[uc.pick(len(pairs))]
	ctxzap.Info(ctx, "random favorite picked", zap.String("name", favorite.Name))

	return &favorite, nil
}

// LastPairs returns the pairs of the most recent successful generation
func (uc *NamesUsecase) LastPairs(st *session.State) ([]entity.NameMeaningPair, error) {
	pairs := entity.PairsOf(st.LastLines)
	if len(pairs) == 0 {
		return nil, entity.ErrNoFavorites
	}
	return pairs, nil
}
