package names

import (
	"context"
	"errors"
	"testing"

	"github.com/futig/babyname/internal/entity"
	"github.com/futig/babyname/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeConnector struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (f *fakeConnector) Generate(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func newTestUsecase(conn LLMConnector, credErr error) *NamesUsecase {
	return NewUsecase(conn, 20, credErr, zap.NewNop())
}

func TestGenerate_Success(t *testing.T) {
	conn := &fakeConnector{text: "  Here are your names:\nAmir - Prince\nBadshah - King\n\n"}
	uc := newTestUsecase(conn, nil)
	st := &session.State{ID: "s1"}
	req := baseRequest()
	req.StartingLetter = "a"

	result, err := uc.Generate(context.Background(), st, req)

	require.NoError(t, err)
	assert.False(t, result.Failed)
	assert.Equal(t, 1, conn.calls)
	assert.Equal(t, BuildPrompt(req, 20), conn.prompts[0])
	assert.Equal(t, "Here are your names:\nAmir - Prince\nBadshah - King", result.Raw)
	assert.Len(t, result.Lines, 3)
	assert.Len(t, result.Pairs(), 2)
	assert.Equal(t, result.Lines, st.LastLines)
	assert.Equal(t, "A", st.SelectedLetter)
}

func TestGenerate_BackendErrorBecomesFailedResult(t *testing.T) {
	conn := &fakeConnector{err: errors.New("unknown model gemini-nope")}
	uc := newTestUsecase(conn, nil)
	previous := []entity.FormattedLine{{Text: "Old - Kept", Pair: &entity.NameMeaningPair{Name: "Old", Meaning: "Kept"}}}
	st := &session.State{ID: "s1", LastLines: previous}

	result, err := uc.Generate(context.Background(), st, baseRequest())

	require.NoError(t, err)
	assert.True(t, result.Failed)
	assert.Equal(t, "An error occurred: unknown model gemini-nope", result.Raw)
	assert.Empty(t, result.Lines)
	assert.Equal(t, previous, st.LastLines)
	assert.Equal(t, 1, conn.calls)
}

func TestGenerate_ErrorWordFailsWholeResult(t *testing.T) {
	conn := &fakeConnector{text: "Amir - Prince\nErrol - Error-free noble"}
	uc := newTestUsecase(conn, nil)
	st := &session.State{ID: "s1"}

	result, err := uc.Generate(context.Background(), st, baseRequest())

	require.NoError(t, err)
	assert.True(t, result.Failed)
	assert.Empty(t, st.LastLines)
}

func TestGenerate_EmptyResponseIsFailure(t *testing.T) {
	conn := &fakeConnector{text: "   \n "}
	uc := newTestUsecase(conn, nil)

	result, err := uc.Generate(context.Background(), &session.State{}, baseRequest())

	require.NoError(t, err)
	assert.True(t, result.Failed)
	assert.Contains(t, result.Raw, entity.ErrEmptyResponse.Error())
}

func TestGenerate_MissingCredentialBlocksBackend(t *testing.T) {
	conn := &fakeConnector{text: "Amir - Prince"}
	uc := newTestUsecase(conn, &entity.MissingCredentialError{Variable: "GEMINI_API_KEY"})

	result, err := uc.Generate(context.Background(), &session.State{}, baseRequest())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, IsConfigError(err))
	assert.Equal(t, 0, conn.calls)
}

func TestRandomFavorite_EmptyState(t *testing.T) {
	uc := newTestUsecase(&fakeConnector{}, nil)

	_, err := uc.RandomFavorite(context.Background(), &session.State{})

	assert.ErrorIs(t, err, entity.ErrNoFavorites)
}

func TestRandomFavorite_OnlyDelimiterLines(t *testing.T) {
	uc := newTestUsecase(&fakeConnector{}, nil)
	st := &session.State{LastLines: FormatResponse("Intro line\nAmir - Prince\nOutro line")}

	for i := 0; i < 50; i++ {
		fav, err := uc.RandomFavorite(context.Background(), st)
		require.NoError(t, err)
		assert.Equal(t, "Amir", fav.Name)
	}
}

func TestRandomFavorite_Uniform(t *testing.T) {
	conn := &fakeConnector{}
	uc := newTestUsecase(conn, nil)
	st := &session.State{LastLines: FormatResponse("Names:\nAmir - Prince\nBadshah - King\nSita - Pure\nRam - Pleasing")}

	const trials = 40000
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		fav, err := uc.RandomFavorite(context.Background(), st)
		require.NoError(t, err)
		counts[fav.Name]++
	}

	require.Len(t, counts, 4)
	expected := trials / 4
	for name, n := range counts {
		assert.InDelta(t, expected, n, float64(expected)*0.1, "name %s picked %d times", name, n)
	}
	assert.Equal(t, 0, conn.calls)
}

func TestClearLetter(t *testing.T) {
	uc := newTestUsecase(&fakeConnector{}, nil)
	st := &session.State{SelectedLetter: "B"}

	uc.ClearLetter(context.Background(), st)

	assert.Empty(t, st.SelectedLetter)
}

func TestSelectLetter(t *testing.T) {
	uc := newTestUsecase(&fakeConnector{}, nil)
	st := &session.State{}

	uc.SelectLetter(context.Background(), st, " k ")

	assert.Equal(t, "K", st.SelectedLetter)
}

func TestLastPairs(t *testing.T) {
	uc := newTestUsecase(&fakeConnector{}, nil)

	_, err := uc.LastPairs(&session.State{})
	assert.ErrorIs(t, err, entity.ErrNoFavorites)

	pairs, err := uc.LastPairs(&session.State{LastLines: FormatResponse("Amir - Prince")})
	require.NoError(t, err)
	assert.Equal(t, []entity.NameMeaningPair{{Name: "Amir", Meaning: "Prince"}}, pairs)
}
