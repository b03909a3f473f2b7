package middleware

import (
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []tgbotapi.Chattable
}

func (s *recordingSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, c)
	return tgbotapi.Message{}, nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func messageUpdate(userID int64) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			From: &tgbotapi.User{ID: userID},
			Chat: &tgbotapi.Chat{ID: userID},
			Text: "/favorite",
		},
	}
}

func newTestLimiter(burst int, sender Sender) *RateLimiterMiddleware {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &RateLimiterMiddleware{
		limits:          make(map[int64]*userLimit),
		limit:           rate.Limit(1.0 / 60.0),
		burst:           burst,
		warningInterval: 30 * time.Second,
		now:             func() time.Time { return now },
		logger:          zap.NewNop(),
		api:             sender,
	}
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := newTestLimiter(2, nil)

	calls := 0
	for i := 0; i < 4; i++ {
		rl.Handle(messageUpdate(1), func(tgbotapi.Update) { calls++ })
	}

	assert.Equal(t, 2, calls)
}

func TestRateLimiter_UsersAreIndependent(t *testing.T) {
	rl := newTestLimiter(1, nil)

	calls := 0
	rl.Handle(messageUpdate(1), func(tgbotapi.Update) { calls++ })
	rl.Handle(messageUpdate(2), func(tgbotapi.Update) { calls++ })
	rl.Handle(messageUpdate(1), func(tgbotapi.Update) { calls++ })

	assert.Equal(t, 2, calls)
}

func TestRateLimiter_WarnsOncePerInterval(t *testing.T) {
	sender := &recordingSender{}
	rl := newTestLimiter(1, sender)

	for i := 0; i < 5; i++ {
		rl.Handle(messageUpdate(1), func(tgbotapi.Update) {})
	}

	assert.Eventually(t, func() bool { return sender.count() == 1 }, time.Second, 10*time.Millisecond)
}

func TestRateLimiter_PassesUnknownUpdates(t *testing.T) {
	rl := newTestLimiter(1, nil)

	calls := 0
	for i := 0; i < 3; i++ {
		rl.Handle(tgbotapi.Update{UpdateID: i}, func(tgbotapi.Update) { calls++ })
	}

	assert.Equal(t, 3, calls)
}

func TestRecovery_SendsGenericError(t *testing.T) {
	sender := &recordingSender{}
	m := NewRecoveryMiddleware(zap.NewNop(), sender)

	assert.NotPanics(t, func() {
		m.Handle(messageUpdate(7), func(tgbotapi.Update) { panic("boom") })
	})
	assert.Equal(t, 1, sender.count())
}
