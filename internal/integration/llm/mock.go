package llm

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const mockNames = `Here are some names for you:
Aarav - Peaceful
Bishnu - The preserver
Chandra - Moon
Diya - Lamp, light
Ganesh - Lord of the people
Jyoti - Flame, light
Kiran - Ray of light
Laxmi - Goddess of wealth
Manisha - Intellect
Nabin - New
Prakash - Brightness
Rajani - Night
Sagun - Good omen
Sarita - River
Sujan - Virtuous person
Sunita - Well-behaved
Tara - Star
Ujjwal - Bright, splendid
Yamuna - Sacred river
Yashoda - One who gives glory`

// MockConnector returns canned names without calling any backend
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

// Generate returns the same list for every prompt
func (m *MockConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating names", zap.Int("prompt_length", len(prompt)))
	return mockNames, nil
}
