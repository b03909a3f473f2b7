package names

import "context"

// LLMConnector is a text-generation backend: prompt in, text out
type LLMConnector interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
