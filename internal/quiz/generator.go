package quiz

import "context"

// Generator produces quiz questions for a topic.
type Generator interface {
	// Generate produces a single validated question.
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}

// Config holds generation parameters.
type Config struct {
	// MaxTokens limits the response size. Default: 1024.
	MaxTokens int

	// Temperature controls randomness. Default: 0.8 to keep rounds varied.
	Temperature float64
}

// DefaultConfig returns generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.8,
	}
}
