package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiService is the single outbound boundary to the language model.
type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
	logger    *zap.Logger
}

func NewGeminiService(apiKey, model string, timeout time.Duration, logger *zap.Logger) (GeminiService, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &geminiService{
		client:    client,
		modelName: model,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

// GenerateText sends one prompt and returns the model's text reply. Each
// call carries its own deadline so a hung request cannot stall a batch
// indefinitely.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", errors.New("no response generated (nil response)")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		g.logger.Warn("gemini returned no text content",
			zap.String("model", g.modelName),
			zap.Int("candidates", len(resp.Candidates)),
		)
		return "", errors.New("no text content in response")
	}

	return text, nil
}
