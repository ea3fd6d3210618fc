// Package classify forwards founder questionnaires to a generative-text
// service and returns the raw classification it produces.
package classify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

var (
	// ErrNotConfigured means no API key was provided; no remote call is made.
	ErrNotConfigured = errors.New("classification service is not configured")
	// ErrUnexpectedResponse means the remote service answered with a shape
	// we cannot extract text from.
	ErrUnexpectedResponse = errors.New("unexpected response format from classification service")
)

// Generator produces text from a prompt.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// GeminiClient implements Generator against the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds a Gemini-backed generator. An empty API key is
// refused up front with ErrNotConfigured.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &GeminiClient{client: client, model: model}, nil
}

// GenerateContent sends the prompt with fixed sampling parameters (bounded
// output, low randomness) and returns the generated text unmodified.
func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: 512,
		Temperature:     genai.Ptr[float32](0.2),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("classification request failed: %w", err)
	}

	return extractText(result)
}

func extractText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 ||
		result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrUnexpectedResponse
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", ErrUnexpectedResponse
	}
	return sb.String(), nil
}
