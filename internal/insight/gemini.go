package insight

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"pocketledger/internal/logger"
)

// Generator turns a prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient generates text with the Gemini API.
type GeminiClient struct {
	models *genai.Models
	model  string
}

// NewGeminiClient creates a client for the given model. An empty baseURL
// uses the public endpoint; tests point it at a local server.
func NewGeminiClient(ctx context.Context, baseURL, apiKey, model string, httpClient *http.Client) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiClient{models: client.Models, model: model}, nil
}

// Generate sends prompt as a single user turn and returns the text of the
// first candidate. A blocked prompt or a candidate without text yields ""
// and no error.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		logger.Named("insight").Warnw("prompt blocked", "reason", resp.PromptFeedback.BlockReason)
		return "", nil
	}
	return resp.Text(), nil
}
