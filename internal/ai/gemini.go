package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"wanderplan/internal/config"
)

// contentGenerator is the slice of *genai.GenerativeModel the provider depends on.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiProvider implements TextGenerator using Google's Gemini models.
type GeminiProvider struct {
	client    *genai.Client
	model     contentGenerator
	modelName string
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables; a blank key fails before any network activity.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, config.ErrMissingAPIKey
	}
	if strings.TrimSpace(modelName) == "" {
		modelName = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	applyDecoding(model, DefaultDecoding())

	return &GeminiProvider{
		client:    client,
		model:     model,
		modelName: modelName,
	}, nil
}

// ModelName returns the resolved model name.
func (p *GeminiProvider) ModelName() string {
	return p.modelName
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	if p.client != nil {
		p.client.Close()
	}
}

// Generate sends prompt as one user turn. There is no chat session: every call
// starts from an empty history and no follow-up turn is ever sent.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	return responseText(resp)
}

func applyDecoding(model *genai.GenerativeModel, cfg DecodingConfig) {
	model.SetTemperature(cfg.Temperature)
	model.SetTopP(cfg.TopP)
	model.SetTopK(cfg.TopK)
	model.SetMaxOutputTokens(cfg.MaxOutputTokens)
	model.ResponseMIMEType = cfg.ResponseMIMEType
}

// responseText joins the text parts of the first candidate.
// An empty body is returned as-is; judging it is the parser's job.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			return "", fmt.Errorf("gemini blocked the prompt: %s", resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("no response candidates from Gemini")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", fmt.Errorf("gemini candidate has no content (finish reason %s)", candidate.FinishReason)
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	return text.String(), nil
}
