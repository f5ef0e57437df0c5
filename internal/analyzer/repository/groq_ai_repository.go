package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang-stock-analyzer/internal/analyzer/config"
	"golang-stock-analyzer/internal/analyzer/dto"
	"golang-stock-analyzer/pkg/logger"
)

// groqAIRepository talks to any OpenAI-compatible chat completions endpoint.
// Groq is the default; OpenAI and OpenRouter use the same wire format.
type groqAIRepository struct {
	client *http.Client
	cfg    *config.Config
	logger *logger.Logger
}

func NewGroqAIRepository(cfg *config.Config, logger *logger.Logger) AIRepository {
	return &groqAIRepository{
		client: &http.Client{
			Timeout: cfg.Timeout(),
		},
		cfg:    cfg,
		logger: logger,
	}
}

func (r *groqAIRepository) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := r.SendRequest(ctx, prompt)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", dto.ErrEmptyCompletion
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", dto.ErrEmptyCompletion
	}

	r.logger.DebugContext(ctx, "Completion received",
		logger.StringField("model", resp.Model),
		logger.IntField("total_tokens", resp.Usage.TotalTokens),
	)
	return content, nil
}

func (r *groqAIRepository) SendRequest(ctx context.Context, prompt string) (*dto.OpenAPIRes, error) {
	payload := dto.OpenAPIReq{
		Model: r.cfg.LLM.Model,
		Messages: []dto.Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Temperature: r.cfg.LLM.Temperature,
		MaxTokens:   r.cfg.LLM.MaxTokens,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.LLM.BaseURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.cfg.LLM.APIKey))

	r.logger.DebugContext(ctx, "Sending request to completion API", logger.StringField("url", r.cfg.LLM.BaseURL), logger.StringField("model", r.cfg.LLM.Model))

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to completion API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		r.logger.ErrorContext(ctx, "Received non-OK response from completion API", logger.IntField("status_code", resp.StatusCode), logger.StringField("model", r.cfg.LLM.Model))
		return nil, fmt.Errorf("received non-OK response from completion API: %d - %s", resp.StatusCode, string(body))
	}

	var completion dto.OpenAPIRes
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return &completion, nil
}
