// Package ai wraps the external text-generation endpoint behind a single
// Generate call. One request, one response; no retry, no streaming.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "openai/gpt-3.5-turbo"
)

// ErrCredentialMissing is returned when Generate is called without a key.
// Callers surface it by prompting for a credential, not as a hard failure.
var ErrCredentialMissing = errors.New("no API key provided")

// APIError is a non-2xx response from the completion endpoint, carrying the
// status and the provider-supplied detail when one was sent.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API request failed (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("API request failed (%d)", e.Status)
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	BaseURL string
	Model   string
	HTTP    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		Model:   defaultModel,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the prompt as a single user message and returns the first
// choice's content. The credential is used for this call only; persisting an
// accepted key is the caller's job, and a failed call must never persist one.
func (c *Client) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	if apiKey == "" {
		return "", ErrCredentialMissing
	}

	body, err := json.Marshal(chatRequest{
		Model:    c.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Title", "Resume Builder")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading completion response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: resp.Status}
		var detail errorResponse
		if err := json.Unmarshal(respBody, &detail); err == nil && detail.Error.Message != "" {
			apiErr.Message = detail.Error.Message
		}
		return "", apiErr
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return "", fmt.Errorf("decoding completion response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", errors.New("completion response contained no choices")
	}
	return chat.Choices[0].Message.Content, nil
}
