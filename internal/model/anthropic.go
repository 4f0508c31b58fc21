// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// anthropicAPIURL is the Claude Messages API endpoint. Package-level var
// for test substitution.
var anthropicAPIURL = "https://api.anthropic.com/v1/messages"

// AnthropicBackend calls the Claude Messages API.
type AnthropicBackend struct {
	APIKey string
	Model  string
	Client *http.Client
}

// anthropicRequest is the request body for the Claude Messages API.
type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

// anthropicMessage is a single message in the conversation.
type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse is the response body from the Claude Messages API.
type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
}

// anthropicContent is a content block in the API response.
type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Complete sends the prompt pair to the Claude API and returns the text
// of the first text content block.
func (a *AnthropicBackend) Complete(ctx context.Context, system, user string) (string, error) {
	reqBody := anthropicRequest{
		Model:     a.Model,
		MaxTokens: 1024,
		System:    system,
		Messages: []anthropicMessage{
			{Role: "user", Content: user},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	client := a.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Claude API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Claude API returned %d: %s", resp.StatusCode, string(body))
	}

	var aResp anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&aResp); err != nil {
		return "", fmt.Errorf("decoding Claude response: %w", err)
	}

	for _, block := range aResp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("no text content in Claude API response")
}
