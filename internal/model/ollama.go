// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// defaultOllamaURL is where a stock local Ollama server listens.
const defaultOllamaURL = "http://localhost:11434"

// OllamaBackend calls a local Ollama server through its chat API.
type OllamaBackend struct {
	BaseURL string
	Model   string
	Client  *http.Client
}

// ollamaRequest is the request body for the Ollama chat API.
type ollamaRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   string          `json:"format,omitempty"`
}

// ollamaMessage is a single message in the chat conversation.
type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ollamaResponse is the non-streaming response body from the chat API.
type ollamaResponse struct {
	Message ollamaMessage `json:"message"`
}

// Complete sends the prompt pair to Ollama and returns the reply text.
// The request asks for JSON-constrained output; the reply is still
// treated as untrusted free text by callers.
func (o *OllamaBackend) Complete(ctx context.Context, system, user string) (string, error) {
	reqBody := ollamaRequest{
		Model:  o.Model,
		Stream: false,
		Format: "json",
		Messages: []ollamaMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	base := o.BaseURL
	if base == "" {
		base = defaultOllamaURL
	}
	url := strings.TrimSuffix(base, "/") + "/api/chat"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := o.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Ollama returned %d: %s", resp.StatusCode, string(body))
	}

	var oResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&oResp); err != nil {
		return "", fmt.Errorf("decoding Ollama response: %w", err)
	}

	return oResp.Message.Content, nil
}
