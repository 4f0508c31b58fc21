// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

// GeminiBackend calls the Gemini API through the official client.
type GeminiBackend struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini backend for the given model.
func NewGemini(ctx context.Context, apiKey, model string) (*GeminiBackend, error) {
	if apiKey == "" {
		return nil, errors.New("missing Gemini API key")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &GeminiBackend{client: c, model: model}, nil
}

// Complete sends the prompt pair to Gemini and returns the reply text.
// Gemini wraps JSON replies in Markdown code fences more often than not,
// so fences are stripped before the text reaches the parser.
func (g *GeminiBackend) Complete(ctx context.Context, system, user string) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(user, genai.RoleUser),
	}, cfg)
	if err != nil {
		return "", fmt.Errorf("calling Gemini API: %w", err)
	}

	return stripCodeFences(res.Text()), nil
}

// stripCodeFences removes a surrounding ```json ... ``` (or plain ```)
// fence from s, if present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		if nl := strings.Index(s, "\n"); nl != -1 {
			s = s[nl+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}

	return s
}
