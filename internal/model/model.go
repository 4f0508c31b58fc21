// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package model provides clients for the language-model APIs that answer
// extraction prompts.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/anwarhahn/pdf-renamer/pkg/types"
)

// Backend abstracts a language-model API so tests can supply a mock.
// Complete sends one system+user prompt pair and returns the raw reply
// text, which callers expect to be a single JSON object. Calls are
// synchronous; a hung backend blocks the caller until ctx is done.
type Backend interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Detect infers the backend from the model identifier. Hosted model
// families carry a vendor prefix; anything else is assumed to be a local
// Ollama model.
func Detect(model string) types.BackendKind {
	switch {
	case strings.HasPrefix(model, "gemini-"):
		return types.BackendGemini
	case strings.HasPrefix(model, "claude-"):
		return types.BackendAnthropic
	default:
		return types.BackendOllama
	}
}

// New constructs the backend selected by cfg.Backend, resolving
// BackendAuto through Detect.
func New(ctx context.Context, cfg types.RenameConfig) (Backend, error) {
	kind := cfg.Backend
	if kind == "" || kind == types.BackendAuto {
		kind = Detect(cfg.Model)
	}

	switch kind {
	case types.BackendOllama:
		return &OllamaBackend{BaseURL: cfg.OllamaURL, Model: cfg.Model}, nil
	case types.BackendAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("model %q needs an Anthropic API key", cfg.Model)
		}
		return &AnthropicBackend{APIKey: cfg.APIKey, Model: cfg.Model}, nil
	case types.BackendGemini:
		return NewGemini(ctx, cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown backend %q", kind)
	}
}
