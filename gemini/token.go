package gemini

import (
	"context"

	"github.com/fwojciec/adgen"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ adgen.TokenCounter = (*TokenCounter)(nil)

// TokenCounter estimates the prompt size of a Complete call offline with the
// local Gemini tokenizer. The count covers the system instruction sent by
// BuildConfig as well as the prompt itself.
type TokenCounter struct {
	tok    *tokenizer.LocalTokenizer
	system *genai.Content
}

// NewTokenCounter returns a TokenCounter for model. An empty model uses
// DefaultModel. Models the local tokenizer does not know return an error.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, adgen.Errorf(adgen.EINVALID, "no local tokenizer for %s: %v", model, err)
	}
	system := BuildConfig().SystemInstruction
	system.Role = "user"
	return &TokenCounter{tok: tok, system: system}, nil
}

// CountTokens returns the tokens a Complete call for prompt would send.
// An empty prompt counts as zero.
func (tc *TokenCounter) CountTokens(_ context.Context, prompt string) (int, error) {
	if prompt == "" {
		return 0, nil
	}
	result, err := tc.tok.CountTokens([]*genai.Content{
		tc.system,
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, nil)
	if err != nil {
		return 0, adgen.Errorf(adgen.EINTERNAL, "count tokens: %v", err)
	}
	return int(result.TotalTokens), nil
}
