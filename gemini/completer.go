// Package gemini implements adgen.Completer on the Google Gemini API.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/adgen"
	"google.golang.org/genai"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements adgen.Completer at compile time.
var _ adgen.Completer = (*Completer)(nil)

// Completer implements adgen.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Model returns the configured model name.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends prompt as a single user turn and returns the response text.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", adgen.Errorf(adgen.EINVALID, "prompt required")
	}
	if c.client == nil {
		return "", adgen.Errorf(adgen.EINTERNAL, "gemini client not configured")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", ClassifyError(err)
	}
	if result == nil {
		return "", adgen.Errorf(adgen.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You write short, relevant copy for web pages. Follow the requested output format exactly and do not add commentary.",
			}},
		},
		Temperature: &temp,
	}
}

// ClassifyError tags transient capacity failures with EOVERLOADED so callers
// can retry them. Other errors pass through unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if adgen.IsOverloaded(err) || strings.Contains(msg, "UNAVAILABLE") {
		return adgen.Errorf(adgen.EOVERLOADED, "%s", msg)
	}
	return err
}
