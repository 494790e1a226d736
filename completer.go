package adgen

import (
	"context"
	"strings"
)

// Completer is a black-box text-completion service.
type Completer interface {
	// Complete sends prompt to the model and returns its text response.
	// Transient overload failures should carry EOVERLOADED.
	Complete(ctx context.Context, prompt string) (string, error)

	// Model returns the name of the underlying model.
	Model() string
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

// IsOverloaded reports whether err signals a transient overload of the
// completion service that is worth retrying.
func IsOverloaded(err error) bool {
	if err == nil {
		return false
	}
	if ErrorCode(err) == EOVERLOADED {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "503") ||
		strings.Contains(msg, "overloaded") ||
		strings.Contains(msg, "service unavailable")
}
