// Package provider defines the translation provider interface and implementations.
package provider

import (
	"context"
	"fmt"
)

// Translator is the interface for translation backends.
// Implementations must honor ctx cancellation and deadlines.
type Translator interface {
	// Translate translates text into the target language (ISO 639-1 code).
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Error wraps a provider failure.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
