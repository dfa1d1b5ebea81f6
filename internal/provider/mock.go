package provider

import (
	"context"
	"fmt"
	"sync"
)

// MockTranslator is a scriptable translator for tests.
type MockTranslator struct {
	mu           sync.Mutex
	Translations map[string]string // source text to translation
	Err          error             // returned by every call when set
	Delay        chan struct{}     // when set, Translate blocks until closed or ctx done
	callCount    int
}

// NewMockTranslator creates a mock with a few default translations.
func NewMockTranslator() *MockTranslator {
	return &MockTranslator{
		Translations: map[string]string{
			"perro": "cachorro",
			"gato":  "gato",
			"hello": "ola",
		},
	}
}

// Translate returns the scripted translation, or a bracketed echo for
// unknown texts.
func (m *MockTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	m.mu.Lock()
	m.callCount++
	err := m.Err
	delay := m.Delay
	translation, ok := m.Translations[text]
	m.mu.Unlock()

	if delay != nil {
		select {
		case <-delay:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err != nil {
		return "", err
	}
	if !ok {
		return fmt.Sprintf("[%s]", text), nil
	}
	return translation, nil
}

// CallCount returns the number of times Translate was invoked.
func (m *MockTranslator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

var _ Translator = (*MockTranslator)(nil)
