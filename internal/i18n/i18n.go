// Package i18n provides internationalization of user-facing error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale or key is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	if msg, ok := localeMessages[key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale extracts the preferred locale from the Accept-Language header.
// Only the primary language subtag of the first entry is considered.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	first := strings.TrimSpace(strings.Split(header, ",")[0])
	lang := strings.ToLower(strings.Split(strings.Split(first, ";")[0], "-")[0])
	if lang == "" {
		return DefaultLocale
	}
	return lang
}

func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInternalError:       "An unexpected error occurred",
			ErrKeyUpstreamUnavailable: "Search is temporarily unavailable",
			ErrKeyRateLimitExceeded:   "Too many requests, please try again later",
			ErrKeyUnauthorized:        "Missing or invalid credentials",
		},
		"es": {
			ErrKeyInternalError:       "Ocurrió un error inesperado",
			ErrKeyUpstreamUnavailable: "La búsqueda no está disponible temporalmente",
			ErrKeyRateLimitExceeded:   "Demasiadas solicitudes, inténtelo de nuevo más tarde",
			ErrKeyUnauthorized:        "Credenciales faltantes o inválidas",
		},
		"pt": {
			ErrKeyInternalError:       "Ocorreu um erro inesperado",
			ErrKeyUpstreamUnavailable: "A busca está temporariamente indisponível",
			ErrKeyRateLimitExceeded:   "Muitas solicitações, tente novamente mais tarde",
			ErrKeyUnauthorized:        "Credenciais ausentes ou inválidas",
		},
	}
}
