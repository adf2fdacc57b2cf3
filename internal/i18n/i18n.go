// Package i18n translates user-facing API messages.
package i18n

import (
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is used when the client asks for nothing we support.
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header carrying language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator resolves message keys per locale.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator loaded with the built-in catalog.
func NewTranslator() *Translator {
	return &Translator{messages: catalog()}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale. Unknown locales and keys
// missing from a locale fall back to DefaultLocale; an unknown key is
// returned as is.
func (t *Translator) Translate(key, locale string) string {
	if msgs, ok := t.messages[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether locale has a catalog.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Locales lists the supported locales in sorted order.
func (t *Translator) Locales() []string {
	out := make([]string, 0, len(t.messages))
	for l := range t.messages {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// GetLocale picks the first supported language from Accept-Language,
// e.g. "bn-BD,bn;q=0.9,en;q=0.8" yields "bn".
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	tr := GetTranslator()
	for _, part := range strings.Split(header, ",") {
		lang := strings.TrimSpace(strings.Split(part, ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if tr.Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

// T translates key for the locale of the current request.
func T(c *gin.Context, key string) string {
	return GetTranslator().Translate(key, GetLocale(c))
}
