//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{name: "english message", key: ErrKeyEmptyCart, locale: "en", expected: "Your cart is empty"},
		{name: "bangla message", key: ErrKeyEmptyCart, locale: "bn", expected: "আপনার কার্ট খালি"},
		{name: "empty locale defaults to english", key: ErrKeyInvalidRequest, locale: "", expected: "Invalid request"},
		{name: "unsupported locale falls back", key: ErrKeyInvalidRequest, locale: "fr", expected: "Invalid request"},
		{name: "unknown key returns key", key: "unknown.key", locale: "bn", expected: "unknown.key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	translator := NewTranslator()
	en := translator.messages[DefaultLocale]

	for _, locale := range translator.Locales() {
		for key := range en {
			_, ok := translator.messages[locale][key]
			assert.Truef(t, ok, "locale %s is missing %s", locale, key)
		}
	}
	assert.Equal(t, []string{"bn", "en"}, translator.Locales())
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{name: "no header returns default", acceptLanguage: "", expected: DefaultLocale},
		{name: "bangla", acceptLanguage: "bn", expected: "bn"},
		{name: "region is stripped", acceptLanguage: "bn-BD", expected: "bn"},
		{name: "first supported wins", acceptLanguage: "fr-FR,bn;q=0.9,en;q=0.8", expected: "bn"},
		{name: "unsupported only", acceptLanguage: "fr", expected: DefaultLocale},
		{name: "case insensitive", acceptLanguage: "EN-us", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = req

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}

func TestT(t *testing.T) {
	gin.SetMode(gin.TestMode)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(AcceptLanguageHeader, "bn")
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	assert.Equal(t, "কার্ট সেশন প্রয়োজন", T(c, ErrKeySessionRequired))
}
