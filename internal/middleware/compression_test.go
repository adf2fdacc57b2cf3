//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCompression(t *testing.T) {
	tests := []struct {
		name             string
		path             string
		acceptEncoding   string
		expectCompressed bool
	}{
		{name: "compresses when client accepts gzip", path: "/api/cart", acceptEncoding: "gzip", expectCompressed: true},
		{name: "compresses with several encodings", path: "/api/cart", acceptEncoding: "gzip, deflate", expectCompressed: true},
		{name: "plain without Accept-Encoding", path: "/api/cart", expectCompressed: false},
		{name: "metrics path is excluded", path: "/metrics", acceptEncoding: "gzip", expectCompressed: false},
	}

	body := strings.Repeat(`{"id":"pkg-12-lunch-sun","quantity":2}`, 100)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Compression())
			handler := func(c *gin.Context) { c.String(http.StatusOK, body) }
			router.GET("/api/cart", handler)
			router.GET("/metrics", handler)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			if tt.expectCompressed {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
			} else {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
				assert.Equal(t, body, w.Body.String())
			}
		})
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name          string
		origins       []string
		requestOrigin string
		expectAllowed string
	}{
		{name: "wildcard allows any origin", origins: nil, requestOrigin: "https://shop.example.com", expectAllowed: "*"},
		{name: "listed origin is echoed", origins: []string{"https://shop.example.com"}, requestOrigin: "https://shop.example.com", expectAllowed: "https://shop.example.com"},
		{name: "unlisted origin is refused", origins: []string{"https://shop.example.com"}, requestOrigin: "https://evil.example.com", expectAllowed: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.origins))
			router.GET("/api/cart", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
			req.Header.Set("Origin", tt.requestOrigin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectAllowed, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
