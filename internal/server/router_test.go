package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/code-sage/internal/config"
	"github.com/sevigo/code-sage/internal/core"
	"github.com/sevigo/code-sage/mocks"
)

func newTestRouter(t *testing.T, origins []string) (http.Handler, *mocks.MockReviewer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reviewer := mocks.NewMockReviewer(ctrl)
	cfg := &config.Config{
		ServerRequestTimeout: 5 * time.Second,
		MaxRequestBytes:      1 << 20,
		CORSAllowedOrigins:   origins,
	}
	return NewRouter(cfg, reviewer, slog.New(slog.NewTextHandler(io.Discard, nil))), reviewer
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t, []string{"*"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_GetReview(t *testing.T) {
	router, reviewer := newTestRouter(t, []string{"*"})
	reviewer.EXPECT().Review(gomock.Any(), "print(1)").
		Return(&core.ReviewResult{Summary: "ok", Suggestions: []string{}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/ai/get-review", strings.NewReader(`{"code":"print(1)"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://frontend.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"summary":"ok","suggestions":[]}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router, reviewer := newTestRouter(t, []string{"*"})
	reviewer.EXPECT().Review(gomock.Any(), gomock.Any()).Times(0)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ai/get-review", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantHeader string
	}{
		{
			name:       "Permissive",
			origins:    []string{"*"},
			origin:     "https://anything.example",
			wantHeader: "*",
		},
		{
			name:       "Allowed specific origin",
			origins:    []string{"https://frontend.example"},
			origin:     "https://frontend.example",
			wantHeader: "https://frontend.example",
		},
		{
			name:       "Disallowed origin",
			origins:    []string{"https://frontend.example"},
			origin:     "https://evil.example",
			wantHeader: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, tt.origins)

			req := httptest.NewRequest(http.MethodOptions, "/ai/get-review", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "Content-Type")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
