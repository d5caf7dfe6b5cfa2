package server

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phone2mail/internal/config"
	"phone2mail/internal/mailer"
)

type stubSender struct {
	sent int
	err  error
}

func (s *stubSender) Name() string { return "stub" }

func (s *stubSender) Send(ctx context.Context, msg *mailer.Message) error {
	s.sent++
	return s.err
}

func testConfig(origins ...string) *config.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &config.Config{
		Port:           3001,
		Env:            "production",
		AllowedOrigins: origins,
		UploadMaxSize:  25 * 1000 * 1000,
		Email:          config.EmailConfig{Provider: "log", From: "photos@example.com"},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, sender mailer.Sender) http.Handler {
	t.Helper()
	srv, err := NewServer(cfg, sender)
	require.NoError(t, err)
	return srv.RegisterRoutes()
}

func TestNewServer_RequiresSender(t *testing.T) {
	_, err := NewServer(testConfig(), nil)
	assert.Error(t, err)
}

func TestStart(t *testing.T) {
	srv, err := NewServer(testConfig(), &stubSender{})
	require.NoError(t, err)

	httpServer, err := srv.Start()
	require.NoError(t, err)
	assert.Equal(t, ":3001", httpServer.Addr)
	assert.NotNil(t, httpServer.Handler)
}

func TestHealthHandler(t *testing.T) {
	router := newTestRouter(t, testConfig(), &stubSender{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"Server is running"}`, rec.Body.String())
}

func TestUploadPage(t *testing.T) {
	router := newTestRouter(t, testConfig(), &stubSender{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/send-email"`)
	assert.Contains(t, rec.Body.String(), "up to 25 MB")
}

func TestStaticAssets(t *testing.T) {
	router := newTestRouter(t, testConfig(), &stubSender{})

	for _, path := range []string{"/assets/js/app.js", "/assets/css/app.css"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Body.String())
		})
	}
}

func TestNotFound(t *testing.T) {
	router := newTestRouter(t, testConfig(), &stubSender{})

	t.Run("JSON", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Not found"}`, rec.Body.String())
	})

	t.Run("HTML", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Not found")
	})
}

func TestSendEmailRoute(t *testing.T) {
	sender := &stubSender{}
	router := newTestRouter(t, testConfig(), sender)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("email", "user@example.com"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/send-email", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Email and photo are required"}`, rec.Body.String())
	assert.Zero(t, sender.sent)
}

func TestSendEmailRoute_ProviderFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("dial tcp: connection refused")}
	router := newTestRouter(t, testConfig(), sender)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("email", "user@example.com"))
	part, err := mw.CreateFormFile("photo", "photo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/send-email", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to send email"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Equal(t, 1, sender.sent)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantHeader string
	}{
		{"Any origin", []string{"*"}, "https://phone.example", "*"},
		{"Allowed origin", []string{"https://photos.example.com"}, "https://photos.example.com", "https://photos.example.com"},
		{"Rejected origin", []string{"https://photos.example.com"}, "https://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, testConfig(tt.origins...), &stubSender{})

			req := httptest.NewRequest(http.MethodOptions, "/send-email", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
