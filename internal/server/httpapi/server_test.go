package httpapi

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sergiomezzz/mi-api-juegos2/internal/logging"
	"github.com/sergiomezzz/mi-api-juegos2/internal/server/config"
	"github.com/sergiomezzz/mi-api-juegos2/internal/server/games"
	"github.com/sergiomezzz/mi-api-juegos2/internal/server/shared/db"
	"github.com/sergiomezzz/mi-api-juegos2/internal/server/users"
)

func TestCORS_PreflightAllowed(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/games", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if got := resp.Header.Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Authorization") {
		t.Fatalf("Access-Control-Allow-Headers = %q, want Authorization included", got)
	}
}

func TestCORS_SimpleRequestGetsOriginHeader(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://example.com")

	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestErrorHandler_LogsRejectionsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	cfg := &config.Config{SecretKey: testSecret, TokenValidityDuration: time.Hour}
	m := db.NewInMemoryRepositoryManager()
	s, err := NewHTTPServer(":0", logger, users.NewService(m.Users(), cfg), games.NewService(m.Games()), testSecret)
	if err != nil {
		t.Fatalf("NewHTTPServer error: %v", err)
	}

	token := registerAndLogin(t, s, "alice", "alice@example.com", "s3cret")

	resp := doJSON(t, s, http.MethodDelete, "/games/no-such-id", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("delete status = %d, want 404", resp.StatusCode)
	}

	out := buf.String()
	if !strings.Contains(out, "request rejected") {
		t.Fatalf("expected a debug record for the rejected request, got:\n%s", out)
	}
	if !strings.Contains(out, "status=404") {
		t.Fatalf("expected status=404 in the debug record, got:\n%s", out)
	}
}
