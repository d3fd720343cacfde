package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sergiomezzz/mi-api-juegos2/internal/server/auth"
)

func doJSON(t *testing.T, s *HTTPServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func registerAndLogin(t *testing.T, s *HTTPServer, username, email, password string) string {
	t.Helper()

	resp := doJSON(t, s, http.MethodPost, "/users/register", "", map[string]string{
		"username": username, "email": email, "password": password,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", resp.StatusCode)
	}

	resp = doJSON(t, s, http.MethodPost, "/users/login", "", map[string]string{
		"email": email, "password": password,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	if body.Token == "" {
		t.Fatalf("expected non-empty token")
	}
	return body.Token
}

func TestScenario_RegisterLoginAndManageCatalog(t *testing.T) {
	s := newTestServer(t)

	token := registerAndLogin(t, s, "u1", "u1@example.com", "pw123456")

	userID, err := auth.GetUserIDFromToken(token, []byte(testSecret))
	if err != nil {
		t.Fatalf("GetUserIDFromToken error: %v", err)
	}

	// empty catalog
	resp := doJSON(t, s, http.MethodGet, "/games", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d, want 200", resp.StatusCode)
	}
	var list []gameResponse
	decode(t, resp, &list)
	if len(list) != 0 {
		t.Fatalf("expected empty catalog, got %+v", list)
	}

	// create
	resp = doJSON(t, s, http.MethodPost, "/games", token, map[string]string{"title": "Chrono Trigger"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created gameResponse
	decode(t, resp, &created)
	if created.Title != "Chrono Trigger" {
		t.Fatalf("unexpected title: %q", created.Title)
	}
	if created.User != userID {
		t.Fatalf("owner = %q, want %q", created.User, userID)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	// partial update
	resp = doJSON(t, s, http.MethodPut, "/games/"+created.ID, token, map[string]string{"genre": "RPG"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, want 200", resp.StatusCode)
	}
	var updated gameResponse
	decode(t, resp, &updated)
	if updated.Genre != "RPG" {
		t.Fatalf("genre not updated: %+v", updated)
	}
	if updated.Title != "Chrono Trigger" {
		t.Fatalf("title must be unchanged: %+v", updated)
	}

	// delete
	resp = doJSON(t, s, http.MethodDelete, "/games/"+created.ID, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}
	var deleted struct {
		Msg string `json:"msg"`
	}
	decode(t, resp, &deleted)
	if deleted.Msg == "" {
		t.Fatalf("expected confirmation message")
	}

	// catalog empty again
	resp = doJSON(t, s, http.MethodGet, "/games", token, nil)
	decode(t, resp, &list)
	if len(list) != 0 {
		t.Fatalf("expected empty catalog after delete, got %+v", list)
	}
}

func TestRegister_Validation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing username", map[string]string{"email": "a@example.com", "password": "pw"}},
		{"missing email", map[string]string{"username": "u1", "password": "pw"}},
		{"malformed email", map[string]string{"username": "u1", "email": "not-an-email", "password": "pw"}},
		{"missing password", map[string]string{"username": "u1", "email": "a@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, s, http.MethodPost, "/users/register", "", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newTestServer(t)

	body := map[string]string{"username": "u1", "email": "u1@example.com", "password": "pw123456"}

	resp := doJSON(t, s, http.MethodPost, "/users/register", "", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first register status = %d, want 201", resp.StatusCode)
	}

	resp = doJSON(t, s, http.MethodPost, "/users/register", "", map[string]string{
		"username": "someone-else", "email": "u1@example.com", "password": "pw123456",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d, want 400", resp.StatusCode)
	}
	if msg := decodeError(t, resp); msg != "registration failed" {
		t.Fatalf("conflict must not reveal the colliding field, got %q", msg)
	}
}

func TestLogin_UniformFailureShape(t *testing.T) {
	s := newTestServer(t)
	registerAndLogin(t, s, "u1", "u1@example.com", "pw123456")

	wrongPassword := doJSON(t, s, http.MethodPost, "/users/login", "", map[string]string{
		"email": "u1@example.com", "password": "wrong",
	})
	unknownEmail := doJSON(t, s, http.MethodPost, "/users/login", "", map[string]string{
		"email": "ghost@example.com", "password": "wrong",
	})

	if wrongPassword.StatusCode != http.StatusBadRequest || unknownEmail.StatusCode != http.StatusBadRequest {
		t.Fatalf("statuses = %d / %d, want 400 / 400", wrongPassword.StatusCode, unknownEmail.StatusCode)
	}
	if a, b := decodeError(t, wrongPassword), decodeError(t, unknownEmail); a != b {
		t.Fatalf("login failures must be indistinguishable: %q vs %q", a, b)
	}
}

func TestCreateGame_TitleRequired(t *testing.T) {
	s := newTestServer(t)
	token := registerAndLogin(t, s, "u1", "u1@example.com", "pw123456")

	resp := doJSON(t, s, http.MethodPost, "/games", token, map[string]string{"genre": "RPG"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGames_OwnershipEnforced(t *testing.T) {
	s := newTestServer(t)

	tokenA := registerAndLogin(t, s, "alice", "alice@example.com", "pw123456")
	tokenB := registerAndLogin(t, s, "bob", "bob@example.com", "pw123456")

	resp := doJSON(t, s, http.MethodPost, "/games", tokenA, map[string]string{"title": "Chrono Trigger"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created gameResponse
	decode(t, resp, &created)

	// B cannot see A's game
	resp = doJSON(t, s, http.MethodGet, "/games", tokenB, nil)
	var listB []gameResponse
	decode(t, resp, &listB)
	if len(listB) != 0 {
		t.Fatalf("b must not see a's games, got %+v", listB)
	}

	// B cannot update or delete A's game
	resp = doJSON(t, s, http.MethodPut, "/games/"+created.ID, tokenB, map[string]string{"title": "Hijacked"})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("update by non-owner status = %d, want 403", resp.StatusCode)
	}
	resp = doJSON(t, s, http.MethodDelete, "/games/"+created.ID, tokenB, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("delete by non-owner status = %d, want 403", resp.StatusCode)
	}

	// A still can
	resp = doJSON(t, s, http.MethodPut, "/games/"+created.ID, tokenA, map[string]string{"genre": "RPG"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("owner update status = %d, want 200", resp.StatusCode)
	}
	resp = doJSON(t, s, http.MethodDelete, "/games/"+created.ID, tokenA, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("owner delete status = %d, want 200", resp.StatusCode)
	}
}

func TestGames_NotFound(t *testing.T) {
	s := newTestServer(t)
	token := registerAndLogin(t, s, "u1", "u1@example.com", "pw123456")

	resp := doJSON(t, s, http.MethodPut, "/games/no-such-id", token, map[string]string{"title": "x"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("update status = %d, want 404", resp.StatusCode)
	}

	resp = doJSON(t, s, http.MethodDelete, "/games/no-such-id", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("delete status = %d, want 404", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
