package backoffice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, serverURL string) (*Client, *SessionStore) {
	t.Helper()
	store := NewSessionStore(NewMemoryStorage(), zerolog.Nop())
	client := NewClient(ClientOptions{BaseURL: serverURL, Logger: zerolog.Nop()}, store)
	return client, store
}

func writeEnvelope(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": message,
		"data":    data,
		"code":    status,
		"error":   status >= 400,
	})
}

func TestClient_Login_StoresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["email"] != "john@example.com" {
			t.Fatalf("email = %q", req["email"])
		}
		writeEnvelope(w, http.StatusOK, "Logged in successfully", map[string]any{
			"user":  testIdentity(),
			"token": "token-abc",
		})
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	user, err := client.Login(context.Background(), "john@example.com", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.ID != 7 {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !store.IsAuthenticated() || store.Token() != "token-abc" {
		t.Fatalf("session not stored: token=%q", store.Token())
	}
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "invalid credentials", nil)
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	_, err := client.Login(context.Background(), "john@example.com", "wrong")
	if !IsUnauthenticated(err) {
		t.Fatalf("expected unauthenticated error, got %v", err)
	}
	if store.IsAuthenticated() {
		t.Fatalf("failed login must not authenticate")
	}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var sawAuth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuth.Store(r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, "ok", testIdentity())
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	if err := store.Login(testIdentity(), "token-abc"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := client.GetUser(context.Background(), 7); err != nil {
		t.Fatalf("GetUser returned error: %v", err)
	}
	if got := sawAuth.Load(); got != "Bearer token-abc" {
		t.Fatalf("Authorization header = %q", got)
	}
}

func TestClient_401ClearsSessionBeforeReturning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "session revoked or expired", nil)
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	if err := store.Login(testIdentity(), "stale-token"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	_, err := client.GetUser(context.Background(), 7)
	if !IsUnauthenticated(err) {
		t.Fatalf("expected unauthenticated error, got %v", err)
	}
	// The session must already be cleared when the caller sees the error.
	if store.IsAuthenticated() {
		t.Fatalf("session not cleared on 401")
	}
}

func TestClient_RetriesReadOnce(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeEnvelope(w, http.StatusInternalServerError, "transient failure", nil)
			return
		}
		writeEnvelope(w, http.StatusOK, "ok", testIdentity())
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)
	if _, err := client.GetUser(context.Background(), 7); err != nil {
		t.Fatalf("GetUser returned error after retry: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", calls.Load())
	}
}

func TestClient_ReadFailsAfterSecondAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeEnvelope(w, http.StatusInternalServerError, "down", nil)
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)
	if _, err := client.GetUser(context.Background(), 7); err == nil {
		t.Fatalf("expected error")
	}
	if calls.Load() != 2 {
		t.Fatalf("expected exactly 2 calls, got %d", calls.Load())
	}
}

func TestClient_NeverRetriesWrites(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeEnvelope(w, http.StatusInternalServerError, "down", nil)
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)
	if _, err := client.Login(context.Background(), "a@b.c", "pw"); err == nil {
		t.Fatalf("expected error")
	}
	if calls.Load() != 1 {
		t.Fatalf("mutating request retried: %d calls", calls.Load())
	}
}

func TestClient_Logout_ClearsLocalSessionEvenOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "session revoked or expired", nil)
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	if err := store.Login(testIdentity(), "stale-token"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := client.Logout(context.Background()); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if store.IsAuthenticated() {
		t.Fatalf("session not cleared on logout")
	}
}

func TestClient_RefreshCurrentUser_UpdatesStore(t *testing.T) {
	updated := testIdentity()
	updated.Address = "456 Port Road"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/7" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		writeEnvelope(w, http.StatusOK, "ok", updated)
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	if err := store.Login(testIdentity(), "token-abc"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := client.RefreshCurrentUser(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if user := store.User(); user.Address != "456 Port Road" {
		t.Fatalf("store not updated: %+v", user)
	}
	if store.Token() != "token-abc" {
		t.Fatalf("token changed on refresh")
	}
}

func TestClient_Dashboard_ClassifiesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "ok", map[string]any{
			"message": "Generic dashboard data",
		})
	}))
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)
	if err := store.Login(testIdentity(), "token-abc"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	d, err := client.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if d.Kind != DashboardHumanResource {
		t.Fatalf("kind = %v", d.Kind)
	}
}
