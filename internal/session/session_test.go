package session_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/harssh120/AlphaFit/internal/api"
	"github.com/harssh120/AlphaFit/internal/db"
	"github.com/harssh120/AlphaFit/internal/session"
)

const validToken = "tok-alice"

func newTestStore(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "alphafit.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func newFakeService(t *testing.T) *httptest.Server {
	t.Helper()
	profile := map[string]any{
		"id": "u1", "username": "alice", "email": "a@x.com", "full_name": "Alice A",
		"age": 30, "height": 170.0, "weight": 65.0,
		"goal_type": "maintenance", "activity_level": "moderately_active",
		"bmi": 22.49, "daily_calories": 2372,
	}
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "POST /api/auth/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["username"] != "alice" || body["password"] != "p1" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"token": validToken, "user": profile})
		case "POST /api/auth/register":
			var reg map[string]any
			_ = json.NewDecoder(r.Body).Decode(&reg)
			if reg["username"] == "taken" {
				writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Username or email already exists"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"token": validToken, "user": profile})
		case "GET /api/auth/profile":
			if r.Header.Get("Authorization") != "Bearer "+validToken {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid token"})
				return
			}
			writeJSON(w, http.StatusOK, profile)
		default:
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found"})
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newTestManager(t *testing.T) (*session.Manager, *sql.DB) {
	t.Helper()
	ts := newFakeService(t)
	sqldb := newTestStore(t)
	client := &api.Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	return session.NewManager(client, sqldb, nil), sqldb
}

func TestRestoreWithoutToken(t *testing.T) {
	mgr, _ := newTestManager(t)
	if err := mgr.Restore(context.Background()); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if mgr.State() != session.StateUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", mgr.State())
	}
}

func TestLoginSuccess(t *testing.T) {
	mgr, sqldb := newTestManager(t)

	if err := mgr.Login(context.Background(), "alice", "p1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if mgr.State() != session.StateAuthenticated {
		t.Fatalf("expected authenticated, got %v", mgr.State())
	}
	profile := mgr.Profile()
	if profile == nil || profile.Username != "alice" {
		t.Fatalf("expected populated profile, got %+v", profile)
	}
	cred, ok := mgr.Credential()
	if !ok || cred != api.Credential(validToken) {
		t.Fatalf("credential should match the held token, got %q ok=%v", cred, ok)
	}
	stored, ok, err := db.LoadToken(sqldb)
	if err != nil || !ok || stored != validToken {
		t.Fatalf("token should be persisted: %q ok=%v err=%v", stored, ok, err)
	}
}

func TestLoginFailureLeavesStateUnchanged(t *testing.T) {
	mgr, sqldb := newTestManager(t)

	err := mgr.Login(context.Background(), "alice", "wrong")
	if err == nil {
		t.Fatal("expected login failure")
	}
	if got := api.Message(err, "Login failed"); got != "Invalid credentials" {
		t.Fatalf("expected service detail, got %q", got)
	}
	if mgr.State() != session.StateUnauthenticated {
		t.Fatalf("state should be unchanged, got %v", mgr.State())
	}
	if mgr.Profile() != nil {
		t.Fatal("profile should stay nil after failed login")
	}
	if _, ok, _ := db.LoadToken(sqldb); ok {
		t.Fatal("no token should be persisted after failed login")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	mgr, sqldb := newTestManager(t)

	// From unauthenticated it is a no-op.
	mgr.Logout()
	if mgr.State() != session.StateUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", mgr.State())
	}

	if err := mgr.Login(context.Background(), "alice", "p1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	mgr.Logout()
	if mgr.State() != session.StateUnauthenticated {
		t.Fatalf("expected unauthenticated after logout, got %v", mgr.State())
	}
	if _, ok := mgr.Credential(); ok {
		t.Fatal("no credential should survive logout")
	}
	if mgr.Profile() != nil {
		t.Fatal("profile should be cleared by logout")
	}
	if _, ok, _ := db.LoadToken(sqldb); ok {
		t.Fatal("persisted token should be cleared by logout")
	}
	mgr.Logout()
}

func TestRestoreSuccess(t *testing.T) {
	mgr, sqldb := newTestManager(t)
	if err := db.SaveToken(sqldb, validToken); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	if err := mgr.Restore(context.Background()); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if mgr.State() != session.StateAuthenticated {
		t.Fatalf("expected authenticated, got %v", mgr.State())
	}
	if profile := mgr.Profile(); profile == nil || profile.Username != "alice" {
		t.Fatalf("expected restored profile, got %+v", profile)
	}
}

func TestRestoreFailsClosed(t *testing.T) {
	mgr, sqldb := newTestManager(t)
	if err := db.SaveToken(sqldb, "expired-token"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	err := mgr.Restore(context.Background())
	if err == nil {
		t.Fatal("expected restore failure for invalid token")
	}
	if mgr.State() != session.StateUnauthenticated {
		t.Fatalf("expected fail-closed teardown, got %v", mgr.State())
	}
	if mgr.Profile() != nil {
		t.Fatal("no partial profile may survive a failed restore")
	}
	if _, ok, _ := db.LoadToken(sqldb); ok {
		t.Fatal("credential store should be cleared on failed restore")
	}
}

func TestLogoutDuringRestoreIsFinal(t *testing.T) {
	fetching := make(chan struct{})
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method+" "+r.URL.Path != "GET /api/auth/profile" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		close(fetching)
		<-release
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "u1", "username": "alice", "daily_calories": 2372})
	}))
	t.Cleanup(ts.Close)

	sqldb := newTestStore(t)
	if err := db.SaveToken(sqldb, validToken); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	client := &api.Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	mgr := session.NewManager(client, sqldb, nil)

	done := make(chan error, 1)
	go func() { done <- mgr.Restore(context.Background()) }()

	// Log out while the verification fetch is still in flight, then let it
	// resolve. The late result must not re-authenticate the session.
	<-fetching
	mgr.Logout()
	close(release)

	if err := <-done; err != nil {
		t.Fatalf("restore after logout should resolve quietly, got %v", err)
	}
	if mgr.State() != session.StateUnauthenticated {
		t.Fatalf("logout must win over the in-flight restore, got %v", mgr.State())
	}
	if mgr.Profile() != nil {
		t.Fatal("no profile may survive a logout during restore")
	}
	if _, ok := mgr.Credential(); ok {
		t.Fatal("no credential may survive a logout during restore")
	}
	if _, ok, _ := db.LoadToken(sqldb); ok {
		t.Fatal("credential store must stay cleared")
	}
}

func TestRegisterAuthenticates(t *testing.T) {
	mgr, _ := newTestManager(t)

	reg := api.Registration{
		Username: "alice", Password: "p1", Email: "a@x.com", FullName: "Alice A",
		Age: 30, HeightCm: 170, WeightKg: 65,
		GoalType: "maintenance", ActivityLevel: "moderately_active",
	}
	if err := mgr.Register(context.Background(), reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	if mgr.State() != session.StateAuthenticated {
		t.Fatalf("expected authenticated, got %v", mgr.State())
	}
	if profile := mgr.Profile(); profile == nil || profile.GoalType != "maintenance" {
		t.Fatalf("expected maintenance goal on profile, got %+v", profile)
	}
}

func TestRegisterDuplicateSurfacesDetail(t *testing.T) {
	mgr, _ := newTestManager(t)

	err := mgr.Register(context.Background(), api.Registration{Username: "taken"})
	if err == nil {
		t.Fatal("expected duplicate rejection")
	}
	if got := api.Message(err, "Registration failed"); got != "Username or email already exists" {
		t.Fatalf("expected verbatim service detail, got %q", got)
	}
	if mgr.State() != session.StateUnauthenticated {
		t.Fatalf("state should be unchanged, got %v", mgr.State())
	}
}

func TestEpochChangesPerSession(t *testing.T) {
	mgr, _ := newTestManager(t)

	if err := mgr.Login(context.Background(), "alice", "p1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	first := mgr.Epoch()
	if !mgr.Matches(first) {
		t.Fatal("current epoch should match itself")
	}

	mgr.Logout()
	if mgr.Matches(first) {
		t.Fatal("a logged-out session must not match its old epoch")
	}

	if err := mgr.Login(context.Background(), "alice", "p1"); err != nil {
		t.Fatalf("re-login: %v", err)
	}
	if mgr.Matches(first) {
		t.Fatal("a new session must not match a previous epoch")
	}
	if !mgr.Matches(mgr.Epoch()) {
		t.Fatal("new epoch should match itself")
	}
}
