package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func jsonRequest(t *testing.T, method, path string, payload map[string]any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshaling payload: %v", err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateAdmin_BootstrapThenGated(t *testing.T) {
	app := newTestApp(t)

	// The very first admin can be created without a session.
	rec := app.do(jsonRequest(t, http.MethodPost, "/api/admin/create", map[string]any{
		"username": "gourav",
		"password": "super-secret",
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Once one exists, an unauthenticated attempt is rejected.
	rec = app.do(jsonRequest(t, http.MethodPost, "/api/admin/create", map[string]any{
		"username": "second",
		"password": "super-secret",
	}))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	if len(app.adminStore.admins) != 1 {
		t.Fatalf("expected 1 admin, got %d", len(app.adminStore.admins))
	}

	app.signIn()
	rec = app.do(jsonRequest(t, http.MethodPost, "/api/admin/create", map[string]any{
		"username": "second",
		"password": "super-secret",
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201 with session, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminCount(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/api/admin/create", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["setupNeeded"] != true {
		t.Fatalf("expected setupNeeded on a fresh deployment, got %v", body)
	}

	createAdmin(t, app, "gourav", "super-secret")

	rec = app.do(httptest.NewRequest(http.MethodGet, "/api/admin/create", nil))
	body = decodeBody(t, rec)
	if body["setupNeeded"] != false || body["count"] != float64(1) {
		t.Fatalf("expected count 1 with no setup needed, got %v", body)
	}
}

func createAdmin(t *testing.T, app *testApp, username, password string) {
	t.Helper()

	rec := app.do(jsonRequest(t, http.MethodPost, "/api/admin/create", map[string]any{
		"username": username,
		"password": password,
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("creating fixture admin: status %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	createAdmin(t, app, "gourav", "super-secret")

	rec := app.do(jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "gourav",
		"password": "super-secret",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Fatalf("expected success envelope, got %v", body)
	}
	if app.sessions.principal == nil || app.sessions.principal.Name != "gourav" {
		t.Fatalf("expected a signed-in session for gourav, got %+v", app.sessions.principal)
	}
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)
	createAdmin(t, app, "gourav", "super-secret")

	attempts := []map[string]any{
		{"username": "gourav", "password": "wrong-password"},
		{"username": "nobody", "password": "super-secret"},
	}
	for _, attempt := range attempts {
		rec := app.do(jsonRequest(t, http.MethodPost, "/api/auth/login", attempt))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401 for %v, got %d", attempt["username"], rec.Code)
		}
		if body := decodeBody(t, rec); body["error"] != "Invalid username or password" {
			t.Fatalf("unexpected error: %v", body["error"])
		}
	}
	if app.sessions.principal != nil {
		t.Fatalf("expected no session after failed logins")
	}
}

func TestSession(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	if body := decodeBody(t, rec); body["authenticated"] != false {
		t.Fatalf("expected unauthenticated session check, got %v", body)
	}

	app.signIn()
	rec = app.do(httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	body := decodeBody(t, rec)
	if body["authenticated"] != true {
		t.Fatalf("expected authenticated session check, got %v", body)
	}
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	app.signIn()

	rec := app.do(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if app.sessions.principal != nil {
		t.Fatalf("expected session to be destroyed")
	}
}
