package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chinda/studio-bookings/internal/domain"
)

func testAdmin() *domain.Admin {
	return &domain.Admin{ID: 1, Username: "admin"}
}

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(NewMemoryStore(), "test-secret", "admin_session", ttl, false)
}

// issueCookie runs Issue and returns the cookie it set.
func issueCookie(t *testing.T, m *Manager) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := m.Issue(context.Background(), rec, testAdmin()); err != nil {
		t.Fatalf("issue: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	return cookies[0]
}

func TestManager_IssueSetsSecureCookie(t *testing.T) {
	m := newTestManager(time.Hour)
	cookie := issueCookie(t, m)

	if cookie.Name != "admin_session" {
		t.Fatalf("unexpected cookie name %q", cookie.Name)
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}
	if cookie.Value == "" {
		t.Fatal("session cookie must carry the token")
	}
}

func TestManager_Authenticate(t *testing.T) {
	m := newTestManager(time.Hour)
	cookie := issueCookie(t, m)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(cookie)

	claims, err := m.Authenticate(context.Background(), req)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if claims.AdminID != 1 || claims.Username != "admin" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestManager_AuthenticateNoCookie(t *testing.T) {
	m := newTestManager(time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if _, err := m.Authenticate(context.Background(), req); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestManager_AuthenticateTamperedToken(t *testing.T) {
	m := newTestManager(time.Hour)
	cookie := issueCookie(t, m)
	cookie.Value = cookie.Value + "x"

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(cookie)

	if _, err := m.Authenticate(context.Background(), req); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession for tampered token, got %v", err)
	}
}

func TestManager_AuthenticateWrongSecret(t *testing.T) {
	m := newTestManager(time.Hour)
	cookie := issueCookie(t, m)

	other := NewManager(NewMemoryStore(), "other-secret", "admin_session", time.Hour, false)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(cookie)

	if _, err := other.Authenticate(context.Background(), req); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession for foreign signature, got %v", err)
	}
}

func TestManager_AuthenticateExpired(t *testing.T) {
	m := newTestManager(-time.Minute)
	cookie := issueCookie(t, m)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(cookie)

	if _, err := m.Authenticate(context.Background(), req); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession for expired token, got %v", err)
	}
}

func TestManager_ClearRevokes(t *testing.T) {
	m := newTestManager(time.Hour)
	cookie := issueCookie(t, m)

	req := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	if err := m.Clear(context.Background(), rec, req); err != nil {
		t.Fatalf("clear: %v", err)
	}

	cleared := rec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Fatalf("expected an expiring cookie, got %+v", cleared)
	}

	// The original token is revoked even if the browser kept it.
	again := httptest.NewRequest(http.MethodGet, "/admin", nil)
	again.AddCookie(cookie)
	if _, err := m.Authenticate(context.Background(), again); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
}

func TestManager_ClearWithoutSession(t *testing.T) {
	m := newTestManager(time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	rec := httptest.NewRecorder()
	if err := m.Clear(context.Background(), rec, req); err != nil {
		t.Fatalf("clear without a session must be a no-op, got %v", err)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Save(ctx, "sid", 1, -time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}
	alive, err := store.Exists(ctx, "sid")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if alive {
		t.Fatal("expired record must not be reported alive")
	}
}
