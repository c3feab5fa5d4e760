package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"checklist-ledger/internal/auth"
	authUC "checklist-ledger/internal/auth/usecase"
	"checklist-ledger/internal/middleware"
	"checklist-ledger/pkg/log"
	"checklist-ledger/pkg/response"
)

type mockProvider struct{}

func (mockProvider) AuthCodeURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (mockProvider) Exchange(ctx context.Context, code string) (auth.Identity, error) {
	return auth.Identity{ID: "g-1", Email: "alice@example.com", Name: "Alice"}, nil
}

func newTestRouter(provider auth.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	uc := authUC.New(l, provider, authUC.Config{SessionTTL: time.Hour})
	mw := middleware.New(l, uc, middleware.Config{})
	h := New(l, uc, CookieConfig{Name: mw.CookieName(), MaxAge: time.Hour, Redirect: "/app"})

	r := gin.New()
	RegisterRoutes(r.Group("/auth"), h, mw)
	return r
}

func serve(r *gin.Engine, method, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// loginState returns the state sent to the provider and the state cookie set
// on the browser by a /auth/login response.
func loginState(t *testing.T, w *httptest.ResponseRecorder) (string, *http.Cookie) {
	t.Helper()
	loc := w.Header().Get("Location")
	state := loc[strings.Index(loc, "state=")+len("state="):]

	c := findCookie(w, middleware.DefaultCookieName+stateCookieSuffix)
	if c == nil || c.Value != state || !c.HttpOnly || c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("state cookie not set: %+v", c)
	}
	return state, c
}

func TestNotConfigured(t *testing.T) {
	r := newTestRouter(nil)

	w := serve(r, http.MethodGet, "/auth/status")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"configured":false`) {
		t.Errorf("status: %d %s", w.Code, w.Body.String())
	}

	w = serve(r, http.MethodGet, "/auth/login")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("login: status %d, want 503", w.Code)
	}
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Message != "sign-in is not configured" {
		t.Errorf("message = %q", resp.Message)
	}

	w = serve(r, http.MethodGet, "/auth/callback?state=x&code=abc")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("callback: status %d, want 503", w.Code)
	}
}

func TestSignInRoundTrip(t *testing.T) {
	r := newTestRouter(mockProvider{})

	w := serve(r, http.MethodGet, "/auth/login")
	if w.Code != http.StatusFound {
		t.Fatalf("login: status %d", w.Code)
	}
	state, stateCookie := loginState(t, w)

	w = serve(r, http.MethodGet, "/auth/callback?state="+state+"&code=abc", stateCookie)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/app" {
		t.Fatalf("callback: status %d location %q", w.Code, w.Header().Get("Location"))
	}
	if c := findCookie(w, middleware.DefaultCookieName+stateCookieSuffix); c == nil || c.MaxAge >= 0 {
		t.Errorf("state cookie should be cleared: %+v", c)
	}
	session := findCookie(w, middleware.DefaultCookieName)
	if session == nil || session.Value == "" || !session.HttpOnly {
		t.Fatalf("session cookie not set: %+v", session)
	}

	w = serve(r, http.MethodGet, "/auth/callback?state="+state+"&code=abc", stateCookie)
	if w.Code != http.StatusBadRequest {
		t.Errorf("replayed callback: status %d, want 400", w.Code)
	}

	w = serve(r, http.MethodGet, "/auth/me", session)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"user_id":"g-1"`) {
		t.Errorf("me: %d %s", w.Code, w.Body.String())
	}

	w = serve(r, http.MethodPost, "/auth/logout", session)
	if w.Code != http.StatusOK {
		t.Errorf("logout: status %d", w.Code)
	}

	w = serve(r, http.MethodGet, "/auth/me", session)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("me after logout: status %d, want 401", w.Code)
	}
}

func TestCallbackRequiresStateCookie(t *testing.T) {
	r := newTestRouter(mockProvider{})

	w := serve(r, http.MethodGet, "/auth/login")
	state, stateCookie := loginState(t, w)
	target := "/auth/callback?state=" + state + "&code=attacker"

	t.Run("no cookie", func(t *testing.T) {
		w := serve(r, http.MethodGet, target)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status %d, want 400", w.Code)
		}
		if findCookie(w, middleware.DefaultCookieName) != nil {
			t.Error("session cookie must not be set")
		}
	})

	t.Run("cookie from another login", func(t *testing.T) {
		other, _ := loginState(t, serve(r, http.MethodGet, "/auth/login"))
		w := serve(r, http.MethodGet, target, &http.Cookie{Name: stateCookie.Name, Value: other})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status %d, want 400", w.Code)
		}
		if findCookie(w, middleware.DefaultCookieName) != nil {
			t.Error("session cookie must not be set")
		}
	})

	t.Run("matching cookie", func(t *testing.T) {
		w := serve(r, http.MethodGet, target, stateCookie)
		if w.Code != http.StatusFound {
			t.Fatalf("status %d, want 302", w.Code)
		}
		if findCookie(w, middleware.DefaultCookieName) == nil {
			t.Error("session cookie not set")
		}
	})
}
