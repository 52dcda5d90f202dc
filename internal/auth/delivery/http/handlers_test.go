package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"timeblock/config"
	"timeblock/internal/auth"
	authHTTP "timeblock/internal/auth/delivery/http"
	"timeblock/internal/middleware"
	"timeblock/internal/model"
	"timeblock/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockUseCase checks the state like the real use case and returns token.
type mockUseCase struct {
	token    string
	gotInput auth.CallbackInput
}

func (m *mockUseCase) Login(ctx context.Context) (auth.LoginOutput, error) {
	return auth.LoginOutput{URL: "https://accounts.example.com/auth?state=st-1", State: "st-1"}, nil
}

func (m *mockUseCase) Callback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	m.gotInput = input
	if input.State == "" || input.State != input.ExpectedState {
		return auth.CallbackOutput{}, auth.ErrInvalidState
	}
	return auth.CallbackOutput{User: model.User{ID: "user-1", Email: "ada@example.com"}, Token: m.token}, nil
}

func (m *mockUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	if sc.UserID != "user-1" {
		return auth.MeOutput{}, auth.ErrUserNotFound
	}
	return auth.MeOutput{User: model.User{ID: "user-1", Email: "ada@example.com"}}, nil
}

var cookieCfg = config.CookieConfig{Name: "sid", MaxAge: 3600}

func newRouter(t *testing.T, successURL string) (*gin.Engine, *mockUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager, err := scope.New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("scope.New: %v", err)
	}
	token, err := manager.CreateToken(scope.Payload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	uc := &mockUseCase{token: token}
	mw := middleware.New(&mockLogger{}, manager, cookieCfg, config.CORSConfig{}, config.RateLimitConfig{})
	r := gin.New()
	authHTTP.RegisterRoutes(r.Group("/api/v1"), authHTTP.New(&mockLogger{}, uc, cookieCfg, successURL), mw)
	return r, uc
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	r, _ := newRouter(t, "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/login", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("code = %d", w.Code)
	}
	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "https://accounts.example.com/") {
		t.Errorf("Location = %q", loc)
	}
	c := findCookie(w, "oauth_state")
	if c == nil || c.Value != "st-1" || !c.HttpOnly || c.SameSite != http.SameSiteLaxMode {
		t.Errorf("state cookie = %+v", c)
	}
}

func TestCallback(t *testing.T) {
	t.Run("redirects with session", func(t *testing.T) {
		r, uc := newRouter(t, "https://app.example.com/")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?code=abc&state=st-1", nil)
		req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "st-1"})
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound || w.Header().Get("Location") != "https://app.example.com/" {
			t.Fatalf("code = %d location = %q", w.Code, w.Header().Get("Location"))
		}
		if uc.gotInput.Code != "abc" || uc.gotInput.ExpectedState != "st-1" {
			t.Errorf("input = %+v", uc.gotInput)
		}
		session := findCookie(w, "sid")
		if session == nil || session.Value != uc.token || session.MaxAge != 3600 || !session.HttpOnly {
			t.Errorf("session cookie = %+v", session)
		}
		if state := findCookie(w, "oauth_state"); state == nil || state.MaxAge >= 0 {
			t.Errorf("state cookie not cleared: %+v", state)
		}
	})

	t.Run("json without success url", func(t *testing.T) {
		r, _ := newRouter(t, "")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?code=abc&state=st-1", nil)
		req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "st-1"})
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("code = %d", w.Code)
		}
		var body struct {
			Data struct {
				User struct {
					Email string `json:"email"`
				} `json:"user"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Data.User.Email != "ada@example.com" {
			t.Errorf("body = %s (%v)", w.Body.String(), err)
		}
	})

	t.Run("state mismatch", func(t *testing.T) {
		r, _ := newRouter(t, "https://app.example.com/")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?code=abc&state=forged", nil)
		req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "st-1"})
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d", w.Code)
		}
		if findCookie(w, "sid") != nil {
			t.Error("session cookie set on failure")
		}
	})

	t.Run("access denied", func(t *testing.T) {
		r, _ := newRouter(t, "")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?error=access_denied", nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("code = %d", w.Code)
		}
	})
}

func TestLogout(t *testing.T) {
	r, _ := newRouter(t, "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	if c := findCookie(w, "sid"); c == nil || c.MaxAge >= 0 || c.Value != "" {
		t.Errorf("session cookie = %+v", c)
	}
}

func TestMe(t *testing.T) {
	r, uc := newRouter(t, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: uc.token})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ada@example.com") {
		t.Errorf("code = %d body = %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: code = %d", w.Code)
	}
}
