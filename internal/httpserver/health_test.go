package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"timeblock/internal/health"
	"timeblock/pkg/log"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                    { return s.name }
func (s stubChecker) Check(ctx context.Context) error { return s.err }

func newTestServer(checkers ...health.Checker) HTTPServer {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	srv := HTTPServer{
		gin:    gin.New(),
		l:      l,
		health: health.New(l, time.Second, checkers...),
	}
	srv.registerSystemRoutes()
	return srv
}

type healthBody struct {
	ErrorCode int `json:"error_code"`
	Data      struct {
		Status  string                      `json:"status"`
		Service string                      `json:"service"`
		Info    map[string]health.Component `json:"info"`
		Error   map[string]health.Component `json:"error"`
	} `json:"data"`
}

func TestHealthRoutes(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		checkers   []health.Checker
		wantCode   int
		wantStatus string
	}{
		{
			name:       "health all up",
			path:       "/health",
			checkers:   []health.Checker{stubChecker{name: "postgres"}, stubChecker{name: "dynamodb"}},
			wantCode:   http.StatusOK,
			wantStatus: health.StatusOK,
		},
		{
			name:       "health store down",
			path:       "/health",
			checkers:   []health.Checker{stubChecker{name: "postgres", err: errors.New("refused")}},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: health.StatusError,
		},
		{
			name:       "ready store down",
			path:       "/ready",
			checkers:   []health.Checker{stubChecker{name: "dynamodb", err: errors.New("no table")}},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: health.StatusError,
		},
		{
			name:       "live ignores stores",
			path:       "/live",
			checkers:   []health.Checker{stubChecker{name: "postgres", err: errors.New("refused")}},
			wantCode:   http.StatusOK,
			wantStatus: "alive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(tt.checkers...)
			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d: %s", w.Code, tt.wantCode, w.Body.String())
			}
			var body healthBody
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body.Data.Status != tt.wantStatus || body.Data.Service != ServiceName {
				t.Errorf("data = %+v", body.Data)
			}
		})
	}
}

func TestHealthDetails(t *testing.T) {
	srv := newTestServer(stubChecker{name: "postgres"}, stubChecker{name: "dynamodb", err: errors.New("no table")})
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body healthBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.ErrorCode != 503 {
		t.Errorf("error_code = %d", body.ErrorCode)
	}
	if body.Data.Info["postgres"].Status != health.ComponentUp {
		t.Errorf("info = %v", body.Data.Info)
	}
	if c := body.Data.Error["dynamodb"]; c.Status != health.ComponentDown || c.Message != "no table" {
		t.Errorf("error = %v", body.Data.Error)
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode}); err == nil {
		t.Error("expected an error without port and stores")
	}
}
