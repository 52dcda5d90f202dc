package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"timeblock/config"
	"timeblock/internal/middleware"
	"timeblock/internal/model"
	"timeblock/internal/schedule"
	scheduleHTTP "timeblock/internal/schedule/delivery/http"
	"timeblock/pkg/scope"
	"timeblock/pkg/timegrid"
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

type mockUseCase struct {
	err       error
	gotScope  model.Scope
	gotCreate schedule.CreateInput
	gotMove   schedule.MoveInput
	week      schedule.WeekOutput
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input schedule.CreateInput) (schedule.CreateOutput, error) {
	m.gotScope, m.gotCreate = sc, input
	return schedule.CreateOutput{Schedule: schedule.Schedule{ID: "s-1", Title: input.Title, StartAt: input.StartAt, DurationMinutes: input.DurationMinutes}}, m.err
}
func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input schedule.ListInput) (schedule.ListOutput, error) {
	return schedule.ListOutput{}, m.err
}
func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (schedule.DetailOutput, error) {
	return schedule.DetailOutput{Schedule: schedule.Schedule{ID: id}}, m.err
}
func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, input schedule.UpdateInput) (schedule.UpdateOutput, error) {
	return schedule.UpdateOutput{Schedule: schedule.Schedule{ID: input.ID}}, m.err
}
func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return m.err
}
func (m *mockUseCase) Move(ctx context.Context, sc model.Scope, input schedule.MoveInput) (schedule.UpdateOutput, error) {
	m.gotMove = input
	return schedule.UpdateOutput{Schedule: schedule.Schedule{ID: input.ID}}, m.err
}
func (m *mockUseCase) Week(ctx context.Context, sc model.Scope, input schedule.WeekInput) (schedule.WeekOutput, error) {
	return m.week, m.err
}
func (m *mockUseCase) Export(ctx context.Context, sc model.Scope, input schedule.ExportInput) (schedule.ExportOutput, error) {
	return schedule.ExportOutput{Filename: "timeblock-20240501.ics", Body: []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")}, m.err
}
func (m *mockUseCase) ListUnsynced(ctx context.Context, limit int) ([]schedule.Schedule, error) {
	return nil, m.err
}
func (m *mockUseCase) MarkSynced(ctx context.Context, id, eventID string) error {
	return m.err
}

type testServer struct {
	router *gin.Engine
	uc     *mockUseCase
	token  string
}

func newTestServer(t *testing.T) *testServer {
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

	uc := &mockUseCase{}
	mw := middleware.New(&mockLogger{}, manager, config.CookieConfig{Name: "sid"}, config.CORSConfig{}, config.RateLimitConfig{})
	r := gin.New()
	scheduleHTTP.RegisterRoutes(r.Group("/api/v1"), scheduleHTTP.New(&mockLogger{}, uc), mw)

	return &testServer{router: r, uc: uc, token: token}
}

func (s *testServer) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return out
}

func TestCreateHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(http.MethodPost, "/api/v1/schedules",
			`{"title":"Focus","start_at":"2024-05-08T09:00:00Z","duration_minutes":60,"color":"#ff8800"}`, true)

		if w.Code != http.StatusCreated {
			t.Fatalf("code = %d body=%s", w.Code, w.Body.String())
		}
		if s.uc.gotScope.UserID != "user-1" || s.uc.gotCreate.Title != "Focus" || s.uc.gotCreate.DurationMinutes != 60 {
			t.Errorf("use case got scope=%+v input=%+v", s.uc.gotScope, s.uc.gotCreate)
		}
		data := decode(t, w)["data"].(map[string]any)["schedule"].(map[string]any)
		if data["id"] != "s-1" || data["end_at"] != "2024-05-08T10:00:00Z" {
			t.Errorf("unexpected payload %v", data)
		}
	})

	t.Run("validation", func(t *testing.T) {
		s := newTestServer(t)
		w := s.do(http.MethodPost, "/api/v1/schedules", `{"start_at":"2024-05-08T09:00:00Z","duration_minutes":60}`, true)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("code = %d", w.Code)
		}
		errs, _ := decode(t, w)["errors"].(map[string]any)
		if errs["title"] != "required" {
			t.Errorf("errors = %v", errs)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		s := newTestServer(t)
		if w := s.do(http.MethodPost, "/api/v1/schedules", `{"title":`, true); w.Code != http.StatusBadRequest {
			t.Errorf("code = %d", w.Code)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		s := newTestServer(t)
		if w := s.do(http.MethodPost, "/api/v1/schedules", `{}`, false); w.Code != http.StatusUnauthorized {
			t.Errorf("code = %d", w.Code)
		}
	})

	t.Run("domain error", func(t *testing.T) {
		s := newTestServer(t)
		s.uc.err = schedule.ErrInvalidRecurrence
		w := s.do(http.MethodPost, "/api/v1/schedules",
			`{"title":"Focus","start_at":"2024-05-08T09:00:00Z","duration_minutes":60,"recurrence":"FREQ=NOPE"}`, true)
		if w.Code != http.StatusBadRequest {
			t.Errorf("code = %d", w.Code)
		}
	})
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", schedule.ErrScheduleNotFound, http.StatusNotFound},
		{"bad range", schedule.ErrInvalidRange, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.uc.err = tt.err
			if w := s.do(http.MethodGet, "/api/v1/schedules/abc", "", true); w.Code != tt.want {
				t.Errorf("code = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestListHandlerRequiresWindow(t *testing.T) {
	s := newTestServer(t)
	if w := s.do(http.MethodGet, "/api/v1/schedules?from=2024-05-01T00:00:00Z", "", true); w.Code != http.StatusBadRequest {
		t.Errorf("missing to: code = %d", w.Code)
	}
	if w := s.do(http.MethodGet, "/api/v1/schedules?from=yesterday&to=2024-05-01T00:00:00Z", "", true); w.Code != http.StatusBadRequest {
		t.Errorf("bad from: code = %d", w.Code)
	}
	if w := s.do(http.MethodGet, "/api/v1/schedules?from=2024-05-01T00:00:00Z&to=2024-05-08T00:00:00Z", "", true); w.Code != http.StatusOK {
		t.Errorf("valid: code = %d", w.Code)
	}
}

func TestMoveHandler(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodPatch, "/api/v1/schedules/abc/move", `{"date":"2024-05-07","percent":37.5,"timezone":"UTC"}`, true)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	if s.uc.gotMove.ID != "abc" || s.uc.gotMove.Percent == nil || *s.uc.gotMove.Percent != 37.5 {
		t.Errorf("move input = %+v", s.uc.gotMove)
	}

	if w := s.do(http.MethodPatch, "/api/v1/schedules/abc/move", `{"date":"2024-05-07","percent":120}`, true); w.Code != http.StatusBadRequest {
		t.Errorf("out of range percent: code = %d", w.Code)
	}
}

func TestWeekHandler(t *testing.T) {
	s := newTestServer(t)
	monday := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	s.uc.week = schedule.WeekOutput{
		Start:      monday,
		End:        monday.AddDate(0, 0, 7),
		Timezone:   "UTC",
		HourGuides: timegrid.HourGuides(),
		Days: []schedule.DayColumn{{
			Date: monday,
			Cells: []schedule.Cell{{
				Occurrence:    schedule.Occurrence{Schedule: schedule.Schedule{ID: "s-1", Title: "Focus"}, StartAt: monday.Add(9 * time.Hour), EndAt: monday.Add(10 * time.Hour)},
				TopPercent:    37.5,
				HeightPercent: 100.0 / 24,
			}},
		}},
	}

	w := s.do(http.MethodGet, "/api/v1/schedules/week?date=2024-05-08&tz=UTC", "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	data := decode(t, w)["data"].(map[string]any)
	if data["start"] != "2024-05-06" || data["end"] != "2024-05-12" {
		t.Errorf("range = %v..%v", data["start"], data["end"])
	}
	if guides := data["hour_guides"].([]any); len(guides) != 24 {
		t.Errorf("hour guides = %d", len(guides))
	}
	cell := data["days"].([]any)[0].(map[string]any)["cells"].([]any)[0].(map[string]any)
	if cell["schedule_id"] != "s-1" || cell["top_percent"] != 37.5 {
		t.Errorf("cell = %v", cell)
	}
}

func TestExportHandler(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/api/v1/schedules/export.ics", "", true)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="timeblock-20240501.ics"` {
		t.Errorf("content disposition = %q", cd)
	}
}

func TestGridHandler(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/api/v1/grid?percent=37.6", "", false)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	data := decode(t, w)["data"].(map[string]any)
	snap := data["snap"].(map[string]any)
	if snap["time"] != "09:00" || snap["minutes"] != float64(540) {
		t.Errorf("snap = %v", snap)
	}
	if data["slot_minutes"] != float64(15) || len(data["hour_guides"].([]any)) != 24 {
		t.Errorf("grid = %v", data)
	}

	if w := s.do(http.MethodGet, "/api/v1/grid?percent=abc", "", false); w.Code != http.StatusBadRequest {
		t.Errorf("bad percent: code = %d", w.Code)
	}
}
