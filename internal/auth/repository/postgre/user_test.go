package postgre

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	repo "timeblock/internal/auth/repository"
	"timeblock/internal/model"
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

// mockRow fills Scan destinations from user, or returns err.
type mockRow struct {
	user model.User
	err  error
}

func (r mockRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.user.ID
	*dest[1].(*string) = r.user.GoogleID
	*dest[2].(*string) = r.user.Email
	*dest[3].(*string) = r.user.Name
	*dest[4].(*string) = r.user.PictureURL
	*dest[5].(*time.Time) = r.user.CreatedAt
	*dest[6].(*time.Time) = r.user.UpdatedAt
	return nil
}

type mockDB struct {
	row   mockRow
	query string
	args  []any
}

func (m *mockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.query, m.args = sql, args
	return m.row
}

func TestUpsertUser(t *testing.T) {
	db := &mockDB{row: mockRow{user: model.User{ID: "u-1", GoogleID: "g-1", Email: "a@example.com"}}}
	r := New(db, &mockLogger{})

	u, err := r.UpsertUser(context.Background(), repo.UpsertUserOptions{GoogleID: "g-1", Email: "a@example.com", Name: "A"})
	if err != nil {
		t.Fatalf("UpsertUser: %v", err)
	}
	if u.ID != "u-1" || u.Email != "a@example.com" {
		t.Errorf("user = %+v", u)
	}
	if !strings.Contains(db.query, "ON CONFLICT (google_id) DO UPDATE") {
		t.Errorf("query is not an upsert: %s", db.query)
	}
	if len(db.args) != 5 || db.args[1] != "g-1" || db.args[3] != "A" {
		t.Errorf("args = %v", db.args)
	}

	db.row = mockRow{err: errors.New("connection reset")}
	if _, err := r.UpsertUser(context.Background(), repo.UpsertUserOptions{GoogleID: "g-1"}); !errors.Is(err, repo.ErrFailedToUpsert) {
		t.Errorf("err = %v, want ErrFailedToUpsert", err)
	}
}

func TestGetOneUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := &mockDB{row: mockRow{user: model.User{ID: "u-1"}}}
		u, err := New(db, &mockLogger{}).GetOneUser(context.Background(), repo.GetOneUserOptions{ID: "u-1"})
		if err != nil || u.ID != "u-1" {
			t.Fatalf("got %+v, %v", u, err)
		}
		if !strings.Contains(db.query, "WHERE id = $1 LIMIT 1") {
			t.Errorf("query = %s", db.query)
		}
	})

	t.Run("not found", func(t *testing.T) {
		db := &mockDB{row: mockRow{err: pgx.ErrNoRows}}
		u, err := New(db, &mockLogger{}).GetOneUser(context.Background(), repo.GetOneUserOptions{ID: "u-1"})
		if err != nil || u.ID != "" {
			t.Errorf("got %+v, %v; want zero user", u, err)
		}
	})

	t.Run("failure", func(t *testing.T) {
		db := &mockDB{row: mockRow{err: errors.New("boom")}}
		if _, err := New(db, &mockLogger{}).GetOneUser(context.Background(), repo.GetOneUserOptions{ID: "u-1"}); !errors.Is(err, repo.ErrFailedToGet) {
			t.Errorf("err = %v, want ErrFailedToGet", err)
		}
	})
}

func TestBuildGetOneQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name     string
		opt      repo.GetOneUserOptions
		wantMods string
		wantArgs int
	}{
		{"by id", repo.GetOneUserOptions{ID: "u-1"}, "id = $1", 1},
		{"by google id", repo.GetOneUserOptions{GoogleID: "g-1"}, "google_id = $1", 1},
		{"both", repo.GetOneUserOptions{ID: "u-1", GoogleID: "g-1"}, "id = $1 AND google_id = $2", 2},
		{"none", repo.GetOneUserOptions{}, "FALSE", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, args := r.buildGetOneQuery(tt.opt)
			if mods != tt.wantMods || len(args) != tt.wantArgs {
				t.Errorf("got %q %v", mods, args)
			}
		})
	}
}
