package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	repo "timeblock/internal/auth/repository"
	"timeblock/internal/model"
)

const userColumns = `id::text, google_id, email, name, picture_url, created_at, updated_at`

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.GoogleID, &u.Email, &u.Name, &u.PictureURL, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// UpsertUser inserts the user on first sign-in and refreshes the profile
// fields afterwards.
func (r *implRepository) UpsertUser(ctx context.Context, opt repo.UpsertUserOptions) (model.User, error) {
	query := `
		INSERT INTO users (id, google_id, email, name, picture_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (google_id) DO UPDATE SET
			email       = EXCLUDED.email,
			name        = EXCLUDED.name,
			picture_url = EXCLUDED.picture_url,
			updated_at  = NOW()
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRow(ctx, query,
		uuid.NewString(), opt.GoogleID, opt.Email, opt.Name, opt.PictureURL,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertUser"), err)
		return model.User{}, repo.ErrFailedToUpsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, mods)

	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}
