package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gamerfleet/merch-backend/internal/utils"
)

type UserRepository interface {
	EnsureUser(ctx context.Context, subjectID, email string) (int64, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

// EnsureUser inserts the user row if absent and returns the local surrogate
// id. The unique constraint on subject_id makes the insert idempotent; a
// duplicate attempt is silently ignored. A lookup miss right after the
// insert wraps sql.ErrNoRows so the caller can flag the inconsistency.
func (r *userRepository) EnsureUser(ctx context.Context, subjectID, email string) (int64, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	insertQuery := `
		INSERT INTO users (subject_id, email)
		VALUES ($1, $2)
		ON CONFLICT (subject_id) DO NOTHING
	`

	if _, err := r.DB.ExecContext(dbCtx, insertQuery, subjectID, email); err != nil {
		return 0, fmt.Errorf("failed to ensure user row: %w", err)
	}

	var id int64

	selectQuery := `SELECT id FROM users WHERE subject_id = $1`

	err := r.DB.QueryRowContext(dbCtx, selectQuery, subjectID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("user row missing after insert: %w", err)
		}
		return 0, fmt.Errorf("failed to look up user: %w", err)
	}

	return id, nil
}
