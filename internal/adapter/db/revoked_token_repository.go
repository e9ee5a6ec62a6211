package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/codeskillotech/taskmanagement-backend/internal/core/ports"
)

// RevokedTokenRepository persists the revocation set in MySQL so that it
// survives restarts and is shared across instances. The table only grows:
// entries for tokens that have since expired are never cleaned up.
type RevokedTokenRepository struct {
	db *sqlx.DB
}

var _ ports.RevocationStore = (*RevokedTokenRepository)(nil)

func NewRevokedTokenRepository(db *sqlx.DB) *RevokedTokenRepository {
	return &RevokedTokenRepository{db: db}
}

func (r *RevokedTokenRepository) Revoke(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, "INSERT INTO revoked_tokens (token) VALUES (?);", token)
	if err != nil {
		// Revoking twice is a no-op.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return nil
		}
		return err
	}
	return nil
}

func (r *RevokedTokenRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	var one int
	err := r.db.GetContext(ctx, &one, "SELECT 1 FROM revoked_tokens WHERE token = ?;", token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
