package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
	"github.com/codeskillotech/taskmanagement-backend/internal/core/ports"
)

const insertUserQuery = `
INSERT INTO users (id, name, email, password_hash, role)
VALUES (:id, :name, :email, :password_hash, :role);
`

const mysqlDuplicateEntry = 1062

const selectUserColumns = `
SELECT u.id, u.name, u.email, u.password_hash, u.role, u.created_at
FROM users u
`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	_, err := r.db.NamedExecContext(ctx, insertUserQuery, userRow{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
	})
	if err != nil {
		// Two concurrent registrations can both pass the uniqueness
		// pre-check; the unique index is the final arbiter.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, selectUserColumns+"WHERE u.email = ?;", email)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	return r.findOne(ctx, selectUserColumns+"WHERE u.id = ?;", id)
}

func (r *UserRepository) FindByName(ctx context.Context, name string) (domain.User, error) {
	// Names are not unique; newest registration wins, matching the
	// lookup-by-name assignment flow.
	return r.findOne(ctx, selectUserColumns+"WHERE u.name = ? ORDER BY u.created_at DESC LIMIT 1;", name)
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	var rows []userRow
	query := selectUserColumns + "WHERE u.role = ? ORDER BY u.name;"
	if err := r.db.SelectContext(ctx, &rows, query, string(role)); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}
	return users, nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		CreatedAt:    row.CreatedAt,
	}
}
