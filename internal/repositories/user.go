package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-diet-tracker/internal/models"
)

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsernameOrEmail returns the first user matching any of the given
// non-nil fields, or nil when nobody matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	var (
		conds []string
		args  []any
	)
	if username != nil {
		conds = append(conds, "username = ?")
		args = append(args, *username)
	}
	if email != nil {
		conds = append(conds, "email = ?")
		args = append(args, *email)
	}
	if len(conds) == 0 {
		return nil, errors.New("username or email is required")
	}

	query := `
		SELECT user_id, username, email, password_hash, created_at
		FROM users
		WHERE ` + strings.Join(conds, " OR ") + `
		LIMIT 1
	`

	ex := executor(ctx, r.db, r.txGetter)

	var user models.UserDB
	err := sqlx.GetContext(ctx, ex, &user, ex.Rebind(query), args...)

	logQuery(ctx, query, args, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user and returns its id.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email string) (int64, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES (?, ?, ?)
		RETURNING user_id
	`

	ex := executor(ctx, r.db, r.txGetter)

	var userID int64
	err := sqlx.GetContext(ctx, ex, &userID, ex.Rebind(query), username, email, passwordHash)

	// The hash stays out of the log.
	logQuery(ctx, query, []any{username, email}, userID, err)

	return userID, err
}
