package user

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/db"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
)

const passwordResetTokenColumns = `id, user_id, token, created_at, expires_at, used`

type PgxPasswordResetTokenRepository struct {
	db db.DBTX
}

func NewPgxPasswordResetTokenRepository(db db.DBTX) *PgxPasswordResetTokenRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxPasswordResetTokenRepository{db: db}
}

func (r *PgxPasswordResetTokenRepository) Create(
	ctx context.Context,
	input user.CreatePasswordResetTokenInput,
) (t user.PasswordResetToken, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO password_reset_token (user_id, token, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING `+passwordResetTokenColumns,
		int64(input.UserID),
		string(input.Token),
		input.CreatedAt,
		input.ExpiresAt,
	)
	return scanPasswordResetToken(row)
}

func (r *PgxPasswordResetTokenRepository) GetByToken(
	ctx context.Context,
	token user.ResetToken,
) (user.PasswordResetToken, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+passwordResetTokenColumns+` FROM password_reset_token WHERE token = $1`,
		string(token),
	)
	return decodePasswordResetTokenRow(row)
}

func (r *PgxPasswordResetTokenRepository) GetByTokenWithLock(
	ctx context.Context,
	token user.ResetToken,
) (user.PasswordResetToken, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+passwordResetTokenColumns+` FROM password_reset_token WHERE token = $1 FOR UPDATE`,
		string(token),
	)
	return decodePasswordResetTokenRow(row)
}

func (r *PgxPasswordResetTokenRepository) MarkUsed(ctx context.Context, id user.PasswordResetTokenID) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE password_reset_token SET used = TRUE WHERE id = $1 AND used = FALSE`,
		int64(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM password_reset_token WHERE id = $1)`, int64(id)).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return user.ErrPasswordResetTokenNotFound
	}
	return user.ErrPasswordResetTokenAlreadyUsed
}

func decodePasswordResetTokenRow(row pgx.Row) (t user.PasswordResetToken, err error) {
	t, err = scanPasswordResetToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, user.ErrPasswordResetTokenNotFound
	}
	return t, err
}

func scanPasswordResetToken(row pgx.Row) (t user.PasswordResetToken, err error) {
	var (
		id        int64
		userID    int64
		token     string
		createdAt time.Time
		expiresAt time.Time
		used      bool
	)
	if err := row.Scan(&id, &userID, &token, &createdAt, &expiresAt, &used); err != nil {
		return t, err
	}
	return user.PasswordResetToken{
		ID:        user.PasswordResetTokenID(id),
		UserID:    user.ID(userID),
		Token:     user.ResetToken(token),
		CreatedAt: createdAt.UTC(),
		ExpiresAt: expiresAt.UTC(),
		Used:      used,
	}, nil
}
