package user

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/db"
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
)

type PgxSessionRepository struct {
	db db.DBTX
}

func NewPgxSessionRepository(db db.DBTX) *PgxSessionRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxSessionRepository{db: db}
}

func (r *PgxSessionRepository) Create(ctx context.Context, input user.CreateSessionInput) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO session (token, user_id, created_at) VALUES ($1, $2, $3)`,
		string(input.Token),
		int64(input.UserID),
		input.CreatedAt,
	)
	return err
}

func (r *PgxSessionRepository) GetUserByToken(ctx context.Context, token user.SessionToken) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT u.id, u.username, u.email, u.password_hash, u.created_at
		FROM session s JOIN "user" u ON u.id = s.user_id
		WHERE s.token = $1`,
		string(token),
	)
	return decodeUserRow(row)
}

func (r *PgxSessionRepository) Delete(ctx context.Context, token user.SessionToken) (userID user.ID, err error) {
	var rawUserID int64
	err = r.db.QueryRow(ctx, `DELETE FROM session WHERE token = $1 RETURNING user_id`, string(token)).Scan(&rawUserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return userID, user.ErrSessionDoesNotExist
	}
	if err != nil {
		return userID, err
	}
	return user.ID(rawUserID), nil
}

func (r *PgxSessionRepository) DeleteOthers(ctx context.Context, userID user.ID, keep user.SessionToken) (int64, error) {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM session WHERE user_id = $1 AND token <> $2`,
		int64(userID),
		string(keep),
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
