package user

import (
	c "budgetsync/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	Username     Username
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
	// DeleteOthers removes every session of the user except keep.
	DeleteOthers(ctx context.Context, userID ID, keep SessionToken) (deleted int64, err error)
}

type CreatePasswordResetTokenInput struct {
	UserID    ID
	Token     ResetToken
	CreatedAt time.Time
	ExpiresAt time.Time
}

type PasswordResetTokenRepository interface {
	Create(ctx context.Context, input CreatePasswordResetTokenInput) (PasswordResetToken, error)
	GetByToken(ctx context.Context, token ResetToken) (PasswordResetToken, error)
	// GetByTokenWithLock holds a row lock on the token until the transaction ends.
	GetByTokenWithLock(ctx context.Context, token ResetToken) (PasswordResetToken, error)
	// MarkUsed returns ErrPasswordResetTokenAlreadyUsed if the token has been used already.
	MarkUsed(ctx context.Context, id PasswordResetTokenID) error
}
