package user

import (
	c "budgetsync/internal/core/domain/common"
	"context"
	"net/url"
	"time"
)

const DefaultPasswordResetTokenTTL = time.Hour

type PasswordResetTokenID int64

// ResetToken is the opaque value handed out in a reset link.
type ResetToken string

func (t ResetToken) String() string {
	if len(t) <= 8 {
		return "***"
	}
	return string(t[:8]) + "..."
}

type PasswordResetToken struct {
	ID        PasswordResetTokenID
	UserID    ID
	Token     ResetToken
	CreatedAt time.Time
	ExpiresAt time.Time
	Used      bool
}

func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Check returns nil if the token can be redeemed at the given time.
// A used token reports ErrPasswordResetTokenAlreadyUsed even when it is also expired.
func (t *PasswordResetToken) Check(now time.Time) error {
	if t.Used {
		return ErrPasswordResetTokenAlreadyUsed
	}
	if t.IsExpired(now) {
		return ErrPasswordResetTokenExpired
	}
	return nil
}

type PasswordResetTokenGenerator interface {
	GenerateResetToken() (ResetToken, error)
}

type PasswordResetter interface {
	IssueToken(ctx context.Context, userID ID) (PasswordResetToken, error)
	ValidateToken(ctx context.Context, token ResetToken) (PasswordResetToken, error)
}

type PasswordResetNotifier interface {
	SendPasswordResetLink(ctx context.Context, recipient c.Email, link url.URL) error
}

func NewPasswordResetLink(baseURL url.URL, token ResetToken) url.URL {
	return *baseURL.JoinPath(string(token))
}
