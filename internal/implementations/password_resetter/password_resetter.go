package passwordresetter

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/user"
	"context"
	"fmt"
	"time"
)

// Store issues password reset tokens as persisted single-use records.
type Store struct {
	repository    user.PasswordResetTokenRepository
	generator     user.PasswordResetTokenGenerator
	validDuration time.Duration
	now           func() time.Time
}

func NewStore(
	repository user.PasswordResetTokenRepository,
	generator user.PasswordResetTokenGenerator,
	validDuration time.Duration,
	now func() time.Time,
) *Store {
	if repository == nil {
		panic(e.NewNilArgumentError("repository"))
	}
	if generator == nil {
		panic(e.NewNilArgumentError("generator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	if validDuration <= 0 {
		validDuration = user.DefaultPasswordResetTokenTTL
	}
	return &Store{
		repository:    repository,
		generator:     generator,
		validDuration: validDuration,
		now:           now,
	}
}

// IssueToken does not check that the user exists and does not touch
// other tokens of the user.
func (s *Store) IssueToken(ctx context.Context, userID user.ID) (t user.PasswordResetToken, err error) {
	token, err := s.generator.GenerateResetToken()
	if err != nil {
		return t, fmt.Errorf("could not generate password reset token: %w", err)
	}
	createdAt := s.now()
	return s.repository.Create(ctx, user.CreatePasswordResetTokenInput{
		UserID:    userID,
		Token:     token,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(s.validDuration),
	})
}

func (s *Store) ValidateToken(ctx context.Context, token user.ResetToken) (t user.PasswordResetToken, err error) {
	if token == "" {
		return t, user.ErrPasswordResetTokenNotFound
	}
	t, err = s.repository.GetByToken(ctx, token)
	if err != nil {
		return t, err
	}
	if err := t.Check(s.now()); err != nil {
		return t, err
	}
	return t, nil
}
