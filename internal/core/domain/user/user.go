package user

import (
	c "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	"time"
)

type ID int64

type Username string

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

// SessionToken authenticates API requests as the Bearer credential.
type SessionToken string

func (t SessionToken) String() string {
	if len(t) <= 8 {
		return "***"
	}
	return string(t[:8]) + "..."
}

type SessionTokenGenerator interface {
	GenerateSessionToken() SessionToken
}

type User struct {
	ID           ID
	Username     Username
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError("email is not set for user %d", u.ID)
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError("password hash is not set for user %d", u.ID)
	}
	return nil
}
