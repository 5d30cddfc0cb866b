package session

import (
	"budgetsync/internal/core/domain/user"

	"github.com/google/uuid"
)

// UUID issues random version 4 UUIDs as session tokens.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

// GenerateSessionToken panics if the system random source fails, as nothing
// can be issued safely without it.
func (g *UUID) GenerateSessionToken() user.SessionToken {
	id := uuid.Must(uuid.NewRandom())
	return user.SessionToken(id.String())
}
