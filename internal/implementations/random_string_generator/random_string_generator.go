package randomstringgenerator

import (
	"budgetsync/internal/core/domain/user"
	"crypto/rand"
	"encoding/base64"
)

// ResetTokenBytes is the amount of entropy in a password reset token.
const ResetTokenBytes = 32

type Generator struct {
	size int
}

func NewGenerator() *Generator {
	return &Generator{size: ResetTokenBytes}
}

// GenerateResetToken returns a URL-safe token without padding.
func (g *Generator) GenerateResetToken() (user.ResetToken, error) {
	b := make([]byte, g.size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return user.ResetToken(base64.RawURLEncoding.EncodeToString(b)), nil
}
