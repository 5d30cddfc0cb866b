package passwordhasher

import (
	"budgetsync/internal/core/domain/user"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt peppers the password with a server-side secret through HMAC-SHA256
// and bcrypts the encoded digest. The digest is 44 bytes, so passwords longer
// than bcrypt's 72 byte input limit keep all of their bytes significant.
type Bcrypt struct {
	secret []byte
	cost   int
}

func NewBcrypt(secret string, cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{secret: []byte(secret), cost: cost}
}

func (h *Bcrypt) pepper(password user.RawPassword) []byte {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(password))
	digest := mac.Sum(nil)
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(digest)))
	base64.StdEncoding.Encode(encoded, digest)
	return encoded
}

func (h *Bcrypt) HashPassword(password user.RawPassword) (user.PasswordHash, error) {
	hash, err := bcrypt.GenerateFromPassword(h.pepper(password), h.cost)
	if err != nil {
		return "", err
	}
	return user.PasswordHash(hash), nil
}

func (h *Bcrypt) ValidatePassword(password user.RawPassword, hash user.PasswordHash) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), h.pepper(password)) == nil
}
