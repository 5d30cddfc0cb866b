package passwordhasher

import (
	"budgetsync/internal/core/domain/user"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordValid(t *testing.T) {
	cases := []struct {
		secret   string
		cost     int
		password string
	}{
		{secret: "test", cost: 5, password: "Password@123456789"},
		{secret: "", cost: 5, password: ""},
		{secret: "   b   ", cost: 6, password: "   test   "},
		{secret: "unicode", cost: 5, password: "пароль-для-бюджета"},
		{secret: "long", cost: 4, password: strings.Repeat("x", 256)},
	}
	for ix, c := range cases {
		t.Run(fmt.Sprint(ix), func(t *testing.T) {
			h := NewBcrypt(c.secret, c.cost)
			hash, err := h.HashPassword(user.RawPassword(c.password))
			require.NoError(t, err)
			require.NotEqual(t, user.PasswordHash(c.password), hash)
			require.True(t, h.ValidatePassword(user.RawPassword(c.password), hash))
		})
	}
}

func TestSamePasswordHashedWithDifferentSalt(t *testing.T) {
	h := NewBcrypt("secret", 5)

	first, err := h.HashPassword("Password@123456789")
	require.NoError(t, err)
	second, err := h.HashPassword("Password@123456789")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, h.ValidatePassword("Password@123456789", first))
	require.True(t, h.ValidatePassword("Password@123456789", second))
}

func TestPasswordInvalid(t *testing.T) {
	cases := []struct {
		secretToHash    string
		secretToCheck   string
		passwordToHash  string
		passwordToCheck string
	}{
		{secretToHash: "test", secretToCheck: "test", passwordToHash: "test", passwordToCheck: "test "},
		{secretToHash: "test", secretToCheck: "test ", passwordToHash: "test", passwordToCheck: "test"},
		{secretToHash: "", secretToCheck: " ", passwordToHash: "", passwordToCheck: ""},
		{secretToHash: "a", secretToCheck: "a", passwordToHash: "password password", passwordToCheck: " password password"},
		{
			secretToHash:    "s",
			secretToCheck:   "s",
			passwordToHash:  strings.Repeat("a", 100) + "1",
			passwordToCheck: strings.Repeat("a", 100) + "2",
		},
	}
	for ix, c := range cases {
		t.Run(fmt.Sprint(ix), func(t *testing.T) {
			hash, err := NewBcrypt(c.secretToHash, 4).HashPassword(user.RawPassword(c.passwordToHash))
			require.NoError(t, err)

			h := NewBcrypt(c.secretToCheck, 4)
			require.False(t, h.ValidatePassword(user.RawPassword(c.passwordToCheck), hash))
		})
	}
}

func TestCostOutOfRangeFallsBackToDefault(t *testing.T) {
	for _, cost := range []int{0, bcrypt.MaxCost + 1} {
		h := NewBcrypt("secret", cost)
		require.Equal(t, bcrypt.DefaultCost, h.cost)
	}
}

func TestMalformedHashIsInvalid(t *testing.T) {
	h := NewBcrypt("secret", 5)
	require.False(t, h.ValidatePassword("password", user.PasswordHash("not-a-bcrypt-hash")))
}
