package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)
	assert.Equal("[42]", optionalInt.String())

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
	assert.Equal("[-]", optionalString.String())

	value, ok := optionalInt.Get()
	assert.Equal(42, value)
	assert.True(ok)
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		raw      string
		expected Email
	}{
		{raw: "test@example.com", expected: Email("test@example.com")},
		{raw: "Test@Example.COM", expected: Email("test@example.com")},
		{raw: "  test@example.com ", expected: Email("test@example.com")},
	}
	for _, testcase := range cases {
		t.Run(testcase.raw, func(t *testing.T) {
			require.Equal(t, testcase.expected, NewEmail(testcase.raw))
		})
	}
}

func TestMaskedEmail(t *testing.T) {
	cases := []struct {
		email    Email
		expected string
	}{
		{email: "jane.doe@example.com", expected: "j***@example.com"},
		{email: "j@example.com", expected: "j***@example.com"},
		{email: "@example.com", expected: "***"},
		{email: "not-an-email", expected: "***"},
	}
	for _, testcase := range cases {
		t.Run(string(testcase.email), func(t *testing.T) {
			require.Equal(t, testcase.expected, testcase.email.Masked())
		})
	}
}
