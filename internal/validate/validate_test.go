package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	valid := []string{"a@b.com", "first.last@example.org", "user+tag@mail.co.tz"}
	for _, email := range valid {
		require.True(t, Email(email), "expected %q to be valid", email)
	}

	invalid := []string{"", "plain", "missing@tld", "two@@example.com", "spaces in@example.com", "@example.com"}
	for _, email := range invalid {
		require.False(t, Email(email), "expected %q to be invalid", email)
	}
}

func TestPhone(t *testing.T) {
	require.True(t, Phone("+255683859574"))
	require.True(t, Phone("255683859574"))
	require.True(t, Phone(" +255683859574 "))

	require.False(t, Phone(""))
	require.False(t, Phone("+0123456789"))
	require.False(t, Phone("12345"))
	require.False(t, Phone("+1234567890123456"))
	require.False(t, Phone("not-a-number"))
}

func TestNormalizePhone(t *testing.T) {
	t.Run("should keep an E.164 number unchanged", func(t *testing.T) {
		got, ok := NormalizePhone("+255683859574")
		require.True(t, ok)
		require.Equal(t, "+255683859574", got)
	})

	t.Run("should add the plus and strip formatting", func(t *testing.T) {
		got, ok := NormalizePhone("255 683 859-574")
		require.True(t, ok)
		require.Equal(t, "+255683859574", got)
	})

	t.Run("should reject numbers that stay implausible", func(t *testing.T) {
		_, ok := NormalizePhone("12")
		require.False(t, ok)

		_, ok = NormalizePhone("")
		require.False(t, ok)
	})
}

func TestAmount(t *testing.T) {
	require.True(t, Amount(0.01))
	require.True(t, Amount(100))

	require.False(t, Amount(0))
	require.False(t, Amount(-5))
}
