package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFallback(t *testing.T) {
	cases := []struct {
		name     string
		message  string
		contains string
	}{
		{"greeting", "Hello there", "I'm the AI assistant"},
		{"about", "tell me about the foundation", "charitable organization based in Dar es Salaam"},
		{"services", "what programs do you run", "school equipment support"},
		{"donate", "I want to donate", "supporting our cause"},
		{"contact", "what is your email", "kilindosaid771@gmail.com"},
		{"location", "where are you located", "Dar es Salaam, Tanzania"},
		{"volunteer", "can I do volunteering", "welcome volunteers"},
		{"default", "what is the meaning of life", "For more detailed information"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reply := Fallback(tc.message)
			require.NotEmpty(t, reply)
			require.Contains(t, strings.ToLower(reply), strings.ToLower(tc.contains))
		})
	}
}

func TestFallbackIsCaseInsensitive(t *testing.T) {
	require.Equal(t, Fallback("hello"), Fallback("HELLO"))
}

func TestFallbackFirstMatchWins(t *testing.T) {
	// "hello" outranks "donate" because greeting rules come first.
	reply := Fallback("hello, how do I donate?")
	require.Contains(t, reply, "What would you like to know?")
}
