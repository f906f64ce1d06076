package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveSMTP(t *testing.T) {
	t.Run("gmail with default port", func(t *testing.T) {
		email := Email{
			Provider: "gmail",
			Gmail:    SMTPAccount{Host: "smtp.gmail.com", User: "u@gmail.com", Pass: "p"},
		}
		settings, ok := email.ResolveSMTP()
		require.True(t, ok)
		require.Equal(t, "smtp.gmail.com", settings.Host)
		require.Equal(t, 587, settings.Port)
	})

	t.Run("mailtrap default port", func(t *testing.T) {
		email := Email{
			Provider: "mailtrap",
			Mailtrap: SMTPAccount{Host: "sandbox.smtp.mailtrap.io", User: "u", Pass: "p"},
		}
		settings, ok := email.ResolveSMTP()
		require.True(t, ok)
		require.Equal(t, 2525, settings.Port)
	})

	t.Run("unknown provider falls back to generic smtp", func(t *testing.T) {
		email := Email{
			Provider: "anything",
			SMTP:     SMTPAccount{Host: "mail.example.com", Port: 465, Secure: true, User: "u", Pass: "p"},
		}
		settings, ok := email.ResolveSMTP()
		require.True(t, ok)
		require.Equal(t, "mail.example.com", settings.Host)
		require.Equal(t, 465, settings.Port)
		require.True(t, settings.Secure)
	})

	t.Run("incomplete group is not configured", func(t *testing.T) {
		email := Email{Provider: "gmail", Gmail: SMTPAccount{Host: "smtp.gmail.com"}}
		_, ok := email.ResolveSMTP()
		require.False(t, ok)
	})

	t.Run("only the selected group is consulted", func(t *testing.T) {
		email := Email{
			Provider: "mailtrap",
			Gmail:    SMTPAccount{Host: "smtp.gmail.com", User: "u", Pass: "p"},
		}
		_, ok := email.ResolveSMTP()
		require.False(t, ok)
	})
}

func TestAIBotKey(t *testing.T) {
	require.Equal(t, "a", AIBot{APIKey: "a", GeminiAPIKey: "b"}.Key())
	require.Equal(t, "b", AIBot{GeminiAPIKey: "b"}.Key())
	require.Empty(t, AIBot{}.Key())
	require.Empty(t, AIBot{APIKey: "your-ai-api-key-here"}.Key())
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSOrigin: "http://localhost:5173, http://127.0.0.1:5173 ,,http://example.org"}
	require.Equal(t, []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
		"http://example.org",
	}, cfg.AllowedOrigins())
}

func TestTwilioAndZenopayConfigured(t *testing.T) {
	require.False(t, Twilio{}.Configured())
	require.True(t, Twilio{AccountSID: "sid", AuthToken: "tok", From: "+1555"}.Configured())

	require.False(t, Zenopay{BaseURL: "https://api.example.com"}.Configured())
	require.True(t, Zenopay{BaseURL: "https://api.example.com", APIKey: "k"}.Configured())
}
