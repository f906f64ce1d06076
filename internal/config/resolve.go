package config

import (
	"strings"

	"github.com/samber/lo"
)

// SMTPSettings is the resolved transport configuration for whichever email
// provider was selected. A zero value means email is not configured and the
// handlers degrade to logging only.
type SMTPSettings struct {
	Host   string
	Port   int
	Secure bool
	User   string
	Pass   string
}

// ResolveSMTP picks the provider group named by EMAIL_PROVIDER and fills in
// the provider's default port when none is set. The second return value is
// false when the group is incomplete.
func (e Email) ResolveSMTP() (SMTPSettings, bool) {
	var account SMTPAccount
	var defaultPort int

	switch strings.ToLower(e.Provider) {
	case "gmail":
		account, defaultPort = e.Gmail, 587
	case "mailtrap":
		account, defaultPort = e.Mailtrap, 2525
	default:
		account, defaultPort = e.SMTP, 587
	}

	if account.Host == "" || account.User == "" || account.Pass == "" {
		return SMTPSettings{}, false
	}

	port := account.Port
	if port == 0 {
		port = defaultPort
	}

	return SMTPSettings{
		Host:   account.Host,
		Port:   port,
		Secure: account.Secure,
		User:   account.User,
		Pass:   account.Pass,
	}, true
}

// Key returns the generative-language API key, preferring AI_BOT_API_KEY over
// GEMINI_API_KEY and rejecting the sample placeholder left in env templates.
func (a AIBot) Key() string {
	key := a.APIKey
	if key == "" {
		key = a.GeminiAPIKey
	}
	if key == "your-ai-api-key-here" {
		return ""
	}
	return key
}

func (t Twilio) Configured() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.From != ""
}

func (z Zenopay) Configured() bool {
	return z.BaseURL != "" && z.APIKey != ""
}

// AllowedOrigins splits the comma-separated CORS_ORIGIN value.
func (c *Config) AllowedOrigins() []string {
	return lo.FilterMap(strings.Split(c.CORSOrigin, ","), func(origin string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(origin)
		return trimmed, trimmed != ""
	})
}
