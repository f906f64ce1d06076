package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	Org         Org
	CORSOrigin  string `env:"CORS_ORIGIN" envDefault:"http://localhost:5173,http://127.0.0.1:5173"`

	Email    Email
	Twilio   Twilio  `envPrefix:"TWILIO_"`
	Zenopay  Zenopay `envPrefix:"ZENOPAY_"`
	AIBot    AIBot
	Currency Currency
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"3001"`
}

type Org struct {
	Name         string `env:"ORG_NAME" envDefault:"Charty"`
	SupportEmail string `env:"SUPPORT_EMAIL"`
	SendAck      bool   `env:"SEND_ACK"`
}

// Email selects one of a closed set of SMTP providers. Only the group named
// by Provider is consulted; the other groups may stay unset.
type Email struct {
	Provider string      `env:"EMAIL_PROVIDER" envDefault:"gmail"`
	Gmail    SMTPAccount `envPrefix:"GMAIL_"`
	Mailtrap SMTPAccount `envPrefix:"MAILTRAP_"`
	SMTP     SMTPAccount `envPrefix:"SMTP_"`
}

type SMTPAccount struct {
	Host   string `env:"HOST"`
	Port   int    `env:"PORT"`
	Secure bool   `env:"SECURE"`
	User   string `env:"USER"`
	Pass   string `env:"PASS"`
}

type Twilio struct {
	AccountSID string `env:"ACCOUNT_SID"`
	AuthToken  string `env:"AUTH_TOKEN"`
	From       string `env:"FROM"`
}

type Zenopay struct {
	BaseURL    string `env:"BASE_URL"`
	APIKey     string `env:"API_KEY"`
	WebhookURL string `env:"WEBHOOK_URL"`
}

type AIBot struct {
	APIKey       string `env:"AI_BOT_API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	Model        string `env:"AI_BOT_MODEL" envDefault:"gemini-1.5-flash"`
}

type Currency struct {
	USDToTZS float64 `env:"USD_TZS_RATE" envDefault:"2600"`
}
