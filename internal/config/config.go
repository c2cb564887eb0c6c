package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	DatabaseURL string `env:"DATABASE_URL"`

	Stripe Stripe `envPrefix:"STRIPE_"`
	Email  Email  `envPrefix:"EMAIL_"`
	Auth   Auth   `envPrefix:"AUTH_"`
}

type Stripe struct {
	BaseApiURL    string `env:"BASE_API_URL" envDefault:"https://api.stripe.com"`
	SecretKey     string `env:"SECRET_KEY"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	// Smallest amount, in cents, the gateway accepts for a charge.
	MinimumCharge int64 `env:"MINIMUM_CHARGE" envDefault:"50"`

	// Per-value byte ceiling the gateway enforces on metadata entries.
	MetadataValueLimit int `env:"METADATA_VALUE_LIMIT" envDefault:"500"`

	// Tolerance window, in seconds, for webhook signature timestamps.
	SignatureTolerance int64 `env:"SIGNATURE_TOLERANCE" envDefault:"300"`
}

type Email struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.resend.com"`
	APIKey     string `env:"API_KEY"`
	From       string `env:"FROM" envDefault:"orders@lyrafashion.com"`
}

type Auth struct {
	// HS256 secret of the auth provider; we only verify tokens it issued.
	JWTSecret string `env:"JWT_SECRET"`
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
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
