package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Session store selectors.
const (
	SessionStoreMemory = "memory"
	SessionStorePgsql  = "pgsql"
)

// Config holds the application configuration. Everything is explicit and
// read once at startup; nothing mutates shared global state afterwards.
type Config struct {
	Port         string
	IsProduction bool

	// QBO API
	QBOAPIHost      string
	QBOMinorVersion string

	// OAuth2 against Intuit
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthorizeURL string
	TokenURL     string

	// Session handling
	SessionSecret string
	SessionExpiry time.Duration
	SessionIssuer string
	SessionStore  string
	DatabaseURL   string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present. Real environment variables win over the .env file.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("QBO_API_HOST", "https://sandbox-quickbooks.api.intuit.com")
	viper.SetDefault("QBO_MINOR_VERSION", "23")
	viper.SetDefault("QBO_CLIENT_ID", "")
	viper.SetDefault("QBO_CLIENT_SECRET", "")
	viper.SetDefault("QBO_REDIRECT_URL", "http://localhost:8080/callback")
	viper.SetDefault("QBO_AUTHORIZE_URL", "https://appcenter.intuit.com/connect/oauth2")
	viper.SetDefault("QBO_TOKEN_URL", "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer")
	viper.SetDefault("SESSION_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("SESSION_EXPIRY_DURATION", "12h")
	viper.SetDefault("SESSION_ISSUER", "qbo-concepts-app")
	viper.SetDefault("SESSION_STORE", SessionStoreMemory)
	viper.SetDefault("PGSQL_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		QBOAPIHost:      viper.GetString("QBO_API_HOST"),
		QBOMinorVersion: viper.GetString("QBO_MINOR_VERSION"),
		ClientID:        viper.GetString("QBO_CLIENT_ID"),
		ClientSecret:    viper.GetString("QBO_CLIENT_SECRET"),
		RedirectURL:     viper.GetString("QBO_REDIRECT_URL"),
		AuthorizeURL:    viper.GetString("QBO_AUTHORIZE_URL"),
		TokenURL:        viper.GetString("QBO_TOKEN_URL"),
		SessionSecret:   viper.GetString("SESSION_SECRET"),
		SessionIssuer:   viper.GetString("SESSION_ISSUER"),
		SessionStore:    viper.GetString("SESSION_STORE"),
		DatabaseURL:     viper.GetString("PGSQL_URL"),
	}

	expiryStr := viper.GetString("SESSION_EXPIRY_DURATION")
	expiry, err := time.ParseDuration(expiryStr)
	if err != nil {
		expiry = 12 * time.Hour
		log.Printf("Warning: Invalid value for SESSION_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", expiryStr, expiry)
	}
	cfg.SessionExpiry = expiry

	if cfg.ClientID == "" {
		log.Println("Warning: QBO_CLIENT_ID not set. The OAuth connect flow will not function.")
	}
	if cfg.ClientSecret == "" {
		log.Println("Warning: QBO_CLIENT_SECRET not set. The OAuth connect flow will not function.")
	}
	if cfg.SessionStore == SessionStorePgsql && cfg.DatabaseURL == "" {
		log.Println("Warning: SESSION_STORE is pgsql but PGSQL_URL is not set.")
	}

	return cfg, nil
}
