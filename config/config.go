package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration, sourced from the environment
// with sensible defaults for local development.
type Config struct {
	Port        string
	Environment string

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	Server struct {
		ReadTimeoutSeconds  int
		WriteTimeoutSeconds int
		IdleTimeoutSeconds  int
	}

	Storage struct {
		Backend string // "local" or "s3"
		Root    string
		BaseURL string
		Bucket  string
	}

	Notify struct {
		EmailAPIKey string
		EmailFrom   string
		EmailTo     []string

		TwilioAccountSID string
		TwilioAuthToken  string
		TwilioFrom       string
		TwilioTo         string
	}

	CORS struct {
		AllowedOrigins []string
	}
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_DB", "devblog")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("READ_TIMEOUT_SECONDS", 30)
	v.SetDefault("WRITE_TIMEOUT_SECONDS", 30)
	v.SetDefault("IDLE_TIMEOUT_SECONDS", 120)
	v.SetDefault("STORAGE_BACKEND", "local")
	v.SetDefault("STORAGE_ROOT", "./media")
	v.SetDefault("STORAGE_BASE_URL", "/media")
	v.SetDefault("ACCEPTED_ORIGINS", "*")

	var c Config
	c.Port = v.GetString("PORT")
	c.Environment = v.GetString("ENVIRONMENT")

	c.DB.Host = v.GetString("POSTGRES_HOST")
	c.DB.Port = v.GetString("POSTGRES_PORT")
	c.DB.User = v.GetString("POSTGRES_USER")
	c.DB.Password = v.GetString("POSTGRES_PASSWORD")
	c.DB.Name = v.GetString("POSTGRES_DB")
	c.DB.SSLMode = v.GetString("POSTGRES_SSLMODE")

	c.Server.ReadTimeoutSeconds = v.GetInt("READ_TIMEOUT_SECONDS")
	c.Server.WriteTimeoutSeconds = v.GetInt("WRITE_TIMEOUT_SECONDS")
	c.Server.IdleTimeoutSeconds = v.GetInt("IDLE_TIMEOUT_SECONDS")

	c.Storage.Backend = v.GetString("STORAGE_BACKEND")
	c.Storage.Root = v.GetString("STORAGE_ROOT")
	c.Storage.BaseURL = v.GetString("STORAGE_BASE_URL")
	c.Storage.Bucket = v.GetString("STORAGE_BUCKET")

	c.Notify.EmailAPIKey = v.GetString("RESEND_API_KEY")
	c.Notify.EmailFrom = v.GetString("RESEND_FROM_EMAIL")
	c.Notify.EmailTo = splitList(v.GetString("CONTACT_NOTIFY_EMAILS"))
	c.Notify.TwilioAccountSID = v.GetString("TWILIO_ACCOUNT_SID")
	c.Notify.TwilioAuthToken = v.GetString("TWILIO_AUTH_TOKEN")
	c.Notify.TwilioFrom = v.GetString("TWILIO_FROM_NUMBER")
	c.Notify.TwilioTo = v.GetString("TWILIO_NOTIFY_NUMBER")

	c.CORS.AllowedOrigins = splitList(v.GetString("ACCEPTED_ORIGINS"))

	switch c.Storage.Backend {
	case "local", "s3":
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", c.Storage.Backend)
	}

	return &c, nil
}

// DSN builds the postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port, c.DB.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
