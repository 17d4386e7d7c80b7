package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Local      Environment = "local"
	Production Environment = "production"
)

type App struct {
	Env         Environment
	Port        string
	MetricsPort string
	LogLevel    string
}

type Site struct {
	MetadataPath string
}

type Database struct {
	Username string
	Password string
	Endpoint string
	Name     string
	SSLMode  string
}

// Enabled reports whether a database endpoint was configured at all.
func (d Database) Enabled() bool {
	return d.Endpoint != ""
}

type Slack struct {
	BlogBotToken         string
	DeploymentsChannelID string
}

type Config struct {
	App      App
	Site     Site
	Database Database
	Slack    Slack
}

func New() *Config {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	return &Config{
		App: App{
			Env:         parseEnvironment(getEnv("APP_ENV", string(Local))),
			Port:        getEnv("APP_PORT", "8080"),
			MetricsPort: getEnv("APP_METRICS_PORT", "9090"),
			LogLevel:    getEnv("APP_LOG_LEVEL", "info"),
		},
		Site: Site{
			MetadataPath: getEnv("SITE_METADATA_PATH", ""),
		},
		Database: Database{
			Username: getEnv("DB_USERNAME", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Endpoint: getEnv("DB_ENDPOINT", ""),
			Name:     getEnv("DB_NAME", "blog"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Slack: Slack{
			BlogBotToken:         getEnv("SLACK_BLOG_BOT_TOKEN", ""),
			DeploymentsChannelID: getEnv("SLACK_DEPLOYMENTS_CHANNEL_ID", ""),
		},
	}
}

func parseEnvironment(v string) Environment {
	if Environment(v) == Production {
		return Production
	}
	return Local
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
