package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type RESTconfig struct {
	PORT               string
	CORSAllowedOrigins []string
	// PublicURL is the externally visible origin, used as the redirect URI of federated sign-in.
	PublicURL string
}

type ApiClientConfig struct {
	ListingServiceURL  string
	IdentityServiceURL string
	IdentityAPIKey     string
	Timeout            time.Duration
}

type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

type BrowseConfig struct {
	PageSize int
}

type GoogleConfig struct {
	ClientID string
}

type RabbitMQConfig struct {
	Enabled  bool
	URL      string
	Exchange string
}

type StdoutLogConfig struct {
	Level  string
	IsJSON bool
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

type TUIConfig struct {
	LogFile string
}

// AppConfig holds the whole configuration of both binaries.
type AppConfig struct {
	AppName      string
	Rest         RESTconfig
	ApiClient    ApiClientConfig
	Session      SessionConfig
	Browse       BrowseConfig
	Google       GoogleConfig
	RabbitMQ     RabbitMQConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
	TUI          TUIConfig
}

// LoadConfig reads an optional .env file and then the environment.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath...)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: no .env file loaded (path: %v): %v. Using process environment.", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "homenest-web")

	cfg.Rest.PORT = getEnvAsString("PORT", "8080")
	cfg.Rest.CORSAllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"})
	cfg.Rest.PublicURL = strings.TrimRight(getEnvAsString("PUBLIC_URL", "http://localhost:"+cfg.Rest.PORT), "/")

	cfg.ApiClient.ListingServiceURL = getEnvAsString("LISTING_SERVICE_URL", "http://localhost:5000")
	cfg.ApiClient.IdentityServiceURL = getEnvAsString("IDENTITY_SERVICE_URL", "https://identitytoolkit.googleapis.com")
	cfg.ApiClient.IdentityAPIKey = os.Getenv("IDENTITY_API_KEY")
	cfg.ApiClient.Timeout = getEnvAsDuration("API_CLIENT_TIMEOUT", 0)

	cfg.Session.Secret = os.Getenv("SESSION_SECRET")
	cfg.Session.TTL = getEnvAsDuration("SESSION_TTL", 24*time.Hour)
	cfg.Session.CookieName = getEnvAsString("SESSION_COOKIE_NAME", "homenest_session")
	cfg.Session.CookieSecure = getEnvAsBool("SESSION_COOKIE_SECURE", false)

	cfg.Browse.PageSize = getEnvAsInt("PAGE_SIZE", 8)
	if cfg.Browse.PageSize <= 0 {
		log.Printf("Warning: PAGE_SIZE must be positive, got %d. Using 8.", cfg.Browse.PageSize)
		cfg.Browse.PageSize = 8
	}

	cfg.Google.ClientID = os.Getenv("GOOGLE_CLIENT_ID")

	cfg.RabbitMQ.Enabled = getEnvAsBool("RABBITMQ_ENABLED", false)
	cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
	cfg.RabbitMQ.Exchange = getEnvAsString("RABBITMQ_EXCHANGE", "homenest.activity")
	if cfg.RabbitMQ.Enabled && cfg.RabbitMQ.URL == "" {
		return nil, fmt.Errorf("RABBITMQ_URL environment variable is required when RABBITMQ_ENABLED is true")
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.IsJSON = getEnvAsBool("STDOUT_LOG_JSON", false)

	cfg.TUI.LogFile = getEnvAsString("TUI_LOG_FILE", "homenest-tui.log")

	return cfg, nil
}

// ValidateWeb checks what only the web server needs.
func (c *AppConfig) ValidateWeb() error {
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET environment variable is required")
	}
	if c.ApiClient.IdentityAPIKey == "" {
		return fmt.Errorf("IDENTITY_API_KEY environment variable is required")
	}
	return nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as duration: %v. Using default value: %s\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return d
}

func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valStr) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
