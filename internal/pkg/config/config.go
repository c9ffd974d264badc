package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/sparkrides/internal/pkg/models"
	"github.com/spf13/viper"
)

const (
	// DefaultRoutingURL is the public OSRM demo server for driving routes
	DefaultRoutingURL = "https://router.project-osrm.org/route/v1/driving"
	// DefaultRoutingTimeout bounds a single provider call
	DefaultRoutingTimeout = 8 * time.Second
	// DefaultUserAgent identifies this client to the routing provider
	DefaultUserAgent = "sparkrides-route-client/1.0"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" && configPath != "" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv(newViper())
}

// newViper returns a viper instance reading the process environment with
// every default the service relies on.
func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "sparkrides")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_DATABASE", "sparkrides")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("ROUTING_PROVIDER_URL", DefaultRoutingURL)
	v.SetDefault("ROUTING_USER_AGENT", DefaultUserAgent)
	v.SetDefault("ROUTING_TIMEOUT", DefaultRoutingTimeout)

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_REQUESTS", 120)
	v.SetDefault("RATE_LIMIT_PERIOD", time.Minute)

	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("NEW_RELIC_APP_NAME", "sparkrides")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_TYPE", "console")
	return v
}

func loadConfigFromEnv(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// Routing provider config
	configs.Routing.ProviderURL = v.GetString("ROUTING_PROVIDER_URL")
	configs.Routing.UserAgent = v.GetString("ROUTING_USER_AGENT")
	configs.Routing.Timeout = v.GetDuration("ROUTING_TIMEOUT")
	if configs.Routing.Timeout <= 0 {
		log.Printf("Warning: Invalid ROUTING_TIMEOUT, using default: %s", DefaultRoutingTimeout)
		configs.Routing.Timeout = DefaultRoutingTimeout
	}

	// Rate limit config
	configs.RateLimit.Enabled = v.GetBool("RATE_LIMIT_ENABLED")
	configs.RateLimit.Limit = v.GetInt("RATE_LIMIT_REQUESTS")
	configs.RateLimit.Period = v.GetDuration("RATE_LIMIT_PERIOD")

	// Admin config
	configs.Admin.APIKey = v.GetString("ADMIN_API_KEY")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.Type = v.GetString("LOG_TYPE")

	return configs
}

// GetEnv returns the environment value for key, or defaultValue when unset
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
