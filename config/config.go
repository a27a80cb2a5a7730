package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Redis configuration (durable saved-set storage).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisSavedDB  int    `mapstructure:"REDIS_SAVED_DB"`

	// MongoDB configuration (real listings provider).
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Listings provider selection. When true the seeded in-memory
	// provider is used instead of MongoDB.
	UseMockListings bool `mapstructure:"USE_MOCK_LISTINGS"`
	MockSearchDelay int  `mapstructure:"MOCK_SEARCH_DELAY_MS"`
	MockDetailDelay int  `mapstructure:"MOCK_DETAIL_DELAY_MS"`

	// Search defaults.
	DefaultRadiusMiles int `mapstructure:"DEFAULT_RADIUS_MILES"`

	// Result cache sizing. TTLs are in seconds.
	ListingCacheSize int `mapstructure:"LISTING_CACHE_SIZE"`
	ListingCacheTTL  int `mapstructure:"LISTING_CACHE_TTL"`
	GeocodeCacheSize int `mapstructure:"GEOCODE_CACHE_SIZE"`
	GeocodeCacheTTL  int `mapstructure:"GEOCODE_CACHE_TTL"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SAVED_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "heirloom")
	viper.SetDefault("USE_MOCK_LISTINGS", true)
	viper.SetDefault("MOCK_SEARCH_DELAY_MS", 800)
	viper.SetDefault("MOCK_DETAIL_DELAY_MS", 400)
	viper.SetDefault("DEFAULT_RADIUS_MILES", 25)
	viper.SetDefault("LISTING_CACHE_SIZE", 64)
	viper.SetDefault("LISTING_CACHE_TTL", 300)
	viper.SetDefault("GEOCODE_CACHE_SIZE", 16)
	viper.SetDefault("GEOCODE_CACHE_TTL", 86400)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
