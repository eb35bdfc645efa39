/**
 * @description
 * This package handles the configuration management for the web shell. It
 * uses the Viper library to read configuration from environment variables,
 * providing a centralized and straightforward way to manage application
 * settings.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */

package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the service.
// These values are loaded from environment variables.
type Config struct {
	ServerPort                string `mapstructure:"SERVER_PORT"`
	APIBaseURL                string `mapstructure:"NEXT_PUBLIC_API_URL"`
	ApexDomain                string `mapstructure:"APEX_DOMAIN"`
	CanonicalHost             string `mapstructure:"CANONICAL_HOST"`
	StripeSecretKey           string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeAPIBaseURL          string `mapstructure:"STRIPE_API_BASE_URL"`
	SessionSecret             string `mapstructure:"SESSION_SECRET"`
	SessionCookieName         string `mapstructure:"SESSION_COOKIE_NAME"`
	RedisURL                  string `mapstructure:"REDIS_URL"`
	SupportRateLimitPerMinute int    `mapstructure:"SUPPORT_RATE_LIMIT_PER_MINUTE"`
	RabbitMQURL               string `mapstructure:"RABBITMQ_URL"`
	SupportEventExchange      string `mapstructure:"SUPPORT_EVENT_EXCHANGE"`
}

// LoadConfig reads configuration from environment variables from the given
// path. It uses Viper to automatically bind environment variables to the
// Config struct.
func LoadConfig(path string) (config Config, err error) {
	// Tell viper the path to look for the optional .env file.
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	// Enable automatic binding of environment variables.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("NEXT_PUBLIC_API_URL", "https://api.levqor.com")
	viper.SetDefault("APEX_DOMAIN", "levqor.com")
	viper.SetDefault("CANONICAL_HOST", "www.levqor.com")
	viper.SetDefault("STRIPE_API_BASE_URL", "https://api.stripe.com")
	viper.SetDefault("SESSION_COOKIE_NAME", "levqor_session")
	viper.SetDefault("SUPPORT_RATE_LIMIT_PER_MINUTE", 20)
	viper.SetDefault("SUPPORT_EVENT_EXCHANGE", "levqor.events")

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	_ = viper.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT")
	_ = viper.BindEnv("NEXT_PUBLIC_API_URL", "NEXT_PUBLIC_API_URL", "API_BASE_URL")
	_ = viper.BindEnv("APEX_DOMAIN")
	_ = viper.BindEnv("CANONICAL_HOST")
	_ = viper.BindEnv("STRIPE_SECRET_KEY")
	_ = viper.BindEnv("STRIPE_API_BASE_URL")
	_ = viper.BindEnv("SESSION_SECRET")
	_ = viper.BindEnv("SESSION_COOKIE_NAME")
	_ = viper.BindEnv("REDIS_URL")
	_ = viper.BindEnv("SUPPORT_RATE_LIMIT_PER_MINUTE")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("SUPPORT_EVENT_EXCHANGE")

	// Attempt to read the config file. It's okay if it doesn't exist.
	if err = viper.ReadInConfig(); err != nil {
		// If the config file is not found, we can ignore the error.
		// For other errors, we should return them.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
		err = nil
	}

	// Unmarshal the configuration into the Config struct.
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		config.ServerPort = port
	}
	config.RedisURL = strings.TrimSpace(config.RedisURL)
	config.RabbitMQURL = strings.TrimSpace(config.RabbitMQURL)
	config.APIBaseURL = strings.TrimSuffix(strings.TrimSpace(config.APIBaseURL), "/")
	config.StripeAPIBaseURL = strings.TrimSuffix(strings.TrimSpace(config.StripeAPIBaseURL), "/")
	if config.SupportRateLimitPerMinute < 0 {
		config.SupportRateLimitPerMinute = 0
	}

	return
}
