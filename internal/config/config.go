package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort      int    `mapstructure:"APP_PORT"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`

	// Upstream AI endpoint. The API key never leaves the server; the browser
	// only ever talks to this backend.
	AIBaseURL string `mapstructure:"AI_BASE_URL"`
	AIAPIKey  string `mapstructure:"AI_API_KEY"`

	InitialModel    string `mapstructure:"INITIAL_MODEL"`
	RefineModel     string `mapstructure:"REFINE_MODEL"`
	ValidationModel string `mapstructure:"VALIDATION_MODEL"`

	InitialMaxTokens    int `mapstructure:"INITIAL_MAX_TOKENS"`
	RefineMaxTokens     int `mapstructure:"REFINE_MAX_TOKENS"`
	ValidationMaxTokens int `mapstructure:"VALIDATION_MAX_TOKENS"`

	RequestTimeoutSeconds int `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	RetryAttempts         int `mapstructure:"RETRY_ATTEMPTS"`

	// Defaults for a fresh session's tech stack selection.
	DefaultFramework        string  `mapstructure:"DEFAULT_FRAMEWORK"`
	DefaultComponentLibrary string  `mapstructure:"DEFAULT_COMPONENT_LIBRARY"`
	DefaultAppType          string  `mapstructure:"DEFAULT_APP_TYPE"`
	DefaultTemperature      float64 `mapstructure:"DEFAULT_TEMPERATURE"`

	SchemaCacheSize int `mapstructure:"SCHEMA_CACHE_SIZE"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/blueprint.db")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetDefault("AI_BASE_URL", "")
	viper.SetDefault("AI_API_KEY", "")

	viper.SetDefault("INITIAL_MODEL", "gpt-4.1")
	viper.SetDefault("REFINE_MODEL", "gpt-4.1")
	viper.SetDefault("VALIDATION_MODEL", "gpt-4.1")

	viper.SetDefault("INITIAL_MAX_TOKENS", 20000)
	viper.SetDefault("REFINE_MAX_TOKENS", 4000)
	viper.SetDefault("VALIDATION_MAX_TOKENS", 1000)

	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("RETRY_ATTEMPTS", 3)

	viper.SetDefault("DEFAULT_FRAMEWORK", "Vue")
	viper.SetDefault("DEFAULT_COMPONENT_LIBRARY", "ElementPlus")
	viper.SetDefault("DEFAULT_APP_TYPE", "web")
	viper.SetDefault("DEFAULT_TEMPERATURE", 0.5)

	viper.SetDefault("SCHEMA_CACHE_SIZE", 128)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
