package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// App holds application configuration.
type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

// Logger holds logger configuration.
type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// API holds API server configuration.
type API struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// HTTP holds settings shared by every outbound HTTP client.
type HTTP struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Tracing holds OpenTelemetry tracing configuration.
type Tracing struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

// Option customizes the viper instance before the config is read.
type Option func(v *viper.Viper)

// WithDefault registers a default value. Keys need a default (or a config file entry)
// for AutomaticEnv to reach them during Unmarshal.
func WithDefault(key string, value interface{}) Option {
	return func(v *viper.Viper) {
		v.SetDefault(key, value)
	}
}

// WithEnv binds a key to explicit environment variable names, checked in order.
func WithEnv(key string, envs ...string) Option {
	return func(v *viper.Viper) {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}
}

// Load loads configuration from a file into the given config struct.
// A .env file in the working directory is loaded first; existing environment
// variables win over it, and environment variables win over the file.
func Load(path string, config interface{}, opts ...Option) error {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, opt := range opts {
		opt(v)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.Println("Failed to read config file, falling back to environment variables")
		}
	}

	return v.Unmarshal(config)
}
