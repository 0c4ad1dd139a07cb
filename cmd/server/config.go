package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/waaagh-api/internal/errors"
)

var cfgFile string

// Store drivers
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// StoreConfig selects and configures the army store
type StoreConfig struct {
	Driver     string
	RedisAddr  string
	SQLitePath string
}

// ServerConfig is everything the server command reads from viper
type ServerConfig struct {
	HTTPPort                      int
	GRPCPort                      int
	LogLevel                      string
	Store                         StoreConfig
	CataloguePath                 string
	EnforceEnhancementExclusivity bool
}

// Validate checks ports, log level and store settings
func (c *ServerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidatePositive("http-port", c.HTTPPort, vb)
	errors.ValidatePositive("grpc-port", c.GRPCPort, vb)
	if c.HTTPPort == c.GRPCPort {
		vb.Field("grpc-port", "must differ from http-port")
	}
	errors.ValidateEnum("log-level", c.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("store.driver", c.Store.Driver, []string{StoreMemory, StoreRedis, StoreSQLite}, vb)

	switch c.Store.Driver {
	case StoreRedis:
		errors.ValidateRequired("store.redis-addr", c.Store.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("store.sqlite-path", c.Store.SQLitePath, vb)
	}

	return vb.Build()
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".waaagh")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("WAAAGH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(viper.GetString("log-level")),
	})))
}

func setDefaults() {
	viper.SetDefault("http-port", 8080)
	viper.SetDefault("grpc-port", 50051)
	viper.SetDefault("log-level", "info")
	viper.SetDefault("store.driver", StoreMemory)
	viper.SetDefault("store.redis-addr", "localhost:6379")
	viper.SetDefault("store.sqlite-path", "waaagh.db")
	viper.SetDefault("catalogue.path", "")
	viper.SetDefault("validation.enforce-exclusive-enhancements", false)
}

func loadServerConfig(v *viper.Viper) *ServerConfig {
	return &ServerConfig{
		HTTPPort: v.GetInt("http-port"),
		GRPCPort: v.GetInt("grpc-port"),
		LogLevel: strings.ToLower(v.GetString("log-level")),
		Store: StoreConfig{
			Driver:     strings.ToLower(v.GetString("store.driver")),
			RedisAddr:  v.GetString("store.redis-addr"),
			SQLitePath: v.GetString("store.sqlite-path"),
		},
		CataloguePath:                 v.GetString("catalogue.path"),
		EnforceEnhancementExclusivity: v.GetBool("validation.enforce-exclusive-enhancements"),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
