package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Storage backends for the snapshot store.
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config holds the runtime settings. Values come from an optional
// marketmind.yaml in the working directory, overridden by MARKETMIND_*
// environment variables.
type Config struct {
	Addr        string
	Storage     string
	RedisAddr   string
	DatabaseURL string
	JWTSecret   string
}

// Load reads the configuration, applying defaults for anything unset.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("marketmind")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("addr", ":8080")
	v.SetDefault("storage", StorageMemory)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("database_url", "")
	v.SetDefault("jwt_secret", "")

	v.SetEnvPrefix("MARKETMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	cfg := Config{
		Addr:        v.GetString("addr"),
		Storage:     v.GetString("storage"),
		RedisAddr:   v.GetString("redis_addr"),
		DatabaseURL: v.GetString("database_url"),
		JWTSecret:   v.GetString("jwt_secret"),
	}

	switch cfg.Storage {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return Config{}, errors.New("storage must be one of memory, redis, postgres")
	}
	return cfg, nil
}
