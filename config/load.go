package config

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads an optional YAML file named by CONFIG_FILE, then lets
// environment variables override it.
func Load() App {
	cfg := App{
		Port:    "8080",
		DataDir: "data",
		Env:     "dev",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("config file unreadable", "path", path, "err", err)
			panic("cannot read " + path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			slog.Error("config file invalid", "path", path, "err", err)
			panic("cannot parse " + path)
		}
	}

	cfg.Port = getenv("APP_PORT", cfg.Port)
	cfg.DataDir = getenv("DATA_DIR", cfg.DataDir)
	cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
	cfg.JWTSecret = getenv("JWT_SECRET", cfg.JWTSecret)
	cfg.Env = getenv("APP_ENV", cfg.Env)

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "local_dev_secret"
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
