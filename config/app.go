package config

import (
	"github.com/izonak/localbox/internal/interfaces"
)

func AppConfig(config interfaces.Config) {
	config.Add("app", map[string]any{
		"name":         config.Env("APP_NAME", "LocalBox"),
		"debug":        config.Env("APP_DEBUG", false),
		"host":         config.Env("APP_HOST", "0.0.0.0"),
		"port":         config.Env("APP_PORT", "4000"),
		"storage_path": config.Env("STORAGE_PATH", "localboxstorage"),
		"public_path":  config.Env("PUBLIC_PATH", "public"),
		"open_browser": config.Env("OPEN_BROWSER", true),
	})

	config.Add("upload", map[string]any{
		// Per-upload cap for the resumable transport, in bytes.
		"max_size": config.Env("UPLOAD_MAX_SIZE", int64(4<<30)),
	})

	config.Add("limiter", map[string]any{
		"max":                config.Env("LIMITER_MAX", 300),
		"expiration_seconds": config.Env("LIMITER_EXPIRATION", 60),
	})
}
