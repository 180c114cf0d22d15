package configs

import (
	"fmt"
	"time"

	"github.com/dkarlsen/pulse/internal/infrastructure/env"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Version is the fallback application version when APP_VERSION is not set.
const Version = "1.2.0"

type Config struct {
	HTTP HTTPConfig `koanf:"http"`
	App  AppConfig  `koanf:"app"`
}

type HTTPConfig struct {
	Host         string        `koanf:"host"`
	Port         uint16        `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type AppConfig struct {
	Version   string `koanf:"version"`
	BuildDate string `koanf:"build_date"`
	CommitSHA string `koanf:"commit_sha"`
	Author    string `koanf:"author"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Load from YAML file if one was found; the service runs fine on
	// defaults and environment variables alone.
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	applyDefaults(k)
	applyEnvOverrides(k)

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(k *koanf.Koanf) {
	// HTTP defaults
	setDefault(k, "http.host", "0.0.0.0")
	setDefault(k, "http.port", 8081)
	setDefault(k, "http.read_timeout", 10*time.Second)
	setDefault(k, "http.write_timeout", 30*time.Second)

	// Build metadata defaults
	setDefault(k, "app.version", Version)
	setDefault(k, "app.build_date", time.Now().UTC().Format(time.RFC3339))
	setDefault(k, "app.commit_sha", "local-dev")
	setDefault(k, "app.author", "unknown")
}

func applyEnvOverrides(k *koanf.Koanf) {
	// HTTP config from env
	if host := env.GetString("HTTP_HOST", ""); host != "" {
		k.Set("http.host", host)
	}
	if port := env.GetInt("PORT", 0); port > 0 && port <= 65535 {
		k.Set("http.port", port)
	}
	if readTimeout := env.GetInt("HTTP_READ_TIMEOUT_SECONDS", 0); readTimeout > 0 {
		k.Set("http.read_timeout", time.Duration(readTimeout)*time.Second)
	}
	if writeTimeout := env.GetInt("HTTP_WRITE_TIMEOUT_SECONDS", 0); writeTimeout > 0 {
		k.Set("http.write_timeout", time.Duration(writeTimeout)*time.Second)
	}

	// Build metadata from env
	if version := env.GetString("APP_VERSION", ""); version != "" {
		k.Set("app.version", version)
	}
	if buildDate := env.GetString("BUILD_DATE", ""); buildDate != "" {
		k.Set("app.build_date", buildDate)
	}
	if commitSHA := env.GetString("COMMIT_SHA", ""); commitSHA != "" {
		k.Set("app.commit_sha", commitSHA)
	}
	if author := env.GetString("AUTHOR", ""); author != "" {
		k.Set("app.author", author)
	}
}

// setDefault only sets the value if the key doesn't already exist
func setDefault(k *koanf.Koanf, key string, value interface{}) {
	if !k.Exists(key) {
		k.Set(key, value)
	}
}
