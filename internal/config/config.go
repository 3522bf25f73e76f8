package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	BackendSQLite   = "sqlite"
	BackendJSONFile = "jsonfile"
)

// StaticPrefix is the public URL prefix under which uploaded media is served.
const StaticPrefix = "/static"

type Config struct {
	Addr           string        `yaml:"addr"`
	Backend        string        `yaml:"backend"`
	DatabasePath   string        `yaml:"database_path"`
	StoragePath    string        `yaml:"storage_path"`
	MediaDir       string        `yaml:"media_dir"`
	JWTSecret      string        `yaml:"jwt_secret"`
	APITimeout     time.Duration `yaml:"timeout"`
	TokenDuration  time.Duration `yaml:"token_duration"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:           getEnv("WORKSHOP_ADDR", ":8080"),
		Backend:        getEnv("WORKSHOP_BACKEND", BackendSQLite),
		DatabasePath:   getEnv("WORKSHOP_DATABASE_PATH", "workshop.db"),
		StoragePath:    getEnv("WORKSHOP_STORAGE_PATH", "storage.json"),
		MediaDir:       getEnv("WORKSHOP_MEDIA_DIR", "static"),
		JWTSecret:      getEnv("WORKSHOP_JWT_SECRET", "supersecretkey"),
		APITimeout:     15 * time.Second,
		TokenDuration:  1 * time.Hour,
		MaxUploadBytes: 50 << 20,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Backend != BackendSQLite && cfg.Backend != BackendJSONFile {
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
