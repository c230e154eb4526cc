package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port            int
	UpstreamURL     string
	UpstreamTimeout time.Duration
	MediaPath       string
	DataDir         string
	WebDir          string
	SessionSecret   string
	SessionMaxAge   int
}

// Load reads PANEL_* variables, after loading an optional .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to read .env: %v", err)
	}

	v := viper.New()
	v.SetEnvPrefix("panel")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 8090)
	v.SetDefault("upstream_url", "http://localhost:8000")
	v.SetDefault("upstream_timeout", 15*time.Second)
	v.SetDefault("media_path", "/media/")
	v.SetDefault("data_dir", "./data")
	v.SetDefault("web_dir", "")
	v.SetDefault("session_secret", "change-me-in-production-32bytes!")
	v.SetDefault("session_max_age", 86400) // 24 hours

	cfg := &Config{
		Port:            v.GetInt("port"),
		UpstreamURL:     strings.TrimRight(v.GetString("upstream_url"), "/"),
		UpstreamTimeout: v.GetDuration("upstream_timeout"),
		MediaPath:       v.GetString("media_path"),
		DataDir:         v.GetString("data_dir"),
		WebDir:          v.GetString("web_dir"),
		SessionSecret:   v.GetString("session_secret"),
		SessionMaxAge:   v.GetInt("session_max_age"),
	}

	if !strings.HasSuffix(cfg.MediaPath, "/") {
		cfg.MediaPath += "/"
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Printf("Failed to create data directory %s: %v", cfg.DataDir, err)
	}

	return cfg
}
