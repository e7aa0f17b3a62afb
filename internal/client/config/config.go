package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the trace console.
//
// Fields:
//   - APIBaseURL: base URL of the trace-survey REST API (including any /api
//     prefix a local proxy strips before forwarding).
//   - StorePath: location of the credential store file.
//   - DownloadDir: subdirectory (of the working directory) for saved PDFs.
type Config struct {
	APIBaseURL  string
	StorePath   string
	DownloadDir string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api"
	c.StorePath = defaultStorePath()
	c.DownloadDir = "download"
}

func defaultStorePath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "trace-console", "auth.json")
	}
	return filepath.Join(".trace-console", "auth.json")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment (including a .env file), and finally
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
