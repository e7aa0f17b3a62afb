package config

import (
	"encoding/json"
	"os"

	"github.com/csyeteam03/trace-console/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; only fields
// present in the file overlay the runtime Config.
type JsonConfig struct {
	APIBaseURL  *string `json:"api_base_url"`
	StorePath   *string `json:"store_path"`
	DownloadDir *string `json:"download_dir"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. No flag means no JSON stage. Read and unmarshal
// errors panic; LoadConfig runs before any terminal interaction, so a broken
// config file should stop the program immediately.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.StorePath != nil {
		cfg.StorePath = *jc.StorePath
	}
	if jc.DownloadDir != nil {
		cfg.DownloadDir = *jc.DownloadDir
	}
}
