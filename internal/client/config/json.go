package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/folio/internal/flagx"
	"github.com/dmitrijs2005/folio/internal/timex"
	"gopkg.in/yaml.v3"
)

// JsonConfig is the on-disk shape of the config file. Fields left out of
// the file keep whatever value the earlier stages put in Config.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_base_url" yaml:"api_base_url"`
	StoragePath    string          `json:"storage_path" yaml:"storage_path"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	RetryAttempts  *int            `json:"retry_attempts" yaml:"retry_attempts"`
	LogLevel       string          `json:"log_level" yaml:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config in args. Files
// ending in .yaml or .yml are read as YAML, anything else as JSON.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &jc)
	default:
		err = json.Unmarshal(data, &jc)
	}
	if err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RetryAttempts != nil {
		cfg.RetryAttempts = *jc.RetryAttempts
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
