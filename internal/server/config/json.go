package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/politask/politask/internal/flagx"
	"github.com/politask/politask/internal/timex"
)

// JSONConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which
// allows parsing both string values such as "24h" and integer
// nanoseconds. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JSONConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	PublicPaths           []string       `json:"public_paths"`
}

// parseJSON loads configuration values from a JSON file into the
// provided Config instance. The file path comes from the -c or -config
// command-line flags; if neither is set, no JSON file is loaded.
// A non-empty public_paths array replaces the default allow-list.
// An unreadable or invalid file panics.
func parseJSON(config *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JSONConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration)
	}
	if len(c.PublicPaths) > 0 {
		config.PublicPaths = c.PublicPaths
	}
}
