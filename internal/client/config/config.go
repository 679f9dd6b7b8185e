package config

import "time"

// Config holds runtime settings for the canteen CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: path of the local sqlite credential store.
//   - PollInterval: how often order tracking polls the status endpoint.
//
// Units: RequestTimeout and PollInterval are time.Duration values.
type Config struct {
	BaseURL        string
	DatabasePath   string
	RequestTimeout time.Duration
	PollInterval   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000/api"
	c.DatabasePath = "canteen.db"
	c.RequestTimeout = 15 * time.Second
	c.PollInterval = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (optionally seeded from a .env file), a JSON file (if
// present) and command-line flags (if present). Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
