// Package config loads runtime configuration for the canteen CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-d string   path of the local sqlite credential store
//	-t int      request timeout (seconds)
//	-p int      order status poll interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://127.0.0.1:8000/api",
//	  "database_path": "canteen.db",
//	  "request_timeout": "15s",
//	  "poll_interval": "5s"
//	}
//
// Primary API
//
//   - type Config                     — holds BaseURL, DatabasePath, RequestTimeout and PollInterval
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
