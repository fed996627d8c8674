package config

import "time"

// Config holds runtime settings for the catalog client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the catalog gRPC endpoint. Empty means
//     no server; connectivity is then driven by the offline/online commands.
//   - DatabasePath: SQLite file of the local cache.
//   - PreferencesPath: TOML file with display preferences.
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - RequestTimeout: deadline of a single remote call.
//   - PageSize, RefreshPageSize: remote page sizes of the pagers and of a refresh.
//   - LogLevel, LogFormat: see logging.New.
type Config struct {
	ServerEndpointAddr  string
	DatabasePath        string
	PreferencesPath     string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	PageSize            int
	RefreshPageSize     int
	LogLevel            string
	LogFormat           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "starwars.db"
	c.PreferencesPath = "~/.config/starwars/prefs.toml"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.PageSize = 10
	c.RefreshPageSize = 10
	c.LogLevel = "warn"
	c.LogFormat = "console"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
