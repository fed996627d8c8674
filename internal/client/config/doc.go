// Package config loads runtime configuration for the catalog client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the catalog gRPC endpoint ("" disables the server)
//	-d string   path of the SQLite cache
//	-p string   path of the preferences file
//	-i int      online status check interval (seconds)
//	-t int      remote request timeout (seconds)
//	-s int      page size
//	-r int      refresh page size
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (console, text, json, zap)
//
// # JSON schema
//
// Durations accept strings like "3s" or integer nanoseconds. Missing keys keep
// the value from the previous stage:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "starwars.db",
//	  "preferences_path": "~/.config/starwars/prefs.toml",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s",
//	  "page_size": 10,
//	  "refresh_page_size": 10,
//	  "log_level": "warn",
//	  "log_format": "console"
//	}
package config
