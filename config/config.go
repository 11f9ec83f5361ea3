// Package config holds the CLI and environment configuration for the
// Studyport TUI. Fields are filled from flags, environment variables and an
// optional JSON config file by goconfig.
package config

type Config struct {
	BaseURL         string `usage:"Studyport API base URL"`
	Token           string `usage:"bearer token for authenticated endpoints"`
	Profile         string `usage:"named profile for state isolation (~/.studyport/profiles/<name>)"`
	Theme           string `usage:"color theme: auto, dark or light"`
	PollIntervalSec int    `usage:"notification poll interval in seconds (0 disables polling)"`
	NoColor         bool   `usage:"disable ANSI colors"`
	Admin           bool   `usage:"enable the essay-prompt review view"`
	Version         bool   `usage:"show version and exit"`
}

// Default returns the configuration before flags and environment are applied.
func Default() Config {
	return Config{
		BaseURL:         "http://localhost:8080",
		Theme:           "auto",
		PollIntervalSec: 60,
	}
}
