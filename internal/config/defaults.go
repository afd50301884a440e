package config

const (
	defaultConfigPath = "~/.config/romfilter/config.toml"
	defaultStateDir   = "~/.local/share/romfilter"
	defaultHistoryDB  = "history.db"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Filter: Filter{
			RegionsOrder: []string{"usa", "world", "europe", "japan"},
			ToRemovePatterns: []string{
				`^beta`,
				`^proto`,
				`^demo`,
				`^sample`,
				`^kiosk`,
				`^pirate`,
				`^aftermarket`,
				`^unl$`,
			},
		},
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
