package config

const (
	defaultConfigPath      = "~/.config/wiiuid/config.toml"
	defaultLogDir          = "~/.local/share/wiiuid/logs"
	defaultCatalogFallback = "~/.local/share/wiiuid/catalog.db"
	defaultOutputFormat    = "text"
	defaultLogFormat       = "console"
	defaultLogLevel        = "warn"
)

// Output formats accepted by Output.Format.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Catalog: Catalog{
			Path: defaultCatalogPath(),
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
