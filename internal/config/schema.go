package config

// Config holds promptgen configuration.
// Stored at: ~/.promptgen/config.yaml
type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Store    StoreConfig    `mapstructure:"store" yaml:"store"`
	Manage   ManageConfig   `mapstructure:"manage" yaml:"manage"`
	Rankings RankingsConfig `mapstructure:"rankings" yaml:"rankings"`
	Seed     SeedConfig     `mapstructure:"seed" yaml:"seed"`
}

// ServerConfig holds the HTTP server listen address.
type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// StoreConfig holds the record store container configuration.
type StoreConfig struct {
	// ContainerName is the Docker container name (default: promptgen-store)
	ContainerName string `mapstructure:"container_name" yaml:"container_name"`
	// Image is the Docker image to use (default: sourcenetwork/defradb:latest)
	Image string `mapstructure:"image" yaml:"image"`
	// Port is the host port to bind (default: 9181)
	Port string `mapstructure:"port" yaml:"port"`
	// URL overrides the container-derived store URL when set, for pointing at
	// an externally managed store.
	URL string `mapstructure:"url" yaml:"url"`
}

// ManageConfig gates the theme-management surface.
type ManageConfig struct {
	// Secret is the management gate passphrase. A UI gate only; the value
	// ships to clients and is not a security boundary. Supports ${ENV_VAR}.
	Secret string `mapstructure:"secret" yaml:"secret"`
}

// RankingsConfig controls the top-N usage ranking.
type RankingsConfig struct {
	// Limit is the default number of themes in the ranking (default: 3).
	Limit int `mapstructure:"limit" yaml:"limit"`
}

// SeedConfig controls first-run seeding of starter themes.
type SeedConfig struct {
	// Enabled inserts the built-in starter themes when the store is empty.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Store: StoreConfig{
			ContainerName: "promptgen-store",
			Image:         "sourcenetwork/defradb:latest",
			Port:          "9181",
		},
		Manage: ManageConfig{
			Secret: "0411",
		},
		Rankings: RankingsConfig{
			Limit: 3,
		},
		Seed: SeedConfig{
			Enabled: true,
		},
	}
}

// StoreURL returns the record store base URL, preferring an explicit override.
func (c *Config) StoreURL() string {
	if c.Store.URL != "" {
		return c.Store.URL
	}
	return "http://localhost:" + c.Store.Port
}

// ManageSecret returns the management gate secret with ${ENV_VAR} references
// resolved.
func (c *Config) ManageSecret() string {
	return ResolveEnvVars(c.Manage.Secret)
}

// DefaultRankingLimit is the top-N size used when no limit is configured.
const DefaultRankingLimit = 3

// RankingLimit returns the configured top-N limit, falling back to the
// default when unset or nonsensical.
func (c *Config) RankingLimit() int {
	if c.Rankings.Limit <= 0 {
		return DefaultRankingLimit
	}
	return c.Rankings.Limit
}
