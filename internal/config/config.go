package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"quicklaunch/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Directories []string       `toml:"directories"`
	UI          UISettings     `toml:"ui"`
	Ranking     RankingSection `toml:"ranking"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MaxResults int  `toml:"max_results"`
	ShowHidden bool `toml:"show_hidden"`
}

// RankingSection configures the ranking engine
type RankingSection struct {
	NameWeight int    `toml:"name_weight"`
	EmptyQuery string `toml:"empty_query"` // "all" or "none"
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service resolving the default
// config location: $XDG_CONFIG_HOME/quicklaunch/config.toml, falling back
// to ~/.config/quicklaunch/config.toml
func NewConfigService() ConfigService {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "quicklaunch", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default location. A missing file is
// not an error; defaults apply.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cfg)
	return cfg, nil
}

// LoadFromPath loads configuration from a specific path. The path may be a
// config file or a directory containing config.toml.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if info.IsDir() {
		path = filepath.Join(path, "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.Directories) == 0 {
		cfg.Directories = defaultDirectories()
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Directories: cfg.Directories})
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Directories: defaultDirectories(),
		UI: UISettings{
			MaxResults: 50,
			ShowHidden: false,
		},
		Ranking: RankingSection{
			NameWeight: 5,
			EmptyQuery: "all",
		},
	}
}

func defaultDirectories() []string {
	dirs := []string{"/usr/share/applications"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "applications"))
	}
	return dirs
}
