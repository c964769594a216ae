package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the full tada configuration
type Config struct {
	Store StoreConfig `yaml:"store" mapstructure:"store"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
	UI    UIConfig    `yaml:"ui" mapstructure:"ui"`
}

// StoreConfig selects the kv backend the list is persisted in
type StoreConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"` // json | sqlite | memory
	Path   string `yaml:"path" mapstructure:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // console | json
	File   string `yaml:"file" mapstructure:"file"`
}

type UIConfig struct {
	Theme string `yaml:"theme" mapstructure:"theme"` // classic | neon | mono
}

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"

	envPrefix = "TADA"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{Driver: DriverJSON},
		Log:   LogConfig{Level: "info", Format: "console"},
		UI:    UIConfig{Theme: "classic"},
	}
}

// GlobalConfigPath returns the per-user config file location
func GlobalConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tada", "config.yaml")
}

// ProjectConfigPath returns the config file in the working directory
func ProjectConfigPath() string {
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, ".tada.yaml")
}

// Load merges defaults, the global file, the project file (or explicit
// path when given), TADA_* environment variables and bound flags, in that
// order of increasing precedence.
func Load(explicitPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetConfigType("yaml")

	var files []string
	if explicitPath != "" {
		files = []string{explicitPath}
	} else {
		files = []string{GlobalConfigPath(), ProjectConfigPath()}
	}
	for _, p := range files {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) && explicitPath == "" {
				continue
			}
			return nil, fmt.Errorf("config %s: %w", p, err)
		}
		v.SetConfigFile(p)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("config %s: %w", p, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// flagKeys maps config keys to the persistent flag names that override them.
var flagKeys = map[string]string{
	"store.driver": "store",
	"store.path":   "path",
	"log.level":    "log-level",
	"log.file":     "log-file",
	"ui.theme":     "theme",
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("store.driver", d.Store.Driver)
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("ui.theme", d.UI.Theme)
}

// Validate rejects values no component understands
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverJSON, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("store.driver: unknown driver %q (want json, sqlite or memory)", c.Store.Driver)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	return nil
}

// WriteDefault writes the default configuration to path as YAML
func WriteDefault(path string) error {
	b, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	content := "# tada configuration\n" +
		"# store.driver: json (todos.json), sqlite (todos.db) or memory\n" +
		"# Environment overrides: TADA_STORE_DRIVER, TADA_STORE_PATH, TADA_LOG_LEVEL, ...\n" +
		string(b)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
