package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultPath is the config file looked up in the working directory when no
// --config flag is given.
const DefaultPath = "vscode2helix.config"

// EnvPrefix prefixes environment overrides, e.g. VSCODE2HELIX_LISTEN_ADDR.
const EnvPrefix = "VSCODE2HELIX"

type Config struct {
	ListenAddr      string        `mapstructure:"listen_addr" validate:"required,hostname_port|tcp_addr"`
	LogLevel        string        `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	LogHuman        bool          `mapstructure:"log_human"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes" validate:"gt=0"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	WatchInterval   time.Duration `mapstructure:"watch_interval" validate:"gt=0"`
}

func Default() Config {
	return Config{
		ListenAddr:      "127.0.0.1:8080",
		LogLevel:        "info",
		LogHuman:        true,
		MaxBodyBytes:    1 << 20,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		WatchInterval:   time.Second,
	}
}

// fields renders the config the way it is stored on disk; durations are
// written as strings ("10s") rather than nanoseconds.
func (c Config) fields() map[string]any {
	return map[string]any{
		"listen_addr":      c.ListenAddr,
		"log_level":        c.LogLevel,
		"log_human":        c.LogHuman,
		"max_body_bytes":   c.MaxBodyBytes,
		"read_timeout":     c.ReadTimeout.String(),
		"write_timeout":    c.WriteTimeout.String(),
		"shutdown_timeout": c.ShutdownTimeout.String(),
		"watch_interval":   c.WatchInterval.String(),
	}
}

// Load layers defaults, the JSON config file, and VSCODE2HELIX_* environment
// variables. An empty path looks for DefaultPath and tolerates its absence;
// an explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	for key, value := range Default().fields() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigType("json")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// Save writes cfg as JSON to path, replacing any existing file atomically.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg.fields()); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
