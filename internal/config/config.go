package config

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/chronox22/eco-gamer-collective/internal/clock"
	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/keyring"
)

// EnvDBConnection overrides storage.dsn for the postgres driver.
const EnvDBConnection = "ECOGAMER_DB_CONNECTION"

// AuthCapability tells consumers whether the hosted identity provider is
// configured. It is resolved once, in AuthConfig.Validate.
type AuthCapability int

const (
	AuthDisabled AuthCapability = iota
	AuthEnabled
)

func (c AuthCapability) String() string {
	if c == AuthEnabled {
		return "enabled"
	}
	return "disabled"
}

// Config represents the application configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Storage  StorageConfig  `yaml:"storage"`
	Auth     AuthConfig     `yaml:"auth"`
	Features FeaturesConfig `yaml:"features"`
	Server   ServerConfig   `yaml:"server"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Storage.Validate(c.App.DataDir); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Features.Validate(); err != nil {
		return fmt.Errorf("features: %w", err)
	}
	return c.Server.Validate()
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Debug    bool   `yaml:"debug"`
	Timezone string `yaml:"timezone"`
	DataDir  string `yaml:"data_dir"`
}

// Validate validates the application configuration.
func (c *AppConfig) Validate() error {
	c.DataDir = ExpandHome(c.DataDir)
	return validation.ValidateStruct(c,
		validation.Field(&c.DataDir, validation.Required),
		validation.Field(&c.Timezone, validation.By(func(value interface{}) error {
			if tz, _ := value.(string); !clock.ValidateTimezone(tz) {
				return fmt.Errorf("unknown timezone %q", tz)
			}
			return nil
		})),
	)
}

// StorageConfig selects and locates the kv backend.
//
// Driver is one of:
//   - "sqlite" (default): Path is the database file.
//   - "postgres": DSN is a connection string without an embedded password.
//     When empty, the connection string stored in the OS keyring is used.
//   - "file": Path is a JSON document.
//   - "memory": nothing is persisted past the process.
type StorageConfig struct {
	Driver constants.StorageDriver `yaml:"driver"`
	Path   string                  `yaml:"path"`
	DSN    string                  `yaml:"dsn"`
}

// Validate validates the storage configuration, filling a default path under dataDir.
func (c *StorageConfig) Validate(dataDir string) error {
	if c.Driver == "" {
		c.Driver = constants.DriverSQLite
	}
	if c.Driver == constants.DriverPostgres {
		if env := os.Getenv(EnvDBConnection); env != "" {
			c.DSN = env
		}
	}
	if c.Path == "" {
		switch c.Driver {
		case constants.DriverSQLite:
			c.Path = filepath.Join(dataDir, constants.DefaultDatabaseFileName)
		case constants.DriverFile:
			c.Path = filepath.Join(dataDir, constants.DefaultFileStoreName)
		}
	}
	c.Path = ExpandHome(c.Path)

	return validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required, validation.In(
			constants.DriverSQLite, constants.DriverPostgres, constants.DriverFile, constants.DriverMemory,
		)),
		validation.Field(&c.Path, validation.When(
			c.Driver == constants.DriverSQLite || c.Driver == constants.DriverFile, validation.Required,
		)),
	)
}

var anonKeyFromKeyring = func() string {
	return keyring.Lookup(keyring.EntryAnonKey, "")
}

// AuthConfig holds the hosted identity provider settings.
//
// Both fields empty disables auth-backed features; both set enables them.
// An empty AnonKey next to a ProviderURL is read from the OS keyring.
type AuthConfig struct {
	ProviderURL string `yaml:"provider_url"`
	AnonKey     string `yaml:"anon_key"`

	Capability AuthCapability `yaml:"-"`
}

// Validate validates the auth configuration and resolves Capability.
func (c *AuthConfig) Validate() error {
	if c.ProviderURL == "" && c.AnonKey == "" {
		c.Capability = AuthDisabled
		return nil
	}
	if c.ProviderURL != "" && c.AnonKey == "" {
		c.AnonKey = anonKeyFromKeyring()
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.ProviderURL, validation.Required, is.URL),
		validation.Field(&c.AnonKey, validation.Required),
	); err != nil {
		return err
	}
	c.Capability = AuthEnabled
	return nil
}

// Enabled returns true when the identity provider is configured.
func (c *AuthConfig) Enabled() bool {
	return c.Capability == AuthEnabled
}

// FeaturesConfig tunes the daily content generators.
//
// With RotateHabits the tracker follows a random DailyHabitCount-sized
// sample of the catalog each day; without it, the five core habits.
type FeaturesConfig struct {
	RotateHabits    bool `yaml:"rotate_habits"`
	DailyHabitCount int  `yaml:"daily_habit_count"`
	MetricVariation int  `yaml:"metric_variation"`
}

// Validate validates the feature configuration.
func (c *FeaturesConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DailyHabitCount, validation.Required, validation.Min(1)),
		validation.Field(&c.MetricVariation, validation.Required, validation.Min(1)),
	)
}

// ServerConfig holds the HTTP presenter settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Validate validates the server configuration.
func (c *ServerConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Addr, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Timezone: "Local",
			DataDir:  constants.DefaultDataDir,
		},
		Storage: StorageConfig{
			Driver: constants.DriverSQLite,
		},
		Features: FeaturesConfig{
			RotateHabits:    true,
			DailyHabitCount: constants.DefaultDailyHabitCount,
			MetricVariation: constants.DefaultMetricVariation,
		},
		Server: ServerConfig{
			Addr: constants.DefaultListenAddr,
		},
	}
}
