package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chronox22/eco-gamer-collective/internal/constants"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.DataDir = t.TempDir()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Storage.Driver != constants.DriverSQLite {
		t.Errorf("driver = %q, want sqlite", cfg.Storage.Driver)
	}
	want := filepath.Join(cfg.App.DataDir, constants.DefaultDatabaseFileName)
	if cfg.Storage.Path != want {
		t.Errorf("path = %q, want %q", cfg.Storage.Path, want)
	}
	if cfg.Auth.Enabled() {
		t.Error("auth should be disabled by default")
	}
}

func TestAuthCapability(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AuthConfig
		keyring string
		want    AuthCapability
		wantErr string
	}{
		{name: "unset disables", cfg: AuthConfig{}, want: AuthDisabled},
		{name: "both set enables", cfg: AuthConfig{ProviderURL: "https://abc.supabase.co", AnonKey: "anon"}, want: AuthEnabled},
		{name: "key without url", cfg: AuthConfig{AnonKey: "anon"}, wantErr: "ProviderURL"},
		{name: "url without key", cfg: AuthConfig{ProviderURL: "https://abc.supabase.co"}, wantErr: "AnonKey"},
		{name: "url with key from keyring", cfg: AuthConfig{ProviderURL: "https://abc.supabase.co"}, keyring: "anon", want: AuthEnabled},
		{name: "malformed url", cfg: AuthConfig{ProviderURL: "not a url", AnonKey: "anon"}, wantErr: "ProviderURL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := anonKeyFromKeyring
			anonKeyFromKeyring = func() string { return tt.keyring }
			t.Cleanup(func() { anonKeyFromKeyring = saved })

			err := tt.cfg.Validate()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Validate() error = %v, want mention of %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if tt.cfg.Capability != tt.want {
				t.Errorf("Capability = %v, want %v", tt.cfg.Capability, tt.want)
			}
		})
	}
}

func TestStorageConfig(t *testing.T) {
	t.Run("postgres without dsn defers to keyring", func(t *testing.T) {
		t.Setenv(EnvDBConnection, "")
		cfg := StorageConfig{Driver: constants.DriverPostgres}
		if err := cfg.Validate(t.TempDir()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Path != "" {
			t.Errorf("postgres should not get a file path, got %q", cfg.Path)
		}
	})

	t.Run("postgres dsn from env", func(t *testing.T) {
		t.Setenv(EnvDBConnection, "postgres://eco@localhost:5432/eco")
		cfg := StorageConfig{Driver: constants.DriverPostgres}
		if err := cfg.Validate(t.TempDir()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DSN != "postgres://eco@localhost:5432/eco" {
			t.Errorf("DSN = %q", cfg.DSN)
		}
	})

	t.Run("file gets default path", func(t *testing.T) {
		dir := t.TempDir()
		cfg := StorageConfig{Driver: constants.DriverFile}
		if err := cfg.Validate(dir); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Path != filepath.Join(dir, constants.DefaultFileStoreName) {
			t.Errorf("Path = %q", cfg.Path)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := StorageConfig{Driver: "redis"}
		if err := cfg.Validate(t.TempDir()); err == nil {
			t.Fatal("expected error for unknown driver")
		}
	})
}

func TestLoadExpandsEnvironment(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("ECO_TEST_DATA_DIR", dataDir)

	path := writeConfig(t, `
app:
  timezone: UTC
  data_dir: ${ECO_TEST_DATA_DIR}
storage:
  driver: memory
features:
  daily_habit_count: 3
  metric_variation: 5
`)

	cfg := NewDefaultConfig()
	if err := Load(path, cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.App.DataDir != dataDir {
		t.Errorf("DataDir = %q, want %q", cfg.App.DataDir, dataDir)
	}
	if cfg.Features.DailyHabitCount != 3 {
		t.Errorf("DailyHabitCount = %d, want 3", cfg.Features.DailyHabitCount)
	}
	if cfg.Server.Addr != constants.DefaultListenAddr {
		t.Errorf("Server.Addr default lost: %q", cfg.Server.Addr)
	}
}

func TestLoadRejectsInvalidTimezone(t *testing.T) {
	path := writeConfig(t, "app:\n  timezone: Mars/Olympus\n")
	cfg := NewDefaultConfig()
	cfg.App.DataDir = t.TempDir()
	if err := Load(path, cfg); err == nil {
		t.Fatal("expected validation error for unknown timezone")
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.DataDir = t.TempDir()
	if err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"), cfg); err != nil {
		t.Fatalf("LoadOrDefault should accept a missing file: %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("ECO_TEST_DOTENV=loaded\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ECO_TEST_DOTENV", "")
	os.Unsetenv("ECO_TEST_DOTENV")

	if err := LoadDotEnv(envFile, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	if got := os.Getenv("ECO_TEST_DOTENV"); got != "loaded" {
		t.Errorf("ECO_TEST_DOTENV = %q, want %q", got, "loaded")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x/y"); got != filepath.Join(home, "x", "y") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome() changed an absolute path: %q", got)
	}
}
