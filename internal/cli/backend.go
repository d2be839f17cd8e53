package cli

import (
	"errors"
	"fmt"

	"github.com/chronox22/eco-gamer-collective/internal/config"
	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/keyring"
	"github.com/chronox22/eco-gamer-collective/internal/kv"
	"github.com/chronox22/eco-gamer-collective/internal/kv/file"
	"github.com/chronox22/eco-gamer-collective/internal/kv/memory"
	"github.com/chronox22/eco-gamer-collective/internal/kv/postgres"
	"github.com/chronox22/eco-gamer-collective/internal/kv/sqlite"
)

// ErrNoConnectionString is returned for the postgres driver when neither the
// config, the environment nor the keyring provides a connection string.
var ErrNoConnectionString = errors.New("no postgres connection string configured")

// OpenBackend constructs, without loading, the backend named by cfg.
func OpenBackend(cfg config.StorageConfig) (kv.Backend, error) {
	switch cfg.Driver {
	case constants.DriverSQLite, "":
		return sqlite.NewStore(cfg.Path), nil
	case constants.DriverPostgres:
		dsn, err := postgresDSN(cfg.DSN)
		if err != nil {
			return nil, err
		}
		return postgres.New(dsn), nil
	case constants.DriverFile:
		return file.New(cfg.Path), nil
	case constants.DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// postgresDSN prefers the configured connection string, which must not carry
// a password, and falls back to the one stored in the keyring.
func postgresDSN(configured string) (string, error) {
	if configured != "" {
		if err := postgres.ValidateConnString(configured); err != nil {
			return "", err
		}
		return configured, nil
	}

	dsn, err := keyring.Get(keyring.EntryDatabase)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w: set storage.dsn, %s, or run '%s keyring set'",
				ErrNoConnectionString, config.EnvDBConnection, constants.AppName)
		}
		return "", err
	}
	return dsn, nil
}
