package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chronox22/eco-gamer-collective/internal/cli"
	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/kv"
	"github.com/chronox22/eco-gamer-collective/internal/kv/file"
	"github.com/chronox22/eco-gamer-collective/internal/kv/postgres"
	"github.com/chronox22/eco-gamer-collective/internal/kv/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing local storage before initialization."`
	Source string `help:"Source database path, JSON file or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Backend.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized %s storage at: %s\n", constants.AppName, ctx.Backend.Describe())

	if c.Source != "" {
		ctx.Printf("Copying data from: %s\n", c.Source)
		n, err := c.copyFrom(ctx, c.Source)
		if err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		ctx.Printf("  Copied %d keys\n", n)
	}
	return nil
}

// reset removes the local database or JSON file. Remote backends are left
// alone.
func (c *InitCmd) reset(ctx *cli.Context) error {
	driver := ctx.Config.Storage.Driver
	if driver != constants.DriverSQLite && driver != constants.DriverFile {
		return nil
	}
	path := ctx.Config.Storage.Path

	if c.Source != "" {
		absPath, err := filepath.Abs(path)
		if err == nil {
			path = absPath
		}
		absSource, err := filepath.Abs(c.Source)
		if err == nil && absSource == path {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := ctx.Backend.Close(); err != nil {
			return fmt.Errorf("failed to close existing storage: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to delete existing storage: %w", err)
		}
		ctx.Printf("Deleted existing storage at: %s\n", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to access existing storage: %w", err)
	}
	return nil
}

func (c *InitCmd) copyFrom(ctx *cli.Context, source string) (int, error) {
	src, err := sourceBackend(source)
	if err != nil {
		return 0, err
	}
	if err := src.Load(); err != nil {
		return 0, fmt.Errorf("failed to load source: %w", err)
	}
	defer src.Close()

	return kv.Copy(ctx.Backend, src)
}

func sourceBackend(source string) (kv.Backend, error) {
	switch {
	case strings.HasPrefix(source, "postgres://"), strings.HasPrefix(source, "postgresql://"),
		strings.Contains(source, "host="):
		if err := postgres.ValidateConnString(source); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return nil, err
		}
		return postgres.New(source), nil
	case strings.HasSuffix(source, ".json"):
		return file.New(source), nil
	default:
		return sqlite.NewStore(source), nil
	}
}
