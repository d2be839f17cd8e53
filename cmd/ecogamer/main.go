package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/chronox22/eco-gamer-collective/internal/cli"
	"github.com/chronox22/eco-gamer-collective/internal/cli/backups"
	"github.com/chronox22/eco-gamer-collective/internal/cli/system"
	"github.com/chronox22/eco-gamer-collective/internal/cli/welcome"
	"github.com/chronox22/eco-gamer-collective/internal/config"
	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/errors"
	"github.com/chronox22/eco-gamer-collective/internal/logger"
	"github.com/chronox22/eco-gamer-collective/internal/session"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Log at debug level and mirror logs to stderr."`

	Init     system.InitCmd      `cmd:"" help:"Initialize ecogamer storage."`
	Doctor   system.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Serve    system.ServeCmd     `cmd:"" help:"Serve today's state as JSON over HTTP."`
	Keyring  system.KeyringCmd   `cmd:"" help:"Manage secrets in the OS keyring."`
	Today    cli.TodayCmd        `cmd:"" help:"Show today's habits, metrics, word and verse."`
	Habit    cli.HabitCmd        `cmd:"" help:"Track today's eco habits."`
	Metrics  cli.MetricsCmd      `cmd:"" help:"Show today's dashboard metrics."`
	Word     cli.WordCmd         `cmd:"" help:"Show the word of the day."`
	Verse    cli.VerseCmd        `cmd:"" help:"Show the verse of the day."`
	Remind   cli.RemindCmd       `cmd:"" help:"Show an eco reminder."`
	Learn    cli.LearnCmd        `cmd:"" help:"Browse sustainability articles."`
	Onboard  welcome.OnboardCmd  `cmd:"" help:"Walk through the welcome slides."`
	Tutorial welcome.TutorialCmd `cmd:"" help:"Take the guided tour."`
}

// skipLoad lists commands that manage storage or secrets themselves, or
// never touch it.
var skipLoad = map[string]bool{
	"init":    true,
	"doctor":  true,
	"keyring": true,
	"learn":   true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily eco habits, metrics and words to live by"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	cfg, err := loadConfig(config.ExpandHome(CLI.Config))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.Format(err))
		os.Exit(1)
	}

	flags := session.Start()
	defer flags.Close()

	if err := logger.Init(logger.Config{
		Debug:   cfg.App.Debug,
		DataDir: cfg.App.DataDir,
		Session: flags.ID(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	logger.Debug("Session started")

	appCtx, err := cli.Open(cfg, flags, needsStore(ctx.Selected()))
	if err != nil {
		errors.Fatal(err)
	}
	defer appCtx.Close()

	if appCtx.LoadErr != nil {
		fmt.Fprintf(os.Stderr, "⚠ Storage unavailable: %v\n  Today's values will not be saved.\n", appCtx.LoadErr)
	}

	if err := ctx.Run(appCtx); err != nil {
		appCtx.Close()
		flags.Close()
		errors.Fatal(err)
	}
}

func needsStore(n *kong.Node) bool {
	for ; n != nil; n = n.Parent {
		if skipLoad[n.Name] {
			return false
		}
	}
	return true
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if err := config.LoadDotEnv(".env", filepath.Join(config.ExpandHome(constants.DefaultDataDir), ".env")); err != nil {
		return nil, err
	}
	if err := config.LoadOrDefault(path, cfg); err != nil {
		return nil, err
	}
	if CLI.Debug {
		cfg.App.Debug = true
	}
	return cfg, nil
}
