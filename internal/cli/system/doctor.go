package system

import (
	"encoding/json"
	"fmt"

	"github.com/chronox22/eco-gamer-collective/internal/cli"
	"github.com/chronox22/eco-gamer-collective/internal/clock"
	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/daily"
	"github.com/chronox22/eco-gamer-collective/internal/keyring"
	"github.com/chronox22/eco-gamer-collective/internal/kv"
)

// DailyKeys lists every key that holds a dated snapshot.
var DailyKeys = []string{
	constants.KeyHabits,
	constants.KeyDailyHabits,
	constants.KeyDashboardMetrics,
	constants.KeyWordOfTheDay,
	constants.KeyVerseOfTheDay,
}

type DoctorCmd struct {
	Date string `help:"Check snapshots against this day (YYYY-MM-DD) instead of today."`
}

// day resolves the day identity snapshots are compared with.
func (cmd *DoctorCmd) day(ctx *cli.Context) (string, error) {
	if cmd.Date == "" {
		return ctx.Clock.Today(), nil
	}
	t, err := clock.ParseDateInLocation(cmd.Date, ctx.Clock.Location())
	if err != nil {
		return "", fmt.Errorf("invalid --date %q, expected YYYY-MM-DD: %w", cmd.Date, err)
	}
	return clock.DayIdentity(t), nil
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	day, err := cmd.day(ctx)
	if err != nil {
		return err
	}

	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false

	reachable := true
	if err := ctx.Backend.Load(); err != nil {
		ctx.Printf("❌ Storage reachable (%s): FAIL\n", ctx.Backend.Describe())
		ctx.Printf("   Error: %v\n", err)
		hasError = true
		reachable = false
	} else {
		ctx.Printf("✓ Storage reachable (%s): OK\n", ctx.Backend.Describe())
	}

	if reachable {
		statuses, err := InspectSnapshots(ctx.Backend, day)
		if err != nil {
			ctx.Printf("❌ Daily snapshots: FAIL\n")
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			corrupt := 0
			for _, s := range statuses {
				if s.State == SnapshotCorrupt {
					corrupt++
				}
			}
			if corrupt > 0 {
				// corrupt snapshots are regenerated on next read
				ctx.Printf("⚠ Daily snapshots: WARNING\n")
			} else {
				ctx.Printf("✓ Daily snapshots: OK\n")
			}
			for _, s := range statuses {
				ctx.Printf("   %-18s %s\n", s.Key, s)
			}
		}
	} else {
		ctx.Printf("⊘ Daily snapshots: SKIPPED (storage not reachable)\n")
	}

	loc := ctx.Clock.Location()
	if loc == nil {
		ctx.Printf("❌ Clock/timezone: FAIL\n")
		hasError = true
	} else {
		ctx.Printf("✓ Clock/timezone: OK (%s, today is %s)\n", loc, ctx.Clock.Today())
	}

	if keyring.IsAvailable() {
		ctx.Printf("✓ OS keyring: OK\n")
	} else {
		ctx.Printf("⚠ OS keyring: WARNING\n")
		ctx.Printf("   Secrets must come from the config file or environment\n")
	}

	ctx.Printf("ℹ Auth capability: %s\n", ctx.Config.Auth.Capability)

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

// SnapshotState classifies a stored daily snapshot against today.
type SnapshotState int

const (
	SnapshotAbsent SnapshotState = iota
	SnapshotCurrent
	SnapshotStale
	SnapshotCorrupt
)

// SnapshotStatus describes one daily key.
type SnapshotStatus struct {
	Key   string
	State SnapshotState
	Date  string
	Err   error
}

func (s SnapshotStatus) String() string {
	switch s.State {
	case SnapshotCurrent:
		return "current"
	case SnapshotStale:
		return fmt.Sprintf("stale (%s), regenerated on next read", s.Date)
	case SnapshotCorrupt:
		return fmt.Sprintf("corrupt, regenerated on next read (%v)", s.Err)
	default:
		return "absent"
	}
}

// InspectSnapshots reads every daily key straight from backend.
func InspectSnapshots(backend kv.Backend, today string) ([]SnapshotStatus, error) {
	statuses := make([]SnapshotStatus, 0, len(DailyKeys))
	for _, key := range DailyKeys {
		raw, ok, err := backend.Get(key)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", key, err)
		}

		status := SnapshotStatus{Key: key}
		if ok {
			snap, err := daily.Decode[map[string]json.RawMessage](raw)
			switch {
			case err != nil:
				status.State = SnapshotCorrupt
				status.Err = err
			case snap.Date == today:
				status.State = SnapshotCurrent
				status.Date = snap.Date
			default:
				status.State = SnapshotStale
				status.Date = snap.Date
			}
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
