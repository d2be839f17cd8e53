package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chronox22/eco-gamer-collective/internal/kv/memory"
)

// steppingClock advances one minute per call.
func steppingClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func setupTestManager(t *testing.T) (*Manager, *memory.Store) {
	t.Helper()

	backend := memory.New()
	for k, v := range map[string]string{
		"habits":    `{"date":"Mon Jan 01 2024","completed":{"biking":true}}`,
		"onboarded": "true",
	} {
		if err := backend.Set(k, v); err != nil {
			t.Fatalf("Set(%s) failed: %v", k, err)
		}
	}

	mgr := NewManager(backend, t.TempDir())
	mgr.now = steppingClock(time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local))
	return mgr, backend
}

func TestCreateBackup(t *testing.T) {
	mgr, _ := setupTestManager(t)

	info, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if _, err := os.Stat(info.Path); os.IsNotExist(err) {
		t.Fatalf("backup file was not created: %s", info.Path)
	}
	if info.Keys != 2 {
		t.Errorf("Keys = %d, want 2", info.Keys)
	}
	if filepath.Dir(info.Path) != mgr.GetBackupDir() {
		t.Errorf("backup written to %s, want %s", filepath.Dir(info.Path), mgr.GetBackupDir())
	}
	if got := filepath.Base(info.Path); got != "ecogamer-20240101-0901.json" {
		t.Errorf("backup name = %s", got)
	}
}

func TestCreateBackupSameMinute(t *testing.T) {
	mgr, _ := setupTestManager(t)
	fixed := time.Date(2024, time.January, 1, 9, 0, 30, 0, time.Local)
	mgr.now = func() time.Time { return fixed }

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		info, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		if seen[info.Path] {
			t.Fatalf("backup path reused: %s", info.Path)
		}
		seen[info.Path] = true
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Errorf("ListBackups returned %d backups, want 3", len(backups))
	}
}

func TestListBackups(t *testing.T) {
	mgr, _ := setupTestManager(t)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups before the first one, got %d", len(backups))
	}

	for i := 0; i < 3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup failed: %v", err)
		}
	}
	// unrelated files are ignored
	if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for i := 0; i < len(backups)-1; i++ {
		if backups[i].Timestamp.Before(backups[i+1].Timestamp) {
			t.Errorf("backups not sorted newest first: %v before %v", backups[i].Timestamp, backups[i+1].Timestamp)
		}
	}
}

func TestRotateBackups(t *testing.T) {
	mgr, _ := setupTestManager(t)

	for i := 0; i < MaxBackups+3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup failed: %v", err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	mgr, backend := setupTestManager(t)

	info, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if err := backend.Set("habits", `{"date":"Tue Jan 02 2024","completed":{}}`); err != nil {
		t.Fatal(err)
	}
	if err := backend.Delete("onboarded"); err != nil {
		t.Fatal(err)
	}

	n, err := mgr.RestoreBackup(info.Path)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if n != 2 {
		t.Errorf("restored %d keys, want 2", n)
	}

	got, _, _ := backend.Get("habits")
	if got != `{"date":"Mon Jan 01 2024","completed":{"biking":true}}` {
		t.Errorf("habits after restore = %s", got)
	}
	if _, ok, _ := backend.Get("onboarded"); !ok {
		t.Error("onboarded not restored")
	}

	// the pre-restore state was kept
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 2 {
		t.Errorf("expected a safety backup before restore, got %d backups", len(backups))
	}
}

func TestRestoreBackupInvalid(t *testing.T) {
	mgr, _ := setupTestManager(t)

	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("restoring a missing file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(bad); err == nil {
		t.Error("restoring a corrupt file should fail")
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want time.Time
	}{
		{"20240101-0930", true, time.Date(2024, 1, 1, 9, 30, 0, 0, time.Local)},
		{"20240101-093015", true, time.Date(2024, 1, 1, 9, 30, 15, 0, time.Local)},
		{"20240101-093015-2", true, time.Date(2024, 1, 1, 9, 30, 15, 0, time.Local)},
		{"yesterday", false, time.Time{}},
	}
	for _, tt := range tests {
		got, ok := parseTimestamp(tt.in)
		if ok != tt.ok || !got.Equal(tt.want) {
			t.Errorf("parseTimestamp(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
