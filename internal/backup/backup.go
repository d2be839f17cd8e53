// Package backup exports the contents of a kv backend to timestamped JSON
// documents next to the data directory and restores them.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/kv"
	"github.com/chronox22/eco-gamer-collective/internal/kv/file"
	"github.com/chronox22/eco-gamer-collective/internal/logger"
)

const (
	// MaxBackups is the maximum number of backups to keep
	MaxBackups = 14
	// BackupDirName is the name of the backup directory
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for backup files
	BackupFilePrefix = constants.AppName + "-"
	// BackupFileSuffix is the suffix for backup files
	BackupFileSuffix = ".json"
)

var timestampFormats = []string{"20060102-1504", "20060102-150405"}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
	Keys      int
}

// Manager handles backup operations
type Manager struct {
	backend   kv.Backend
	backupDir string
	now       func() time.Time
}

// NewManager creates a backup manager for backend keeping files under
// dataDir/backups.
func NewManager(backend kv.Backend, dataDir string) *Manager {
	return &Manager{
		backend:   backend,
		backupDir: filepath.Join(dataDir, BackupDirName),
		now:       time.Now,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup writes every key of the backend to a new backup file.
func (m *Manager) CreateBackup() (BackupInfo, error) {
	return m.createBackup(false)
}

// skipRotation keeps a restore from rotating away the file it restores.
func (m *Manager) createBackup(skipRotation bool) (BackupInfo, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return BackupInfo{}, fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.nextPath()
	if err != nil {
		return BackupInfo{}, err
	}

	dst := file.New(path)
	if err := dst.Init(); err != nil {
		return BackupInfo{}, fmt.Errorf("failed to create backup file: %w", err)
	}
	n, err := kv.Copy(dst, m.backend)
	if err != nil {
		os.Remove(path)
		return BackupInfo{}, fmt.Errorf("failed to backup %s: %w", m.backend.Describe(), err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}

	info := BackupInfo{Path: path, Timestamp: m.now(), Keys: n}
	if st, err := os.Stat(path); err == nil {
		info.Size = st.Size()
	}
	logger.Info("Backup created", "path", path, "keys", n)
	return info, nil
}

// nextPath names a backup after the current minute, adding seconds and then
// a counter when that name is taken.
func (m *Manager) nextPath() (string, error) {
	now := m.now()
	name := func(ts string) string {
		return filepath.Join(m.backupDir, BackupFilePrefix+ts+BackupFileSuffix)
	}

	path := name(now.Format(timestampFormats[0]))
	if !exists(path) {
		return path, nil
	}

	ts := now.Format(timestampFormats[1])
	path = name(ts)
	for counter := 1; exists(path); counter++ {
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = name(fmt.Sprintf("%s-%d", ts, counter))
	}
	return path, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ListBackups returns all available backups, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BackupInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, BackupFileSuffix) {
			continue
		}

		timestamp, ok := parseTimestamp(strings.TrimSuffix(strings.TrimPrefix(name, BackupFilePrefix), BackupFileSuffix))
		if !ok {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		st, err := os.Stat(path)
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{Path: path, Timestamp: timestamp, Size: st.Size()})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseTimestamp accepts YYYYMMDD-HHMM and YYYYMMDD-HHMMSS, optionally
// followed by a -N counter.
func parseTimestamp(s string) (time.Time, bool) {
	if parts := strings.Split(s, "-"); len(parts) == 3 {
		s = parts[0] + "-" + parts[1]
	}
	for _, layout := range timestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup copies every key of the backup into the backend, after
// backing up the backend's current contents. Keys written since the backup
// was taken are kept.
func (m *Manager) RestoreBackup(backupPath string) (int, error) {
	if !exists(backupPath) {
		return 0, fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	src := file.New(backupPath)
	if err := src.Load(); err != nil {
		return 0, fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	current, err := m.createBackup(true)
	if err != nil {
		return 0, fmt.Errorf("failed to backup current data before restore: %w", err)
	}
	logger.Info("Backed up current data before restore", "path", current.Path)

	return kv.Copy(m.backend, src)
}
