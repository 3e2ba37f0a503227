package storage

import (
	"fmt"
	"github.com/klauspost/compress/gzip"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"tripline/internal/providers"
)

const backupSuffix = ".json.gz"

// Backupper snapshots the previous database file as a gzipped copy before
// each overwrite and keeps only the newest `keep` snapshots around.
type Backupper struct {
	dir    string
	keep   int
	logger providers.Logger
}

func NewBackupper(dir string, keep int, logger providers.Logger) *Backupper {
	return &Backupper{dir: dir, keep: keep, logger: logger}
}

func (b *Backupper) Snapshot(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return err
	}

	name := fmt.Sprintf("%s.%d%s", filepath.Base(path), time.Now().UnixNano(), backupSuffix)
	file, err := os.Create(filepath.Join(b.dir, name))
	if err != nil {
		return err
	}

	zw := gzip.NewWriter(file)
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		file.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	b.logger.Debugf(providers.TypeStore, "Snapshotted %s to %s", path, name)
	return b.prune()
}

// prune removes the oldest snapshots beyond the keep limit. Snapshot names
// embed a nanosecond timestamp, so lexical order is age order.
func (b *Backupper) prune() error {
	if b.keep <= 0 {
		return nil
	}

	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return err
	}

	var snapshots []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), backupSuffix) {
			snapshots = append(snapshots, e.Name())
		}
	}
	if len(snapshots) <= b.keep {
		return nil
	}

	sort.Strings(snapshots)
	for _, name := range snapshots[:len(snapshots)-b.keep] {
		if err := os.Remove(filepath.Join(b.dir, name)); err != nil {
			return err
		}
	}
	return nil
}
