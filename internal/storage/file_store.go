package storage

import (
	"fmt"
	json "github.com/goccy/go-json"
	"os"
	"tripline/internal/models"
	"tripline/internal/providers"
	"tripline/internal/structures"
)

type StoreInterface interface {
	Load() (*models.Document, error)
	Save(doc *models.Document) error
}

// FileStore owns the backing JSON file. Every Load reads the whole document,
// every Save replaces the whole file; there is no in-memory cache between
// calls, so each operation is independently durable once Save returns.
type FileStore struct {
	path    string
	backups *Backupper
	logger  providers.Logger
}

func NewFileStore(conf *structures.Config, logger providers.Logger) (StoreInterface, error) {
	s := &FileStore{
		path:   conf.Persistence.FilePath,
		logger: logger,
	}
	if conf.Backup.Enabled {
		s.backups = NewBackupper(conf.Backup.Dir, conf.Backup.Keep, logger)
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		seed, err := json.MarshalIndent(&models.Document{Trips: []models.Trip{}}, "", "  ")
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(s.path, seed, 0644); err != nil {
			return nil, fmt.Errorf("%w: seed %s: %v", models.ErrStorage, s.path, err)
		}
		logger.Infof(providers.TypeStore, "Seeded empty database at %s", s.path)
	}

	return s, nil
}

func (s *FileStore) Load() (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", models.ErrStorage, s.path, err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", models.ErrStorage, s.path, err)
	}
	return &doc, nil
}

func (s *FileStore) Save(doc *models.Document) error {
	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", models.ErrStorage, err)
	}

	if s.backups != nil {
		if err := s.backups.Snapshot(s.path); err != nil {
			s.logger.Warnf(providers.TypeStore, "Backup snapshot failed: %s", err)
		}
	}

	tmpFile := s.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", models.ErrStorage, tmpFile, err)
	}

	_, err = file.Write(jsonData)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("%w: write %s: %v", models.ErrStorage, tmpFile, err)
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("%w: sync %s: %v", models.ErrStorage, tmpFile, err)
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("%w: close %s: %v", models.ErrStorage, tmpFile, err)
	}

	if err = os.Rename(tmpFile, s.path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", models.ErrStorage, tmpFile, err)
	}
	return nil
}
