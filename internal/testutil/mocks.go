package testutil

import (
	"context"
	"sync"

	json "github.com/goccy/go-json"

	"tripline/internal/models"
	"tripline/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockStore implements storage.StoreInterface against an in-memory document.
// Load hands out a deep copy each time, matching the real store's
// read-the-whole-file-per-call behavior.
type MockStore struct {
	mu        sync.Mutex
	Doc       models.Document
	LoadErr   error
	SaveErr   error
	SaveCount int
}

func (m *MockStore) Load() (*models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	data, err := json.Marshal(&m.Doc)
	if err != nil {
		return nil, err
	}
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (m *MockStore) Save(doc *models.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var copied models.Document
	if err := json.Unmarshal(data, &copied); err != nil {
		return err
	}
	m.Doc = copied
	m.SaveCount++
	return nil
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockDestinationService implements services.DestinationServiceInterface
// with a canned response.
type MockDestinationService struct {
	mu      sync.Mutex
	Info    models.DestinationInfo
	Err     error
	Lookups []string
}

func (m *MockDestinationService) Lookup(_ context.Context, country string) (models.DestinationInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Lookups = append(m.Lookups, country)
	if m.Err != nil {
		return models.DestinationInfo{}, m.Err
	}
	return m.Info, nil
}
