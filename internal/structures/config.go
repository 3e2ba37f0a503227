package structures

import "time"

type Persistence struct {
	FilePath string `yaml:"filePath" validate:"required|unixPath"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type LookupConfig struct {
	BaseURL  string        `yaml:"baseUrl" validate:"required|fullUrl"`
	Timeout  time.Duration `yaml:"timeout" validate:"required|min:1"`
	CacheTTL time.Duration `yaml:"cacheTTL"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type BackupConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Keep    int    `yaml:"keep"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Persistence Persistence  `yaml:"persistence"`
	Logger      LoggerConfig `yaml:"logger"`
	Lookup      LookupConfig `yaml:"lookup"`
	Cache       CacheConfig  `yaml:"cache"`
	Backup      BackupConfig `yaml:"backup"`
}

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}
