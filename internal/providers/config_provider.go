package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
	"tripline/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "TRIPLINE_LOG_LEVEL")
	viper.BindEnv("persistence.filePath", "TRIPLINE_DB_PATH")
	viper.BindEnv("lookup.baseUrl", "TRIPLINE_LOOKUP_BASE_URL")
	viper.BindEnv("lookup.timeout", "TRIPLINE_LOOKUP_TIMEOUT")
	viper.BindEnv("cache.enabled", "TRIPLINE_CACHE_ENABLED")
	viper.BindEnv("cache.size", "TRIPLINE_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "TravelItineraryManager"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
