// Config loading for the fieldsync CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/zylem/fieldsync/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir         = "data_dir"
	cfgKeyDatabaseName    = "database_name"
	cfgKeyDatabaseVersion = "database_version"

	defaultDataDir         = ".fieldsync-db"
	defaultDatabaseName    = "fieldsync"
	defaultDatabaseVersion = 1
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# fieldsync CLI configuration

# Data directory for the database image (overridable by --data-dir)
# data_dir: .fieldsync-db

# Database image name
database_name: fieldsync

# Bumping the version discards the local image on next open
database_version: 1
`

// loadConfig reads config.yaml from the config directory and folds in flag
// overrides. A missing config.yaml is created with defaults on first run.
func loadConfig() (types.Config, error) {
	configDir := flagConfigDir
	if configDir == "" {
		configDir = ".fieldsync"
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDataDir, defaultDataDir)
	v.SetDefault(cfgKeyDatabaseName, defaultDatabaseName)
	v.SetDefault(cfgKeyDatabaseVersion, defaultDatabaseVersion)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		DataDir:         v.GetString(cfgKeyDataDir),
		DatabaseName:    v.GetString(cfgKeyDatabaseName),
		DatabaseVersion: v.GetInt(cfgKeyDatabaseVersion),
		InMemory:        flagInMemory,
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	return cfg, nil
}

// ensureDefaultConfigFile creates a default config.yaml if absent.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
