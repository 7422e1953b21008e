/*
Package config manages TOML configuration for prefixtrie-based tools,
the construction and query defaults the CLI falls back to when a flag
isn't given explicitly.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/prefixtrie/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure.
type Config struct {
	Trie   TrieConfig   `toml:"trie"`
	Loader LoaderConfig `toml:"loader"`
	CLI    CliConfig    `toml:"cli"`
}

// TrieConfig controls how a Trie is constructed.
type TrieConfig struct {
	Mutable            bool `toml:"mutable"`
	AllowIndels        bool `toml:"allow_indels"`
	DefaultBudget      int  `toml:"default_budget"`
	DefaultMinMatchLen int  `toml:"default_min_match_len"`
}

// LoaderConfig controls bulk construction from a source file.
type LoaderConfig struct {
	ChunkSize int `toml:"chunk_size"`
}

// CliConfig holds CLI-specific defaults.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/prefixtrie
// 2. ~/Library/Application Support/prefixtrie (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "prefixtrie")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "prefixtrie")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/prefixtrie/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Trie: TrieConfig{
			Mutable:            false,
			AllowIndels:        false,
			DefaultBudget:      0,
			DefaultMinMatchLen: 1,
		},
		Loader: LoaderConfig{
			ChunkSize: 10000,
		},
		CLI: CliConfig{
			DefaultLimit: 10,
		},
	}
}

// InitConfig loads config from file or creates default if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages the recognised fields of a TOML file that
// parses but does not decode into Config (e.g. a value of the wrong
// type), falling back to defaults for the rest. A file that does not
// parse as TOML at all yields all defaults.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "trie"); ok {
		extractTrieConfig(section, &config.Trie)
	}
	if section, ok := utils.ExtractSection(tempConfig, "loader"); ok {
		extractLoaderConfig(section, &config.Loader)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractTrieConfig(data map[string]any, trie *TrieConfig) {
	if val, ok := utils.ExtractBool(data, "mutable"); ok {
		trie.Mutable = val
	}
	if val, ok := utils.ExtractBool(data, "allow_indels"); ok {
		trie.AllowIndels = val
	}
	if val, ok := utils.ExtractInt64(data, "default_budget"); ok {
		trie.DefaultBudget = val
	}
	if val, ok := utils.ExtractInt64(data, "default_min_match_len"); ok {
		trie.DefaultMinMatchLen = val
	}
}

func extractLoaderConfig(data map[string]any, loader *LoaderConfig) {
	if val, ok := utils.ExtractInt64(data, "chunk_size"); ok {
		loader.ChunkSize = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
}

// RebuildConfigFile force-creates a new config.toml at the default path.
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}
	return utils.SaveTOMLFile(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of the loaded config file.
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file.
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
