package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "cardcatalog"

// Config represents the application configuration
type Config struct {
	DataDir string `toml:"data_dir"` // Card library; empty means the built-in card set
	NoColor bool   `toml:"no_color"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetLibraryPath returns the default path of the card library
func GetLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), appName, "cards")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// GetCacheDir returns the directory for generated files such as card art
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), appName)
}

// LoadConfig loads the config file, creating a default one if it doesn't exist
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &config, nil
}

// createDefaultConfig writes and returns the default config
func createDefaultConfig() (*Config, error) {
	config := &Config{}
	if err := saveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func saveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// ResolveDataDir picks the card data directory. An explicit path wins over
// the configured library. An empty result means the built-in card set.
func ResolveDataDir(explicit string) (string, error) {
	dir := explicit
	if dir == "" {
		config, err := LoadConfig()
		if err != nil {
			return "", err
		}
		dir = config.DataDir
	}
	if dir == "" {
		return "", nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("card data directory not found: %s", dir)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("card data path is not a directory: %s", dir)
	}
	return dir, nil
}

// SetDataDir stores dir as the card library in the config
func SetDataDir(dir string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", dir, err)
		}
		dir = abs
	}
	config.DataDir = dir

	return saveConfig(config)
}
