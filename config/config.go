package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByteMirror/journal/log"
)

const ConfigFileName = "config.json"

// ErrNoJournalPath is returned when neither the flag nor the config names a journal.
var ErrNoJournalPath = errors.New("no journal file specified: pass --journal-file or set default_journal in " + ConfigFileName)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".journal"), nil
}

// Config represents the application configuration
type Config struct {
	// DefaultJournal is the journal file used when --journal-file is not given.
	// A leading ~/ is expanded to the home directory.
	DefaultJournal string `json:"default_journal"`
	// ListFormat is the default output format of the list command (text, json or yaml).
	ListFormat string `json:"list_format"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultJournal: "",
		ListFormat:     "text",
	}
}

// LoadConfig loads the configuration from disk. If it cannot be done, we return the default configuration.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := SaveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig()
	}
	if config.ListFormat == "" {
		config.ListFormat = DefaultConfig().ListFormat
	}

	return config
}

// SaveConfig writes the configuration to disk atomically.
func SaveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return atomicWriteFile(filepath.Join(configDir, ConfigFileName), data, 0644)
}

// ResolveJournalPath picks the journal file: the flag value if set, else the
// configured default. Neither being set is ErrNoJournalPath.
func ResolveJournalPath(flagValue string, config *Config) (string, error) {
	path := strings.TrimSpace(flagValue)
	if path == "" && config != nil {
		path = strings.TrimSpace(config.DefaultJournal)
	}
	if path == "" {
		return "", ErrNoJournalPath
	}
	return expandHome(path)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand journal path: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
