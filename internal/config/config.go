package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.birthdaycard)
	ConfigDir string

	// DatabasePath is the SQLite database file for saved preferences
	DatabasePath string

	// LogPath is the application log file. The TUI owns stdout/stderr,
	// so everything loggable goes here.
	LogPath string

	// SettingsFile is the optional user settings file
	SettingsFile string
)

// Initialize sets up the configuration directory and global paths.
// It creates ~/.birthdaycard/ if it doesn't exist. A non-empty dir
// overrides the default location (used by the --config-dir flag).
func Initialize(dir string) error {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".birthdaycard")
	}

	ConfigDir = dir
	DatabasePath = filepath.Join(ConfigDir, "birthdaycard.db")
	LogPath = filepath.Join(ConfigDir, "birthdaycard.log")
	SettingsFile = filepath.Join(ConfigDir, "config.yaml")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

// Settings holds the optional user configuration from config.yaml.
type Settings struct {
	// Theme is "auto", "dark" or "light". Auto follows the terminal's
	// detected background.
	Theme string

	// Message is the greeting template rendered on the card. A single %s
	// is replaced with the recipient name.
	Message string

	// Animation enables the decorative candle and confetti animation.
	Animation bool
}

// DefaultSettings returns the settings used when config.yaml is absent.
func DefaultSettings() Settings {
	return Settings{
		Theme:     "auto",
		Message:   "Happy Birthday, %s!",
		Animation: true,
	}
}

// fileSettings mirrors Settings with pointer fields so an absent key in
// config.yaml keeps its default instead of zeroing it.
type fileSettings struct {
	Theme     *string `yaml:"theme"`
	Message   *string `yaml:"message"`
	Animation *bool   `yaml:"animation"`
}

// LoadSettings reads SettingsFile and merges it over the defaults.
// A missing file is not an error. A malformed file returns the defaults
// alongside the parse error so the caller can log it and carry on.
func LoadSettings() (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(SettingsFile)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return s, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if fs.Theme != nil {
		switch *fs.Theme {
		case "auto", "dark", "light":
			s.Theme = *fs.Theme
		default:
			return s, fmt.Errorf("unknown theme %q in settings file", *fs.Theme)
		}
	}
	if fs.Message != nil && *fs.Message != "" {
		s.Message = *fs.Message
	}
	if fs.Animation != nil {
		s.Animation = *fs.Animation
	}

	return s, nil
}
