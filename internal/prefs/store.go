package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "ptable"
	configFile = "config.yaml"
)

var (
	// Global preferences instance (loaded lazily)
	global     *Preferences
	globalOnce sync.Once
	globalErr  error

	fileMutex sync.Mutex
)

// GetConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/ptable or $HOME/.config/ptable
//   - macOS: $HOME/.config/ptable
//   - Windows: %LOCALAPPDATA%\ptable
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the full path to the preferences file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load returns the global preferences, reading them from disk on first use.
// A missing file yields New().
func Load() (*Preferences, error) {
	globalOnce.Do(func() {
		var path string
		path, globalErr = GetConfigPath()
		if globalErr != nil {
			return
		}
		global, globalErr = ReadFile(path)
	})
	return global, globalErr
}

// Reload discards the in-memory preferences and reads them again.
func Reload() (*Preferences, error) {
	fileMutex.Lock()
	globalOnce = sync.Once{}
	global, globalErr = nil, nil
	fileMutex.Unlock()
	return Load()
}

// ReadFile parses a preferences file. A missing file yields New().
func ReadFile(path string) (*Preferences, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}

	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file: %w", err)
	}
	if p.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported preferences version: %d (expected %d)", p.Version, CurrentVersion)
	}
	return &p, nil
}

// Save writes the preferences to the default location.
func (p *Preferences) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get preferences path: %w", err)
	}
	return p.WriteFile(path)
}

// WriteFile writes the preferences to path through a temporary file and a
// rename, so a crash never leaves a half-written file behind.
func (p *Preferences) WriteFile(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	header := []byte("# ptable preferences\n# Managed by `ptable prefs set`; flags and PTABLE_* variables take precedence.\n\n")
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary preferences file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save preferences file: %w", err)
	}
	return nil
}
