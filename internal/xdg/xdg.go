// Package xdg provides helpers to resolve XDG Base Directory paths for helmbridge.
// It implements the XDG Base Directory specification for determining appropriate
// locations for configuration files.
//
// The package handles fallback to traditional locations when XDG environment
// variables are not set and ensures private permissions for the directories it
// creates.
package xdg

import (
	"os"
	"path/filepath"
)

// App is the directory name used under every XDG base.
const App = "helmbridge"

// ConfigDir returns the XDG config directory for helmbridge.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/helmbridge when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return appDir("XDG_CONFIG_HOME", ".config")
}

func appDir(envVar, homeRel string) (string, error) {
	base := os.Getenv(envVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, homeRel)
	}
	dir := filepath.Join(base, App)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
