// ABOUTME: Standard filesystem paths for multiselect configuration
// ABOUTME: Resolves ~/.config/multiselect/ for global and .multiselect.yaml for project-local settings

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName      = "multiselect"
	globalFileName     = "settings.yaml"
	projectFileName    = ".multiselect.yaml"
	defaultLogFileName = "multiselect.log"
)

// GlobalDir returns the user-global config directory under home
// (~/.config/multiselect/).
func GlobalDir(home string) string {
	if home == "" {
		return filepath.Join(".", ".config", globalDirName)
	}
	return filepath.Join(home, ".config", globalDirName)
}

// GlobalConfigFile returns the path to the global settings file under home.
func GlobalConfigFile(home string) string {
	return filepath.Join(GlobalDir(home), globalFileName)
}

// ProjectConfigFile returns the path to the project-local settings file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, projectFileName)
}

// DefaultLogFile returns the log file used by --verbose when no --log-file is given.
func DefaultLogFile(home string) string {
	return filepath.Join(GlobalDir(home), defaultLogFileName)
}

// UserHome returns the user's home directory, or "" if it cannot be determined.
func UserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
