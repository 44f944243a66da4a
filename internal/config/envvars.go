// ABOUTME: Environment variable expansion in config string fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in the free-text fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.InvalidText = expandEnv(s.InvalidText)
	s.Placeholder = expandEnv(s.Placeholder)
	s.Description = expandEnv(s.Description)
	s.Language = expandEnv(s.Language)
	s.Theme = expandEnv(s.Theme)
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
