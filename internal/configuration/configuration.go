// Package configuration implements reading of Unix-type environment
// configuration files and typed access to their keys.
package configuration

import (
	"log/slog"
	"strings"
)

// Environment keys understood by the command-line tool.
const (
	// KeyLogLevel selects the slog level (debug, info, warn, error).
	KeyLogLevel = "FSPROXY_LOG_LEVEL"

	// KeyNoUI disables the interactive browser even for the browse
	// command, falling back to a plain listing.
	KeyNoUI = "FSPROXY_NO_UI"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Provider is the principal implementation for reading configuration files.
type Provider struct {
	GenericConfigReader genericConfigProvider
}

// NewProvider returns a pointer to a new [Provider] reading through the given
// generic reader.
func NewProvider(reader genericConfigProvider) *Provider {
	return &Provider{
		GenericConfigReader: reader,
	}
}

// ReadGeneric reads generic Unix-type configuration files into a map
// (map[key]value).
func (c *Provider) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericConfigReader.Read(filenames...)
}

// MapKeyToString returns the value for a key, or an empty string when the key
// is not set.
func (c *Provider) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToBool returns the truthiness of a key's value. Unset keys and
// anything other than "1", "true", "yes" or "on" map to false.
func (c *Provider) MapKeyToBool(envMap map[string]string, key string) bool {
	switch strings.ToLower(c.MapKeyToString(envMap, key)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// MapKeyToLogLevel returns the [slog.Level] named by a key's value. Unset and
// unrecognized values map to [slog.LevelInfo].
func (c *Provider) MapKeyToLogLevel(envMap map[string]string, key string) slog.Level {
	switch strings.ToLower(c.MapKeyToString(envMap, key)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
