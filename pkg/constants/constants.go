// Package constants holds process-wide constants that do not belong to any
// single domain package.
package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. SEHATYNET_DATABASE_HOST overrides database.host.
	EnvPrefix = "SEHATYNET"
)
