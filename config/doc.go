// Package config handles user configuration loading and journal path resolution.
//
// Configuration is stored in ~/.journal/config.json and holds the default journal
// file and listing preferences. The --journal-file flag always takes precedence.
package config
