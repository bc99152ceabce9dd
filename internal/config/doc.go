// Package config reads the optional TOML settings file of the command line
// tool. Keys present in the file override the built-in defaults; command line
// flags, applied by the cli package, override both.
package config
