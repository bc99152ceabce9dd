package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Plotting modes.
const (
	PlottingAuto = "auto"
	PlottingOn   = "on"
	PlottingOff  = "off"
)

// Settings is the resolved configuration of the command line tool.
type Settings struct {
	ScriptsPath     string
	IconsPath       string
	LogLevel        string
	LogFormat       string
	Output          string
	Plotting        string
	HealthcheckPort int
}

// Defaults returns the settings used when neither a file nor a flag sets a
// value. An empty ScriptsPath means the folder next to the executable.
func Defaults() Settings {
	return Settings{
		LogLevel:  "info",
		LogFormat: "text",
		Output:    "text",
		Plotting:  PlottingAuto,
	}
}

// algoprovider config.toml key mapping to Settings.
type fileConfig struct {
	ScriptsPath     string `toml:"scripts_path"`
	IconsPath       string `toml:"icons_path"`
	LogLevel        string `toml:"log_level"`
	LogFormat       string `toml:"log_format"`
	Output          string `toml:"output"`
	Plotting        string `toml:"plotting"`
	HealthcheckPort int    `toml:"healthcheck_port"`
}

// LoadFile overlays the keys defined in the TOML file at path onto base.
// Relative paths in the file are resolved against the file's directory.
// Unknown keys are rejected.
func LoadFile(path string, base Settings) (Settings, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Settings{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Settings{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg := base
	dir := filepath.Dir(path)
	if meta.IsDefined("scripts_path") {
		cfg.ScriptsPath = resolvePath(dir, raw.ScriptsPath)
	}
	if meta.IsDefined("icons_path") {
		cfg.IconsPath = resolvePath(dir, raw.IconsPath)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}
	if meta.IsDefined("log_format") {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(raw.LogFormat))
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.ToLower(strings.TrimSpace(raw.Output))
	}
	if meta.IsDefined("plotting") {
		cfg.Plotting = strings.ToLower(strings.TrimSpace(raw.Plotting))
	}
	if meta.IsDefined("healthcheck_port") {
		cfg.HealthcheckPort = raw.HealthcheckPort
	}
	return cfg, nil
}

func resolvePath(dir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate reports the first setting outside its allowed values.
func (s Settings) Validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", s.LogLevel)
	}
	if s.LogFormat != "text" && s.LogFormat != "json" {
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", s.LogFormat)
	}
	if s.Output != "text" && s.Output != "json" {
		return fmt.Errorf("invalid output %q: must be 'text' or 'json'", s.Output)
	}
	switch s.Plotting {
	case PlottingAuto, PlottingOn, PlottingOff:
	default:
		return fmt.Errorf("invalid plotting %q: must be 'auto', 'on', or 'off'", s.Plotting)
	}
	if s.HealthcheckPort < 0 || s.HealthcheckPort > 65535 {
		return fmt.Errorf("invalid healthcheck-port %d", s.HealthcheckPort)
	}
	return nil
}
