package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_Overrides(t *testing.T) {
	// --- Arrange ---
	path := writeConfig(t, `
scripts_path = "scripts"
icons_path = "/usr/share/algoprovider/icons"
log_level = "DEBUG"
output = "json"
plotting = "off"
healthcheck_port = 8080
`)

	// --- Act ---
	cfg, err := LoadFile(path, Defaults())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, Settings{
		ScriptsPath:     filepath.Join(filepath.Dir(path), "scripts"),
		IconsPath:       "/usr/share/algoprovider/icons",
		LogLevel:        "debug",
		LogFormat:       "text",
		Output:          "json",
		Plotting:        PlottingOff,
		HealthcheckPort: 8080,
	}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile_KeepsBaseForMissingKeys(t *testing.T) {
	base := Defaults()
	base.ScriptsPath = "/from/flags"

	cfg, err := LoadFile(writeConfig(t, `log_format = "json"`), base)

	require.NoError(t, err)
	assert.Equal(t, "/from/flags", cfg.ScriptsPath)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFile_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "unknown key", content: "workers = 3\nbogus = 1\n", wantErr: "unknown keys: bogus, workers"},
		{name: "bad syntax", content: "log_level = ", wantErr: "load config"},
		{name: "wrong type", content: `healthcheck_port = "80"`, wantErr: "load config"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tc.content), Defaults())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"), Defaults())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSettings_Validate(t *testing.T) {
	require.NoError(t, Defaults().Validate())

	testCases := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{name: "log level", mutate: func(s *Settings) { s.LogLevel = "trace" }, wantErr: "invalid log-level"},
		{name: "log format", mutate: func(s *Settings) { s.LogFormat = "xml" }, wantErr: "invalid log-format"},
		{name: "output", mutate: func(s *Settings) { s.Output = "yaml" }, wantErr: "invalid output"},
		{name: "plotting", mutate: func(s *Settings) { s.Plotting = "maybe" }, wantErr: "invalid plotting"},
		{name: "port", mutate: func(s *Settings) { s.HealthcheckPort = 70000 }, wantErr: "invalid healthcheck-port"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Defaults()
			tc.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
