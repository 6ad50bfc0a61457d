// SPDX-License-Identifier: MPL-2.0

// Package config loads soundport configuration from the platform config
// directory, the current directory, and SOUNDPORT_* environment variables,
// in ascending precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"soundport-cli/internal/issue"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, also the config directory name.
	AppName = "soundport"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// configDirOverride lets tests redirect the config directory.
var configDirOverride string

type (
	// Config is the full soundport configuration.
	Config struct {
		Transcode TranscodeConfig `mapstructure:"transcode" toml:"transcode"`
		Output    OutputConfig    `mapstructure:"output" toml:"output"`
		UI        UIConfig        `mapstructure:"ui" toml:"ui"`
	}

	// TranscodeConfig controls the external audio transcoder.
	TranscodeConfig struct {
		// Command is the transcoder command template. The placeholders
		// {in} and {out} are replaced with the source and destination
		// paths; the string is split POSIX-shell-style.
		Command string `mapstructure:"command" toml:"command"`
		// Jobs bounds concurrent transcoder processes. Zero means
		// twice the CPU count.
		Jobs int `mapstructure:"jobs" toml:"jobs"`
	}

	// OutputConfig controls output pack naming.
	OutputConfig struct {
		// PackName overrides the generated pack name. Empty derives
		// the name from the input pack metadata.
		PackName string `mapstructure:"pack_name" toml:"pack_name"`
	}

	// UIConfig controls CLI output behavior.
	UIConfig struct {
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}
)

// DefaultTranscodeCommand converts any ffmpeg-readable input to Ogg Vorbis
// at a fixed quality. Bedrock only loads Vorbis audio.
const DefaultTranscodeCommand = "ffmpeg -nostdin -y -i {in} -c:a libvorbis -qscale:a 4 {out}"

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Transcode: TranscodeConfig{
			Command: DefaultTranscodeCommand,
			Jobs:    0,
		},
	}
}

// SetConfigDirOverride redirects config loading, for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// ConfigDir returns the soundport configuration directory using
// platform-specific conventions: %APPDATA% on Windows, ~/Library/Application
// Support on macOS, $XDG_CONFIG_HOME (default ~/.config) elsewhere.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolving home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, AppName), nil
}

// Load reads configuration from the config directory and the current
// directory, with environment overrides. A missing config file is not an
// error; defaults apply.
func Load() (*Config, error) {
	cfg, _, err := loadResolved()
	return cfg, err
}

// LoadWithPath is Load plus the path of the config file actually used
// (empty when running on defaults only).
func LoadWithPath() (*Config, string, error) {
	return loadResolved()
}

func loadResolved() (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("transcode.command", defaults.Transcode.Command)
	v.SetDefault("transcode.jobs", defaults.Transcode.Jobs)
	v.SetDefault("output.pack_name", defaults.Output.PackName)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""
	for _, path := range candidatePaths() {
		if !fileExists(path) {
			continue
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", issue.Wrap(err, "load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid TOML syntax").
				WithSuggestion("Run 'soundport config show' to see the effective configuration")
		}
		resolvedPath = path
		break
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Transcode.Jobs < 0 {
		return nil, "", issue.New("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("transcode.jobs must be zero or positive").
			WithCause(fmt.Errorf("transcode.jobs = %d", cfg.Transcode.Jobs))
	}
	if strings.TrimSpace(cfg.Transcode.Command) == "" {
		return nil, "", issue.New("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("transcode.command must not be empty").
			WithCause(fmt.Errorf("transcode.command is blank"))
	}
	return &cfg, resolvedPath, nil
}

// candidatePaths lists config file locations in descending precedence:
// current directory first, then the platform config directory.
func candidatePaths() []string {
	paths := []string{ConfigFileName + "." + ConfigFileExt}
	if dir, err := ConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, ConfigFileName+"."+ConfigFileExt))
	}
	return paths
}

// WriteDefault writes the default configuration to the platform config
// directory and returns the written path. Refuses to overwrite.
func WriteDefault() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(path) {
		return "", issue.New("initialize configuration").
			WithResource(path).
			WithSuggestion("Remove the existing file first if you want to regenerate it").
			WithCause(os.ErrExist)
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
