// Package config loads daireno settings from a TOML file.
//
// The default location follows the XDG base directory convention:
// $XDG_CONFIG_HOME/daireno/config.toml, or ~/.config/daireno/config.toml when
// XDG_CONFIG_HOME is unset. A missing file is not an error; every value has a
// default, and command-line flags override whatever the file sets.
//
// Example file:
//
//	[defaults]
//	normal_floors = 5
//	basements = 2
//	apartments = 4
//
//	[diagram]
//	width = 600
//
//	[server]
//	addr = ":8080"
//	session_ttl = "12h"
//	redis_addr = "localhost:6379"
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/daireno/pkg/editor"
	"github.com/matzehuels/daireno/pkg/errors"
	"github.com/matzehuels/daireno/pkg/render/diagram"
	"github.com/matzehuels/daireno/pkg/section"
)

const (
	appName  = "daireno"
	fileName = "config.toml"
)

// Config is the full settings tree.
type Config struct {
	Defaults editor.Setup `toml:"defaults"`
	Diagram  Diagram      `toml:"diagram"`
	Server   Server       `toml:"server"`
	Output   Output       `toml:"output"`
}

// Diagram holds layout settings.
type Diagram struct {
	Width       float64 `toml:"width"`
	FloorHeight float64 `toml:"floor_height"`
	Shadow      bool    `toml:"shadow"`
}

// Server holds settings for `daireno serve`.
type Server struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
	SessionTTL     string   `toml:"session_ttl"`
	RedisAddr      string   `toml:"redis_addr"`
	RedisPassword  string   `toml:"redis_password"`
	RedisDB        int      `toml:"redis_db"`
}

// TTL returns the parsed session lifetime. Call Validate first; an
// unparsable value yields the default.
func (s Server) TTL() time.Duration {
	d, err := time.ParseDuration(s.SessionTTL)
	if err != nil {
		return DefaultSessionTTL
	}
	return d
}

// Output holds export settings.
type Output struct {
	PNGScale float64 `toml:"png_scale"`
	FontPath string  `toml:"font_path"`
}

// DefaultSessionTTL is how long an idle HTTP editor session is kept.
const DefaultSessionTTL = 24 * time.Hour

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Defaults: editor.DefaultSetup(),
		Diagram: Diagram{
			Width:       diagram.DefaultWidth,
			FloorHeight: section.DefaultFloorHeight,
			Shadow:      true,
		},
		Server: Server{
			Addr:       "127.0.0.1:8080",
			SessionTTL: DefaultSessionTTL.String(),
		},
		Output: Output{
			PNGScale: 2,
		},
	}
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the file at path on top of Default. An empty path means
// DefaultPath; a missing file at the default path yields the defaults, while a
// missing file at an explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Default(), errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate rejects settings no command can work with.
func (c Config) Validate() error {
	if err := c.Defaults.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[defaults]")
	}
	if c.Diagram.Width <= diagram.LabelColumnWidth {
		return errors.New(errors.ErrCodeInvalidConfig, "diagram.width must exceed the %.0f unit label column, got %v",
			diagram.LabelColumnWidth, c.Diagram.Width)
	}
	if c.Diagram.FloorHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "diagram.floor_height must be positive, got %v", c.Diagram.FloorHeight)
	}
	if c.Output.PNGScale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "output.png_scale must be positive, got %v", c.Output.PNGScale)
	}
	if d, err := time.ParseDuration(c.Server.SessionTTL); err != nil || d <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.session_ttl must be a positive duration, got %q", c.Server.SessionTTL)
	}
	if c.Server.RedisDB < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.redis_db must not be negative, got %d", c.Server.RedisDB)
	}
	return nil
}
