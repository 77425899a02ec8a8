// Package toml reads and writes the knacks configuration file.
package toml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/redsepro/knacks"
)

// fileConfig mirrors knacks.Config as written in the file. Empty fields
// leave the corresponding setting unchanged.
type fileConfig struct {
	BaseURL    string    `toml:"base_url,omitempty"`
	IndexPath  string    `toml:"index_path,omitempty"`
	ListPath   string    `toml:"list_path,omitempty"`
	ContentDir string    `toml:"content_dir,omitempty"`
	Debounce   string    `toml:"debounce,omitempty"`
	Timeout    string    `toml:"timeout,omitempty"`
	DB         string    `toml:"db,omitempty"`
	LogFile    string    `toml:"log_file,omitempty"`
	Theme      fileTheme `toml:"theme"`
}

type fileTheme struct {
	Accent string `toml:"accent,omitempty"`
	Dim    string `toml:"dim,omitempty"`
	Error  string `toml:"error,omitempty"`
}

// Load overlays the settings of the file at path onto cfg. A missing file
// leaves cfg untouched when optional is true.
func Load(path string, cfg *knacks.Config, optional bool) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		if optional {
			return nil
		}
		return knacks.Errorf(knacks.ENOTFOUND, "config file not found: %s", path)
	}
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := Decode(f, cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Decode overlays the settings read from r onto cfg. Unknown keys are
// rejected.
func Decode(r io.Reader, cfg *knacks.Config) error {
	var fc fileConfig
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return knacks.Errorf(knacks.EINVALID, "invalid config at line %d, column %d: %s", row, col, derr.Error())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return knacks.Errorf(knacks.EINVALID, "unknown config key: %s", serr.Error())
		}
		return knacks.Errorf(knacks.EINVALID, "invalid config: %v", err)
	}

	overlay(&cfg.BaseURL, fc.BaseURL)
	overlay(&cfg.IndexPath, fc.IndexPath)
	overlay(&cfg.ListPath, fc.ListPath)
	overlay(&cfg.ContentDir, fc.ContentDir)
	overlay(&cfg.DBPath, fc.DB)
	overlay(&cfg.LogFile, fc.LogFile)
	overlay(&cfg.Theme.Accent, fc.Theme.Accent)
	overlay(&cfg.Theme.Dim, fc.Theme.Dim)
	overlay(&cfg.Theme.Error, fc.Theme.Error)

	if err := overlayDuration(&cfg.Debounce, "debounce", fc.Debounce); err != nil {
		return err
	}
	return overlayDuration(&cfg.Timeout, "timeout", fc.Timeout)
}

// Encode writes cfg in the file format.
func Encode(w io.Writer, cfg knacks.Config) error {
	fc := fileConfig{
		BaseURL:    cfg.BaseURL,
		IndexPath:  cfg.IndexPath,
		ListPath:   cfg.ListPath,
		ContentDir: cfg.ContentDir,
		DB:         cfg.DBPath,
		LogFile:    cfg.LogFile,
		Theme: fileTheme{
			Accent: cfg.Theme.Accent,
			Dim:    cfg.Theme.Dim,
			Error:  cfg.Theme.Error,
		},
	}
	if cfg.Debounce != 0 {
		fc.Debounce = cfg.Debounce.String()
	}
	if cfg.Timeout != 0 {
		fc.Timeout = cfg.Timeout.String()
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func overlayDuration(dst *time.Duration, key, v string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return knacks.Errorf(knacks.EINVALID, "invalid %s %q: %v", key, v, err)
	}
	*dst = d
	return nil
}
