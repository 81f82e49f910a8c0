package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures where the catalog export and its image assets live and
// how the grid lays records out.
type Config struct {
	BaseDir     string // deployment base path; catalog and images live under it
	CatalogFile string // catalog file name relative to BaseDir
	CatalogURL  string // when set, the catalog is fetched over HTTP instead
	ImageDir    string // image asset directory relative to BaseDir
	Columns     int    // fixed grid column count
}

const (
	defaultConfigPath  = "~/.config/skugrid/config.toml"
	defaultBaseDir     = "."
	defaultCatalogFile = "skus.csv"
	defaultImageDir    = "img/skus"
	defaultColumns     = 10

	// BaseEnv overrides base_dir; it is the single deployment knob the
	// catalog pipeline receives from the environment.
	BaseEnv = "SKUGRID_BASE"

	columnsEnv = "SKUGRID_COLUMNS"
)

// Load locates and parses the skugrid config, falling back to defaults
// when the file is missing. Environment overrides (typically loaded from a
// .env file by the CLI) are applied last.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseDir:     defaultBaseDir,
		CatalogFile: defaultCatalogFile,
		ImageDir:    defaultImageDir,
		Columns:     defaultColumns,
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		var raw struct {
			BaseDir     string `toml:"base_dir"`
			CatalogFile string `toml:"catalog_file"`
			CatalogURL  string `toml:"catalog_url"`
			ImageDir    string `toml:"image_dir"`
			Columns     int    `toml:"columns"`
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		if v := strings.TrimSpace(raw.BaseDir); v != "" {
			cfg.BaseDir = v
		}
		if v := strings.TrimSpace(raw.CatalogFile); v != "" {
			cfg.CatalogFile = v
		}
		cfg.CatalogURL = strings.TrimSpace(raw.CatalogURL)
		if v := strings.TrimSpace(raw.ImageDir); v != "" {
			cfg.ImageDir = v
		}
		if raw.Columns > 0 {
			cfg.Columns = raw.Columns
		}
	}

	if v := strings.TrimSpace(os.Getenv(BaseEnv)); v != "" {
		cfg.BaseDir = v
	}
	if v := strings.TrimSpace(os.Getenv(columnsEnv)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Columns = n
		}
	}

	cfg.BaseDir = mustExpand(cfg.BaseDir)
	return cfg, nil
}

// CatalogPath returns the absolute path of the catalog file.
func (c Config) CatalogPath() string {
	return filepath.Join(c.BaseDir, c.CatalogFile)
}

// ImagePath returns the absolute path of the image asset directory.
func (c Config) ImagePath() string {
	return filepath.Join(c.BaseDir, c.ImageDir)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
