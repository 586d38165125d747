package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Options locates the configuration sources. Zero fields fall back to the
// process environment.
type Options struct {
	Home    string
	WorkDir string
	Getenv  func(string) string
}

func (o Options) withDefaults() (Options, error) {
	if o.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return o, fmt.Errorf("finding home directory: %w", err)
		}
		o.Home = home
	}
	if o.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return o, fmt.Errorf("finding working directory: %w", err)
		}
		o.WorkDir = wd
	}
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	return o, nil
}

// Load resolves defaults, config files and environment. Flags are applied
// separately with ApplyFlags once the command line is parsed, which also
// validates the result.
func Load(opts Options) (*Config, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	cfg := Default(opts.Home)

	for _, path := range []string{
		filepath.Join(opts.Home, DirName, UserFileName),
		filepath.Join(opts.WorkDir, ProjectFileName),
	} {
		ok, err := loadFile(&cfg, path)
		if err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		if ok {
			cfg.Files = append(cfg.Files, path)
		}
	}

	if err := applyEnv(&cfg, opts.Getenv); err != nil {
		return nil, err
	}
	cfg.DBPath = expandHome(cfg.DBPath, opts.Home)
	return &cfg, nil
}

// loadFile decodes path over cfg. A missing file is not an error; unknown
// keys are.
func loadFile(cfg *Config, path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return false, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return false, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return true, nil
}

func expandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	return p
}
