// Package config resolves ganttline settings. Sources are applied in order,
// later ones winning: built-in defaults, the user file
// (~/.ganttline/config.toml), the project file (./ganttline.toml),
// GANTTLINE_* environment variables, then command-line flags.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/alexanderramin/ganttline/internal/route"
)

const (
	DirName         = ".ganttline"
	UserFileName    = "config.toml"
	ProjectFileName = "ganttline.toml"
	DBFileName      = "ganttline.db"

	MinDayWidth = 8
	MaxDayWidth = 400
)

// Config holds the resolved settings.
type Config struct {
	DBPath                string  `toml:"db_path"`
	PropagateTransitively bool    `toml:"propagate_transitively"`
	DayWidth              float64 `toml:"day_width"`
	LogCalls              bool    `toml:"log_calls"`

	// Files that contributed, in load order.
	Files []string `toml:"-"`
}

// Default returns the built-in settings for a user whose home is home.
func Default(home string) Config {
	return Config{
		DBPath:   filepath.Join(home, DirName, DBFileName),
		DayWidth: route.DefaultDayWidth,
	}
}

// Validate rejects settings no component can work with.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.DayWidth < MinDayWidth || c.DayWidth > MaxDayWidth {
		return fmt.Errorf("day_width must be between %d and %d, got %g", MinDayWidth, MaxDayWidth, c.DayWidth)
	}
	return nil
}

// Layout returns chart geometry using the configured day width.
func (c Config) Layout() route.Layout {
	l := route.DefaultLayout(time.Time{})
	l.DayWidth = c.DayWidth
	return l
}
