package config

import (
	"fmt"
	"strconv"
)

const (
	EnvDB        = "GANTTLINE_DB"
	EnvPropagate = "GANTTLINE_PROPAGATE"
	EnvDayWidth  = "GANTTLINE_DAY_WIDTH"
	EnvLog       = "GANTTLINE_LOG"
)

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := getenv(EnvPropagate); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPropagate, err)
		}
		cfg.PropagateTransitively = b
	}
	if v := getenv(EnvDayWidth); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDayWidth, err)
		}
		cfg.DayWidth = f
	}
	if v := getenv(EnvLog); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLog, err)
		}
		cfg.LogCalls = b
	}
	return nil
}
