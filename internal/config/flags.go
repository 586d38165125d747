package config

import "github.com/spf13/pflag"

const (
	FlagDB        = "db"
	FlagPropagate = "propagate"
	FlagDayWidth  = "day-width"
	FlagLog       = "log"
)

// RegisterFlags adds the persistent settings flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagDB, "", "path to the board database")
	fs.Bool(FlagPropagate, false, "push edits through every downstream task")
	fs.Float64(FlagDayWidth, 0, "pixels per day in rendered charts")
	fs.Bool(FlagLog, false, "log each board operation to stderr")
}

// ApplyFlags overrides cfg with flags the user actually set.
func ApplyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs.Changed(FlagDB) {
		v, err := fs.GetString(FlagDB)
		if err != nil {
			return err
		}
		cfg.DBPath = v
	}
	if fs.Changed(FlagPropagate) {
		v, err := fs.GetBool(FlagPropagate)
		if err != nil {
			return err
		}
		cfg.PropagateTransitively = v
	}
	if fs.Changed(FlagDayWidth) {
		v, err := fs.GetFloat64(FlagDayWidth)
		if err != nil {
			return err
		}
		cfg.DayWidth = v
	}
	if fs.Changed(FlagLog) {
		v, err := fs.GetBool(FlagLog)
		if err != nil {
			return err
		}
		cfg.LogCalls = v
	}
	return cfg.Validate()
}
