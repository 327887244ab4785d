package config

import (
	"flag"
)

// Flags are the command line overrides of a Config.
type Flags struct {
	fs       *flag.FlagSet
	path     *string
	id       *string
	language *string
	tooltips *bool
	debug    *bool
	logLevel *string
	duration *float64
}

// BindFlags defines the config flags on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:       fs,
		path:     fs.String("config", "", "path to a YAML or TOML config file"),
		id:       fs.String("id", "", "player id"),
		language: fs.String("lang", "", "localization language"),
		tooltips: fs.Bool("tooltips", false, "attach tooltips to labelled buttons"),
		debug:    fs.Bool("debug", false, "debug logging"),
		logLevel: fs.String("log-level", "", "log level (trace, debug, info, warn, error)"),
		duration: fs.Float64("duration", 0, "media duration in seconds"),
	}
}

// Load loads the config file named by -config and applies every flag that
// was set on the command line. Call it after parsing the flag set.
func (f *Flags) Load() (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if *f.path != "" {
		if err := cfg.decodeFile(*f.path); err != nil {
			return nil, err
		}
	}
	f.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply copies the explicitly set flags into cfg.
func (f *Flags) Apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "id":
			cfg.ID = *f.id
		case "lang":
			cfg.Language = *f.language
		case "tooltips":
			cfg.Tooltips = *f.tooltips
		case "debug":
			cfg.Debug = *f.debug
		case "log-level":
			cfg.Log.Level = *f.logLevel
		case "duration":
			cfg.Media.Duration = *f.duration
		}
	})
}
