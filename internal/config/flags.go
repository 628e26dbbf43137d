package config

import "flag"

// Flags holds command line overrides of the game configuration.
type Flags struct {
	fs       *flag.FlagSet
	seed     int64
	tieBreak string
	hints    bool
	logLevel string
	logFile  string
}

// RegisterFlags defines the game flags on fs. Call Apply after fs is parsed.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.Int64Var(&f.seed, "seed", 0, "seed for the tie break of the computer")
	fs.StringVar(&f.tieBreak, "tiebreak", DefaultTieBreak, "tie break of the computer: coin or uniform")
	fs.BoolVar(&f.hints, "hints", false, "mark legal moves on the board")
	fs.StringVar(&f.logLevel, "log-level", DefaultLogLevel, "log level: DEBUG, INFO, WARN or ERROR")
	fs.StringVar(&f.logFile, "log-file", "", "write logs to this file")

	return f
}

// Apply overrides values in cfg with the flags that were set explicitly and validates the result.
func (f *Flags) Apply(cfg *GameConfig) error {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			cfg.Seed = f.seed
			cfg.HasSeed = true
		case "tiebreak":
			cfg.TieBreak = f.tieBreak
		case "hints":
			cfg.ShowHints = f.hints
		case "log-level":
			cfg.LogLevel = f.logLevel
		case "log-file":
			cfg.LogFile = f.logFile
		}
	})

	return cfg.Validate()
}
