package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the configuration of the textprim command.
type Config struct {
	Trace   string `env:"TEXTPRIM_TRACE"    envDefault:"error"`
	Width   int    `env:"TEXTPRIM_WIDTH"`
	Algo    string `env:"TEXTPRIM_ALGO"     envDefault:"arc4"`
	NoColor bool   `env:"TEXTPRIM_NO_COLOR"`
	Escapes bool   `env:"TEXTPRIM_ESCAPES"`

	Seed  string
	Draws int
	Min   int64
	Max   int64
	Args  []string
}

// ParseConfig reads the environment first, then lets flags override it.
// Arguments remaining after the flags form the input text.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Trace, "trace", cfg.Trace, "trace level (error, info, debug)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "line width for wrapping; 0 uses the terminal width")
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, "random generator algorithm (arc4, chacha20)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	fs.BoolVar(&cfg.Escapes, "escapes", cfg.Escapes, `interpret \uXXXX escapes in the input`)
	fs.StringVar(&cfg.Seed, "seed", "", "seed for random draws; empty seeds randomly")
	fs.IntVar(&cfg.Draws, "draws", 0, "number of random draws to print")
	fs.Int64Var(&cfg.Min, "min", 0, "lower bound of integer draws")
	fs.Int64Var(&cfg.Max, "max", 0, "upper bound of integer draws; draws are floats if max <= min")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Width < 0 {
		return Config{}, fmt.Errorf("invalid line width %d", cfg.Width)
	}
	if cfg.Draws < 0 {
		return Config{}, fmt.Errorf("invalid number of draws %d", cfg.Draws)
	}
	cfg.Args = fs.Args()
	return cfg, nil
}
