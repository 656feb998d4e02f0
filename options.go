package main

import (
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/ovh/ttygraph/graph"
	"github.com/ovh/ttygraph/input"
	"github.com/ovh/ttygraph/term"
)

// options mirrors the flag and environment surface before validation.
type options struct {
	Two      bool
	Rate     bool
	KeyValue bool
	Bars     bool

	Chars         string
	HighErrorChar string
	LowErrorChar  string

	SoftMax graph.Limit
	SoftMin graph.Limit
	HardMax graph.Limit
	HardMin graph.Limit

	Title  string
	Unit   string
	Colors []string

	LogFile string
	Verbose bool
}

// config is the validated runtime configuration of the render loop.
type config struct {
	mode    input.Mode
	rate    bool
	bars    bool
	glyphs  []rune
	errHigh rune
	errLow  rune
	bounds  graph.Bounds
	title   string
	unit    string
	palette []termbox.Attribute
	logFile string
	verbose bool
}

func loadConfig() (config, error) {
	opts := options{
		Two:           viper.GetBool("two"),
		Rate:          viper.GetBool("rate"),
		KeyValue:      viper.GetBool("key-value"),
		Bars:          viper.GetBool("bars"),
		Chars:         viper.GetString("chars"),
		HighErrorChar: viper.GetString("high-error-char"),
		LowErrorChar:  viper.GetString("low-error-char"),
		SoftMax:       limitFromViper("soft-max"),
		SoftMin:       limitFromViper("soft-min"),
		HardMax:       limitFromViper("hard-max"),
		HardMin:       limitFromViper("hard-min"),
		Title:         viper.GetString("title"),
		Unit:          viper.GetString("unit"),
		Colors:        viper.GetStringSlice("colors"),
		LogFile:       viper.GetString("log-file"),
		Verbose:       viper.GetBool("verbose"),
	}
	return opts.validate()
}

func limitFromViper(key string) graph.Limit {
	return graph.Limit{Value: viper.GetFloat64(key), Set: viper.IsSet(key)}
}

// validate turns raw options into a runtime configuration. Any problem
// here is fatal before the render loop starts.
func (o options) validate() (config, error) {
	var cfg config

	switch {
	case o.Two && o.KeyValue:
		return cfg, errors.New("--two and --key-value are mutually exclusive")
	case o.Two:
		cfg.mode = input.ModeTwo
	case o.KeyValue:
		cfg.mode = input.ModeKeyValue
	default:
		cfg.mode = input.ModeSingle
	}

	var err error
	if cfg.errHigh, err = singleRune(o.HighErrorChar, "high-error-char"); err != nil {
		return cfg, err
	}
	if cfg.errLow, err = singleRune(o.LowErrorChar, "low-error-char"); err != nil {
		return cfg, err
	}

	cfg.bounds = graph.Bounds{
		SoftMin: o.SoftMin,
		SoftMax: o.SoftMax,
		HardMin: o.HardMin,
		HardMax: o.HardMax,
	}
	cfg.bounds.Normalize()

	if cfg.palette, err = term.ParseColors(o.Colors); err != nil {
		return cfg, err
	}

	cfg.rate = o.Rate
	cfg.bars = o.Bars
	cfg.glyphs = []rune(o.Chars)
	cfg.title = o.Title
	cfg.unit = o.Unit
	cfg.logFile = o.LogFile
	cfg.verbose = o.Verbose
	return cfg, nil
}

func singleRune(s, flag string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, errors.Errorf("flag --%s wants exactly one character, got %q", flag, s)
	}
	return r[0], nil
}
