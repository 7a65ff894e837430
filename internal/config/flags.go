package config

// This file implements CLI flag parsing with kong. Defaults come from the
// Config passed in, injected as kong variables, so DefaultConfig stays the
// single source of default values.

import (
	"strconv"

	"github.com/alecthomas/kong"
)

// cli is the kong grammar. Field order is help order.
type cli struct {
	Data     string `name:"data" short:"d" type:"path" placeholder:"DIR" help:"Directory with phonemes and replacement_rules (.json, .yaml). Default: built-in data."`
	Strict   bool   `help:"Exit on invalid rule data instead of running with no rules."`
	Phonemes bool   `default:"${phonemes}" negatable:"" help:"List phonemes at startup."`
	Rules    bool   `help:"List replacement rules and exit."`
	Check    bool   `short:"c" help:"Verify documented rule examples and exit."`

	Color      string `enum:"auto,always,never" default:"${color}" help:"Color output: auto | always | never."`
	NoColor    bool   `name:"no-color" help:"Disable colored output."`
	Verbose    bool   `short:"v" help:"Verbose output."`
	Log        string `short:"l" type:"path" placeholder:"PATH" help:"Append logs to file."`
	LogMaxSize int    `name:"log-max-size" default:"${log_max_size}" placeholder:"MB" help:"Rotate the log file after this many megabytes."`

	Version kong.VersionFlag `short:"V" help:"Print version and exit."`

	Words []string `arg:"" optional:"" help:"Words to look up. Omit for interactive mode."`
}

// ParseFlags parses args (without the program name) into cfg. On --help or
// --version kong prints and exits. On error it returns non-nil.
func ParseFlags(cfg *Config, args []string, version string) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("phonesub"),
		kong.Description("Suggest common speech-sound substitutions for a word."),
		kong.Vars{
			"version":      "phonesub v" + version,
			"phonemes":     strconv.FormatBool(cfg.ShowPhonemes),
			"color":        string(cfg.ColorMode),
			"log_max_size": strconv.Itoa(cfg.LogMaxSizeMB),
		},
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg.DataDir = c.Data
	cfg.Strict = c.Strict
	cfg.ShowPhonemes = c.Phonemes
	cfg.ListRules = c.Rules
	cfg.CheckOnly = c.Check
	cfg.Verbose = c.Verbose
	cfg.ColorMode = ColorMode(c.Color)
	if c.NoColor {
		cfg.ColorMode = ColorNever
	}
	cfg.LogFile = c.Log
	cfg.LogMaxSizeMB = c.LogMaxSize
	cfg.Words = c.Words
	return nil
}
