package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/handodds/internal/config"
	"github.com/lox/handodds/poker"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Globals

	Table    TableCmd    `cmd:"" default:"withargs" help:"Compute the exact frequency of each hand category"`
	Classify ClassifyCmd `cmd:"" help:"Classify a single hand"`
	Combos   CombosCmd   `cmd:"" help:"Count the hands that can be dealt from the deck"`
}

// Globals are the flags shared by every command. Flags override values from
// the config file.
type Globals struct {
	Config      string   `short:"c" help:"HCL config file" default:"handodds.hcl" env:"HANDODDS_CONFIG"`
	FourFingers bool     `help:"Flushes and straights need only four cards" env:"HANDODDS_FOUR_FINGERS"`
	Shortcut    bool     `help:"Straights may skip one rank between cards" env:"HANDODDS_SHORTCUT"`
	Smeared     bool     `help:"Hearts and diamonds count as one suit, as do spades and clubs" env:"HANDODDS_SMEARED"`
	Add         []string `help:"Cards to add to the deck (duplicates allowed)" env:"HANDODDS_ADD"`
	Remove      []string `help:"Cards to remove from the deck" env:"HANDODDS_REMOVE"`
	Workers     int      `short:"w" help:"Parallel workers (0 for one per CPU)" env:"HANDODDS_WORKERS"`
	HandSize    int      `help:"Cards per hand" env:"HANDODDS_HAND_SIZE"`
	LogLevel    string   `help:"Log level (debug, info, warn, error)" env:"HANDODDS_LOG_LEVEL"`
	NoColor     bool     `help:"Disable colored output" env:"NO_COLOR"`

	stdout io.Writer `kong:"-"`
	stderr io.Writer `kong:"-"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handodds"),
		kong.Description("Exact poker hand probabilities by exhaustive enumeration"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	cli.stdout = os.Stdout
	cli.stderr = os.Stderr
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// settings is the merged result of the config file and flags
type settings struct {
	config *config.Config
	rules  poker.Rules
	deck   poker.Deck
	logger *log.Logger
}

func (g *Globals) load() (*settings, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	if g.FourFingers || g.Shortcut || g.Smeared {
		if cfg.Rules == nil {
			cfg.Rules = &config.RulesConfig{}
		}
		cfg.Rules.FourFingers = cfg.Rules.FourFingers || g.FourFingers
		cfg.Rules.Shortcut = cfg.Rules.Shortcut || g.Shortcut
		cfg.Rules.Smeared = cfg.Rules.Smeared || g.Smeared
	}
	if len(g.Add) > 0 || len(g.Remove) > 0 {
		if cfg.Deck == nil {
			cfg.Deck = &config.DeckConfig{}
		}
		cfg.Deck.Add = append(cfg.Deck.Add, g.Add...)
		cfg.Deck.Remove = append(cfg.Deck.Remove, g.Remove...)
	}
	if g.Workers != 0 {
		cfg.Workers = g.Workers
	}
	if g.HandSize != 0 {
		cfg.HandSize = g.HandSize
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	deck, err := cfg.BuildDeck()
	if err != nil {
		return nil, err
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &settings{
		config: cfg,
		rules:  cfg.PokerRules(),
		deck:   deck,
		logger: log.NewWithOptions(g.errOut(), log.Options{
			Level:           level,
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
		}),
	}, nil
}

func (g *Globals) out() io.Writer {
	if g.stdout == nil {
		return os.Stdout
	}
	return g.stdout
}

func (g *Globals) errOut() io.Writer {
	if g.stderr == nil {
		return os.Stderr
	}
	return g.stderr
}
