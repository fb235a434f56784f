// Package config loads handodds settings from an HCL file.
//
//	workers    = 8
//	hand_size  = 5
//	log_level  = "info"
//	categories = ["flush", "straight"]
//
//	rules {
//	  four_fingers = true
//	  shortcut     = false
//	  smeared      = false
//	}
//
//	deck {
//	  empty  = false
//	  add    = ["As", "As"]
//	  remove = ["2c", "2d"]
//	}
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/handodds/poker"
)

const (
	DefaultHandSize = 5
	DefaultLogLevel = "info"
	MaxHandSize     = 10
)

// Config is the complete handodds configuration
type Config struct {
	Workers    int          `hcl:"workers,optional"`
	HandSize   int          `hcl:"hand_size,optional"`
	LogLevel   string       `hcl:"log_level,optional"`
	Categories []string     `hcl:"categories,optional"`
	Rules      *RulesConfig `hcl:"rules,block"`
	Deck       *DeckConfig  `hcl:"deck,block"`
}

// RulesConfig toggles the rule variants
type RulesConfig struct {
	FourFingers bool `hcl:"four_fingers,optional"`
	Shortcut    bool `hcl:"shortcut,optional"`
	Smeared     bool `hcl:"smeared,optional"`
}

// DeckConfig describes the deck as changes to the standard 52 cards. With
// Empty set the deck starts with no cards and only Add is used.
type DeckConfig struct {
	Empty  bool     `hcl:"empty,optional"`
	Add    []string `hcl:"add,optional"`
	Remove []string `hcl:"remove,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		HandSize: DefaultHandSize,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads the configuration from filename. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.HandSize == 0 {
		config.HandSize = DefaultHandSize
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}

	return &config, nil
}

// Validate checks ranges and that every card and category name resolves
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers: %d", c.Workers)
	}
	if c.HandSize < 1 || c.HandSize > MaxHandSize {
		return fmt.Errorf("hand size must be between 1 and %d, got %d", MaxHandSize, c.HandSize)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if _, err := c.ParseCategories(); err != nil {
		return err
	}
	if _, err := c.BuildDeck(); err != nil {
		return err
	}
	return nil
}

// PokerRules returns the configured rule variants
func (c *Config) PokerRules() poker.Rules {
	if c.Rules == nil {
		return poker.Rules{}
	}
	return poker.Rules{
		FourFingers: c.Rules.FourFingers,
		Shortcut:    c.Rules.Shortcut,
		Smeared:     c.Rules.Smeared,
	}
}

// ParseCategories resolves the category filter. Nil means every category.
func (c *Config) ParseCategories() ([]poker.Category, error) {
	if len(c.Categories) == 0 {
		return nil, nil
	}
	out := make([]poker.Category, 0, len(c.Categories))
	for _, name := range c.Categories {
		cat, err := poker.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("categories: %w", err)
		}
		out = append(out, cat)
	}
	return out, nil
}

// BuildDeck applies the deck block to the standard deck. Removing a card
// that is not in the deck is an error.
func (c *Config) BuildDeck() (poker.Deck, error) {
	deck := poker.StandardDeck()
	if c.Deck == nil {
		return deck, nil
	}
	if c.Deck.Empty {
		deck = poker.Deck{}
	}

	for _, s := range c.Deck.Add {
		cards, err := poker.ParseCards(s)
		if err != nil {
			return nil, fmt.Errorf("deck add: %w", err)
		}
		deck = deck.With(cards...)
	}

	for _, s := range c.Deck.Remove {
		cards, err := poker.ParseCards(s)
		if err != nil {
			return nil, fmt.Errorf("deck remove: %w", err)
		}
		var removed int
		deck, removed = deck.Without(cards...)
		if removed != len(cards) {
			return nil, fmt.Errorf("deck remove: %q is not in the deck", s)
		}
	}

	return deck, nil
}
