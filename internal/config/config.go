package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-tracker/internal/engine"
)

// TableConfig is the table setup loaded from an HCL file
type TableConfig struct {
	Table TableSettings `hcl:"table,block"`
	Seats []SeatConfig  `hcl:"seat,block"`
}

// TableSettings contains table-level configuration
type TableSettings struct {
	Seats      int    `hcl:"seats"`
	SmallBlind int    `hcl:"small_blind"`
	BigBlind   int    `hcl:"big_blind"`
	Hero       string `hcl:"hero"`
	HeroCards  string `hcl:"hero_cards"`
	Stack      int    `hcl:"stack,optional"` // default stack for seats without one
}

// SeatConfig overrides the stack for a single seat
type SeatConfig struct {
	Position string `hcl:"position,label"`
	Stack    int    `hcl:"stack"`
}

// DefaultTableConfig returns a 6-max 100bb table
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		Table: TableSettings{
			Seats:      6,
			SmallBlind: 5,
			BigBlind:   10,
			Hero:       "BTN",
			HeroCards:  "AXKX",
			Stack:      1000,
		},
	}
}

// Load loads table configuration from an HCL file, falling back to defaults
// when the file does not exist.
func Load(filename string) (*TableConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultTableConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg TableConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Table.Stack == 0 {
		cfg.Table.Stack = cfg.Table.BigBlind * 100
	}

	return &cfg, nil
}

// Validate checks the configuration before a hand is created from it
func (c *TableConfig) Validate() error {
	if c.Table.Seats < 2 || c.Table.Seats > 9 {
		return fmt.Errorf("seats must be between 2 and 9, got %d", c.Table.Seats)
	}
	if c.Table.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if c.Table.BigBlind <= c.Table.SmallBlind {
		return fmt.Errorf("big blind must be greater than small blind")
	}
	if c.Table.Stack <= 0 {
		return fmt.Errorf("stack must be positive")
	}
	if _, err := engine.ParsePosition(c.Table.Hero); err != nil {
		return fmt.Errorf("invalid hero position %q", c.Table.Hero)
	}
	for _, seat := range c.Seats {
		if _, err := engine.ParsePosition(seat.Position); err != nil {
			return fmt.Errorf("invalid seat position %q", seat.Position)
		}
		if seat.Stack <= 0 {
			return fmt.Errorf("seat %s: stack must be positive", seat.Position)
		}
	}
	return nil
}

// HandConfig converts the loaded table setup into the engine's hand config
func (c *TableConfig) HandConfig() (engine.Config, error) {
	if err := c.Validate(); err != nil {
		return engine.Config{}, err
	}

	hero, err := engine.ParsePosition(c.Table.Hero)
	if err != nil {
		return engine.Config{}, err
	}

	positions, err := engine.PositionsForSeats(c.Table.Seats)
	if err != nil {
		return engine.Config{}, err
	}

	stacks := make(map[engine.Position]int, len(positions))
	for _, p := range positions {
		stacks[p] = c.Table.Stack
	}
	for _, seat := range c.Seats {
		p, err := engine.ParsePosition(seat.Position)
		if err != nil {
			return engine.Config{}, err
		}
		stacks[p] = seat.Stack
	}

	return engine.Config{
		Seats:      c.Table.Seats,
		SmallBlind: c.Table.SmallBlind,
		BigBlind:   c.Table.BigBlind,
		Hero:       hero,
		HeroCards:  c.Table.HeroCards,
		Stacks:     stacks,
	}, nil
}
