package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-tracker/internal/engine"
	"github.com/lox/holdem-tracker/internal/randutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
table {
  seats       = 6
  small_blind = 5
  big_blind   = 10
  hero        = "CO"
  hero_cards  = "AsKd"
  stack       = 2000
}

seat "BB" {
  stack = 50
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 6, cfg.Table.Seats)
	assert.Equal(t, "CO", cfg.Table.Hero)
	require.Len(t, cfg.Seats, 1)
	assert.Equal(t, "BB", cfg.Seats[0].Position)
	assert.Equal(t, 50, cfg.Seats[0].Stack)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 6, cfg.Table.Seats)
	assert.Equal(t, 1000, cfg.Table.Stack)
	assert.Equal(t, "BTN", cfg.Table.Hero)
}

func TestLoadDefaultsStackFromBigBlind(t *testing.T) {
	path := writeConfig(t, `
table {
  seats       = 2
  small_blind = 5
  big_blind   = 10
  hero        = "BB"
  hero_cards  = "AXKX"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Table.Stack, "100 big blinds when unset")
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `table { seats = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *TableConfig {
		cfg := DefaultTableConfig()
		return cfg
	}

	cases := map[string]func(*TableConfig){
		"too few seats":     func(c *TableConfig) { c.Table.Seats = 1 },
		"too many seats":    func(c *TableConfig) { c.Table.Seats = 10 },
		"zero small blind":  func(c *TableConfig) { c.Table.SmallBlind = 0 },
		"inverted blinds":   func(c *TableConfig) { c.Table.BigBlind = 3 },
		"zero stack":        func(c *TableConfig) { c.Table.Stack = 0 },
		"bad hero position": func(c *TableConfig) { c.Table.Hero = "MP" },
		"bad seat position": func(c *TableConfig) { c.Seats = []SeatConfig{{Position: "XX", Stack: 100}} },
		"zero seat stack":   func(c *TableConfig) { c.Seats = []SeatConfig{{Position: "BB", Stack: 0}} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	require.NoError(t, base().Validate())
}

func TestHandConfig(t *testing.T) {
	cfg := DefaultTableConfig()
	cfg.Seats = []SeatConfig{{Position: "BB", Stack: 50}}

	hc, err := cfg.HandConfig()
	require.NoError(t, err)

	assert.Equal(t, 6, hc.Seats)
	assert.Equal(t, engine.Button, hc.Hero)
	assert.Equal(t, 50, hc.Stacks[engine.BigBlind])
	assert.Equal(t, 1000, hc.Stacks[engine.Cutoff])

	// The hand config feeds straight into hand creation.
	_, err = engine.NewHand(randutil.New(1), hc)
	require.NoError(t, err)
}
