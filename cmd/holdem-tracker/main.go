package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-tracker/internal/config"
	"github.com/lox/holdem-tracker/internal/engine"
	"github.com/lox/holdem-tracker/internal/randutil"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	boardStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

type CLI struct {
	Config string `short:"c" help:"Table setup HCL file" default:"table.hcl"`
	Seed   int64  `help:"RNG seed for random cards (0 = time-based)" default:"0"`
	Debug  bool   `short:"d" help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "tracker",
	})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(cli, logger); err != nil {
		logger.Fatal("tracker failed", "error", err)
	}
	ctx.Exit(0)
}

func run(cli CLI, logger *log.Logger) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	handCfg, err := cfg.HandConfig()
	if err != nil {
		return fmt.Errorf("invalid table setup: %w", err)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	hand, err := engine.NewHand(rng, handCfg)
	if err != nil {
		return fmt.Errorf("failed to start hand: %w", err)
	}
	logger.Info("hand started", "seats", handCfg.Seats,
		"blinds", fmt.Sprintf("%d/%d", handCfg.SmallBlind, handCfg.BigBlind),
		"hero", handCfg.Hero)

	fmt.Println(titleStyle.Render(" ♠ ♥ holdem-tracker ♦ ♣ "))
	history := engine.NewHistory(hand)
	printState(history.Current())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		state := history.Current()
		next, err := dispatch(state, line)
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			continue
		}
		if next == nil { // undo
			undone, err := history.Undo()
			if err != nil {
				fmt.Println(errorStyle.Render("nothing to undo"))
			}
			printState(undone)
			continue
		}

		logger.Debug("applied", "input", line, "street", next.Street, "pot", next.Pot)
		history.Push(next)
		printState(next)

		if next.Result != nil {
			printResult(next)
			return nil
		}
	}
	return scanner.Err()
}

// dispatch interprets one input line. A nil, nil return requests an undo.
func dispatch(state *engine.HandState, line string) (*engine.HandState, error) {
	fields := strings.Fields(line)

	switch strings.ToLower(fields[0]) {
	case "undo":
		return nil, nil
	case "deal":
		if len(fields) > 1 {
			return state.TransitionStage(engine.WithBoardCards(fields[1]))
		}
		return state.TransitionStage()
	case "show":
		if len(fields) != 3 {
			return nil, fmt.Errorf("usage: show <seat> <cards>")
		}
		pos, err := engine.ParsePosition(fields[1])
		if err != nil {
			return nil, err
		}
		return state.RevealHoleCards(pos, fields[2])
	case "muck":
		if len(fields) != 2 {
			return nil, fmt.Errorf("usage: muck <seat>")
		}
		pos, err := engine.ParsePosition(fields[1])
		if err != nil {
			return nil, err
		}
		return state.MuckHoleCards(pos)
	}

	if line == "." {
		return state.TransitionStage()
	}
	if strings.HasSuffix(line, ".") {
		return state.TransitionStage(engine.WithFinalAction(line))
	}
	return state.ApplyInput(line)
}

func printState(h *engine.HandState) {
	board := ""
	for _, c := range h.Board {
		board += c.String() + " "
	}
	fmt.Printf("%s  pot %d  board %s\n", h.Street, h.Pot, boardStyle.Render(strings.TrimSpace(board)))

	for _, a := range h.VisibleLog() {
		if a.Street == h.Street {
			fmt.Println("  " + a.Display())
		}
	}

	if next, ok := h.NextToAct(); ok {
		fmt.Printf("action on %s (stack %d, to call %d)\n", next, h.Stacks[next], h.CurrentBet-h.StreetBets[next])
	}
}

func printResult(h *engine.HandState) {
	r := h.Result
	line := fmt.Sprintf("winner(s) %s: %s", strings.Join(r.Winners, ", "), r.Description)
	if len(r.BestFive) > 0 {
		cards := ""
		for _, c := range r.BestFive {
			cards += c.String() + " "
		}
		line += " with " + strings.TrimSpace(cards)
	}
	fmt.Println(resultStyle.Render(line))
}
