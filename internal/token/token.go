// Package token turns already-validated poker shorthand (e.g. "BB R 60")
// into a structured action token. It owns the syntactic half of the input
// validation pipeline; semantic legality (turn order, amounts versus stacks)
// belongs to the betting engine.
package token

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned for input that fails a syntactic check
var ErrInvalidInput = fmt.Errorf("invalid input")

// ActionToken is one tokenized player decision. Position and Decision hold
// the raw uppercase codes; an omitted position means "whoever is next to act".
type ActionToken struct {
	Position  string
	Decision  string
	Amount    int
	HasAmount bool
	Closing   bool // trailing '.' marks the action as street-closing
}

var positionCodes = map[string]bool{
	"SB": true, "BB": true, "UTG": true, "UTG1": true, "UTG2": true,
	"UTG+1": true, "UTG+2": true,
	"LJ": true, "HJ": true, "CO": true, "BTN": true,
}

var decisionCodes = map[string]bool{
	"X": true, "K": true, "B": true, "R": true, "C": true, "F": true, "A": true,
}

var aggressiveCodes = map[string]bool{
	"B": true, "R": true, "A": true,
}

// IsPositionCode reports whether s is a recognized seat code
func IsPositionCode(s string) bool {
	return positionCodes[strings.ToUpper(s)]
}

// IsDecisionCode reports whether s is a recognized decision code
func IsDecisionCode(s string) bool {
	return decisionCodes[strings.ToUpper(s)]
}

// IsAggressiveCode reports whether s is a bet, raise or all-in code
func IsAggressiveCode(s string) bool {
	return aggressiveCodes[strings.ToUpper(s)]
}

// Tokenize splits shorthand text into an ActionToken: an optional leading
// position code, a decision code, and an optional trailing integer amount.
// Only the syntactic checks run here (character set, completeness); first
// failure wins.
func Tokenize(text string) (ActionToken, error) {
	var tok ActionToken

	trimmed := strings.TrimSpace(text)
	if err := checkCharset(trimmed); err != nil {
		return tok, err
	}

	// Trailing punctuation marks the street-closing action.
	if strings.HasSuffix(trimmed, ".") || strings.HasSuffix(trimmed, ",") {
		tok.Closing = strings.HasSuffix(trimmed, ".")
		trimmed = strings.TrimRight(trimmed, ".,")
		trimmed = strings.TrimSpace(trimmed)
	}

	if trimmed == "" {
		return tok, fmt.Errorf("%w: %q is not a complete action", ErrInvalidInput, text)
	}

	fields := strings.Fields(trimmed)
	if len(fields) > 3 {
		return tok, fmt.Errorf("%w: too many tokens in %q", ErrInvalidInput, text)
	}

	// Optional leading position code.
	if IsPositionCode(fields[0]) {
		tok.Position = strings.ToUpper(fields[0])
		fields = fields[1:]
	}

	if len(fields) == 0 {
		return tok, fmt.Errorf("%w: %q names a seat but no decision", ErrInvalidInput, text)
	}

	tok.Decision = strings.ToUpper(fields[0])
	fields = fields[1:]

	if len(fields) > 0 {
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return tok, fmt.Errorf("%w: %q is not an amount", ErrInvalidInput, fields[0])
		}
		tok.Amount = n
		tok.HasAmount = true
	}

	return tok, nil
}

// checkCharset rejects any character outside the shorthand alphabet
func checkCharset(s string) error {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == ' ', r == '\t', r == '+', r == ',', r == '.':
		default:
			return fmt.Errorf("%w: unexpected character %q", ErrInvalidInput, string(r))
		}
	}
	return nil
}
