package engine

// History is the immutable undo stack for a single hand. Each accepted
// transition pushes the resulting state; Undo pops back to the previous one.
// The caller owns exactly one History per hand; nothing is shared across
// hands.
type History struct {
	states []*HandState
}

// NewHistory starts a history at the hand's initial state
func NewHistory(initial *HandState) *History {
	return &History{states: []*HandState{initial}}
}

// Current returns the latest state
func (hist *History) Current() *HandState {
	return hist.states[len(hist.states)-1]
}

// Push records a new state as current
func (hist *History) Push(state *HandState) {
	hist.states = append(hist.states, state)
}

// Undo discards the current state and returns the previous one verbatim. At
// the initial state it returns that state unchanged along with
// ErrSequenceExhausted.
func (hist *History) Undo() (*HandState, error) {
	if len(hist.states) == 1 {
		return hist.states[0], ErrSequenceExhausted
	}
	hist.states = hist.states[:len(hist.states)-1]
	return hist.Current(), nil
}

// Depth returns the number of recorded states including the initial one
func (hist *History) Depth() int {
	return len(hist.states)
}
