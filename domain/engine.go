package domain

import (
	"strconv"
	"strings"
)

// Decide applies one counting attempt to the current state and returns the
// next state with its outcome. It is a pure function: same inputs, same
// outputs, no side effects. Every input maps to a defined outcome, there is
// no error path.
//
// Rule order matters: a participant posting twice in a row is flagged as a
// consecutive violation even when the number itself would have been correct.
func Decide(state CountState, event CountEvent) (CountState, Outcome) {
	value, ok := parseAttempt(event.Content)
	if !ok {
		// Regular chatter, not a counting attempt.
		return state, OutcomeIgnored
	}

	if value < 0 {
		return state.Reset(), OutcomeInvalidReset
	}

	if state.LastAuthor != None && event.Author == state.LastAuthor {
		return state.Reset(), OutcomeConsecutiveReset
	}

	if value != state.NextCount() {
		return state.Reset(), OutcomeWrongNumberReset
	}

	next := state
	next.Current = value
	next.LastAuthor = event.Author
	if next.Current > next.Best {
		next.Best = next.Current
		next.BestHolder = event.Author
		return next, OutcomeNewRecord
	}
	return next, OutcomeAccepted
}

// parseAttempt extracts a base-10 integer from a message. Surrounding
// whitespace is trimmed; anything beyond an optional leading sign and digits
// disqualifies the message as an attempt.
func parseAttempt(content string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(content))
	if err != nil {
		return 0, false
	}
	return value, true
}
