// Package domain contains core concepts of the counting game.
// No runtime, storage, or chat-platform logic should be added here.
package domain

type ChannelID string

type UserID string

// None marks the absence of a last author, right after startup or a reset.
const None UserID = ""

// CountState is the whole game state of one channel.
// Values are immutable: every transition returns a new state.
type CountState struct {
	Current    int    `json:"current"`
	LastAuthor UserID `json:"last_author"`
	Best       int    `json:"best"`
	BestHolder UserID `json:"best_holder"`
}

// Reset clears the running count and its author.
// The best streak is append-only and survives every reset.
func (s CountState) Reset() CountState {
	return CountState{Best: s.Best, BestHolder: s.BestHolder}
}

// ResetTo is the moderator variant of Reset, restarting from an arbitrary value.
func (s CountState) ResetTo(value int) CountState {
	next := s.Reset()
	next.Current = value
	return next
}

// NextCount is the only value the channel will accept next.
func (s CountState) NextCount() int {
	return s.Current + 1
}
