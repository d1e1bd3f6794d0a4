package domain

import (
	"time"

	"github.com/google/uuid"
)

// CountEvent is one counting attempt as delivered by the chat platform.
// Events are immutable, processed once, and never persisted.
type CountEvent struct {
	ID      uuid.UUID
	Author  UserID
	Content string
	At      time.Time // arrival marker, used for sequencing only, never by Decide
}

type Outcome int

const (
	// OutcomeIgnored means the message was not a counting attempt at all.
	OutcomeIgnored Outcome = iota
	OutcomeAccepted
	OutcomeNewRecord
	OutcomeInvalidReset
	OutcomeConsecutiveReset
	OutcomeWrongNumberReset
	OutcomePersistenceFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeAccepted:
		return "Accepted"
	case OutcomeNewRecord:
		return "NewRecord"
	case OutcomeInvalidReset:
		return "InvalidReset"
	case OutcomeConsecutiveReset:
		return "ConsecutiveReset"
	case OutcomeWrongNumberReset:
		return "WrongNumberReset"
	case OutcomePersistenceFailure:
		return "PersistenceFailure"
	}
	return "Unknown"
}

// IsReset reports whether the outcome ruined the count.
func (o Outcome) IsReset() bool {
	switch o {
	case OutcomeInvalidReset, OutcomeConsecutiveReset, OutcomeWrongNumberReset:
		return true
	}
	return false
}

// Advanced reports whether the count moved forward.
func (o Outcome) Advanced() bool {
	return o == OutcomeAccepted || o == OutcomeNewRecord
}
