package gateway

import (
	"charlie/domain"
	"charlie/runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReactionFor(t *testing.T) {
	tests := []struct {
		outcome      domain.Outcome
		wantReaction string
		wantOK       bool
	}{
		{domain.OutcomeAccepted, reactionAccepted, true},
		{domain.OutcomeNewRecord, reactionNewRecord, true},
		{domain.OutcomeInvalidReset, reactionRuined, true},
		{domain.OutcomeConsecutiveReset, reactionRuined, true},
		{domain.OutcomeWrongNumberReset, reactionRuined, true},
		{domain.OutcomePersistenceFailure, reactionWarning, true},
		{domain.OutcomeIgnored, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			req := require.New(t)
			reaction, ok := reactionFor(tt.outcome)
			req.Equal(tt.wantOK, ok)
			req.Equal(tt.wantReaction, reaction)
		})
	}
}

func TestRuinMessage(t *testing.T) {
	req := require.New(t)

	message := ruinMessage("1111", runtime.Result{Outcome: domain.OutcomeWrongNumberReset, RuinedAt: 7})
	req.Equal("<@1111> **RUINED THE COUNT** at 7. The next number is 1.", message)

	message = ruinMessage("1111", runtime.Result{Outcome: domain.OutcomeConsecutiveReset, RuinedAt: 7})
	req.Contains(message, "**You can't count twice in a row**")
}

func TestPersonalMessage(t *testing.T) {
	req := require.New(t)

	message := personalMessage("1111", &runtime.PersonalBest{Previous: 3, Current: 9})
	req.Equal("<@1111> **BEAT THEIR HIGHEST COUNT** at 9. Last personal record was 3.", message)

	message = personalMessage("1111", &runtime.PersonalBest{
		Previous: 3, Current: 9, Rank: 1, LastRank: 2, Overtaken: "2222",
	})
	req.Contains(message, "**BEAT THEIR RANK** at #1. Last rank was #2, beating <@2222>.")
}

func TestLeaderboardMessage(t *testing.T) {
	req := require.New(t)

	board := domain.Leaderboard{}
	board.Record("1111", 9)
	board.Record("2222", 5)
	snapshot := runtime.Snapshot{Board: board}

	message := leaderboardMessage(snapshot, "2222", 10)
	req.Contains(message, "`#1` ・ <@1111> ・ Highest count: **9**")
	req.Contains(message, "`#2` ・ <@2222> ・ Highest count: **5**")
	req.Contains(message, "Your rank is #2, your highest count is 5.")

	message = leaderboardMessage(runtime.Snapshot{}, "3333", 10)
	req.Contains(message, "No entries yet.")
	req.Contains(message, "You are not ranked yet.")
}
