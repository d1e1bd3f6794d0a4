package gateway

import (
	"charlie/domain"
	"charlie/runtime"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	reactionAccepted  = "✅"
	reactionRuined    = "❌"
	reactionNewRecord = "🎉"
	reactionPersonal  = "⭐"
	reactionWarning   = "⚠️"
)

func mention(user domain.UserID) string {
	return fmt.Sprintf("<@%s>", user)
}

// reactionFor maps an outcome to the emoji acknowledging it. Ignored events
// get no feedback at all.
func reactionFor(outcome domain.Outcome) (string, bool) {
	switch {
	case outcome == domain.OutcomeNewRecord:
		return reactionNewRecord, true
	case outcome.Advanced():
		return reactionAccepted, true
	case outcome.IsReset():
		return reactionRuined, true
	case outcome == domain.OutcomePersistenceFailure:
		return reactionWarning, true
	}
	return "", false
}

// ruinMessage announces a reset in the channel.
func ruinMessage(author domain.UserID, result runtime.Result) string {
	message := fmt.Sprintf("%s **RUINED THE COUNT** at %d. The next number is 1.",
		mention(author), result.RuinedAt)
	if result.Outcome == domain.OutcomeConsecutiveReset {
		message += " **You can't count twice in a row**"
	}
	return message
}

// personalMessage congratulates a broken personal best, charlie style.
func personalMessage(author domain.UserID, personal *runtime.PersonalBest) string {
	message := fmt.Sprintf("%s **BEAT THEIR HIGHEST COUNT** at %d. Last personal record was %d.",
		mention(author), personal.Current, personal.Previous)
	if personal.LastRank > 0 && personal.Rank < personal.LastRank {
		message += fmt.Sprintf("\nAnd, also **BEAT THEIR RANK** at #%d. Last rank was #%d.",
			personal.Rank, personal.LastRank)
		if personal.Overtaken != domain.None {
			message = strings.TrimSuffix(message, ".")
			message += fmt.Sprintf(", beating %s.", mention(personal.Overtaken))
		}
	}
	return message
}

// leaderboardMessage renders the top entries plus a personal footer.
func leaderboardMessage(snapshot runtime.Snapshot, viewer domain.UserID, top int) string {
	lines := lo.Map(snapshot.Board.Top(top), func(entry domain.LeaderboardEntry, _ int) string {
		return fmt.Sprintf("`#%d` ・ %s ・ Highest count: **%d**",
			entry.Rank, mention(entry.UserID), entry.HighestCount)
	})
	if len(lines) == 0 {
		lines = []string{"No entries yet."}
	}

	footer := "You are not ranked yet."
	if entry, ok := snapshot.Board.Entry(viewer); ok {
		footer = fmt.Sprintf("Your rank is #%d, your highest count is %d.", entry.Rank, entry.HighestCount)
	}

	return fmt.Sprintf("**Leaderboard**\n%s\n\n%s", strings.Join(lines, "\n"), footer)
}
