package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeaderboard_Record_FirstCountIsPersonalBest(t *testing.T) {
	req := require.New(t)
	board := Leaderboard{}

	req.True(board.Record("Alice", 3))

	entry, ok := board.Entry("Alice")
	req.True(ok)
	req.Equal(3, entry.HighestCount)
	req.Equal(1, entry.TimesCounted)
	req.Equal(1, entry.Rank)
}

func TestLeaderboard_Record_BreaksPersonalBestAndRank(t *testing.T) {
	req := require.New(t)
	board := Leaderboard{}

	req.True(board.Record("Alice", 5))
	req.True(board.Record("Bob", 2))

	// Counting below the personal best changes nothing but the tally.
	req.False(board.Record("Bob", 1))

	rank, ok := board.Rank("Bob")
	req.True(ok)
	req.Equal(2, rank)

	// Bob overtakes Alice.
	req.True(board.Record("Bob", 8))

	bob, _ := board.Entry("Bob")
	req.Equal(8, bob.HighestCount)
	req.Equal(2, bob.LastHighestCount)
	req.Equal(3, bob.TimesCounted)
	req.Equal(1, bob.Rank)
	req.Equal(2, bob.LastRank)

	alice, _ := board.Entry("Alice")
	req.Equal(2, alice.Rank)

	overtaken, ok := board.EntryByRank(2)
	req.True(ok)
	req.Equal(UserID("Alice"), overtaken.UserID)
}

func TestLeaderboard_RecordMistake(t *testing.T) {
	req := require.New(t)
	board := Leaderboard{}

	board.RecordMistake("Clara")
	board.RecordMistake("Clara")

	entry, ok := board.Entry("Clara")
	req.True(ok)
	req.Equal(2, entry.MistakesMade)
	req.Zero(entry.HighestCount)
}

func TestLeaderboard_Top(t *testing.T) {
	req := require.New(t)
	board := Leaderboard{}
	board.Record("Alice", 5)
	board.Record("Bob", 9)
	board.Record("Clara", 7)

	top := board.Top(2)
	req.Len(top, 2)
	req.Equal(UserID("Bob"), top[0].UserID)
	req.Equal(UserID("Clara"), top[1].UserID)

	req.Len(board.Top(10), 3)

	_, ok := board.EntryByRank(4)
	req.False(ok)
}
