package domain

import "sort"

// LeaderboardEntry tracks one participant's personal bests.
type LeaderboardEntry struct {
	UserID           UserID `json:"user_id"`
	HighestCount     int    `json:"highest_count"`
	LastHighestCount int    `json:"last_highest_count"`
	TimesCounted     int    `json:"times_counted"`
	MistakesMade     int    `json:"mistakes_made"`
	Rank             int    `json:"rank"`
	LastRank         int    `json:"last_rank"`
}

// Leaderboard keeps entries ordered by highest count, best first.
// It is owned by the channel worker and is never shared between goroutines.
type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// Record registers an accepted count for a participant and reports whether
// their personal best was broken. A first count is always a personal best.
func (l *Leaderboard) Record(user UserID, value int) bool {
	index := l.indexOf(user)
	if index < 0 {
		l.Entries = append(l.Entries, LeaderboardEntry{
			UserID:       user,
			HighestCount: value,
			TimesCounted: 1,
		})
		l.reorder()
		return true
	}

	entry := &l.Entries[index]
	entry.TimesCounted++
	if value <= entry.HighestCount {
		return false
	}
	entry.LastHighestCount = entry.HighestCount
	entry.HighestCount = value
	l.reorder()
	return true
}

// RecordMistake charges a ruined count to a participant.
func (l *Leaderboard) RecordMistake(user UserID) {
	index := l.indexOf(user)
	if index < 0 {
		l.Entries = append(l.Entries, LeaderboardEntry{UserID: user, MistakesMade: 1})
		l.reorder()
		return
	}
	l.Entries[index].MistakesMade++
}

// Entry returns a participant's entry, if they ever counted.
func (l Leaderboard) Entry(user UserID) (LeaderboardEntry, bool) {
	index := l.indexOf(user)
	if index < 0 {
		return LeaderboardEntry{}, false
	}
	return l.Entries[index], true
}

// EntryByRank returns the entry holding the given 1-based rank.
func (l Leaderboard) EntryByRank(rank int) (LeaderboardEntry, bool) {
	if rank < 1 || rank > len(l.Entries) {
		return LeaderboardEntry{}, false
	}
	return l.Entries[rank-1], true
}

// Top returns at most n best entries.
func (l Leaderboard) Top(n int) []LeaderboardEntry {
	if n > len(l.Entries) {
		n = len(l.Entries)
	}
	return l.Entries[:n]
}

// Rank returns a participant's 1-based rank.
func (l Leaderboard) Rank(user UserID) (int, bool) {
	entry, ok := l.Entry(user)
	if !ok {
		return 0, false
	}
	return entry.Rank, true
}

func (l Leaderboard) indexOf(user UserID) int {
	for i, entry := range l.Entries {
		if entry.UserID == user {
			return i
		}
	}
	return -1
}

// reorder restores the highest-count ordering and reassigns ranks, keeping
// the previous rank around so the gateway can announce overtakes.
func (l *Leaderboard) reorder() {
	sort.SliceStable(l.Entries, func(i, j int) bool {
		return l.Entries[i].HighestCount > l.Entries[j].HighestCount
	})
	for i := range l.Entries {
		l.Entries[i].LastRank = l.Entries[i].Rank
		l.Entries[i].Rank = i + 1
	}
}
