package services

import (
	"charlie/domain"
	"charlie/repositories"
	"charlie/runtime"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Full-stack run: service -> coordinator -> engine -> badger.
func TestCountService_GameRound(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := repositories.NewCountRepository(db, slog.Default())
	coordinator := runtime.NewCoordinator(slog.Default(), repository, 16, 2*time.Second)
	go func() { _ = coordinator.Run(ctx) }()

	service := NewCountService(coordinator)
	channel := domain.ChannelID("42")

	post := func(author domain.UserID, content string) runtime.Result {
		return service.HandleMessage(ctx, channel, domain.CountEvent{
			ID: uuid.New(), Author: author, Content: content, At: time.Now().UTC(),
		})
	}

	req.Equal(domain.OutcomeNewRecord, post("Alice", "1").Outcome)
	req.Equal(domain.OutcomeNewRecord, post("Bob", "2").Outcome)
	req.Equal(domain.OutcomeIgnored, post("Alice", "gg").Outcome)

	// Bob counts twice in a row (the chatter in between does not count).
	result := post("Bob", "3")
	req.Equal(domain.OutcomeConsecutiveReset, result.Outcome)
	req.Equal(2, result.RuinedAt)

	req.Equal(domain.OutcomeAccepted, post("Alice", "1").Outcome)

	req.NoError(service.ResetCount(ctx, channel, 0))

	snapshot, err := service.Snapshot(ctx, channel)
	req.NoError(err)
	req.Zero(snapshot.State.Current)
	req.Equal(2, snapshot.State.Best)
	req.Equal(domain.UserID("Bob"), snapshot.State.BestHolder)

	bob, ok := snapshot.Board.Entry("Bob")
	req.True(ok)
	req.Equal(1, bob.MistakesMade)
	req.Equal(2, bob.HighestCount)
}
