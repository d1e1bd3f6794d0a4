// Package runtime sequences counting events through the engine and the store.
// It owns the only mutable access path to a channel's state and contains no
// game rules of its own.
package runtime

import (
	"charlie/domain"
	"charlie/errors"
	"charlie/repositories"
	"context"
	"log/slog"
	"sync"
	"time"
)

// Result is the outcome of one handled event, enriched with whatever the
// presentation layer needs to talk back to the channel.
type Result struct {
	Outcome domain.Outcome
	State   domain.CountState
	// RuinedAt is the count the channel had reached before a reset outcome.
	RuinedAt int
	// Personal is set when an accepted count broke the author's personal best.
	Personal *PersonalBest
}

// PersonalBest describes a broken personal record on the leaderboard.
type PersonalBest struct {
	Previous int
	Current  int
	Rank     int
	LastRank int
	// Overtaken is the participant now ranked directly below, if the rank improved.
	Overtaken domain.UserID
}

// Snapshot is a read-only view of one channel's game.
type Snapshot struct {
	State domain.CountState
	Board domain.Leaderboard
}

type attemptRequest struct {
	event domain.CountEvent
	reply chan Result
}

type resetRequest struct {
	to    int
	reply chan error
}

type snapshotRequest struct {
	reply chan snapshotReply
}

type snapshotReply struct {
	snapshot Snapshot
	err      error
}

// Coordinator guarantees the single-writer discipline: one mailbox goroutine
// per channel, events applied strictly in arrival order, at most one state
// transition in flight. Two near-simultaneous messages can therefore never
// both be accepted as count N+1.
type Coordinator struct {
	mu           sync.Mutex
	log          *slog.Logger
	repository   repositories.ICountRepository
	mailboxes    map[domain.ChannelID]chan any
	bufferSize   int
	storeTimeout time.Duration
	done         chan struct{}
	closeOnce    sync.Once
	wg           sync.WaitGroup
}

func NewCoordinator(log *slog.Logger, repository repositories.ICountRepository,
	bufferSize int, storeTimeout time.Duration) *Coordinator {
	return &Coordinator{
		log:          log,
		repository:   repository,
		mailboxes:    make(map[domain.ChannelID]chan any),
		bufferSize:   bufferSize,
		storeTimeout: storeTimeout,
		done:         make(chan struct{}),
	}
}

// Run blocks until the context is canceled, then waits for every channel
// worker to drain. The Coordinator is meant to run under the Supervisor.
func (c *Coordinator) Run(ctx context.Context) error {
	<-ctx.Done()
	c.closeOnce.Do(func() { close(c.done) })
	c.wg.Wait()
	return ctx.Err()
}

// Handle applies one counting attempt to a channel and returns its outcome.
// Events for the same channel are serialized; events for different channels
// are independent.
func (c *Coordinator) Handle(ctx context.Context, channel domain.ChannelID, event domain.CountEvent) Result {
	reply := make(chan Result, 1)
	select {
	case c.mailbox(channel) <- attemptRequest{event: event, reply: reply}:
	case <-c.done:
		// Shutdown path: the event was never applied.
		return Result{Outcome: domain.OutcomePersistenceFailure}
	case <-ctx.Done():
		return Result{Outcome: domain.OutcomePersistenceFailure}
	}

	select {
	case result := <-reply:
		return result
	case <-c.done:
		return Result{Outcome: domain.OutcomePersistenceFailure}
	case <-ctx.Done():
		return Result{Outcome: domain.OutcomePersistenceFailure}
	}
}

// Reset restarts a channel's count at the given value, through the same
// mailbox as regular events so it cannot race a counting attempt.
func (c *Coordinator) Reset(ctx context.Context, channel domain.ChannelID, to int) error {
	if to < 0 {
		return errors.ErrNegativeReset
	}

	reply := make(chan error, 1)
	select {
	case c.mailbox(channel) <- resetRequest{to: to, reply: reply}:
	case <-c.done:
		return errors.ErrCoordinatorClosed
	case <-ctx.Done():
		return errors.ErrCoordinatorClosed
	}

	select {
	case err := <-reply:
		return err
	case <-c.done:
		return errors.ErrCoordinatorClosed
	case <-ctx.Done():
		return errors.ErrCoordinatorClosed
	}
}

// Snapshot reads a channel's state and leaderboard through the mailbox.
func (c *Coordinator) Snapshot(ctx context.Context, channel domain.ChannelID) (Snapshot, error) {
	reply := make(chan snapshotReply, 1)
	select {
	case c.mailbox(channel) <- snapshotRequest{reply: reply}:
	case <-c.done:
		return Snapshot{}, errors.ErrCoordinatorClosed
	case <-ctx.Done():
		return Snapshot{}, errors.ErrCoordinatorClosed
	}

	select {
	case r := <-reply:
		return r.snapshot, r.err
	case <-c.done:
		return Snapshot{}, errors.ErrCoordinatorClosed
	case <-ctx.Done():
		return Snapshot{}, errors.ErrCoordinatorClosed
	}
}

// mailbox returns the channel's request queue, starting its worker lazily.
func (c *Coordinator) mailbox(channel domain.ChannelID) chan any {
	c.mu.Lock()
	defer c.mu.Unlock()

	if mb, ok := c.mailboxes[channel]; ok {
		return mb
	}

	mb := make(chan any, c.bufferSize)
	c.mailboxes[channel] = mb

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.runChannel(channel, mb)
	}()
	return mb
}

func (c *Coordinator) runChannel(channel domain.ChannelID, requests chan any) {
	c.log.Debug("Starting channel worker", "channel", channel)
	for {
		select {
		case <-c.done:
			c.log.Debug("Stopping channel worker", "channel", channel)
			return
		case req := <-requests:
			switch r := req.(type) {
			case attemptRequest:
				r.reply <- c.apply(channel, r.event)
			case resetRequest:
				r.reply <- c.applyReset(channel, r.to)
			case snapshotRequest:
				record, err := c.load(channel)
				r.reply <- snapshotReply{snapshot: Snapshot{State: record.State, Board: record.Board}, err: err}
			}
		}
	}
}

// apply runs one event through load -> decide -> save. On a failed save the
// computed state is discarded: the next event reloads from the store, so
// memory never drifts from the last durable state.
func (c *Coordinator) apply(channel domain.ChannelID, event domain.CountEvent) Result {
	record, err := c.load(channel)
	if err != nil {
		c.log.Error("Load failed", "channel", channel, "event", event.ID, "err", err)
		return Result{Outcome: domain.OutcomePersistenceFailure}
	}

	next, outcome := domain.Decide(record.State, event)
	if outcome == domain.OutcomeIgnored {
		// State unchanged, nothing to persist.
		return Result{Outcome: outcome, State: record.State}
	}

	result := Result{Outcome: outcome, State: next}
	board := record.Board
	switch {
	case outcome.Advanced():
		result.Personal = recordAdvance(&board, event.Author, next.Current)
	case outcome.IsReset():
		result.RuinedAt = record.State.Current
		board.RecordMistake(event.Author)
	}

	if err = c.save(channel, repositories.Record{State: next, Board: board}); err != nil {
		c.log.Error("Save failed, keeping last durable state", "channel", channel, "event", event.ID, "err", err)
		return Result{Outcome: domain.OutcomePersistenceFailure, State: record.State}
	}

	c.log.Debug("Event applied", "channel", channel, "event", event.ID,
		"outcome", outcome.String(), "count", next.Current)
	return result
}

func (c *Coordinator) applyReset(channel domain.ChannelID, to int) error {
	record, err := c.load(channel)
	if err != nil {
		return err
	}
	record.State = record.State.ResetTo(to)
	if err = c.save(channel, record); err != nil {
		return err
	}
	c.log.Info("Count reset by moderator", "channel", channel, "count", to)
	return nil
}

// recordAdvance updates the leaderboard and describes a broken personal best.
func recordAdvance(board *domain.Leaderboard, author domain.UserID, value int) *PersonalBest {
	previousEntry, _ := board.Entry(author)

	if !board.Record(author, value) {
		return nil
	}

	entry, _ := board.Entry(author)
	personal := &PersonalBest{
		Previous: previousEntry.HighestCount,
		Current:  entry.HighestCount,
		Rank:     entry.Rank,
		LastRank: previousEntry.Rank,
	}
	if previousEntry.Rank > 0 && entry.Rank < previousEntry.Rank {
		if overtaken, ok := board.EntryByRank(entry.Rank + 1); ok {
			personal.Overtaken = overtaken.UserID
		}
	}
	return personal
}

// Store calls run against a fresh timeout-bounded context: a received event
// is never cancelled, but a stuck store must not hang the mailbox.
func (c *Coordinator) load(channel domain.ChannelID) (repositories.Record, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.storeTimeout)
	defer cancel()
	return c.repository.Load(ctx, channel)
}

func (c *Coordinator) save(channel domain.ChannelID, record repositories.Record) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.storeTimeout)
	defer cancel()
	return c.repository.Save(ctx, channel, record)
}
