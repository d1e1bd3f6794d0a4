//go:generate go run go.uber.org/mock/mockgen -source=count_service.go -destination=../mocks/mock_count_service.go -package=mocks
package services

import (
	"charlie/domain"
	"charlie/runtime"
	"context"
)

type ICountService interface {
	HandleMessage(ctx context.Context, channel domain.ChannelID, event domain.CountEvent) runtime.Result
	ResetCount(ctx context.Context, channel domain.ChannelID, to int) error
	Snapshot(ctx context.Context, channel domain.ChannelID) (runtime.Snapshot, error)
}

// CountService is the boundary the gateway talks to. It carries no game
// logic; everything is delegated to the coordinator.
type CountService struct {
	coordinator *runtime.Coordinator
}

func NewCountService(coordinator *runtime.Coordinator) *CountService {
	return &CountService{coordinator: coordinator}
}

func (s *CountService) HandleMessage(ctx context.Context, channel domain.ChannelID, event domain.CountEvent) runtime.Result {
	return s.coordinator.Handle(ctx, channel, event)
}

func (s *CountService) ResetCount(ctx context.Context, channel domain.ChannelID, to int) error {
	return s.coordinator.Reset(ctx, channel, to)
}

func (s *CountService) Snapshot(ctx context.Context, channel domain.ChannelID) (runtime.Snapshot, error) {
	return s.coordinator.Snapshot(ctx, channel)
}
