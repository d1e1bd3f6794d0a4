package gateway

import (
	"charlie/domain"
	"charlie/errors"
	"charlie/mocks"
	"charlie/runtime"
	"log/slog"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func interaction(userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ChannelID: "42",
		Member:    &discordgo.Member{User: &discordgo.User{ID: userID}},
	}}
}

func TestGateway_HandleResetCount(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockICountService(ctrl)
	g := &Gateway{log: slog.Default(), service: service, channel: "42"}

	service.EXPECT().ResetCount(gomock.Any(), domain.ChannelID("42"), 0).Return(nil)
	req.Equal("The count has been reset to 0.", g.handleResetCount(discordgo.ApplicationCommandInteractionData{}))

	data := discordgo.ApplicationCommandInteractionData{
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Type: discordgo.ApplicationCommandOptionInteger, Value: float64(25)},
		},
	}
	service.EXPECT().ResetCount(gomock.Any(), domain.ChannelID("42"), 25).Return(nil)
	req.Equal("The count has been reset to 25.", g.handleResetCount(data))

	service.EXPECT().ResetCount(gomock.Any(), domain.ChannelID("42"), 0).Return(errors.ErrStoreUnavailable)
	req.Equal("The count could not be reset, try again later.",
		g.handleResetCount(discordgo.ApplicationCommandInteractionData{}))
}

func TestGateway_HandleLeaderboard(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockICountService(ctrl)
	g := &Gateway{log: slog.Default(), service: service, channel: "42"}

	board := domain.Leaderboard{}
	board.Record("1111", 4)
	service.EXPECT().Snapshot(gomock.Any(), domain.ChannelID("42")).
		Return(runtime.Snapshot{Board: board}, nil)

	content := g.handleLeaderboard(interaction("1111"))
	req.Contains(content, "<@1111>")
	req.Contains(content, "Your rank is #1")

	service.EXPECT().Snapshot(gomock.Any(), domain.ChannelID("42")).
		Return(runtime.Snapshot{}, errors.ErrStoreUnavailable)
	req.Equal("The leaderboard is unavailable, try again later.", g.handleLeaderboard(interaction("1111")))
}
