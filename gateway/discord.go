// Package gateway is the thin glue between Discord and the counting core.
// It maps incoming messages to counting events and outcomes to reactions,
// and holds no game logic of its own.
package gateway

import (
	"charlie/domain"
	"charlie/services"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	commandResetCount  = "reset-count"
	commandLeaderboard = "leaderboard"
	leaderboardTop     = 10
)

type Gateway struct {
	log     *slog.Logger
	session *discordgo.Session
	service services.ICountService
	channel domain.ChannelID
}

func New(log *slog.Logger, token string, channel domain.ChannelID, service services.ICountService) (*Gateway, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	return &Gateway{log: log, session: session, service: service, channel: channel}, nil
}

// Run connects to Discord and serves until the context ends. It satisfies
// contract.Worker so a crash (or a dropped connection surfacing as a panic in
// a handler) gets the session rebuilt by the supervisor.
func (g *Gateway) Run(ctx context.Context) error {
	removeMessage := g.session.AddHandler(g.onMessage)
	defer removeMessage()
	removeInteraction := g.session.AddHandler(g.onInteraction)
	defer removeInteraction()

	if err := g.session.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}
	defer func() {
		g.log.Info("Closing Discord session")
		_ = g.session.Close()
	}()

	if err := g.registerCommands(); err != nil {
		return err
	}

	g.log.Info("Gateway connected", "user", g.session.State.User.Username, "channel", g.channel)
	<-ctx.Done()
	return ctx.Err()
}

func (g *Gateway) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:                     commandResetCount,
			Description:              "Resets the count, optionally to a given value.",
			DefaultMemberPermissions: lo.ToPtr(int64(discordgo.PermissionManageMessages)),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "count",
					Description: "Value to restart from (defaults to 0).",
					MinValue:    lo.ToPtr(0.0),
				},
			},
		},
		{
			Name:        commandLeaderboard,
			Description: "Shows the counting leaderboard.",
		},
	}

	for _, command := range commands {
		if _, err := g.session.ApplicationCommandCreate(g.session.State.User.ID, "", command); err != nil {
			return fmt.Errorf("register command %s: %w", command.Name, err)
		}
	}
	return nil
}

func (g *Gateway) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if domain.ChannelID(m.ChannelID) != g.channel {
		return
	}

	event := domain.CountEvent{
		ID:      uuid.New(),
		Author:  domain.UserID(m.Author.ID),
		Content: m.Content,
		At:      time.Now().UTC(),
	}
	result := g.service.HandleMessage(context.Background(), g.channel, event)

	if reaction, ok := reactionFor(result.Outcome); ok {
		if err := s.MessageReactionAdd(m.ChannelID, m.ID, reaction); err != nil {
			g.log.Warn("Failed to add reaction", "err", err)
		}
	}
	if result.Personal != nil {
		if err := s.MessageReactionAdd(m.ChannelID, m.ID, reactionPersonal); err != nil {
			g.log.Warn("Failed to add reaction", "err", err)
		}
	}

	var announcement string
	switch {
	case result.Outcome.IsReset():
		announcement = ruinMessage(event.Author, result)
	case result.Personal != nil:
		announcement = personalMessage(event.Author, result.Personal)
	}
	if announcement != "" {
		if _, err := s.ChannelMessageSend(m.ChannelID, announcement); err != nil {
			g.log.Warn("Failed to send announcement", "err", err)
		}
	}
}

func (g *Gateway) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if domain.ChannelID(i.ChannelID) != g.channel {
		return
	}

	data := i.ApplicationCommandData()
	var content string
	switch data.Name {
	case commandResetCount:
		content = g.handleResetCount(data)
	case commandLeaderboard:
		content = g.handleLeaderboard(i)
	default:
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		g.log.Warn("Failed to respond to interaction", "command", data.Name, "err", err)
	}
}

func (g *Gateway) handleResetCount(data discordgo.ApplicationCommandInteractionData) string {
	to := 0
	if len(data.Options) > 0 {
		to = int(data.Options[0].IntValue())
	}

	if err := g.service.ResetCount(context.Background(), g.channel, to); err != nil {
		g.log.Error("Reset failed", "err", err)
		return "The count could not be reset, try again later."
	}
	return fmt.Sprintf("The count has been reset to %d.", to)
}

func (g *Gateway) handleLeaderboard(i *discordgo.InteractionCreate) string {
	snapshot, err := g.service.Snapshot(context.Background(), g.channel)
	if err != nil {
		g.log.Error("Snapshot failed", "err", err)
		return "The leaderboard is unavailable, try again later."
	}

	viewer := domain.None
	if i.Member != nil && i.Member.User != nil {
		viewer = domain.UserID(i.Member.User.ID)
	}
	return leaderboardMessage(snapshot, viewer, leaderboardTop)
}
