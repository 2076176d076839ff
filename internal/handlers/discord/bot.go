package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	activityService "guildkeeper/internal/services/activity"
	leaderboardService "guildkeeper/internal/services/leaderboard"
	roomsService "guildkeeper/internal/services/rooms"
	tiersService "guildkeeper/internal/services/tiers"
	"github.com/bwmarrin/discordgo"
)

// DefaultCommandPrefix is used when no prefix is configured
const DefaultCommandPrefix = ","

// Bot represents the Discord bot instance
type Bot struct {
	session *discordgo.Session
	config  *Config
	prefix  string

	activityService    activityService.Service
	roomsService       roomsService.Service
	leaderboardService leaderboardService.Service
	tiersService       tiersService.Service
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened discordgo session; the bot sets its
	// intents and handlers and owns its lifecycle from Start to Stop
	Session *discordgo.Session

	// GuildID is the single guild this bot serves; events from any
	// other guild are ignored
	GuildID string

	// CommandPrefix precedes every text command
	CommandPrefix string

	// Services
	ActivityService    activityService.Service
	RoomsService       roomsService.Service
	LeaderboardService leaderboardService.Service
	TiersService       tiersService.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.GuildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}

	if cfg.ActivityService == nil {
		return nil, errors.New("activity service cannot be nil")
	}

	if cfg.RoomsService == nil {
		return nil, errors.New("rooms service cannot be nil")
	}

	if cfg.LeaderboardService == nil {
		return nil, errors.New("leaderboard service cannot be nil")
	}

	if cfg.TiersService == nil {
		return nil, errors.New("tiers service cannot be nil")
	}

	prefix := cfg.CommandPrefix
	if prefix == "" {
		prefix = DefaultCommandPrefix
	}

	session := cfg.Session
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsGuildMembers |
		discordgo.IntentMessageContent

	bot := &Bot{
		session:            session,
		config:             cfg,
		prefix:             prefix,
		activityService:    cfg.ActivityService,
		roomsService:       cfg.RoomsService,
		leaderboardService: cfg.LeaderboardService,
		tiersService:       cfg.TiersService,
	}

	session.AddHandler(bot.handleMessageCreate)
	session.AddHandler(bot.handleVoiceStateUpdate)
	session.AddHandler(bot.handleGuildCreate)

	return bot, nil
}

// handleGuildCreate leaves any guild other than the configured one
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if g.ID == b.config.GuildID {
		return
	}

	log.Printf("Leaving unconfigured guild %s", g.ID)
	if err := s.GuildLeave(g.ID); err != nil {
		log.Printf("Error leaving guild %s: %v", g.ID, err)
	}
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

// handleVoiceStateUpdate feeds one presence transition through the room
// lifecycle and the session tracker
func (b *Bot) handleVoiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	if v.GuildID != b.config.GuildID {
		return
	}

	if v.Member != nil && v.Member.User != nil && v.Member.User.Bot {
		return
	}

	previousRoomID := ""
	if v.BeforeUpdate != nil {
		previousRoomID = v.BeforeUpdate.ChannelID
	}

	if previousRoomID == v.ChannelID {
		// Mute, deafen and stream changes reuse the same event
		return
	}

	ctx := context.Background()

	_, err := b.roomsService.HandleVoiceState(ctx, &roomsService.HandleVoiceStateInput{
		GuildID:        v.GuildID,
		UserID:         v.UserID,
		PreviousRoomID: previousRoomID,
		NewRoomID:      v.ChannelID,
	})
	if err != nil {
		log.Printf("Error handling room lifecycle for %s: %v", v.UserID, err)
	}

	output, err := b.activityService.HandleVoiceState(ctx, &activityService.HandleVoiceStateInput{
		UserID:         v.UserID,
		PreviousRoomID: previousRoomID,
		NewRoomID:      v.ChannelID,
	})
	if err != nil {
		log.Printf("Error tracking voice session for %s: %v", v.UserID, err)
		return
	}

	if output.SessionClosed {
		_, err := b.tiersService.Reconcile(ctx, &tiersService.ReconcileInput{
			UserID: v.UserID,
		})
		if err != nil {
			log.Printf("Error reconciling tiers for %s: %v", v.UserID, err)
		}
	}
}
