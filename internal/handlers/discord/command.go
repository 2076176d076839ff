package discord

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"guildkeeper/internal/models"
	activityService "guildkeeper/internal/services/activity"
	leaderboardService "guildkeeper/internal/services/leaderboard"
	roomsService "guildkeeper/internal/services/rooms"
	tiersService "guildkeeper/internal/services/tiers"
	"github.com/bwmarrin/discordgo"
)

// handleMessageCreate counts the message and routes prefix commands
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	if m.GuildID != b.config.GuildID {
		return
	}

	ctx := context.Background()

	err := b.activityService.RecordMessage(ctx, &activityService.RecordMessageInput{
		UserID: m.Author.ID,
	})
	if err != nil {
		log.Printf("Error recording message for %s: %v", m.Author.ID, err)
	}

	if !strings.HasPrefix(m.Content, b.prefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(m.Content, b.prefix))
	if len(fields) == 0 {
		return
	}

	command := strings.ToLower(fields[0])
	args := fields[1:]

	switch command {
	case "vmsetup":
		b.handleSetup(ctx, s, m)
	case "vmreset":
		b.handleResetSetup(ctx, s, m)
	case "vc":
		b.handleVoiceCommand(ctx, s, m, args)
	case "set":
		b.handleSetBinding(ctx, s, m, args)
	case "lb":
		b.handleRefreshBoards(ctx, s, m)
	case "upload", "refresh":
		if len(args) > 0 && strings.ToLower(args[0]) == "lb" {
			b.handleRefreshBoards(ctx, s, m)
		}
	case "resetstats":
		b.handleResetStats(ctx, s, m)
	case "stats":
		b.handleStats(ctx, s, m, args)
	}
}

// isAdministrator checks the caller's effective permissions
func (b *Bot) isAdministrator(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		log.Printf("Error resolving permissions for %s: %v", m.Author.ID, err)
		return false
	}

	return perms&discordgo.PermissionAdministrator != 0
}

// callerRoom resolves the managed room the caller is currently in and
// verifies they may control it. The owner always may; administrators
// may too.
func (b *Bot) callerRoom(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) (*models.Room, bool) {
	voiceState, err := s.State.VoiceState(m.GuildID, m.Author.ID)
	if err != nil || voiceState == nil || voiceState.ChannelID == "" {
		replyError(s, m.ChannelID, "You must be in a voice room to use this command.")
		return nil, false
	}

	output, err := b.roomsService.GetRoom(ctx, &roomsService.GetRoomInput{
		RoomID: voiceState.ChannelID,
	})
	if err != nil {
		replyError(s, m.ChannelID, "This voice channel is not a managed room.")
		return nil, false
	}

	if output.Room.OwnerID != m.Author.ID && !b.isAdministrator(s, m) {
		replyError(s, m.ChannelID, "Only the room owner can use this command.")
		return nil, false
	}

	return output.Room, true
}

// parseMentionID extracts the snowflake from a raw ID or a mention of
// the form <@id>, <@!id>, <@&id> or <#id>
func parseMentionID(arg string) string {
	id := strings.TrimSuffix(arg, ">")
	for _, prefix := range []string{"<@!", "<@&", "<@", "<#"} {
		if strings.HasPrefix(id, prefix) {
			return strings.TrimPrefix(id, prefix)
		}
	}
	return id
}

func (b *Bot) handleSetup(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	if !b.isAdministrator(s, m) {
		replyError(s, m.ChannelID, "Only administrators can set up the voice master.")
		return
	}

	output, err := b.roomsService.Setup(ctx, &roomsService.SetupInput{
		GuildID: m.GuildID,
	})
	if err != nil {
		log.Printf("Error setting up voice master: %v", err)
		replyError(s, m.ChannelID, "Failed to set up the voice master channels.")
		return
	}

	if output.AlreadySetUp {
		replyInfo(s, m.ChannelID, "Voice Master", "Already set up. Use the reset command to rebuild.")
		return
	}

	replySuccess(s, m.ChannelID, "Voice master channels created. Join the creation channel to get your own room.")
}

func (b *Bot) handleResetSetup(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	if !b.isAdministrator(s, m) {
		replyError(s, m.ChannelID, "Only administrators can reset the voice master.")
		return
	}

	_, err := b.roomsService.ResetSetup(ctx, &roomsService.ResetSetupInput{
		GuildID: m.GuildID,
	})
	if err != nil {
		log.Printf("Error resetting voice master: %v", err)
		replyError(s, m.ChannelID, "Failed to reset the voice master channels.")
		return
	}

	replySuccess(s, m.ChannelID, "Voice master channels rebuilt.")
}

func (b *Bot) handleVoiceCommand(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		replyInfo(s, m.ChannelID, "Voice Commands",
			"lock, unlock, hide, unhide, kick, ban, permit, mute, unmute, limit, name, transfer, info, tier")
		return
	}

	sub := strings.ToLower(args[0])
	rest := args[1:]

	if sub == "tier" {
		b.handleTierCommand(ctx, s, m, rest)
		return
	}

	room, ok := b.callerRoom(ctx, s, m)
	if !ok {
		return
	}

	switch sub {
	case "lock":
		if err := b.roomsService.Lock(ctx, &roomsService.LockInput{RoomID: room.ID}); err != nil {
			replyError(s, m.ChannelID, "Failed to lock the room.")
			return
		}
		replySuccess(s, m.ChannelID, "Room locked. Only you can join now.")

	case "unlock":
		if err := b.roomsService.Unlock(ctx, &roomsService.UnlockInput{RoomID: room.ID}); err != nil {
			replyError(s, m.ChannelID, "Failed to unlock the room.")
			return
		}
		replySuccess(s, m.ChannelID, "Room unlocked.")

	case "hide":
		if err := b.roomsService.Hide(ctx, &roomsService.HideInput{RoomID: room.ID}); err != nil {
			replyError(s, m.ChannelID, "Failed to hide the room.")
			return
		}
		replySuccess(s, m.ChannelID, "Room hidden.")

	case "unhide":
		if err := b.roomsService.Unhide(ctx, &roomsService.UnhideInput{RoomID: room.ID}); err != nil {
			replyError(s, m.ChannelID, "Failed to unhide the room.")
			return
		}
		replySuccess(s, m.ChannelID, "Room visible again.")

	case "kick":
		if len(rest) == 0 {
			replyError(s, m.ChannelID, "Mention the member to kick.")
			return
		}
		err := b.roomsService.Kick(ctx, &roomsService.KickInput{
			RoomID:   room.ID,
			TargetID: parseMentionID(rest[0]),
		})
		if err != nil {
			if err == roomsService.ErrTargetNotPresent {
				replyError(s, m.ChannelID, "That member is not in your room.")
				return
			}
			replyError(s, m.ChannelID, "Failed to kick the member.")
			return
		}
		replySuccess(s, m.ChannelID, "Member kicked from the room.")

	case "ban":
		if len(rest) == 0 {
			replyError(s, m.ChannelID, "Mention the member to ban.")
			return
		}
		err := b.roomsService.Ban(ctx, &roomsService.BanInput{
			RoomID:   room.ID,
			TargetID: parseMentionID(rest[0]),
		})
		if err != nil {
			replyError(s, m.ChannelID, "Failed to ban the member.")
			return
		}
		replySuccess(s, m.ChannelID, "Member banned from the room.")

	case "permit":
		if len(rest) == 0 {
			replyError(s, m.ChannelID, "Mention the member to permit.")
			return
		}
		err := b.roomsService.Permit(ctx, &roomsService.PermitInput{
			RoomID:   room.ID,
			TargetID: parseMentionID(rest[0]),
		})
		if err != nil {
			replyError(s, m.ChannelID, "Failed to permit the member.")
			return
		}
		replySuccess(s, m.ChannelID, "Member permitted to join the room.")

	case "mute", "unmute":
		if len(rest) == 0 {
			replyError(s, m.ChannelID, "Mention the member to mute or unmute.")
			return
		}
		err := b.roomsService.Mute(ctx, &roomsService.MuteInput{
			RoomID:   room.ID,
			TargetID: parseMentionID(rest[0]),
			Muted:    sub == "mute",
		})
		if err != nil {
			if err == roomsService.ErrTargetNotPresent {
				replyError(s, m.ChannelID, "That member is not in your room.")
				return
			}
			replyError(s, m.ChannelID, "Failed to update the member's mute state.")
			return
		}
		if sub == "mute" {
			replySuccess(s, m.ChannelID, "Member muted.")
		} else {
			replySuccess(s, m.ChannelID, "Member unmuted.")
		}

	case "limit":
		if len(rest) == 0 {
			replyError(s, m.ChannelID, "Give the new member limit, 0 for unlimited.")
			return
		}
		limit, err := strconv.Atoi(rest[0])
		if err != nil || limit < 0 {
			replyError(s, m.ChannelID, "The limit must be a non-negative number.")
			return
		}
		err = b.roomsService.SetLimit(ctx, &roomsService.SetLimitInput{
			RoomID: room.ID,
			Limit:  limit,
		})
		if err != nil {
			replyError(s, m.ChannelID, "Failed to set the room limit.")
			return
		}
		replySuccess(s, m.ChannelID, fmt.Sprintf("Room limit set to %d.", limit))

	case "name", "rename":
		if len(rest) == 0 {
			replyError(s, m.ChannelID, "Give the new room name.")
			return
		}
		err := b.roomsService.Rename(ctx, &roomsService.RenameInput{
			RoomID: room.ID,
			Name:   strings.Join(rest, " "),
		})
		if err != nil {
			replyError(s, m.ChannelID, "Failed to rename the room.")
			return
		}
		replySuccess(s, m.ChannelID, "Room renamed.")

	case "transfer":
		if len(rest) == 0 {
			replyError(s, m.ChannelID, "Mention the new owner.")
			return
		}
		err := b.roomsService.Transfer(ctx, &roomsService.TransferInput{
			RoomID:     room.ID,
			NewOwnerID: parseMentionID(rest[0]),
		})
		if err != nil {
			replyError(s, m.ChannelID, "Failed to transfer the room.")
			return
		}
		replySuccess(s, m.ChannelID, fmt.Sprintf("Room transferred to <@%s>.", parseMentionID(rest[0])))

	case "info":
		output, err := b.roomsService.Info(ctx, &roomsService.InfoInput{RoomID: room.ID})
		if err != nil {
			replyError(s, m.ChannelID, "Failed to fetch room info.")
			return
		}
		description := fmt.Sprintf(
			"Owner: <@%s>\nOccupants: %d\nLimit: %s\nLocked: %t\nHidden: %t",
			output.Room.OwnerID,
			output.OccupantCount,
			formatLimit(output.Room.UserLimit),
			output.Room.Locked,
			output.Room.Hidden,
		)
		replyInfo(s, m.ChannelID, "Room Info", description)

	default:
		replyError(s, m.ChannelID, fmt.Sprintf("Unknown voice command: %s", sub))
	}
}

func formatLimit(limit int) string {
	if limit <= 0 {
		return "unlimited"
	}
	return strconv.Itoa(limit)
}

func (b *Bot) handleTierCommand(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		replyInfo(s, m.ChannelID, "Tier Commands", "add <role> <minutes>, remove <role>, view")
		return
	}

	sub := strings.ToLower(args[0])

	if sub != "view" && !b.isAdministrator(s, m) {
		replyError(s, m.ChannelID, "Only administrators can manage tiers.")
		return
	}

	switch sub {
	case "add":
		if len(args) < 3 {
			replyError(s, m.ChannelID, "Usage: vc tier add <role> <minutes>")
			return
		}
		minutes, err := strconv.Atoi(args[2])
		if err != nil || minutes < 0 {
			replyError(s, m.ChannelID, "The minute threshold must be a non-negative number.")
			return
		}
		err = b.tiersService.AddTier(ctx, &tiersService.AddTierInput{
			RoleID:     parseMentionID(args[1]),
			MinMinutes: minutes,
		})
		if err != nil {
			replyError(s, m.ChannelID, "Failed to add the tier.")
			return
		}
		replySuccess(s, m.ChannelID, fmt.Sprintf("Tier added at %d voice minutes.", minutes))

	case "remove":
		if len(args) < 2 {
			replyError(s, m.ChannelID, "Usage: vc tier remove <role>")
			return
		}
		err := b.tiersService.RemoveTier(ctx, &tiersService.RemoveTierInput{
			RoleID: parseMentionID(args[1]),
		})
		if err != nil {
			replyError(s, m.ChannelID, "Failed to remove the tier.")
			return
		}
		replySuccess(s, m.ChannelID, "Tier removed.")

	case "view":
		output, err := b.tiersService.ListTiers(ctx)
		if err != nil {
			replyError(s, m.ChannelID, "Failed to list tiers.")
			return
		}
		if len(output.Tiers) == 0 {
			replyInfo(s, m.ChannelID, "Voice Tiers", "No tiers configured.")
			return
		}
		var lines []string
		for _, tier := range output.Tiers {
			lines = append(lines, fmt.Sprintf("<@&%s> at %d minutes", tier.RoleID, tier.MinMinutes))
		}
		replyInfo(s, m.ChannelID, "Voice Tiers", strings.Join(lines, "\n"))

	default:
		replyError(s, m.ChannelID, fmt.Sprintf("Unknown tier command: %s", sub))
	}
}

func (b *Bot) handleSetBinding(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !b.isAdministrator(s, m) {
		replyError(s, m.ChannelID, "Only administrators can bind leaderboards.")
		return
	}

	if len(args) == 0 {
		replyInfo(s, m.ChannelID, "Bindings", "chatlb [#channel], vclb [#channel]")
		return
	}

	var kind models.BoardKind
	switch strings.ToLower(args[0]) {
	case "chatlb":
		kind = models.BoardKindChat
	case "vclb":
		kind = models.BoardKindVoice
	default:
		replyError(s, m.ChannelID, fmt.Sprintf("Unknown binding: %s", args[0]))
		return
	}

	channelID := m.ChannelID
	if len(args) > 1 {
		channelID = parseMentionID(args[1])
	}

	_, err := b.leaderboardService.SetBinding(ctx, &leaderboardService.SetBindingInput{
		Kind:      kind,
		ChannelID: channelID,
	})
	if err != nil {
		replyError(s, m.ChannelID, "Failed to bind the leaderboard.")
		return
	}

	if _, err := b.leaderboardService.Render(ctx, &leaderboardService.RenderInput{Kind: kind}); err != nil {
		log.Printf("Error rendering board %s after binding: %v", kind, err)
	}

	replySuccess(s, m.ChannelID, fmt.Sprintf("Leaderboard bound to <#%s>.", channelID))
}

func (b *Bot) handleRefreshBoards(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	if err := b.leaderboardService.RenderAll(ctx); err != nil {
		log.Printf("Error refreshing leaderboards: %v", err)
		replyError(s, m.ChannelID, "Failed to refresh the leaderboards.")
		return
	}

	replySuccess(s, m.ChannelID, "Leaderboards refreshed.")
}

func (b *Bot) handleResetStats(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	if !b.isAdministrator(s, m) {
		replyError(s, m.ChannelID, "Only administrators can reset the activity ledger.")
		return
	}

	if err := b.activityService.Reset(ctx); err != nil {
		log.Printf("Error resetting activity ledger: %v", err)
		replyError(s, m.ChannelID, "Failed to reset the activity ledger.")
		return
	}

	replySuccess(s, m.ChannelID, "Activity ledger cleared.")
}

func (b *Bot) handleStats(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	userID := m.Author.ID
	if len(args) > 0 {
		userID = parseMentionID(args[0])
	}

	output, err := b.activityService.GetStats(ctx, &activityService.GetStatsInput{
		UserID: userID,
	})
	if err != nil {
		log.Printf("Error fetching stats for %s: %v", userID, err)
		replyError(s, m.ChannelID, "Failed to fetch stats.")
		return
	}

	description := fmt.Sprintf(
		"<@%s>\nMessages: %d\nVoice minutes: %d\nTier: %s",
		userID,
		output.Record.ChatMessages,
		output.Record.VoiceMinutes,
		b.highestTier(ctx, output.Record.VoiceMinutes),
	)
	replyInfo(s, m.ChannelID, "Activity Stats", description)
}

// highestTier names the highest threshold the member has met
func (b *Bot) highestTier(ctx context.Context, voiceMinutes int) string {
	output, err := b.tiersService.ListTiers(ctx)
	if err != nil {
		log.Printf("Error listing tiers: %v", err)
		return "unknown"
	}

	best := ""
	bestMinutes := -1
	for _, tier := range output.Tiers {
		if voiceMinutes >= tier.MinMinutes && tier.MinMinutes > bestMinutes {
			best = fmt.Sprintf("<@&%s>", tier.RoleID)
			bestMinutes = tier.MinMinutes
		}
	}

	if best == "" {
		return "none"
	}
	return best
}
