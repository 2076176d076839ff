package platform

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// discordPlatform implements the Platform interface against a live
// discordgo session.
type discordPlatform struct {
	session *discordgo.Session
}

// Config holds configuration for the Discord platform adapter
type Config struct {
	// Session is an opened discordgo session
	Session *discordgo.Session
}

// NewDiscord creates a Platform backed by a discordgo session
func NewDiscord(cfg *Config) (*discordPlatform, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &discordPlatform{
		session: cfg.Session,
	}, nil
}

// isNotFound reports whether a REST error means the target resource is gone
func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}

// wrap converts 404s into ErrResourceMissing and annotates the rest
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		return fmt.Errorf("%s: %w", op, ErrResourceMissing)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// CreateVoiceRoom creates a voice channel under the given category
func (p *discordPlatform) CreateVoiceRoom(ctx context.Context, input *CreateVoiceRoomInput) (*CreateVoiceRoomOutput, error) {
	if input == nil || input.GuildID == "" || input.Name == "" {
		return nil, errors.New("input, guild ID and name cannot be empty")
	}

	channel, err := p.session.GuildChannelCreateComplex(input.GuildID, discordgo.GuildChannelCreateData{
		Name:      input.Name,
		Type:      discordgo.ChannelTypeGuildVoice,
		ParentID:  input.ParentID,
		UserLimit: input.UserLimit,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, wrap("create voice room", err)
	}

	return &CreateVoiceRoomOutput{
		RoomID: channel.ID,
	}, nil
}

// CreateCategory creates a channel category
func (p *discordPlatform) CreateCategory(ctx context.Context, guildID, name string) (string, error) {
	channel, err := p.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name: name,
		Type: discordgo.ChannelTypeGuildCategory,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", wrap("create category", err)
	}

	return channel.ID, nil
}

// DeleteChannel deletes a channel or category
func (p *discordPlatform) DeleteChannel(ctx context.Context, channelID string) error {
	_, err := p.session.ChannelDelete(channelID, discordgo.WithContext(ctx))
	return wrap("delete channel", err)
}

// MoveMember moves a member into a voice channel
func (p *discordPlatform) MoveMember(ctx context.Context, guildID, userID, roomID string) error {
	err := p.session.GuildMemberMove(guildID, userID, &roomID, discordgo.WithContext(ctx))
	return wrap("move member", err)
}

// DisconnectMember drops a member from voice
func (p *discordPlatform) DisconnectMember(ctx context.Context, guildID, userID string) error {
	err := p.session.GuildMemberMove(guildID, userID, nil, discordgo.WithContext(ctx))
	return wrap("disconnect member", err)
}

// permissionBit maps a Permission to its Discord bit
func permissionBit(perm Permission) int64 {
	if perm == PermissionView {
		return discordgo.PermissionViewChannel
	}
	return discordgo.PermissionVoiceConnect
}

// overwriteType maps a PrincipalType to the Discord overwrite type
func overwriteType(t PrincipalType) discordgo.PermissionOverwriteType {
	if t == PrincipalTypeMember {
		return discordgo.PermissionOverwriteTypeMember
	}
	return discordgo.PermissionOverwriteTypeRole
}

// SetPermissionRule applies one permission rule, merging it into the
// principal's existing overwrite so unrelated bits survive.
func (p *discordPlatform) SetPermissionRule(ctx context.Context, input *SetPermissionRuleInput) error {
	if input == nil || input.RoomID == "" || input.Principal.ID == "" {
		return errors.New("input, room ID and principal cannot be empty")
	}

	channel, err := p.session.Channel(input.RoomID, discordgo.WithContext(ctx))
	if err != nil {
		return wrap("set permission rule", err)
	}

	var allow, deny int64
	for _, overwrite := range channel.PermissionOverwrites {
		if overwrite.ID == input.Principal.ID && overwrite.Type == overwriteType(input.Principal.Type) {
			allow = overwrite.Allow
			deny = overwrite.Deny
			break
		}
	}

	bit := permissionBit(input.Permission)
	allow &^= bit
	deny &^= bit

	switch input.Rule {
	case RuleAllow:
		allow |= bit
	case RuleDeny:
		deny |= bit
	}

	if allow == 0 && deny == 0 {
		err = p.session.ChannelPermissionDelete(input.RoomID, input.Principal.ID, discordgo.WithContext(ctx))
	} else {
		err = p.session.ChannelPermissionSet(input.RoomID, input.Principal.ID,
			overwriteType(input.Principal.Type), allow, deny, discordgo.WithContext(ctx))
	}

	return wrap("set permission rule", err)
}

// SetChannelParent moves a channel under a category
func (p *discordPlatform) SetChannelParent(ctx context.Context, roomID, parentID string) error {
	_, err := p.session.ChannelEditComplex(roomID, &discordgo.ChannelEdit{
		ParentID: parentID,
	}, discordgo.WithContext(ctx))
	return wrap("set channel parent", err)
}

// SetUserLimit sets a voice channel's member cap
// channelLimitPayload always serializes user_limit, including zero.
// discordgo's ChannelEdit tags the field omitempty, which silently
// drops the limit-0 case that means "unlimited" to Discord.
type channelLimitPayload struct {
	UserLimit int `json:"user_limit"`
}

func (p *discordPlatform) SetUserLimit(ctx context.Context, roomID string, limit int) error {
	_, err := p.session.Request(http.MethodPatch, discordgo.EndpointChannel(roomID), channelLimitPayload{
		UserLimit: limit,
	}, discordgo.WithContext(ctx))
	return wrap("set user limit", err)
}

// RenameRoom renames a voice channel
func (p *discordPlatform) RenameRoom(ctx context.Context, roomID, name string) error {
	_, err := p.session.ChannelEditComplex(roomID, &discordgo.ChannelEdit{
		Name: name,
	}, discordgo.WithContext(ctx))
	return wrap("rename room", err)
}

// RoomOccupants returns the members currently in a voice channel,
// read from the gateway state cache.
func (p *discordPlatform) RoomOccupants(ctx context.Context, guildID, roomID string) ([]string, error) {
	guild, err := p.session.State.Guild(guildID)
	if err != nil {
		return nil, wrap("room occupants", err)
	}

	var occupants []string
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID == roomID {
			occupants = append(occupants, vs.UserID)
		}
	}

	return occupants, nil
}

// GrantRole adds a role to a member
func (p *discordPlatform) GrantRole(ctx context.Context, guildID, userID, roleID string) error {
	err := p.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx))
	return wrap("grant role", err)
}

// RevokeRole removes a role from a member
func (p *discordPlatform) RevokeRole(ctx context.Context, guildID, userID, roleID string) error {
	err := p.session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx))
	return wrap("revoke role", err)
}

// MemberRoles returns the role IDs a member currently holds
func (p *discordPlatform) MemberRoles(ctx context.Context, guildID, userID string) ([]string, error) {
	member, err := p.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, wrap("member roles", err)
	}

	return member.Roles, nil
}

// SetMemberMute server-mutes or unmutes a member
func (p *discordPlatform) SetMemberMute(ctx context.Context, guildID, userID string, mute bool) error {
	err := p.session.GuildMemberMute(guildID, userID, mute, discordgo.WithContext(ctx))
	return wrap("set member mute", err)
}

// MemberDisplayName resolves a member's nickname, falling back to
// their account name.
func (p *discordPlatform) MemberDisplayName(ctx context.Context, guildID, userID string) (string, error) {
	member, err := p.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return "", wrap("member display name", err)
	}

	if member.Nick != "" {
		return member.Nick, nil
	}

	return member.User.Username, nil
}

// toEmbed converts abstract message content into a Discord embed
func toEmbed(content *MessageContent) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       content.Title,
		Description: content.Description,
		Color:       0x5865f2,
	}

	if content.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: content.Footer,
		}
	}

	return embed
}

// SendMessage posts an embed and returns the new message ID
func (p *discordPlatform) SendMessage(ctx context.Context, channelID string, content *MessageContent) (string, error) {
	if content == nil {
		return "", errors.New("content cannot be nil")
	}

	message, err := p.session.ChannelMessageSendEmbed(channelID, toEmbed(content), discordgo.WithContext(ctx))
	if err != nil {
		return "", wrap("send message", err)
	}

	return message.ID, nil
}

// EditMessage rewrites an existing embed in place
func (p *discordPlatform) EditMessage(ctx context.Context, channelID, messageID string, content *MessageContent) error {
	if content == nil {
		return errors.New("content cannot be nil")
	}

	_, err := p.session.ChannelMessageEditEmbed(channelID, messageID, toEmbed(content), discordgo.WithContext(ctx))
	return wrap("edit message", err)
}

// FetchMessage reports whether a message still resolves on Discord
func (p *discordPlatform) FetchMessage(ctx context.Context, channelID, messageID string) (bool, error) {
	_, err := p.session.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("fetch message: %w", err)
	}

	return true, nil
}
