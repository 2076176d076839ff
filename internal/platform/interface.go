package platform

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_platform.go guildkeeper/internal/platform Platform

// Platform abstracts every outbound effect the engines request from
// Discord. The gateway remains the sole source of truth for channels,
// members and roles; implementations are best-effort and report
// failures instead of panicking.
type Platform interface {
	// CreateVoiceRoom creates a voice channel and returns its ID
	CreateVoiceRoom(ctx context.Context, input *CreateVoiceRoomInput) (*CreateVoiceRoomOutput, error)

	// CreateCategory creates a channel category and returns its ID
	CreateCategory(ctx context.Context, guildID, name string) (string, error)

	// DeleteChannel deletes a channel or category
	DeleteChannel(ctx context.Context, channelID string) error

	// MoveMember moves a member into a voice channel
	MoveMember(ctx context.Context, guildID, userID, roomID string) error

	// DisconnectMember drops a member from voice entirely
	DisconnectMember(ctx context.Context, guildID, userID string) error

	// SetPermissionRule applies one permission rule on a room
	SetPermissionRule(ctx context.Context, input *SetPermissionRuleInput) error

	// SetChannelParent moves a channel under a category
	SetChannelParent(ctx context.Context, roomID, parentID string) error

	// SetUserLimit sets a voice channel's member cap, 0 for unlimited
	SetUserLimit(ctx context.Context, roomID string, limit int) error

	// RenameRoom renames a voice channel
	RenameRoom(ctx context.Context, roomID, name string) error

	// RoomOccupants returns the user IDs currently in a voice channel
	RoomOccupants(ctx context.Context, guildID, roomID string) ([]string, error)

	// GrantRole adds a role to a member
	GrantRole(ctx context.Context, guildID, userID, roleID string) error

	// RevokeRole removes a role from a member
	RevokeRole(ctx context.Context, guildID, userID, roleID string) error

	// MemberRoles returns the role IDs a member currently holds
	MemberRoles(ctx context.Context, guildID, userID string) ([]string, error)

	// SetMemberMute server-mutes or unmutes a member
	SetMemberMute(ctx context.Context, guildID, userID string, mute bool) error

	// MemberDisplayName resolves a member's display name
	MemberDisplayName(ctx context.Context, guildID, userID string) (string, error)

	// SendMessage posts an embed and returns the new message ID
	SendMessage(ctx context.Context, channelID string, content *MessageContent) (string, error)

	// EditMessage rewrites an existing embed in place
	EditMessage(ctx context.Context, channelID, messageID string, content *MessageContent) error

	// FetchMessage reports whether a message still resolves
	FetchMessage(ctx context.Context, channelID, messageID string) (bool, error)
}
