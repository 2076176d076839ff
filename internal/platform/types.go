package platform

import "errors"

// ErrResourceMissing is returned when the channel, message or member a
// call targets no longer exists on Discord.
var ErrResourceMissing = errors.New("external resource missing")

// PrincipalType distinguishes role and member permission targets
type PrincipalType string

const (
	// PrincipalTypeRole targets a role, including @everyone
	PrincipalTypeRole PrincipalType = "role"

	// PrincipalTypeMember targets a single member
	PrincipalTypeMember PrincipalType = "member"
)

// Principal identifies the target of a permission rule. The guild ID
// doubles as the @everyone role ID on Discord.
type Principal struct {
	// ID is the role or user ID
	ID string

	// Type is the kind of target
	Type PrincipalType
}

// Permission identifies which channel permission a rule touches
type Permission string

const (
	// PermissionConnect controls joining the voice channel
	PermissionConnect Permission = "connect"

	// PermissionView controls seeing the voice channel
	PermissionView Permission = "view"
)

// Rule is the effect of a permission rule
type Rule string

const (
	// RuleAllow explicitly grants the permission
	RuleAllow Rule = "allow"

	// RuleDeny explicitly denies the permission
	RuleDeny Rule = "deny"

	// RuleClear removes any explicit grant or denial
	RuleClear Rule = "clear"
)

// CreateVoiceRoomInput contains parameters for creating a voice channel
type CreateVoiceRoomInput struct {
	// GuildID is the server to create the channel in
	GuildID string

	// ParentID is the category to create the channel under
	ParentID string

	// Name is the channel's display name
	Name string

	// UserLimit is the member cap, 0 for unlimited
	UserLimit int
}

// CreateVoiceRoomOutput contains the result of creating a voice channel
type CreateVoiceRoomOutput struct {
	// RoomID is the new channel's ID
	RoomID string
}

// SetPermissionRuleInput contains parameters for one permission rule
type SetPermissionRuleInput struct {
	// RoomID is the channel the rule applies to
	RoomID string

	// Principal is the role or member the rule targets
	Principal Principal

	// Permission is which permission the rule touches
	Permission Permission

	// Rule is the effect to apply
	Rule Rule
}

// MessageContent is the renderable payload of an outbound embed
type MessageContent struct {
	// Title is the embed title
	Title string

	// Description is the embed body
	Description string

	// Footer is the embed footer text
	Footer string
}
