package models

// GuildSettings holds the voice-master channel topology for a guild.
// Channels are identified by stable IDs recorded at setup time, never
// by display-name matching.
type GuildSettings struct {
	// GuildID is the Discord server these settings belong to
	GuildID string

	// MasterCategoryID is the category holding the template channels
	MasterCategoryID string

	// PublicCategoryID is the category ephemeral rooms are created under
	PublicCategoryID string

	// PrivateCategoryID is the category locked and hidden rooms move to
	PrivateCategoryID string

	// JoinToCreateID is the template channel that spawns a personal room
	JoinToCreateID string

	// JoinRandomID is the template channel that places the joiner into a
	// random non-full public room
	JoinRandomID string
}
