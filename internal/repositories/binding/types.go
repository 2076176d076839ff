package binding

import "guildkeeper/internal/models"

// SaveBindingInput contains parameters for saving a binding
type SaveBindingInput struct {
	Binding *models.LeaderboardBinding
}

// GetBindingInput contains parameters for retrieving a binding
type GetBindingInput struct {
	Kind models.BoardKind
}
