package rooms

// RoomError is a custom error type for room lifecycle errors
type RoomError string

// Error implements the error interface
func (e RoomError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound     RoomError = "room is not a managed voice room"
	ErrTargetNotPresent RoomError = "target is not in the room"
	ErrGuildNotSetUp    RoomError = "voice master is not set up for this guild"
	ErrNilConfig        RoomError = "config cannot be nil"
	ErrNilRoomRepo      RoomError = "room repository cannot be nil"
	ErrNilConfigRepo    RoomError = "guild config repository cannot be nil"
	ErrNilPlatform      RoomError = "platform cannot be nil"
	ErrNilClock         RoomError = "clock cannot be nil"
	ErrNilUUIDGenerator RoomError = "UUID generator cannot be nil"
)
