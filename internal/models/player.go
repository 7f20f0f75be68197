package models

// Player is someone keeping score in a ledger
type Player struct {
	// ID is the unique identifier for the player, stable for its lifetime
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`
}
