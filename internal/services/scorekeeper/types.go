package scorekeeper

import (
	"github.com/KirkDiggler/scorage/internal/common/uuid"
	"github.com/KirkDiggler/scorage/internal/repositories/store"
	"github.com/KirkDiggler/scorage/internal/scoring"
)

// Config holds configuration for the scorekeeper service
type Config struct {
	// Store persists ledger snapshots; a disabled store keeps everything in memory
	Store store.Repository

	// UUIDGenerator mints player IDs
	UUIDGenerator uuid.UUID
}

// LedgerView is a ledger with every derived value computed for display
type LedgerView struct {
	LedgerID string
	View     string

	Rules       scoring.RuleKey
	RuleName    string
	RuleDetails []string

	Players []*PlayerView
	Rounds  []*RoundView

	// NextHands is the hand count the next added round will get
	NextHands int
}

// PlayerView is a player with its short name and running total
type PlayerView struct {
	ID        string
	Name      string
	ShortName string

	// Score is nil until some round has both a bid and tricks taken
	Score *int
}

// RoundView is one round of the ledger
type RoundView struct {
	// Number is the 1-based round number
	Number int
	Hands  int

	// Entries follow the player order
	Entries []*EntryView

	TotalBids   *int
	TotalTricks *int
}

// EntryView is one player's line in a round
type EntryView struct {
	PlayerID string
	Bid      *int
	Tricks   *int
	Points   *int
}

// RuleView describes a rule variant for a rules menu
type RuleView struct {
	Key     scoring.RuleKey
	Name    string
	Details []string
	Active  bool
}

// GetLedgerInput defines the input for fetching a ledger
type GetLedgerInput struct {
	LedgerID string
}

// GetLedgerOutput defines the output for fetching a ledger
type GetLedgerOutput struct {
	Ledger *LedgerView
}

// AddPlayerInput defines the input for adding a player
type AddPlayerInput struct {
	LedgerID string
	Name     string
}

// AddPlayerOutput defines the output for adding a player
type AddPlayerOutput struct {
	PlayerID string
	Ledger   *LedgerView
}

// RemovePlayerInput defines the input for removing a player.
// Player is an ID, a full name or an unambiguous name prefix.
type RemovePlayerInput struct {
	LedgerID string
	Player   string
}

// RemovePlayerOutput defines the output for removing a player
type RemovePlayerOutput struct {
	// Removed is false when no player matched
	Removed bool
	Ledger  *LedgerView
}

// EditPlayerNameInput defines the input for renaming a player
type EditPlayerNameInput struct {
	LedgerID string
	Player   string
	Name     string
}

// EditPlayerNameOutput defines the output for renaming a player
type EditPlayerNameOutput struct {
	PlayerID string
	Ledger   *LedgerView
}

// AddRoundInput defines the input for adding a round
type AddRoundInput struct {
	LedgerID string
}

// AddRoundOutput defines the output for adding a round
type AddRoundOutput struct {
	// Round is the zero-based index of the new round
	Round  int
	Hands  int
	Ledger *LedgerView
}

// RemoveRoundInput defines the input for removing a round
type RemoveRoundInput struct {
	LedgerID string

	// Round is zero-based
	Round int
}

// RemoveRoundOutput defines the output for removing a round
type RemoveRoundOutput struct {
	Ledger *LedgerView
}

// RemoveAllRoundsInput defines the input for resetting the rounds
type RemoveAllRoundsInput struct {
	LedgerID string
}

// RemoveAllRoundsOutput defines the output for resetting the rounds
type RemoveAllRoundsOutput struct {
	Ledger *LedgerView
}

// EditBidInput defines the input for entering a bid.
// Value is raw text; text without a leading integer clears the bid.
type EditBidInput struct {
	LedgerID string
	Round    int
	Player   string
	Value    string
}

// EditBidOutput defines the output for entering a bid
type EditBidOutput struct {
	PlayerID string
	Ledger   *LedgerView
}

// EditTrickInput defines the input for entering tricks taken
type EditTrickInput struct {
	LedgerID string
	Round    int
	Player   string
	Value    string
}

// EditTrickOutput defines the output for entering tricks taken
type EditTrickOutput struct {
	PlayerID string
	Ledger   *LedgerView
}

// EditHandsInput defines the input for overriding a round's hand count
type EditHandsInput struct {
	LedgerID string
	Round    int
	Value    string
}

// EditHandsOutput defines the output for overriding a round's hand count
type EditHandsOutput struct {
	Ledger *LedgerView
}

// SetRulesInput defines the input for switching rule variants
type SetRulesInput struct {
	LedgerID string
	Rules    scoring.RuleKey
}

// SetRulesOutput defines the output for switching rule variants
type SetRulesOutput struct {
	Ledger *LedgerView
}

// SetViewInput defines the input for recording the UI view
type SetViewInput struct {
	LedgerID string
	View     string
}

// SetViewOutput defines the output for recording the UI view
type SetViewOutput struct {
	Ledger *LedgerView
}

// ListRulesInput defines the input for listing rule variants.
// LedgerID is optional and only marks the active variant.
type ListRulesInput struct {
	LedgerID string
}

// ListRulesOutput defines the output for listing rule variants
type ListRulesOutput struct {
	Rules []*RuleView
}
