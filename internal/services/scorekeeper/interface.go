package scorekeeper

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/scorage/internal/services/scorekeeper Service

// Service defines the score ledger operations available to a UI.
// Every operation works on the ledger named by the input's LedgerID and
// returns the recomputed view of that ledger.
type Service interface {
	// GetLedger returns the current view of a ledger, creating it if needed
	GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error)

	// AddPlayer adds a player to the roster
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer removes a player and everything entered for them
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// EditPlayerName renames a player
	EditPlayerName(ctx context.Context, input *EditPlayerNameInput) (*EditPlayerNameOutput, error)

	// AddRound appends a round with a predicted hand count
	AddRound(ctx context.Context, input *AddRoundInput) (*AddRoundOutput, error)

	// RemoveRound deletes one round
	RemoveRound(ctx context.Context, input *RemoveRoundInput) (*RemoveRoundOutput, error)

	// RemoveAllRounds resets the ledger to a single empty round
	RemoveAllRounds(ctx context.Context, input *RemoveAllRoundsInput) (*RemoveAllRoundsOutput, error)

	// EditBid records a player's bid for a round
	EditBid(ctx context.Context, input *EditBidInput) (*EditBidOutput, error)

	// EditTrick records the tricks a player took in a round
	EditTrick(ctx context.Context, input *EditTrickInput) (*EditTrickOutput, error)

	// EditHands overrides the hand count of a round
	EditHands(ctx context.Context, input *EditHandsInput) (*EditHandsOutput, error)

	// SetRules switches the scoring rule variant
	SetRules(ctx context.Context, input *SetRulesInput) (*SetRulesOutput, error)

	// SetView stores which UI view the ledger was last shown in
	SetView(ctx context.Context, input *SetViewInput) (*SetViewOutput, error)

	// ListRules returns every rule variant for a rules menu
	ListRules(ctx context.Context, input *ListRulesInput) (*ListRulesOutput, error)
}
