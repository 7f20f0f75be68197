package scorekeeper

import (
	"github.com/KirkDiggler/scorage/internal/ledger"
	"github.com/KirkDiggler/scorage/internal/scoring"
)

// ScorekeeperError is a custom error type for service errors
type ScorekeeperError string

// Error implements the error interface
func (e ScorekeeperError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        ScorekeeperError = "config cannot be nil"
	ErrNilStore         ScorekeeperError = "store cannot be nil"
	ErrNilUUIDGenerator ScorekeeperError = "UUID generator cannot be nil"
	ErrInvalidInput     ScorekeeperError = "input and ledger ID cannot be empty"
	ErrEmptyName        ScorekeeperError = "player name cannot be empty"
	ErrEmptyView        ScorekeeperError = "view cannot be empty"
)

// Errors surfaced from the ledger, re-exported for UI layers
var (
	ErrUnknownPlayer   = ledger.ErrUnknownPlayer
	ErrAmbiguousPlayer = ledger.ErrAmbiguousPlayer
	ErrRoundNotFound   = ledger.ErrRoundNotFound
	ErrInvalidHands    = ledger.ErrInvalidHands
	ErrUnknownRule     = scoring.ErrUnknownRule
)
