package store

import "errors"

// Keys used by a persisted ledger snapshot
const (
	KeyDataVersion = "dataVersion"
	KeyView        = "view"
	KeyRules       = "rules"
	KeyPlayerMap   = "playerMap"
	KeyPlayerOrder = "playerOrder"
	KeyRounds      = "rounds"
)

var (
	// ErrInvalidInput is returned when a ledger ID or key is missing
	ErrInvalidInput = errors.New("input, ledger ID and key cannot be empty")
)

type GetInput struct {
	LedgerID string
	Key      string
}

type GetOutput struct {
	// Value is the stored document, nil when Found is false
	Value []byte

	// Found is false when nothing is stored under the key
	Found bool
}

type SetInput struct {
	LedgerID string
	Key      string
	Value    []byte
}

func validKey(ledgerID, key string) bool {
	return ledgerID != "" && key != ""
}
