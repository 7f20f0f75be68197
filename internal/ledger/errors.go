package ledger

// LedgerError is a custom error type for ledger errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnknownPlayer   LedgerError = "unknown player"
	ErrAmbiguousPlayer LedgerError = "player reference matches more than one player"
	ErrRoundNotFound   LedgerError = "round not found"
	ErrInvalidHands    LedgerError = "hands must be a positive integer"
	ErrNilUUID         LedgerError = "UUID generator cannot be nil"
)
