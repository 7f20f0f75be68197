package snapshot

// SnapshotError is a custom error type for snapshot errors
type SnapshotError string

// Error implements the error interface
func (e SnapshotError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        SnapshotError = "config cannot be nil"
	ErrNilStore         SnapshotError = "store cannot be nil"
	ErrNilUUIDGenerator SnapshotError = "UUID generator cannot be nil"
	ErrNilLedger        SnapshotError = "ledger cannot be nil"
	ErrInvalidLedgerID  SnapshotError = "ledger ID cannot be empty"
	ErrMissingField     SnapshotError = "snapshot field missing"
)
