package scoring

// ScoringError is a custom error type for scoring errors
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

const (
	ErrUnknownRule ScoringError = "unknown rule variant"
)
