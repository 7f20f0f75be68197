package scoring

const (
	// MinHands is the smallest number of tricks dealt in a round
	MinHands = 1

	// MaxHands is the peak of the usual ramp before hands start decreasing
	MaxHands = 10
)

// PredictHands predicts the next round's hand count from the last one or two
// rounds. Hands ramp up by one to MaxHands, then back down to MinHands, then
// stay flat. secondLast is nil when only one round exists.
func PredictHands(last int, secondLast *int) int {
	switch {
	case secondLast == nil:
		return last + 1
	case last > *secondLast:
		if last == MaxHands {
			return last - 1
		}
		return last + 1
	case last < *secondLast && last > MinHands:
		return last - 1
	default:
		return last
	}
}
