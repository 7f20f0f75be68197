package models

// Round is one hand of the game. Bids and TricksTaken are keyed by player ID;
// a missing key and a nil value both mean the number has not been entered.
type Round struct {
	// Hands is the number of tricks dealt in the round
	Hands int `json:"hands"`

	// Bids holds each player's predicted trick count
	Bids map[string]*int `json:"bids"`

	// TricksTaken holds the trick count each player actually made
	TricksTaken map[string]*int `json:"tricksTaken"`
}

// NewRound creates a round with no bids or tricks entered
func NewRound(hands int) *Round {
	return &Round{
		Hands:       hands,
		Bids:        make(map[string]*int),
		TricksTaken: make(map[string]*int),
	}
}

// Clone returns a deep copy of the round
func (r *Round) Clone() *Round {
	out := NewRound(r.Hands)
	for id, v := range r.Bids {
		out.Bids[id] = cloneInt(v)
	}
	for id, v := range r.TricksTaken {
		out.TricksTaken[id] = cloneInt(v)
	}
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
