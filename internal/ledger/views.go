package ledger

import (
	"github.com/KirkDiggler/scorage/internal/models"
	"github.com/KirkDiggler/scorage/internal/scoring"
)

// SumField selects which per-round entries SumRound adds up
type SumField string

const (
	SumBids   SumField = "bids"
	SumTricks SumField = "tricksTaken"
)

// PlayerView is a player as displayed, with its derived short name
type PlayerView struct {
	ID        string
	Name      string
	ShortName string
}

// Rules returns the active rule variant key
func (l *Ledger) Rules() scoring.RuleKey {
	return l.rules
}

// Rule returns the active rule variant
func (l *Ledger) Rule() scoring.Rule {
	rule, err := scoring.LookupRule(l.rules)
	if err != nil {
		// rules are validated on every write
		panic(err)
	}
	return rule
}

// Players returns the roster in order, each with its shortest unique prefix
func (l *Ledger) Players() []PlayerView {
	names := make([]string, len(l.playerOrder))
	for i, id := range l.playerOrder {
		names[i] = l.playerMap[id].Name
	}
	short := scoring.UniquePrefixes(names)

	views := make([]PlayerView, len(l.playerOrder))
	for i, id := range l.playerOrder {
		views[i] = PlayerView{
			ID:        id,
			Name:      names[i],
			ShortName: short[i],
		}
	}
	return views
}

// Player returns a copy of the player with the given ID
func (l *Ledger) Player(id string) (*models.Player, bool) {
	p, ok := l.playerMap[id]
	if !ok {
		return nil, false
	}
	return &models.Player{ID: p.ID, Name: p.Name}, true
}

// NumRounds returns the number of rounds, which is never zero
func (l *Ledger) NumRounds() int {
	return len(l.rounds)
}

// Round returns a copy of the round at index
func (l *Ledger) Round(index int) (*models.Round, error) {
	if index < 0 || index >= len(l.rounds) {
		return nil, ErrRoundNotFound
	}
	return l.rounds[index].Clone(), nil
}

// PointsFor returns a player's points for a round under the active rules,
// or nil while the bid or tricks taken is missing.
func (l *Ledger) PointsFor(round int, playerID string) *int {
	if round < 0 || round >= len(l.rounds) {
		return nil
	}
	r := l.rounds[round]
	return l.Rule().Score(r.Bids[playerID], r.TricksTaken[playerID], r.Hands)
}

// ScoreFor returns a player's total across all rounds. The total is nil when
// no round has produced points yet, which is different from a zero score.
func (l *Ledger) ScoreFor(playerID string) *int {
	var total *int
	for i := range l.rounds {
		points := l.PointsFor(i, playerID)
		if points == nil {
			continue
		}
		if total == nil {
			total = new(int)
		}
		*total += *points
	}
	return total
}

// SumRound adds up every player's bids or tricks for a round. Missing entries
// contribute nothing; a round with nothing entered sums to nil.
func (l *Ledger) SumRound(round int, field SumField) *int {
	if round < 0 || round >= len(l.rounds) {
		return nil
	}

	entries := l.rounds[round].Bids
	if field == SumTricks {
		entries = l.rounds[round].TricksTaken
	}

	var sum *int
	for _, id := range l.playerOrder {
		v := entries[id]
		if v == nil {
			continue
		}
		if sum == nil {
			sum = new(int)
		}
		*sum += *v
	}
	return sum
}

// NextHands predicts the hand count of the next round from the last two
func (l *Ledger) NextHands() int {
	n := len(l.rounds)
	last := l.rounds[n-1].Hands
	if n < 2 {
		return scoring.PredictHands(last, nil)
	}
	secondLast := l.rounds[n-2].Hands
	return scoring.PredictHands(last, &secondLast)
}
