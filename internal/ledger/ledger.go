package ledger

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/scorage/internal/common/uuid"
	"github.com/KirkDiggler/scorage/internal/models"
	"github.com/KirkDiggler/scorage/internal/scoring"
)

const (
	// DefaultHands is the hand count of a freshly reset round
	DefaultHands = scoring.MinHands

	// DefaultPlayerName is the name of the player a default ledger starts with
	DefaultPlayerName = "Player 1"
)

// Ledger is the score sheet: the player roster, the rounds played and the
// active rule variant. It always holds at least one round.
//
// A Ledger is not safe for concurrent use; callers serialise mutations.
type Ledger struct {
	ids uuid.UUID

	rules       scoring.RuleKey
	playerOrder []string
	playerMap   map[string]*models.Player
	rounds      []*models.Round

	dirty Field
}

// State is a detached copy of the persisted ledger fields
type State struct {
	Rules       scoring.RuleKey
	PlayerMap   map[string]*models.Player
	PlayerOrder []string
	Rounds      []*models.Round
}

// New creates a ledger with no players, one default round and the default rules
func New(ids uuid.UUID) (*Ledger, error) {
	if ids == nil {
		return nil, ErrNilUUID
	}

	return &Ledger{
		ids:       ids,
		rules:     scoring.DefaultRule,
		playerMap: make(map[string]*models.Player),
		rounds:    []*models.Round{models.NewRound(DefaultHands)},
	}, nil
}

// Default creates the starting ledger: a single "Player 1" and one round
func Default(ids uuid.UUID) (*Ledger, error) {
	l, err := New(ids)
	if err != nil {
		return nil, err
	}

	l.AddPlayer(DefaultPlayerName)
	l.dirty = AllFields

	return l, nil
}

// FromState rebuilds a ledger from stored fields, repairing anything that
// breaks the ledger invariants. Repaired fields are left marked as changed.
func FromState(ids uuid.UUID, state State) (*Ledger, error) {
	l, err := New(ids)
	if err != nil {
		return nil, err
	}

	if state.Rules.IsValid() {
		l.rules = state.Rules
	} else {
		l.dirty |= FieldRules
	}

	// Only players present in both indexes survive
	seen := make(map[string]bool, len(state.PlayerOrder))
	for _, id := range state.PlayerOrder {
		player, ok := state.PlayerMap[id]
		if !ok || player == nil || seen[id] {
			l.dirty |= FieldPlayerOrder | FieldPlayerMap
			continue
		}
		seen[id] = true
		l.playerOrder = append(l.playerOrder, id)
		l.playerMap[id] = &models.Player{ID: id, Name: player.Name}
	}
	if len(state.PlayerMap) != len(l.playerMap) {
		l.dirty |= FieldPlayerMap
	}

	l.rounds = l.rounds[:0]
	for _, round := range state.Rounds {
		if round == nil {
			l.dirty |= FieldRounds
			continue
		}
		hands := round.Hands
		if hands < 1 {
			hands = DefaultHands
			l.dirty |= FieldRounds
		}
		repaired := models.NewRound(hands)
		for id, v := range round.Bids {
			if !seen[id] {
				l.dirty |= FieldRounds
				continue
			}
			repaired.Bids[id] = cloneInt(v)
		}
		for id, v := range round.TricksTaken {
			if !seen[id] {
				l.dirty |= FieldRounds
				continue
			}
			repaired.TricksTaken[id] = cloneInt(v)
		}
		l.rounds = append(l.rounds, repaired)
	}
	l.ensureRound()

	return l, nil
}

// State returns a deep copy of the persisted fields
func (l *Ledger) State() State {
	state := State{
		Rules:       l.rules,
		PlayerMap:   make(map[string]*models.Player, len(l.playerMap)),
		PlayerOrder: slices.Clone(l.playerOrder),
		Rounds:      make([]*models.Round, len(l.rounds)),
	}
	if state.PlayerOrder == nil {
		state.PlayerOrder = []string{}
	}
	for id, p := range l.playerMap {
		state.PlayerMap[id] = &models.Player{ID: p.ID, Name: p.Name}
	}
	for i, r := range l.rounds {
		state.Rounds[i] = r.Clone()
	}
	return state
}

// Clone returns an independent copy of the ledger, including pending changes
func (l *Ledger) Clone() *Ledger {
	state := l.State()
	return &Ledger{
		ids:         l.ids,
		rules:       state.Rules,
		playerOrder: state.PlayerOrder,
		playerMap:   state.PlayerMap,
		rounds:      state.Rounds,
		dirty:       l.dirty,
	}
}

// TakeChanges returns the fields changed since the last call and clears them
func (l *Ledger) TakeChanges() Field {
	changed := l.dirty
	l.dirty = 0
	return changed
}

// AddPlayer appends a new player with a fresh ID. No round entries are
// created for the player; absence means "not entered".
func (l *Ledger) AddPlayer(name string) *models.Player {
	player := &models.Player{
		ID:   l.ids.NewUUID(),
		Name: strings.TrimSpace(name),
	}

	l.playerOrder = append(l.playerOrder, player.ID)
	l.playerMap[player.ID] = player
	l.dirty |= FieldPlayerOrder | FieldPlayerMap

	return &models.Player{ID: player.ID, Name: player.Name}
}

// RemovePlayer drops a player and every bid and trick entered for them.
// Removing an unknown player is a no-op and returns false.
func (l *Ledger) RemovePlayer(id string) bool {
	if _, ok := l.playerMap[id]; !ok {
		return false
	}

	l.playerOrder = slices.DeleteFunc(l.playerOrder, func(pid string) bool {
		return pid == id
	})
	delete(l.playerMap, id)
	l.dirty |= FieldPlayerOrder | FieldPlayerMap

	for _, round := range l.rounds {
		_, hasBid := round.Bids[id]
		_, hasTricks := round.TricksTaken[id]
		if hasBid || hasTricks {
			delete(round.Bids, id)
			delete(round.TricksTaken, id)
			l.dirty |= FieldRounds
		}
	}

	return true
}

// EditPlayerName renames a player
func (l *Ledger) EditPlayerName(id, name string) error {
	player, ok := l.playerMap[id]
	if !ok {
		return ErrUnknownPlayer
	}

	player.Name = strings.TrimSpace(name)
	l.dirty |= FieldPlayerMap

	return nil
}

// AddRound appends a round with the predicted hand count and nothing entered
func (l *Ledger) AddRound() *models.Round {
	round := models.NewRound(l.NextHands())
	l.rounds = append(l.rounds, round)
	l.dirty |= FieldRounds

	return round.Clone()
}

// RemoveRound deletes the round at index. Removing the last remaining round
// leaves a single default round in its place.
func (l *Ledger) RemoveRound(index int) error {
	if index < 0 || index >= len(l.rounds) {
		return ErrRoundNotFound
	}

	l.rounds = slices.Delete(l.rounds, index, index+1)
	l.ensureRound()
	l.dirty |= FieldRounds

	return nil
}

// RemoveAllRounds replaces every round with a single default round
func (l *Ledger) RemoveAllRounds() {
	l.rounds = []*models.Round{models.NewRound(DefaultHands)}
	l.dirty |= FieldRounds
}

// EditBid stores the parsed bid for a player in a round. Text that does not
// parse clears the bid.
func (l *Ledger) EditBid(round int, playerID, raw string) error {
	r, err := l.entryRound(round, playerID)
	if err != nil {
		return err
	}

	r.Bids[playerID] = scoring.ParseInteger(raw)
	l.dirty |= FieldRounds

	return nil
}

// EditTrick stores the parsed tricks taken for a player in a round. Text that
// does not parse clears the value.
func (l *Ledger) EditTrick(round int, playerID, raw string) error {
	r, err := l.entryRound(round, playerID)
	if err != nil {
		return err
	}

	r.TricksTaken[playerID] = scoring.ParseInteger(raw)
	l.dirty |= FieldRounds

	return nil
}

// EditHands overrides the hand count of a round
func (l *Ledger) EditHands(round int, raw string) error {
	if round < 0 || round >= len(l.rounds) {
		return ErrRoundNotFound
	}

	hands := scoring.ParseInteger(raw)
	if hands == nil || *hands < scoring.MinHands {
		return ErrInvalidHands
	}

	l.rounds[round].Hands = *hands
	l.dirty |= FieldRounds

	return nil
}

// SetRules switches the active rule variant. Scores are always derived from
// the raw bids, so every round is rescored immediately.
func (l *Ledger) SetRules(key scoring.RuleKey) error {
	if !key.IsValid() {
		return scoring.ErrUnknownRule
	}

	l.rules = key
	l.dirty |= FieldRules

	return nil
}

func (l *Ledger) entryRound(round int, playerID string) (*models.Round, error) {
	if round < 0 || round >= len(l.rounds) {
		return nil, ErrRoundNotFound
	}
	if _, ok := l.playerMap[playerID]; !ok {
		return nil, ErrUnknownPlayer
	}
	return l.rounds[round], nil
}

func (l *Ledger) ensureRound() {
	if len(l.rounds) == 0 {
		l.rounds = append(l.rounds, models.NewRound(DefaultHands))
		l.dirty |= FieldRounds
	}
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
