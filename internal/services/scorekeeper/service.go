package scorekeeper

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/scorage/internal/ledger"
	"github.com/KirkDiggler/scorage/internal/scoring"
	"github.com/KirkDiggler/scorage/internal/snapshot"
)

// entry is a loaded ledger and the UI view it was last shown in
type entry struct {
	ledger *ledger.Ledger
	view   string

	// detached ledgers were built while the store was unreadable and are
	// never written back
	detached bool
}

// service implements the Service interface
type service struct {
	mu       sync.Mutex
	migrator *snapshot.Migrator
	ledgers  map[string]*entry
}

// New creates a new scorekeeper service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Store == nil {
		return nil, ErrNilStore
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	migrator, err := snapshot.New(&snapshot.Config{
		Store:         cfg.Store,
		UUIDGenerator: cfg.UUIDGenerator,
	})
	if err != nil {
		return nil, err
	}

	return &service{
		migrator: migrator,
		ledgers:  make(map[string]*entry),
	}, nil
}

// GetLedger returns the current view of a ledger
func (s *service) GetLedger(ctx context.Context, input *GetLedgerInput) (*GetLedgerOutput, error) {
	if input == nil || input.LedgerID == "" {
		return nil, ErrInvalidInput
	}

	view, err := s.mutate(ctx, input.LedgerID, func(*ledger.Ledger) error { return nil })
	if err != nil {
		return nil, err
	}

	return &GetLedgerOutput{Ledger: view}, nil
}

// AddPlayer adds a player to the end of the roster
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil || input.LedgerID == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrEmptyName
	}

	var playerID string
	view, err := s.mutate(ctx, input.LedgerID, func(l *ledger.Ledger) error {
		playerID = l.AddPlayer(input.Name).ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AddPlayerOutput{
		PlayerID: playerID,
		Ledger:   view,
	}, nil
}

// RemovePlayer removes a player. A reference that matches nobody is a no-op.
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input == nil || input.LedgerID == "" {
		return nil, ErrInvalidInput
	}

	var removed bool
	view, err := s.mutate(ctx, input.LedgerID, func(l *ledger.Ledger) error {
		id, err := l.FindPlayer(input.Player)
		if errors.Is(err, ledger.ErrUnknownPlayer) {
			return nil
		}
		if err != nil {
			return err
		}
		removed = l.RemovePlayer(id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RemovePlayerOutput{
		Removed: removed,
		Ledger:  view,
	}, nil
}

// EditPlayerName renames a player
func (s *service) EditPlayerName(ctx context.Context, input *EditPlayerNameInput) (*EditPlayerNameOutput, error) {
	if input == nil || input.LedgerID == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrEmptyName
	}

	var playerID string
	view, err := s.mutate(ctx, input.LedgerID, func(l *ledger.Ledger) error {
		id, err := l.FindPlayer(input.Player)
		if err != nil {
			return err
		}
		playerID = id
		return l.EditPlayerName(id, input.Name)
	})
	if err != nil {
		return nil, err
	}

	return &EditPlayerNameOutput{
		PlayerID: playerID,
		Ledger:   view,
	}, nil
}

// AddRound appends a round with the predicted hand count
func (s *service) AddRound(ctx context.Context, input *AddRoundInput) (*AddRoundOutput, error) {
	if input == nil || input.LedgerID == "" {
		return nil, ErrInvalidInput
	}

	var index, hands int
	view, err := s.mutate(ctx, input.LedgerID, func(l *ledger.Ledger) error {
		hands = l.AddRound().Hands
		index = l.NumRounds() - 1
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AddRoundOutput{
		Round:  index,
		Hands:  hands,
		Ledger: view,
	}, nil
}

// RemoveRound deletes one round
func (s *service) RemoveRound(ctx context.Context, input *RemoveRoundInput) (*RemoveRoundOutput, error) {
	if input == nil || input.LedgerID == "" {
		return nil, ErrInvalidInput
	}

	view, err := s.mutate(ctx, input.LedgerID, func(l *ledger.Ledger) error {
		return l.RemoveRound(input.Round)
	})
	if err != nil {
		return nil, err
	}

	return &RemoveRoundOutput{Ledger: view}, nil
}

// RemoveAllRounds resets the ledger to a single empty round
func (s *service) RemoveAllRounds(ctx context.Context, input *RemoveAllRoundsInput) (*RemoveAllRoundsOutput, error) {
	if input == nil || input.LedgerID == "" {
		return nil, ErrInvalidInput
	}

	view, err := s.mutate(ctx, input.LedgerID, func(l *ledger.Ledger) error {
		l.RemoveAllRounds()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RemoveAllRoundsOutput{Ledger: view}, nil
}

// EditBid records a player's bid
func (s *service) EditBid(ctx context.Context, input *EditBidInput) (*EditBidOutput, error) {
	if input == nil || input.LedgerID == "" {
		return nil, ErrInvalidInput
	}

	var playerID string
	view, err := s.mutate(ctx, input.LedgerID, func(l *ledger.Ledger) error {
		id, err := l.FindPlayer(input.Player)
		if err != nil {
			return err
		}
		playerID = id
		return l.EditBid(input.Round, id, input.Value)
	})
	if err != nil {
		return nil, err
	}

	return &EditBidOutput{
		PlayerID: playerID,
		Ledger:   view,
	}, nil
}

// EditTrick records the tricks a player took
func (s *service) EditTrick(ctx context.Context, input *EditTrickInput) (*EditTrickOutput, error) {
	if input == nil || input.LedgerID == "" {
		return nil, ErrInvalidInput
	}

	var playerID string
	view, err := s.mutate(ctx, input.LedgerID, func(l *ledger.Ledger) error {
		id, err := l.FindPlayer(input.Player)
		if err != nil {
			return err
		}
		playerID = id
		return l.EditTrick(input.Round, id, input.Value)
	})
	if err != nil {
		return nil, err
	}

	return &EditTrickOutput{
		PlayerID: playerID,
		Ledger:   view,
	}, nil
}

// EditHands overrides the hand count of a round
func (s *service) EditHands(ctx context.Context, input *EditHandsInput) (*EditHandsOutput, error) {
	if input == nil || input.LedgerID == "" {
		return nil, ErrInvalidInput
	}

	view, err := s.mutate(ctx, input.LedgerID, func(l *ledger.Ledger) error {
		return l.EditHands(input.Round, input.Value)
	})
	if err != nil {
		return nil, err
	}

	return &EditHandsOutput{Ledger: view}, nil
}

// SetRules switches the rule variant
func (s *service) SetRules(ctx context.Context, input *SetRulesInput) (*SetRulesOutput, error) {
	if input == nil || input.LedgerID == "" {
		return nil, ErrInvalidInput
	}

	view, err := s.mutate(ctx, input.LedgerID, func(l *ledger.Ledger) error {
		return l.SetRules(input.Rules)
	})
	if err != nil {
		return nil, err
	}

	return &SetRulesOutput{Ledger: view}, nil
}

// SetView records the UI view of a ledger
func (s *service) SetView(ctx context.Context, input *SetViewInput) (*SetViewOutput, error) {
	if input == nil || input.LedgerID == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(input.View) == "" {
		return nil, ErrEmptyView
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.load(ctx, input.LedgerID)
	if err != nil {
		return nil, err
	}

	if e.view != input.View {
		e.view = input.View
		if e.detached {
			return &SetViewOutput{Ledger: buildView(input.LedgerID, e)}, nil
		}
		if err := s.migrator.SaveView(ctx, &snapshot.SaveViewInput{
			LedgerID: input.LedgerID,
			View:     input.View,
		}); err != nil {
			log.Printf("Failed to save view of ledger %s: %v", input.LedgerID, err)
		}
	}

	return &SetViewOutput{Ledger: buildView(input.LedgerID, e)}, nil
}

// ListRules returns the rule variants in menu order
func (s *service) ListRules(ctx context.Context, input *ListRulesInput) (*ListRulesOutput, error) {
	active := scoring.RuleKey("")
	if input != nil && input.LedgerID != "" {
		s.mu.Lock()
		e, err := s.load(ctx, input.LedgerID)
		if err == nil {
			active = e.ledger.Rules()
		}
		s.mu.Unlock()
		if err != nil {
			return nil, err
		}
	}

	variants := scoring.Variants()
	rules := make([]*RuleView, len(variants))
	for i, v := range variants {
		rules[i] = &RuleView{
			Key:     v.Key,
			Name:    v.Name,
			Details: append([]string(nil), v.Details...),
			Active:  v.Key == active,
		}
	}

	return &ListRulesOutput{Rules: rules}, nil
}

// mutate runs fn against a ledger under the service lock, persists whatever
// fields fn changed and returns the recomputed view. Ledger operations leave
// the ledger untouched when they fail.
func (s *service) mutate(ctx context.Context, ledgerID string, fn func(*ledger.Ledger) error) (*LedgerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.load(ctx, ledgerID)
	if err != nil {
		return nil, err
	}

	if err := fn(e.ledger); err != nil {
		return nil, err
	}

	if changed := e.ledger.TakeChanges(); changed != 0 && !e.detached {
		if err := s.migrator.Save(ctx, &snapshot.SaveInput{
			LedgerID: ledgerID,
			Ledger:   e.ledger,
			Fields:   changed,
		}); err != nil {
			log.Printf("Failed to save fields %s of ledger %s: %v", changed, ledgerID, err)
		}
	}

	return buildView(ledgerID, e), nil
}

// load returns the cached ledger, reading it through the migrator on first use.
// A detached ledger is re-read on every call until the store answers, at which
// point the stored snapshot replaces the in-memory one. Callers must hold s.mu.
func (s *service) load(ctx context.Context, ledgerID string) (*entry, error) {
	cached, ok := s.ledgers[ledgerID]
	if ok && !cached.detached {
		return cached, nil
	}

	output, err := s.migrator.Load(ctx, &snapshot.LoadInput{LedgerID: ledgerID})
	if err != nil {
		return nil, err
	}
	if ok && output.Detached {
		return cached, nil
	}
	if ok {
		log.Printf("Store is reachable again, reloaded ledger %s", ledgerID)
	}
	if output.Migrated {
		log.Printf("Started a new score ledger %s", ledgerID)
	}

	e := &entry{
		ledger:   output.Ledger,
		view:     output.View,
		detached: output.Detached,
	}
	s.ledgers[ledgerID] = e

	return e, nil
}
