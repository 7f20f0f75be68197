package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/scorage/internal/common/uuid"
	"github.com/KirkDiggler/scorage/internal/ledger"
	"github.com/KirkDiggler/scorage/internal/models"
	"github.com/KirkDiggler/scorage/internal/repositories/store"
	"github.com/KirkDiggler/scorage/internal/scoring"
)

const (
	// CurrentDataVersion tags the id-keyed snapshot layout. Version 1 was the
	// array-indexed "players" layout, which is never read.
	CurrentDataVersion = 2

	// DefaultView is the UI view a fresh ledger opens on
	DefaultView = "setup"
)

// Config holds configuration for the migrator
type Config struct {
	Store         store.Repository
	UUIDGenerator uuid.UUID
}

// Migrator loads ledgers from the store, replacing stale or missing snapshots
// with a default ledger, and writes changed fields back.
type Migrator struct {
	store store.Repository
	ids   uuid.UUID
}

type LoadInput struct {
	LedgerID string
}

type LoadOutput struct {
	Ledger *ledger.Ledger
	View   string

	// Migrated is true when the stored snapshot was absent or stale and a
	// default ledger replaced it
	Migrated bool

	// Detached is true when the store could not be read. The ledger is an
	// in-memory default that must not be saved over the stored snapshot.
	Detached bool
}

type SaveInput struct {
	LedgerID string
	Ledger   *ledger.Ledger
	Fields   ledger.Field
}

type SaveViewInput struct {
	LedgerID string
	View     string
}

// New creates a migrator
func New(cfg *Config) (*Migrator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Store == nil {
		return nil, ErrNilStore
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &Migrator{
		store: cfg.Store,
		ids:   cfg.UUIDGenerator,
	}, nil
}

// Load reads a ledger snapshot. Snapshots that are missing, older than
// CurrentDataVersion or unreadable are discarded as a whole and a default
// ledger is persisted in their place; there is no field-by-field upgrade.
func (m *Migrator) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.LedgerID == "" {
		return nil, ErrInvalidLedgerID
	}

	var version int
	found, err := m.get(ctx, input.LedgerID, store.KeyDataVersion, &version)
	if err != nil {
		var readErr *readError
		if errors.As(err, &readErr) {
			// The store is unreachable. Keep scorekeeping in memory and leave
			// whatever is stored untouched.
			log.Printf("Failed to read data version for ledger %s, using defaults: %v", input.LedgerID, err)
			return m.detached()
		}
		log.Printf("Unreadable data version for ledger %s: %v", input.LedgerID, err)
		return m.migrate(ctx, input.LedgerID)
	}
	if !found || version < CurrentDataVersion {
		log.Printf("Ledger %s has data version %d (found=%t), migrating to %d", input.LedgerID, version, found, CurrentDataVersion)
		return m.migrate(ctx, input.LedgerID)
	}

	state, err := m.readState(ctx, input.LedgerID)
	if err != nil {
		var readErr *readError
		if errors.As(err, &readErr) {
			log.Printf("Failed to read ledger %s, using defaults: %v", input.LedgerID, err)
			return m.detached()
		}
		log.Printf("Discarding snapshot for ledger %s: %v", input.LedgerID, err)
		return m.migrate(ctx, input.LedgerID)
	}

	l, err := ledger.FromState(m.ids, *state)
	if err != nil {
		return nil, err
	}

	view := DefaultView
	if _, err := m.get(ctx, input.LedgerID, store.KeyView, &view); err != nil {
		log.Printf("Failed to read view for ledger %s: %v", input.LedgerID, err)
		view = DefaultView
	}

	// Persist anything FromState had to repair
	if repaired := l.TakeChanges(); repaired != 0 {
		log.Printf("Repaired fields %s of ledger %s", repaired, input.LedgerID)
		if err := m.Save(ctx, &SaveInput{LedgerID: input.LedgerID, Ledger: l, Fields: repaired}); err != nil {
			log.Printf("Failed to persist repaired ledger %s: %v", input.LedgerID, err)
		}
	}

	return &LoadOutput{
		Ledger: l,
		View:   view,
	}, nil
}

// Save writes the requested top-level fields of a ledger. Nothing is written
// when the store is disabled.
func (m *Migrator) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.LedgerID == "" {
		return ErrInvalidLedgerID
	}
	if input.Ledger == nil {
		return ErrNilLedger
	}
	if !m.store.Enabled() || input.Fields == 0 {
		return nil
	}

	state := input.Ledger.State()
	fields := []struct {
		field ledger.Field
		key   string
		value any
	}{
		{ledger.FieldRules, store.KeyRules, state.Rules},
		{ledger.FieldPlayerMap, store.KeyPlayerMap, state.PlayerMap},
		{ledger.FieldPlayerOrder, store.KeyPlayerOrder, state.PlayerOrder},
		{ledger.FieldRounds, store.KeyRounds, state.Rounds},
	}

	var errs []error
	for _, f := range fields {
		if !input.Fields.Has(f.field) {
			continue
		}
		if err := m.set(ctx, input.LedgerID, f.key, f.value); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// SaveView writes the UI view of a ledger
func (m *Migrator) SaveView(ctx context.Context, input *SaveViewInput) error {
	if input == nil || input.LedgerID == "" {
		return ErrInvalidLedgerID
	}
	if !m.store.Enabled() {
		return nil
	}
	return m.set(ctx, input.LedgerID, store.KeyView, input.View)
}

func (m *Migrator) migrate(ctx context.Context, ledgerID string) (*LoadOutput, error) {
	output, err := m.fresh()
	if err != nil {
		return nil, err
	}
	output.Migrated = true

	if !m.store.Enabled() {
		return output, nil
	}

	// The version tag goes last so an interrupted migration is retried
	var errs []error
	if err := m.Save(ctx, &SaveInput{LedgerID: ledgerID, Ledger: output.Ledger, Fields: ledger.AllFields}); err != nil {
		errs = append(errs, err)
	}
	if err := m.set(ctx, ledgerID, store.KeyView, output.View); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		if err := m.set(ctx, ledgerID, store.KeyDataVersion, CurrentDataVersion); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		log.Printf("Failed to persist migrated ledger %s: %v", ledgerID, err)
	}

	return output, nil
}

func (m *Migrator) fresh() (*LoadOutput, error) {
	l, err := ledger.Default(m.ids)
	if err != nil {
		return nil, err
	}
	l.TakeChanges()

	return &LoadOutput{
		Ledger: l,
		View:   DefaultView,
	}, nil
}

func (m *Migrator) detached() (*LoadOutput, error) {
	output, err := m.fresh()
	if err != nil {
		return nil, err
	}
	output.Detached = true
	return output, nil
}

func (m *Migrator) readState(ctx context.Context, ledgerID string) (*ledger.State, error) {
	state := &ledger.State{}

	var rules string
	var playerMap map[string]*models.Player
	var playerOrder []string
	var rounds []*models.Round

	for _, f := range []struct {
		key string
		out any
	}{
		{store.KeyRules, &rules},
		{store.KeyPlayerMap, &playerMap},
		{store.KeyPlayerOrder, &playerOrder},
		{store.KeyRounds, &rounds},
	} {
		found, err := m.get(ctx, ledgerID, f.key, f.out)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("%s: %w", f.key, ErrMissingField)
		}
	}

	state.Rules = scoring.RuleKey(rules)
	state.PlayerMap = playerMap
	state.PlayerOrder = playerOrder
	state.Rounds = rounds

	return state, nil
}

// readError marks a failure to reach the store, as opposed to bad data
type readError struct {
	err error
}

func (e *readError) Error() string {
	return e.err.Error()
}

func (e *readError) Unwrap() error {
	return e.err
}

func (m *Migrator) get(ctx context.Context, ledgerID, key string, out any) (bool, error) {
	output, err := m.store.Get(ctx, &store.GetInput{
		LedgerID: ledgerID,
		Key:      key,
	})
	if err != nil {
		return false, &readError{err: fmt.Errorf("failed to read %s: %w", key, err)}
	}
	if !output.Found {
		return false, nil
	}
	if err := json.Unmarshal(output.Value, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (m *Migrator) set(ctx context.Context, ledgerID, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := m.store.Set(ctx, &store.SetInput{
		LedgerID: ledgerID,
		Key:      key,
		Value:    data,
	}); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}
