package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// FileConfig holds configuration for the file store
type FileConfig struct {
	// Dir holds one snapshot file per ledger
	Dir string

	// Disabled turns Set into a no-op
	Disabled bool
}

// fileRepository keeps each ledger's keys in a single msgpack file
type fileRepository struct {
	mu       sync.RWMutex
	dir      string
	disabled bool
}

// NewFile creates a store that writes msgpack snapshot files under cfg.Dir
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Dir == "" {
		return nil, errors.New("directory cannot be empty")
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return &fileRepository{
		dir:      cfg.Dir,
		disabled: cfg.Disabled,
	}, nil
}

// Enabled reports whether writes reach disk
func (f *fileRepository) Enabled() bool {
	return !f.disabled
}

// Get reads a ledger key from the ledger's snapshot file
func (f *fileRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || !validKey(input.LedgerID, input.Key) {
		return nil, ErrInvalidInput
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	values, err := f.read(input.LedgerID)
	if err != nil {
		return nil, err
	}

	value, ok := values[input.Key]
	if !ok {
		return &GetOutput{Found: false}, nil
	}

	return &GetOutput{
		Value: value,
		Found: true,
	}, nil
}

// Set rewrites the ledger's snapshot file with the key updated
func (f *fileRepository) Set(ctx context.Context, input *SetInput) error {
	if input == nil || !validKey(input.LedgerID, input.Key) {
		return ErrInvalidInput
	}

	if f.disabled {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read(input.LedgerID)
	if err != nil {
		return err
	}
	values[input.Key] = input.Value

	return f.write(input.LedgerID, values)
}

func (f *fileRepository) path(ledgerID string) string {
	// Escaped so every ledger ID gets its own file directly inside dir
	return filepath.Join(f.dir, url.PathEscape(ledgerID)+".mp")
}

func (f *fileRepository) read(ledgerID string) (map[string][]byte, error) {
	values := make(map[string][]byte)

	file, err := os.Open(f.path(ledgerID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values, nil
		}
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer file.Close()

	if err := msgpack.NewDecoder(file).Decode(&values); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if values == nil {
		values = make(map[string][]byte)
	}

	return values, nil
}

func (f *fileRepository) write(ledgerID string, values map[string][]byte) error {
	tmp, err := os.CreateTemp(f.dir, "tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	// Harmless after a successful rename
	defer os.Remove(tmp.Name())

	if err := msgpack.NewEncoder(tmp).Encode(values); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Atomic replace
	if err := os.Rename(tmp.Name(), f.path(ledgerID)); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}
