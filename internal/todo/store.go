package todo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/idilsaglam/tada/internal/kv"
	"github.com/idilsaglam/tada/internal/log"
)

const (
	// StorageKey holds the JSON snapshot of the whole list.
	StorageKey = "@todos"
	// CorruptKey receives an unparseable snapshot before it can be overwritten.
	CorruptKey = StorageKey + ".corrupt"
)

// ErrCorruptSnapshot wraps parse failures of the stored snapshot.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

var logger = log.GetLogger("store")

// Store keeps a list snapshot in a kv.Store under StorageKey.
type Store struct {
	kv kv.Store
}

func NewStore(s kv.Store) *Store {
	return &Store{kv: s}
}

// Load reads the snapshot. A missing key yields Defaults and no error.
// On a read or parse failure Load still returns Defaults, together with
// the error, so the caller can log it and carry on; a corrupt value is
// first copied to CorruptKey.
func (s *Store) Load(ctx context.Context) (List, error) {
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return Defaults(), fmt.Errorf("read %s: %w", StorageKey, err)
	}
	if !ok {
		logger.Debug().Msg("no snapshot, seeding defaults")
		return Defaults(), nil
	}

	l, perr := Decode(raw)
	if perr != nil {
		if err := s.kv.Set(ctx, CorruptKey, raw); err != nil {
			logger.Error().Err(err).Str("key", CorruptKey).Msg("could not preserve corrupt snapshot")
		}
		return Defaults(), perr
	}
	logger.Debug().Int("items", len(l)).Msg("snapshot loaded")
	return l, nil
}

// Save overwrites the snapshot with l.
func (s *Store) Save(ctx context.Context, l List) error {
	raw, err := Encode(l)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("write %s: %w", StorageKey, err)
	}
	return nil
}

// Encode renders l as a JSON array in list order.
func Encode(l List) (string, error) {
	if l == nil {
		l = List{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// Decode parses a snapshot. Items saved without an ID, or repeating an ID
// already seen earlier in the list, get a fresh one.
func Decode(raw string) (List, error) {
	var l List
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if l == nil {
		l = List{}
	}
	seen := make(map[string]bool, len(l))
	for i := range l {
		if l[i].ID == "" || seen[l[i].ID] {
			l[i].ID = newID()
		}
		seen[l[i].ID] = true
	}
	return l, nil
}
