package game

import (
	"bytes"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const gameKeyPrefix = "game:"

// Store archives finished and in-progress games in a BadgerDB database,
// keyed by a caller-chosen id. The stored value is the same line-oriented
// stream History writes to files.
type Store struct {
	db *badger.DB
}

// OpenStore opens (or creates) the archive at dir.
func OpenStore(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open game store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveGame writes a history under the given id, replacing any previous
// version.
func (s *Store) SaveGame(id string, h *History) error {
	var buf bytes.Buffer
	if err := h.Save(&buf); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gameKeyPrefix+id), buf.Bytes())
	})
}

// LoadGame reads the history stored under the given id.
func (s *Store) LoadGame(id string) (*History, error) {
	var h History
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gameKeyPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return h.Load(bytes.NewReader(val))
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, fmt.Errorf("game %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListGames returns the ids of every stored game.
func (s *Store) ListGames() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteGame removes a stored game.
func (s *Store) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(gameKeyPrefix + id))
	})
}
