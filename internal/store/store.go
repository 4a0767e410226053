// Package store persists games in BadgerDB.
package store

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

const keyPrefix = "game/"

// Record is the stored form of a game: where it started and the moves played.
// FEN, Status and Winner are derived and kept for listing without a replay.
type Record struct {
	ID        string    `json:"id"`
	StartFEN  string    `json:"start_fen"`
	Moves     []string  `json:"moves"`
	FEN       string    `json:"fen"`
	Status    string    `json:"status"`
	Winner    string    `json:"winner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Options configures Open.
type Options struct {
	// Dir holds the database files. Empty means DefaultDir().
	Dir string
	// InMemory keeps everything in RAM; Dir is ignored.
	InMemory bool
	// Logger receives badger's own log output. Nil silences it.
	Logger *zap.Logger
}

// Store wraps BadgerDB for game persistence.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a game database.
func Open(o Options) (*Store, error) {
	var opts badger.Options
	if o.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		dir := o.Dir
		if dir == "" {
			var err error
			if dir, err = DefaultDir(); err != nil {
				return nil, err
			}
		}
		opts = badger.DefaultOptions(dir)
	}

	if o.Logger != nil {
		opts.Logger = badgerLogger{o.Logger.Named("badger").Sugar()}
	} else {
		opts.Logger = nil // Disable logging
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Create stores a new game under a fresh ID.
func (s *Store) Create(g *game.Game) (*Record, error) {
	now := time.Now().UTC()
	rec := newRecord(uuid.NewString(), g, now, now)
	if err := s.put(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Save overwrites an existing game's record.
func (s *Store) Save(id string, g *game.Game) (*Record, error) {
	var rec *Record
	err := s.db.Update(func(txn *badger.Txn) error {
		old, err := getRecord(txn, id)
		if err != nil {
			return err
		}
		rec = newRecord(old.ID, g, old.CreatedAt, time.Now().UTC())
		return setRecord(txn, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns the stored record for id.
func (s *Store) Get(id string) (*Record, error) {
	var rec *Record
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = getRecord(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Load rebuilds the game stored under id.
func (s *Store) Load(id string) (*game.Game, *Record, error) {
	rec, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}
	g, err := rec.Game()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "replaying game %s", id)
	}
	return g, rec, nil
}

// List returns every stored record, most recently updated first.
func (s *Store) List() ([]Record, error) {
	var records []Record
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})
	return records, nil
}

// Delete removes a game.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := getRecord(txn, id); err != nil {
			return err
		}
		return txn.Delete(recordKey(id))
	})
}

// Game replays the record into a live game.
func (r *Record) Game() (*game.Game, error) {
	moves := make([]chess.Move, 0, len(r.Moves))
	for _, text := range r.Moves {
		m, err := chess.ParseMove(text)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInvalidMove, err.Error())
		}
		moves = append(moves, m)
	}

	g, err := game.Replay(r.StartFEN, moves)
	if err != nil {
		return nil, err
	}
	if chess.ParseGameStatus(r.Status) == chess.Resigned {
		if winner, ok := chess.ParseColour(r.Winner); ok {
			if err := g.Resign(winner.Opposite()); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func (s *Store) put(rec *Record) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return setRecord(txn, rec)
	})
}

func newRecord(id string, g *game.Game, created, updated time.Time) *Record {
	rec := &Record{
		ID:        id,
		StartFEN:  g.StartFEN(),
		Moves:     g.MoveList(),
		FEN:       g.FEN(),
		Status:    g.Status().String(),
		CreatedAt: created,
		UpdatedAt: updated,
	}
	if winner, ok := g.Winner(); ok {
		rec.Winner = winner.String()
	}
	return rec
}

func recordKey(id string) []byte {
	return []byte(keyPrefix + id)
}

func getRecord(txn *badger.Txn, id string) (*Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "malformed id %q", id)
	}

	item, err := txn.Get(recordKey(id))
	if err == badger.ErrKeyNotFound {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "id %s", id)
	}
	if err != nil {
		return nil, err
	}

	rec := &Record{}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func setRecord(txn *badger.Txn, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return txn.Set(recordKey(rec.ID), data)
}

// badgerLogger adapts zap to badger.Logger.
type badgerLogger struct {
	*zap.SugaredLogger
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}
