package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyCurrentGame = "current_game"
	gamePrefix     = "game/"
)

// UserPreferences stores user settings
type UserPreferences struct {
	SoundEnabled    bool      `json:"sound_enabled"`
	ShowCoordinates bool      `json:"show_coordinates"`
	LastPlayed      time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		SoundEnabled:    true,
		ShowCoordinates: true,
		LastPlayed:      time.Now(),
	}
}

// GameStats stores play statistics across games
type GameStats struct {
	GamesStarted int `json:"games_started"`
	MovesPlayed  int `json:"moves_played"`
	Captures     int `json:"captures"`
	WhiteMoves   int `json:"white_moves"`
	BlackMoves   int `json:"black_moves"`
}

// SavedGame is a snapshot of a game in progress.
// Cells holds one packed byte per square, row-major from the top-left.
type SavedGame struct {
	ID        string    `json:"id"`
	Cells     []byte    `json:"cells"`
	Turn      uint8     `json:"turn"`
	Moves     int       `json:"moves"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSavedGame returns an empty snapshot with a fresh ID.
func NewSavedGame() *SavedGame {
	now := time.Now()
	return &SavedGame{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the per-user data directory
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) the database in dir
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dir, err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// putJSON stores v as JSON under key.
func (s *Storage) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// getJSON decodes the value under key into v. found is false when the key
// does not exist, in which case v is left untouched.
func (s *Storage) getJSON(key string, v any) (found bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	return found, err
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.putJSON(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	_, err := s.getJSON(keyPreferences, prefs)
	return prefs, err
}

// SaveStats saves game statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	return s.putJSON(keyStats, stats)
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := &GameStats{}
	_, err := s.getJSON(keyStats, stats)
	return stats, err
}

// RecordGameStarted counts a new game
func (s *Storage) RecordGameStarted() error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	stats.GamesStarted++
	return s.SaveStats(stats)
}

// RecordMove counts a completed move by team ("white" or "black")
func (s *Storage) RecordMove(team string, captured bool) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.MovesPlayed++
	switch team {
	case "white":
		stats.WhiteMoves++
	case "black":
		stats.BlackMoves++
	}
	if captured {
		stats.Captures++
	}

	return s.SaveStats(stats)
}

// SaveGame stores the game and marks it as the current one
func (s *Storage) SaveGame(g *SavedGame) error {
	if g.ID == "" {
		return errors.New("saved game has no id")
	}
	g.UpdatedAt = time.Now()

	data, err := json.Marshal(g)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(gamePrefix+g.ID), data); err != nil {
			return err
		}
		return txn.Set([]byte(keyCurrentGame), []byte(g.ID))
	})
}

// LoadGame loads a game by ID. It returns nil, nil if there is no such game.
func (s *Storage) LoadGame(id string) (*SavedGame, error) {
	g := &SavedGame{}
	found, err := s.getJSON(gamePrefix+id, g)
	if err != nil || !found {
		return nil, err
	}
	return g, nil
}

// LoadCurrentGame loads the game most recently saved. It returns nil, nil
// if there is none.
func (s *Storage) LoadCurrentGame() (*SavedGame, error) {
	var id string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyCurrentGame))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		id = string(val)
		return nil
	})
	if err != nil || id == "" {
		return nil, err
	}
	return s.LoadGame(id)
}

// ListGames returns all saved games, most recently updated first
func (s *Storage) ListGames() ([]*SavedGame, error) {
	var games []*SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			g := &SavedGame{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, g)
			})
			if err != nil {
				return err
			}
			games = append(games, g)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].UpdatedAt.After(games[j].UpdatedAt)
	})
	return games, nil
}

// DeleteGame removes a game. If it was the current game, there is no
// current game afterwards.
func (s *Storage) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(gamePrefix + id)); err != nil {
			return err
		}

		item, err := txn.Get([]byte(keyCurrentGame))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		current, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if string(current) == id {
			return txn.Delete([]byte(keyCurrentGame))
		}
		return nil
	})
}

// PruneGames deletes every saved game except keep and returns how many
// were removed.
func (s *Storage) PruneGames(keep string) (int, error) {
	games, err := s.ListGames()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, g := range games {
		if g.ID == keep {
			continue
		}
		if err := s.DeleteGame(g.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
