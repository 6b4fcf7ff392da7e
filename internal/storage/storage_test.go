package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestPreferences(t *testing.T) {
	s := openTemp(t)

	t.Run("Defaults", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences: %v", err)
		}
		if !prefs.SoundEnabled {
			t.Errorf("Expected sound enabled by default")
		}
		if !prefs.ShowCoordinates {
			t.Errorf("Expected coordinates shown by default")
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		prefs := DefaultPreferences()
		prefs.SoundEnabled = false
		if err := s.SavePreferences(prefs); err != nil {
			t.Fatalf("SavePreferences: %v", err)
		}

		loaded, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences: %v", err)
		}
		if loaded.SoundEnabled {
			t.Errorf("Expected sound disabled after save")
		}
		if !loaded.ShowCoordinates {
			t.Errorf("Expected coordinates to stay on")
		}
	})
}

func TestStats(t *testing.T) {
	s := openTemp(t)

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesStarted != 0 || stats.MovesPlayed != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	if err := s.RecordGameStarted(); err != nil {
		t.Fatalf("RecordGameStarted: %v", err)
	}
	if err := s.RecordMove("white", false); err != nil {
		t.Fatalf("RecordMove: %v", err)
	}
	if err := s.RecordMove("black", true); err != nil {
		t.Fatalf("RecordMove: %v", err)
	}
	if err := s.RecordMove("white", true); err != nil {
		t.Fatalf("RecordMove: %v", err)
	}

	stats, err = s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	want := GameStats{GamesStarted: 1, MovesPlayed: 3, Captures: 2, WhiteMoves: 2, BlackMoves: 1}
	if *stats != want {
		t.Errorf("Stats = %+v, want %+v", *stats, want)
	}
}

func TestSavedGames(t *testing.T) {
	s := openTemp(t)

	current, err := s.LoadCurrentGame()
	if err != nil {
		t.Fatalf("LoadCurrentGame: %v", err)
	}
	if current != nil {
		t.Fatalf("Expected no current game, got %+v", current)
	}

	first := NewSavedGame()
	first.Cells = []byte{0x12, 0x00, 0x21}
	first.Turn = 1
	if err := s.SaveGame(first); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	time.Sleep(2 * time.Millisecond)

	second := NewSavedGame()
	second.Cells = []byte{0x00, 0x16}
	second.Turn = 2
	second.Moves = 5
	if err := s.SaveGame(second); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("Expected distinct IDs")
	}

	current, err = s.LoadCurrentGame()
	if err != nil {
		t.Fatalf("LoadCurrentGame: %v", err)
	}
	if current == nil || current.ID != second.ID {
		t.Fatalf("Expected current game %s, got %+v", second.ID, current)
	}
	if !bytes.Equal(current.Cells, second.Cells) || current.Turn != 2 || current.Moves != 5 {
		t.Errorf("Loaded game differs: %+v", current)
	}

	games, err := s.ListGames()
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("Expected 2 games, got %d", len(games))
	}
	if games[0].ID != second.ID || games[1].ID != first.ID {
		t.Errorf("Expected newest first, got %s, %s", games[0].ID, games[1].ID)
	}

	if err := s.DeleteGame(second.ID); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}
	current, err = s.LoadCurrentGame()
	if err != nil {
		t.Fatalf("LoadCurrentGame: %v", err)
	}
	if current != nil {
		t.Errorf("Expected no current game after deleting it, got %s", current.ID)
	}

	old, err := s.LoadGame(first.ID)
	if err != nil || old == nil {
		t.Fatalf("LoadGame(%s) = %v, %v", first.ID, old, err)
	}
	if missing, err := s.LoadGame("nope"); err != nil || missing != nil {
		t.Errorf("LoadGame(nope) = %v, %v", missing, err)
	}
}

func TestSaveGameWithoutID(t *testing.T) {
	s := openTemp(t)
	if err := s.SaveGame(&SavedGame{}); err == nil {
		t.Errorf("Expected error for game without id")
	}
}

func TestDataPaths(t *testing.T) {
	t.Setenv(dataDirEnv, "")
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	// Test that GetDataDir returns a valid path
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	// Verify directory exists
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}

	t.Logf("Data directory: %s", dataDir)
}

func TestDataDirOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "custom")
	t.Setenv(dataDirEnv, dir)

	got, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if got != dir {
		t.Errorf("GetDataDir = %s, want %s", got, dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Override directory was not created: %v", err)
	}
}

func TestPruneGames(t *testing.T) {
	s := openTemp(t)

	var ids []string
	for i := 0; i < 3; i++ {
		g := NewSavedGame()
		g.Cells = []byte{byte(i)}
		if err := s.SaveGame(g); err != nil {
			t.Fatalf("SaveGame: %v", err)
		}
		ids = append(ids, g.ID)
	}

	n, err := s.PruneGames(ids[2])
	if err != nil {
		t.Fatalf("PruneGames: %v", err)
	}
	if n != 2 {
		t.Errorf("PruneGames removed %d games, want 2", n)
	}

	games, err := s.ListGames()
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(games) != 1 || games[0].ID != ids[2] {
		t.Fatalf("Expected only %s to remain, got %d games", ids[2], len(games))
	}
	current, err := s.LoadCurrentGame()
	if err != nil || current == nil || current.ID != ids[2] {
		t.Errorf("LoadCurrentGame = %v, %v", current, err)
	}
}
