// Package ui implements the chess board window using Ebitengine.
package ui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/tinyboard/internal/board"
	"github.com/hailam/tinyboard/internal/game"
	"github.com/hailam/tinyboard/internal/storage"
)

// UI Constants
const (
	DefaultCellSize = 64
	StatusHeight    = 32
)

// Options configures a Game.
type Options struct {
	CellSize int  // Square size in pixels, DefaultCellSize if zero
	Fresh    bool // Ignore any saved game
	Mute     bool // Start with sound off, without changing the saved preference
}

// Game implements ebiten.Game interface.
type Game struct {
	session *game.Session

	// Components
	renderer *Renderer
	input    *InputHandler
	audio    *AudioManager
	toasts   *ToastManager

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences
	saved   *storage.SavedGame

	cellSize int
}

// NewGame creates the window state, resuming the saved game unless
// opts.Fresh is set.
func NewGame(opts Options) *Game {
	cellSize := opts.CellSize
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}

	fonts, err := LoadFonts()
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	g := &Game{
		renderer: NewRenderer(cellSize, fonts),
		input:    NewInputHandler(),
		toasts:   NewToastManager(),
		cellSize: cellSize,
	}

	// Initialize storage
	g.storage, err = storage.NewStorage()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
		g.storage = nil
	}

	g.loadPreferences()
	g.audio = NewAudioManager(g.prefs.SoundEnabled && !opts.Mute)

	if !opts.Fresh && g.resumeGame() {
		g.toasts.Show("Game resumed", ToastInfo)
	} else {
		g.NewGameAction()
	}
	g.pruneGames()

	return g
}

// pruneGames drops saved games left behind by earlier runs.
func (g *Game) pruneGames() {
	if g.storage == nil || g.saved == nil {
		return
	}
	n, err := g.storage.PruneGames(g.saved.ID)
	if err != nil {
		log.Printf("Warning: Failed to prune saved games: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Removed %d stale saved games", n)
	}
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		g.prefs = storage.DefaultPreferences()
	}
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// resumeGame loads the current saved game. It reports whether one was restored.
func (g *Game) resumeGame() bool {
	if g.storage == nil {
		return false
	}

	saved, err := g.storage.LoadCurrentGame()
	if err != nil {
		log.Printf("Warning: Failed to load saved game: %v", err)
		return false
	}
	if saved == nil {
		return false
	}

	session, err := restoreSession(saved)
	if err != nil {
		log.Printf("Warning: Discarding saved game %s: %v", saved.ID, err)
		return false
	}

	g.session = session
	g.saved = saved
	return true
}

// restoreSession rebuilds a session from a saved snapshot.
func restoreSession(saved *storage.SavedGame) (*game.Session, error) {
	b, err := board.Decode(saved.Cells, board.Team(saved.Turn))
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", saved.ID, err)
	}
	return game.ResumeSession(b, saved.Moves), nil
}

// snapshot copies the session's persistent state into saved.
func snapshot(s *game.Session, saved *storage.SavedGame) {
	b := s.Board()
	saved.Cells = b.Encode()
	saved.Turn = uint8(b.Turn())
	saved.Moves = s.Moves()
}

// saveGame persists the game in progress.
func (g *Game) saveGame() {
	if g.storage == nil || g.saved == nil {
		return
	}
	snapshot(g.session, g.saved)
	if err := g.storage.SaveGame(g.saved); err != nil {
		log.Printf("Warning: Failed to save game: %v", err)
	}
}

// replaceSavedGame deletes the record of the game being abandoned and
// returns a record for the next one.
func replaceSavedGame(st *storage.Storage, old *storage.SavedGame) *storage.SavedGame {
	if st != nil && old != nil {
		if err := st.DeleteGame(old.ID); err != nil {
			log.Printf("Warning: Failed to delete game %s: %v", old.ID, err)
		}
	}
	return storage.NewSavedGame()
}

// NewGameAction starts a new game from the starting position.
func (g *Game) NewGameAction() {
	g.session = game.NewSession(nil)
	g.saved = replaceSavedGame(g.storage, g.saved)

	if g.storage != nil {
		if err := g.storage.RecordGameStarted(); err != nil {
			log.Printf("Warning: Failed to record game: %v", err)
		}
	}
	g.saveGame()
}

// ToggleSoundAction flips sound on or off and persists the choice.
func (g *Game) ToggleSoundAction() {
	g.prefs.SoundEnabled = !g.audio.IsEnabled()
	g.audio.SetEnabled(g.prefs.SoundEnabled)
	g.savePreferences()

	if g.prefs.SoundEnabled {
		g.toasts.Show("Sound on", ToastInfo)
	} else {
		g.toasts.Show("Sound off", ToastInfo)
	}
}

// ToggleCoordinatesAction shows or hides the board coordinates.
func (g *Game) ToggleCoordinatesAction() {
	g.prefs.ShowCoordinates = !g.prefs.ShowCoordinates
	g.savePreferences()
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()
	g.toasts.Update()

	switch {
	case IsKeyJustPressed(ebiten.KeyN):
		g.NewGameAction()
		g.toasts.Show("New game", ToastInfo)
	case IsKeyJustPressed(ebiten.KeyM):
		g.ToggleSoundAction()
	case IsKeyJustPressed(ebiten.KeyC):
		g.ToggleCoordinatesAction()
	}

	mx, my := g.input.MousePosition()
	g.session.OnPointerMove(mx, my, float64(g.cellSize), float64(g.cellSize))

	// Clicks on the status bar never reach the board.
	size := g.renderer.BoardSize()
	if g.input.ClickedInBounds(0, 0, size, size) {
		g.handleClick()
	}

	return nil
}

// handleClick forwards a click to the session and reacts to the outcome.
func (g *Game) handleClick() {
	wasSelecting := g.session.State() == game.Selecting
	r := g.session.OnClick()

	switch r.Outcome {
	case game.Selected:
		if r.KingInReach {
			g.audio.Play(SoundKingInReach)
			g.toasts.Show(fmt.Sprintf("%s can reach the king", r.Piece), ToastWarning)
		} else {
			g.audio.Play(SoundSelect)
		}

	case game.Moved:
		if r.Captured.IsEmpty() {
			g.audio.Play(SoundMove)
			log.Printf("move %d: %s %s-%s", g.session.Moves(), r.Piece, r.From, r.To)
		} else {
			g.audio.Play(SoundCapture)
			log.Printf("move %d: %s %s-%s takes %s", g.session.Moves(), r.Piece, r.From, r.To, r.Captured)
		}
		g.recordMove(r)
		g.saveGame()

	case game.Ignored:
		if wasSelecting {
			g.audio.Play(SoundInvalid)
		}
	}
}

// recordMove updates the persistent statistics.
func (g *Game) recordMove(r game.Result) {
	if g.storage == nil {
		return
	}
	if err := g.storage.RecordMove(r.Piece.Team.Name(), !r.Captured.IsEmpty()); err != nil {
		log.Printf("Warning: Failed to record move: %v", err)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	b := g.session.Board()

	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen, g.prefs.ShowCoordinates)
	g.renderer.DrawPieces(screen, b)
	g.renderer.DrawHighlights(screen, b, g.session.KingInReach())
	g.renderer.DrawHover(screen, b.Hover())
	g.renderer.DrawSelection(screen, b.Selected())
	g.renderer.DrawStatus(screen, StatusText(b.Turn(), g.session.Moves(), !g.audio.IsEnabled()))

	if g.renderer.fonts != nil {
		g.toasts.Draw(screen, g.renderer.fonts.Toast, g.renderer.BoardSize())
	}
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}

// ScreenSize returns the window size in pixels: the board plus the status bar.
func (g *Game) ScreenSize() (int, int) {
	size := g.renderer.BoardSize()
	return size, size + StatusHeight
}

// Session returns the interaction state machine.
func (g *Game) Session() *game.Session {
	return g.session
}

// Close saves the game and releases storage.
func (g *Game) Close() error {
	g.saveGame()
	if g.storage == nil {
		return nil
	}
	return g.storage.Close()
}
