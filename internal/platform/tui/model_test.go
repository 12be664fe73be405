package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ball/internal/config"
	"github.com/vovakirdan/ball/internal/core"
	"github.com/vovakirdan/ball/internal/games/ball"
	"github.com/vovakirdan/ball/internal/storage"
)

// newTestModel starts a 50x20 session with no enemies or stars.
func newTestModel(t *testing.T) (Model, *ball.Game, *storage.Store) {
	t.Helper()
	cfg := config.DefaultBallConfig()
	cfg.Enemy.InitialCount = 0
	cfg.Star.InitialCount = 0
	game := ball.New(cfg, ball.WithSpriteLoader(NewSpriteSheet()))

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := NewModel(game, core.RuntimeConfig{ScreenW: 50, ScreenH: 20, TickRate: 60, Seed: 1}, Options{Store: store})
	m.Init()
	return m, game, store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelMovesWhileKeyHeld(t *testing.T) {
	m, game, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	now := time.Now()
	m, _ = update(t, m, TickMsg(now))
	m, _ = update(t, m, TickMsg(now.Add(100*time.Millisecond)))

	// 1/60 s on the first tick, then 0.1 s, at 500 units/s
	want := 400 + 500*(1.0/60+0.1)
	if got := game.World().Player.Pos.X; got < want-1e-6 || got > want+1e-6 {
		t.Errorf("player X = %v, expected %v", got, want)
	}

	// Long after the hold window the key is released
	x := game.World().Player.Pos.X
	m, _ = update(t, m, TickMsg(now.Add(2*time.Second)))
	m, _ = update(t, m, TickMsg(now.Add(2*time.Second+100*time.Millisecond)))
	if got := game.World().Player.Pos.X; got != x {
		t.Errorf("player X = %v after release, expected %v", got, x)
	}
}

func TestModelFallsBackOnEmptyWindow(t *testing.T) {
	cfg := config.DefaultBallConfig()
	game := ball.New(cfg)

	m := NewModel(game, core.RuntimeConfig{ScreenW: 0, ScreenH: 0, TickRate: 60, Seed: 1}, Options{})
	m.Init()

	want := ball.Size{W: 80 * cfg.World.CellWidth, H: 24 * cfg.World.CellHeight}
	if got := game.Window(); got != want {
		t.Errorf("Window() = %v, expected %v", got, want)
	}
	if game.World().Player == nil {
		t.Error("session started without a player")
	}
}

func TestModelSavesRunOnceOnDeath(t *testing.T) {
	m, game, store := newTestModel(t)
	now := time.Now()

	game.World().SpawnStar(core.V(400, 320))
	m, _ = update(t, m, TickMsg(now))
	if m.State().Score != 1 {
		t.Fatalf("score = %d, expected 1", m.State().Score)
	}

	game.World().SpawnEnemy(core.V(400, 320), core.V(0, 1))
	m, _ = update(t, m, TickMsg(now.Add(10*time.Millisecond)))
	m, _ = update(t, m, TickMsg(now.Add(20*time.Millisecond)))
	if !m.State().GameOver {
		t.Fatal("GameOver = false after enemy hit")
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 1 || runs[0].Player != "local" || runs[0].Seed != 1 {
		t.Errorf("runs = %+v, expected one local run with score 1 and seed 1", runs)
	}
}

func TestModelDoesNotSaveZeroScore(t *testing.T) {
	m, game, store := newTestModel(t)

	game.World().SpawnEnemy(core.V(400, 320), core.V(0, 1))
	m, _ = update(t, m, TickMsg(time.Now()))
	if !m.State().GameOver {
		t.Fatal("GameOver = false after enemy hit")
	}

	if high, _ := store.HighScore(); high != 0 {
		t.Errorf("HighScore() = %d, expected no saved run", high)
	}
}

func TestModelRestartStartsNewSession(t *testing.T) {
	m, game, _ := newTestModel(t)
	now := time.Now()

	// Restart is ignored while alive
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m, _ = update(t, m, TickMsg(now))
	first := game.World()

	first.SpawnEnemy(core.V(400, 320), core.V(0, 1))
	m, _ = update(t, m, TickMsg(now.Add(10*time.Millisecond)))
	if game.World() != first || !m.State().GameOver {
		t.Fatal("expected the first session to end in death")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m, _ = update(t, m, TickMsg(now.Add(20*time.Millisecond)))

	if game.World() == first {
		t.Error("restart kept the old world")
	}
	if s := m.State(); s.GameOver || s.Score != 0 {
		t.Errorf("State() after restart = %+v, expected a live fresh session", s)
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, game, _ := newTestModel(t)
	world := game.World()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})

	if game.World() != world {
		t.Error("resize reset the session")
	}
	if win := game.Window(); win != (ball.Size{W: 480, H: 320}) {
		t.Errorf("Window() = %v, expected 480x320", win)
	}
	if view := m.View(); len(strings.Split(view, "\n")) != 10 {
		t.Errorf("view has %d rows, expected 10", len(strings.Split(view, "\n")))
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestModelViewShowsHUD(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := ansiEscape.ReplaceAllString(m.View(), "")
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("view missing HUD:\n%s", view)
	}
	if !strings.Contains(view, "●") {
		t.Errorf("view missing the player glyph:\n%s", view)
	}
}
