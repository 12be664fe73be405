// Package ball implements the dodge-and-collect arcade game.
// The player steers a ball around the window, avoids roaming enemies that
// bounce off the edges, and collects stars that keep appearing on a timer.
//
// The simulation (World and Step) is pure: it never touches the terminal,
// audio, or storage. It returns events that the Game adapter forwards to
// its collaborators.
package ball

import (
	"fmt"

	"github.com/vovakirdan/ball/internal/core"
)

// Default game settings
const (
	PlayerSize  = 64.0
	PlayerSpeed = 500.0

	EnemySize        = 64.0
	EnemySpeed       = 200.0
	InitialEnemies   = 4
	EnemySpawnPeriod = 5.0

	StarSize        = 32.0
	InitialStars    = 10
	StarSpawnPeriod = 1.0
)

// Params holds the tunable rules of a session. DefaultParams matches the
// classic game; config files and difficulty presets adjust it.
type Params struct {
	PlayerSize  float64
	PlayerSpeed float64

	EnemySize        float64
	EnemySpeed       float64
	InitialEnemies   int
	EnemySpawnPeriod float64

	StarSize        float64
	InitialStars    int
	StarSpawnPeriod float64

	TimerPolicy TimerPolicy
}

// DefaultParams returns the classic rule set.
func DefaultParams() Params {
	return Params{
		PlayerSize:       PlayerSize,
		PlayerSpeed:      PlayerSpeed,
		EnemySize:        EnemySize,
		EnemySpeed:       EnemySpeed,
		InitialEnemies:   InitialEnemies,
		EnemySpawnPeriod: EnemySpawnPeriod,
		StarSize:         StarSize,
		InitialStars:     InitialStars,
		StarSpawnPeriod:  StarSpawnPeriod,
		TimerPolicy:      PolicyCarry,
	}
}

// Size is the window size in world units.
type Size struct {
	W, H float64
}

// EntityID identifies an entity for the lifetime of a World.
type EntityID uint64

// EntityKind tells the three entity kinds apart in events.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindStar
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindStar:
		return "star"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Player is the controlled ball.
type Player struct {
	ID  EntityID
	Pos core.Vec2
}

// Enemy roams in a straight line and bounces off the window edges.
// Dir is always unit length.
type Enemy struct {
	ID  EntityID
	Pos core.Vec2
	Dir core.Vec2
}

// Star waits to be collected.
type Star struct {
	ID  EntityID
	Pos core.Vec2
}

// World is the entity store for one session.
// Player is nil once the player has died; it is never recreated.
type World struct {
	Params Params

	Player  *Player
	Enemies []Enemy
	Stars   []Star
	Score   uint32

	StarTimer  SpawnTimer
	EnemyTimer SpawnTimer

	reportedScore uint32 // score at the last ScoreReport
	nextID        EntityID
	events        []Event
}

// NewWorld creates an empty world with both spawn timers at zero.
func NewWorld(p Params) *World {
	return &World{
		Params:     p,
		StarTimer:  NewSpawnTimer(seconds(p.StarSpawnPeriod), p.TimerPolicy),
		EnemyTimer: NewSpawnTimer(seconds(p.EnemySpawnPeriod), p.TimerPolicy),
	}
}

// Alive reports whether the player is still in the world.
func (w *World) Alive() bool {
	return w.Player != nil
}

func (w *World) newID() EntityID {
	w.nextID++
	return w.nextID
}

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}

// flush returns the events recorded since the last flush.
func (w *World) flush() []Event {
	evs := w.events
	w.events = nil
	return evs
}

// SpawnPlayer inserts the player at pos. It panics if a player already exists.
func (w *World) SpawnPlayer(pos core.Vec2) EntityID {
	if w.Player != nil {
		panic("ball: player already exists")
	}
	id := w.newID()
	w.Player = &Player{ID: id, Pos: pos}
	w.emit(spawned(KindPlayer, id))
	return id
}

// SpawnEnemy inserts an enemy. dir is normalised on insertion.
func (w *World) SpawnEnemy(pos, dir core.Vec2) EntityID {
	id := w.newID()
	w.Enemies = append(w.Enemies, Enemy{ID: id, Pos: pos, Dir: dir.Normalize()})
	w.emit(spawned(KindEnemy, id))
	return id
}

// SpawnStar inserts a star.
func (w *World) SpawnStar(pos core.Vec2) EntityID {
	id := w.newID()
	w.Stars = append(w.Stars, Star{ID: id, Pos: pos})
	w.emit(spawned(KindStar, id))
	return id
}

// despawnPlayer removes the player from the store.
func (w *World) despawnPlayer() {
	if w.Player == nil {
		return
	}
	w.emit(despawned(KindPlayer, w.Player.ID))
	w.Player = nil
}
