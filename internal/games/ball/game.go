package ball

import (
	"math/rand"

	"github.com/vovakirdan/ball/internal/config"
	"github.com/vovakirdan/ball/internal/core"
)

// AudioPlayer plays short sound clips. Implementations must not block.
type AudioPlayer interface {
	PlayAudio(clip string)
}

// SpriteLoader resolves a sprite path to something the renderer can draw.
type SpriteLoader interface {
	LoadSprite(path string) core.Sprite
}

// ScoreSink is told every time the score changes.
type ScoreSink interface {
	ScoreChanged(value uint32)
}

type nopAudio struct{}

func (nopAudio) PlayAudio(string) {}

type nopScoreSink struct{}

func (nopScoreSink) ScoreChanged(uint32) {}

// fallbackSprites draws every entity kind with a plain glyph.
type fallbackSprites struct{}

func (fallbackSprites) LoadSprite(path string) core.Sprite {
	switch path {
	case DefaultSprites().Star:
		return core.Sprite{Rune: '*', Color: core.ColorYellow}
	case DefaultSprites().Enemy:
		return core.Sprite{Rune: '●', Color: core.ColorRed}
	default:
		return core.Sprite{Rune: '●', Color: core.ColorBlue}
	}
}

// Sprites names the sprite loaded for each entity kind.
type Sprites struct {
	Player, Enemy, Star string
}

// DefaultSprites returns the classic sprite paths.
func DefaultSprites() Sprites {
	return Sprites{
		Player: "sprites/ball_blue_large.png",
		Enemy:  "sprites/ball_red_large.png",
		Star:   "sprites/star.png",
	}
}

func (s Sprites) path(kind EntityKind) string {
	switch kind {
	case KindEnemy:
		return s.Enemy
	case KindStar:
		return s.Star
	default:
		return s.Player
	}
}

// Option configures a Game.
type Option func(*Game)

// WithAudio routes sound effects to p.
func WithAudio(p AudioPlayer) Option {
	return func(g *Game) {
		if p != nil {
			g.audio = p
		}
	}
}

// WithSpriteLoader resolves entity sprites through l.
func WithSpriteLoader(l SpriteLoader) Option {
	return func(g *Game) {
		if l != nil {
			g.sprites = l
		}
	}
}

// WithScoreSink reports score changes to s.
func WithScoreSink(s ScoreSink) Option {
	return func(g *Game) {
		if s != nil {
			g.sink = s
		}
	}
}

// Game adapts the World to the platform: it owns the random source, maps
// the terminal grid to world units and forwards events to its collaborators.
type Game struct {
	params      Params
	spritePaths Sprites
	cellW       float64
	cellH       float64

	audio   AudioPlayer
	sprites SpriteLoader
	sink    ScoreSink

	world   *World
	rng     *rand.Rand
	handles map[EntityID]core.Sprite
	config  core.RuntimeConfig
	paused  bool
	best    int
	elapsed float64
}

// New creates a game from a validated config.
func New(cfg config.BallConfig, opts ...Option) *Game {
	g := &Game{
		params: ParamsFromConfig(cfg),
		spritePaths: Sprites{
			Player: cfg.Sprites.Player,
			Enemy:  cfg.Sprites.Enemy,
			Star:   cfg.Sprites.Star,
		},
		cellW:   cfg.World.CellWidth,
		cellH:   cfg.World.CellHeight,
		audio:   nopAudio{},
		sprites: fallbackSprites{},
		sink:    nopScoreSink{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ParamsFromConfig converts the file-level config to simulation rules.
// An unknown timer policy falls back to carry; Validate rejects it earlier.
func ParamsFromConfig(cfg config.BallConfig) Params {
	policy, err := ParseTimerPolicy(cfg.Timers.Policy)
	if err != nil {
		policy = PolicyCarry
	}
	return Params{
		PlayerSize:       cfg.Player.Size,
		PlayerSpeed:      cfg.Player.Speed,
		EnemySize:        cfg.Enemy.Size,
		EnemySpeed:       cfg.Enemy.Speed,
		InitialEnemies:   cfg.Enemy.InitialCount,
		EnemySpawnPeriod: cfg.Enemy.SpawnPeriod,
		StarSize:         cfg.Star.Size,
		InitialStars:     cfg.Star.InitialCount,
		StarSpawnPeriod:  cfg.Star.SpawnPeriod,
		TimerPolicy:      policy,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "ball"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ball"
}

// Reset starts a new session on a fresh world.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.paused = false
	g.elapsed = 0
	g.world = NewWorld(g.params)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.handles = make(map[EntityID]core.Sprite)

	g.dispatch(g.world.Populate(g.Window(), g.rng))
}

// Step advances the session by dt seconds with the given input.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) && g.world.Alive() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.elapsed += dt
	g.dispatch(g.world.Step(dt, in.Keys, g.Window(), g.rng))
	return core.StepResult{State: g.State()}
}

// dispatch forwards events to collaborators in the order they were emitted.
func (g *Game) dispatch(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventPlayAudio:
			g.audio.PlayAudio(ev.Clip)
		case EventSpawn:
			g.handles[ev.ID] = g.sprites.LoadSprite(g.spritePaths.path(ev.Entity))
		case EventDespawn:
			delete(g.handles, ev.ID)
		case EventScoreChanged:
			g.sink.ScoreChanged(ev.Score)
		}
	}
}

// Resize changes the terminal grid. The next step sees the new window.
func (g *Game) Resize(w, h int) {
	g.config.ScreenW = w
	g.config.ScreenH = h
}

// Window returns the terminal grid in world units.
func (g *Game) Window() Size {
	return Size{
		W: float64(g.config.ScreenW) * g.cellW,
		H: float64(g.config.ScreenH) * g.cellH,
	}
}

// World exposes the simulation for inspection.
func (g *Game) World() *World {
	return g.world
}

// Elapsed returns the unpaused session time in seconds.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// SetBest sets the best stored score shown in the HUD.
func (g *Game) SetBest(score int) {
	g.best = score
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.world.Score),
		GameOver: !g.world.Alive(),
		Paused:   g.paused,
	}
}
