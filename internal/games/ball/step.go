package ball

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ball/internal/core"
)

// Populate starts a session: the player at the window centre, then the
// initial enemies and stars at random positions. Returns the spawn events.
func (w *World) Populate(win Size, rng Rand) []Event {
	mustBeValidWindow(win)

	w.SpawnPlayer(core.V(win.W/2, win.H/2))
	for range w.Params.InitialEnemies {
		w.spawnRandomEnemy(win, rng)
	}
	for range w.Params.InitialStars {
		w.spawnRandomStar(win, rng)
	}
	return w.flush()
}

// Step advances the world by dt seconds. The sub-steps run in a fixed order
// and each one sees the results of the ones before it:
//
//  1. player movement       6. star collection
//  2. player confinement    7. score report
//  3. enemy movement        8. timer tick
//  4. enemy confinement     9. star spawns
//  5. enemy hits           10. enemy spawns
//
// Player-dependent sub-steps are no-ops once the player is gone. Step panics
// on a non-positive window size or a negative or non-finite dt.
func (w *World) Step(dt float64, keys core.KeySet, win Size, rng Rand) []Event {
	mustBeValidWindow(win)
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		panic(fmt.Sprintf("ball: elapsed time must be finite and non-negative, got %g", dt))
	}

	w.movePlayer(dt, keys)
	w.confinePlayer(win)
	w.moveEnemies(dt)
	w.confineEnemies(win)
	w.checkEnemyHits()
	w.collectStars()
	w.reportScore()

	tick := seconds(dt)
	starFirings := w.StarTimer.Tick(tick)
	enemyFirings := w.EnemyTimer.Tick(tick)
	for range starFirings {
		w.spawnRandomStar(win, rng)
	}
	for range enemyFirings {
		w.spawnRandomEnemy(win, rng)
	}

	return w.flush()
}

func mustBeValidWindow(win Size) {
	if !(win.W > 0) || !(win.H > 0) {
		panic(fmt.Sprintf("ball: window size must be positive, got %gx%g", win.W, win.H))
	}
}
