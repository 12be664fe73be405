package ball

import "github.com/vovakirdan/ball/internal/core"

// Rand is the random source used for spawning. *rand.Rand satisfies it;
// tests inject scripted sources.
type Rand interface {
	Float64() float64 // uniform in [0, 1)
}

// keyDirection sums the unit vectors of the held keys and normalises the
// result. Opposite keys cancel out to the zero vector.
func keyDirection(keys core.KeySet) core.Vec2 {
	var dir core.Vec2
	if keys.Has(core.KeyUp) {
		dir = dir.Add(core.V(0, 1))
	}
	if keys.Has(core.KeyDown) {
		dir = dir.Add(core.V(0, -1))
	}
	if keys.Has(core.KeyLeft) {
		dir = dir.Add(core.V(-1, 0))
	}
	if keys.Has(core.KeyRight) {
		dir = dir.Add(core.V(1, 0))
	}
	return dir.Normalize()
}

func (w *World) movePlayer(dt float64, keys core.KeySet) {
	if w.Player == nil {
		return
	}
	dir := keyDirection(keys)
	w.Player.Pos = w.Player.Pos.Add(dir.Scale(w.Params.PlayerSpeed * dt))
}

// confine clamps pos so a sprite of the given size stays inside win.
// hitX and hitY report which axes were out of bounds.
func confine(pos core.Vec2, size float64, win Size) (clamped core.Vec2, hitX, hitY bool) {
	half := size / 2
	clamped.X = core.ClampF(pos.X, half, win.W-half)
	clamped.Y = core.ClampF(pos.Y, half, win.H-half)
	return clamped, clamped.X != pos.X, clamped.Y != pos.Y
}

func (w *World) confinePlayer(win Size) {
	if w.Player == nil {
		return
	}
	w.Player.Pos, _, _ = confine(w.Player.Pos, w.Params.PlayerSize, win)
}

func (w *World) moveEnemies(dt float64) {
	step := w.Params.EnemySpeed * dt
	for i := range w.Enemies {
		e := &w.Enemies[i]
		e.Pos = e.Pos.Add(e.Dir.Scale(step))
	}
}

// confineEnemies clamps every enemy and reverses the direction component of
// each axis it crossed. One pluck per bouncing enemy, however many axes.
func (w *World) confineEnemies(win Size) {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		var hitX, hitY bool
		e.Pos, hitX, hitY = confine(e.Pos, w.Params.EnemySize, win)
		if hitX {
			e.Dir.X = -e.Dir.X
		}
		if hitY {
			e.Dir.Y = -e.Dir.Y
		}
		if hitX || hitY {
			w.emit(playAudio(ClipPluck))
		}
	}
}

// checkEnemyHits removes the player on the first enemy in reach.
// Later enemies in the same tick see no player.
func (w *World) checkEnemyHits() {
	if w.Player == nil {
		return
	}
	player := core.Circle{C: w.Player.Pos, R: w.Params.PlayerSize / 2}
	for _, e := range w.Enemies {
		if player.Touches(core.Circle{C: e.Pos, R: w.Params.EnemySize / 2}) {
			w.emit(playAudio(ClipExplosion))
			w.despawnPlayer()
			return
		}
	}
}

func (w *World) collectStars() {
	if w.Player == nil {
		return
	}
	player := core.Circle{C: w.Player.Pos, R: w.Params.PlayerSize / 2}
	kept := w.Stars[:0]
	for _, s := range w.Stars {
		if player.Touches(core.Circle{C: s.Pos, R: w.Params.StarSize / 2}) {
			w.emit(playAudio(ClipCollect))
			w.emit(despawned(KindStar, s.ID))
			w.Score++
			continue
		}
		kept = append(kept, s)
	}
	w.Stars = kept
}

func (w *World) reportScore() {
	if w.Score == w.reportedScore {
		return
	}
	w.reportedScore = w.Score
	w.emit(scoreChanged(w.Score))
}

// randomPos draws a point uniformly in [0, W) x [0, H). Spawns are not
// inset by the sprite size.
func randomPos(win Size, rng Rand) core.Vec2 {
	x := rng.Float64() * win.W
	y := rng.Float64() * win.H
	return core.V(x, y)
}

// randomHeading draws both components from [0, 1), so new enemies always
// head up and to the right. The degenerate zero draw falls back to the
// diagonal.
func randomHeading(rng Rand) core.Vec2 {
	dir := core.V(rng.Float64(), rng.Float64())
	if dir.IsZero() {
		dir = core.V(1, 1)
	}
	return dir.Normalize()
}

func (w *World) spawnRandomStar(win Size, rng Rand) {
	w.SpawnStar(randomPos(win, rng))
}

func (w *World) spawnRandomEnemy(win Size, rng Rand) {
	pos := randomPos(win, rng)
	w.SpawnEnemy(pos, randomHeading(rng))
}
