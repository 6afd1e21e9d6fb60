package blockwars

import "github.com/vovakirdan/blockwars/internal/core"

const scorePerKill = 100

// updateProjectiles moves every projectile and drops the ones that left the screen.
func (g *Game) updateProjectiles() {
	live := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.Update()
		if p.OutOfBounds(g.screenW, g.screenH) {
			continue
		}
		live = append(live, p)
	}
	g.projectiles = live
}

// updateEnemies moves every enemy toward the player and resolves hits.
// Removals are marked during the pass and applied afterwards; a projectile
// consumed by one enemy is not offered to the enemies after it.
func (g *Game) updateEnemies() {
	killed := make([]bool, len(g.enemies))
	consumed := make([]bool, len(g.projectiles))

	for i := range g.enemies {
		e := &g.enemies[i]
		e.MoveToward(g.player.X, g.player.Y)

		if g.player.Bounds().Intersects(e.Bounds()) {
			g.killPlayer()
		}

		box := e.Bounds()
		for j := range g.projectiles {
			if consumed[j] || !box.Intersects(g.projectiles[j].Bounds()) {
				continue
			}
			consumed[j] = true
			killed[i] = true
			g.destroyEnemy(*e)
			break
		}
	}

	g.enemies = removeMarked(g.enemies, killed)
	g.projectiles = removeMarked(g.projectiles, consumed)
}

// killPlayer ends the session. The death event is raised only once.
// The banner score is taken here, so kills later in the same frame still
// count toward the score but not toward the banner.
func (g *Game) killPlayer() {
	if !g.playerDead {
		g.playerDead = true
		g.emit(core.EventPlayerDeath)
	}
	if g.phase == core.PhaseRunning {
		g.phase = core.PhaseTerminal
		g.dwellTicks = finalScoreSeconds * g.tickRate
		g.finalScore = g.score
	}
}

func (g *Game) destroyEnemy(e Enemy) {
	cx, cy := e.Bounds().Center()
	g.explosions = append(g.explosions, NewExplosion(cx, cy))
	g.emit(core.EventEnemyDeath)
	g.emit(core.EventExplosion)
	g.score += scorePerKill
}

// updateExplosions ages every explosion, including ones spawned this frame,
// and drops the expired ones.
func (g *Game) updateExplosions() {
	live := g.explosions[:0]
	for _, e := range g.explosions {
		e.Age()
		if e.Alive() {
			live = append(live, e)
		}
	}
	g.explosions = live
}

func removeMarked[T any](items []T, marked []bool) []T {
	kept := items[:0]
	for i, it := range items {
		if !marked[i] {
			kept = append(kept, it)
		}
	}
	return kept
}
