// Package blockwars implements the Block Wars arcade shooter: a square avatar
// fights waves of homing enemies with straight-flying projectiles.
//
// The package holds pure game logic. Front ends feed it one core.InputFrame per
// tick, play sounds for the returned events and hand it a core.Surface to draw on.
package blockwars

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/blockwars/internal/core"
)

const (
	// ID is the game identifier used in logs and window titles.
	ID = "blockwars"

	// finalScoreSeconds is how long the final score stays on screen.
	finalScoreSeconds = 3

	hudMargin = 10
)

// Game is the frame-loop controller. It owns every entity collection and
// mutates them only from Step.
type Game struct {
	rng      *rand.Rand
	tick     uint64
	tickRate int

	screenW int
	screenH int

	player      Player
	projectiles []Projectile
	enemies     []Enemy
	explosions  []Explosion

	score      int
	level      int
	phase      core.Phase
	playerDead bool
	dwellTicks int // Ticks left on the final score screen
	finalScore int // Score when gameplay ended, shown on the final score screen

	pending []core.Event
}

// New creates a game. Call Reset before the first Step.
func New() *Game {
	return &Game{}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Block Wars"
}

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.player = NewPlayer(g.screenW, g.screenH)
	g.projectiles = nil
	g.explosions = nil
	g.score = 0
	g.level = 1
	g.phase = core.PhaseRunning
	g.playerDead = false
	g.dwellTicks = 0
	g.finalScore = 0

	g.pending = []core.Event{core.EventStart}
	g.spawnWave()
}

// Step advances the session by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseRunning:
		g.stepRunning(in)
	case core.PhaseTerminal:
		g.dwellTicks--
		if g.dwellTicks <= 0 || in.QuitRequested() {
			g.phase = core.PhaseStopped
		}
	}

	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

// stepRunning runs one gameplay frame. The order of the phases is fixed:
// projectiles move before enemies, and explosions and level-up come last.
func (g *Game) stepRunning(in core.InputFrame) {
	if in.QuitRequested() {
		g.phase = core.PhaseStopped
		g.finalScore = g.score
		return
	}
	g.tick++

	if in.Has(core.ActionFire) {
		g.fire()
	}
	g.player.Move(in, g.screenW, g.screenH)

	g.updateProjectiles()
	g.updateEnemies()
	g.updateExplosions()
	g.levelUpIfCleared()
}

// fire launches a projectile from the player's center in the last direction
// moved. Nothing happens until the player has moved at least once.
func (g *Game) fire() {
	if g.player.Direction == DirNone {
		return
	}
	cx, cy := g.player.Center()
	g.projectiles = append(g.projectiles, NewProjectile(cx, cy, g.player.Direction))
	g.emit(core.EventFire)
}

func (g *Game) emit(e core.Event) {
	g.pending = append(g.pending, e)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Level: g.level,
		Phase: g.phase,
	}
}

// drawable is the rendering capability shared by every entity kind.
type drawable interface {
	Draw(dst core.Surface)
}

func drawAll[T drawable](dst core.Surface, items []T) {
	for _, it := range items {
		it.Draw(dst)
	}
}

// Render draws the current frame.
func (g *Game) Render(dst core.Surface) {
	if g.phase != core.PhaseRunning {
		g.renderFinalScore(dst)
		return
	}

	dst.Clear(core.ColorDarkGray)
	drawAll(dst, g.projectiles)
	drawAll(dst, g.enemies)
	drawAll(dst, g.explosions)
	g.player.Draw(dst)
	g.renderHUD(dst)
}

// renderHUD draws the score top-left and the level top-right.
func (g *Game) renderHUD(dst core.Surface) {
	dst.DrawText(fmt.Sprintf("Score: %d", g.score), hudMargin, hudMargin, core.TextNormal, core.ColorWhite)

	level := fmt.Sprintf("Level: %d", g.level)
	w, _ := dst.TextSize(level, core.TextNormal)
	dst.DrawText(level, g.screenW-w-hudMargin, hudMargin, core.TextNormal, core.ColorWhite)
}

func (g *Game) renderFinalScore(dst core.Surface) {
	dst.Clear(core.ColorDarkGray)

	text := fmt.Sprintf("Final Score: %d", g.finalScore)
	w, h := dst.TextSize(text, core.TextLarge)
	dst.DrawText(text, g.screenW/2-w/2, g.screenH/2-h/2, core.TextLarge, core.ColorWhite)
}
