package testbed

import (
	"github.com/spaghettifunk/tableau/engine"
	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/scene"
)

// StillLifeGame drives the desk still-life composition through the engine
// loop. All scene content is static; the per-frame work is replaying the
// draw list.
type StillLifeGame struct {
	*engine.Game
}

type gameState struct {
	scene *scene.Scene

	width  uint32
	height uint32

	secondsSinceReport float64
}

func NewStillLifeGame(config *engine.ApplicationConfig) (*StillLifeGame, error) {
	game := &StillLifeGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             &gameState{},
		},
	}

	game.FnBoot = game.Boot
	game.FnInitialize = game.Initialize
	game.FnUpdate = game.Update
	game.FnRender = game.Render
	game.FnOnResize = game.OnResize
	game.FnShutdown = game.Shutdown

	return game, nil
}

func (g *StillLifeGame) Boot() error {
	core.LogInfo("booting still life '%s'...", g.ApplicationConfig.Name)
	return nil
}

func (g *StillLifeGame) Initialize() error {
	state := g.State.(*gameState)
	state.scene = scene.New(g.SystemManager)
	return state.scene.Prepare()
}

func (g *StillLifeGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)
	state.secondsSinceReport += deltaTime
	if state.secondsSinceReport >= 5 {
		core.LogDebug("%.1f fps (%.2fms avg frame)", core.MetricsFPS(), core.MetricsFrameAvg()*1000)
		state.secondsSinceReport = 0
	}
	return nil
}

func (g *StillLifeGame) Render(deltaTime float64) error {
	state := g.State.(*gameState)
	return state.scene.Render()
}

func (g *StillLifeGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *StillLifeGame) Shutdown() error {
	state := g.State.(*gameState)
	if state.scene != nil {
		state.scene.Shutdown()
	}
	return nil
}
