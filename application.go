package idle

import (
	"github.com/rs/zerolog"
)

// Application starts the idle game once its document is ready.
type Application struct {
	cfg    *Config
	logger zerolog.Logger

	game     *Game
	renderer *CanvasRenderer
}

// NewApplication returns an application using the given config & logger.
func NewApplication(cfg *Config, logger zerolog.Logger) *Application {
	return &Application{cfg: cfg, logger: logger}
}

// Attach waits on the document ready signal before starting.
func (a *Application) Attach(doc Document) {
	doc.OnReady(func() {
		a.start(doc)
	})
}

// Game returns the running game, or nil if we never started
func (a *Application) Game() *Game {
	return a.game
}

// Renderer returns the renderer, or nil if we never started
func (a *Application) Renderer() *CanvasRenderer {
	return a.renderer
}

// start builds a level, game & renderer and draws the level once.
// A document without our canvas isn't an error, we just don't run.
func (a *Application) start(doc Document) {
	canvas, ok := doc.ElementByID(a.cfg.CanvasID)
	if !ok {
		a.logger.Info().Str("canvas", a.cfg.CanvasID).Msg("No game canvas detected for the idle game. Aborting")
		return
	}

	a.logger.Debug().Str("canvas", a.cfg.CanvasID).Msg("Creating idle game")
	level, err := NewLevel(a.cfg.LevelWidth, a.cfg.LevelHeight, a.cfg.LevelOptions()...)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to generate level")
		return
	}

	a.game = NewGame(level)
	a.renderer = NewCanvasRenderer(canvas, a.game)

	err = a.renderer.Render()
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to render level")
		return
	}

	tw, th := a.renderer.TileSize()
	a.logger.Info().
		Int("width", level.Width()).
		Int("height", level.Height()).
		Int64("seed", level.Seed()).
		Int("walls", level.Walls()).
		Float64("tile_width", tw).
		Float64("tile_height", th).
		Msg("rendered level")
}
