package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/voidshard/idle"
)

const desc = `Generates a random idle game level & renders it as a png.

The level is drawn onto a canvas registered on a page under --canvas. If that isn't the
canvas the game looks for (canvas_id in the config) the game doesn't start & nothing is written.`

var cli struct {
	Config string `short:"c" default:"~/.idle.yaml" help:"yaml config file (defaults are used if it doesn't exist)"`
	Output string `short:"o" default:"idle.png" help:"where to write the rendered png. Overwrites output file if it exists."`

	// id to register our canvas under on the page
	Canvas string `help:"page id of the output canvas (defaults to canvas_id from config)"`

	Seed  int64   `help:"level seed, overrides config (0: use config)"`
	Scale float64 `default:"1" help:"resize the rendered image by this factor"`

	// optional extra outputs
	TMX        string `help:"also write the level as a .tmx map"`
	TileWidth  int    `default:"32" help:"width of each tile in px (tmx only)"`
	TileHeight int    `default:"32" help:"height of each tile in px (tmx only)"`
	Archive    string `short:"a" help:"also save the level to this archive database"`
}

func main() {
	kong.Parse(&cli, kong.Name("idle"), kong.Description(desc))
	setupLogging()

	cfg, err := idle.LoadConfig(cli.Config)
	if err != nil {
		log.Fatal().Err(err).Str("config", cli.Config).Msg("failed to load config")
	}
	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
	}
	if cli.Canvas == "" {
		cli.Canvas = cfg.CanvasID
	}

	canvas := idle.NewImageSurface(cfg.CanvasWidth, cfg.CanvasHeight)
	page := idle.NewPage()
	page.Add(cli.Canvas, canvas)

	app := idle.NewApplication(cfg, log.Logger)
	app.Attach(page)
	page.Load()

	game := app.Game()
	if game == nil {
		return
	}

	err = canvas.SavePNG(cli.Output, cli.Scale)
	if err != nil {
		log.Fatal().Err(err).Str("output", cli.Output).Msg("failed to write png")
	}
	log.Info().Str("output", cli.Output).Msg("wrote png")

	if cli.TMX != "" {
		err = game.Level().WriteTMX(cli.TMX, cli.TileWidth, cli.TileHeight)
		if err != nil {
			log.Fatal().Err(err).Str("output", cli.TMX).Msg("failed to write tmx")
		}
		log.Info().Str("output", cli.TMX).Msg("wrote tmx")
	}

	if cli.Archive != "" {
		id, err := archiveLevel(game.Level())
		if err != nil {
			log.Fatal().Err(err).Str("archive", cli.Archive).Msg("failed to archive level")
		}
		log.Info().Int64("id", id).Str("archive", cli.Archive).Msg("archived level")
	}
}

// archiveLevel saves the level to the --archive database
func archiveLevel(level *idle.Level) (int64, error) {
	archive, err := idle.OpenArchive(cli.Archive)
	if err != nil {
		return 0, err
	}
	defer archive.Close()

	return archive.Save(level)
}

// setupLogging reads LOG_LEVEL (from the env or a .env file)
func setupLogging() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}
}
