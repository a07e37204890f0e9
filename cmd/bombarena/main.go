package main

import (
	"flag"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"bombarena/internal/client"
	"bombarena/internal/score"
	"bombarena/pkg/ai"
	"bombarena/pkg/core"
)

func newLogger() *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stdout)
	return log
}

func main() {
	humans := flag.Int("players", 1, "local human players (1 or 2)")
	bots := flag.Int("ai", 3, "AI opponents")
	seed := flag.Int64("seed", 0, "arena and drop seed, 0 picks one from the clock")
	difficulty := flag.String("difficulty", "normal", "AI difficulty: easy, normal, hard")
	roundLen := flag.Float64("round", core.RoundSeconds, "round length in seconds")
	flag.Parse()

	log := newLogger()

	if *humans < 1 {
		*humans = 1
	}
	if *humans > 2 {
		*humans = 2
	}
	if *humans+*bots > core.MaxPlayers {
		*bots = core.MaxPlayers - *humans
	}
	if *seed == 0 {
		*seed = int64(os.Getpid())
	}

	g := core.NewGame(core.DefaultLayout(*seed), *seed)
	g.TimeLeft = *roundLen

	schemes := []client.ControlScheme{client.ControlWASD, client.ControlArrow}[:*humans]
	for i := 0; i < *humans; i++ {
		g.AddPlayer(false)
	}
	cfg := ai.ConfigByName(*difficulty)
	for i := 0; i < *bots; i++ {
		p := g.AddPlayer(true)
		if p == nil {
			break
		}
		g.SetBrain(p.Index, ai.NewControllerWithConfig(p.Index, *seed, cfg))
	}

	board := score.NewBoard()
	g.SetScoreSink(board)

	app := client.NewApp(client.NewSession(g, board), schemes, log)

	log.WithFields(logrus.Fields{
		"humans":     *humans,
		"bots":       *bots,
		"seed":       *seed,
		"difficulty": *difficulty,
	}).Info("bombarena starting")

	ebiten.SetWindowSize(core.ScreenWidth*2, core.ScreenHeight*2)
	ebiten.SetWindowTitle("Bomb Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(core.TicksPerSecond)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
