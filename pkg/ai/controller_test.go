package ai

import (
	"testing"

	"bombarena/pkg/core"
)

func TestControllerFleesDanger(t *testing.T) {
	view := makeView(t, openRows...)
	bot := core.NewPlayer(0, core.GridPos{X: 3, Y: 3}, true)
	view.Players = []*core.Player{bot}
	addBomb(&view, 1, core.GridPos{X: 3, Y: 2}, 2, 1.0)

	c := NewControllerWithConfig(0, 1, &ConfigHard)
	intent := c.Decide(view)

	if intent.Dir == core.DirNone {
		t.Fatal("bot standing in a blast lane must move")
	}
	if intent.Dir == core.DirUp {
		t.Error("bot must not walk toward the bomb")
	}
	if intent.PlaceBomb {
		t.Error("fleeing bot must not drop another bomb")
	}
}

func TestControllerBombsAdjacentBlock(t *testing.T) {
	view := makeView(t,
		"WWWWWWW",
		"W.B...W",
		"W.....W",
		"W.....W",
		"WWWWWWW",
	)
	bot := core.NewPlayer(0, core.GridPos{X: 1, Y: 1}, true)
	view.Players = []*core.Player{bot}

	c := NewControllerWithConfig(0, 1, &ConfigHard)
	intent := c.Decide(view)

	if !intent.PlaceBomb {
		t.Fatalf("bot beside a soft block should place a bomb, got %+v", intent)
	}
}

func TestControllerCachesBetweenThinks(t *testing.T) {
	view := makeView(t, openRows...)
	bot := core.NewPlayer(0, core.GridPos{X: 3, Y: 3}, true)
	view.Players = []*core.Player{bot}

	cfg := Config{ThinkIntervalTicks: 1000, MistakeRate: 0}
	c := NewControllerWithConfig(0, 1, &cfg)

	first := c.Decide(view)
	second := c.Decide(view)
	if first != second {
		t.Errorf("intent must be cached between thinks: %+v vs %+v", first, second)
	}
}

func TestControllerIgnoresDeadSelf(t *testing.T) {
	view := makeView(t, openRows...)
	bot := core.NewPlayer(0, core.GridPos{X: 3, Y: 3}, true)
	bot.Alive = false
	view.Players = []*core.Player{bot}

	c := NewController(0, 1)
	if got := c.Decide(view); got != (core.Intent{}) {
		t.Errorf("dead bot must yield an empty intent, got %+v", got)
	}
}
