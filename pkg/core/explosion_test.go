package core

import "testing"

func TestAdjacentBombsChainExactlyOnce(t *testing.T) {
	g := testArena(t, openRows...)
	p := g.AddPlayer(false)
	p.MaxBombs = 2

	moveTo(p, GridPos{X: 2, Y: 1})
	b1 := g.PlaceBomb(p)
	moveTo(p, GridPos{X: 3, Y: 1})
	b2 := g.PlaceBomb(p)
	moveTo(p, GridPos{X: 5, Y: 5})

	g.events = nil
	g.queueDetonation(b1.ID)
	g.processDetonations()

	if got := countEvents(g.events, EventBombExplode); got != 2 {
		t.Fatalf("got %d detonation events, want exactly 2 (one per bomb)", got)
	}
	if b1.Active || b2.Active {
		t.Error("both bombs must leave the active set")
	}
	if len(g.Explosions) != 2 {
		t.Fatalf("got %d explosions, want 2", len(g.Explosions))
	}
}

func TestChainCycleTerminates(t *testing.T) {
	g := testArena(t, openRows...)
	p := g.AddPlayer(false)
	p.MaxBombs = 4

	// 方形相邻排布：连锁可以互相指回源头
	cells := []GridPos{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}}
	for _, c := range cells {
		moveTo(p, c)
		if g.PlaceBomb(p) == nil {
			t.Fatalf("placement at %v failed", c)
		}
	}
	moveTo(p, GridPos{X: 5, Y: 5})

	g.events = nil
	g.queueDetonation(g.Bombs[0].ID)
	g.processDetonations()

	if got := countEvents(g.events, EventBombExplode); got != 4 {
		t.Fatalf("got %d detonation events, want 4", got)
	}
}

func TestPiercingThroughSoftBlockStopsAtWall(t *testing.T) {
	g := testArena(t,
		"WWWWWWW",
		"W.BW..W",
		"W.....W",
		"W.....W",
		"WWWWWWW",
	)
	p := g.AddPlayer(false)
	p.BombKind = BombPiercing
	p.BlastRange = 3

	center := GridPos{X: 1, Y: 1}
	moveTo(p, center)
	b := g.PlaceBomb(p)
	moveTo(p, GridPos{X: 4, Y: 3})

	g.queueDetonation(b.ID)
	g.processDetonations()

	if len(g.Explosions) != 1 {
		t.Fatalf("got %d explosions, want 1", len(g.Explosions))
	}
	e := g.Explosions[0]

	soft := GridPos{X: 2, Y: 1}
	var softTile *ExplosionTile
	for i := range e.Tiles {
		if e.Tiles[i].Cell == soft {
			softTile = &e.Tiles[i]
		}
		if e.Tiles[i].Cell.X > 2 && e.Tiles[i].Cell.Y == 1 {
			t.Errorf("explosion leaked past the wall to %v", e.Tiles[i].Cell)
		}
	}
	if softTile == nil {
		t.Fatal("destroyed soft block cell must be part of the explosion")
	}
	if !softTile.IsEnd {
		t.Error("destroyed block tile must be tagged as an end")
	}
	if g.Grid.At(soft).Kind != OccEmpty {
		t.Error("soft block must free its cell the moment it is destroyed")
	}
}

func TestNormalBombStopsAtSoftBlock(t *testing.T) {
	g := testArena(t,
		"WWWWWWW",
		"W.B...W",
		"W.....W",
		"W.....W",
		"WWWWWWW",
	)
	p := g.AddPlayer(false)
	p.BlastRange = 3

	moveTo(p, GridPos{X: 1, Y: 1})
	b := g.PlaceBomb(p)
	moveTo(p, GridPos{X: 4, Y: 3})

	g.queueDetonation(b.ID)
	g.processDetonations()

	e := g.Explosions[0]
	for _, tile := range e.Tiles {
		if tile.Cell.Y == 1 && tile.Cell.X > 2 {
			t.Errorf("non-piercing blast continued past the destroyed block to %v", tile.Cell)
		}
	}
}

func TestLethalWindowKillsThenExpires(t *testing.T) {
	g := testArena(t, openRows...)
	owner := g.AddPlayer(false)
	victim := g.AddPlayer(false)

	moveTo(owner, GridPos{X: 1, Y: 1})
	b := g.PlaceBomb(owner)
	moveTo(owner, GridPos{X: 5, Y: 5})
	moveTo(victim, GridPos{X: 2, Y: 1})

	g.events = nil
	g.queueDetonation(b.ID)
	g.processDetonations()
	g.applyExplosionDamage()

	if victim.Alive {
		t.Fatal("victim standing in a fresh blast must die")
	}
	if countEvents(g.events, EventPlayerDied) != 1 {
		t.Error("death must be announced once")
	}

	// 致死窗口过后，站在残余火焰里不再致死
	late := g.AddPlayer(false)
	moveTo(late, GridPos{X: 1, Y: 2})
	g.Explosions[0].Age = ExplosionLethalSeconds + 0.01
	g.applyExplosionDamage()
	if !late.Alive {
		t.Error("flames past the lethal window must not kill")
	}
}

func TestIceBlastShieldFreezes(t *testing.T) {
	g := testArena(t, openRows...)
	owner := g.AddPlayer(false)
	shielded := g.AddPlayer(false)
	bare := g.AddPlayer(false)

	owner.BombKind = BombIce
	shielded.Shields = 1

	moveTo(owner, GridPos{X: 3, Y: 1})
	b := g.PlaceBomb(owner)
	moveTo(owner, GridPos{X: 5, Y: 5})
	moveTo(shielded, GridPos{X: 2, Y: 1})
	moveTo(bare, GridPos{X: 4, Y: 1})

	g.events = nil
	g.queueDetonation(b.ID)
	g.processDetonations()
	g.applyExplosionDamage()

	if !shielded.Alive {
		t.Fatal("shielded player must survive an ice blast")
	}
	if shielded.Shields != 0 {
		t.Error("shield must be consumed")
	}
	if !shielded.HasDebuff(DebuffFrozen) {
		t.Error("surviving an ice blast must freeze the player")
	}
	if countEvents(g.events, EventShieldConsumed) != 1 {
		t.Error("shield consumption must be announced")
	}
	if bare.Alive {
		t.Error("unshielded player must die to an ice blast")
	}

	// 致死窗口持续期间，已冻住的幸存者不能被同一片冰反复结算致死
	g.applyExplosionDamage()
	if !shielded.Alive {
		t.Error("frozen survivor must not be re-hit by the same ice blast")
	}
}

func TestFrozenSurvivorDiesToSeparateIceBlast(t *testing.T) {
	g := testArena(t, openRows...)
	owner := g.AddPlayer(false)
	target := g.AddPlayer(false)

	owner.BombKind = BombIce
	owner.MaxBombs = 2
	target.Shields = 1

	moveTo(target, GridPos{X: 1, Y: 1})
	moveTo(owner, GridPos{X: 3, Y: 1})
	a := g.PlaceBomb(owner)
	moveTo(owner, GridPos{X: 1, Y: 3})
	b := g.PlaceBomb(owner)
	moveTo(owner, GridPos{X: 5, Y: 5})

	g.queueDetonation(a.ID)
	g.processDetonations()
	g.applyExplosionDamage()

	if !target.Alive || !target.HasDebuff(DebuffFrozen) {
		t.Fatal("first ice blast must freeze the shielded player, not kill")
	}

	// 免疫只针对同一片火焰：另一次冰爆不再有护盾可挡
	g.queueDetonation(b.ID)
	g.processDetonations()
	g.applyExplosionDamage()

	if target.Alive {
		t.Error("a second ice blast must kill the frozen player whose shield is spent")
	}
}

func TestKillAwardsPointsToBombOwner(t *testing.T) {
	g := testArena(t, openRows...)
	sink := &recordingSink{}
	g.SetScoreSink(sink)

	owner := g.AddPlayer(false)
	victim := g.AddPlayer(false)

	moveTo(owner, GridPos{X: 1, Y: 1})
	b := g.PlaceBomb(owner)
	moveTo(owner, GridPos{X: 5, Y: 5})
	moveTo(victim, GridPos{X: 2, Y: 1})

	g.events = nil
	g.queueDetonation(b.ID)
	g.processDetonations()
	g.applyExplosionDamage()

	if len(sink.calls) != 1 {
		t.Fatalf("got %d score calls, want 1", len(sink.calls))
	}
	c := sink.calls[0]
	if c.player != owner.Index || c.amount != PlayerKillPoints || c.reason != "kill" {
		t.Errorf("score call = %+v, want owner credited %d for the kill", c, PlayerKillPoints)
	}
	if countEvents(g.events, EventScoreChanged) != 1 {
		t.Error("kill must announce a score change")
	}
}

func TestSelfKillAwardsNoPoints(t *testing.T) {
	g := testArena(t, openRows...)
	sink := &recordingSink{}
	g.SetScoreSink(sink)

	p := g.AddPlayer(false)
	moveTo(p, GridPos{X: 1, Y: 1})
	b := g.PlaceBomb(p)

	g.queueDetonation(b.ID)
	g.processDetonations()
	g.applyExplosionDamage()

	if p.Alive {
		t.Fatal("player standing on the own bomb must die")
	}
	if len(sink.calls) != 0 {
		t.Errorf("self kill must not score, got %d calls", len(sink.calls))
	}
}

func TestExplosionDestroysPowerUp(t *testing.T) {
	g := testArena(t, openRows...)
	p := g.AddPlayer(false)

	pu := &PowerUp{Cell: GridPos{X: 2, Y: 1}, Kind: PowerBombUp, Active: true}
	g.PowerUps = append(g.PowerUps, pu)

	moveTo(p, GridPos{X: 1, Y: 1})
	b := g.PlaceBomb(p)
	moveTo(p, GridPos{X: 5, Y: 5})

	g.queueDetonation(b.ID)
	g.processDetonations()

	// 致死窗口结束但火焰还在：道具依然会被烧掉
	g.Explosions[0].Age = ExplosionLethalSeconds + 0.01
	g.applyExplosionDamage()

	if pu.Active {
		t.Error("power-up in flames must be destroyed for the full lifetime")
	}
}

func TestBlockDestructionAwardsPoints(t *testing.T) {
	g := testArena(t,
		"WWWWW",
		"W.B.W",
		"W...W",
		"WWWWW",
	)
	sink := &recordingSink{}
	g.SetScoreSink(sink)

	p := g.AddPlayer(false)
	moveTo(p, GridPos{X: 1, Y: 1})
	b := g.PlaceBomb(p)
	moveTo(p, GridPos{X: 3, Y: 2})

	g.events = nil
	g.queueDetonation(b.ID)
	g.processDetonations()

	if len(sink.calls) != 1 {
		t.Fatalf("got %d score calls, want 1", len(sink.calls))
	}
	if sink.calls[0].player != 0 || sink.calls[0].amount != BlockDestroyPoints {
		t.Errorf("score call = %+v, want player 0, %d points", sink.calls[0], BlockDestroyPoints)
	}
	if countEvents(g.events, EventBlockDestroyed) != 1 || countEvents(g.events, EventScoreChanged) != 1 {
		t.Error("block destruction must announce both the block and the score change")
	}
}

type scoreCall struct {
	player int
	amount int
	reason string
}

type recordingSink struct {
	calls []scoreCall
}

func (r *recordingSink) AddPoints(player, amount int, reason string, x, y float64) {
	r.calls = append(r.calls, scoreCall{player: player, amount: amount, reason: reason})
}
