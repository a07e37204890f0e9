package core

import (
	"math"
	"testing"
)

func TestWeightedSpawnDistribution(t *testing.T) {
	g := testArena(t, openRows...)

	const draws = 200000
	counts := make(map[PowerUpKind]int)
	for i := 0; i < draws; i++ {
		counts[g.rollKind()]++
	}

	total := 0.0
	for _, e := range spawnTable {
		total += e.Weight
	}
	for _, e := range spawnTable {
		want := e.Weight / total
		got := float64(counts[e.Kind]) / draws
		if math.Abs(got-want) > 0.01 {
			t.Errorf("%v: frequency %.4f, want %.4f ±0.01", e.Kind, got, want)
		}
	}
	if counts[PowerPunch] != 0 {
		t.Error("punch is not in the spawn table and must never be drawn")
	}
}

func TestSpawnChance(t *testing.T) {
	g := testArena(t, openRows...)

	const trials = 100000
	for i := 0; i < trials; i++ {
		g.rollPowerUp(GridPos{X: 1, Y: 1})
	}
	rate := float64(len(g.pending)) / trials
	if math.Abs(rate-PowerUpSpawnChance) > 0.01 {
		t.Errorf("spawn rate %.4f, want %.4f ±0.01", rate, PowerUpSpawnChance)
	}
}

func TestPendingWaitsForFlamesToClear(t *testing.T) {
	g := testArena(t, openRows...)
	cell := GridPos{X: 2, Y: 2}

	g.pending = append(g.pending, pendingPowerUp{Cell: cell, Kind: PowerKick})
	g.Explosions = append(g.Explosions, &Explosion{
		Tiles: []ExplosionTile{{Cell: cell}},
		Life:  ExplosionLifeSeconds,
	})

	g.materializePending()
	if len(g.PowerUps) != 0 {
		t.Fatal("power-up must not materialize under active flames")
	}
	if len(g.pending) != 1 {
		t.Fatal("pending spawn must be kept, not dropped")
	}

	g.Explosions[0].Age = ExplosionLifeSeconds
	g.materializePending()
	if len(g.PowerUps) != 1 {
		t.Fatal("power-up must materialize once the flames expire")
	}
	if len(g.pending) != 0 {
		t.Error("pending queue must drain on materialization")
	}
}

func TestPendingWaitsForOccupiedCell(t *testing.T) {
	g := testArena(t, openRows...)
	p := g.AddPlayer(false)
	cell := GridPos{X: 2, Y: 2}

	moveTo(p, cell)
	g.PlaceBomb(p)

	g.pending = append(g.pending, pendingPowerUp{Cell: cell, Kind: PowerShield})
	g.materializePending()
	if len(g.PowerUps) != 0 {
		t.Error("power-up must not materialize into an occupied cell")
	}
}

func TestCollectionAppliesEffects(t *testing.T) {
	g := testArena(t, openRows...)
	p := g.AddPlayer(false)
	moveTo(p, GridPos{X: 2, Y: 2})

	cases := []struct {
		kind  PowerUpKind
		check func() bool
	}{
		{PowerBombUp, func() bool { return p.MaxBombs == 2 }},
		{PowerFireUp, func() bool { return p.BlastRange == 3 }},
		{PowerSpeedUp, func() bool { return p.SpeedLevel == 2 }},
		{PowerShield, func() bool { return p.Shields == 1 }},
		{PowerKick, func() bool { return p.HasKick }},
		{PowerPunch, func() bool { return p.HasPunch }},
		{PowerTeleport, func() bool { return p.Teleports == 1 }},
		{PowerIceBomb, func() bool { return p.BombKind == BombIce }},
	}
	for _, c := range cases {
		pu := &PowerUp{Cell: p.Cell(), Kind: c.kind, Active: true}
		g.PowerUps = []*PowerUp{pu}
		g.collectPowerUps(p)
		if pu.Active {
			t.Errorf("%v: power-up must deactivate on pickup", c.kind)
		}
		if !c.check() {
			t.Errorf("%v: effect not applied", c.kind)
		}
	}
}

func TestStatCaps(t *testing.T) {
	g := testArena(t, openRows...)
	p := g.AddPlayer(false)

	for i := 0; i < MaxBombStat+5; i++ {
		g.applyPowerUp(p, PowerBombUp)
		g.applyPowerUp(p, PowerFireUp)
		g.applyPowerUp(p, PowerSpeedUp)
	}
	if p.MaxBombs != MaxBombStat {
		t.Errorf("max bombs = %d, want capped at %d", p.MaxBombs, MaxBombStat)
	}
	if p.BlastRange != MaxRangeStat {
		t.Errorf("blast range = %d, want capped at %d", p.BlastRange, MaxRangeStat)
	}
	if p.SpeedLevel != MaxSpeedStat {
		t.Errorf("speed = %d, want capped at %d", p.SpeedLevel, MaxSpeedStat)
	}
}

func TestSkullAppliesRandomDebuff(t *testing.T) {
	g := testArena(t, openRows...)
	p := g.AddPlayer(false)

	g.applyPowerUp(p, PowerSkull)
	if len(p.Debuffs) != 1 {
		t.Fatalf("got %d debuffs, want 1", len(p.Debuffs))
	}
	d := p.Debuffs[0]
	if d.Kind == DebuffFrozen {
		t.Error("skull must never roll the frozen debuff")
	}
	if d.Remaining != SkullDebuffSeconds {
		t.Errorf("debuff duration = %v, want %v", d.Remaining, SkullDebuffSeconds)
	}

	// 负面效果会过期
	p.tickDebuffs(SkullDebuffSeconds + 1)
	if len(p.Debuffs) != 0 {
		t.Error("expired debuffs must be removed")
	}
}

func TestSinglePickupPerTick(t *testing.T) {
	g := testArena(t, openRows...)
	p := g.AddPlayer(false)
	cell := GridPos{X: 2, Y: 2}
	moveTo(p, cell)

	a := &PowerUp{Cell: cell, Kind: PowerBombUp, Active: true}
	b := &PowerUp{Cell: cell, Kind: PowerFireUp, Active: true}
	g.PowerUps = []*PowerUp{a, b}

	g.collectPowerUps(p)
	picked := 0
	if !a.Active {
		picked++
	}
	if !b.Active {
		picked++
	}
	if picked != 1 {
		t.Fatalf("picked %d power-ups in one tick, want 1", picked)
	}
}
