package core

import "testing"

func TestPlaceBombPreconditions(t *testing.T) {
	g := testArena(t, openRows...)
	p := g.AddPlayer(false)
	moveTo(p, GridPos{X: 1, Y: 1})

	if b := g.PlaceBomb(p); b == nil {
		t.Fatal("first placement should succeed")
	}
	if p.ActiveBombs != 1 {
		t.Fatalf("active bombs = %d, want 1", p.ActiveBombs)
	}

	// 同格重复放置被占用表挡住
	if b := g.PlaceBomb(p); b != nil {
		t.Error("placement into own bomb cell must fail")
	}

	// 达到上限后换格也放不了
	moveTo(p, GridPos{X: 3, Y: 3})
	if b := g.PlaceBomb(p); b != nil {
		t.Error("placement beyond max bombs must fail")
	}

	p.MaxBombs = 2
	if b := g.PlaceBomb(p); b == nil {
		t.Error("placement should succeed again after the cap is raised")
	}
}

func TestBombSlideStopsBeforeWall(t *testing.T) {
	g := testArena(t, openRows...)
	p := g.AddPlayer(false)
	start := GridPos{X: 2, Y: 1}
	moveTo(p, start)
	b := g.PlaceBomb(p)
	moveTo(p, GridPos{X: 5, Y: 5})

	g.kickBomb(b, DirRight)
	g.events = nil
	for i := 0; i < TicksPerSecond*2 && b.Sliding; i++ {
		g.advanceBombs(TickSeconds)
	}

	want := GridPos{X: 5, Y: 1} // 墙前最后一个空格
	if b.Sliding {
		t.Fatal("bomb never settled")
	}
	if b.Cell != want {
		t.Fatalf("bomb settled at %v, want %v", b.Cell, want)
	}
	occ := g.Grid.At(want)
	if occ.Kind != OccBomb || occ.Handle != b.ID {
		t.Fatalf("settled bomb must re-register in the grid, got %+v", occ)
	}
	if countEvents(g.events, EventBombLanded) != 1 {
		t.Errorf("want 1 bomb-landed event, got %d", countEvents(g.events, EventBombLanded))
	}
}

func TestBombSlideStopsBeforeOtherBomb(t *testing.T) {
	g := testArena(t, openRows...)
	p := g.AddPlayer(false)
	p.MaxBombs = 2

	moveTo(p, GridPos{X: 4, Y: 1})
	g.PlaceBomb(p)
	moveTo(p, GridPos{X: 1, Y: 1})
	b := g.PlaceBomb(p)
	moveTo(p, GridPos{X: 5, Y: 5})

	g.kickBomb(b, DirRight)
	for i := 0; i < TicksPerSecond*2 && b.Sliding; i++ {
		g.advanceBombs(TickSeconds)
	}

	want := GridPos{X: 3, Y: 1}
	if b.Cell != want {
		t.Fatalf("bomb settled at %v, want %v (blocked by the other bomb)", b.Cell, want)
	}
}

func TestSlidersSettlingIntoSameCellBackOff(t *testing.T) {
	g := testArena(t, openRows...)
	p := g.AddPlayer(false)
	p.MaxBombs = 2

	// 两枚炸弹分别从两个方向滑向同一个角格
	moveTo(p, GridPos{X: 1, Y: 1})
	a := g.PlaceBomb(p)
	moveTo(p, GridPos{X: 5, Y: 5})
	b := g.PlaceBomb(p)
	moveTo(p, GridPos{X: 3, Y: 3})

	g.kickBomb(a, DirRight)
	g.kickBomb(b, DirUp)
	g.events = nil
	for i := 0; i < TicksPerSecond*2 && (a.Sliding || b.Sliding); i++ {
		g.advanceBombs(TickSeconds)
	}

	if a.Sliding || b.Sliding {
		t.Fatal("both bombs should have settled")
	}
	if a.Cell == b.Cell {
		t.Fatalf("two bombs settled in the same cell %v", a.Cell)
	}
	if want := (GridPos{X: 5, Y: 1}); a.Cell != want {
		t.Errorf("first bomb settled at %v, want %v", a.Cell, want)
	}
	if want := (GridPos{X: 5, Y: 2}); b.Cell != want {
		t.Errorf("second bomb must back off along its slide direction to %v, got %v", want, b.Cell)
	}
	for _, bomb := range []*Bomb{a, b} {
		occ := g.Grid.At(bomb.Cell)
		if occ.Kind != OccBomb || occ.Handle != bomb.ID {
			t.Errorf("bomb %d not registered at %v, occupant %+v", bomb.ID, bomb.Cell, occ)
		}
	}
	if countEvents(g.events, EventBombLanded) != 2 {
		t.Errorf("want 2 bomb-landed events, got %d", countEvents(g.events, EventBombLanded))
	}
}

func TestPunchRelocatesBomb(t *testing.T) {
	g := testArena(t,
		"WWWWWWWWW",
		"W.......W",
		"W.......W",
		"WWWWWWWWW",
	)
	p := g.AddPlayer(false)
	p.HasPunch = true

	bombCell := GridPos{X: 2, Y: 1}
	moveTo(p, bombCell)
	b := g.PlaceBomb(p)

	moveTo(p, GridPos{X: 1, Y: 1})
	p.Facing = DirRight
	g.events = nil

	if !g.punchBomb(p) {
		t.Fatal("punch should succeed")
	}
	want := GridPos{X: 6, Y: 1} // 满距离 4 格
	if b.Cell != want {
		t.Fatalf("bomb at %v, want %v", b.Cell, want)
	}
	if !b.Punched {
		t.Error("bomb must be flagged punched")
	}
	if g.Grid.At(bombCell).Kind == OccBomb {
		t.Error("old cell must be cleared")
	}
	if got := g.Grid.At(want); got.Kind != OccBomb || got.Handle != b.ID {
		t.Errorf("new cell occupant = %+v, want the bomb", got)
	}
	if countEvents(g.events, EventBombLanded) != 1 {
		t.Error("instant relocation still announces a landing")
	}

	// 已拳击的炸弹不能立刻再次被拳击
	moveTo(p, GridPos{X: 5, Y: 1})
	p.Facing = DirRight
	if g.punchBomb(p) {
		t.Error("re-punch while punched must be rejected")
	}

	// 但仍然可以被踢
	g.kickBomb(b, DirLeft)
	if !b.Sliding {
		t.Error("punched bomb must remain kickable")
	}
}

func TestPunchStopsBeforeObstacle(t *testing.T) {
	g := testArena(t,
		"WWWWWWW",
		"W...B.W",
		"W.....W",
		"WWWWWWW",
	)
	p := g.AddPlayer(false)
	p.HasPunch = true

	bombCell := GridPos{X: 2, Y: 1}
	moveTo(p, bombCell)
	b := g.PlaceBomb(p)
	moveTo(p, GridPos{X: 1, Y: 1})
	p.Facing = DirRight

	if !g.punchBomb(p) {
		t.Fatal("punch should succeed")
	}
	want := GridPos{X: 3, Y: 1} // 砖块前的最后一个空格
	if b.Cell != want {
		t.Fatalf("bomb at %v, want %v", b.Cell, want)
	}
}

func TestFuseDetonates(t *testing.T) {
	g := testArena(t, openRows...)
	p := g.AddPlayer(false)
	moveTo(p, GridPos{X: 3, Y: 3})
	b := g.PlaceBomb(p)
	moveTo(p, GridPos{X: 1, Y: 1})

	ticks := int(BombFuseSeconds/TickSeconds) + 2
	exploded := 0
	for i := 0; i < ticks; i++ {
		g.events = nil
		g.advanceBombs(TickSeconds)
		g.processDetonations()
		exploded += countEvents(g.events, EventBombExplode)
	}

	if exploded != 1 {
		t.Fatalf("got %d detonation events, want exactly 1", exploded)
	}
	if b.Active {
		t.Error("detonated bomb must leave the active set")
	}
	if p.ActiveBombs != 0 {
		t.Error("owner's active bomb count must be released")
	}

	// 过期请求：再次排队同一个炸弹必须被无声忽略
	g.events = nil
	g.queueDetonation(b.ID)
	g.processDetonations()
	if countEvents(g.events, EventBombExplode) != 0 {
		t.Error("stale detonation must be ignored")
	}
}
