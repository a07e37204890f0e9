package core

// Bomb 炸弹。放置后进入引信倒计时，可被踢（连续滑行）
// 或被拳击（瞬间射线挪位）；爆炸事件发出的瞬间移出活跃集，
// 以此保证每个炸弹实例只爆一次。
type Bomb struct {
	ID    int
	Cell  GridPos
	Owner int // 玩家表下标
	Kind  BombKind
	Range int
	Fuse  float64

	Sliding      bool
	SlideDir     Direction
	X, Y         float64 // 滑行中的连续中心坐标
	PrevX, PrevY float64

	Punched   bool // 拳击后置位，阻止立刻再次拳击
	OwnerLeft bool // 主人是否已离开本格
	Active    bool

	sparkCooldown float64
}

// PlaceBomb 玩家在脚下格放置炸弹。前置条件：活跃炸弹数未达上限，
// 且该格没有任何占用者。
func (g *Game) PlaceBomb(p *Player) *Bomb {
	if !p.Alive {
		return nil
	}
	if p.ActiveBombs >= p.MaxBombs {
		return nil
	}
	cell := p.Cell()
	if g.Grid.At(cell).Kind != OccEmpty {
		return nil
	}

	g.nextBombID++
	b := &Bomb{
		ID:     g.nextBombID,
		Cell:   cell,
		Owner:  p.Index,
		Kind:   p.BombKind,
		Range:  p.EffectiveRange(),
		Fuse:   BombFuseSeconds,
		X:      cell.CenterX(),
		Y:      cell.CenterY(),
		Active: true,
	}
	b.PrevX, b.PrevY = b.X, b.Y

	g.Grid.Set(cell, Occupant{Kind: OccBomb, Handle: b.ID})
	g.Bombs = append(g.Bombs, b)
	p.ActiveBombs++

	g.emitAt(EventBombPlaced, p.Index, cell)
	return b
}

// kickBomb 将静止炸弹踢出去：从占用表摘下，进入滑行
func (g *Game) kickBomb(b *Bomb, dir Direction) {
	b.Sliding = true
	b.SlideDir = dir
	b.X = b.Cell.CenterX()
	b.Y = b.Cell.CenterY()
	g.Grid.Clear(b.Cell)
}

// punchBomb 拳击玩家面前的炸弹：沿朝向射线最多 PunchDistance 格，
// 在第一个墙/砖/炸弹前停下，炸弹瞬移到最远的空格。
// 已被拳击的炸弹不能立刻再次被拳击，但仍可被踢。
func (g *Game) punchBomb(p *Player) bool {
	if !p.Alive || !p.HasPunch || p.Facing == DirNone {
		return false
	}
	front := p.Cell().Add(p.Facing, 1)
	occ := g.Grid.At(front)
	if occ.Kind != OccBomb {
		return false
	}
	b := g.bombByID(occ.Handle)
	if b == nil || b.Punched || b.Sliding {
		return false
	}

	landing := b.Cell
	for i := 1; i <= PunchDistance; i++ {
		next := b.Cell.Add(p.Facing, i)
		if g.Grid.Blocked(next) {
			break
		}
		landing = next
	}
	if landing == b.Cell {
		return false
	}

	g.Grid.Clear(b.Cell)
	b.Cell = landing
	b.X = landing.CenterX()
	b.Y = landing.CenterY()
	b.PrevX, b.PrevY = b.X, b.Y
	b.Punched = true
	b.OwnerLeft = true
	g.Grid.Set(landing, Occupant{Kind: OccBomb, Handle: b.ID})

	g.emitAt(EventBombLanded, b.Owner, landing)
	return true
}

// advanceBombs 推进引信与滑行
func (g *Game) advanceBombs(dt float64) {
	for _, b := range g.Bombs {
		if !b.Active {
			continue
		}
		b.PrevX, b.PrevY = b.X, b.Y

		if b.Sliding {
			g.advanceSlide(b, dt)
		}

		b.Fuse -= dt
		if b.Fuse <= BombSparkFuseSeconds {
			b.sparkCooldown -= dt
			if b.sparkCooldown <= 0 {
				b.sparkCooldown = BombSparkInterval
				g.emitAt(EventBombDangerSparks, b.Owner, b.Cell)
			}
		}
		if b.Fuse <= 0 {
			g.queueDetonation(b.ID)
		}
	}
}

// advanceSlide 滑行物理：前方格被挡时回到当前格中心落定
func (g *Game) advanceSlide(b *Bomb, dt float64) {
	step := BombSlideSpeed * TileSize * dt
	dx, dy := b.SlideDir.Delta()

	cur := CellAt(b.X, b.Y)
	next := cur.Add(b.SlideDir, 1)
	if g.Grid.Blocked(next) {
		// 只允许滑到当前格中心
		cx, cy := cur.CenterX(), cur.CenterY()
		remX := (cx - b.X) * float64(dx)
		remY := (cy - b.Y) * float64(dy)
		remaining := remX + remY
		if remaining <= step {
			g.settleBomb(b, cur)
			return
		}
	}

	b.X += float64(dx) * step
	b.Y += float64(dy) * step
	b.Cell = CellAt(b.X, b.Y)
}

// settleBomb 滑行结束，重新登记占用表。滑行中的炸弹不在表里，
// 落点可能已被抢占（两枚炸弹滑向同一格，或拳击落点撞上滑行
// 落点），此时沿滑行方向逐格回退到最近的空格再落定。
func (g *Game) settleBomb(b *Bomb, cell GridPos) {
	b.Sliding = false
	for g.Grid.At(cell).Kind != OccEmpty {
		back := cell.Add(b.SlideDir, -1)
		if back == cell || !g.Grid.InBounds(back) {
			// 整条退路都被占住：原地起爆，不留未登记的孤儿炸弹
			b.Cell = cell
			g.queueDetonation(b.ID)
			return
		}
		cell = back
	}
	b.Cell = cell
	b.X = cell.CenterX()
	b.Y = cell.CenterY()
	b.PrevX, b.PrevY = b.X, b.Y
	g.Grid.Set(cell, Occupant{Kind: OccBomb, Handle: b.ID})
	g.emitAt(EventBombLanded, b.Owner, cell)
}

// queueDetonation 登记起爆请求，由本拍的连锁循环统一处理
func (g *Game) queueDetonation(id int) {
	g.detonations = append(g.detonations, id)
}

// processDetonations 依次处理起爆请求。指向已不在活跃集中的
// 炸弹的请求直接忽略，防御连锁反应产生的重复/过期事件。
func (g *Game) processDetonations() {
	for len(g.detonations) > 0 {
		id := g.detonations[0]
		g.detonations = g.detonations[1:]

		b := g.bombByID(id)
		if b == nil || !b.Active {
			continue
		}
		g.detonate(b)
	}
}

// bombByID 按句柄查炸弹
func (g *Game) bombByID(id int) *Bomb {
	for _, b := range g.Bombs {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// bombAt 查指定格上静止登记的炸弹
func (g *Game) bombAt(cell GridPos) *Bomb {
	occ := g.Grid.At(cell)
	if occ.Kind != OccBomb {
		return nil
	}
	return g.bombByID(occ.Handle)
}
