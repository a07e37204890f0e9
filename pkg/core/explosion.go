package core

// ExplosionTile 爆炸覆盖的单个格子
type ExplosionTile struct {
	Cell  GridPos
	Dir   Direction // 传播方向，中心格为 DirNone
	IsEnd bool      // 传播末端（射程尽头或被炸毁的砖块）
}

// Explosion 一次爆炸：完整的格子列表加两段时间窗，
// 总时长是视觉存在期，较短的致死窗口内站进去才会死。
type Explosion struct {
	Tiles  []ExplosionTile
	Kind   BombKind
	Owner  int
	Age    float64
	Life   float64
	Lethal float64

	hitMask uint8 // 已结算过的玩家位集，同一片火焰只命中每人一次
}

// markHit 记录该玩家已被本次爆炸结算
func (e *Explosion) markHit(index int) {
	if index >= 0 && index < 8 {
		e.hitMask |= 1 << index
	}
}

// alreadyHit 该玩家是否已被本次爆炸结算过
func (e *Explosion) alreadyHit(index int) bool {
	return index >= 0 && index < 8 && e.hitMask&(1<<index) != 0
}

// LethalNow 是否仍在致死窗口内
func (e *Explosion) LethalNow() bool {
	return e.Age <= e.Lethal
}

// Covers 爆炸是否覆盖指定格
func (e *Explosion) Covers(cell GridPos) bool {
	for _, t := range e.Tiles {
		if t.Cell == cell {
			return true
		}
	}
	return false
}

// detonate 处理一枚已验证仍在活跃集中的炸弹。先把它移出
// 活跃集与占用表——这是防止连锁循环里重复起爆的关键——
// 再做四向传播。
func (g *Game) detonate(b *Bomb) {
	b.Active = false
	if g.Grid.At(b.Cell).Kind == OccBomb && g.Grid.At(b.Cell).Handle == b.ID {
		g.Grid.Clear(b.Cell)
	}
	if b.Owner >= 0 && b.Owner < len(g.Players) {
		g.Players[b.Owner].ActiveBombs--
	}
	g.emitAt(EventBombExplode, b.Owner, b.Cell)

	tiles := []ExplosionTile{{Cell: b.Cell, Dir: DirNone}}

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		for i := 1; i <= b.Range; i++ {
			cell := b.Cell.Add(dir, i)
			if !g.Grid.InBounds(cell) {
				break
			}
			occ := g.Grid.At(cell)

			if occ.Kind == OccWall {
				// 不可摧毁的墙：不加格子，直接停
				break
			}

			if occ.Kind == OccSoftBlock {
				g.destroyBlock(occ.Handle, b.Owner)
				tiles = append(tiles, ExplosionTile{Cell: cell, Dir: dir, IsEnd: true})
				if b.Kind != BombPiercing {
					break
				}
				continue
			}

			if occ.Kind == OccBomb {
				// 连锁反应：强制起爆，射线穿过该格继续走
				g.queueDetonation(occ.Handle)
				tiles = append(tiles, ExplosionTile{Cell: cell, Dir: dir})
				continue
			}

			tiles = append(tiles, ExplosionTile{Cell: cell, Dir: dir, IsEnd: i == b.Range})
		}
	}

	g.Explosions = append(g.Explosions, &Explosion{
		Tiles:  tiles,
		Kind:   b.Kind,
		Owner:  b.Owner,
		Life:   ExplosionLifeSeconds,
		Lethal: ExplosionLethalSeconds,
	})
}

// destroyBlock 摧毁砖块：占用表立即腾出，动画后续自行播完。
// 给引爆者记分，并按概率排队一个延迟一拍的道具。
func (g *Game) destroyBlock(handle int, owner int) {
	blk := g.blockByID(handle)
	if blk == nil || blk.Destroyed {
		return
	}
	blk.Destroyed = true
	g.Grid.Clear(blk.Cell)
	g.emitAt(EventBlockDestroyed, owner, blk.Cell)

	if owner >= 0 && owner < len(g.Players) {
		if g.score != nil {
			g.score.AddPoints(owner, BlockDestroyPoints, "block", blk.Cell.CenterX(), blk.Cell.CenterY())
		}
		g.emit(Event{
			Kind:   EventScoreChanged,
			Player: owner,
			Cell:   blk.Cell,
			X:      blk.Cell.CenterX(),
			Y:      blk.Cell.CenterY(),
			Amount: BlockDestroyPoints,
		})
	}

	g.rollPowerUp(blk.Cell)
}

// advanceExplosions 推进爆炸时间窗，并做持续伤害判定：
// 玩家只看致死窗口，道具在整个存在期内都会被烧掉。
func (g *Game) advanceExplosions(dt float64) {
	for _, e := range g.Explosions {
		e.Age += dt
	}
}

// applyExplosionDamage 对站在活跃爆炸格上的实体结算
func (g *Game) applyExplosionDamage() {
	for _, e := range g.Explosions {
		if e.Age >= e.Life {
			continue
		}

		if e.LethalNow() {
			for _, p := range g.Players {
				if !p.Alive || e.alreadyHit(p.Index) || !e.Covers(p.Cell()) {
					continue
				}
				e.markHit(p.Index)
				g.hitPlayer(p, e)
			}
		}

		for _, pu := range g.PowerUps {
			if pu.Active && e.Covers(pu.Cell) {
				pu.Active = false
			}
		}
	}
}

// hitPlayer 爆炸命中玩家。冰系爆炸可被护盾挡下换一身冰冻，
// 其余类型直接致死；炸死他人时给引爆者记分。
func (g *Game) hitPlayer(p *Player, e *Explosion) {
	if e.Kind == BombIce && p.Shields > 0 {
		p.Shields--
		p.AddDebuff(DebuffFrozen, FrozenSeconds)
		g.emit(Event{Kind: EventShieldConsumed, Player: p.Index, Cell: p.Cell(), X: p.X, Y: p.Y})
		return
	}
	p.Alive = false
	g.emit(Event{Kind: EventPlayerDied, Player: p.Index, Cell: p.Cell(), X: p.X, Y: p.Y})

	if e.Owner >= 0 && e.Owner < len(g.Players) && e.Owner != p.Index {
		if g.score != nil {
			g.score.AddPoints(e.Owner, PlayerKillPoints, "kill", p.X, p.Y)
		}
		g.emit(Event{
			Kind:   EventScoreChanged,
			Player: e.Owner,
			Cell:   p.Cell(),
			X:      p.X,
			Y:      p.Y,
			Amount: PlayerKillPoints,
		})
	}
}
