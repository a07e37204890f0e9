package core

import "math"

// 碰撞盒半宽（中心到内缩后的角）
const hitboxHalf = TileSize/2 - HitboxPad

type probeResult int

const (
	probeClear probeResult = iota
	probeBlocked
	probeTeleported
)

type bombRuling int

const (
	bombPass bombRuling = iota
	bombKicked
	bombBlock
	bombTeleported
)

// resolveMovement 按请求方向推进玩家的连续位置。
// 失败从不致命：每种情况都退化为部分移动、零移动
// 或替代动作（踢/传送/弹回）。
func (g *Game) resolveMovement(p *Player, dir Direction, dt float64) {
	if !p.Alive {
		return
	}

	startX, startY := p.X, p.Y

	// 弹回冲量优先于本拍输入位移
	if p.pushRemaining > 0 {
		g.applyPushback(p, dt)
	}

	frozen := p.HasDebuff(DebuffFrozen)
	if dir != DirNone && !frozen {
		g.applyAxisLock(p)

		step := p.EffectiveSpeed() * TileSize * dt
		dx, dy := dir.Delta()
		nx := p.X + float64(dx)*step
		ny := p.Y + float64(dy)*step

		switch g.probeMove(p, nx, ny, dir, true) {
		case probeClear:
			p.X, p.Y = nx, ny
		case probeTeleported:
			// 位置已在穿越时更新
		case probeBlocked:
			if !g.tryCornerSlide(p, dir, step) && p.IsAI {
				g.tryAIRealign(p, dir, step)
			}
		}
	}

	net := math.Abs(p.X-startX) + math.Abs(p.Y-startY)
	if net < MoveEpsilon {
		p.Moving = false
	} else {
		wasMoving := p.Moving
		p.Moving = true
		g.emitMoveCosmetics(p, wasMoving, dt)
	}
	if dir != DirNone {
		p.Facing = dir
	}
}

// applyAxisLock 两侧邻格都被挡时，把该轴坐标吸附到格中心，
// 防止在双墙夹缝里持续漂移。
func (g *Game) applyAxisLock(p *Player) {
	cell := p.Cell()
	if g.Grid.Blocked(cell.Add(DirLeft, 1)) && g.Grid.Blocked(cell.Add(DirRight, 1)) {
		p.X = cell.CenterX()
	}
	if g.Grid.Blocked(cell.Add(DirUp, 1)) && g.Grid.Blocked(cell.Add(DirDown, 1)) {
		p.Y = cell.CenterY()
	}
}

// probeMove 检查内缩碰撞盒四角在候选位置的所属格。
// allowEffects 为 true 时按炸弹交互规则结算副作用
// （踢/离开标记/传送/弹回），复验时只做纯阻挡判断。
func (g *Game) probeMove(p *Player, nx, ny float64, dir Direction, allowEffects bool) probeResult {
	corners := [4][2]float64{
		{nx - hitboxHalf, ny - hitboxHalf},
		{nx + hitboxHalf, ny - hitboxHalf},
		{nx - hitboxHalf, ny + hitboxHalf},
		{nx + hitboxHalf, ny + hitboxHalf},
	}

	blocked := false
	kicked := 0 // 本次探测已踢出的炸弹句柄
	for _, c := range corners {
		cell := CellAt(c[0], c[1])
		occ := g.Grid.At(cell)
		switch occ.Kind {
		case OccEmpty:
			continue
		case OccWall, OccSoftBlock:
			blocked = true
		case OccBomb:
			if occ.Handle == kicked {
				continue
			}
			b := g.bombByID(occ.Handle)
			if b == nil {
				continue
			}
			if !allowEffects {
				if p.Cell() != b.Cell {
					blocked = true
				}
				continue
			}
			switch g.bombRule(p, b, dir) {
			case bombPass:
			case bombKicked:
				kicked = b.ID
			case bombBlock:
				blocked = true
			case bombTeleported:
				return probeTeleported
			}
		}
	}
	if blocked {
		return probeBlocked
	}
	return probeClear
}

// bombRule 逐个触碰角结算炸弹交互
func (g *Game) bombRule(p *Player, b *Bomb, dir Direction) bombRuling {
	// 正站在该炸弹格上：忽略，允许从脚下的炸弹走开
	if p.Cell() == b.Cell {
		return bombPass
	}

	// 有踢力且炸弹静止：踢出去，本角不再阻挡
	if p.HasKick && !b.Sliding {
		g.kickBomb(b, dir)
		return bombKicked
	}

	// 请求方向是在靠近还是远离炸弹中心
	dx, dy := dir.Delta()
	toward := float64(dx)*(b.Cell.CenterX()-p.X) + float64(dy)*(b.Cell.CenterY()-p.Y)

	if toward <= 0 {
		// 离开自己的炸弹不受阻，并记录主人已离开
		if b.Owner == p.Index {
			b.OwnerLeft = true
			return bombPass
		}
		return bombBlock
	}

	// 进入：持传送符时尝试穿越到炸弹背面的空格
	if p.Teleports > 0 {
		dest := b.Cell.Add(dir, 1)
		if !g.Grid.Blocked(dest) {
			p.Teleports--
			g.emitAt(EventTeleportStart, p.Index, p.Cell())
			p.X = dest.CenterX()
			p.Y = dest.CenterY()
			g.emitAt(EventTeleportArrived, p.Index, dest)
			return bombTeleported
		}
	}

	// 挡下并施加弹回冲量（冲量未衰减完前不重复触发）
	if p.pushRemaining <= 0 {
		p.startPushback(b.Cell.CenterX(), b.Cell.CenterY())
		g.emit(Event{Kind: EventPlayerPushback, Player: p.Index, Cell: p.Cell(), X: p.X, Y: p.Y})
	}
	return bombBlock
}

// tryCornerSlide 拐角辅助：垂直轴上离格中心足够近时，
// 以半个位移量向中心蹭一下，避免卡在斜角障碍上。
func (g *Game) tryCornerSlide(p *Player, dir Direction, step float64) bool {
	cell := p.Cell()
	nudge := step * 0.5

	var offset float64
	if dir.Horizontal() {
		offset = cell.CenterY() - p.Y
	} else {
		offset = cell.CenterX() - p.X
	}
	if offset == 0 || math.Abs(offset) > CornerSlideTolerance {
		return false
	}
	delta := stepToward(offset, nudge)

	dx, dy := dir.Delta()
	if dir.Horizontal() {
		nx := p.X + float64(dx)*step
		ny := p.Y + delta
		if g.probeMove(p, nx, ny, dir, false) == probeClear {
			p.X, p.Y = nx, ny
			return true
		}
		if g.probeMove(p, p.X, ny, dir, false) == probeClear {
			p.Y = ny
			return true
		}
		return false
	}

	nx := p.X + delta
	ny := p.Y + float64(dy)*step
	if g.probeMove(p, nx, ny, dir, false) == probeClear {
		p.X, p.Y = nx, ny
		return true
	}
	if g.probeMove(p, nx, p.Y, dir, false) == probeClear {
		p.X = nx
		return true
	}
	return false
}

// tryAIRealign AI 对齐辅助：AI 的意图是按格量化的，比人类输入
// 更容易卡角，所以允许更大的容差和更快的回正速度。
func (g *Game) tryAIRealign(p *Player, dir Direction, step float64) bool {
	cell := p.Cell()
	nudge := step * AIRealignFactor

	var offset float64
	if dir.Horizontal() {
		offset = cell.CenterY() - p.Y
	} else {
		offset = cell.CenterX() - p.X
	}
	if offset == 0 || math.Abs(offset) > AIRealignTolerance {
		return false
	}
	delta := stepToward(offset, nudge)

	if dir.Horizontal() {
		ny := p.Y + delta
		if g.probeMove(p, p.X, ny, dir, false) == probeClear {
			p.Y = ny
			return true
		}
		return false
	}
	nx := p.X + delta
	if g.probeMove(p, nx, p.Y, dir, false) == probeClear {
		p.X = nx
		return true
	}
	return false
}

// applyPushback 推进弹回冲量：线性衰减的位移覆盖，
// 每拍对占用表复验，绝不把玩家推进被挡格。
func (g *Game) applyPushback(p *Player, dt float64) {
	factor := p.pushRemaining / PushbackSeconds
	if factor < 0 {
		factor = 0
	}
	dist := PushbackSpeed * factor * dt
	nx := p.X + p.pushDX*dist
	ny := p.Y + p.pushDY*dist
	p.pushRemaining -= dt

	if g.probeMove(p, nx, ny, DirNone, false) == probeClear {
		p.X, p.Y = nx, ny
	}
}

// emitMoveCosmetics 移动相关的修饰事件（脚步、起步尘土、拖尾、速度线）
func (g *Game) emitMoveCosmetics(p *Player, wasMoving bool, dt float64) {
	if !wasMoving {
		g.emit(Event{Kind: EventPlayerDustCloud, Player: p.Index, Cell: p.Cell(), X: p.X, Y: p.Y})
	}

	cell := p.Cell()
	if cell != p.lastStepCell {
		p.lastStepCell = cell
		g.emitAt(EventPlayerStep, p.Index, cell)
	}

	p.trailCooldown -= dt
	if p.SpeedLevel >= 3 && p.trailCooldown <= 0 {
		p.trailCooldown = TrailInterval
		g.emit(Event{Kind: EventPlayerTrail, Player: p.Index, Cell: cell, X: p.X, Y: p.Y})
	}

	p.linesCooldown -= dt
	if p.SpeedLevel >= MaxSpeedStat && p.linesCooldown <= 0 {
		p.linesCooldown = SpeedLinesInterval
		g.emit(Event{Kind: EventPlayerSpeedLines, Player: p.Index, Cell: cell, X: p.X, Y: p.Y})
	}
}

// stepToward 朝 offset 方向至多走 maxStep
func stepToward(offset, maxStep float64) float64 {
	if offset > maxStep {
		return maxStep
	}
	if offset < -maxStep {
		return -maxStep
	}
	return offset
}
