package core

// PowerUpKind 道具类型
type PowerUpKind int

const (
	PowerBombUp PowerUpKind = iota
	PowerFireUp
	PowerSpeedUp
	PowerShield
	PowerKick
	PowerPunch
	PowerTeleport
	PowerFireBomb
	PowerIceBomb
	PowerPiercingBomb
	PowerSkull
)

// String 返回道具类型的字符串表示
func (k PowerUpKind) String() string {
	switch k {
	case PowerBombUp:
		return "bomb-up"
	case PowerFireUp:
		return "fire-up"
	case PowerSpeedUp:
		return "speed-up"
	case PowerShield:
		return "shield"
	case PowerKick:
		return "kick"
	case PowerPunch:
		return "punch"
	case PowerTeleport:
		return "teleport"
	case PowerFireBomb:
		return "fire-bomb"
	case PowerIceBomb:
		return "ice-bomb"
	case PowerPiercingBomb:
		return "piercing-bomb"
	case PowerSkull:
		return "skull"
	}
	return "unknown"
}

// PowerUp 场上的道具
type PowerUp struct {
	Cell   GridPos
	Kind   PowerUpKind
	Active bool
}

// pendingPowerUp 延迟一拍落地的道具，防止被催生它的那次爆炸烧掉
type pendingPowerUp struct {
	Cell GridPos
	Kind PowerUpKind
}

// 掉落权重表。Punch 是合法道具但不在掉落表里
var spawnTable = []struct {
	Kind   PowerUpKind
	Weight float64
}{
	{PowerBombUp, 25},
	{PowerFireUp, 25},
	{PowerSpeedUp, 15},
	{PowerShield, 8},
	{PowerKick, 7},
	{PowerTeleport, 5},
	{PowerFireBomb, 5},
	{PowerIceBomb, 5},
	{PowerPiercingBomb, 3},
	{PowerSkull, 2},
}

// 骷髅可抽到的负面效果
var skullDebuffs = []DebuffKind{
	DebuffSlow,
	DebuffReversed,
	DebuffShrunkenRange,
	DebuffAutoBomb,
}

// rollPowerUp 砖块被炸毁时按概率排队一个道具
func (g *Game) rollPowerUp(cell GridPos) {
	if g.rng.Float64() >= PowerUpSpawnChance {
		return
	}
	g.pending = append(g.pending, pendingPowerUp{Cell: cell, Kind: g.rollKind()})
}

// rollKind 加权抽取：在 [0, 总权重) 均匀取样，按表序扣减，
// 余量 ≤ 0 时选中该项；浮点误差兜底选第一项。
func (g *Game) rollKind() PowerUpKind {
	total := 0.0
	for _, e := range spawnTable {
		total += e.Weight
	}
	draw := g.rng.Float64() * total
	for _, e := range spawnTable {
		draw -= e.Weight
		if draw <= 0 {
			return e.Kind
		}
	}
	return spawnTable[0].Kind
}

// materializePending 让排队中的道具落地。格子被占用或仍被
// 任何活跃爆炸覆盖时继续等，防止刚落地就被第二轮火焰烧掉。
func (g *Game) materializePending() {
	kept := g.pending[:0]
	for _, pd := range g.pending {
		if g.Grid.At(pd.Cell).Kind != OccEmpty || g.explosionCovers(pd.Cell) {
			kept = append(kept, pd)
			continue
		}
		g.PowerUps = append(g.PowerUps, &PowerUp{Cell: pd.Cell, Kind: pd.Kind, Active: true})
	}
	g.pending = kept
}

func (g *Game) explosionCovers(cell GridPos) bool {
	for _, e := range g.Explosions {
		if e.Age < e.Life && e.Covers(cell) {
			return true
		}
	}
	return false
}

// collectPowerUps 玩家所在格与活跃道具重合时拾取。
// 一拍最多拾取一个。
func (g *Game) collectPowerUps(p *Player) {
	if !p.Alive {
		return
	}
	cell := p.Cell()
	for _, pu := range g.PowerUps {
		if !pu.Active || pu.Cell != cell {
			continue
		}
		pu.Active = false
		g.applyPowerUp(p, pu.Kind)
		return
	}
}

// applyPowerUp 道具效果表
func (g *Game) applyPowerUp(p *Player, kind PowerUpKind) {
	switch kind {
	case PowerBombUp:
		if p.MaxBombs < MaxBombStat {
			p.MaxBombs++
		}
	case PowerFireUp:
		if p.BlastRange < MaxRangeStat {
			p.BlastRange++
		}
	case PowerSpeedUp:
		if p.SpeedLevel < MaxSpeedStat {
			p.SpeedLevel++
		}
	case PowerShield:
		p.Shields = 1
	case PowerKick:
		p.HasKick = true
	case PowerPunch:
		p.HasPunch = true
	case PowerTeleport:
		p.Teleports++
	case PowerFireBomb:
		p.BombKind = BombFire
	case PowerIceBomb:
		p.BombKind = BombIce
	case PowerPiercingBomb:
		p.BombKind = BombPiercing
	case PowerSkull:
		kind := skullDebuffs[g.rng.Intn(len(skullDebuffs))]
		p.AddDebuff(kind, SkullDebuffSeconds)
	}
}
