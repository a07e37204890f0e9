package core

import "math"

// Debuff 带时限的负面效果
type Debuff struct {
	Kind      DebuffKind
	Remaining float64
}

// Player 玩家状态。玩家表由回合控制器独占持有，
// 其他组件只通过下标引用，不复制。
type Player struct {
	Index int
	IsAI  bool

	X, Y         float64 // 碰撞盒中心像素坐标
	PrevX, PrevY float64 // 上一拍位置（渲染插值用）
	Facing       Direction
	Moving       bool
	Alive        bool

	MaxBombs    int
	BlastRange  int
	SpeedLevel  int
	ActiveBombs int

	HasKick  bool
	HasPunch bool

	BombKind  BombKind
	Shields   int // 0 或 1
	Teleports int

	Debuffs []Debuff

	// 弹回冲量：单位方向 + 剩余时间
	pushDX, pushDY float64
	pushRemaining  float64

	// 修饰事件的节流状态
	lastStepCell  GridPos
	trailCooldown float64
	linesCooldown float64
}

// NewPlayer 在指定格子中心创建玩家
func NewPlayer(index int, cell GridPos, isAI bool) *Player {
	p := &Player{
		Index:      index,
		IsAI:       isAI,
		X:          cell.CenterX(),
		Y:          cell.CenterY(),
		Facing:     DirDown,
		Alive:      true,
		MaxBombs:   1,
		BlastRange: 2,
		SpeedLevel: 1,
		BombKind:   BombNormal,
	}
	p.PrevX, p.PrevY = p.X, p.Y
	p.lastStepCell = cell
	return p
}

// Cell 玩家中心所在的格子
func (p *Player) Cell() GridPos {
	return CellAt(p.X, p.Y)
}

// EffectiveSpeed 生效移动速度（格/秒），含等级与缓速效果
func (p *Player) EffectiveSpeed() float64 {
	speed := BaseMoveSpeed + float64(p.SpeedLevel-1)*SpeedPerLevel
	if p.HasDebuff(DebuffSlow) {
		speed *= SlowSpeedFactor
	}
	return speed
}

// EffectiveRange 生效爆炸范围，含缩水效果
func (p *Player) EffectiveRange() int {
	if p.HasDebuff(DebuffShrunkenRange) {
		return 1
	}
	return p.BlastRange
}

// HasDebuff 是否带有指定负面效果
func (p *Player) HasDebuff(kind DebuffKind) bool {
	for _, d := range p.Debuffs {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// AddDebuff 施加负面效果，同类效果刷新时长
func (p *Player) AddDebuff(kind DebuffKind, seconds float64) {
	for i := range p.Debuffs {
		if p.Debuffs[i].Kind == kind {
			if p.Debuffs[i].Remaining < seconds {
				p.Debuffs[i].Remaining = seconds
			}
			return
		}
	}
	p.Debuffs = append(p.Debuffs, Debuff{Kind: kind, Remaining: seconds})
}

// tickDebuffs 推进负面效果计时，过期的原地移除
func (p *Player) tickDebuffs(dt float64) {
	kept := p.Debuffs[:0]
	for _, d := range p.Debuffs {
		d.Remaining -= dt
		if d.Remaining > 0 {
			kept = append(kept, d)
		}
	}
	p.Debuffs = kept
}

// startPushback 以炸弹中心指向玩家中心的方向施加冲量
func (p *Player) startPushback(fromX, fromY float64) {
	dx := p.X - fromX
	dy := p.Y - fromY
	length := dx*dx + dy*dy
	if length == 0 {
		// 完全重合时往当前朝向的反方向推
		ddx, ddy := p.Facing.Reversed().Delta()
		dx, dy = float64(ddx), float64(ddy)
		length = 1
	}
	inv := 1.0 / math.Sqrt(length)
	p.pushDX = dx * inv
	p.pushDY = dy * inv
	p.pushRemaining = PushbackSeconds
}
