package core

// Intent 一拍内单个玩家的操作意图，来自输入映射或 AI
type Intent struct {
	Dir       Direction
	PlaceBomb bool
	Special   bool // 触发拳击等主动能力
}

// AIView AI 决策用的本拍快照。所有 AI 玩家的意图在任何移动
// 结算之前统一收集，避免先手偏差。
type AIView struct {
	TickSeconds float64
	Time        float64 // 本回合已模拟的秒数
	Grid        *GridIndex
	Blocks      []*Block
	Bombs       []*Bomb
	Explosions  []*Explosion
	PowerUps    []*PowerUp
	Players     []*Player
}

// Brain AI 协作方契约：每拍对每个 AI 玩家恰好询问一次
type Brain interface {
	Decide(view AIView) Intent
}

// BrainFunc 纯函数形式的 Brain 适配器
type BrainFunc func(view AIView) Intent

// Decide 实现 Brain
func (f BrainFunc) Decide(view AIView) Intent {
	return f(view)
}

// ScoreSink 计分协作方契约。核心只写不读，
// 分数不参与任何模拟决策。
type ScoreSink interface {
	AddPoints(player int, amount int, reason string, x, y float64)
}
