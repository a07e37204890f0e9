package ai

import (
	"math/rand"

	"bombarena/pkg/ai/bt"
	"bombarena/pkg/core"
)

// Blackboard 行为树的共享工作区。每拍重置快照字段，
// 跨拍字段（逃生目标、游荡惯性）保留连续性。
type Blackboard struct {
	View   core.AIView
	Self   *core.Player
	RNG    *rand.Rand
	Danger *DangerField
	Config *Config

	Target     *core.GridPos
	EscapeTo   *core.GridPos
	NextIntent core.Intent

	LastInDanger bool
	LastBombs    int

	// 游荡惯性：减少抖动
	WanderDir  core.Direction
	WanderLeft float64 // 保持当前游荡方向的剩余秒数
}

func (bb *Blackboard) ResetTick(view core.AIView, self *core.Player) {
	bb.View = view
	bb.Self = self
	bb.Target = nil
	// EscapeTo 不在这里清空：逃生目标要跨拍保持，
	// 只在到达或失效时由 actFindSafe 重置
	bb.NextIntent = core.Intent{}
}

func (bb *Blackboard) AsBT() bt.Blackboard {
	return bb
}
