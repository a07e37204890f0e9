package ai

import (
	"math/rand"

	"bombarena/pkg/ai/bt"
	"bombarena/pkg/core"
)

// Controller 单个 AI 玩家的决策器，实现 core.Brain。
// 行为树每隔若干拍真正思考一次，其余拍复用缓存意图；
// 危险状态或场上炸弹数变化时立即强制重新思考。
type Controller struct {
	Index int // 玩家表下标

	rnd    *rand.Rand
	config *Config

	thinkCounter int
	cachedIntent core.Intent

	blackboard Blackboard
	tree       bt.Node
	danger     DangerField
}

// NewController 创建普通难度的 AI 决策器
func NewController(index int, seed int64) *Controller {
	return NewControllerWithConfig(index, seed, &ConfigNormal)
}

// NewControllerWithConfig 创建指定难度的 AI 决策器
func NewControllerWithConfig(index int, seed int64, config *Config) *Controller {
	if config == nil {
		config = &ConfigNormal
	}
	c := &Controller{
		Index:  index,
		rnd:    rand.New(rand.NewSource(seed + int64(index))),
		config: config,
	}
	c.blackboard = Blackboard{
		RNG:    c.rnd,
		Danger: &c.danger,
		Config: config,
	}

	c.tree = &bt.Selector{Children: []bt.Node{
		&bt.Sequence{Children: []bt.Node{
			&bt.Condition{Check: condInDanger},
			&bt.Action{Do: actFindSafe},
			&bt.Action{Do: actMoveToSafe},
		}},
		&bt.Sequence{Children: []bt.Node{
			&bt.Condition{Check: condWantsLoot},
			&bt.Action{Do: actSeekLoot},
		}},
		&bt.Sequence{Children: []bt.Node{
			&bt.Condition{Check: condHasBombCapacity},
			&bt.Action{Do: actFindTarget},
			&bt.Action{Do: actPreCheckEscape},
			&bt.Action{Do: actMoveToTarget},
			&bt.Action{Do: actPlaceBomb},
		}},
		&bt.Action{Do: actWander},
	}}
	return c
}

// Decide 实现 core.Brain
func (c *Controller) Decide(view core.AIView) core.Intent {
	self := playerByIndex(view, c.Index)
	if self == nil || !self.Alive {
		return core.Intent{}
	}

	inDanger := c.danger.InDanger(self.Cell())
	force := inDanger && !c.blackboard.LastInDanger
	if len(view.Bombs) != c.blackboard.LastBombs {
		force = true
	}
	c.blackboard.LastInDanger = inDanger
	c.blackboard.LastBombs = len(view.Bombs)

	c.thinkCounter++
	if !force && c.thinkCounter < c.config.ThinkIntervalTicks {
		return c.cachedIntent
	}
	c.thinkCounter = 0

	c.danger.Update(view)

	// 刚放了炸弹就清空逃生目标，强制按新局面重算
	if c.cachedIntent.PlaceBomb {
		c.blackboard.EscapeTo = nil
	}

	c.blackboard.ResetTick(view, self)
	_ = c.tree.Tick(c.blackboard.AsBT())
	intent := c.blackboard.NextIntent

	// 被堵在危险区时，面前的炸弹能拳开就拳开
	if inDanger && self.HasPunch && !intent.PlaceBomb {
		front := self.Cell().Add(self.Facing, 1)
		if view.Grid.At(front).Kind == core.OccBomb {
			intent.Special = true
		}
	}

	// 随机失误
	if c.config.MistakeRate > 0 && c.rnd.Float64() < c.config.MistakeRate {
		switch c.rnd.Intn(3) {
		case 0:
			intent = core.Intent{}
		case 1:
			dirs := []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}
			intent = core.Intent{Dir: dirs[c.rnd.Intn(len(dirs))]}
		case 2:
			// 保持原意图
		}
	}

	c.cachedIntent = intent
	return intent
}

// SetConfig 运行时切换难度
func (c *Controller) SetConfig(config *Config) {
	if config == nil {
		return
	}
	c.config = config
	c.blackboard.Config = config
}

func playerByIndex(view core.AIView, index int) *core.Player {
	if index < 0 || index >= len(view.Players) {
		return nil
	}
	return view.Players[index]
}
