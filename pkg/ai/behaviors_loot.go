package ai

import (
	"bombarena/pkg/ai/bt"
	"bombarena/pkg/core"
)

// 绕路捡道具的最大曼哈顿距离
const lootMaxDetour = 8

func condWantsLoot(bb bt.Blackboard) bool {
	board := bb.(*Blackboard)
	return board.Config.SeekLoot
}

// actSeekLoot 朝最近的安全道具走。骷髅是陷阱，不主动去踩。
func actSeekLoot(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	pos := board.Self.Cell()

	bestDist := lootMaxDetour + 1
	var best *core.GridPos
	for _, pu := range board.View.PowerUps {
		if !pu.Active || pu.Kind == core.PowerSkull {
			continue
		}
		if board.Danger.InDanger(pu.Cell) {
			continue
		}
		if d := manhattan(pos, pu.Cell); d < bestDist {
			bestDist = d
			found := pu.Cell
			best = &found
		}
	}
	if best == nil {
		return bt.StatusFailure
	}

	if pos == *best {
		return bt.StatusSuccess
	}
	step, ok := nextStepToward(board.View, pos, *best)
	if !ok {
		return bt.StatusFailure
	}
	board.NextIntent = core.Intent{Dir: dirToward(pos, step)}
	return bt.StatusRunning
}
