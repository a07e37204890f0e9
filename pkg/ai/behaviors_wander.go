package ai

import (
	"bombarena/pkg/ai/bt"
	"bombarena/pkg/core"
)

// 游荡时保持同一方向的秒数
const wanderHoldSeconds = 0.5

func actWander(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	if board.RNG == nil {
		return bt.StatusFailure
	}
	pos := board.Self.Cell()

	// 当前方向仍可行且未超时就继续保持
	if board.WanderLeft > 0 && board.WanderDir != core.DirNone {
		board.WanderLeft -= board.View.TickSeconds
		if wanderStepOK(board.View, board.Danger, pos, board.WanderDir) {
			board.NextIntent = core.Intent{Dir: board.WanderDir}
			return bt.StatusRunning
		}
		board.WanderDir = core.DirNone
		board.WanderLeft = 0
	}

	// 优先选安全方向，没有安全方向时退而求可走方向
	candidates := wanderDirections(board.View, board.Danger, pos, true)
	if len(candidates) == 0 {
		candidates = wanderDirections(board.View, board.Danger, pos, false)
	}
	if len(candidates) == 0 {
		// 完全被困，原地不动
		return bt.StatusRunning
	}

	board.WanderDir = candidates[board.RNG.Intn(len(candidates))]
	board.WanderLeft = wanderHoldSeconds
	board.NextIntent = core.Intent{Dir: board.WanderDir}
	return bt.StatusRunning
}

func wanderStepOK(view core.AIView, danger *DangerField, pos core.GridPos, dir core.Direction) bool {
	next := pos.Add(dir, 1)
	return walkable(view, next) && !danger.InDanger(next)
}

func wanderDirections(view core.AIView, danger *DangerField, pos core.GridPos, safeOnly bool) []core.Direction {
	result := make([]core.Direction, 0, 4)
	for _, dir := range searchDirs {
		next := pos.Add(dir, 1)
		if !walkable(view, next) {
			continue
		}
		if safeOnly && danger.InDanger(next) {
			continue
		}
		result = append(result, dir)
	}
	return result
}
