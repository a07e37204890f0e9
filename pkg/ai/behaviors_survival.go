package ai

import (
	"bombarena/pkg/ai/bt"
	"bombarena/pkg/core"
)

func condInDanger(bb bt.Blackboard) bool {
	board := bb.(*Blackboard)
	return board.Danger.InDanger(board.Self.Cell())
}

func actFindSafe(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	// 既有目标仍然安全就不换，保持逃生路线稳定
	if board.EscapeTo != nil && !board.Danger.InDanger(*board.EscapeTo) {
		return bt.StatusSuccess
	}
	best := findNearestSafe(board.View, board.Danger, board.Self.Cell())
	if best == nil {
		board.EscapeTo = nil
		return bt.StatusFailure
	}
	board.EscapeTo = best
	return bt.StatusSuccess
}

func actMoveToSafe(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	if board.EscapeTo == nil {
		return bt.StatusFailure
	}
	pos := board.Self.Cell()
	if pos == *board.EscapeTo {
		board.EscapeTo = nil
		return bt.StatusSuccess
	}
	step, ok := nextStepToward(board.View, pos, *board.EscapeTo)
	if !ok {
		board.EscapeTo = nil
		return bt.StatusFailure
	}
	board.NextIntent = core.Intent{Dir: dirToward(pos, step)}
	return bt.StatusRunning
}

// findNearestSafe BFS 找离起点最近的无危险格
func findNearestSafe(view core.AIView, danger *DangerField, start core.GridPos) *core.GridPos {
	queue := []core.GridPos{start}
	visited := map[core.GridPos]bool{start: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur != start && !danger.InDanger(cur) {
			found := cur
			return &found
		}
		for _, dir := range searchDirs {
			next := cur.Add(dir, 1)
			if visited[next] || !walkable(view, next) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return nil
}

// dirToward 把相邻格差值翻译成方向意图
func dirToward(from, to core.GridPos) core.Direction {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if absInt(dx) > absInt(dy) {
		if dx > 0 {
			return core.DirRight
		}
		return core.DirLeft
	}
	if dy > 0 {
		return core.DirDown
	}
	if dy < 0 {
		return core.DirUp
	}
	return core.DirNone
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
