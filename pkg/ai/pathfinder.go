package ai

import (
	"container/list"

	"bombarena/pkg/core"
)

type stepNode struct {
	Pos  core.GridPos
	Prev *stepNode
	When float64
}

var searchDirs = []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

// walkable 空格可走；墙、砖、登记在格上的炸弹都不可走
func walkable(view core.AIView, cell core.GridPos) bool {
	return view.Grid.At(cell).Kind == core.OccEmpty
}

// nextStepToward BFS 求 start 到 target 的首步格
func nextStepToward(view core.AIView, start, target core.GridPos) (core.GridPos, bool) {
	if start == target {
		return start, true
	}
	queue := list.New()
	visited := make(map[core.GridPos]bool)
	queue.PushBack(&stepNode{Pos: start})
	visited[start] = true

	var found *stepNode
	for queue.Len() > 0 {
		n := queue.Remove(queue.Front()).(*stepNode)
		if n.Pos == target {
			found = n
			break
		}
		for _, dir := range searchDirs {
			next := n.Pos.Add(dir, 1)
			if visited[next] || !walkable(view, next) {
				continue
			}
			visited[next] = true
			queue.PushBack(&stepNode{Pos: next, Prev: n})
		}
	}
	if found == nil {
		return core.GridPos{}, false
	}
	for found.Prev != nil && found.Prev.Pos != start {
		found = found.Prev
	}
	return found.Pos, true
}

// canEscapeAfterPlacement 按时间展开 BFS：以玩家当前速度逐格推进，
// 只要在引信烧完之前能踩到一个抵达时仍安全的格子就算逃得掉。
func canEscapeAfterPlacement(view core.AIView, danger *DangerField, self *core.Player, start core.GridPos) bool {
	cellSeconds := 1.0 / self.EffectiveSpeed()
	deadline := view.Time + core.BombFuseSeconds

	queue := list.New()
	visited := make(map[core.GridPos]bool)
	queue.PushBack(&stepNode{Pos: start, When: view.Time})

	for queue.Len() > 0 {
		n := queue.Remove(queue.Front()).(*stepNode)
		if n.When > deadline || visited[n.Pos] {
			continue
		}
		visited[n.Pos] = true

		if danger.ClearFrom(n.Pos, n.When) {
			return true
		}
		for _, dir := range searchDirs {
			next := n.Pos.Add(dir, 1)
			if next == start || !walkable(view, next) {
				continue
			}
			queue.PushBack(&stepNode{Pos: next, When: n.When + cellSeconds})
		}
	}
	return false
}
