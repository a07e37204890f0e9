package ai

import (
	"bombarena/pkg/ai/bt"
	"bombarena/pkg/core"
)

func condHasBombCapacity(bb bt.Blackboard) bool {
	board := bb.(*Blackboard)
	return board.Self.ActiveBombs < board.Self.MaxBombs
}

func actFindTarget(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	start := board.Self.Cell()

	enemy := findEnemyTarget(board.View, board.Self, start)
	block := findBlockTarget(board.View, board.Danger, start)

	first, second := enemy, block
	if board.Config.PreferBlocks {
		first, second = block, enemy
	}
	if first != nil {
		board.Target = first
		return bt.StatusSuccess
	}
	if second != nil {
		board.Target = second
		return bt.StatusSuccess
	}
	return bt.StatusFailure
}

// actPreCheckEscape 已站上目标格时，先假想放一颗炸弹并叠加其
// 火焰覆盖，确认还能逃出去才允许真的放
func actPreCheckEscape(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	if board.Target == nil {
		return bt.StatusFailure
	}
	pos := board.Self.Cell()
	if *board.Target != pos {
		// 还在赶路，先放行移动
		return bt.StatusSuccess
	}

	temp := DangerField{}
	temp.Update(board.View)
	hypo := &core.Bomb{
		Cell:   pos,
		Kind:   board.Self.BombKind,
		Range:  board.Self.EffectiveRange(),
		Active: true,
	}
	when := board.View.Time + core.BombFuseSeconds
	temp.markBlast(board.View.Grid, hypo, when)

	// 一层连锁：假想弹波及到的现存炸弹会被提前引爆
	for _, other := range board.View.Bombs {
		if !other.Active {
			continue
		}
		for _, cell := range blastCells(board.View.Grid, hypo) {
			if other.Cell == cell {
				temp.markBlast(board.View.Grid, other, when)
				break
			}
		}
	}

	if !canEscapeAfterPlacement(board.View, &temp, board.Self, pos) {
		board.Target = nil
		return bt.StatusFailure
	}
	return bt.StatusSuccess
}

func actMoveToTarget(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	if board.Target == nil {
		return bt.StatusFailure
	}
	pos := board.Self.Cell()
	if *board.Target == pos {
		return bt.StatusSuccess
	}
	step, ok := nextStepToward(board.View, pos, *board.Target)
	if !ok {
		board.Target = nil
		return bt.StatusFailure
	}
	board.NextIntent = core.Intent{Dir: dirToward(pos, step)}
	return bt.StatusRunning
}

func actPlaceBomb(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	if board.Target == nil || *board.Target != board.Self.Cell() {
		return bt.StatusFailure
	}
	board.NextIntent = core.Intent{PlaceBomb: true}
	// 下一拍危险场会捕捉到这颗新弹，逃生分支自然接管
	board.EscapeTo = nil
	return bt.StatusSuccess
}

// findEnemyTarget 找能用炸弹覆盖敌人的落位。已与敌人对齐且射线
// 无遮挡时就地放弹，否则挑最近的对齐格。
func findEnemyTarget(view core.AIView, self *core.Player, start core.GridPos) *core.GridPos {
	bestDist := int(^uint(0) >> 1)
	var best *core.GridPos

	rng := self.EffectiveRange()
	for _, p := range view.Players {
		if p.Index == self.Index || !p.Alive {
			continue
		}
		enemyPos := p.Cell()
		if alignedAndClear(view, start, enemyPos, rng) {
			found := start
			return &found
		}
		for _, c := range alignedCells(view, enemyPos, rng) {
			if d := manhattan(start, c); d < bestDist {
				bestDist = d
				found := c
				best = &found
			}
		}
	}
	return best
}

// findBlockTarget BFS 找最近的"旁边有砖且本身安全"的落位
func findBlockTarget(view core.AIView, danger *DangerField, start core.GridPos) *core.GridPos {
	queue := []core.GridPos{start}
	visited := map[core.GridPos]bool{start: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if !danger.InDanger(cur) {
			for _, dir := range searchDirs {
				if view.Grid.At(cur.Add(dir, 1)).Kind == core.OccSoftBlock {
					found := cur
					return &found
				}
			}
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

// alignedAndClear from 到 to 同行或同列、距离在射程内且中途无遮挡
func alignedAndClear(view core.AIView, from, to core.GridPos, rng int) bool {
	var dir core.Direction
	var dist int
	switch {
	case from.X == to.X:
		dist = absInt(from.Y - to.Y)
		dir = core.DirDown
		if to.Y < from.Y {
			dir = core.DirUp
		}
	case from.Y == to.Y:
		dist = absInt(from.X - to.X)
		dir = core.DirRight
		if to.X < from.X {
			dir = core.DirLeft
		}
	default:
		return false
	}
	if dist > rng {
		return false
	}
	for i := 1; i < dist; i++ {
		if view.Grid.At(from.Add(dir, i)).Kind != core.OccEmpty {
			return false
		}
	}
	return true
}

// alignedCells 与目标同行或同列且在射程内的可走格
func alignedCells(view core.AIView, target core.GridPos, rng int) []core.GridPos {
	cells := make([]core.GridPos, 0, rng*4)
	for _, dir := range searchDirs {
		for i := 1; i <= rng; i++ {
			c := target.Add(dir, i)
			if walkable(view, c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

func manhattan(a, b core.GridPos) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}
