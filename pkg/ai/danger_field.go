package ai

import (
	"math"

	"bombarena/pkg/core"
)

// DangerField 危险热力图。Earliest 记录每格最早被火焰覆盖的
// 绝对时刻（秒），Level 把剩余时间归一化成 0~1 的紧迫度。
type DangerField struct {
	width, height int
	Earliest      []float64
	Level         []float64
}

const neverDanger = math.MaxFloat64

func (df *DangerField) resize(w, h int) {
	if df.width == w && df.height == h {
		return
	}
	df.width, df.height = w, h
	df.Earliest = make([]float64, w*h)
	df.Level = make([]float64, w*h)
}

func (df *DangerField) idx(x, y int) int {
	return y*df.width + x
}

func (df *DangerField) inRange(x, y int) bool {
	return x >= 0 && x < df.width && y >= 0 && y < df.height
}

// Update 从本拍快照重建热力图
func (df *DangerField) Update(view core.AIView) {
	w, h := view.Grid.Size()
	df.resize(w, h)
	for i := range df.Earliest {
		df.Earliest[i] = neverDanger
		df.Level[i] = 0
	}

	// 连锁传播：若 A 的火焰覆盖 B 所在格，B 的起爆时刻提前到 A 的。
	// 反复松弛直到稳定。
	actual := make(map[*core.Bomb]float64, len(view.Bombs))
	for _, b := range view.Bombs {
		if b.Active {
			actual[b] = view.Time + b.Fuse
		}
	}
	changed := true
	for changed {
		changed = false
		for _, b := range view.Bombs {
			if !b.Active {
				continue
			}
			when := actual[b]
			for _, cell := range blastCells(view.Grid, b) {
				for _, other := range view.Bombs {
					if other == b || !other.Active {
						continue
					}
					if other.Cell == cell && actual[other] > when {
						actual[other] = when
						changed = true
					}
				}
			}
		}
	}

	for _, b := range view.Bombs {
		if !b.Active {
			continue
		}
		when := actual[b]
		for _, cell := range blastCells(view.Grid, b) {
			if !df.inRange(cell.X, cell.Y) {
				continue
			}
			if when < df.Earliest[df.idx(cell.X, cell.Y)] {
				df.Earliest[df.idx(cell.X, cell.Y)] = when
			}
		}
	}

	// 现存火焰是即时危险
	for _, e := range view.Explosions {
		if e.Age >= e.Life {
			continue
		}
		for _, tile := range e.Tiles {
			if df.inRange(tile.Cell.X, tile.Cell.Y) {
				df.Earliest[df.idx(tile.Cell.X, tile.Cell.Y)] = view.Time
			}
		}
	}

	for i, when := range df.Earliest {
		if when == neverDanger {
			continue
		}
		remaining := when - view.Time
		switch {
		case remaining <= 0:
			df.Level[i] = 1
		case remaining >= core.BombFuseSeconds:
			df.Level[i] = 0
		default:
			df.Level[i] = 1 - remaining/core.BombFuseSeconds
		}
	}
}

// InDanger 该格是否已进入需要回避的紧迫度。界外视为危险。
func (df *DangerField) InDanger(cell core.GridPos) bool {
	if !df.inRange(cell.X, cell.Y) {
		return true
	}
	return df.Level[df.idx(cell.X, cell.Y)] > 0.05
}

// SafeAt 在给定时刻抵达该格是否安全
func (df *DangerField) SafeAt(cell core.GridPos, when float64) bool {
	if !df.inRange(cell.X, cell.Y) {
		return false
	}
	return when < df.Earliest[df.idx(cell.X, cell.Y)]
}

// ClearFrom 从给定时刻起该格是否不再有火焰：要么从未被覆盖，
// 要么火焰在抵达前已经烧完。逃生终点必须满足这个更强的条件，
// 否则"火还没来"的格子会被误当成安全点。
func (df *DangerField) ClearFrom(cell core.GridPos, when float64) bool {
	if !df.inRange(cell.X, cell.Y) {
		return false
	}
	earliest := df.Earliest[df.idx(cell.X, cell.Y)]
	return earliest == neverDanger || when > earliest+core.ExplosionLifeSeconds
}

// markBlast 把一颗（假想）炸弹的火焰覆盖叠加进热力图，
// 用于放弹前的逃生预判。
func (df *DangerField) markBlast(grid *core.GridIndex, b *core.Bomb, when float64) {
	for _, cell := range blastCells(grid, b) {
		if !df.inRange(cell.X, cell.Y) {
			continue
		}
		if when < df.Earliest[df.idx(cell.X, cell.Y)] {
			df.Earliest[df.idx(cell.X, cell.Y)] = when
		}
	}
}

// blastCells 预测炸弹的火焰覆盖格，与结算规则一致：
// 墙截断射线，砖被纳入后截断（穿透弹除外），炸弹格纳入并继续。
func blastCells(grid *core.GridIndex, b *core.Bomb) []core.GridPos {
	cells := []core.GridPos{b.Cell}
	for _, dir := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		for i := 1; i <= b.Range; i++ {
			cell := b.Cell.Add(dir, i)
			occ := grid.At(cell)
			if occ.Kind == core.OccWall {
				break
			}
			cells = append(cells, cell)
			if occ.Kind == core.OccSoftBlock && b.Kind != core.BombPiercing {
				break
			}
		}
	}
	return cells
}
