package core

import "math"

// Direction 移动/朝向方向
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String 返回方向的字符串表示
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Delta 返回方向的单位格偏移
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Reversed 返回相反方向（用于反转操作 debuff）
func (d Direction) Reversed() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// Horizontal 方向是否沿横轴
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// GridPos 格子坐标
type GridPos struct {
	X, Y int
}

// Add 返回沿方向偏移 n 格后的坐标
func (p GridPos) Add(d Direction, n int) GridPos {
	dx, dy := d.Delta()
	return GridPos{X: p.X + dx*n, Y: p.Y + dy*n}
}

// CenterX 格子中心的像素横坐标
func (p GridPos) CenterX() float64 {
	return float64(p.X)*TileSize + TileSize/2
}

// CenterY 格子中心的像素纵坐标
func (p GridPos) CenterY() float64 {
	return float64(p.Y)*TileSize + TileSize/2
}

// CellAt 像素坐标所在的格子
func CellAt(x, y float64) GridPos {
	return GridPos{
		X: int(math.Floor(x / TileSize)),
		Y: int(math.Floor(y / TileSize)),
	}
}

// BombKind 炸弹类型
type BombKind int

const (
	BombNormal BombKind = iota
	BombFire
	BombIce
	BombPiercing
)

// String 返回炸弹类型的字符串表示
func (k BombKind) String() string {
	switch k {
	case BombFire:
		return "fire"
	case BombIce:
		return "ice"
	case BombPiercing:
		return "piercing"
	}
	return "normal"
}

// DebuffKind 负面效果类型
type DebuffKind int

const (
	DebuffSlow          DebuffKind = iota // 缓速
	DebuffReversed                        // 反转操作
	DebuffShrunkenRange                   // 爆炸范围缩水
	DebuffAutoBomb                        // 不受控放弹
	DebuffFrozen                          // 冰冻（冰系爆炸+护盾）
)

// String 返回负面效果的字符串表示
func (k DebuffKind) String() string {
	switch k {
	case DebuffSlow:
		return "slow"
	case DebuffReversed:
		return "reversed"
	case DebuffShrunkenRange:
		return "shrunken-range"
	case DebuffAutoBomb:
		return "auto-bomb"
	case DebuffFrozen:
		return "frozen"
	}
	return "unknown"
}
