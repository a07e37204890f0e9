package core

// OccupantKind 格子占用者类型
type OccupantKind int

const (
	OccEmpty OccupantKind = iota
	OccWall
	OccSoftBlock
	OccBomb
)

// Occupant 格子占用者：墙为纯标记，砖块/炸弹带实体句柄
type Occupant struct {
	Kind   OccupantKind
	Handle int
}

var (
	occEmpty = Occupant{Kind: OccEmpty}
	occWall  = Occupant{Kind: OccWall}
)

// GridIndex 权威占用表：每格至多一个静态/半静态占用者
type GridIndex struct {
	width  int
	height int
	cells  []Occupant
}

// NewGridIndex 创建空占用表
func NewGridIndex(width, height int) *GridIndex {
	return &GridIndex{
		width:  width,
		height: height,
		cells:  make([]Occupant, width*height),
	}
}

// Size 返回宽高
func (g *GridIndex) Size() (int, int) {
	return g.width, g.height
}

// InBounds 坐标是否在范围内
func (g *GridIndex) InBounds(p GridPos) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At 查询占用者，越界视为墙
func (g *GridIndex) At(p GridPos) Occupant {
	if !g.InBounds(p) {
		return occWall
	}
	return g.cells[p.Y*g.width+p.X]
}

// Set 写入占用者
func (g *GridIndex) Set(p GridPos, o Occupant) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y*g.width+p.X] = o
}

// Clear 清空格子
func (g *GridIndex) Clear(p GridPos) {
	g.Set(p, occEmpty)
}

// Blocked 格子是否被任何占用者挡住（越界同样算挡住）
func (g *GridIndex) Blocked(p GridPos) bool {
	return g.At(p).Kind != OccEmpty
}
