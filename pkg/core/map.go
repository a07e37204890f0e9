package core

import (
	"fmt"
	"math/rand"
)

// TileTag 地图输入的格子标记
type TileTag byte

const (
	TagEmpty TileTag = '.'
	TagWall  TileTag = 'W'
	TagSoft  TileTag = 'B'
)

// Layout 一局开始时载入的矩形地图
type Layout struct {
	Width  int
	Height int
	Tiles  [][]TileTag
	Spawns []GridPos // 四个角的出生点
}

// ParseLayout 解析地图行。行长不一致或出现未知标记时直接报错，
// 不做截断或部分恢复。
func ParseLayout(rows []string) (*Layout, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout: empty map")
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("layout: empty first row")
	}

	l := &Layout{
		Width:  width,
		Height: len(rows),
		Tiles:  make([][]TileTag, len(rows)),
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("layout: row %d is %d tiles wide, want %d", y, len(row), width)
		}
		l.Tiles[y] = make([]TileTag, width)
		for x := 0; x < width; x++ {
			tag := TileTag(row[x])
			switch tag {
			case TagEmpty, TagWall, TagSoft:
				l.Tiles[y][x] = tag
			default:
				return nil, fmt.Errorf("layout: unknown tile %q at (%d,%d)", row[x], x, y)
			}
		}
	}

	l.Spawns = []GridPos{
		{X: 1, Y: 1},
		{X: width - 2, Y: 1},
		{X: 1, Y: len(rows) - 2},
		{X: width - 2, Y: len(rows) - 2},
	}
	return l, nil
}

// 默认地图模板：W=墙壁, .=空地, ?=按种子随机填砖
var defaultTemplate = []string{
	"WWWWWWWWWWWWWWW",
	"W..?????????..W",
	"W.W?W?W?W?W?W.W",
	"W?????????????W",
	"W?W?W?W?W?W?W?W",
	"W?????????????W",
	"W?W?W?W?W?W?W?W",
	"W?????????????W",
	"W?W?W?W?W?W?W?W",
	"W?????????????W",
	"W.W?W?W?W?W?W.W",
	"W..?????????..W",
	"WWWWWWWWWWWWWWW",
}

// 随机格填砖的概率
const softFillChance = 0.75

// DefaultLayout 使用指定种子生成默认竞技场（确定性）
func DefaultLayout(seed int64) *Layout {
	r := rand.New(rand.NewSource(seed))

	height := len(defaultTemplate)
	width := len(defaultTemplate[0])
	l := &Layout{
		Width:  width,
		Height: height,
		Tiles:  make([][]TileTag, height),
	}
	for y := 0; y < height; y++ {
		l.Tiles[y] = make([]TileTag, width)
		for x := 0; x < width; x++ {
			switch defaultTemplate[y][x] {
			case 'W':
				l.Tiles[y][x] = TagWall
			case '?':
				if r.Float64() < softFillChance {
					l.Tiles[y][x] = TagSoft
				} else {
					l.Tiles[y][x] = TagEmpty
				}
			default:
				l.Tiles[y][x] = TagEmpty
			}
		}
	}

	l.Spawns = []GridPos{
		{X: 1, Y: 1},
		{X: width - 2, Y: 1},
		{X: 1, Y: height - 2},
		{X: width - 2, Y: height - 2},
	}
	return l
}
