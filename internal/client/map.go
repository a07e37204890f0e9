package client

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bombarena/pkg/core"
)

// 竞技场绘制区从 HUD 下方开始
const arenaTop = core.HUDHeight

var (
	colorGrass   = color.RGBA{34, 139, 34, 255}
	colorWall    = color.RGBA{80, 80, 80, 255}
	colorBlock   = color.RGBA{205, 133, 63, 255}
	colorBlockHi = color.RGBA{180, 118, 53, 255}
	colorWallHi  = color.RGBA{60, 60, 60, 255}
)

// drawArena 底层地表与静态占用：草地、墙、砖。
// 砖从摧毁动画列表单独绘制，摧毁瞬间占用表已腾空。
func drawArena(screen *ebiten.Image, g *core.Game) {
	w, h := g.Grid.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := float32(x * core.TileSize)
			py := float32(y*core.TileSize + arenaTop)

			occ := g.Grid.At(core.GridPos{X: x, Y: y})
			c := colorGrass
			switch occ.Kind {
			case core.OccWall:
				c = colorWall
			case core.OccSoftBlock:
				c = colorBlock
			}
			vector.DrawFilledRect(screen, px, py, core.TileSize, core.TileSize, c, false)
			vector.StrokeRect(screen, px, py, core.TileSize, core.TileSize, 1, color.RGBA{0, 0, 0, 100}, false)

			switch occ.Kind {
			case core.OccSoftBlock:
				// 横线模拟砖缝
				for i := 0; i < 3; i++ {
					lineY := py + float32(i*10+5)
					vector.StrokeLine(screen, px+2, lineY, px+core.TileSize-2, lineY, 1, colorBlockHi, false)
				}
			case core.OccWall:
				// 十字纹理
				vector.StrokeLine(screen, px+core.TileSize/2, py+5, px+core.TileSize/2, py+core.TileSize-5, 2, colorWallHi, false)
				vector.StrokeLine(screen, px+5, py+core.TileSize/2, px+core.TileSize-5, py+core.TileSize/2, 2, colorWallHi, false)
			}
		}
	}

	// 被炸毁的砖：按动画进度缩小淡出
	for _, blk := range g.Blocks {
		if !blk.Destroyed {
			continue
		}
		progress := float32(blk.Progress)
		if progress > 1 {
			progress = 1
		}
		scale := 1 - progress
		size := float32(core.TileSize) * scale
		offset := (float32(core.TileSize) - size) / 2
		px := float32(blk.Cell.X*core.TileSize) + offset
		py := float32(blk.Cell.Y*core.TileSize+arenaTop) + offset
		alpha := uint8(255 * scale)
		vector.DrawFilledRect(screen, px, py, size, size,
			color.RGBA{205, 133, 63, alpha}, false)
	}
}
