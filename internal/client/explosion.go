package client

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bombarena/pkg/core"
)

// 冰系火焰的冷色渐变
func explosionColor(kind core.BombKind, ratio float64, alpha uint8) color.RGBA {
	if kind == core.BombIce {
		switch {
		case ratio < 0.3:
			return color.RGBA{200, 240, 255, alpha}
		case ratio < 0.6:
			return color.RGBA{120, 190, 255, alpha}
		default:
			return color.RGBA{60, 120, 220, alpha}
		}
	}
	switch {
	case ratio < 0.3:
		return color.RGBA{255, 255, 0, alpha}
	case ratio < 0.6:
		return color.RGBA{255, 165, 0, alpha}
	default:
		return color.RGBA{255, 0, 0, alpha}
	}
}

// drawExplosion 火焰十字：存活期内逐渐扩散再消退，
// 致死窗口结束后明显转暗，端点格画小一圈。
func drawExplosion(screen *ebiten.Image, e *core.Explosion) {
	ratio := e.Age / e.Life
	if ratio > 1 {
		ratio = 1
	}
	alpha := uint8(255 * (1 - ratio))
	if !e.LethalNow() {
		alpha /= 2
	}

	for _, tile := range e.Tiles {
		px := float32(tile.Cell.X * core.TileSize)
		py := float32(tile.Cell.Y*core.TileSize + arenaTop)

		scale := float32(0.3 + 0.7*math.Min(ratio*2, 1.0))
		if tile.IsEnd {
			scale *= 0.8
		}
		offset := float32(core.TileSize) * (1 - scale) / 2

		c := explosionColor(e.Kind, ratio, alpha)
		vector.DrawFilledRect(screen, px+offset, py+offset,
			float32(core.TileSize)*scale, float32(core.TileSize)*scale, c, false)

		// 初期的白色高亮中心
		if ratio < 0.5 {
			innerAlpha := uint8(200 * (1 - ratio*2))
			innerScale := scale * 0.6
			innerOffset := float32(core.TileSize) * (1 - innerScale) / 2
			vector.DrawFilledRect(screen, px+innerOffset, py+innerOffset,
				float32(core.TileSize)*innerScale, float32(core.TileSize)*innerScale,
				color.RGBA{255, 255, 255, innerAlpha}, false)
		}

		vector.StrokeRect(screen, px+offset, py+offset,
			float32(core.TileSize)*scale, float32(core.TileSize)*scale,
			2, color.RGBA{255, 100, 0, alpha}, false)
	}
}
