package client

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bombarena/pkg/core"
)

// 炸弹类型对应的主体颜色
func bombBodyColor(kind core.BombKind, alpha uint8) color.RGBA {
	switch kind {
	case core.BombFire:
		return color.RGBA{120, 20, 0, alpha}
	case core.BombIce:
		return color.RGBA{40, 90, 160, alpha}
	case core.BombPiercing:
		return color.RGBA{90, 30, 120, alpha}
	}
	return color.RGBA{0, 0, 0, alpha}
}

// drawBomb 绘制单颗炸弹：滑行用连续坐标插值，引信烧短并闪烁
func drawBomb(screen *ebiten.Image, b *core.Bomb, alpha float64) {
	cx := float32(lerp(b.PrevX, b.X, alpha))
	cy := float32(lerp(b.PrevY, b.Y, alpha)) + arenaTop

	burnt := core.BombFuseSeconds - b.Fuse
	ratio := burnt / core.BombFuseSeconds
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	radius := float32(12)
	blink := math.Sin(burnt * 6)
	bodyAlpha := uint8(200 + 55*blink)

	vector.DrawFilledCircle(screen, cx, cy, radius, bombBodyColor(b.Kind, bodyAlpha), false)
	vector.StrokeCircle(screen, cx, cy, radius, 2, color.RGBA{50, 50, 50, 255}, false)

	// 引线随燃烧变短
	fuseLength := float32(15 * (1 - ratio))
	if fuseLength > 0 {
		fuseX := cx - radius*0.5
		fuseY := cy - radius
		vector.StrokeLine(screen, fuseX, fuseY, fuseX-fuseLength*0.5, fuseY-fuseLength,
			2, color.RGBA{139, 69, 19, 255}, false)
		if blink > 0 {
			sparkX := fuseX - fuseLength*0.5
			sparkY := fuseY - fuseLength
			vector.DrawFilledCircle(screen, sparkX, sparkY, 3,
				color.RGBA{255, uint8(100 + 155*blink), 0, 255}, false)
		}
	}

	// 临爆警告圈
	if b.Fuse <= core.BombSparkFuseSeconds {
		urgency := 1 - b.Fuse/core.BombSparkFuseSeconds
		warningAlpha := uint8(100 * urgency)
		warningRadius := radius + float32(10*urgency)
		vector.StrokeCircle(screen, cx, cy, warningRadius, 2,
			color.RGBA{255, 0, 0, warningAlpha}, false)
	}
}
