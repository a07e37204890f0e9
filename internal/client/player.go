package client

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bombarena/pkg/core"
)

// 玩家主题色，按下标取
var playerPalette = []struct {
	Body    color.RGBA
	Outline color.RGBA
}{
	{color.RGBA{220, 40, 40, 255}, color.RGBA{120, 0, 0, 255}},   // 红
	{color.RGBA{40, 90, 220, 255}, color.RGBA{0, 20, 120, 255}},  // 蓝
	{color.RGBA{40, 180, 60, 255}, color.RGBA{0, 90, 20, 255}},   // 绿
	{color.RGBA{230, 180, 0, 255}, color.RGBA{140, 100, 0, 255}}, // 黄
}

// PlayerRenderer 玩家渲染状态：只保管动画计时，
// 位置与朝向每帧从核心读取。
type PlayerRenderer struct {
	Index     int
	AnimFrame int
	animTime  float64
}

// NewPlayerRenderer 创建玩家渲染器
func NewPlayerRenderer(index int) *PlayerRenderer {
	return &PlayerRenderer{Index: index}
}

// Advance 行走动画：移动中每 0.15 秒换帧，停下复位
func (r *PlayerRenderer) Advance(dt float64, moving bool) {
	if !moving {
		r.animTime = 0
		r.AnimFrame = 0
		return
	}
	r.animTime += dt
	if r.animTime >= 0.15 {
		r.animTime = 0
		r.AnimFrame = (r.AnimFrame + 1) % 2
	}
}

// Draw 绘制玩家：身体方块、摆动的手脚、按朝向的眼睛，
// 外加护盾圈与冰冻罩
func (r *PlayerRenderer) Draw(screen *ebiten.Image, p *core.Player, alpha float64) {
	if !p.Alive {
		return
	}

	cx := float32(lerp(p.PrevX, p.X, alpha))
	cy := float32(lerp(p.PrevY, p.Y, alpha)) + arenaTop

	pal := playerPalette[r.Index%len(playerPalette)]

	bodySize := float32(core.TileSize) * 0.6
	drawX := cx - bodySize/2
	drawY := cy - bodySize/2

	vector.DrawFilledRect(screen, drawX, drawY, bodySize, bodySize, pal.Body, false)
	vector.StrokeRect(screen, drawX, drawY, bodySize, bodySize, 2, pal.Outline, false)

	// 手
	handSize := bodySize * 0.25
	handOffset := float32(0)
	if r.AnimFrame == 1 {
		handOffset = 2
	}
	handColor := color.RGBA{245, 220, 180, 255}
	vector.DrawFilledCircle(screen, drawX-handOffset-2, drawY+bodySize*0.6, handSize, handColor, false)
	vector.DrawFilledCircle(screen, drawX+bodySize+handOffset+2, drawY+bodySize*0.6, handSize, handColor, false)

	// 脚
	footSize := bodySize * 0.3
	footOffset := float32(0)
	if r.AnimFrame == 1 {
		footOffset = 2
	}
	footColor := color.RGBA{60, 40, 20, 255}
	vector.DrawFilledRect(screen, drawX+bodySize*0.2-footOffset, drawY+bodySize, footSize, footSize*0.6, footColor, false)
	vector.DrawFilledRect(screen, drawX+bodySize*0.6+footOffset, drawY+bodySize, footSize, footSize*0.6, footColor, false)

	// 眼睛按朝向偏移
	eyeSize := bodySize * 0.15
	eyeY := drawY + bodySize*0.3
	eyeSpacing := bodySize * 0.2
	var eyeLeftX, eyeLeftY, eyeRightX, eyeRightY float32
	switch p.Facing {
	case core.DirUp:
		eyeLeftX, eyeLeftY = drawX+bodySize*0.3, eyeY-2
		eyeRightX, eyeRightY = drawX+bodySize*0.7, eyeY-2
	case core.DirLeft:
		eyeLeftX, eyeLeftY = drawX+bodySize*0.3-eyeSpacing/2, eyeY
		eyeRightX, eyeRightY = drawX+bodySize*0.5-eyeSpacing/2, eyeY
	case core.DirRight:
		eyeLeftX, eyeLeftY = drawX+bodySize*0.5+eyeSpacing/2, eyeY
		eyeRightX, eyeRightY = drawX+bodySize*0.7+eyeSpacing/2, eyeY
	default:
		eyeLeftX, eyeLeftY = drawX+bodySize*0.3, eyeY+2
		eyeRightX, eyeRightY = drawX+bodySize*0.7, eyeY+2
	}
	vector.DrawFilledCircle(screen, eyeLeftX, eyeLeftY, eyeSize, color.RGBA{255, 255, 255, 255}, false)
	vector.DrawFilledCircle(screen, eyeRightX, eyeRightY, eyeSize, color.RGBA{255, 255, 255, 255}, false)
	vector.DrawFilledCircle(screen, eyeLeftX, eyeLeftY, eyeSize*0.5, color.RGBA{0, 0, 0, 255}, false)
	vector.DrawFilledCircle(screen, eyeRightX, eyeRightY, eyeSize*0.5, color.RGBA{0, 0, 0, 255}, false)

	if p.Shields > 0 {
		vector.StrokeCircle(screen, cx, cy, bodySize*0.85, 2, color.RGBA{0, 220, 180, 200}, false)
	}
	if p.HasDebuff(core.DebuffFrozen) {
		vector.DrawFilledRect(screen, drawX-2, drawY-2, bodySize+4, bodySize+4,
			color.RGBA{140, 200, 255, 110}, false)
	}
}
