package client

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"bombarena/pkg/core"
)

// 道具底色与字母标记
func powerUpBadge(kind core.PowerUpKind) (color.RGBA, string) {
	switch kind {
	case core.PowerBombUp:
		return color.RGBA{40, 40, 40, 255}, "B"
	case core.PowerFireUp:
		return color.RGBA{220, 80, 0, 255}, "F"
	case core.PowerSpeedUp:
		return color.RGBA{0, 140, 220, 255}, "S"
	case core.PowerShield:
		return color.RGBA{0, 180, 140, 255}, "H"
	case core.PowerKick:
		return color.RGBA{160, 90, 0, 255}, "K"
	case core.PowerPunch:
		return color.RGBA{160, 40, 40, 255}, "P"
	case core.PowerTeleport:
		return color.RGBA{120, 0, 200, 255}, "T"
	case core.PowerFireBomb:
		return color.RGBA{180, 30, 0, 255}, "FB"
	case core.PowerIceBomb:
		return color.RGBA{60, 120, 220, 255}, "IB"
	case core.PowerPiercingBomb:
		return color.RGBA{110, 40, 160, 255}, "PB"
	case core.PowerSkull:
		return color.RGBA{30, 30, 30, 255}, "X"
	}
	return color.RGBA{128, 128, 128, 255}, "?"
}

// drawPowerUp 道具徽章：圆角感的小方块 + 字母
func drawPowerUp(screen *ebiten.Image, pu *core.PowerUp) {
	const inset = 5
	px := float32(pu.Cell.X*core.TileSize + inset)
	py := float32(pu.Cell.Y*core.TileSize + arenaTop + inset)
	size := float32(core.TileSize - 2*inset)

	bg, label := powerUpBadge(pu.Kind)
	vector.DrawFilledRect(screen, px, py, size, size, color.RGBA{255, 255, 255, 230}, false)
	vector.DrawFilledRect(screen, px+2, py+2, size-4, size-4, bg, false)
	vector.StrokeRect(screen, px, py, size, size, 1, color.RGBA{0, 0, 0, 255}, false)

	face := basicfont.Face7x13
	tx := pu.Cell.X*core.TileSize + core.TileSize/2 - len(label)*7/2
	ty := pu.Cell.Y*core.TileSize + arenaTop + core.TileSize/2 + 5
	text.Draw(screen, label, face, tx, ty, color.White)
}
