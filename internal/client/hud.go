package client

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"bombarena/internal/score"
	"bombarena/pkg/core"
)

// drawHUD 顶栏：回合倒计时居中，两侧排玩家状态块
func drawHUD(screen *ebiten.Image, g *core.Game, board *score.Board) {
	face := basicfont.Face7x13

	vector.DrawFilledRect(screen, 0, 0, core.ScreenWidth, core.HUDHeight,
		color.RGBA{25, 25, 35, 255}, false)

	minutes := int(g.TimeLeft) / 60
	seconds := int(g.TimeLeft) % 60
	clock := fmt.Sprintf("%d:%02d", minutes, seconds)
	text.Draw(screen, clock, face, core.ScreenWidth/2-len(clock)*7/2, 28, color.White)

	// 玩家状态块：色标 + 分数 + 弹/程/速
	chipW := 104
	for i, p := range g.Players {
		x := 8 + i*(chipW+4)
		pal := playerPalette[i%len(playerPalette)]

		body := pal.Body
		if !p.Alive {
			body = color.RGBA{70, 70, 70, 255}
		}
		vector.DrawFilledRect(screen, float32(x), 8, 10, 10, body, false)

		total := 0
		if board != nil {
			total = board.Total(i)
		}
		text.Draw(screen, fmt.Sprintf("%d", total), face, x+14, 18, color.White)
		stats := fmt.Sprintf("B%d F%d S%d", p.MaxBombs, p.BlastRange, p.SpeedLevel)
		text.Draw(screen, stats, face, x, 36, color.RGBA{180, 180, 190, 255})
	}
}

// drawPopups 竞技场内的得分浮字，随寿命上飘淡出
func drawPopups(screen *ebiten.Image, board *score.Board) {
	if board == nil {
		return
	}
	face := basicfont.Face7x13
	for _, p := range board.Popups() {
		rise := p.Age * 20
		label := fmt.Sprintf("+%d", p.Amount)
		x := int(p.X) - len(label)*7/2
		y := int(p.Y + arenaTop - rise)
		text.Draw(screen, label, face, x, y, color.RGBA{255, 230, 80, 255})
	}
}

// drawCenteredText 大字提示（菜单/倒计时/暂停/结算共用）
func drawCenteredText(screen *ebiten.Image, lines []string, yStart int) {
	face := basicfont.Face7x13
	for i, line := range lines {
		x := core.ScreenWidth/2 - len(line)*7/2
		text.Draw(screen, line, face, x, yStart+i*20, color.White)
	}
}
