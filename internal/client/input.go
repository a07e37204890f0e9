package client

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bombarena/pkg/core"
)

// ControlScheme 按键方案
type ControlScheme int

const (
	ControlWASD  ControlScheme = iota // WASD 移动 + 空格放弹 + E 技能
	ControlArrow                      // 方向键移动 + 回车放弹 + 右 Shift 技能
)

func (c ControlScheme) String() string {
	switch c {
	case ControlWASD:
		return "WASD+Space"
	case ControlArrow:
		return "Arrows+Enter"
	}
	return "unknown"
}

// readIntent 把一套按键方案的当前状态翻译成意图。
// 同按多个方向时按 上>下>左>右 的固定优先级取一个。
func readIntent(scheme ControlScheme) core.Intent {
	var it core.Intent

	switch scheme {
	case ControlWASD:
		switch {
		case ebiten.IsKeyPressed(ebiten.KeyW):
			it.Dir = core.DirUp
		case ebiten.IsKeyPressed(ebiten.KeyS):
			it.Dir = core.DirDown
		case ebiten.IsKeyPressed(ebiten.KeyA):
			it.Dir = core.DirLeft
		case ebiten.IsKeyPressed(ebiten.KeyD):
			it.Dir = core.DirRight
		}
		it.PlaceBomb = inpututil.IsKeyJustPressed(ebiten.KeySpace)
		it.Special = inpututil.IsKeyJustPressed(ebiten.KeyE)
	case ControlArrow:
		switch {
		case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
			it.Dir = core.DirUp
		case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
			it.Dir = core.DirDown
		case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
			it.Dir = core.DirLeft
		case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
			it.Dir = core.DirRight
		}
		it.PlaceBomb = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
		it.Special = inpututil.IsKeyJustPressed(ebiten.KeyShiftRight)
	}
	return it
}
