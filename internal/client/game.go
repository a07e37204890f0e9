package client

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"bombarena/pkg/core"
)

// App Ebiten 游戏循环的宿主：把真实帧时间喂给 Session，
// 事件喂给粒子层，并负责菜单/暂停等外围交互。
type App struct {
	session   *Session
	effects   *EffectLayer
	renderers []*PlayerRenderer
	schemes   []ControlScheme // 按人类玩家下标排列的按键方案
	log       *logrus.Logger

	lastUpdate   time.Time
	resultLogged bool
}

// NewApp 创建客户端宿主。schemes 的长度即本地人类玩家数，
// 其余玩家位默认为 AI（由启动方绑定大脑）。
func NewApp(session *Session, schemes []ControlScheme, log *logrus.Logger) *App {
	a := &App{
		session:    session,
		effects:    NewEffectLayer(time.Now().UnixNano()),
		schemes:    schemes,
		log:        log,
		lastUpdate: time.Now(),
	}
	for _, p := range session.Game().Players {
		a.renderers = append(a.renderers, NewPlayerRenderer(p.Index))
	}
	return a
}

// Update 实现 ebiten.Game
func (a *App) Update() error {
	now := time.Now()
	dt := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now

	g := a.session.Game()

	switch g.Phase {
	case core.PhaseMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			a.session.Board().Reset()
			a.resultLogged = false
			g.StartRound()
			a.log.WithField("players", len(g.Players)).Info("round starting")
		}
		return nil
	case core.PhaseGameOver:
		a.logResult(g)
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.BackToMenu()
		}
		return nil
	case core.PhasePlaying, core.PhasePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.TogglePause()
		}
		if g.Phase == core.PhasePaused {
			return nil
		}
	}

	intents := make([]core.Intent, len(g.Players))
	for i, scheme := range a.schemes {
		if i < len(intents) {
			intents[i] = readIntent(scheme)
		}
	}

	events := a.session.Advance(dt, intents)
	a.effects.Consume(events)
	for _, ev := range events {
		if ev.Kind == core.EventPlayerDied {
			a.log.WithField("player", ev.Player).Info("player eliminated")
		}
	}

	a.effects.Advance(dt)
	a.session.Board().Advance(dt)
	for i, r := range a.renderers {
		if i < len(g.Players) {
			r.Advance(dt, g.Players[i].Moving)
		}
	}
	return nil
}

func (a *App) logResult(g *core.Game) {
	if a.resultLogged {
		return
	}
	a.resultLogged = true
	if g.Winner >= 0 {
		a.log.WithFields(logrus.Fields{
			"winner": g.Winner,
			"score":  a.session.Board().Total(g.Winner),
		}).Info("round over")
	} else {
		a.log.Info("round over: draw")
	}
}

// Draw 实现 ebiten.Game。绘制顺序：地表、道具、火焰、炸弹、
// 玩家、粒子、HUD、阶段性覆盖层。
func (a *App) Draw(screen *ebiten.Image) {
	g := a.session.Game()
	alpha := a.session.Alpha()

	drawArena(screen, g)
	for _, pu := range g.PowerUps {
		if pu.Active {
			drawPowerUp(screen, pu)
		}
	}
	for _, e := range g.Explosions {
		drawExplosion(screen, e)
	}
	for _, b := range g.Bombs {
		if b.Active {
			drawBomb(screen, b, alpha)
		}
	}
	for i, r := range a.renderers {
		if i < len(g.Players) {
			r.Draw(screen, g.Players[i], alpha)
		}
	}
	a.effects.Draw(screen)
	drawPopups(screen, a.session.Board())
	drawHUD(screen, g, a.session.Board())

	switch g.Phase {
	case core.PhaseMenu:
		a.dim(screen)
		drawCenteredText(screen, []string{
			"BOMB ARENA",
			"",
			"P1: WASD + Space (E punch)",
			"P2: Arrows + Enter (RShift punch)",
			"",
			"Press Enter to start",
		}, core.ScreenHeight/2-50)
	case core.PhaseCountdown:
		drawCenteredText(screen, []string{
			fmt.Sprintf("%d", int(g.Countdown)+1),
		}, core.ScreenHeight/2)
	case core.PhasePaused:
		a.dim(screen)
		drawCenteredText(screen, []string{"PAUSED", "", "Press P to resume"}, core.ScreenHeight/2-20)
	case core.PhaseGameOver:
		a.dim(screen)
		result := "Draw"
		if g.Winner >= 0 {
			result = fmt.Sprintf("Player %d wins!", g.Winner+1)
		}
		drawCenteredText(screen, []string{result, "", "Press Enter for menu"}, core.ScreenHeight/2-20)
	}
}

func (a *App) dim(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, core.ScreenWidth, core.ScreenHeight,
		color.RGBA{0, 0, 0, 140}, false)
}

// Layout 实现 ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.ScreenWidth, core.ScreenHeight
}
