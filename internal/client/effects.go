package client

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bombarena/pkg/core"
)

// particle 单个修饰粒子，寿命耗尽即回收
type particle struct {
	x, y     float64
	vx, vy   float64
	life     float64
	maxLife  float64
	size     float32
	col      color.RGBA
	circular bool
}

// EffectLayer 纯表现层粒子系统。唯一的输入是模拟返回的事件列表，
// 不回读也不影响核心状态。
type EffectLayer struct {
	particles []particle
	rng       *rand.Rand
}

// NewEffectLayer 创建粒子层
func NewEffectLayer(seed int64) *EffectLayer {
	return &EffectLayer{rng: rand.New(rand.NewSource(seed))}
}

// Consume 把一帧的模拟事件翻译成粒子
func (e *EffectLayer) Consume(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventPlayerDustCloud:
			e.burst(ev.X, ev.Y, 4, 18, 0.3, 3, color.RGBA{160, 150, 130, 200}, true)
		case core.EventPlayerStep:
			e.burst(ev.X, ev.Y+10, 2, 10, 0.2, 2, color.RGBA{140, 130, 110, 150}, true)
		case core.EventPlayerTrail:
			e.burst(ev.X, ev.Y, 1, 4, 0.35, 4, color.RGBA{255, 255, 255, 120}, false)
		case core.EventPlayerSpeedLines:
			e.burst(ev.X, ev.Y, 3, 40, 0.2, 2, color.RGBA{255, 255, 255, 180}, false)
		case core.EventBombDangerSparks:
			e.burst(ev.X, ev.Y-12, 3, 25, 0.25, 2, color.RGBA{255, 180, 0, 255}, true)
		case core.EventBombExplode:
			e.burst(ev.X, ev.Y, 14, 70, 0.5, 4, color.RGBA{255, 120, 0, 255}, true)
		case core.EventBlockDestroyed:
			e.burst(ev.X, ev.Y, 8, 45, 0.4, 3, color.RGBA{205, 133, 63, 255}, false)
		case core.EventPlayerDied:
			e.burst(ev.X, ev.Y, 16, 60, 0.6, 3, color.RGBA{220, 30, 30, 255}, true)
		case core.EventTeleportStart:
			e.burst(ev.X, ev.Y, 10, 30, 0.35, 2, color.RGBA{150, 60, 255, 220}, true)
		case core.EventTeleportArrived:
			e.burst(ev.X, ev.Y, 10, 30, 0.35, 2, color.RGBA{60, 200, 255, 220}, true)
		case core.EventShieldConsumed:
			e.burst(ev.X, ev.Y, 12, 50, 0.45, 3, color.RGBA{0, 220, 180, 255}, true)
		case core.EventPlayerPushback:
			e.burst(ev.X, ev.Y, 5, 35, 0.25, 2, color.RGBA{255, 255, 255, 220}, true)
		}
	}
}

// burst 以事件坐标为圆心撒一圈粒子
func (e *EffectLayer) burst(x, y float64, count int, speed, life float64, size float32, col color.RGBA, circular bool) {
	for i := 0; i < count; i++ {
		angle := e.rng.Float64() * 2 * math.Pi
		v := speed * (0.5 + e.rng.Float64()*0.5)
		e.particles = append(e.particles, particle{
			x:        x,
			y:        y + arenaTop,
			vx:       math.Cos(angle) * v,
			vy:       math.Sin(angle) * v,
			life:     life,
			maxLife:  life,
			size:     size,
			col:      col,
			circular: circular,
		})
	}
}

// Advance 推进粒子运动与寿命
func (e *EffectLayer) Advance(dt float64) {
	kept := e.particles[:0]
	for _, p := range e.particles {
		p.life -= dt
		if p.life <= 0 {
			continue
		}
		p.x += p.vx * dt
		p.y += p.vy * dt
		kept = append(kept, p)
	}
	e.particles = kept
}

// Draw 绘制粒子，寿命越短越透明
func (e *EffectLayer) Draw(screen *ebiten.Image) {
	for _, p := range e.particles {
		fade := p.life / p.maxLife
		c := p.col
		c.A = uint8(float64(c.A) * fade)
		if p.circular {
			vector.DrawFilledCircle(screen, float32(p.x), float32(p.y), p.size, c, false)
		} else {
			vector.DrawFilledRect(screen, float32(p.x)-p.size/2, float32(p.y)-p.size/2,
				p.size, p.size, c, false)
		}
	}
}
