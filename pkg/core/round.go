package core

import "math/rand"

// Phase 回合阶段
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseCountdown
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String 返回阶段的字符串表示
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// Game 回合控制器：独占持有全部模拟状态，按固定拍推进。
// 单线程协作式执行，一拍内的所有变更严格串行。
type Game struct {
	Grid       *GridIndex
	Players    []*Player
	Bombs      []*Bomb
	Blocks     []*Block
	Explosions []*Explosion
	PowerUps   []*PowerUp

	Phase     Phase
	Countdown float64
	TimeLeft  float64
	Time      float64
	Winner    int // 胜者下标，-1 表示无（平局或未分出）

	Spawns []GridPos

	pending     []pendingPowerUp
	detonations []int
	brains      []Brain
	score       ScoreSink
	rng         *rand.Rand
	nextBombID  int
	nextBlockID int
	events      []Event
}

// NewGame 从地图构建一局。种子同时决定道具掉落等随机行为，
// 相同种子与输入序列可完整复现一局。
func NewGame(layout *Layout, seed int64) *Game {
	g := &Game{
		Grid:     NewGridIndex(layout.Width, layout.Height),
		Phase:    PhaseMenu,
		TimeLeft: RoundSeconds,
		Winner:   -1,
		Spawns:   append([]GridPos(nil), layout.Spawns...),
		brains:   make([]Brain, MaxPlayers),
		rng:      rand.New(rand.NewSource(seed)),
	}

	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			cell := GridPos{X: x, Y: y}
			switch layout.Tiles[y][x] {
			case TagWall:
				g.Grid.Set(cell, Occupant{Kind: OccWall})
			case TagSoft:
				g.nextBlockID++
				blk := &Block{ID: g.nextBlockID, Cell: cell}
				g.Blocks = append(g.Blocks, blk)
				g.Grid.Set(cell, Occupant{Kind: OccSoftBlock, Handle: blk.ID})
			}
		}
	}
	return g
}

// AddPlayer 按下一个空出生点加入玩家，满员返回 nil
func (g *Game) AddPlayer(isAI bool) *Player {
	idx := len(g.Players)
	if idx >= MaxPlayers || idx >= len(g.Spawns) {
		return nil
	}
	p := NewPlayer(idx, g.Spawns[idx], isAI)
	g.Players = append(g.Players, p)
	return p
}

// SetBrain 绑定 AI 协作方到指定玩家位
func (g *Game) SetBrain(index int, b Brain) {
	if index >= 0 && index < len(g.brains) {
		g.brains[index] = b
	}
}

// SetScoreSink 绑定计分协作方
func (g *Game) SetScoreSink(s ScoreSink) {
	g.score = s
}

// StartRound 从菜单进入开局倒计时
func (g *Game) StartRound() {
	if g.Phase != PhaseMenu {
		return
	}
	g.Phase = PhaseCountdown
	g.Countdown = CountdownSeconds
}

// TogglePause 对弈中暂停/恢复
func (g *Game) TogglePause() {
	switch g.Phase {
	case PhasePlaying:
		g.Phase = PhasePaused
	case PhasePaused:
		g.Phase = PhasePlaying
	}
}

// BackToMenu 结算画面返回主菜单
func (g *Game) BackToMenu() {
	if g.Phase == PhaseGameOver {
		g.Phase = PhaseMenu
	}
}

// Tick 推进一拍。intents 按玩家下标给出人类意图，
// AI 位会在拍内被覆盖。返回本拍产生的全部事件。
func (g *Game) Tick(intents []Intent, dt float64) []Event {
	g.events = nil

	switch g.Phase {
	case PhaseCountdown:
		g.Countdown -= dt
		if g.Countdown <= 0 {
			g.Countdown = 0
			g.Phase = PhasePlaying
		}
	case PhasePlaying:
		g.simulate(intents, dt)
	}
	return g.events
}

// simulate 一拍内的严格顺序，见各步注释
func (g *Game) simulate(intents []Intent, dt float64) {
	// (1) 留存上一拍位置，供渲染插值
	for _, p := range g.Players {
		p.PrevX, p.PrevY = p.X, p.Y
	}

	// (2) 所有 AI 基于拍前快照统一决策，避免先手偏差
	resolved := make([]Intent, len(g.Players))
	copy(resolved, intents)
	view := g.aiView(dt)
	for i, p := range g.Players {
		if p.IsAI && p.Alive && g.brains[i] != nil {
			resolved[i] = g.brains[i].Decide(view)
		}
	}

	// (3) 固定下标序逐人结算：先放弹再移动，保证 AI 的按格
	// 规划与自己随后的碰撞状态一致；最后拾取道具
	for i, p := range g.Players {
		if !p.Alive {
			continue
		}
		it := resolved[i]

		dir := it.Dir
		if p.HasDebuff(DebuffReversed) {
			dir = dir.Reversed()
		}
		if it.PlaceBomb || p.HasDebuff(DebuffAutoBomb) {
			g.PlaceBomb(p)
		}
		if it.Special {
			g.punchBomb(p)
		}
		g.resolveMovement(p, dir, dt)
		g.collectPowerUps(p)
	}

	// (4) 排队中的道具尝试落地
	g.materializePending()

	// (5) 推进爆炸时窗、炸弹引信/滑行、连锁、砖块动画、负面效果
	g.advanceExplosions(dt)
	g.advanceBombs(dt)
	g.processDetonations()
	g.advanceBlocks(dt)
	for _, p := range g.Players {
		p.tickDebuffs(dt)
	}

	// (6) 持续致死复查：不只在起爆瞬间，整个致死窗口内
	// 站进火焰格都会被结算
	g.applyExplosionDamage()

	// (7) 回收失活实体
	g.sweep()

	// (8) 胜负判定
	g.Time += dt
	g.evaluateRound(dt)
}

// aiView 组装 AI 决策快照
func (g *Game) aiView(dt float64) AIView {
	return AIView{
		TickSeconds: dt,
		Time:        g.Time,
		Grid:        g.Grid,
		Blocks:      g.Blocks,
		Bombs:       g.Bombs,
		Explosions:  g.Explosions,
		PowerUps:    g.PowerUps,
		Players:     g.Players,
	}
}

// sweep 移除失活实体。占用表在触发事件的当拍就已腾出，
// 这里只收走对象本身。
func (g *Game) sweep() {
	bombs := g.Bombs[:0]
	for _, b := range g.Bombs {
		if b.Active {
			bombs = append(bombs, b)
		}
	}
	g.Bombs = bombs

	blocks := g.Blocks[:0]
	for _, b := range g.Blocks {
		if !b.Destroyed || b.Progress < 1 {
			blocks = append(blocks, b)
		}
	}
	g.Blocks = blocks

	exps := g.Explosions[:0]
	for _, e := range g.Explosions {
		if e.Age < e.Life {
			exps = append(exps, e)
		}
	}
	g.Explosions = exps

	pus := g.PowerUps[:0]
	for _, pu := range g.PowerUps {
		if pu.Active {
			pus = append(pus, pu)
		}
	}
	g.PowerUps = pus
}

// evaluateRound 剩 ≤1 人时记录胜者（同拍团灭则无胜者）；
// 计时先耗尽且仍有多人存活时以平局收场。
func (g *Game) evaluateRound(dt float64) {
	if len(g.Players) > 1 {
		alive := 0
		winner := -1
		for _, p := range g.Players {
			if p.Alive {
				alive++
				winner = p.Index
			}
		}
		if alive <= 1 {
			if alive == 0 {
				winner = -1
			}
			g.Winner = winner
			g.Phase = PhaseGameOver
			return
		}
	}

	g.TimeLeft -= dt
	if g.TimeLeft <= 0 {
		g.TimeLeft = 0
		g.Winner = -1
		g.Phase = PhaseGameOver
	}
}
