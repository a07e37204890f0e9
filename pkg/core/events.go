package core

// EventKind 模拟事件类型。事件是核心对表现层的唯一输出通道：
// 每拍结束时作为列表返回，随发随忘，核心不关心是否有人消费。
type EventKind int

const (
	EventBombPlaced EventKind = iota
	EventBombExplode
	EventBombLanded
	EventBlockDestroyed
	EventPlayerDied
	EventScoreChanged
	EventTeleportStart
	EventTeleportArrived
	EventPlayerStep
	EventPlayerTrail
	EventPlayerDustCloud
	EventPlayerSpeedLines
	EventBombDangerSparks
	EventShieldConsumed
	EventPlayerPushback
)

// String 返回事件类型的字符串表示
func (k EventKind) String() string {
	switch k {
	case EventBombPlaced:
		return "bomb-placed"
	case EventBombExplode:
		return "bomb-explode"
	case EventBombLanded:
		return "bomb-landed"
	case EventBlockDestroyed:
		return "block-destroyed"
	case EventPlayerDied:
		return "player-died"
	case EventScoreChanged:
		return "score-changed"
	case EventTeleportStart:
		return "teleport-start"
	case EventTeleportArrived:
		return "teleport-arrived"
	case EventPlayerStep:
		return "player-step"
	case EventPlayerTrail:
		return "player-trail"
	case EventPlayerDustCloud:
		return "player-dust-cloud"
	case EventPlayerSpeedLines:
		return "player-speed-lines"
	case EventBombDangerSparks:
		return "bomb-danger-sparks"
	case EventShieldConsumed:
		return "shield-consumed"
	case EventPlayerPushback:
		return "player-pushback"
	}
	return "unknown"
}

// Event 单条模拟事件，只携带最小的定位/身份信息
type Event struct {
	Kind   EventKind
	Player int // 相关玩家下标，-1 表示无
	Cell   GridPos
	X, Y   float64 // 世界像素坐标
	Amount int     // 附加数值（得分等）
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

func (g *Game) emitAt(kind EventKind, player int, cell GridPos) {
	g.emit(Event{
		Kind:   kind,
		Player: player,
		Cell:   cell,
		X:      cell.CenterX(),
		Y:      cell.CenterY(),
	})
}
