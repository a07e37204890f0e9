package core

// 地图与屏幕配置
const (
	TileSize  = 32
	MapWidth  = 15
	MapHeight = 13

	HUDHeight    = 48
	ScreenWidth  = MapWidth * TileSize
	ScreenHeight = MapHeight*TileSize + HUDHeight
)

// 模拟节拍
const (
	TicksPerSecond = 60
	TickSeconds    = 1.0 / TicksPerSecond
)

// 玩家配置
const (
	MaxPlayers = 4

	HitboxPad = 5.0 // 碰撞盒相对整格的内缩（像素）

	BaseMoveSpeed = 3.0 // 速度等级 1 对应的移动速度（格/秒）
	SpeedPerLevel = 0.5 // 每级速度加成（格/秒）

	MaxBombStat  = 8  // 最大同时炸弹数上限
	MaxRangeStat = 10 // 爆炸范围上限
	MaxSpeedStat = 6  // 速度等级上限

	CornerSlideTolerance = 10.0 // 拐角辅助容差（像素）
	AIRealignTolerance   = 14.0 // AI 对齐辅助容差（像素）
	AIRealignFactor      = 1.5  // AI 对齐辅助相对本帧位移的倍率
	MoveEpsilon          = 1e-3 // 低于该位移视为未移动

	SlowSpeedFactor = 0.5 // 缓速 debuff 的速度倍率
)

// 弹回冲量：被炸弹挡下时的位移覆盖，线性衰减。
// 冲量持续 PushbackSeconds 秒，初速度按半格走完取值（像素/秒）。
const (
	PushbackSeconds = 0.18
	PushbackSpeed   = 0.5 * TileSize / PushbackSeconds
)

// 炸弹配置
const (
	BombFuseSeconds = 3.0 // 引信时长
	BombSlideSpeed  = 6.0 // 被踢滑行速度（格/秒）
	PunchDistance   = 4   // 拳击最大投掷距离（格）

	BombSparkFuseSeconds = 1.0 // 引信低于该值开始冒火花
	BombSparkInterval    = 0.2 // 火花事件间隔（秒）
)

// 爆炸配置
const (
	ExplosionLifeSeconds   = 0.6 // 火焰总存在时间
	ExplosionLethalSeconds = 0.4 // 致死窗口（短于总时长）
)

// 砖块配置
const (
	BlockDestroySeconds = 0.4 // 摧毁动画时长（占位不影响逻辑）
	BlockDestroyPoints  = 10  // 炸毁砖块得分
)

// PlayerKillPoints 炸死其他玩家给引爆者的得分
const PlayerKillPoints = 50

// 道具配置
const (
	PowerUpSpawnChance = 0.35 // 砖块掉落道具概率
	SkullDebuffSeconds = 10.0 // 骷髅负面效果持续时间
	FrozenSeconds      = 3.0  // 冰冻持续时间
)

// 回合配置
const (
	RoundSeconds     = 180.0 // 回合时长
	CountdownSeconds = 3.0   // 开局倒计时
)

// 修饰事件节流
const (
	TrailInterval      = 0.1  // 拖尾事件间隔（秒）
	SpeedLinesInterval = 0.25 // 速度线事件间隔（秒）
)
