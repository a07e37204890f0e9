package ai

// Config 定义 AI 的行为参数，用于控制 AI 的智力水平
type Config struct {
	// ThinkIntervalTicks 思考间隔（拍），值越小 AI 反应越快
	ThinkIntervalTicks int

	// MistakeRate 随机失误率 (0.0-1.0)，值越高 AI 越容易犯错
	MistakeRate float64

	// PreferBlocks 是否优先炸砖开路而非追击敌人
	PreferBlocks bool

	// SeekLoot 是否主动绕路拾取道具
	SeekLoot bool
}

// 预设配置：简单难度
var ConfigEasy = Config{
	ThinkIntervalTicks: 45,
	MistakeRate:        0.12,
	PreferBlocks:       true,
	SeekLoot:           false,
}

// 预设配置：普通难度
var ConfigNormal = Config{
	ThinkIntervalTicks: 20,
	MistakeRate:        0.05,
	PreferBlocks:       true,
	SeekLoot:           true,
}

// 预设配置：困难难度
var ConfigHard = Config{
	ThinkIntervalTicks: 8,
	MistakeRate:        0.0,
	PreferBlocks:       false,
	SeekLoot:           true,
}

// ConfigByName 按名称取预设，未知名称回落到普通难度
func ConfigByName(name string) *Config {
	switch name {
	case "easy":
		return &ConfigEasy
	case "hard":
		return &ConfigHard
	default:
		return &ConfigNormal
	}
}
