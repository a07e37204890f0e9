package client

import (
	"bombarena/internal/score"
	"bombarena/pkg/core"
)

// 单帧最多补偿的真实时间，防止窗口拖动等长停顿后连环追帧
const maxFrameSeconds = 0.25

// Session 固定节拍驱动器：把渲染帧的真实时间折算成整数个
// 模拟拍，余量留作插值系数。模拟速率与渲染速率由此解耦。
type Session struct {
	game        *core.Game
	board       *score.Board
	accumulator float64
}

// NewSession 绑定一局模拟与计分板
func NewSession(game *core.Game, board *score.Board) *Session {
	return &Session{game: game, board: board}
}

// Game 暴露底层模拟，渲染层按需读取状态
func (s *Session) Game() *core.Game {
	return s.game
}

// Board 计分板
func (s *Session) Board() *score.Board {
	return s.board
}

// Advance 注入真实流逝时间，跑完所有欠下的模拟拍，
// 返回这些拍产生的全部事件（按发生顺序）。
func (s *Session) Advance(realDt float64, intents []core.Intent) []core.Event {
	if realDt > maxFrameSeconds {
		realDt = maxFrameSeconds
	}
	s.accumulator += realDt

	var events []core.Event
	for s.accumulator >= core.TickSeconds {
		s.accumulator -= core.TickSeconds
		events = append(events, s.game.Tick(intents, core.TickSeconds)...)
	}
	return events
}

// Alpha 当前帧落在两拍之间的位置 [0,1)，渲染插值用
func (s *Session) Alpha() float64 {
	return s.accumulator / core.TickSeconds
}

// lerp 上一拍到本拍的线性插值
func lerp(prev, cur, alpha float64) float64 {
	return prev + (cur-prev)*alpha
}
