// Package score 实现计分协作方：核心只通过 AddPoints 写入，
// 累计与展示都在这里。
package score

import "sync"

// 得分浮字的展示时长（秒）
const popupSeconds = 1.0

// Popup 一条待展示的得分浮字
type Popup struct {
	Player int
	Amount int
	Reason string
	X, Y   float64
	Age    float64
}

// Board 按玩家累计的计分板
type Board struct {
	mu     sync.Mutex
	totals map[int]int
	popups []Popup
}

// NewBoard 创建空计分板
func NewBoard() *Board {
	return &Board{totals: make(map[int]int)}
}

// AddPoints 实现 core.ScoreSink
func (b *Board) AddPoints(player, amount int, reason string, x, y float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.totals[player] += amount
	b.popups = append(b.popups, Popup{
		Player: player,
		Amount: amount,
		Reason: reason,
		X:      x,
		Y:      y,
	})
}

// Total 指定玩家的累计得分
func (b *Board) Total(player int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totals[player]
}

// Advance 推进浮字时钟并移除过期的
func (b *Board) Advance(dt float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.popups[:0]
	for _, p := range b.popups {
		p.Age += dt
		if p.Age < popupSeconds {
			kept = append(kept, p)
		}
	}
	b.popups = kept
}

// Popups 当前存活浮字的副本，供 HUD 绘制
func (b *Board) Popups() []Popup {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Popup, len(b.popups))
	copy(out, b.popups)
	return out
}

// Reset 清空所有累计与浮字，开新回合时调用
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.totals = make(map[int]int)
	b.popups = nil
}
