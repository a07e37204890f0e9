package core

// Block 可摧毁砖块。被爆炸标记摧毁的瞬间即从占用表移除，
// 摧毁动画只是表现层遗留，不影响模拟状态。
type Block struct {
	ID        int
	Cell      GridPos
	Destroyed bool
	Progress  float64 // 摧毁动画进度 0..1
}

// advanceBlocks 推进摧毁动画，动画结束的砖块等待回收
func (g *Game) advanceBlocks(dt float64) {
	for _, b := range g.Blocks {
		if !b.Destroyed {
			continue
		}
		b.Progress += dt / BlockDestroySeconds
	}
}

// blockByID 按句柄查砖块，只在砖块仍在表中时返回
func (g *Game) blockByID(id int) *Block {
	for _, b := range g.Blocks {
		if b.ID == id {
			return b
		}
	}
	return nil
}
