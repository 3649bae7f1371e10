// Package game 提供跨系统共享的会话状态与持久化管理器
package game

// GameState 存储一局游戏的会话状态
//
// 显式构造后按引用传递给各系统，不使用全局单例：
// 调度器、输入和伤害结算都通过同一个实例协作
type GameState struct {
	IsPlaying bool // 是否处于游玩状态（生成调度仅在游玩时运行）
	IsPaused  bool // 是否暂停（暂停时冻结调度与动画）

	Score int // 本局累计分数
}

// NewGameState 创建处于游玩状态的新会话
func NewGameState() *GameState {
	return &GameState{
		IsPlaying: true,
	}
}

// TogglePause 切换暂停/恢复状态
func (gs *GameState) TogglePause() {
	gs.IsPaused = !gs.IsPaused
}

// IsRunning 返回游戏世界当前是否应该推进
func (gs *GameState) IsRunning() bool {
	return gs.IsPlaying && !gs.IsPaused
}

// AddScore 累计分数
func (gs *GameState) AddScore(points int) {
	gs.Score += points
}
