package components

// SpawnAnimationComponent 生成（冒出）动画状态
//
// 敌人被调度器激活时启动，在 Duration 秒内从 0 缓动放大到原始大小，
// 模拟从格子里升起的效果。动画期间敌人已经可以被点击
type SpawnAnimationComponent struct {
	Elapsed  float64 // 已播放时间（秒）
	Duration float64 // 动画总时长（秒）
	Active   bool    // 是否正在播放
}

// GetProgress 获取动画进度（0.0 到 1.0）
func (a *SpawnAnimationComponent) GetProgress() float64 {
	if a.Duration <= 0 || a.Elapsed < 0 {
		return 0.0
	}
	progress := a.Elapsed / a.Duration
	if progress > 1.0 {
		return 1.0
	}
	return progress
}

// IsComplete 判断动画是否播放完成
func (a *SpawnAnimationComponent) IsComplete() bool {
	return a.Elapsed >= a.Duration
}
