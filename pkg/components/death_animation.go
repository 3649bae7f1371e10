package components

// DeathAnimationComponent 死亡（缩小消失）动画状态
//
// 进入死亡状态时启动，在 Duration 秒内把敌人从当前大小缩小到 0。
// 动画完成后由死亡系统把敌人归还对象池并释放其网格格子
type DeathAnimationComponent struct {
	Elapsed  float64 // 已播放时间（秒）
	Duration float64 // 动画总时长（秒）
	Active   bool    // 是否正在播放
}

// GetProgress 获取动画进度（0.0 到 1.0）
func (d *DeathAnimationComponent) GetProgress() float64 {
	if d.Duration <= 0 || d.Elapsed < 0 {
		return 0.0
	}
	progress := d.Elapsed / d.Duration
	if progress > 1.0 {
		return 1.0
	}
	return progress
}

// IsComplete 判断动画是否播放完成
func (d *DeathAnimationComponent) IsComplete() bool {
	return d.Elapsed >= d.Duration
}
