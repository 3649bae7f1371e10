package components

// PunchKind 受击动画的种类
type PunchKind int

const (
	// PunchLight 轻击动画（左键，较浅的压缩）
	PunchLight PunchKind = iota
	// PunchHeavy 重击动画（右键，更深的压缩）
	PunchHeavy
)

// PunchAnimationComponent 受击（拳击）动画状态
//
// 设计说明：
//   - 受击动画是独立、可重启、非阻塞的视觉效果，不影响伤害结算
//   - 新的受击会直接重置 Elapsed 重新播放（打断旧动画）
//   - 播放完成后缩放恢复到中立值 1.0
type PunchAnimationComponent struct {
	Kind     PunchKind // 当前播放的受击种类
	Elapsed  float64   // 已播放时间（秒）
	Duration float64   // 动画总时长（秒）
	Active   bool      // 是否正在播放
}

// GetProgress 获取动画进度（0.0 到 1.0）
func (p *PunchAnimationComponent) GetProgress() float64 {
	if p.Duration <= 0 || p.Elapsed < 0 {
		return 0.0
	}
	progress := p.Elapsed / p.Duration
	if progress > 1.0 {
		return 1.0
	}
	return progress
}

// IsComplete 判断动画是否播放完成
func (p *PunchAnimationComponent) IsComplete() bool {
	return p.Elapsed >= p.Duration
}

// Restart 以指定种类重新开始播放（打断当前动画）
func (p *PunchAnimationComponent) Restart(kind PunchKind, duration float64) {
	p.Kind = kind
	p.Elapsed = 0
	p.Duration = duration
	p.Active = true
}
