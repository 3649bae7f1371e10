package components

// FlashEffectComponent 受击闪白效果
//
// 敌人受击时短暂向白色混合，增强打击反馈。
// 重击的 Intensity 高于轻击
type FlashEffectComponent struct {
	Duration  float64 // 闪烁持续时间（秒）
	Elapsed   float64 // 已经过的时间（秒）
	Intensity float64 // 闪烁强度（0.0 ~ 1.0，1.0 = 完全白色）
	IsActive  bool    // 是否激活
}

// CurrentStrength 返回当前帧的混白强度（随时间线性衰减到 0）
func (f *FlashEffectComponent) CurrentStrength() float64 {
	if !f.IsActive || f.Duration <= 0 {
		return 0
	}
	remaining := 1.0 - f.Elapsed/f.Duration
	if remaining < 0 {
		return 0
	}
	return f.Intensity * remaining
}
