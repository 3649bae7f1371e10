package components

// HealthComponent 存储敌人实体的生命值信息
//
// Current 在生成（激活）时重置为 Max = 体型等级 × 3。
// 注意：死亡判定是严格小于 0，生命值恰好为 0 的敌人仍然存活
type HealthComponent struct {
	Current int // 当前生命值（可为负，负值触发死亡）
	Max     int // 最大生命值
}

// Fraction 返回当前生命比例（用于变色变体的渐变取色）
// 负生命值钳制为 0，Max 为 0 时返回 0
func (h *HealthComponent) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := float64(h.Current) / float64(h.Max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
