package components

// ScaleComponent 存储实体级别的缩放因子
// 由生成/受击/死亡动画系统写入，渲染时叠加在体型半径上
//
// 1.0 = 原始大小，0.0 = 完全缩小（不可见）
type ScaleComponent struct {
	ScaleX float64
	ScaleY float64
}
