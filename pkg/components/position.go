package components

// PositionComponent 存储实体的世界坐标
// 敌人的坐标是其所在格子的中心点（生成时由调度器写入）
type PositionComponent struct {
	X float64
	Y float64
}
