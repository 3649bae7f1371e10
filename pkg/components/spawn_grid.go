package components

import "github.com/gonewx/molewhack/pkg/ecs"

// SpawnGridComponent 标识生成网格管理器实体
// 用于跟踪哪些格子已被敌人占用
//
// Occupancy 是 Size×Size 的二维数组，存储每个格子的占用者
// [row][col] = EntityID，其中 0 表示空格子
type SpawnGridComponent struct {
	Size      int              // 网格边长（格子数）
	Occupancy [][]ecs.EntityID // 占用表（0 表示空格子）
}

// NewSpawnGridComponent 创建指定边长的空网格组件
func NewSpawnGridComponent(size int) *SpawnGridComponent {
	occupancy := make([][]ecs.EntityID, size)
	for row := range occupancy {
		occupancy[row] = make([]ecs.EntityID, size)
	}
	return &SpawnGridComponent{
		Size:      size,
		Occupancy: occupancy,
	}
}
