// Package systems 实现驱动游戏世界的各个子系统
package systems

import (
	"fmt"
	"math/rand"

	"github.com/gonewx/molewhack/pkg/components"
	"github.com/gonewx/molewhack/pkg/ecs"
)

// SpawnGridSystem 管理生成网格的占用状态
// 负责跟踪哪些格子已被敌人占用，并提供随机空格子查找
type SpawnGridSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
}

// NewSpawnGridSystem 创建生成网格系统
// rng 由场景注入，便于测试时使用固定种子
func NewSpawnGridSystem(em *ecs.EntityManager, rng *rand.Rand) *SpawnGridSystem {
	return &SpawnGridSystem{
		entityManager: em,
		rng:           rng,
	}
}

// cell 网格坐标对
type cell struct {
	col int
	row int
}

// FindRandomFreeCell 在所有空闲格子中等概率随机选择一个
//
// 每次调用都全表扫描收集空格子（成本与网格面积成正比）。
// 网格边长上限为 50，扫描代价可以接受，不值得维护增量空闲表
//
// 返回:
//   - col, row: 选中格子的坐标
//   - ok: false 表示网格已满，没有空闲格子
func (s *SpawnGridSystem) FindRandomFreeCell(gridEntity ecs.EntityID) (col, row int, ok bool) {
	grid, found := ecs.GetComponent[*components.SpawnGridComponent](s.entityManager, gridEntity)
	if !found {
		return 0, 0, false
	}

	free := make([]cell, 0, grid.Size*grid.Size)
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if grid.Occupancy[r][c] == 0 {
				free = append(free, cell{col: c, row: r})
			}
		}
	}

	if len(free) == 0 {
		return 0, 0, false
	}

	picked := free[s.rng.Intn(len(free))]
	return picked.col, picked.row, true
}

// IsOccupied 检查指定格子是否已被占用
// 无效位置视为"已占用"，防止向网格外生成
func (s *SpawnGridSystem) IsOccupied(gridEntity ecs.EntityID, col, row int) bool {
	grid, found := ecs.GetComponent[*components.SpawnGridComponent](s.entityManager, gridEntity)
	if !found {
		return true
	}
	if !isValidGridPosition(grid, col, row) {
		return true
	}
	return grid.Occupancy[row][col] != 0
}

// OccupyCell 标记指定格子为被占用状态
func (s *SpawnGridSystem) OccupyCell(gridEntity ecs.EntityID, col, row int, occupant ecs.EntityID) error {
	grid, found := ecs.GetComponent[*components.SpawnGridComponent](s.entityManager, gridEntity)
	if !found {
		return fmt.Errorf("failed to get SpawnGridComponent from entity %d", gridEntity)
	}
	if !isValidGridPosition(grid, col, row) {
		return fmt.Errorf("invalid grid position: col=%d, row=%d (grid size %d)", col, row, grid.Size)
	}
	if grid.Occupancy[row][col] != 0 {
		return fmt.Errorf("grid cell (%d, %d) is already occupied by entity %d", col, row, grid.Occupancy[row][col])
	}

	grid.Occupancy[row][col] = occupant
	return nil
}

// ReleaseCell 清空指定格子的占用状态
// 敌人死亡动画结束归还对象池时调用
func (s *SpawnGridSystem) ReleaseCell(gridEntity ecs.EntityID, col, row int) error {
	grid, found := ecs.GetComponent[*components.SpawnGridComponent](s.entityManager, gridEntity)
	if !found {
		return fmt.Errorf("failed to get SpawnGridComponent from entity %d", gridEntity)
	}
	if !isValidGridPosition(grid, col, row) {
		return fmt.Errorf("invalid grid position: col=%d, row=%d (grid size %d)", col, row, grid.Size)
	}

	grid.Occupancy[row][col] = 0
	return nil
}

// FreeCellCount 返回当前空闲格子数量（日志和调试工具使用）
func (s *SpawnGridSystem) FreeCellCount(gridEntity ecs.EntityID) int {
	grid, found := ecs.GetComponent[*components.SpawnGridComponent](s.entityManager, gridEntity)
	if !found {
		return 0
	}
	count := 0
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if grid.Occupancy[r][c] == 0 {
				count++
			}
		}
	}
	return count
}

// isValidGridPosition 检查网格位置是否有效
func isValidGridPosition(grid *components.SpawnGridComponent, col, row int) bool {
	return col >= 0 && col < grid.Size && row >= 0 && row < grid.Size
}
