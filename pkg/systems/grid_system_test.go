package systems

import (
	"testing"

	"github.com/gonewx/molewhack/pkg/config"
	"github.com/gonewx/molewhack/pkg/ecs"
)

// TestFindRandomFreeCellNeverReturnsOccupied 测试逐格占满的过程中
// 随机空格子查找永远不返回已占用的格子，且恰好在占满时返回 none
func TestFindRandomFreeCellNeverReturnsOccupied(t *testing.T) {
	w := newTestWorld(t, 1, func(cfg *config.GameConfig) { cfg.GridSize = 3 })

	total := 3 * 3
	occupied := make(map[[2]int]bool)

	for k := 0; k < total; k++ {
		col, row, ok := w.grid.FindRandomFreeCell(w.gridEntity)
		if !ok {
			t.Fatalf("Expected a free cell after %d occupations", k)
		}
		if occupied[[2]int{col, row}] {
			t.Fatalf("FindRandomFreeCell returned occupied cell (%d, %d)", col, row)
		}
		if err := w.grid.OccupyCell(w.gridEntity, col, row, ecs.EntityID(k+100)); err != nil {
			t.Fatalf("OccupyCell failed: %v", err)
		}
		occupied[[2]int{col, row}] = true
	}

	// 网格已满，必须返回 none
	if _, _, ok := w.grid.FindRandomFreeCell(w.gridEntity); ok {
		t.Error("Expected no free cell on a full grid")
	}
}

// TestFindRandomFreeCellCoversAllCells 测试随机选择能覆盖所有空格子
func TestFindRandomFreeCellCoversAllCells(t *testing.T) {
	w := newTestWorld(t, 7, func(cfg *config.GameConfig) { cfg.GridSize = 2 })

	seen := make(map[[2]int]bool)
	for i := 0; i < 400; i++ {
		col, row, ok := w.grid.FindRandomFreeCell(w.gridEntity)
		if !ok {
			t.Fatal("Expected free cells on an empty grid")
		}
		seen[[2]int{col, row}] = true
	}

	if len(seen) != 4 {
		t.Errorf("Expected all 4 cells to be picked at least once, got %d", len(seen))
	}
}

// TestOccupyCellErrors 测试重复占用和越界占用返回错误
func TestOccupyCellErrors(t *testing.T) {
	w := newTestWorld(t, 1, func(cfg *config.GameConfig) { cfg.GridSize = 2 })

	if err := w.grid.OccupyCell(w.gridEntity, 0, 0, 42); err != nil {
		t.Fatalf("First occupation should succeed: %v", err)
	}
	if err := w.grid.OccupyCell(w.gridEntity, 0, 0, 43); err == nil {
		t.Error("Expected error for double occupation")
	}
	if err := w.grid.OccupyCell(w.gridEntity, 2, 0, 44); err == nil {
		t.Error("Expected error for out-of-bounds column")
	}
	if err := w.grid.OccupyCell(w.gridEntity, 0, -1, 44); err == nil {
		t.Error("Expected error for negative row")
	}
}

// TestReleaseCell 测试释放后格子重新可用
func TestReleaseCell(t *testing.T) {
	w := newTestWorld(t, 1, func(cfg *config.GameConfig) { cfg.GridSize = 1 })

	if err := w.grid.OccupyCell(w.gridEntity, 0, 0, 42); err != nil {
		t.Fatalf("OccupyCell failed: %v", err)
	}
	if !w.grid.IsOccupied(w.gridEntity, 0, 0) {
		t.Error("Expected cell to be occupied")
	}
	if _, _, ok := w.grid.FindRandomFreeCell(w.gridEntity); ok {
		t.Error("Expected 1x1 grid to be full")
	}

	if err := w.grid.ReleaseCell(w.gridEntity, 0, 0); err != nil {
		t.Fatalf("ReleaseCell failed: %v", err)
	}
	if w.grid.IsOccupied(w.gridEntity, 0, 0) {
		t.Error("Expected cell to be free after release")
	}
	if _, _, ok := w.grid.FindRandomFreeCell(w.gridEntity); !ok {
		t.Error("Expected released cell to be findable again")
	}

	// 越界释放返回错误
	if err := w.grid.ReleaseCell(w.gridEntity, 5, 5); err == nil {
		t.Error("Expected error for out-of-bounds release")
	}
}

// TestIsOccupiedOutOfBounds 测试越界位置视为已占用
func TestIsOccupiedOutOfBounds(t *testing.T) {
	w := newTestWorld(t, 1, func(cfg *config.GameConfig) { cfg.GridSize = 2 })

	if !w.grid.IsOccupied(w.gridEntity, -1, 0) {
		t.Error("Expected out-of-bounds cell to count as occupied")
	}
	if !w.grid.IsOccupied(w.gridEntity, 0, 2) {
		t.Error("Expected out-of-bounds cell to count as occupied")
	}
}

// TestFreeCellCount 测试空闲格子计数
func TestFreeCellCount(t *testing.T) {
	w := newTestWorld(t, 1, func(cfg *config.GameConfig) { cfg.GridSize = 2 })

	if got := w.grid.FreeCellCount(w.gridEntity); got != 4 {
		t.Errorf("Expected 4 free cells, got %d", got)
	}
	w.grid.OccupyCell(w.gridEntity, 1, 1, 42)
	if got := w.grid.FreeCellCount(w.gridEntity); got != 3 {
		t.Errorf("Expected 3 free cells, got %d", got)
	}
}
