package utils

// 屏幕布局常量
const (
	ScreenWidth  = 800 // 逻辑屏幕宽度
	ScreenHeight = 600 // 逻辑屏幕高度

	// HUDHeight 顶部 HUD 保留高度（分数、提示文字）
	HUDHeight = 48

	// GridMargin 网格与屏幕边缘的最小间距
	GridMargin = 24
)

// GridLayout 把网格坐标映射到世界（屏幕）坐标
//
// 网格始终为正方形，按可用区域自动计算格子大小并居中。
// 格子坐标 (col, row) 均为 0 起始，row 向下增长
type GridLayout struct {
	Size     int     // 网格边长（格子数）
	CellSize float64 // 单个格子的边长（像素）
	OriginX  float64 // 网格左上角的屏幕 X 坐标
	OriginY  float64 // 网格左上角的屏幕 Y 坐标
}

// NewGridLayout 根据网格边长计算居中布局
func NewGridLayout(size int) GridLayout {
	availW := float64(ScreenWidth - 2*GridMargin)
	availH := float64(ScreenHeight - HUDHeight - 2*GridMargin)

	cell := availW / float64(size)
	if h := availH / float64(size); h < cell {
		cell = h
	}

	gridSide := cell * float64(size)
	return GridLayout{
		Size:     size,
		CellSize: cell,
		OriginX:  (float64(ScreenWidth) - gridSide) / 2,
		OriginY:  float64(HUDHeight) + (availH+2*GridMargin-gridSide)/2,
	}
}

// CellCenter 返回格子中心点的屏幕坐标
func (g GridLayout) CellCenter(col, row int) (x, y float64) {
	x = g.OriginX + (float64(col)+0.5)*g.CellSize
	y = g.OriginY + (float64(row)+0.5)*g.CellSize
	return x, y
}

// CellRect 返回格子的屏幕矩形（左上角坐标和边长）
func (g GridLayout) CellRect(col, row int) (x, y, size float64) {
	return g.OriginX + float64(col)*g.CellSize, g.OriginY + float64(row)*g.CellSize, g.CellSize
}

// Contains 检查屏幕坐标是否落在网格区域内
func (g GridLayout) Contains(x, y float64) bool {
	side := g.CellSize * float64(g.Size)
	return x >= g.OriginX && x < g.OriginX+side && y >= g.OriginY && y < g.OriginY+side
}
