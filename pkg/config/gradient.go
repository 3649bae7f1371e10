package config

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientStop 渐变中的单个颜色停靠点
// Pos 是生命比例 [0,1]，Color 是十六进制颜色（如 "#ff8c00"）
type GradientStop struct {
	Pos   float64 `yaml:"pos"`
	Color string  `yaml:"color"`
}

// DefaultGradientStops 返回默认的生命值渐变
// 满血为绿色，随生命降低过渡到橙色、深红色
func DefaultGradientStops() []GradientStop {
	return []GradientStop{
		{Pos: 0.0, Color: "#8b0000"},
		{Pos: 0.5, Color: "#ff8c00"},
		{Pos: 1.0, Color: "#2e8b57"},
	}
}

// gradientPoint 解析后的渐变停靠点
type gradientPoint struct {
	pos float64
	col colorful.Color
}

// HealthGradient 把生命比例 [0,1] 映射到显示颜色
//
// 相邻停靠点之间在 RGB 空间线性插值；
// 超出首尾停靠点范围的输入分别钳制到首尾颜色
type HealthGradient struct {
	points []gradientPoint
}

// NewHealthGradient 从停靠点列表构建渐变
// 至少需要两个停靠点，位置必须落在 [0,1] 内且严格递增
func NewHealthGradient(stops []GradientStop) (*HealthGradient, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("at least two gradient stops are required, got %d", len(stops))
	}

	points := make([]gradientPoint, 0, len(stops))
	for i, stop := range stops {
		if stop.Pos < 0 || stop.Pos > 1 {
			return nil, fmt.Errorf("stop %d: pos must be in [0,1], got %v", i, stop.Pos)
		}
		col, err := colorful.Hex(stop.Color)
		if err != nil {
			return nil, fmt.Errorf("stop %d: invalid color %q: %w", i, stop.Color, err)
		}
		points = append(points, gradientPoint{pos: stop.Pos, col: col})
	}

	if !sort.SliceIsSorted(points, func(i, j int) bool { return points[i].pos < points[j].pos }) {
		return nil, fmt.Errorf("gradient stops must be in ascending pos order")
	}
	for i := 1; i < len(points); i++ {
		if points[i].pos == points[i-1].pos {
			return nil, fmt.Errorf("duplicate gradient stop pos %v", points[i].pos)
		}
	}

	return &HealthGradient{points: points}, nil
}

// Evaluate 返回生命比例 t 对应的颜色
func (g *HealthGradient) Evaluate(t float64) colorful.Color {
	if t <= g.points[0].pos {
		return g.points[0].col
	}
	last := g.points[len(g.points)-1]
	if t >= last.pos {
		return last.col
	}

	for i := 1; i < len(g.points); i++ {
		if t <= g.points[i].pos {
			prev := g.points[i-1]
			next := g.points[i]
			frac := (t - prev.pos) / (next.pos - prev.pos)
			return prev.col.BlendRgb(next.col, frac)
		}
	}
	return last.col
}
