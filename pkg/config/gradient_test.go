package config

import (
	"math"
	"testing"
)

// almostEqual 浮点颜色分量比较
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestHealthGradientEndpoints 测试首尾停靠点与范围外钳制
func TestHealthGradientEndpoints(t *testing.T) {
	g, err := NewHealthGradient(DefaultGradientStops())
	if err != nil {
		t.Fatalf("NewHealthGradient failed: %v", err)
	}

	low := g.Evaluate(0)
	high := g.Evaluate(1)

	// 默认渐变：零生命为深红，满生命为海绿
	if !almostEqual(low.R, 0x8b/255.0) || !almostEqual(low.G, 0) || !almostEqual(low.B, 0) {
		t.Errorf("Evaluate(0) = %v, want dark red", low)
	}
	if !almostEqual(high.R, 0x2e/255.0) || !almostEqual(high.G, 0x8b/255.0) || !almostEqual(high.B, 0x57/255.0) {
		t.Errorf("Evaluate(1) = %v, want sea green", high)
	}

	// 范围外输入钳制到端点
	if g.Evaluate(-0.5) != low {
		t.Error("Expected below-range input clamped to first stop")
	}
	if g.Evaluate(1.5) != high {
		t.Error("Expected above-range input clamped to last stop")
	}
}

// TestHealthGradientMidpoint 测试中点命中中间停靠点
func TestHealthGradientMidpoint(t *testing.T) {
	g, err := NewHealthGradient(DefaultGradientStops())
	if err != nil {
		t.Fatalf("NewHealthGradient failed: %v", err)
	}

	mid := g.Evaluate(0.5)
	if !almostEqual(mid.R, 1.0) || !almostEqual(mid.G, 0x8c/255.0) || !almostEqual(mid.B, 0) {
		t.Errorf("Evaluate(0.5) = %v, want dark orange", mid)
	}
}

// TestHealthGradientInterpolation 测试停靠点之间线性插值
func TestHealthGradientInterpolation(t *testing.T) {
	g, err := NewHealthGradient([]GradientStop{
		{Pos: 0.0, Color: "#000000"},
		{Pos: 1.0, Color: "#ffffff"},
	})
	if err != nil {
		t.Fatalf("NewHealthGradient failed: %v", err)
	}

	mid := g.Evaluate(0.5)
	if !almostEqual(mid.R, 0.5) || !almostEqual(mid.G, 0.5) || !almostEqual(mid.B, 0.5) {
		t.Errorf("Evaluate(0.5) = %v, want mid gray", mid)
	}
}

// TestNewHealthGradientInvalid 测试非法停靠点列表
func TestNewHealthGradientInvalid(t *testing.T) {
	tests := []struct {
		name  string
		stops []GradientStop
	}{
		{"too few stops", []GradientStop{{Pos: 0, Color: "#ffffff"}}},
		{"pos out of range", []GradientStop{{Pos: -0.1, Color: "#000000"}, {Pos: 1, Color: "#ffffff"}}},
		{"bad color", []GradientStop{{Pos: 0, Color: "red"}, {Pos: 1, Color: "#ffffff"}}},
		{"unsorted", []GradientStop{{Pos: 0.7, Color: "#000000"}, {Pos: 0.3, Color: "#ffffff"}}},
		{"duplicate pos", []GradientStop{{Pos: 0.5, Color: "#000000"}, {Pos: 0.5, Color: "#ffffff"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewHealthGradient(tt.stops); err == nil {
				t.Errorf("Expected error for %q", tt.name)
			}
		})
	}
}
