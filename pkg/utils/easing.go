// Package utils 提供通用工具函数
package utils

import "math"

// 缓动函数
//
// 所有函数接受进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EaseLinear 线性缓动（匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出：开始快，结束慢
// 用于生成动画（冒出后减速定格）
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入：开始慢，结束快
// 用于死亡动画（缩小时加速消失）
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutQuad 二次方缓出（比 Cubic 更柔和）
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// PunchCurve 受击压缩曲线
// 半周期正弦：0→1→0，峰值在 t=0.5，用于"压下去再弹回来"的缩放
func PunchCurve(t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return math.Sin(math.Pi * t)
}
