package utils

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPrimaryJustPressed 检查是否刚刚发生主点击（鼠标左键或触摸）
// 返回是否点击以及点击位置
//
// 同时支持鼠标和触摸输入，优先检测触摸（移动设备）
func IsPrimaryJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsSecondaryJustPressed 检查是否刚刚发生副点击（鼠标右键）
// 返回是否点击以及点击位置
//
// 触摸设备没有副点击，重击仅在桌面端可用
func IsSecondaryJustPressed() (bool, int, int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// PointInCircle 检查点 (px, py) 是否落在圆心 (cx, cy)、半径 r 的圆内
func PointInCircle(px, py, cx, cy, r float64) bool {
	dx := px - cx
	dy := py - cy
	return math.Sqrt(dx*dx+dy*dy) <= r
}
