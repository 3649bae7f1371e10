package config

import (
	"github.com/gonewx/molewhack/pkg/types"
	"github.com/lucasb-eyer/go-colorful"
)

// 体型基础色
// 普通变体整个生命周期保持基础色不变；
// 变色变体仅在激活瞬间短暂使用（随后立刻被满血渐变色覆盖）
var bodyBaseColors = map[types.BodyType]string{
	types.BodySmall:  "#c9a227",
	types.BodyMedium: "#b06b2c",
	types.BodyLarge:  "#7d4a8c",
}

// BodyBaseColor 返回体型的基础显示颜色
func BodyBaseColor(bt types.BodyType) colorful.Color {
	hex, ok := bodyBaseColors[bt]
	if !ok {
		hex = "#888888"
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		// 调色板常量非法属于编程错误
		panic(err)
	}
	return col
}
