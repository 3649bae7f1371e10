//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，
// 仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.gonewx.molewhack -o build/molewhack.aar ./mobile
package mobile

import (
	"github.com/gonewx/molewhack/pkg/app"
	"github.com/gonewx/molewhack/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	embedded.Init(assetsFS)

	game, err := app.NewApp(app.Config{})
	if err != nil {
		panic(err)
	}
	mobile.SetGame(game)
}

// Dummy 是 gomobile 绑定要求的导出符号，本身不做任何事
func Dummy() {}
