package main

import (
	"flag"
	"log"

	"github.com/gonewx/molewhack/pkg/app"
	"github.com/gonewx/molewhack/pkg/embedded"
	"github.com/gonewx/molewhack/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	flag.Parse()

	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(assetsFS)

	game, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(utils.ScreenWidth, utils.ScreenHeight)
	ebiten.SetWindowTitle("打地鼠 - Whack-a-Mole")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
