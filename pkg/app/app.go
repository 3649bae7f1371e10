// Package app 提供游戏应用的核心包装器
//
// 该包把游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gonewx/molewhack/pkg/config"
	"github.com/gonewx/molewhack/pkg/game"
	"github.com/gonewx/molewhack/pkg/scenes"
	"github.com/gonewx/molewhack/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子；0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载游戏配置
	gameConfig, err := config.LoadGameConfig("assets/config/game.yaml")
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Printf("[App] Config loaded: grid=%dx%d, pool=%d enemies",
		gameConfig.GridSize, gameConfig.GridSize, gameConfig.TotalPoolSize())

	// 初始化跨平台存储（失败降级为内存模式，不阻止启动）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "molewhack"})
	if err != nil {
		log.Printf("[App] Warning: persistent storage unavailable: %v", err)
		gdataManager = nil
	}

	settingsManager := game.NewSettingsManager(gdataManager)
	scoreManager := game.NewScoreManager(gdataManager)
	log.Printf("[App] High score: %d", scoreManager.HighScore())

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Session seed: %d", seed)

	// 创建场景管理器并进入游戏场景
	sceneManager := game.NewSceneManager()
	gameScene, err := scenes.NewGameScene(gameConfig, settingsManager, scoreManager, seed)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}
	sceneManager.SwitchTo(gameScene)

	if settingsManager.Settings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
	}, nil
}

// Update 推进游戏逻辑
// ebiten 以固定 TPS 调用，deltaTime 按当前 TPS 折算
func (a *App) Update() error {
	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 渲染当前帧
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕大小（与实际窗口大小无关）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return utils.ScreenWidth, utils.ScreenHeight
}
