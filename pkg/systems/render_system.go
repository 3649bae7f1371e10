package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/molewhack/pkg/components"
	"github.com/gonewx/molewhack/pkg/ecs"
	"github.com/gonewx/molewhack/pkg/game"
	"github.com/gonewx/molewhack/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// RenderSystem 把游戏世界画到屏幕上
//
// 没有美术资源：敌人画成按体型半径缩放的实心圆，
// 网格画成交替底色的格子。缩放与颜色全部来自组件状态
type RenderSystem struct {
	entityManager *ecs.EntityManager
	layout        utils.GridLayout
	settings      *game.GameSettings
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, layout utils.GridLayout, settings *game.GameSettings) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		layout:        layout,
		settings:      settings,
	}
}

// 格子底色（棋盘式交替）
var (
	cellColorA = color.RGBA{R: 0x3c, G: 0x54, B: 0x2e, A: 0xff}
	cellColorB = color.RGBA{R: 0x46, G: 0x60, B: 0x36, A: 0xff}
)

// Draw 渲染整个场景
func (s *RenderSystem) Draw(screen *ebiten.Image, gameState *game.GameState, highScore int) {
	screen.Fill(colornames.Darkslategray)

	s.drawGrid(screen)
	s.drawEnemies(screen)
	s.drawHUD(screen, gameState, highScore)
}

// drawGrid 绘制生成网格
func (s *RenderSystem) drawGrid(screen *ebiten.Image) {
	for row := 0; row < s.layout.Size; row++ {
		for col := 0; col < s.layout.Size; col++ {
			x, y, size := s.layout.CellRect(col, row)

			fill := cellColorA
			if (col+row)%2 == 1 {
				fill = cellColorB
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), fill, false)

			if s.settings.ShowGrid {
				vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size),
					1, colornames.Darkolivegreen, false)
			}
		}
	}
}

// drawEnemies 绘制所有在场敌人
func (s *RenderSystem) drawEnemies(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		if !ok || enemy.State == components.EnemyInactive {
			continue
		}

		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 受击压缩用 X/Y 平均值近似（圆形绘制没有独立轴缩放）
		radius := enemy.BodyType.Radius() * (scale.ScaleX + scale.ScaleY) / 2
		if radius <= 0.5 {
			continue
		}

		r, g, b := 0.5, 0.5, 0.5
		if tint, ok := ecs.GetComponent[*components.TintComponent](s.entityManager, id); ok {
			r, g, b = tint.R, tint.G, tint.B
		}

		// 受击闪白：向白色线性混合
		if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id); ok {
			if strength := flash.CurrentStrength(); strength > 0 {
				r = r + (1-r)*strength
				g = g + (1-g)*strength
				b = b + (1-b)*strength
			}
		}

		fill := color.RGBA{
			R: uint8(r * 0xff),
			G: uint8(g * 0xff),
			B: uint8(b * 0xff),
			A: 0xff,
		}

		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(radius), fill, true)
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(radius), 2, colornames.Black, true)
	}
}

// drawHUD 绘制分数与操作提示
func (s *RenderSystem) drawHUD(screen *ebiten.Image, gameState *game.GameState, highScore int) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("SCORE %d    BEST %d", gameState.Score, highScore), 12, 12)
	ebitenutil.DebugPrintAt(screen,
		"L-click: light hit   R-click: heavy hit (can whiff)   ESC: pause",
		12, utils.ScreenHeight-24)

	if gameState.IsPaused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", utils.ScreenWidth/2-22, utils.ScreenHeight/2)
	}
}
