package game

import "github.com/hajimehoshi/ebiten/v2"

// Scene 场景接口
// 场景拥有自己的实体管理器和系统集合，由 SceneManager 驱动
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)
	// Draw 渲染场景到目标图像
	Draw(screen *ebiten.Image)
}

// SceneManager 管理当前活动场景
// 任意时刻只有一个场景的 Update 和 Draw 被调用
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建没有活动场景的管理器，用 SwitchTo 设置初始场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// CurrentScene 返回当前活动场景，没有则返回 nil
func (sm *SceneManager) CurrentScene() Scene {
	return sm.currentScene
}

// Update 推进当前场景；没有活动场景时不做任何事
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 渲染当前场景；没有活动场景时不做任何事
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
