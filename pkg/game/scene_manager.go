package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 控制当前活动的场景
// 任意时刻只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景
// 旧场景实现了 Closer 时会先被关闭
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil && sm.currentScene != scene {
		closeScene(sm.currentScene)
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 更新当前场景，没有活动场景时不做任何事
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}
	return sm.currentScene.Update(deltaTime)
}

// Draw 绘制当前场景，没有活动场景时不做任何事
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Resize 将窗口逻辑尺寸转发给当前场景
func (sm *SceneManager) Resize(width, height int) {
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// Shutdown 程序退出前调用
// 依次执行当前场景的 SaveOnExit 和 Close
//
// 返回：
//   - bool: 保存是否成功（没有可保存的场景时为 true）
func (sm *SceneManager) Shutdown() bool {
	if sm.currentScene == nil {
		return true
	}

	saved := true
	if s, ok := sm.currentScene.(Saveable); ok {
		saved = s.SaveOnExit()
		log.Printf("[SceneManager] 退出时保存状态: %v", saved)
	}
	closeScene(sm.currentScene)
	sm.currentScene = nil
	return saved
}

func closeScene(scene Scene) {
	c, ok := scene.(Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		log.Printf("[SceneManager] 关闭场景失败: %v", err)
	}
}
