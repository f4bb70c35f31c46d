package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个完整的界面（例如浏览器主界面）
// 每个场景拥有自己的更新与绘制逻辑
type Scene interface {
	// Update 按经过的时间更新场景逻辑
	// deltaTime 为距离上一帧的秒数
	// 返回的错误会终止游戏循环
	Update(deltaTime float64) error

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口，场景在程序退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 窗口关闭
//   - 游戏循环返回错误
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}

// Closer 可选接口，场景在被替换或程序退出时释放后台资源
type Closer interface {
	Close() error
}

// Resizable 可选接口，场景在窗口逻辑尺寸变化时收到通知
type Resizable interface {
	Resize(width, height int)
}
