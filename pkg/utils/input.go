// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Modifier 修饰键
type Modifier int

const (
	// ModifierShift 左右 Shift 任意一个
	ModifierShift Modifier = iota
)

// InputSource 每帧输入查询接口
// 控件系统通过此接口读取输入，便于测试时 mock
type InputSource interface {
	// PointerPosition 当前指针位置（触摸优先，其次鼠标）
	PointerPosition() (float64, float64)
	// IsPrimaryButtonDown 主按键（鼠标左键或触摸）是否按住
	IsPrimaryButtonDown() bool
	// IsPrimaryButtonJustPressed 主按键是否本帧刚按下
	IsPrimaryButtonJustPressed() bool
	// IsPrimaryButtonReleased 主按键是否本帧刚释放
	IsPrimaryButtonReleased() bool
	// IsKeyJustPressed 键盘按键是否本帧刚按下
	IsKeyJustPressed(key ebiten.Key) bool
	// IsModifierHeld 修饰键是否按住
	IsModifierHeld(m Modifier) bool
	// FrameDeltaSeconds 本帧时长（秒）
	FrameDeltaSeconds() float64
}

// EbitenInputSource Ebitengine 默认实现
// 同时支持鼠标和触摸输入，优先检测触摸
//
// 注意：Update 必须在每帧开始时调用一次，用于记录触摸位置（触摸释放后无法再查询位置）
type EbitenInputSource struct {
	touchIDs      []ebiten.TouchID
	lastTouchX    int
	lastTouchY    int
	touchReleased bool
	touchJustDown bool
}

// NewEbitenInputSource 创建 Ebitengine 输入源
func NewEbitenInputSource() *EbitenInputSource {
	return &EbitenInputSource{}
}

// Update 刷新本帧的触摸状态
func (s *EbitenInputSource) Update() {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		s.lastTouchX, s.lastTouchY = ebiten.TouchPosition(s.touchIDs[0])
	}
	s.touchJustDown = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	s.touchReleased = len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0
}

// PointerPosition 获取当前指针位置（触摸或鼠标）
// 触摸释放的那一帧返回最后一次触摸位置
func (s *EbitenInputSource) PointerPosition() (float64, float64) {
	if len(s.touchIDs) > 0 || s.touchReleased {
		return float64(s.lastTouchX), float64(s.lastTouchY)
	}
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// IsPrimaryButtonDown 检查是否有指针按下（鼠标左键或触摸）
func (s *EbitenInputSource) IsPrimaryButtonDown() bool {
	if len(s.touchIDs) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// IsPrimaryButtonJustPressed 检查是否刚刚按下指针
func (s *EbitenInputSource) IsPrimaryButtonJustPressed() bool {
	if s.touchJustDown {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// IsPrimaryButtonReleased 检查是否刚刚释放指针
func (s *EbitenInputSource) IsPrimaryButtonReleased() bool {
	if s.touchReleased {
		return true
	}
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// IsKeyJustPressed 检查键盘按键是否刚刚按下
func (s *EbitenInputSource) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// IsModifierHeld 检查修饰键是否按住
func (s *EbitenInputSource) IsModifierHeld(m Modifier) bool {
	switch m {
	case ModifierShift:
		return ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	}
	return false
}

// FrameDeltaSeconds 本帧时长
// Ebitengine 以固定 TPS 调用 Update，每帧时长为 1/TPS
func (s *EbitenInputSource) FrameDeltaSeconds() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(tps)
}
