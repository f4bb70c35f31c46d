package components

import (
	"image/color"

	"github.com/decker502/explora/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonComponent 动画按钮组件
// 包含按钮的几何、文字以及连续的动画状态
//
// 设计原则：
//   - 纯数据组件，逻辑由 ButtonSystem / ButtonRenderSystem 负责
//   - HoverScale / PressOffset / AnimationTimer 每帧由上一帧的值逼近目标值，
//     除构造时外从不重置
//   - Rect 是逻辑边界（未缩放），点击检测始终基于它
type ButtonComponent struct {
	// Rect 逻辑边界，可由外部布局每帧重新定位
	Rect utils.Rect

	// Label 按钮文字
	Label string
	// FontSize 文字字号（像素）
	FontSize int
	// BaseColor 悬停高亮混合的目标颜色
	BaseColor color.RGBA

	// ===== 动画状态 =====
	// HoverScale 悬停缩放倍数（1.0 ~ 1.1）
	HoverScale float64
	// PressOffset 按下时的垂直偏移（0 ~ 4 像素）
	PressOffset float64
	// AnimationTimer 悬停颜色计时器 [0, 1]
	AnimationTimer float64
	// IsPressed 上一次更新时是否处于按下状态
	IsPressed bool

	// State 当前交互状态（Normal/Hovered/Clicked）
	State UIState
}

// NewButtonComponent 创建按钮组件
func NewButtonComponent(x, y, width, height float64, label string, fontSize int) *ButtonComponent {
	return &ButtonComponent{
		Rect:           utils.NewRect(x, y, width, height),
		Label:          label,
		FontSize:       fontSize,
		BaseColor:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		HoverScale:     1.0,
		PressOffset:    0.0,
		AnimationTimer: 0.0,
		IsPressed:      false,
		State:          UINormal,
	}
}

// ButtonColorPalette 按钮配色
// 每次绘制时传入，不保存在按钮上
type ButtonColorPalette struct {
	Main    color.RGBA // 按钮主体
	Outline color.RGBA // 边框
	Text    color.RGBA // 文字
}

// ButtonRenderMode 按钮内容渲染方式（封闭变体：ButtonTextMode | ButtonImageMode）
type ButtonRenderMode interface {
	isButtonRenderMode()
}

// ButtonTextMode 居中绘制按钮文字（带 1 像素阴影）
type ButtonTextMode struct{}

// ButtonImageMode 居中绘制图片
type ButtonImageMode struct {
	// Image 图片，不能为 nil
	Image *ebiten.Image
	// Scale 图片缩放倍数
	Scale float64
}

func (ButtonTextMode) isButtonRenderMode()  {}
func (ButtonImageMode) isButtonRenderMode() {}
