package systems

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/decker502/explora/pkg/components"
	"github.com/decker502/explora/pkg/utils"
)

var (
	// ErrButtonImageMissing 图片模式下未提供图片
	ErrButtonImageMissing = errors.New("button image mode requires an image")
	// ErrUnknownRenderMode 未知的按钮渲染方式
	ErrUnknownRenderMode = errors.New("unknown button render mode")
)

// 按钮外观参数
const (
	buttonShadowOffset    = 4.0
	buttonOutlineRadius   = 0.0
	buttonOutlineSegments = 4
	buttonOutlineWidth    = 5.0
	buttonTextShadowDelta = 1.0
	// buttonHoverBlend 悬停时主体颜色向 BaseColor 混合的最大比例
	buttonHoverBlend = 0.25
)

var (
	buttonShadowColor     = color.RGBA{0, 0, 0, 40}
	buttonTextShadowColor = color.RGBA{0, 0, 0, 30}
	imageTint             = color.RGBA{255, 255, 255, 255}
)

// ButtonRenderSystem 按钮渲染系统
//
// 职责：
//   - 按 HoverScale / PressOffset 计算绘制区域（点击区域不变）
//   - 绘制阴影（按下时不绘制）、主体、边框
//   - 绘制居中文字（带阴影）或居中图片
//
// 绘制过程不修改按钮状态
type ButtonRenderSystem struct{}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem() *ButtonRenderSystem {
	return &ButtonRenderSystem{}
}

// DrawRect 返回按钮的实际绘制区域
// 以中心为基准放大 HoverScale 倍，并向下偏移 PressOffset
func (s *ButtonRenderSystem) DrawRect(button *components.ButtonComponent) utils.Rect {
	return button.Rect.Scaled(button.HoverScale, button.PressOffset)
}

// DrawButton 渲染单个按钮
//
// 返回：
//   - error: 渲染方式配置错误（图片模式缺少图片、未知模式），此时不绘制任何内容
func (s *ButtonRenderSystem) DrawButton(r Renderer, button *components.ButtonComponent, mode components.ButtonRenderMode, palette components.ButtonColorPalette) error {
	// 先校验渲染方式，配置错误时立即返回
	switch m := mode.(type) {
	case components.ButtonTextMode:
	case components.ButtonImageMode:
		if m.Image == nil {
			return fmt.Errorf("draw button %q: %w", button.Label, ErrButtonImageMissing)
		}
	default:
		return fmt.Errorf("draw button %q: %w (%T)", button.Label, ErrUnknownRenderMode, mode)
	}

	rect := s.DrawRect(button)

	// 阴影
	if !button.IsPressed {
		shadow := rect.Offset(buttonShadowOffset, buttonShadowOffset)
		r.FillRect(shadow.X, shadow.Y, shadow.Width, shadow.Height, buttonShadowColor)
	}

	// 主体
	r.FillRect(rect.X, rect.Y, rect.Width, rect.Height, HoverBlend(button, palette))

	// 边框
	r.DrawRoundedOutline(rect, buttonOutlineRadius, buttonOutlineSegments, buttonOutlineWidth, palette.Outline)

	switch m := mode.(type) {
	case components.ButtonTextMode:
		s.drawButtonText(r, button, rect, palette)
	case components.ButtonImageMode:
		s.drawButtonImage(r, button, m)
	}
	return nil
}

// drawButtonText 渲染按钮文字（居中，带阴影效果）
func (s *ButtonRenderSystem) drawButtonText(r Renderer, button *components.ButtonComponent, rect utils.Rect, palette components.ButtonColorPalette) {
	textWidth := r.MeasureText(button.Label, button.FontSize)
	textX := rect.X + (rect.Width-textWidth)/2
	textY := rect.Y + (rect.Height-float64(button.FontSize))/2

	// 1. 先绘制阴影
	r.DrawText(button.Label, textX+buttonTextShadowDelta, textY+buttonTextShadowDelta, button.FontSize, buttonTextShadowColor)

	// 2. 再绘制主文字
	r.DrawText(button.Label, textX, textY, button.FontSize, palette.Text)
}

// drawButtonImage 渲染按钮图片（以逻辑边界中心为基准居中）
func (s *ButtonRenderSystem) drawButtonImage(r Renderer, button *components.ButtonComponent, mode components.ButtonImageMode) {
	bounds := mode.Image.Bounds()
	cx, cy := button.Rect.Center()
	x := cx - float64(bounds.Dx())*mode.Scale/2
	y := cy - float64(bounds.Dy())*mode.Scale/2
	r.DrawImage(mode.Image, x, y, mode.Scale, imageTint)
}

// HoverBlend 计算按钮主体颜色
// AnimationTimer 为 0 时返回 palette.Main，随计时器增长向 BaseColor 混合
func HoverBlend(button *components.ButtonComponent, palette components.ButtonColorPalette) color.RGBA {
	t := utils.EaseOutQuad(utils.Clamp01(button.AnimationTimer)) * buttonHoverBlend
	if t == 0 {
		return palette.Main
	}
	mix := func(a, b uint8) uint8 {
		return uint8(utils.Lerp(float64(a), float64(b), t) + 0.5)
	}
	return color.RGBA{
		R: mix(palette.Main.R, button.BaseColor.R),
		G: mix(palette.Main.G, button.BaseColor.G),
		B: mix(palette.Main.B, button.BaseColor.B),
		A: mix(palette.Main.A, button.BaseColor.A),
	}
}
