package systems

import (
	"image/color"

	"github.com/decker502/explora/pkg/components"
)

// 输入框外观参数
const (
	textBoxPaddingLeft    = 10.0
	textBoxActiveAlpha    = 100
	textBoxInactiveAlpha  = 200
	textBoxBackgroundGray = 50
)

var (
	textBoxTextColor        = color.RGBA{255, 255, 255, 255}
	textBoxPlaceholderColor = color.RGBA{130, 130, 130, 255}
)

// TextBoxRenderSystem 文本输入框渲染系统
// 负责绘制输入框背景和文本（或占位符）
type TextBoxRenderSystem struct{}

// NewTextBoxRenderSystem 创建文本输入框渲染系统
func NewTextBoxRenderSystem() *TextBoxRenderSystem {
	return &TextBoxRenderSystem{}
}

// BackgroundColor 返回输入框背景色
// 获得焦点时更透明（提示可以输入），无焦点时更不透明
func (s *TextBoxRenderSystem) BackgroundColor(box *components.TextBoxComponent) color.RGBA {
	alpha := uint8(textBoxInactiveAlpha)
	if box.Active {
		alpha = textBoxActiveAlpha
	}
	return color.RGBA{R: textBoxBackgroundGray, G: textBoxBackgroundGray, B: textBoxBackgroundGray, A: alpha}
}

// DrawTextBox 绘制输入框
// text 为外部持有的文本，为空时显示占位符
func (s *TextBoxRenderSystem) DrawTextBox(r Renderer, box *components.TextBoxComponent, text string) {
	rect := box.Rect

	// 1. 背景
	r.FillRect(rect.X, rect.Y, rect.Width, rect.Height, s.BackgroundColor(box))

	// 2. 文本或占位符（左对齐，垂直居中）
	textX := rect.X + textBoxPaddingLeft
	textY := rect.Y + rect.Height/2 - float64(box.TextSize)/2

	if text != "" {
		r.DrawText(text, textX, textY, box.TextSize, textBoxTextColor)
		return
	}
	r.DrawText(box.Placeholder, textX, textY, box.TextSize, textBoxPlaceholderColor)
}
