package components

import "github.com/decker502/explora/pkg/utils"

// TextBoxComponent 文本输入框组件
//
// 输入框不持有被编辑的文本：文本由调用者持有，每帧传入 TextBoxSystem.Input。
// 组件只保存界面状态（占位符、尺寸、焦点）。
type TextBoxComponent struct {
	// Rect 输入框区域
	Rect utils.Rect

	// Placeholder 占位符文本（文本为空时显示）
	Placeholder string
	// TextSize 文字字号（像素）
	TextSize int

	// 输入限制
	MaxLength     int  // 最大字符数
	SpacesAllowed bool // 是否允许输入空格

	// Active 是否获得焦点（接收键盘输入）
	Active bool
}

// NewTextBoxComponent 创建文本输入框组件（初始无焦点）
func NewTextBoxComponent(rect utils.Rect, placeholder string, textSize, maxLength int, spacesAllowed bool) *TextBoxComponent {
	return &TextBoxComponent{
		Rect:          rect,
		Placeholder:   placeholder,
		TextSize:      textSize,
		MaxLength:     maxLength,
		SpacesAllowed: spacesAllowed,
	}
}

// Policy 返回输入框的文本输入限制
func (c *TextBoxComponent) Policy() utils.TextPolicy {
	return utils.TextPolicy{MaxLength: c.MaxLength, SpacesAllowed: c.SpacesAllowed}
}
