package config

import "image/color"

// UI 外观相关的常量配置
// 包括按钮文字、配色、输入框限制等

const (
	// WindowTitle 窗口标题
	WindowTitle = "explora"

	// ButtonLabel 抓取按钮文字
	ButtonLabel = "explora"
	// ButtonFontSize 按钮字号
	ButtonFontSize = 20

	// URLPlaceholder 地址栏占位符
	URLPlaceholder = "Enter a URL..."
	// URLTextSize 地址栏字号
	URLTextSize = 20
	// URLMaxLength 地址栏最大字符数
	URLMaxLength = 128
	// URLSpacesAllowed URL 中不允许空格
	URLSpacesAllowed = false

	// BodyTextSize 页面内容字号
	BodyTextSize = 14
	// BodyMaxBytes 最多读取的页面字节数
	BodyMaxBytes = 512 << 10

	// LoadingText 请求进行中的提示
	LoadingText = "Loading..."
	// FreshTabText 新标签页提示
	FreshTabText = "Type a URL and press explora."
)

// 配色
var (
	// BackgroundColor 窗口背景色
	BackgroundColor = color.RGBA{R: 30, G: 30, B: 36, A: 255}

	// ButtonMainColor 按钮主体颜色
	ButtonMainColor = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	// ButtonOutlineColor 按钮边框颜色
	ButtonOutlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	// ButtonTextColor 按钮文字颜色
	ButtonTextColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}

	// BodyTextColor 页面内容颜色
	BodyTextColor = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	// StatusTextColor 状态提示颜色
	StatusTextColor = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	// ErrorTextColor 错误提示颜色
	ErrorTextColor = color.RGBA{R: 230, G: 90, B: 90, A: 255}
)
