package config

import (
	"math"

	"github.com/decker502/explora/pkg/utils"
)

// 布局配置常量
// 地址栏（输入框 + 按钮）固定在窗口顶部，按钮锚定在窗口右侧，
// 输入框占据剩余宽度；页面内容显示在地址栏下方。
const (
	// DefaultWindowWidth 默认窗口宽度
	DefaultWindowWidth = 800
	// DefaultWindowHeight 默认窗口高度
	DefaultWindowHeight = 600

	// LayoutMargin 控件之间及控件与窗口边缘的间距（像素）
	LayoutMargin = 10.0
	// ToolbarTop 地址栏顶部 Y 坐标
	ToolbarTop = 20.0
	// ToolbarHeight 地址栏高度
	ToolbarHeight = 50.0

	// ButtonWidth 按钮宽度
	ButtonWidth = 100.0

	// BodyTopGap 地址栏与页面内容之间的间距
	BodyTopGap = 20.0
	// BodyLineHeight 页面内容行高
	BodyLineHeight = 18.0
)

// Layout 一帧的控件布局
type Layout struct {
	TextBox utils.Rect
	Button  utils.Rect
	Body    utils.Rect
}

// CalculateLayout 根据窗口尺寸计算控件布局
// 窗口过小时宽高被限制为 0，不会出现负数
//
// 参数：
//   - windowWidth, windowHeight: 窗口逻辑尺寸
func CalculateLayout(windowWidth, windowHeight int) Layout {
	w := float64(windowWidth)
	h := float64(windowHeight)

	buttonX := math.Max(0, w-LayoutMargin-ButtonWidth)
	textBoxWidth := math.Max(0, buttonX-2*LayoutMargin)

	bodyTop := ToolbarTop + ToolbarHeight + BodyTopGap

	return Layout{
		TextBox: utils.NewRect(LayoutMargin, ToolbarTop, textBoxWidth, ToolbarHeight),
		Button:  utils.NewRect(buttonX, ToolbarTop, ButtonWidth, ToolbarHeight),
		Body: utils.NewRect(
			LayoutMargin,
			bodyTop,
			math.Max(0, w-2*LayoutMargin),
			math.Max(0, h-bodyTop-LayoutMargin),
		),
	}
}

// BodyVisibleLines 页面内容区域可显示的行数
func BodyVisibleLines(body utils.Rect) int {
	if body.Height <= 0 {
		return 0
	}
	return int(body.Height / BodyLineHeight)
}
