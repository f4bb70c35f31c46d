package utils

// Rect 轴对齐矩形（屏幕坐标，左上角为原点）
//
// 宽高允许为 0（退化矩形），布局计算保证不会为负数。
// 矩形由所属控件持有，每帧由外部布局重新计算。
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect 创建矩形
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Contains 检测点是否在矩形内
// 判定区间为 [X, X+Width) × [Y, Y+Height)，右边界和下边界不包含在内
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Center 返回矩形中心点
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Scaled 以中心点为基准缩放矩形，并整体向下偏移 offsetY
//
// 参数：
//   - scale: 缩放倍数（1.0 = 原始尺寸）
//   - offsetY: 垂直偏移量（像素，正值向下）
func (r Rect) Scaled(scale, offsetY float64) Rect {
	offsetX := r.Width * (scale - 1.0) * 0.5
	offsetYScale := r.Height * (scale - 1.0) * 0.5
	return Rect{
		X:      r.X - offsetX,
		Y:      r.Y - offsetYScale + offsetY,
		Width:  r.Width * scale,
		Height: r.Height * scale,
	}
}

// Offset 返回平移后的矩形
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}
