package systems

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/explora/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Renderer 控件绘制所需的图元接口
// ButtonRenderSystem / TextBoxRenderSystem 只通过此接口绘制，测试时可替换为记录器
type Renderer interface {
	// FillRect 绘制填充矩形
	FillRect(x, y, width, height float64, clr color.Color)
	// DrawRoundedOutline 绘制圆角矩形边框
	// cornerRadius 为圆角半径（像素），segments 为每个圆角的分段数
	DrawRoundedOutline(rect utils.Rect, cornerRadius float64, segments int, thickness float64, clr color.Color)
	// MeasureText 测量文字宽度（像素）
	MeasureText(str string, fontSize int) float64
	// DrawText 以左上角为基准绘制文字
	DrawText(str string, x, y float64, fontSize int, clr color.Color)
	// DrawImage 以左上角为基准绘制缩放后的图片
	DrawImage(img *ebiten.Image, x, y, scale float64, tint color.Color)
}

// FontCache 按字号缓存字体
// 多个 Renderer（每帧一个）共享同一个 FontCache
type FontCache struct {
	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
}

// NewFontCache 从 TTF/OTF 数据创建字体缓存
func NewFontCache(fontData []byte) (*FontCache, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	return &FontCache{
		source: source,
		faces:  make(map[int]*text.GoTextFace),
	}, nil
}

// NewDefaultFontCache 使用内置的 Go Regular 字体
func NewDefaultFontCache() (*FontCache, error) {
	return NewFontCache(goregular.TTF)
}

// Face 返回指定字号的字体
func (c *FontCache) Face(size int) *text.GoTextFace {
	if face, ok := c.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source:    c.source,
		Size:      float64(size),
		Direction: text.DirectionLeftToRight,
	}
	c.faces[size] = face
	return face
}

// EbitenRenderer 基于 Ebitengine 的 Renderer 实现
type EbitenRenderer struct {
	screen *ebiten.Image
	fonts  *FontCache
}

var _ Renderer = (*EbitenRenderer)(nil)

// NewEbitenRenderer 创建绘制到 screen 的 Renderer
func NewEbitenRenderer(screen *ebiten.Image, fonts *FontCache) *EbitenRenderer {
	return &EbitenRenderer{screen: screen, fonts: fonts}
}

// FillRect 绘制填充矩形
func (r *EbitenRenderer) FillRect(x, y, width, height float64, clr color.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(width), float32(height), clr, true)
}

// DrawRoundedOutline 绘制圆角矩形边框
// 圆角半径为 0 时退化为普通矩形边框
func (r *EbitenRenderer) DrawRoundedOutline(rect utils.Rect, cornerRadius float64, segments int, thickness float64, clr color.Color) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	if cornerRadius <= 0 {
		vector.StrokeRect(r.screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), float32(thickness), clr, true)
		return
	}

	points := RoundedRectOutline(rect, cornerRadius, segments)
	for i := range points {
		p0 := points[i]
		p1 := points[(i+1)%len(points)]
		vector.StrokeLine(r.screen, float32(p0[0]), float32(p0[1]), float32(p1[0]), float32(p1[1]), float32(thickness), clr, true)
	}
}

// MeasureText 测量文字宽度
func (r *EbitenRenderer) MeasureText(str string, fontSize int) float64 {
	width, _ := text.Measure(str, r.fonts.Face(fontSize), 0)
	return width
}

// DrawText 绘制文字
func (r *EbitenRenderer) DrawText(str string, x, y float64, fontSize int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(r.screen, str, r.fonts.Face(fontSize), op)
}

// DrawImage 绘制图片
func (r *EbitenRenderer) DrawImage(img *ebiten.Image, x, y, scale float64, tint color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(tint)
	op.Filter = ebiten.FilterLinear
	r.screen.DrawImage(img, op)
}

// RoundedRectOutline 计算圆角矩形边框的折线顶点（顺时针，首尾相连）
//
// 参数：
//   - rect: 矩形区域
//   - radius: 圆角半径，会被限制在短边的一半以内
//   - segments: 每个圆角的分段数（最少 1）
func RoundedRectOutline(rect utils.Rect, radius float64, segments int) [][2]float64 {
	if segments < 1 {
		segments = 1
	}
	radius = math.Min(radius, math.Min(rect.Width, rect.Height)/2)

	// 四个圆角的圆心与起始角度（左上、右上、右下、左下）
	corners := [4]struct {
		cx, cy float64
		start  float64
	}{
		{rect.X + radius, rect.Y + radius, math.Pi},
		{rect.X + rect.Width - radius, rect.Y + radius, 1.5 * math.Pi},
		{rect.X + rect.Width - radius, rect.Y + rect.Height - radius, 0},
		{rect.X + radius, rect.Y + rect.Height - radius, 0.5 * math.Pi},
	}

	points := make([][2]float64, 0, 4*(segments+1))
	for _, c := range corners {
		for i := 0; i <= segments; i++ {
			angle := c.start + (math.Pi/2)*float64(i)/float64(segments)
			points = append(points, [2]float64{
				c.cx + radius*math.Cos(angle),
				c.cy + radius*math.Sin(angle),
			})
		}
	}
	return points
}
