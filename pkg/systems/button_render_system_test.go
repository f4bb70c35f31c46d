package systems

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/decker502/explora/pkg/components"
	"github.com/decker502/explora/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

var testPalette = components.ButtonColorPalette{
	Main:    color.RGBA{200, 200, 200, 255},
	Outline: color.RGBA{0, 0, 0, 255},
	Text:    color.RGBA{20, 20, 20, 255},
}

// TestButtonRenderSystem_TextModeDrawOrder 文字模式：阴影 → 主体 → 边框 → 文字阴影 → 文字
func TestButtonRenderSystem_TextModeDrawOrder(t *testing.T) {
	s := NewButtonRenderSystem()
	r := NewRecordingRenderer()
	button := newTestButton()

	if err := s.DrawButton(r, button, components.ButtonTextMode{}, testPalette); err != nil {
		t.Fatalf("DrawButton error: %v", err)
	}

	wantOps := []string{"fill", "fill", "outline", "text", "text"}
	if len(r.Calls) != len(wantOps) {
		t.Fatalf("got %d draw calls, want %d: %+v", len(r.Calls), len(wantOps), r.Calls)
	}
	for i, op := range wantOps {
		if r.Calls[i].Op != op {
			t.Errorf("call %d: op %q, want %q", i, r.Calls[i].Op, op)
		}
	}

	// 阴影偏移 4 像素
	shadow := r.Calls[0]
	if shadow.Rect != utils.NewRect(4, 24, 100, 50) {
		t.Errorf("shadow rect = %+v", shadow.Rect)
	}
	if shadow.Color != (color.RGBA{0, 0, 0, 40}) {
		t.Errorf("shadow color = %v", shadow.Color)
	}

	// 静止状态下主体颜色即 palette.Main
	if r.Calls[1].Color != testPalette.Main {
		t.Errorf("body color = %v, want %v", r.Calls[1].Color, testPalette.Main)
	}
	if r.Calls[2].Color != testPalette.Outline || r.Calls[2].Scale != 5.0 {
		t.Errorf("outline = %+v", r.Calls[2])
	}

	// 文字居中："explora" 7 个字符 × 10 = 70 像素
	label := r.Calls[4]
	if label.Text != "explora" || label.Color != testPalette.Text {
		t.Errorf("label call = %+v", label)
	}
	if label.Rect.X != 15 || label.Rect.Y != 35 {
		t.Errorf("label position = (%v, %v), want (15, 35)", label.Rect.X, label.Rect.Y)
	}
	textShadow := r.Calls[3]
	if textShadow.Rect.X != 16 || textShadow.Rect.Y != 36 || textShadow.Color != (color.RGBA{0, 0, 0, 30}) {
		t.Errorf("text shadow call = %+v", textShadow)
	}
}

// TestButtonRenderSystem_NoShadowWhenPressed 按下时不绘制阴影
func TestButtonRenderSystem_NoShadowWhenPressed(t *testing.T) {
	s := NewButtonRenderSystem()
	r := NewRecordingRenderer()
	button := newTestButton()
	button.IsPressed = true
	button.PressOffset = 4

	if err := s.DrawButton(r, button, components.ButtonTextMode{}, testPalette); err != nil {
		t.Fatalf("DrawButton error: %v", err)
	}

	fills := r.CallsOf("fill")
	if len(fills) != 1 {
		t.Fatalf("got %d fills, want 1 (body only)", len(fills))
	}
	// 主体向下偏移 4 像素
	if fills[0].Rect.Y != 24 {
		t.Errorf("body Y = %v, want 24", fills[0].Rect.Y)
	}
}

// TestButtonRenderSystem_ScaledRect 悬停放大以中心为基准
func TestButtonRenderSystem_ScaledRect(t *testing.T) {
	s := NewButtonRenderSystem()
	button := newTestButton()
	button.HoverScale = 1.1
	button.PressOffset = 2

	rect := s.DrawRect(button)
	want := utils.NewRect(-5, 19.5, 110, 55)
	if math.Abs(rect.X-want.X) > 1e-9 || math.Abs(rect.Y-want.Y) > 1e-9 ||
		math.Abs(rect.Width-want.Width) > 1e-9 || math.Abs(rect.Height-want.Height) > 1e-9 {
		t.Errorf("DrawRect = %+v, want %+v", rect, want)
	}

	// 绘制不修改状态
	before := *button
	if err := s.DrawButton(NewRecordingRenderer(), button, components.ButtonTextMode{}, testPalette); err != nil {
		t.Fatalf("DrawButton error: %v", err)
	}
	if *button != before {
		t.Errorf("DrawButton mutated the button: %+v -> %+v", before, *button)
	}
}

// TestButtonRenderSystem_ImageMode 图片模式：居中绘制缩放后的图片
func TestButtonRenderSystem_ImageMode(t *testing.T) {
	s := NewButtonRenderSystem()
	r := NewRecordingRenderer()
	button := newTestButton()
	img := ebiten.NewImage(20, 10)

	mode := components.ButtonImageMode{Image: img, Scale: 2}
	if err := s.DrawButton(r, button, mode, testPalette); err != nil {
		t.Fatalf("DrawButton error: %v", err)
	}

	if len(r.CallsOf("text")) != 0 {
		t.Error("image mode should not draw the label")
	}
	images := r.CallsOf("image")
	if len(images) != 1 {
		t.Fatalf("got %d image calls, want 1", len(images))
	}
	// 中心 (50, 45)，图片 40x20
	if images[0].Rect.X != 30 || images[0].Rect.Y != 35 || images[0].Scale != 2 || images[0].Image != img {
		t.Errorf("image call = %+v", images[0])
	}
}

// TestButtonRenderSystem_ImageModeWithoutImage 缺少图片时立即报错且不绘制
func TestButtonRenderSystem_ImageModeWithoutImage(t *testing.T) {
	s := NewButtonRenderSystem()
	r := NewRecordingRenderer()

	err := s.DrawButton(r, newTestButton(), components.ButtonImageMode{Scale: 1}, testPalette)
	if !errors.Is(err, ErrButtonImageMissing) {
		t.Fatalf("err = %v, want ErrButtonImageMissing", err)
	}
	if len(r.Calls) != 0 {
		t.Errorf("expected no draw calls, got %d", len(r.Calls))
	}
}

// TestButtonRenderSystem_NilMode 未指定渲染方式
func TestButtonRenderSystem_NilMode(t *testing.T) {
	s := NewButtonRenderSystem()
	err := s.DrawButton(NewRecordingRenderer(), newTestButton(), nil, testPalette)
	if !errors.Is(err, ErrUnknownRenderMode) {
		t.Fatalf("err = %v, want ErrUnknownRenderMode", err)
	}
}

// TestHoverBlend 悬停颜色混合
func TestHoverBlend(t *testing.T) {
	button := newTestButton()

	if got := HoverBlend(button, testPalette); got != testPalette.Main {
		t.Errorf("timer 0: got %v, want %v", got, testPalette.Main)
	}

	button.AnimationTimer = 1.0
	got := HoverBlend(button, testPalette)
	// 200 + (255-200)*0.25 = 213.75 → 214
	if got.R != 214 || got.G != 214 || got.B != 214 || got.A != 255 {
		t.Errorf("timer 1: got %v", got)
	}
}

// TestRoundedRectOutline 圆角折线顶点
func TestRoundedRectOutline(t *testing.T) {
	rect := utils.NewRect(0, 0, 100, 50)
	points := RoundedRectOutline(rect, 10, 4)

	if len(points) != 4*5 {
		t.Fatalf("got %d points, want 20", len(points))
	}
	for i, p := range points {
		if p[0] < -1e-9 || p[0] > 100+1e-9 || p[1] < -1e-9 || p[1] > 50+1e-9 {
			t.Errorf("point %d (%v) outside rect", i, p)
		}
	}
	// 第一段从左边 (0, 10) 开始，到顶边 (10, 0) 结束
	if math.Abs(points[0][0]) > 1e-9 || math.Abs(points[0][1]-10) > 1e-9 {
		t.Errorf("first point = %v, want (0, 10)", points[0])
	}
	if math.Abs(points[4][0]-10) > 1e-9 || math.Abs(points[4][1]) > 1e-9 {
		t.Errorf("fifth point = %v, want (10, 0)", points[4])
	}

	// 半径超过短边一半时被限制
	clamped := RoundedRectOutline(utils.NewRect(0, 0, 20, 10), 50, 1)
	for _, p := range clamped {
		if p[1] < -1e-9 || p[1] > 10+1e-9 {
			t.Errorf("clamped point %v outside rect", p)
		}
	}
}
