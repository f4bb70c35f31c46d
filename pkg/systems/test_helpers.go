package systems

import (
	"image/color"

	"github.com/decker502/explora/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// MockInputSource 测试用的可编程输入源
// 测试代码直接修改字段模拟每一帧的输入
type MockInputSource struct {
	X, Y         float64
	Down         bool
	JustPressed  bool
	Released     bool
	Shift        bool
	Keys         map[ebiten.Key]bool
	DeltaSeconds float64
}

// NewMockInputSource 创建输入源（60 FPS 帧时长）
func NewMockInputSource() *MockInputSource {
	return &MockInputSource{
		Keys:         make(map[ebiten.Key]bool),
		DeltaSeconds: 1.0 / 60.0,
	}
}

// PressKeys 设置本帧刚按下的按键（清空上一帧的按键）
func (m *MockInputSource) PressKeys(keys ...ebiten.Key) {
	m.Keys = make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		m.Keys[k] = true
	}
}

// ClearEdges 清除所有边沿事件（刚按下、刚释放、按键）
func (m *MockInputSource) ClearEdges() {
	m.JustPressed = false
	m.Released = false
	m.Keys = make(map[ebiten.Key]bool)
}

func (m *MockInputSource) PointerPosition() (float64, float64) { return m.X, m.Y }
func (m *MockInputSource) IsPrimaryButtonDown() bool            { return m.Down }
func (m *MockInputSource) IsPrimaryButtonJustPressed() bool     { return m.JustPressed }
func (m *MockInputSource) IsPrimaryButtonReleased() bool        { return m.Released }
func (m *MockInputSource) IsKeyJustPressed(key ebiten.Key) bool { return m.Keys[key] }
func (m *MockInputSource) FrameDeltaSeconds() float64           { return m.DeltaSeconds }

func (m *MockInputSource) IsModifierHeld(mod utils.Modifier) bool {
	return mod == utils.ModifierShift && m.Shift
}

// DrawCall 一次绘制调用的记录
type DrawCall struct {
	Op       string // "fill" / "outline" / "text" / "image"
	Rect     utils.Rect
	Text     string
	FontSize int
	Color    color.Color
	Scale    float64
	Image    *ebiten.Image
}

// RecordingRenderer 记录所有绘制调用的 Renderer（测试用）
// 文字宽度按每字符 CharWidth 像素估算
type RecordingRenderer struct {
	Calls     []DrawCall
	CharWidth float64
}

// NewRecordingRenderer 创建记录器
func NewRecordingRenderer() *RecordingRenderer {
	return &RecordingRenderer{CharWidth: 10}
}

func (r *RecordingRenderer) FillRect(x, y, width, height float64, clr color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: "fill", Rect: utils.NewRect(x, y, width, height), Color: clr})
}

func (r *RecordingRenderer) DrawRoundedOutline(rect utils.Rect, cornerRadius float64, segments int, thickness float64, clr color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: "outline", Rect: rect, Color: clr, Scale: thickness})
}

func (r *RecordingRenderer) MeasureText(str string, fontSize int) float64 {
	return float64(len([]rune(str))) * r.CharWidth
}

func (r *RecordingRenderer) DrawText(str string, x, y float64, fontSize int, clr color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: "text", Rect: utils.NewRect(x, y, 0, 0), Text: str, FontSize: fontSize, Color: clr})
}

func (r *RecordingRenderer) DrawImage(img *ebiten.Image, x, y, scale float64, tint color.Color) {
	r.Calls = append(r.Calls, DrawCall{Op: "image", Rect: utils.NewRect(x, y, 0, 0), Image: img, Scale: scale, Color: tint})
}

// CallsOf 返回指定类型的绘制调用
func (r *RecordingRenderer) CallsOf(op string) []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

var (
	_ utils.InputSource = (*MockInputSource)(nil)
	_ Renderer          = (*RecordingRenderer)(nil)
)
