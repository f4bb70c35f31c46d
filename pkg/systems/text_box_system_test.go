package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/explora/pkg/components"
	"github.com/decker502/explora/pkg/ecs"
	"github.com/decker502/explora/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

func newTestTextBox() *components.TextBoxComponent {
	return components.NewTextBoxComponent(utils.NewRect(10, 20, 300, 50), "Enter URL", 20, 6, false)
}

// TestTextBoxSystem_FocusTransitions 焦点状态机
func TestTextBoxSystem_FocusTransitions(t *testing.T) {
	input := NewMockInputSource()
	system := NewTextBoxSystem(ecs.NewEntityManager(), input)
	box := newTestTextBox()

	steps := []struct {
		name        string
		x, y        float64
		justPressed bool
		wantActive  bool
	}{
		{"初始无点击", 50, 40, false, false},
		{"框外点击保持无焦点", 500, 500, true, false},
		{"框内点击获得焦点", 50, 40, true, true},
		{"悬停不改变焦点", 50, 40, false, true},
		{"多帧保持焦点", 600, 10, false, true},
		{"框内再次点击无变化", 20, 30, true, true},
		{"框外点击失去焦点", 600, 10, true, false},
		{"右边界属于框外", 310, 40, true, false},
	}

	for _, step := range steps {
		input.X, input.Y = step.x, step.y
		input.JustPressed = step.justPressed
		system.UpdateFocus(box)
		if box.Active != step.wantActive {
			t.Errorf("%s: Active = %v, want %v", step.name, box.Active, step.wantActive)
		}
	}
}

// TestTextBoxSystem_ClickTests 点击检测基于按下沿而非释放
func TestTextBoxSystem_ClickTests(t *testing.T) {
	input := NewMockInputSource()
	system := NewTextBoxSystem(ecs.NewEntityManager(), input)
	box := newTestTextBox()

	input.X, input.Y = 50, 40
	input.Released = true
	if system.IsClicked(box) {
		t.Error("release inside should not count as a text box click")
	}

	input.Released = false
	input.JustPressed = true
	if !system.IsClicked(box) || system.IsNotClicked(box) {
		t.Error("press inside: want IsClicked=true, IsNotClicked=false")
	}

	input.X, input.Y = 0, 0
	if system.IsClicked(box) || !system.IsNotClicked(box) {
		t.Error("press outside: want IsClicked=false, IsNotClicked=true")
	}
}

// TestTextBoxSystem_InputRequiresFocus 无焦点时不修改文本
func TestTextBoxSystem_InputRequiresFocus(t *testing.T) {
	input := NewMockInputSource()
	system := NewTextBoxSystem(ecs.NewEntityManager(), input)
	box := newTestTextBox()

	input.PressKeys(ebiten.KeyA, ebiten.KeyBackspace)
	if got := system.ApplyInput(box, "xyz"); got != "xyz" {
		t.Errorf("inactive Input = %q, want unchanged", got)
	}

	box.Active = true
	if got := system.ApplyInput(box, "xyz"); got != "xya" {
		t.Errorf("active Input = %q, want %q", got, "xya")
	}
}

// TestTextBoxSystem_TypingSequence 逐帧输入
func TestTextBoxSystem_TypingSequence(t *testing.T) {
	input := NewMockInputSource()
	system := NewTextBoxSystem(ecs.NewEntityManager(), input)
	box := newTestTextBox()
	box.Active = true

	text := ""
	frames := []struct {
		keys  []ebiten.Key
		shift bool
	}{
		{[]ebiten.Key{ebiten.KeyH}, true},
		{[]ebiten.Key{ebiten.KeyI}, false},
		{[]ebiten.Key{ebiten.KeySpace}, false}, // 不允许空格
		{[]ebiten.Key{ebiten.KeySemicolon}, true},
		{[]ebiten.Key{ebiten.KeySlash}, true},
		{[]ebiten.Key{ebiten.KeyDigit4}, true},
		{[]ebiten.Key{ebiten.KeyDigit2}, false},
		{[]ebiten.Key{ebiten.KeyZ}, false}, // 超出最大长度 6
	}
	for _, f := range frames {
		input.PressKeys(f.keys...)
		input.Shift = f.shift
		text = system.ApplyInput(box, text)
	}

	if text != "Hi:/42" {
		t.Errorf("text = %q, want %q", text, "Hi:/42")
	}

	input.PressKeys(ebiten.KeyBackspace)
	input.Shift = false
	text = system.ApplyInput(box, text)
	if text != "Hi:/4" {
		t.Errorf("after backspace text = %q", text)
	}
}

// TestTextBoxSystem_Entities 验证按实体更新焦点与输入
func TestTextBoxSystem_Entities(t *testing.T) {
	em := ecs.NewEntityManager()
	boxID := em.CreateEntity()
	box := newTestTextBox()
	em.AddComponent(boxID, box)

	input := NewMockInputSource()
	system := NewTextBoxSystem(em, input)

	input.X, input.Y = 50, 40
	input.JustPressed = true
	system.Update()
	if !box.Active {
		t.Fatal("click inside should focus the text box entity")
	}
	if !system.IsHovered(box) {
		t.Error("pointer inside should hover the text box")
	}

	input.JustPressed = false
	input.PressKeys(ebiten.KeyA)
	if got := system.Input(boxID, ""); got != "a" {
		t.Errorf("Input(entity) = %q, want %q", got, "a")
	}
	if got := system.Input(ecs.EntityID(42), "keep"); got != "keep" {
		t.Errorf("Input(unknown entity) = %q, want unchanged", got)
	}
}

// TestTextBoxRenderSystem_Background 背景透明度随焦点变化
func TestTextBoxRenderSystem_Background(t *testing.T) {
	s := NewTextBoxRenderSystem()
	box := newTestTextBox()

	if got := s.BackgroundColor(box); got != (color.RGBA{50, 50, 50, 200}) {
		t.Errorf("inactive background = %v", got)
	}
	box.Active = true
	if got := s.BackgroundColor(box); got != (color.RGBA{50, 50, 50, 100}) {
		t.Errorf("active background = %v", got)
	}
}

// TestTextBoxRenderSystem_PlaceholderVsText 占位符与实际文本
func TestTextBoxRenderSystem_PlaceholderVsText(t *testing.T) {
	s := NewTextBoxRenderSystem()
	box := newTestTextBox()

	r := NewRecordingRenderer()
	s.DrawTextBox(r, box, "")
	texts := r.CallsOf("text")
	if len(texts) != 1 || texts[0].Text != "Enter URL" || texts[0].Color != (color.RGBA{130, 130, 130, 255}) {
		t.Fatalf("empty text should draw the placeholder, got %+v", texts)
	}
	// 左对齐 +10，垂直居中
	if texts[0].Rect.X != 20 || texts[0].Rect.Y != 35 {
		t.Errorf("text position = (%v, %v), want (20, 35)", texts[0].Rect.X, texts[0].Rect.Y)
	}

	r = NewRecordingRenderer()
	s.DrawTextBox(r, box, "abc")
	texts = r.CallsOf("text")
	if len(texts) != 1 || texts[0].Text != "abc" || texts[0].Color != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("live text draw = %+v", texts)
	}

	fills := r.CallsOf("fill")
	if len(fills) != 1 || fills[0].Rect != box.Rect {
		t.Errorf("background fill = %+v", fills)
	}
}
