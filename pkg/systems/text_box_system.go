package systems

import (
	"log"

	"github.com/decker502/explora/pkg/components"
	"github.com/decker502/explora/pkg/ecs"
	"github.com/decker502/explora/pkg/utils"
)

// TextBoxSystem 文本输入框系统
// 处理输入框的焦点切换和键盘输入
//
// 焦点在主按键按下时切换（与按钮的释放触发不同）：
//   - 在输入框内按下 → 获得焦点
//   - 在输入框外按下 → 失去焦点
type TextBoxSystem struct {
	entityManager *ecs.EntityManager
	input         utils.InputSource
}

// NewTextBoxSystem 创建文本输入框系统
func NewTextBoxSystem(em *ecs.EntityManager, input utils.InputSource) *TextBoxSystem {
	return &TextBoxSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新所有输入框实体的焦点
// 同一次点击只会让被点中的输入框获得焦点
func (s *TextBoxSystem) Update() {
	for _, entityID := range ecs.GetEntitiesWith1[*components.TextBoxComponent](s.entityManager) {
		box, _ := ecs.GetComponent[*components.TextBoxComponent](s.entityManager, entityID)
		s.UpdateFocus(box)
	}
}

// Input 将本帧键盘输入应用到输入框实体上
// 实体不存在时文本保持不变
func (s *TextBoxSystem) Input(entityID ecs.EntityID, text string) string {
	box, ok := ecs.GetComponent[*components.TextBoxComponent](s.entityManager, entityID)
	if !ok {
		return text
	}
	return s.ApplyInput(box, text)
}

// IsHovered 检测指针是否在输入框内
func (s *TextBoxSystem) IsHovered(box *components.TextBoxComponent) bool {
	x, y := s.input.PointerPosition()
	return box.Rect.Contains(x, y)
}

// IsClicked 检测本帧是否在输入框内按下主按键
func (s *TextBoxSystem) IsClicked(box *components.TextBoxComponent) bool {
	x, y := s.input.PointerPosition()
	return box.Rect.Contains(x, y) && s.input.IsPrimaryButtonJustPressed()
}

// IsNotClicked 检测本帧是否在输入框外按下主按键
func (s *TextBoxSystem) IsNotClicked(box *components.TextBoxComponent) bool {
	x, y := s.input.PointerPosition()
	return !box.Rect.Contains(x, y) && s.input.IsPrimaryButtonJustPressed()
}

// UpdateFocus 根据本帧的点击更新焦点状态
func (s *TextBoxSystem) UpdateFocus(box *components.TextBoxComponent) {
	if s.IsClicked(box) {
		if !box.Active {
			log.Printf("[TextBoxSystem] 输入框获得焦点")
		}
		box.Active = true
		return
	}

	if s.IsNotClicked(box) {
		if box.Active {
			log.Printf("[TextBoxSystem] 输入框失去焦点")
		}
		box.Active = false
	}
}

// ApplyInput 将本帧键盘输入应用到外部持有的文本上，返回新文本
// 输入框没有焦点时文本保持不变
func (s *TextBoxSystem) ApplyInput(box *components.TextBoxComponent, text string) string {
	if !box.Active {
		return text
	}
	shift := s.input.IsModifierHeld(utils.ModifierShift)
	return utils.ApplyKeyInput(text, s.input.IsKeyJustPressed, shift, box.Policy())
}
