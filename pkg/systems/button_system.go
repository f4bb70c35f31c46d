package systems

import (
	"github.com/decker502/explora/pkg/components"
	"github.com/decker502/explora/pkg/ecs"
	"github.com/decker502/explora/pkg/utils"
)

// 按钮动画参数
const (
	// ButtonHoverScaleTarget 悬停时的目标缩放倍数
	ButtonHoverScaleTarget = 1.1
	// ButtonPressOffsetTarget 按下时的目标垂直偏移（像素）
	ButtonPressOffsetTarget = 4.0

	// ButtonHoverScaleRate 缩放动画速率
	ButtonHoverScaleRate = 12.0
	// ButtonPressOffsetRate 按下动画速率
	ButtonPressOffsetRate = 15.0
	// ButtonColorTimerRate 颜色计时器速率
	ButtonColorTimerRate = 8.0
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下动画和点击检测
//
// 职责：
//   - 检测鼠标悬停（基于未缩放的逻辑边界）
//   - 每帧将缩放、按下偏移和颜色计时器逼近目标值
//   - 检测点击（在按钮内释放主按键的那一帧）
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	input         utils.InputSource
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager, input utils.InputSource) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新所有按钮实体的动画状态
func (s *ButtonSystem) Update(deltaTime float64) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		s.UpdateComponent(button, deltaTime)
	}
}

// UpdateComponent 根据当前输入更新单个按钮的动画状态
func (s *ButtonSystem) UpdateComponent(button *components.ButtonComponent, deltaTime float64) {
	mouseX, mouseY := s.input.PointerPosition()
	s.UpdateButton(button, mouseX, mouseY, s.input.IsPrimaryButtonDown(), deltaTime)
}

// UpdateButton 以显式给定的输入更新按钮动画状态
//
// 参数：
//   - mouseX, mouseY: 指针位置
//   - mouseDown: 主按键是否按住
//   - deltaTime: 本帧时长（秒）
func (s *ButtonSystem) UpdateButton(button *components.ButtonComponent, mouseX, mouseY float64, mouseDown bool, deltaTime float64) {
	isHovered := s.IsHovered(button, mouseX, mouseY)
	isPressed := isHovered && mouseDown

	// 悬停缩放
	targetScale := 1.0
	if isHovered {
		targetScale = ButtonHoverScaleTarget
	}
	button.HoverScale = utils.Approach(button.HoverScale, targetScale, deltaTime, ButtonHoverScaleRate)

	// 按下偏移
	targetOffset := 0.0
	if isPressed {
		targetOffset = ButtonPressOffsetTarget
	}
	button.PressOffset = utils.Approach(button.PressOffset, targetOffset, deltaTime, ButtonPressOffsetRate)

	// 颜色计时器
	targetTimer := 0.0
	if isHovered {
		targetTimer = 1.0
	}
	button.AnimationTimer = utils.Clamp01(utils.StepToward(button.AnimationTimer, targetTimer, deltaTime, ButtonColorTimerRate))

	button.IsPressed = isPressed

	switch {
	case isPressed:
		button.State = components.UIClicked
	case isHovered:
		button.State = components.UIHovered
	default:
		button.State = components.UINormal
	}
}

// IsHovered 检测点是否在按钮的逻辑边界内
// 使用未缩放的 Rect：点击区域不随悬停放大效果变化
func (s *ButtonSystem) IsHovered(button *components.ButtonComponent, x, y float64) bool {
	return button.Rect.Contains(x, y)
}

// IsClicked 检测按钮实体是否在本帧被点击
// 实体不存在或没有按钮组件时返回 false
func (s *ButtonSystem) IsClicked(entityID ecs.EntityID) bool {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return false
	}
	return s.IsButtonClicked(button)
}

// IsButtonClicked 检测按钮是否在本帧被点击
// 指针在按钮内且主按键本帧刚释放（释放时触发，按住期间不会重复触发）
func (s *ButtonSystem) IsButtonClicked(button *components.ButtonComponent) bool {
	mouseX, mouseY := s.input.PointerPosition()
	return s.IsHovered(button, mouseX, mouseY) && s.input.IsPrimaryButtonReleased()
}
