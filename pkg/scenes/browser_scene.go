// Package scenes 包含应用的各个场景
package scenes

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/decker502/explora/pkg/components"
	"github.com/decker502/explora/pkg/config"
	"github.com/decker502/explora/pkg/ecs"
	"github.com/decker502/explora/pkg/fetch"
	"github.com/decker502/explora/pkg/game"
	"github.com/decker502/explora/pkg/systems"
	"github.com/decker502/explora/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrorPrefix 抓取失败时写入 Body 的前缀
const ErrorPrefix = "Error: "

// defaultFetchTimeout 默认 HTTP 客户端超时
const defaultFetchTimeout = 15 * time.Second

// Session 浏览器会话状态
// 每帧由 Step 产生新的 Session
type Session struct {
	URL      string      // 地址栏中的文本
	Body     string      // 最近一次抓取的内容或失败提示
	FreshTab bool        // 尚未发起过抓取
	Pending  *fetch.Task // 进行中的抓取，没有时为 nil
	Status   string      // 一次性的状态提示，例如请求过于频繁
}

// Frame 一帧的外部输入
type Frame struct {
	WindowWidth  int
	WindowHeight int
	DeltaSeconds float64
}

// BrowserSceneConfig 浏览器场景的依赖
// 零值字段使用默认实现
type BrowserSceneConfig struct {
	// Input 输入源，nil 时使用 Ebitengine 输入
	Input utils.InputSource
	// Fetcher 页面抓取器，nil 时使用带超时的 HTTPFetcher
	Fetcher fetch.Fetcher
	// Dispatcher 调度器配置，nil 时使用 fetch.DefaultDispatcherConfig()
	Dispatcher *fetch.DispatcherConfig
	// Settings 设置管理器，nil 时使用内存设置
	Settings *game.SettingsManager
	// InitialURL 地址栏初始内容，为空时使用设置中的地址
	InitialURL string
	// WindowWidth, WindowHeight 初始窗口逻辑尺寸
	WindowWidth  int
	WindowHeight int
	// SetCursor 设置鼠标指针样式，nil 时使用 ebiten.SetCursorShape
	SetCursor func(shape ebiten.CursorShapeType)
}

// inputUpdater 需要每帧刷新的输入源
type inputUpdater interface {
	Update()
}

// BrowserScene 浏览器主界面
// 地址栏 + 抓取按钮 + 页面内容
type BrowserScene struct {
	input      utils.InputSource
	dispatcher *fetch.Dispatcher
	settings   *game.SettingsManager

	entityManager *ecs.EntityManager
	buttonID      ecs.EntityID
	textBoxID     ecs.EntityID

	button  *components.ButtonComponent
	textBox *components.TextBoxComponent
	mode    components.ButtonRenderMode
	palette components.ButtonColorPalette
	layout  config.Layout

	buttonSystem        *systems.ButtonSystem
	textBoxSystem       *systems.TextBoxSystem
	buttonRenderSystem  *systems.ButtonRenderSystem
	textBoxRenderSystem *systems.TextBoxRenderSystem

	fonts       *systems.FontCache
	newRenderer func(screen *ebiten.Image) systems.Renderer

	setCursor func(shape ebiten.CursorShapeType)
	cursor    ebiten.CursorShapeType

	session      Session
	windowWidth  int
	windowHeight int

	// drawErr Draw 中产生的错误，在下一次 Update 中返回
	drawErr error
	closed  bool
}

// NewBrowserScene 创建浏览器场景
//
// 返回：
//   - *BrowserScene: 场景实例
//   - error: 字体加载失败时返回错误
func NewBrowserScene(cfg BrowserSceneConfig) (*BrowserScene, error) {
	fonts, err := systems.NewDefaultFontCache()
	if err != nil {
		return nil, fmt.Errorf("loading ui font: %w", err)
	}

	input := cfg.Input
	if input == nil {
		input = utils.NewEbitenInputSource()
	}
	fetcher := cfg.Fetcher
	if fetcher == nil {
		httpFetcher := fetch.NewHTTPFetcher(&http.Client{Timeout: defaultFetchTimeout})
		httpFetcher.SetMaxBodyBytes(config.BodyMaxBytes)
		fetcher = httpFetcher
	}
	dispatcherConfig := fetch.DefaultDispatcherConfig()
	if cfg.Dispatcher != nil {
		dispatcherConfig = *cfg.Dispatcher
	}
	settings := cfg.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}

	width, height := cfg.WindowWidth, cfg.WindowHeight
	if width <= 0 || height <= 0 {
		width, height = config.DefaultWindowWidth, config.DefaultWindowHeight
	}
	layout := config.CalculateLayout(width, height)

	button := components.NewButtonComponent(
		layout.Button.X, layout.Button.Y, layout.Button.Width, layout.Button.Height,
		config.ButtonLabel, config.ButtonFontSize,
	)
	textBox := components.NewTextBoxComponent(
		layout.TextBox, config.URLPlaceholder, config.URLTextSize,
		config.URLMaxLength, config.URLSpacesAllowed,
	)

	em := ecs.NewEntityManager()
	buttonID := em.CreateEntity()
	em.AddComponent(buttonID, button)
	textBoxID := em.CreateEntity()
	em.AddComponent(textBoxID, textBox)

	setCursor := cfg.SetCursor
	if setCursor == nil {
		setCursor = ebiten.SetCursorShape
	}

	initialURL := cfg.InitialURL
	if initialURL == "" {
		initialURL = settings.StartURL()
	}
	if runes := []rune(initialURL); len(runes) > config.URLMaxLength {
		initialURL = string(runes[:config.URLMaxLength])
	}

	s := &BrowserScene{
		input:      input,
		dispatcher: fetch.NewDispatcher(fetcher, dispatcherConfig),
		settings:   settings,

		entityManager: em,
		buttonID:      buttonID,
		textBoxID:     textBoxID,

		button:  button,
		textBox: textBox,
		mode:    components.ButtonTextMode{},
		palette: components.ButtonColorPalette{
			Main:    config.ButtonMainColor,
			Outline: config.ButtonOutlineColor,
			Text:    config.ButtonTextColor,
		},
		layout: layout,

		buttonSystem:        systems.NewButtonSystem(em, input),
		textBoxSystem:       systems.NewTextBoxSystem(em, input),
		buttonRenderSystem:  systems.NewButtonRenderSystem(),
		textBoxRenderSystem: systems.NewTextBoxRenderSystem(),

		fonts: fonts,

		setCursor: setCursor,
		cursor:    ebiten.CursorShapeDefault,

		session:      Session{URL: initialURL, FreshTab: true},
		windowWidth:  width,
		windowHeight: height,
	}
	s.newRenderer = func(screen *ebiten.Image) systems.Renderer {
		return systems.NewEbitenRenderer(screen, s.fonts)
	}

	log.Printf("[BrowserScene] 场景创建完成，窗口 %dx%d，初始地址 %q", width, height, initialURL)
	return s, nil
}

// Session 返回当前会话状态
func (s *BrowserScene) Session() Session {
	return s.session
}

// SetButtonMode 设置按钮的绘制模式
func (s *BrowserScene) SetButtonMode(mode components.ButtonRenderMode) {
	s.mode = mode
}

// Resize 记录窗口逻辑尺寸，下一帧重新计算布局
func (s *BrowserScene) Resize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// Update 推进一帧
// 上一次 Draw 失败时返回该错误
func (s *BrowserScene) Update(deltaTime float64) error {
	if s.drawErr != nil {
		return s.drawErr
	}
	if s.closed {
		return nil
	}

	if u, ok := s.input.(inputUpdater); ok {
		u.Update()
	}
	if deltaTime <= 0 {
		deltaTime = s.input.FrameDeltaSeconds()
	}

	s.session = s.Step(s.session, Frame{
		WindowWidth:  s.windowWidth,
		WindowHeight: s.windowHeight,
		DeltaSeconds: deltaTime,
	})
	return nil
}

// Step 根据本帧输入计算新的会话状态
// 会更新控件的布局和动画状态
func (s *BrowserScene) Step(session Session, frame Frame) Session {
	s.layout = config.CalculateLayout(frame.WindowWidth, frame.WindowHeight)
	s.button.Rect = s.layout.Button
	s.textBox.Rect = s.layout.TextBox

	s.buttonSystem.Update(frame.DeltaSeconds)
	s.textBoxSystem.Update()
	session.URL = s.textBoxSystem.Input(s.textBoxID, session.URL)
	s.updateCursor()

	if s.buttonSystem.IsClicked(s.buttonID) {
		session = s.dispatch(session)
	}

	return s.pollPending(session)
}

// updateCursor 根据控件状态切换鼠标指针样式，样式不变时不重复设置
func (s *BrowserScene) updateCursor() {
	shape := ebiten.CursorShapeDefault
	switch {
	case s.button.State != components.UINormal:
		shape = ebiten.CursorShapePointer
	case s.textBoxSystem.IsHovered(s.textBox):
		shape = ebiten.CursorShapeText
	}
	if shape != s.cursor {
		s.cursor = shape
		s.setCursor(shape)
	}
}

// dispatch 发起对地址栏地址的抓取
func (s *BrowserScene) dispatch(session Session) Session {
	session.FreshTab = false
	session.Status = ""

	url := strings.TrimSpace(session.URL)
	if url == "" {
		log.Printf("[BrowserScene] 地址为空，忽略点击")
		return session
	}

	// 新请求替换旧请求，旧请求被取消
	task, err := s.dispatcher.Replace(session.Pending, url)
	if err != nil {
		session.Status = err.Error()
		log.Printf("[BrowserScene] 抓取未发起: %v", err)
		return session
	}

	if session.Pending != nil {
		log.Printf("[BrowserScene] 请求 %s 被 %s 替换", session.Pending.URL(), task.URL())
	}
	session.Pending = task
	return session
}

// pollPending 非阻塞地检查进行中的抓取
func (s *BrowserScene) pollPending(session Session) Session {
	if session.Pending == nil {
		return session
	}
	res, ok := session.Pending.Poll()
	if !ok {
		return session
	}

	session.Pending = nil
	if res.Err != nil {
		session.Body = ErrorPrefix + res.Err.Error()
		return session
	}

	session.Body = res.Body
	s.settings.SetLastURL(res.URL)
	return session
}

// Draw 绘制场景
// 绘制错误在下一次 Update 中返回
func (s *BrowserScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.drawWith(s.newRenderer(screen))
}

// drawWith 使用指定的渲染器绘制全部控件
func (s *BrowserScene) drawWith(r systems.Renderer) {
	if err := s.render(r); err != nil && s.drawErr == nil {
		log.Printf("[BrowserScene] 绘制失败: %v", err)
		s.drawErr = err
	}
}

func (s *BrowserScene) render(r systems.Renderer) error {
	s.textBoxRenderSystem.DrawTextBox(r, s.textBox, s.session.URL)

	if err := s.buttonRenderSystem.DrawButton(r, s.button, s.mode, s.palette); err != nil {
		return fmt.Errorf("drawing button: %w", err)
	}

	s.drawBody(r)
	return nil
}

// drawBody 绘制页面内容区域
func (s *BrowserScene) drawBody(r systems.Renderer) {
	body := s.layout.Body
	measure := func(str string) float64 { return r.MeasureText(str, config.BodyTextSize) }
	lines := BodyLines(s.session, config.BodyVisibleLines(body), body.Width, measure)

	clr := config.BodyTextColor
	switch {
	case s.session.Pending != nil || s.session.FreshTab:
		clr = config.StatusTextColor
	case strings.HasPrefix(s.session.Body, ErrorPrefix):
		clr = config.ErrorTextColor
	}
	for i, line := range lines {
		r.DrawText(line, body.X, body.Y+float64(i)*config.BodyLineHeight, config.BodyTextSize, clr)
	}

	if s.session.Status != "" && body.Height >= config.BodyLineHeight {
		r.DrawText(s.session.Status, body.X, body.Y+body.Height-config.BodyLineHeight, config.BodyTextSize, config.ErrorTextColor)
	}
}

// BodyLines 内容区域要显示的文本行
// 请求进行中显示加载提示，新标签页显示欢迎提示，
// 否则将内容按 maxWidth 换行后取前 maxLines 行（measure 为 nil 时不换行）
func BodyLines(session Session, maxLines int, maxWidth float64, measure utils.MeasureFunc) []string {
	if maxLines <= 0 {
		return nil
	}
	switch {
	case session.Pending != nil:
		return []string{config.LoadingText}
	case session.FreshTab:
		return []string{config.FreshTabText}
	case session.Body == "":
		return nil
	}

	var lines []string
	for _, raw := range strings.Split(strings.ReplaceAll(session.Body, "\r\n", "\n"), "\n") {
		lines = append(lines, utils.WrapText(raw, measure, maxWidth)...)
		if len(lines) >= maxLines {
			return lines[:maxLines]
		}
	}
	return lines
}

// Close 取消进行中的抓取
// 被取消的任务不会再修改会话状态
func (s *BrowserScene) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.session.Pending.Cancel()
	s.session.Pending = nil

	if err := s.dispatcher.Close(); err != nil {
		return fmt.Errorf("closing dispatcher: %w", err)
	}
	log.Printf("[BrowserScene] 场景已关闭")
	return nil
}

// SaveOnExit 保存窗口尺寸和最近访问的地址
func (s *BrowserScene) SaveOnExit() bool {
	s.settings.SetWindowSize(s.windowWidth, s.windowHeight)
	if err := s.settings.Save(); err != nil {
		log.Printf("[BrowserScene] 保存设置失败: %v", err)
		return false
	}
	return true
}

var (
	_ game.Scene     = (*BrowserScene)(nil)
	_ game.Saveable  = (*BrowserScene)(nil)
	_ game.Closer    = (*BrowserScene)(nil)
	_ game.Resizable = (*BrowserScene)(nil)
)
