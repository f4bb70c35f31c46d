// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：创建设置存储、浏览器场景和场景管理器，
// 并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/explora/pkg/fetch"
	"github.com/decker502/explora/pkg/game"
	"github.com/decker502/explora/pkg/scenes"
	"github.com/decker502/explora/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "explora"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// URL 地址栏初始地址，为空时使用上次保存的地址
	URL string
	// SetHome 将 URL 保存为主页，之后无 URL 启动时使用主页
	SetHome bool
	// Width, Height 窗口尺寸，非正值时使用保存的尺寸
	Width  int
	Height int

	// Fetcher 页面抓取器，nil 时使用 HTTP 抓取
	Fetcher fetch.Fetcher
	// Storage 设置存储，nil 时打开 gdata，打开失败则进入内存模式
	Storage *gdata.Manager
}

// App 应用包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	verbose      bool

	width  int
	height int
}

// NewApp 创建并初始化应用
//
// 返回：
//   - *App: 应用实例
//   - error: 场景创建失败时返回错误
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	} else {
		log.SetOutput(os.Stderr)
	}

	storage := cfg.Storage
	if storage == nil {
		if err := utils.EnsureStorageDir(); err != nil {
			log.Printf("[App] Warning: storage dir not ready: %v", err)
		}
		var err error
		storage, err = gdata.Open(gdata.Config{AppName: AppName})
		if err != nil {
			log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
			storage = nil
		}
	}
	settings := game.NewSettingsManager(storage)
	if cfg.SetHome && cfg.URL != "" {
		settings.SetHomeURL(cfg.URL)
		if err := settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save home URL: %v", err)
		}
		log.Printf("[App] Home URL set to %q", cfg.URL)
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width = settings.GetSettings().WindowWidth
		height = settings.GetSettings().WindowHeight
	}

	scene, err := scenes.NewBrowserScene(scenes.BrowserSceneConfig{
		Fetcher:      cfg.Fetcher,
		Settings:     settings,
		InitialURL:   cfg.URL,
		WindowWidth:  width,
		WindowHeight: height,
	})
	if err != nil {
		return nil, fmt.Errorf("创建浏览器场景失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)
	log.Printf("[App] Started with window %dx%d", width, height)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
		width:        width,
		height:       height,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	return a.sceneManager.Update(frameDeltaSeconds())
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑屏幕尺寸跟随窗口尺寸，控件按窗口宽度重新锚定
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != a.width || outsideHeight != a.height) {
		a.width, a.height = outsideWidth, outsideHeight
		a.sceneManager.Resize(outsideWidth, outsideHeight)
	}
	return a.width, a.height
}

// WindowSize 初始窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.width, a.height
}

// Shutdown 退出前保存设置并取消后台请求
func (a *App) Shutdown() bool {
	return a.sceneManager.Shutdown()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// frameDeltaSeconds 一帧的时长，TPS 不可用时按 60 计算
func frameDeltaSeconds() float64 {
	if tps := ebiten.TPS(); tps > 0 {
		return 1.0 / float64(tps)
	}
	return 1.0 / 60.0
}
