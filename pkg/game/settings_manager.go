package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// BrowserSettings 持久化的浏览器设置
type BrowserSettings struct {
	HomeURL string `yaml:"homeURL"` // 启动时默认打开的地址
	LastURL string `yaml:"lastURL"` // 最近一次成功抓取的地址

	WindowWidth  int `yaml:"windowWidth"`  // 上次退出时的窗口宽度
	WindowHeight int `yaml:"windowHeight"` // 上次退出时的窗口高度
}

// 默认窗口尺寸，与 config.DefaultWindowWidth/Height 一致
const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
)

// DefaultSettings 返回默认设置
func DefaultSettings() *BrowserSettings {
	return &BrowserSettings{
		WindowWidth:  defaultWindowWidth,
		WindowHeight: defaultWindowHeight,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *BrowserSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "browser"
)

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
// 加载失败时使用默认设置并记录日志
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或数据不存在时使用默认设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	normalizeSettings(loaded)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// 降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// IsPersistent 是否能够持久化设置
func (sm *SettingsManager) IsPersistent() bool {
	return sm.gdataManager != nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *BrowserSettings {
	return sm.settings
}

// SetLastURL 记录最近一次成功抓取的地址
// 注意：仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetLastURL(url string) {
	sm.settings.LastURL = url
}

// SetHomeURL 设置启动地址
func (sm *SettingsManager) SetHomeURL(url string) {
	sm.settings.HomeURL = url
}

// SetWindowSize 记录窗口尺寸，非正值被替换为默认尺寸
func (sm *SettingsManager) SetWindowSize(width, height int) {
	sm.settings.WindowWidth = width
	sm.settings.WindowHeight = height
	normalizeSettings(sm.settings)
}

// StartURL 启动时地址栏中的初始地址
// 优先使用 HomeURL，其次是 LastURL
func (sm *SettingsManager) StartURL() string {
	if sm.settings.HomeURL != "" {
		return sm.settings.HomeURL
	}
	return sm.settings.LastURL
}

func normalizeSettings(s *BrowserSettings) {
	if s.WindowWidth <= 0 {
		s.WindowWidth = defaultWindowWidth
	}
	if s.WindowHeight <= 0 {
		s.WindowHeight = defaultWindowHeight
	}
}
