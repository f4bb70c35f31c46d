//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 之前确保 Android 数据目录存在并可写
// gdata 使用 /data/data/{package}/ 但不会创建子目录
func EnsureStorageDir() error {
	dir := StoragePath()
	if dir == "" {
		return fmt.Errorf("cannot detect android package name")
	}

	savesDir := filepath.Join(dir, "saves")
	if err := os.MkdirAll(savesDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", savesDir, err)
	}

	testFile := filepath.Join(savesDir, ".write_test")
	if err := os.WriteFile(testFile, nil, 0o644); err != nil {
		return fmt.Errorf("%s is not writable: %w", savesDir, err)
	}
	return os.Remove(testFile)
}

// StoragePath Android 应用数据目录，无法识别包名时返回空字符串
func StoragePath() string {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	// cmdline 以 NUL 分隔，第一段为包名
	pkg, _, _ := bytes.Cut(cmdline, []byte{0})
	pkg = bytes.TrimSpace(pkg)
	if len(pkg) == 0 {
		return ""
	}
	return filepath.Join("/data/data", string(pkg))
}
