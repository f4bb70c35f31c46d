//go:build !mobile

// 普通构建时提供空的 Dummy 函数，移动端代码在 mobile.go 中
package mobile

// Dummy 空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
