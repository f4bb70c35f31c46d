package utils

import (
	"strings"
	"unicode"
)

// MeasureFunc 返回文本宽度（像素）
type MeasureFunc func(str string) float64

// WrapText 将单行文本按最大宽度换行
//
// 参数：
//   - str: 要换行的文本（不含换行符）
//   - measure: 宽度测量函数
//   - maxWidth: 最大宽度（像素）
//
// 返回：
//   - []string: 换行后的每一行，至少包含一个元素
//
// 换行规则：优先在最后一个空白处断行，单词本身超宽时按字符强制断行
func WrapText(str string, measure MeasureFunc, maxWidth float64) []string {
	if str == "" || measure == nil || maxWidth <= 0 || measure(str) <= maxWidth {
		return []string{str}
	}

	var lines []string
	var current []rune
	lastSpace := -1

	for _, r := range str {
		candidate := append(current, r)
		if measure(string(candidate)) <= maxWidth || len(current) == 0 {
			current = candidate
			if unicode.IsSpace(r) {
				lastSpace = len(current) - 1
			}
			continue
		}

		// 溢出的字符本身是空白时直接在此断行
		if unicode.IsSpace(r) {
			lines = append(lines, strings.TrimRightFunc(string(current), unicode.IsSpace))
			current = current[:0]
			lastSpace = -1
			continue
		}

		if lastSpace > 0 {
			lines = append(lines, strings.TrimRightFunc(string(current[:lastSpace]), unicode.IsSpace))
			current = append([]rune(nil), current[lastSpace+1:]...)
		} else {
			lines = append(lines, string(current))
			current = current[:0]
		}
		lastSpace = -1
		current = append(current, r)
	}

	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}
