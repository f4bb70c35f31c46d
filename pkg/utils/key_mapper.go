package utils

import "github.com/hajimehoshi/ebiten/v2"

// KeyPressedFunc 查询某个物理按键本帧是否刚刚按下
type KeyPressedFunc func(key ebiten.Key) bool

// TextPolicy 文本输入限制
type TextPolicy struct {
	// MaxLength 最大字符数（按 rune 计算）
	MaxLength int
	// SpacesAllowed 是否允许输入空格
	SpacesAllowed bool
}

// keyMapping 单个按键到字符的映射
// Shifted 为按住 Shift 时产生的字符，与 Normal 相同表示不受 Shift 影响
type keyMapping struct {
	Key     ebiten.Key
	Normal  rune
	Shifted rune
	// spaceOnly 标记此按键受 TextPolicy.SpacesAllowed 控制
	spaceOnly bool
}

// keyMappings 按键映射表，顺序即解析优先级：
// 字母 A-Z → 空格 → 数字 → 标点（. / -）→ 分号
// 同一帧多个按键同时按下时，只取第一个匹配
var keyMappings = buildKeyMappings()

// letterKeys 字母键 A-Z（ebiten.Key 常量不保证连续，逐个列出）
var letterKeys = [26]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF,
	ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL,
	ebiten.KeyM, ebiten.KeyN, ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR,
	ebiten.KeyS, ebiten.KeyT, ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX,
	ebiten.KeyY, ebiten.KeyZ,
}

func buildKeyMappings() []keyMapping {
	mappings := make([]keyMapping, 0, 26+1+10+4)

	for i, key := range letterKeys {
		mappings = append(mappings, keyMapping{
			Key:     key,
			Normal:  rune('a' + i),
			Shifted: rune('A' + i),
		})
	}

	mappings = append(mappings, keyMapping{Key: ebiten.KeySpace, Normal: ' ', Shifted: ' ', spaceOnly: true})

	// 数字顺序 1-9 然后 0（键盘排列顺序）
	digits := []struct {
		key ebiten.Key
		ch  rune
	}{
		{ebiten.KeyDigit1, '1'},
		{ebiten.KeyDigit2, '2'},
		{ebiten.KeyDigit3, '3'},
		{ebiten.KeyDigit4, '4'},
		{ebiten.KeyDigit5, '5'},
		{ebiten.KeyDigit6, '6'},
		{ebiten.KeyDigit7, '7'},
		{ebiten.KeyDigit8, '8'},
		{ebiten.KeyDigit9, '9'},
		{ebiten.KeyDigit0, '0'},
	}
	for _, d := range digits {
		mappings = append(mappings, keyMapping{Key: d.key, Normal: d.ch, Shifted: d.ch})
	}

	mappings = append(mappings,
		keyMapping{Key: ebiten.KeyPeriod, Normal: '.', Shifted: '.'},
		keyMapping{Key: ebiten.KeySlash, Normal: '/', Shifted: '/'},
		keyMapping{Key: ebiten.KeyMinus, Normal: '-', Shifted: '-'},
		keyMapping{Key: ebiten.KeySemicolon, Normal: ';', Shifted: ':'},
	)

	return mappings
}

// MappedKeys 返回所有可映射为字符的按键（按解析优先级排序）
func MappedKeys() []ebiten.Key {
	keys := make([]ebiten.Key, len(keyMappings))
	for i, m := range keyMappings {
		keys[i] = m.Key
	}
	return keys
}

// ResolveChar 根据本帧按下的按键解析出至多一个字符
//
// 参数：
//   - pressed: 查询按键是否本帧刚按下
//   - shift: Shift 是否按住
//   - spacesAllowed: 是否接受空格
//
// 返回：
//   - rune: 解析出的字符
//   - bool: 是否有字符产生（未识别的按键静默忽略）
func ResolveChar(pressed KeyPressedFunc, shift, spacesAllowed bool) (rune, bool) {
	for _, m := range keyMappings {
		if m.spaceOnly && !spacesAllowed {
			continue
		}
		if !pressed(m.Key) {
			continue
		}
		if shift {
			return m.Shifted, true
		}
		return m.Normal, true
	}
	return 0, false
}

// ApplyKeyInput 将本帧键盘输入应用到文本上，返回新文本
//
// 规则：
//   - 退格键总是生效（文本非空时删除最后一个字符）
//   - 退格之后，若长度仍小于 MaxLength，追加至多一个字符
//   - 达到 MaxLength 时新字符被静默丢弃
func ApplyKeyInput(text string, pressed KeyPressedFunc, shift bool, policy TextPolicy) string {
	runes := []rune(text)

	if pressed(ebiten.KeyBackspace) && len(runes) > 0 {
		runes = runes[:len(runes)-1]
	}

	if len(runes) >= policy.MaxLength {
		return string(runes)
	}

	if ch, ok := ResolveChar(pressed, shift, policy.SpacesAllowed); ok {
		runes = append(runes, ch)
	}

	return string(runes)
}
