package utils

// Easing / 动画插值辅助函数
//
// 控件动画每帧从上一帧的值向目标值逼近，
// 以下函数均为纯函数，不持有任何状态。

// Clamp01 将值限制在 [0, 1] 范围内
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach 指数平滑逼近目标值
// 公式：current += (target - current) * deltaTime * rate
//
// 步进系数 deltaTime*rate 被限制在 [0, 1]：
// 帧间隔过大时直接落在目标值上，不会越过目标；负的 deltaTime 视为 0。
func Approach(current, target, deltaTime, rate float64) float64 {
	t := Clamp01(deltaTime * rate)
	if t == 1 {
		return target
	}
	return Lerp(current, target, t)
}

// StepToward 以固定速度线性逼近目标值，不越过目标
// 用于归一化计时器（如悬停颜色计时器）
func StepToward(current, target, deltaTime, rate float64) float64 {
	step := deltaTime * rate
	if step <= 0 {
		return current
	}
	if current < target {
		current += step
		if current > target {
			current = target
		}
		return current
	}
	current -= step
	if current < target {
		current = target
	}
	return current
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}
