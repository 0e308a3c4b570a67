package service

import "github.com/gemini-dk/campus-calendar-web-sub000/internal/model"

// 欠席上限推算历史上存在两种口径，且旧数据两者混用，
// 因此两种都以命名策略实现、由课程配置选择，不做静默猜测：
//   - threshold70: 出席率 70% 阈值的补数（当前默认）
//       threshold = ceil(total * 0.7)
//       recommended = clamp(total - threshold, 0, total)
//   - flat33: 固定系数 floor(total * 0.33)（历史遗留口径）

// RecommendedMaxAbsence 按指定策略推算推荐欠席上限。
// totalSessions <= 0 时恒为 0；未知策略按默认策略处理。
func RecommendedMaxAbsence(policy model.AbsencePolicy, totalSessions int) int {
	if totalSessions <= 0 {
		return 0
	}

	var recommended int
	switch policy {
	case model.AbsencePolicyFlat33:
		recommended = totalSessions * 33 / 100
	default: // threshold70
		threshold := (totalSessions*7 + 9) / 10 // ceil(total * 0.7)
		recommended = totalSessions - threshold
	}

	if recommended < 0 {
		return 0
	}
	if recommended > totalSessions {
		return totalSessions
	}
	return recommended
}
