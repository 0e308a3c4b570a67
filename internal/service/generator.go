package service

import (
	"sort"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/model"
)

// ════════════════════════════════════════════════════════════
// 授业日程生成核心（纯函数，无副作用）
// ════════════════════════════════════════════════════════════
//
// 由学年暦快照 + 周次时段选择 + 特殊开讲方式，生成去重后的具体授业日列表。
// 流程：
//   1. 过滤：type=class_day、所属学期命中（ID 优先、名称兜底）、曜日可解析
//   2. 按授业曜日（1-6）分组，组内按日期升序
//   3. 特殊开讲方式按曜日组独立生效（先于跨时段合并）
//   4. 逐时段匹配：period=0（OD）匹配该曜日全部授业回；
//      非零 period 仅匹配 classOrder 相等的记录，无记录时限的授业日宽容放行
//   5. 跨时段、跨学期合并为 日期 → 时限集合，输出按日期升序
// 任何输入组合都不报错；学期或时段为空时输出为空列表。

// GenerateClassDates 生成一门课程的全部授业日
func GenerateClassDates(
	days []model.Day,
	terms []model.Term,
	termIDs []string,
	slots []model.WeeklySlot,
	option model.SpecialScheduleOption,
) []model.GeneratedClassDate {
	if len(termIDs) == 0 || len(slots) == 0 {
		return []model.GeneratedClassDate{}
	}

	// 选中学期的 ID 集合与名称集合。
	// 旧数据中的 Day 可能没有 termId 只有 termName，
	// 名称兜底匹配是有意为之的宽容策略，不是待修的缺陷。
	selectedIDs := make(map[string]bool, len(termIDs))
	for _, id := range termIDs {
		selectedIDs[id] = true
	}
	selectedNames := make(map[string]bool, len(termIDs))
	for _, t := range terms {
		if selectedIDs[t.TermID] && t.Name != "" {
			selectedNames[t.Name] = true
		}
	}

	// 1+2. 过滤并按授业曜日分组（1=月 .. 6=土）
	groups := make(map[model.ClassWeekday][]model.Day)
	for _, day := range days {
		if day.Type != model.DayTypeClass {
			continue
		}
		if !selectedIDs[day.TermID] && !(day.TermName != "" && selectedNames[day.TermName]) {
			continue
		}
		wd, ok := day.ResolveClassWeekday()
		if !ok || wd < model.ClassWeekdayMonday || wd > model.ClassWeekdaySaturday {
			continue
		}
		groups[wd] = append(groups[wd], day)
	}
	for wd := range groups {
		group := groups[wd]
		sort.Slice(group, func(i, j int) bool { return group[i].Date < group[j].Date })
		// 3. 节奏过滤按曜日组独立生效
		groups[wd] = applyCadence(group, option)
	}

	// 4+5. 逐时段匹配并合并
	merged := make(map[string]map[int]bool)
	for _, slot := range slots {
		if !slot.Valid() {
			continue
		}
		for _, day := range groups[model.ClassWeekday(slot.DayOfWeek)] {
			if slot.Period != model.PeriodOnDemand &&
				day.ClassOrder != nil && *day.ClassOrder != slot.Period {
				continue
			}
			set, ok := merged[day.Date]
			if !ok {
				set = make(map[int]bool)
				merged[day.Date] = set
			}
			set[slot.Period] = true
		}
	}

	// 输出按日期升序；时限按固定规则排序（数字升序、OD 最后）
	dates := make([]string, 0, len(merged))
	for date := range merged {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	result := make([]model.GeneratedClassDate, 0, len(dates))
	for _, date := range dates {
		periods := make(model.PeriodList, 0, len(merged[date]))
		for p := range merged[date] {
			periods = append(periods, p)
		}
		result = append(result, model.GeneratedClassDate{
			Date:    date,
			Periods: periods.Normalized(),
		})
	}
	return result
}

// applyCadence 特殊开讲方式的节奏过滤（对单个曜日组）
//   - all:         原样
//   - first_half:  前 ceil(n/2) 回
//   - second_half: 自 floor(n/2) 起的剩余部分
//   - odd_weeks:   1 起算的奇数回
//   - even_weeks:  1 起算的偶数回
func applyCadence(group []model.Day, option model.SpecialScheduleOption) []model.Day {
	n := len(group)
	switch option {
	case model.SpecialOptionFirstHalf:
		return group[:(n+1)/2]
	case model.SpecialOptionSecondHalf:
		return group[n/2:]
	case model.SpecialOptionOddWeeks:
		out := make([]model.Day, 0, (n+1)/2)
		for i := 0; i < n; i += 2 {
			out = append(out, group[i])
		}
		return out
	case model.SpecialOptionEvenWeeks:
		out := make([]model.Day, 0, n/2)
		for i := 1; i < n; i += 2 {
			out = append(out, group[i])
		}
		return out
	default:
		return group
	}
}
