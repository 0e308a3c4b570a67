package model

// WeeklySlot 每周固定的授业时段选择（曜日 × 时限）
// Period = 0（PeriodOnDemand）表示オンデマンド授业，匹配该曜日的全部授业时限
type WeeklySlot struct {
	DayOfWeek int `json:"day_of_week"` // 1=月 .. 6=土
	Period    int `json:"period"`      // 0=OD, 1..N=时限番号
}

// Valid 校验曜日与时限取值
func (s WeeklySlot) Valid() bool {
	return s.DayOfWeek >= int(ClassWeekdayMonday) && s.DayOfWeek <= int(ClassWeekdaySaturday) && s.Period >= 0
}

// SpecialScheduleOption 隔周・半期等特殊开讲方式（按曜日组独立生效的节奏过滤器）
type SpecialScheduleOption string

const (
	SpecialOptionAll        SpecialScheduleOption = "all"         // 毎週
	SpecialOptionFirstHalf  SpecialScheduleOption = "first_half"  // 前半のみ
	SpecialOptionSecondHalf SpecialScheduleOption = "second_half" // 後半のみ
	SpecialOptionOddWeeks   SpecialScheduleOption = "odd_weeks"   // 奇数回のみ
	SpecialOptionEvenWeeks  SpecialScheduleOption = "even_weeks"  // 偶数回のみ
)

// Valid 校验特殊开讲方式取值
func (o SpecialScheduleOption) Valid() bool {
	switch o {
	case SpecialOptionAll, SpecialOptionFirstHalf, SpecialOptionSecondHalf,
		SpecialOptionOddWeeks, SpecialOptionEvenWeeks:
		return true
	}
	return false
}

// GeneratedClassDate 日程生成结果：具体日期 + 该日上课的时限集合。
// Periods 恒为非空且已按固定规则排序；同一日期在一次生成结果中最多出现一次。
type GeneratedClassDate struct {
	Date    string     `json:"date"`
	Periods PeriodList `json:"periods"`
}
