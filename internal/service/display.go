package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/dto"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/model"
)

// ════════════════════════════════════════════════════════════
// 日历显示计算核心（纯函数，无副作用）
// ════════════════════════════════════════════════════════════
//
// 注意两套曜日约定的边界：
//   - 历法曜日（time.Weekday, 0=日..6=土）决定强调色与背景
//   - 授业曜日（model.ClassWeekday, 1=月..7=日）是学年暦记录的语义，
//     曜日振替日两者会不一致，绝不能混用

// dayClassification 日种别的归一化分类结果
type dayClassification int

const (
	classifyOther dayClassification = iota
	classifyClass
	classifyHoliday
	classifyExam
	classifyReserve
)

// classificationKeywords 旧数据自由文本的关键词分类表（日英混在）
var classificationKeywords = []struct {
	class    dayClassification
	keywords []string
}{
	{classifyExam, []string{"試験", "テスト", "exam", "test"}},
	{classifyReserve, []string{"予備", "reserve"}},
	{classifyHoliday, []string{"休講", "休業", "休み", "祝日", "holiday", "cancel"}},
	{classifyClass, []string{"授業", "class"}},
}

// classifyDayType 归一化日种别：标准枚举直接映射，旧自由文本做关键词匹配
func classifyDayType(t model.DayType) dayClassification {
	switch t {
	case model.DayTypeClass:
		return classifyClass
	case model.DayTypeExam:
		return classifyExam
	case model.DayTypeReserve:
		return classifyReserve
	case model.DayTypeCancelled:
		return classifyHoliday
	case model.DayTypeUnspecified:
		return classifyOther
	}

	raw := strings.ToLower(string(t))
	for _, entry := range classificationKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(raw, kw) {
				return entry.class
			}
		}
	}
	return classifyOther
}

// 异常日的默认补足说明（记录有自由文本说明时优先显示说明）
const (
	subLabelMakeupClass    = "特別授業日"
	subLabelSpecialCancel  = "特別休講日"
	subLabelWeekdaySwapped = "曜日振替"
)

// ComputeDisplay 计算单个日期的渲染描述。
// day 为 nil 表示学年暦中无该日记录，仅按历法曜日着色。
func ComputeDisplay(date time.Time, day *model.Day, terms []model.Term, hasSaturdayClasses bool) dto.DisplayDescriptor {
	actualWeekday := date.Weekday()

	desc := dto.DisplayDescriptor{
		DateLabel:       strconv.Itoa(date.Day()),
		AccentColor:     dto.AccentDefault,
		WeekdayLabel:    model.WeekdayLabel(actualWeekday),
		BackgroundClass: dto.BackgroundNone,
	}

	// 该机构不开土曜课时，土曜按非授业日处理（着色与授业字段抑制共用此判定）
	nonInstructional := actualWeekday == time.Sunday ||
		(actualWeekday == time.Saturday && !hasSaturdayClasses)

	// ── 强调色 ──
	isNationalHoliday := day != nil && day.NationalHolidayName != ""
	switch {
	case isNationalHoliday || actualWeekday == time.Sunday:
		desc.AccentColor = dto.AccentHoliday
	case actualWeekday == time.Saturday:
		desc.AccentColor = dto.AccentSaturday
	}

	// ── 背景（无记录时仅反映曜日） ──
	if nonInstructional {
		desc.BackgroundClass = dto.BackgroundSunday
	}

	if day == nil {
		return desc
	}

	// ── 学期解析：ID 优先，名称兜底（旧数据宽容策略） ──
	term := resolveTerm(day, terms)

	termName := day.TermName
	termShortName := day.TermShortName
	if term != nil {
		termName = term.Name
		termShortName = term.DisplayShortName()
	}
	if termShortName == "" {
		termShortName = termName
	}

	classification := classifyDayType(day.Type)
	// 祝日记录在旧数据中种别常为空，按休講归类
	if isNationalHoliday && classification == classifyOther {
		classification = classifyHoliday
	}

	// ── 背景 ──
	if !nonInstructional {
		switch classification {
		case classifyHoliday:
			desc.BackgroundClass = dto.BackgroundHoliday
		case classifyExam:
			desc.BackgroundClass = dto.BackgroundExam
		case classifyReserve:
			desc.BackgroundClass = dto.BackgroundReserve
		}
	}

	// 非授业日上由管理端误登录的授业记录，授业语义（标签・曜日・时限）整体抑制
	suppressClass := classification == classifyClass && nonInstructional

	// ── 学术标签 ──
	if term != nil && !term.IsInstructional() {
		// 休业期间（春休・夏休等）只显示学期名
		desc.AcademicLabel = term.Name
	} else {
		switch classification {
		case classifyExam:
			desc.AcademicLabel = termName + "試験"
		case classifyHoliday:
			desc.AcademicLabel = termName + "休講"
		case classifyReserve:
			desc.AcademicLabel = termName + "予備日"
		case classifyClass:
			if suppressClass {
				// 被抑制的授业记录退化为普通记录，只显示学期名
				desc.AcademicLabel = termName
			} else {
				desc.AcademicLabel = termShortName
			}
		default:
			desc.AcademicLabel = termName
		}
	}

	// ── 授业字段：仅授业日且当日确实开课时输出 ──
	if classification == classifyClass && !suppressClass {
		if day.ClassWeekday != nil {
			wd := int(*day.ClassWeekday)
			desc.EffectiveWeekday = &wd
		}
		if day.ClassOrder != nil {
			order := *day.ClassOrder
			desc.EffectivePeriod = &order
		}
	}

	// ── 补足说明：异常日检出 ──
	desc.SubLabel = anomalySubLabel(date, day, classification)

	return desc
}

// resolveTerm 按 ID 查找学期，失败时按名称兜底
func resolveTerm(day *model.Day, terms []model.Term) *model.Term {
	for i := range terms {
		if day.TermID != "" && terms[i].TermID == day.TermID {
			return &terms[i]
		}
	}
	for i := range terms {
		if day.TermName != "" && terms[i].Name == day.TermName {
			return &terms[i]
		}
	}
	return nil
}

// anomalySubLabel 检出三类异常日并返回补足说明：
//   - 授业日但显式标记祝日 → 特別授業日（祝日补课）
//   - 休講日但显式标记非祝日 → 特別休講日（临时停课）
//   - 授业曜日与历法曜日不一致 → 曜日振替
//
// 记录中存有自由文本说明时优先返回说明原文。
func anomalySubLabel(date time.Time, day *model.Day, classification dayClassification) *string {
	var canned string
	switch {
	case classification == classifyClass && day.IsHoliday != nil && *day.IsHoliday:
		canned = subLabelMakeupClass
	case classification == classifyHoliday && day.IsHoliday != nil && !*day.IsHoliday:
		canned = subLabelSpecialCancel
	case classification == classifyClass && day.ClassWeekday != nil &&
		*day.ClassWeekday != model.ClassWeekdayOf(date):
		canned = subLabelWeekdaySwapped
	default:
		return nil
	}

	if day.Description != "" {
		return &day.Description
	}
	return &canned
}
