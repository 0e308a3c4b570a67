package model

import (
	"time"

	"github.com/google/uuid"
)

// occurrenceNamespace 出席记录标识的固定命名空间（uuid v5）
var occurrenceNamespace = uuid.MustParse("8f8e4f10-3c61-4a6f-9b6e-5c1f0a2d7b44")

// ClassOccurrence 持久化的授业回记录 — 对应 class_occurrences
// 一门课程的全部记录在保存时整体替换，不做增量修补
type ClassOccurrence struct {
	OccurrenceID string     `gorm:"type:uuid;primaryKey"               json:"occurrence_id"`
	CourseID     string     `gorm:"type:uuid;not null"                 json:"course_id"`
	Date         time.Time  `gorm:"type:date;not null"                 json:"date"`
	Periods      PeriodList `gorm:"type:int[];not null"                json:"periods"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// 关联
	Course *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"course,omitempty"`
}

// TableName 指定表名
func (ClassOccurrence) TableName() string { return "class_occurrences" }

// NewOccurrenceID 由 课程ID + 日期 + 规范化时限列表 派生确定性标识。
// 相同输入重复生成必得相同 ID，保证保存操作幂等（upsert 而非重复创建）。
func NewOccurrenceID(courseID, date string, periods PeriodList) string {
	name := courseID + "|" + date + "|" + periods.CanonicalString()
	return uuid.NewSHA1(occurrenceNamespace, []byte(name)).String()
}

// NewClassOccurrence 由生成结果构造持久化记录
func NewClassOccurrence(courseID string, gen GeneratedClassDate) (ClassOccurrence, error) {
	t, err := time.Parse(DateLayout, gen.Date)
	if err != nil {
		return ClassOccurrence{}, err
	}
	norm := gen.Periods.Normalized()
	return ClassOccurrence{
		OccurrenceID: NewOccurrenceID(courseID, gen.Date, norm),
		CourseID:     courseID,
		Date:         t,
		Periods:      norm,
	}, nil
}
