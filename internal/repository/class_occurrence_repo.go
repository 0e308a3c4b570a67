package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/model"
)

// ClassOccurrenceRepository 授业回数据访问接口
type ClassOccurrenceRepository interface {
	// ReplaceByCourse 在单个事务内整体替换一门课程的授业回集合。
	// 要么全部写入成功，要么保持原状，不会出现半更新的日程。
	ReplaceByCourse(ctx context.Context, courseID string, occurrences []model.ClassOccurrence) error
	ListByCourse(ctx context.Context, courseID string) ([]model.ClassOccurrence, error)
	CountByCourse(ctx context.Context, courseID string) (int64, error)
	DeleteByCourse(ctx context.Context, courseID string) error
}

type classOccurrenceRepo struct {
	db *gorm.DB
}

// NewClassOccurrenceRepo 创建 ClassOccurrenceRepository 实例
func NewClassOccurrenceRepo(db *gorm.DB) ClassOccurrenceRepository {
	return &classOccurrenceRepo{db: db}
}

func (r *classOccurrenceRepo) ReplaceByCourse(ctx context.Context, courseID string, occurrences []model.ClassOccurrence) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("course_id = ?", courseID).
			Delete(&model.ClassOccurrence{}).Error; err != nil {
			return err
		}
		if len(occurrences) == 0 {
			return nil
		}
		return tx.CreateInBatches(occurrences, 200).Error
	})
}

func (r *classOccurrenceRepo) ListByCourse(ctx context.Context, courseID string) ([]model.ClassOccurrence, error) {
	var occurrences []model.ClassOccurrence
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("date ASC").
		Find(&occurrences).Error
	return occurrences, err
}

func (r *classOccurrenceRepo) CountByCourse(ctx context.Context, courseID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ClassOccurrence{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

func (r *classOccurrenceRepo) DeleteByCourse(ctx context.Context, courseID string) error {
	return r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&model.ClassOccurrence{}).Error
}
