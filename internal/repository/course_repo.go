package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/model"
	apperrors "github.com/gemini-dk/campus-calendar-web-sub000/pkg/errors"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id string) (*model.Course, error)
	List(ctx context.Context, fiscalYear int, calendarID string, offset, limit int) ([]model.Course, int64, error)
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("course_id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context, fiscalYear int, calendarID string, offset, limit int) ([]model.Course, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Course{})
	if fiscalYear > 0 {
		query = query.Where("fiscal_year = ?", fiscalYear)
	}
	if calendarID != "" {
		query = query.Where("calendar_id = ?", calendarID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []model.Course
	err := query.
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&courses).Error
	return courses, total, err
}

// Update 乐观锁更新：version 不一致时返回 ErrOptimisticLock
func (r *courseRepo) Update(ctx context.Context, course *model.Course) error {
	currentVersion := course.Version
	course.Version = currentVersion + 1

	result := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("course_id = ? AND version = ?", course.CourseID, currentVersion).
		Select("*").
		Omit("course_id", "created_at", "created_by").
		Updates(course)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}
	return nil
}

func (r *courseRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	updates := map[string]interface{}{
		"deleted_at": gorm.Expr("NOW()"),
	}
	// 匿名调用方不写审计字段（uuid 列不接受空串）
	if deletedBy != "" {
		updates["deleted_by"] = deletedBy
	}
	return r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("course_id = ?", id).
		Updates(updates).Error
}
