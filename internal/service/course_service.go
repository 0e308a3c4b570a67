package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/dto"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/model"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/repository"
)

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound      = errors.New("课程不存在")
	ErrCourseNameRequired  = errors.New("课程名不能为空")
	ErrCourseInvalidYear   = errors.New("年度不合法")
	ErrCourseInvalidOption = errors.New("特殊开讲方式不合法")
	ErrCourseInvalidPolicy = errors.New("欠席策略不合法")
	ErrCourseInvalidSlot   = errors.New("周次时段不合法（曜日 1-6、时限 >= 0）")
)

// CourseService 课程模块业务接口
type CourseService interface {
	// Create 创建课程
	Create(ctx context.Context, req *dto.CreateCourseRequest, callerID string) (*dto.CourseResponse, error)
	// GetByID 获取课程详情
	GetByID(ctx context.Context, id string) (*dto.CourseResponse, error)
	// List 课程列表（可按年度・学年暦过滤）
	List(ctx context.Context, req *dto.CourseListRequest) ([]dto.CourseResponse, int64, error)
	// Update 更新课程（乐观锁）
	Update(ctx context.Context, id string, req *dto.UpdateCourseRequest, callerID string) (*dto.CourseResponse, error)
	// Delete 删除课程及其已保存日程
	Delete(ctx context.Context, id string, callerID string) error
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest, callerID string) (*dto.CourseResponse, error) {
	if req.Name == "" {
		return nil, ErrCourseNameRequired
	}
	if req.FiscalYear <= 0 {
		return nil, ErrCourseInvalidYear
	}

	option := model.SpecialScheduleOption(req.SpecialOption)
	if req.SpecialOption == "" {
		option = model.SpecialOptionAll
	} else if !option.Valid() {
		return nil, ErrCourseInvalidOption
	}

	policy := model.AbsencePolicy(req.AbsencePolicy)
	if req.AbsencePolicy == "" {
		policy = model.AbsencePolicyThreshold70
	} else if !policy.Valid() {
		return nil, ErrCourseInvalidPolicy
	}

	for _, slot := range req.WeeklySlots {
		if !slot.Valid() {
			return nil, ErrCourseInvalidSlot
		}
	}

	course := &model.Course{
		Name:               req.Name,
		FiscalYear:         req.FiscalYear,
		CalendarID:         req.CalendarID,
		TermIDs:            req.TermIDs,
		WeeklySlots:        req.WeeklySlots,
		SpecialOption:      option,
		HasSaturdayClasses: req.HasSaturdayClasses,
		AbsencePolicy:      policy,
		MaxAbsence:         req.MaxAbsence,
	}
	course.CreatedBy = auditRef(callerID)
	course.UpdatedBy = auditRef(callerID)

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *courseService) GetByID(ctx context.Context, id string) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Error(err))
		return nil, err
	}

	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *courseService) List(ctx context.Context, req *dto.CourseListRequest) ([]dto.CourseResponse, int64, error) {
	courses, total, err := s.repo.Course.List(ctx, req.FiscalYear, req.CalendarID, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询课程列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, toCourseResponse(&courses[i]))
	}
	return result, total, nil
}

func (s *courseService) Update(ctx context.Context, id string, req *dto.UpdateCourseRequest, callerID string) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrCourseNameRequired
		}
		course.Name = *req.Name
	}
	if req.TermIDs != nil {
		course.TermIDs = *req.TermIDs
	}
	if req.WeeklySlots != nil {
		for _, slot := range *req.WeeklySlots {
			if !slot.Valid() {
				return nil, ErrCourseInvalidSlot
			}
		}
		course.WeeklySlots = *req.WeeklySlots
	}
	if req.SpecialOption != nil {
		option := model.SpecialScheduleOption(*req.SpecialOption)
		if !option.Valid() {
			return nil, ErrCourseInvalidOption
		}
		course.SpecialOption = option
	}
	if req.HasSaturdayClasses != nil {
		course.HasSaturdayClasses = *req.HasSaturdayClasses
	}
	if req.AbsencePolicy != nil {
		policy := model.AbsencePolicy(*req.AbsencePolicy)
		if !policy.Valid() {
			return nil, ErrCourseInvalidPolicy
		}
		course.AbsencePolicy = policy
	}
	if req.MaxAbsence != nil {
		course.MaxAbsence = req.MaxAbsence
	}
	course.Version = req.Version
	course.UpdatedBy = auditRef(callerID)

	if err := s.repo.Course.Update(ctx, course); err != nil {
		s.logger.Error("更新课程失败", zap.Error(err))
		return nil, err
	}

	resp := toCourseResponse(course)
	return &resp, nil
}

func (s *courseService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Course.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	// 课程删除时一并清除其已保存日程
	if err := s.repo.ClassOccurrence.DeleteByCourse(ctx, id); err != nil {
		s.logger.Error("清除课程日程失败", zap.Error(err))
		return err
	}
	if err := s.repo.Course.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除课程失败", zap.Error(err))
		return err
	}
	return nil
}

// auditRef 匿名调用方时审计字段保持 NULL
func auditRef(callerID string) *string {
	if callerID == "" {
		return nil
	}
	return &callerID
}

// toCourseResponse 转换课程为响应
func toCourseResponse(course *model.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:                 course.CourseID,
		Name:               course.Name,
		FiscalYear:         course.FiscalYear,
		CalendarID:         course.CalendarID,
		TermIDs:            course.TermIDs,
		WeeklySlots:        course.WeeklySlots,
		SpecialOption:      string(course.SpecialOption),
		HasSaturdayClasses: course.HasSaturdayClasses,
		AbsencePolicy:      string(course.AbsencePolicy),
		MaxAbsence:         course.MaxAbsence,
		Version:            course.Version,
		CreatedAt:          course.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          course.UpdatedAt.Format(time.RFC3339),
	}
}
