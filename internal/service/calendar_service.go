package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/calendarstore"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/dto"
)

// ── 日历模块业务错误 ──

var ErrCalendarInvalidMonth = errors.New("月份格式不合法（yyyy-mm）")

// monthLayout 月历视图的月份参数格式
const monthLayout = "2006-01"

// SnapshotStore 日历模块依赖的数据源能力（快照读取 + 缓存失效）
type SnapshotStore interface {
	calendarstore.Store
	Invalidate(ctx context.Context, fiscalYear int, calendarID string) error
}

// CalendarService 日历显示模块业务接口
type CalendarService interface {
	// MonthView 计算整月逐日的渲染描述
	MonthView(ctx context.Context, req *dto.MonthViewRequest) (*dto.MonthViewResponse, error)
	// ListTerms 列出学年暦的全部学期（按 Order 升序）
	ListTerms(ctx context.Context, fiscalYear int, calendarID string) ([]dto.TermResponse, error)
	// InvalidateSnapshot 整体失效快照缓存（学年暦数据更新后调用）
	InvalidateSnapshot(ctx context.Context, fiscalYear int, calendarID string) error
}

type calendarService struct {
	store  SnapshotStore
	logger *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(store SnapshotStore, logger *zap.Logger) CalendarService {
	return &calendarService{store: store, logger: logger}
}

func (s *calendarService) MonthView(ctx context.Context, req *dto.MonthViewRequest) (*dto.MonthViewResponse, error) {
	first, err := time.Parse(monthLayout, req.Month)
	if err != nil {
		return nil, ErrCalendarInvalidMonth
	}

	snapshot, err := s.store.FetchSnapshot(ctx, req.FiscalYear, req.CalendarID)
	if err != nil {
		s.logger.Error("学年暦快照获取失败",
			zap.Int("fiscal_year", req.FiscalYear),
			zap.String("calendar_id", req.CalendarID),
			zap.Error(err))
		return nil, err
	}

	resp := &dto.MonthViewResponse{Month: req.Month}
	for cur := first; cur.Month() == first.Month(); cur = cur.AddDate(0, 0, 1) {
		dateStr := cur.Format("2006-01-02")
		day := snapshot.DayByDate(dateStr)
		resp.Days = append(resp.Days, dto.MonthViewDay{
			Date:    dateStr,
			Display: ComputeDisplay(cur, day, snapshot.Terms, req.HasSaturdayClasses),
		})
	}
	return resp, nil
}

func (s *calendarService) ListTerms(ctx context.Context, fiscalYear int, calendarID string) ([]dto.TermResponse, error) {
	snapshot, err := s.store.FetchSnapshot(ctx, fiscalYear, calendarID)
	if err != nil {
		s.logger.Error("学年暦快照获取失败",
			zap.Int("fiscal_year", fiscalYear),
			zap.String("calendar_id", calendarID),
			zap.Error(err))
		return nil, err
	}

	result := make([]dto.TermResponse, 0, len(snapshot.Terms))
	for _, t := range snapshot.Terms {
		result = append(result, dto.TermResponse{
			ID:              t.TermID,
			Name:            t.Name,
			ShortName:       t.ShortName,
			Order:           t.Order,
			HolidayFlag:     t.HolidayFlag,
			IsInstructional: t.IsInstructional(),
		})
	}
	return result, nil
}

func (s *calendarService) InvalidateSnapshot(ctx context.Context, fiscalYear int, calendarID string) error {
	if err := s.store.Invalidate(ctx, fiscalYear, calendarID); err != nil {
		s.logger.Error("快照缓存失效失败",
			zap.Int("fiscal_year", fiscalYear),
			zap.String("calendar_id", calendarID),
			zap.Error(err))
		return err
	}
	return nil
}
