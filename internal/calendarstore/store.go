package calendarstore

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/gemini-dk/campus-calendar-web-sub000/config"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/model"
)

// ErrDataFetch 学年暦数据源不可达或读取失败。
// 上层在此错误下绝不使用部分数据或陈旧数据继续生成日程。
var ErrDataFetch = errors.New("学年暦数据获取失败")

// Snapshot 一份 (年度, 学年暦ID) 的只读快照
// Terms 按 Order 升序、Days 按日期升序排列；取得后不再修改
type Snapshot struct {
	FiscalYear int          `json:"fiscal_year"`
	CalendarID string       `json:"calendar_id"`
	Terms      []model.Term `json:"terms"`
	Days       []model.Day  `json:"days"`
}

// TermByID 按 ID 查找学期；找不到时返回 nil
func (s *Snapshot) TermByID(id string) *model.Term {
	for i := range s.Terms {
		if s.Terms[i].TermID == id {
			return &s.Terms[i]
		}
	}
	return nil
}

// DayByDate 按日期（yyyy-mm-dd）查找记录；找不到时返回 nil
func (s *Snapshot) DayByDate(date string) *model.Day {
	for i := range s.Days {
		if s.Days[i].Date == date {
			return &s.Days[i]
		}
	}
	return nil
}

// Store 学年暦数据源接口（外部协作方）
type Store interface {
	// FetchSnapshot 拉取一份完整快照；失败时返回 ErrDataFetch 链
	FetchSnapshot(ctx context.Context, fiscalYear int, calendarID string) (*Snapshot, error)
}

// ════════════════════════════════════════════════════════════
// Firestore 实现
// ════════════════════════════════════════════════════════════

type firestoreStore struct {
	client *firestore.Client
	logger *zap.Logger
}

// NewFirestoreStore 初始化 Firebase App 并建立 Firestore 连接
func NewFirestoreStore(ctx context.Context, cfg *config.FirebaseConfig, logger *zap.Logger) (Store, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("初始化 Firebase App 失败: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取 Firestore 客户端失败: %w", err)
	}

	logger.Info("Firestore 连接成功", zap.String("project_id", cfg.ProjectID))

	return &firestoreStore{client: client, logger: logger}, nil
}

// calendarPath (年度, 学年暦ID) 对应的文档路径前缀
func calendarPath(calendarID string, fiscalYear int) string {
	return fmt.Sprintf("academic_calendars/%s/years/%d", calendarID, fiscalYear)
}

func (s *firestoreStore) FetchSnapshot(ctx context.Context, fiscalYear int, calendarID string) (*Snapshot, error) {
	base := calendarPath(calendarID, fiscalYear)

	terms, err := s.fetchTerms(ctx, base+"/terms")
	if err != nil {
		s.logger.Error("学期读取失败", zap.Error(err), zap.String("calendar_id", calendarID))
		return nil, fmt.Errorf("%w: %v", ErrDataFetch, err)
	}

	days, err := s.fetchDays(ctx, base+"/days")
	if err != nil {
		s.logger.Error("学年暦日读取失败", zap.Error(err), zap.String("calendar_id", calendarID))
		return nil, fmt.Errorf("%w: %v", ErrDataFetch, err)
	}

	sort.Slice(terms, func(i, j int) bool { return terms[i].Order < terms[j].Order })
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return &Snapshot{
		FiscalYear: fiscalYear,
		CalendarID: calendarID,
		Terms:      terms,
		Days:       days,
	}, nil
}

func (s *firestoreStore) fetchTerms(ctx context.Context, path string) ([]model.Term, error) {
	iter := s.client.Collection(path).Documents(ctx)
	defer iter.Stop()

	var terms []model.Term
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		terms = append(terms, NormalizeTermDoc(doc.Ref.ID, doc.Data()))
	}
	return terms, nil
}

func (s *firestoreStore) fetchDays(ctx context.Context, path string) ([]model.Day, error) {
	iter := s.client.Collection(path).Documents(ctx)
	defer iter.Stop()

	var days []model.Day
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		normalized, err := NormalizeDayDoc(doc.Ref.ID, doc.Data())
		if err != nil {
			// 单条旧数据异常不致命，记录后跳过
			s.logger.Warn("学年暦日记录格式异常，已跳过",
				zap.String("doc_id", doc.Ref.ID), zap.Error(err))
			continue
		}
		days = append(days, normalized...)
	}
	return days, nil
}

// Close 关闭 Firestore 连接
func (s *firestoreStore) Close() error {
	return s.client.Close()
}
