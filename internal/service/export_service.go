package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/model"
	"github.com/gemini-dk/campus-calendar-web-sub000/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoOccurrences = errors.New("该课程暂无已保存的授业日程")
	ErrExportGenerateFail  = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出对象是课程已保存的授业回（先保存日程再导出）
//   - ICS 逐授业回生成全天事件，UID 复用授业回的确定性标识，
//     重复导入日历客户端时按 UID 覆盖而非重复创建
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportICS 导出课程日程为 iCalendar (.ics)
	ExportICS(ctx context.Context, courseID string) (*bytes.Buffer, string, error)
	// ExportExcel 导出课程日程为 Excel (.xlsx)
	ExportExcel(ctx context.Context, courseID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// loadCourseOccurrences 读取课程与其全部授业回（日期升序）
func (s *exportService) loadCourseOccurrences(ctx context.Context, courseID string) (*model.Course, []model.ClassOccurrence, error) {
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Error(err))
		return nil, nil, err
	}

	occurrences, err := s.repo.ClassOccurrence.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("查询课程日程失败", zap.Error(err))
		return nil, nil, err
	}
	if len(occurrences) == 0 {
		return nil, nil, ErrExportNoOccurrences
	}
	return course, occurrences, nil
}

// ═══════════════════════════════════════════════════════════
// ExportICS — 导出课程日程为 iCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportICS(ctx context.Context, courseID string) (*bytes.Buffer, string, error) {
	course, occurrences, err := s.loadCourseOccurrences(ctx, courseID)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//campus-calendar//schedule-export//JA")

	now := time.Now()
	for _, occ := range occurrences {
		// 授业回按全天事件导出：时限信息放入 DESCRIPTION
		event := cal.AddEvent(occ.OccurrenceID)
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(occ.Date)
		event.SetAllDayEndAt(occ.Date.AddDate(0, 0, 1))
		event.SetSummary(course.Name)
		if canonical := occ.Periods.CanonicalString(); canonical != "" {
			event.SetDescription(fmt.Sprintf("時限: %s", canonical))
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("%s_%d.ics", course.Name, course.FiscalYear)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportExcel — 导出课程日程为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet，标题行 + 表头（回 / 日付 / 曜日 / 時限）
//   - 每行一个授业回，按日期升序

func (s *exportService) ExportExcel(ctx context.Context, courseID string) (*bytes.Buffer, string, error) {
	course, occurrences, err := s.loadCourseOccurrences(ctx, courseID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "授業日程"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 8)
	f.SetColWidth(sheetName, "D", "D", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — 授業日程（%d年度）", course.Name, course.FiscalYear))
	f.MergeCell(sheetName, "A1", "D1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	f.SetCellValue(sheetName, cell("A", 2), "回")
	f.SetCellValue(sheetName, cell("B", 2), "日付")
	f.SetCellValue(sheetName, cell("C", 2), "曜日")
	f.SetCellValue(sheetName, cell("D", 2), "時限")

	// 数据行
	row := 3
	for i, occ := range occurrences {
		f.SetCellValue(sheetName, cell("A", row), i+1)
		f.SetCellValue(sheetName, cell("B", row), occ.Date.Format(model.DateLayout))
		f.SetCellValue(sheetName, cell("C", row), model.WeekdayLabel(occ.Date.Weekday()))
		f.SetCellValue(sheetName, cell("D", row), occ.Periods.CanonicalString())
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("授業日程_%s.xlsx", course.Name)
	return buf, filename, nil
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
