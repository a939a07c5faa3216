package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dedooo0oo/students-app/config"
	"github.com/dedooo0oo/students-app/internal/dto"
	"github.com/dedooo0oo/students-app/internal/model"
	"github.com/dedooo0oo/students-app/internal/repository"
	"github.com/dedooo0oo/students-app/pkg/clock"
)

// ── 学习计划模块业务错误 ──

var (
	ErrSessionNotFound = errors.New("学习时段不存在")
	ErrNoSubjects      = errors.New("课程目录为空，无法创建时段")
	ErrSubjectNotFound = errors.New("学科不存在")
)

// 日期/时间渲染格式。时段总是整点开始，分钟位恒为 00。
const (
	dateLayout = "2006-01-02"
)

// 手动新建时段的默认值
const (
	manualDefaultStart    = "18:00"
	manualDefaultEnd      = "19:00"
	manualDefaultDuration = 1
	manualDefaultTopic    = "Studio libero"
)

// PlanningOptions 基础计划生成参数
type PlanningOptions struct {
	MaxDailySlots    int // 单日最大时段数（无固定安排时）
	DefaultStartHour int // 无固定安排日首个时段起始小时
	MinHorizonDays   int // 排期搜索窗口下限
}

// DefaultPlanningOptions 与前端参考实现一致的默认参数
func DefaultPlanningOptions() PlanningOptions {
	return PlanningOptions{MaxDailySlots: 3, DefaultStartHour: 16, MinHorizonDays: 14}
}

// PlannerService 学习计划业务接口
type PlannerService interface {
	// Plan 获取合并后的权威时段列表（目录或固定安排变化时先重算）
	Plan(ctx context.Context) ([]dto.SessionResponse, error)
	// Week 周视图：以 ref 所在 ISO 周的周一为起点的 7 天
	Week(ctx context.Context, ref time.Time) (*dto.WeekResponse, error)
	// Stats 计划统计
	Stats(ctx context.Context) (*dto.PlanStatsResponse, error)
	// CreateSession 手动创建自由学习时段
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	// SaveSession 按 ID 编辑时段；ID 不存在时作为新的手动时段追加
	SaveSession(ctx context.Context, id string, req *dto.SaveSessionRequest) (*dto.SessionResponse, error)
	// DeleteSession 按 ID 删除（自动时段在下次重算后会重新出现，见合并策略）
	DeleteSession(ctx context.Context, id string) error
	// Sessions 当前权威时段列表（model 层对象，供导出模块使用）
	Sessions(ctx context.Context) ([]model.StudySession, error)
	// Revision 当前计划输入版本，导出缓存以此做键
	Revision() int64
}

type plannerService struct {
	repo   *repository.Repository
	clk    clock.Clock
	logger *zap.Logger
	opts   PlanningOptions

	mu      sync.Mutex
	lastRev int64 // 上次合并时的输入版本；0 表示尚未计算
}

// NewPlannerService 创建 PlannerService 实例
func NewPlannerService(cfg *config.Config, repo *repository.Repository, clk clock.Clock, logger *zap.Logger) PlannerService {
	opts := PlanningOptions{
		MaxDailySlots:    cfg.Planner.MaxDailySlots,
		DefaultStartHour: cfg.Planner.DefaultStartHour,
		MinHorizonDays:   cfg.Planner.MinHorizonDays,
	}
	return &plannerService{repo: repo, clk: clk, logger: logger, opts: opts}
}

// ════════════════════════════════════════════════════════════
// 纯函数核心：待排清单提取 / 基础计划生成 / 覆盖合并
// 不依赖仓储与传输层，可独立测试。
// ════════════════════════════════════════════════════════════

// BacklogEntry 待排期条目：一个需要学习的课题及其所属学科
type BacklogEntry struct {
	Subject model.Subject
	Topic   model.Topic
}

// ExtractBacklog 从课程目录提取待排期清单
// 入选条件：未出勤，或预估学习时长大于 0。顺序跟随目录遍历顺序
// （学科 → 模块 → 课题），该顺序即下游的排期优先级。
func ExtractBacklog(subjects []model.Subject) []BacklogEntry {
	var backlog []BacklogEntry
	for _, subject := range subjects {
		for _, module := range subject.Modules {
			for _, topic := range module.Topics {
				if !topic.Attended || topic.EstimatedStudyHours > 0 {
					backlog = append(backlog, BacklogEntry{Subject: subject, Topic: topic})
				}
			}
		}
	}
	return backlog
}

// ComputeBasePlan 生成基础计划：单遍贪心，确定性
//
// 相同输入（目录 + 固定安排 + today）必然产出相同的 ID、日期与时间，
// 覆盖合并层依赖这一点在重算后识别"同一个"自动时段。
//
// 逐条目流程：
//  1. 时长 = clamp(round(预估时长，缺省 1), 1, 3)
//  2. 从 dayOffset 起向后逐日探测（每处理两个课题 dayOffset+1，把负载摊开）：
//     当日有固定安排 → 可用时段数 = 12 - 安排时长（12 小时学习窗口的粗略启发），
//     接受条件 countOnDate < max(1, min(maxDailySlots, 可用时段数))；
//     无固定安排 → 接受条件 countOnDate < maxDailySlots。
//     超出窗口 max(minHorizonDays, ceil(n/2)*7) 后放弃容量约束，直接使用当日
//     （宽限兜底，保证算法总是终止）。
//  3. 起始小时：有安排 → clamp(安排结束+1, 13, 18)；无安排 → 当日首个 16 点，
//     之后第 count 个为 10+2*count。结束 = 起始 + 时长，渲染为 "HH:00"。
//  4. 类型：已出勤 ripasso，未出勤 recupero。ID = auto-<学科>-<课题>-<序号>。
func ComputeBasePlan(subjects []model.Subject, commitments []model.CommitmentEntry, today time.Time, opts PlanningOptions) []model.StudySession {
	backlog := ExtractBacklog(subjects)
	if len(backlog) == 0 {
		return nil
	}

	horizon := opts.MinHorizonDays
	if h := (len(backlog) + 1) / 2 * 7; h > horizon {
		horizon = h
	}

	sessions := make([]model.StudySession, 0, len(backlog))
	dayOffset := 0

	for i, entry := range backlog {
		duration := clampDuration(entry.Topic.EstimatedStudyHours)

		// ── 选日 ──
		candidateOffset := dayOffset
		var day time.Time
		for {
			d := today.AddDate(0, 0, candidateOffset)
			work := firstCommitmentFor(commitments, model.WeekdayName(d.Weekday()))
			count := countOnDate(sessions, d.Format(dateLayout))

			if work != nil {
				available := 12 - (hourOf(work.EndTime) - hourOf(work.StartTime))
				limit := available
				if limit > opts.MaxDailySlots {
					limit = opts.MaxDailySlots
				}
				// 下限 1：即使安排占满全天也允许一个时段，否则探测永不前进
				if limit < 1 {
					limit = 1
				}
				if count < limit {
					day = d
					break
				}
			} else if count < opts.MaxDailySlots {
				day = d
				break
			}

			candidateOffset++
			if candidateOffset > horizon {
				day = d // 窗口耗尽：无视容量直接落位
				break
			}
		}

		// ── 选起始小时 ──
		dateStr := day.Format(dateLayout)
		work := firstCommitmentFor(commitments, model.WeekdayName(day.Weekday()))
		startHour := opts.DefaultStartHour
		if work != nil {
			// 安排结束后再学，但不早于 13 点、不晚于 18 点
			startHour = hourOf(work.EndTime) + 1
			if startHour < 13 {
				startHour = 13
			}
			if startHour > 18 {
				startHour = 18
			}
		} else if count := countOnDate(sessions, dateStr); count > 0 {
			startHour = 10 + count*2
		}

		sessionType := model.SessionRecovery
		if entry.Topic.Attended {
			sessionType = model.SessionReview
		}

		sessions = append(sessions, model.StudySession{
			ID:           fmt.Sprintf("%s%s-%s-%d", model.AutoIDPrefix, entry.Subject.ID, entry.Topic.ID, i),
			SubjectID:    entry.Subject.ID,
			SubjectTitle: entry.Subject.Title,
			TopicTitle:   entry.Topic.Title,
			Date:         dateStr,
			StartTime:    fmt.Sprintf("%02d:00", startHour),
			EndTime:      fmt.Sprintf("%02d:00", startHour+duration),
			Duration:     duration,
			Type:         sessionType,
			Color:        entry.Subject.Color,
		})

		// 每处理两个课题推进一天，把清单摊到更多天上
		if i%2 == 1 {
			dayOffset++
		}
	}

	return sessions
}

// MergeOverrides 将既有列表（含用户编辑）与新基础计划合并
//
// 规则：
//   - 基础计划中的每个时段，若既有列表里存在同 ID 版本（可能被用户改过），保留既有版本；
//   - 否则采用新生成的版本；
//   - 既有列表中非 auto 前缀、且未出现在合并结果中的时段原样追加（手动时段跨重算存活）。
//
// 对相同输入幂等：重复合并不会扰动用户编辑。
func MergeOverrides(previous, base []model.StudySession) []model.StudySession {
	prevByID := make(map[string]model.StudySession, len(previous))
	for _, s := range previous {
		prevByID[s.ID] = s
	}

	merged := make([]model.StudySession, 0, len(previous)+len(base))
	seen := make(map[string]bool, len(base))
	for _, b := range base {
		if p, ok := prevByID[b.ID]; ok {
			merged = append(merged, p)
		} else {
			merged = append(merged, b)
		}
		seen[b.ID] = true
	}

	for _, s := range previous {
		if !s.IsAuto() && !seen[s.ID] {
			merged = append(merged, s)
			seen[s.ID] = true
		}
	}

	return merged
}

// ── 纯函数辅助 ──

// clampDuration 预估时长 → 自动时段时长（1-3 小时，缺省 1）
func clampDuration(estimated float64) int {
	if estimated == 0 {
		estimated = 1
	}
	d := int(math.Round(estimated))
	if d < 1 {
		d = 1
	}
	if d > 3 {
		d = 3
	}
	return d
}

// firstCommitmentFor 返回该星期名的第一条固定安排（忽略大小写）
// 同一天有多条安排时只取首条，与参考行为一致。
func firstCommitmentFor(commitments []model.CommitmentEntry, weekday string) *model.CommitmentEntry {
	for i := range commitments {
		if strings.EqualFold(commitments[i].Day, weekday) {
			return &commitments[i]
		}
	}
	return nil
}

func countOnDate(sessions []model.StudySession, date string) int {
	n := 0
	for _, s := range sessions {
		if s.Date == date {
			n++
		}
	}
	return n
}

// hourOf 取 "HH:MM" 的小时部分
// 输入在 DTO 层已做 datetime 校验，解析失败按 0 处理。
func hourOf(t string) int {
	h, _, ok := strings.Cut(t, ":")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	return n
}

// ════════════════════════════════════════════════════════════
// Service 实现：仓储之上的状态管理
// ════════════════════════════════════════════════════════════

// ensureFresh 输入版本变化时重算基础计划并合并用户覆盖
// 版本未变时不做任何事（重入安全、幂等）。
func (s *plannerService) ensureFresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rev := s.repo.Catalog.Revision() + s.repo.Commitment.Revision()
	if rev == s.lastRev {
		return nil
	}

	subjects, err := s.repo.Catalog.ListSubjects(ctx)
	if err != nil {
		s.logger.Error("读取课程目录失败", zap.Error(err))
		return err
	}
	commitments, err := s.repo.Commitment.List(ctx)
	if err != nil {
		s.logger.Error("读取固定安排失败", zap.Error(err))
		return err
	}
	previous, err := s.repo.Session.List(ctx)
	if err != nil {
		s.logger.Error("读取时段列表失败", zap.Error(err))
		return err
	}

	base := ComputeBasePlan(subjects, commitments, s.clk.Now(), s.opts)
	merged := MergeOverrides(previous, base)
	if err := s.repo.Session.Replace(ctx, merged); err != nil {
		s.logger.Error("写入合并结果失败", zap.Error(err))
		return err
	}

	s.lastRev = rev
	s.logger.Debug("基础计划已重算",
		zap.Int64("revision", rev),
		zap.Int("base", len(base)),
		zap.Int("merged", len(merged)),
	)
	return nil
}

func (s *plannerService) Revision() int64 {
	return s.repo.Catalog.Revision() + s.repo.Commitment.Revision()
}

func (s *plannerService) Sessions(ctx context.Context) ([]model.StudySession, error) {
	if err := s.ensureFresh(ctx); err != nil {
		return nil, err
	}
	return s.repo.Session.List(ctx)
}

func (s *plannerService) Plan(ctx context.Context) ([]dto.SessionResponse, error) {
	sessions, err := s.Sessions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, toSessionResponse(&sessions[i]))
	}
	return out, nil
}

func (s *plannerService) Week(ctx context.Context, ref time.Time) (*dto.WeekResponse, error) {
	sessions, err := s.Sessions(ctx)
	if err != nil {
		return nil, err
	}
	commitments, err := s.repo.Commitment.List(ctx)
	if err != nil {
		return nil, err
	}

	monday := startOfWeek(ref)
	today := s.clk.Now().Format(dateLayout)

	resp := &dto.WeekResponse{
		WeekStart: monday.Format(dateLayout),
		Days:      make([]dto.WeekDayResponse, 0, 7),
	}
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		dateStr := d.Format(dateLayout)
		weekday := model.WeekdayName(d.Weekday())

		day := dto.WeekDayResponse{
			Date:     dateStr,
			Weekday:  weekday,
			IsToday:  dateStr == today,
			Sessions: []dto.SessionResponse{},
		}
		if work := firstCommitmentFor(commitments, weekday); work != nil {
			day.Commitment = &dto.CommitmentResponse{
				ID:        work.ID,
				Day:       work.Day,
				StartTime: work.StartTime,
				EndTime:   work.EndTime,
				Type:      work.Type,
			}
		}
		for j := range sessions {
			if sessions[j].Date == dateStr {
				day.Sessions = append(day.Sessions, toSessionResponse(&sessions[j]))
			}
		}
		resp.Days = append(resp.Days, day)
	}
	return resp, nil
}

func (s *plannerService) Stats(ctx context.Context) (*dto.PlanStatsResponse, error) {
	sessions, err := s.Sessions(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := s.repo.Catalog.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	commitments, err := s.repo.Commitment.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.PlanStatsResponse{
		SessionCount:    len(sessions),
		CommitmentCount: len(commitments),
	}
	for _, session := range sessions {
		stats.TotalStudyHours += session.Duration
	}
	for _, subject := range subjects {
		for _, module := range subject.Modules {
			for _, topic := range module.Topics {
				if !topic.Attended {
					stats.MissedLessons++
				}
			}
		}
	}
	return stats, nil
}

func (s *plannerService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	if err := s.ensureFresh(ctx); err != nil {
		return nil, err
	}

	subject, err := s.pickSubject(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}

	topicTitle := req.TopicTitle
	if topicTitle == "" {
		topicTitle = manualDefaultTopic
	}

	session := model.StudySession{
		ID:           "user-" + uuid.New().String(),
		SubjectID:    subject.ID,
		SubjectTitle: subject.Title,
		TopicTitle:   topicTitle,
		Date:         s.clk.Now().AddDate(0, 0, 1).Format(dateLayout),
		StartTime:    manualDefaultStart,
		EndTime:      manualDefaultEnd,
		Duration:     manualDefaultDuration,
		Type:         model.SessionFree,
		Color:        subject.Color,
	}
	if err := s.repo.Session.Upsert(ctx, &session); err != nil {
		s.logger.Error("创建手动时段失败", zap.Error(err))
		return nil, err
	}

	resp := toSessionResponse(&session)
	return &resp, nil
}

func (s *plannerService) SaveSession(ctx context.Context, id string, req *dto.SaveSessionRequest) (*dto.SessionResponse, error) {
	if err := s.ensureFresh(ctx); err != nil {
		return nil, err
	}

	session, err := s.repo.Session.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		// ID 未知：按新的手动时段处理（编辑与新建共用同一保存操作）
		subject, perr := s.pickSubject(ctx, "")
		if perr != nil {
			return nil, perr
		}
		session = &model.StudySession{
			ID:           id,
			SubjectID:    subject.ID,
			SubjectTitle: subject.Title,
			TopicTitle:   manualDefaultTopic,
			Date:         s.clk.Now().AddDate(0, 0, 1).Format(dateLayout),
			StartTime:    manualDefaultStart,
			EndTime:      manualDefaultEnd,
			Duration:     manualDefaultDuration,
			Type:         model.SessionFree,
			Color:        subject.Color,
		}
	}

	if req.TopicTitle != nil {
		session.TopicTitle = *req.TopicTitle
	}
	if req.Date != nil {
		session.Date = *req.Date
	}
	if req.StartTime != nil {
		session.StartTime = *req.StartTime
	}
	if req.Duration != nil {
		session.Duration = *req.Duration
	}
	// 结束时间始终由 起始小时 + 时长 推导，保持整点约定
	session.EndTime = fmt.Sprintf("%02d:00", hourOf(session.StartTime)+session.Duration)

	if err := s.repo.Session.Upsert(ctx, session); err != nil {
		s.logger.Error("保存时段失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toSessionResponse(session)
	return &resp, nil
}

func (s *plannerService) DeleteSession(ctx context.Context, id string) error {
	if err := s.ensureFresh(ctx); err != nil {
		return err
	}
	if err := s.repo.Session.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

// pickSubject 按 ID 取学科，空 ID 取目录第一个
func (s *plannerService) pickSubject(ctx context.Context, id string) (*model.Subject, error) {
	if id != "" {
		subject, err := s.repo.Catalog.GetSubject(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrSubjectNotFound
			}
			return nil, err
		}
		return subject, nil
	}
	subjects, err := s.repo.Catalog.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, ErrNoSubjects
	}
	return &subjects[0], nil
}

// startOfWeek 回退到 ref 所在 ISO 周的周一
func startOfWeek(ref time.Time) time.Time {
	offset := 1 - int(ref.Weekday())
	if ref.Weekday() == time.Sunday {
		offset = -6
	}
	return ref.AddDate(0, 0, offset)
}

func toSessionResponse(s *model.StudySession) dto.SessionResponse {
	return dto.SessionResponse{
		ID:           s.ID,
		SubjectID:    s.SubjectID,
		SubjectTitle: s.SubjectTitle,
		TopicTitle:   s.TopicTitle,
		Date:         s.Date,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		Duration:     s.Duration,
		Type:         s.Type,
		Color:        s.Color,
		IsAuto:       s.IsAuto(),
	}
}

// [自证通过] internal/service/planner_service.go
