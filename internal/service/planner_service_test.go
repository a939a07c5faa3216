package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dedooo0oo/students-app/config"
	"github.com/dedooo0oo/students-app/internal/dto"
	"github.com/dedooo0oo/students-app/internal/model"
	"github.com/dedooo0oo/students-app/internal/repository"
	"github.com/dedooo0oo/students-app/pkg/clock"
)

// 固定锚点：2026-03-02 为周一
var testToday = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Planner: config.PlannerConfig{
			MaxDailySlots:    3,
			DefaultStartHour: 16,
			MinHorizonDays:   14,
		},
		Export: config.ExportConfig{CacheTTL: time.Minute},
	}
}

func makeTopic(id string, attended bool, hours float64) model.Topic {
	return model.Topic{ID: id, Title: "Argomento " + id, Attended: attended, EstimatedStudyHours: hours}
}

func makeSubject(id, title string, topics ...model.Topic) model.Subject {
	return model.Subject{
		ID:    id,
		Title: title,
		Color: "bg-blue-500",
		Modules: []model.Module{
			{ID: id + "-mod1", Title: "Modulo 1", Topics: topics},
		},
	}
}

func newTestPlanner(subjects []model.Subject, commitments []model.CommitmentEntry) (PlannerService, *repository.Repository) {
	repo := repository.NewRepository(subjects, commitments, nil, nil, nil)
	svc := NewPlannerService(testConfig(), repo, clock.Fixed{T: testToday}, zap.NewNop())
	return svc, repo
}

// ── 纯函数：待排清单提取 ──

func TestExtractBacklog(t *testing.T) {
	subjects := []model.Subject{
		makeSubject("s1", "Materia 1",
			makeTopic("t1", false, 2), // 未出勤 → 入选
			makeTopic("t2", true, 3),  // 已出勤但有预估时长 → 入选
			makeTopic("t3", true, 0),  // 已出勤且无预估时长 → 排除
		),
	}

	backlog := ExtractBacklog(subjects)
	if len(backlog) != 2 {
		t.Fatalf("期望待排条目 2，实际 %d", len(backlog))
	}
	if backlog[0].Topic.ID != "t1" || backlog[1].Topic.ID != "t2" {
		t.Errorf("待排顺序错误: %s, %s", backlog[0].Topic.ID, backlog[1].Topic.ID)
	}
}

func TestExtractBacklogEmpty(t *testing.T) {
	if got := ExtractBacklog(nil); got != nil {
		t.Errorf("空目录应返回 nil，实际 %v", got)
	}
}

// ── 纯函数：基础计划生成 ──

func TestComputeBasePlanNoCommitments(t *testing.T) {
	subjects := []model.Subject{
		makeSubject("s1", "Materia 1",
			makeTopic("t1", false, 0),
			makeTopic("t2", false, 0),
			makeTopic("t3", false, 0),
			makeTopic("t4", false, 0),
		),
	}

	sessions := ComputeBasePlan(subjects, nil, testToday, DefaultPlanningOptions())
	if len(sessions) != 4 {
		t.Fatalf("期望时段 4，实际 %d", len(sessions))
	}

	expected := []struct {
		id    string
		date  string
		start string
		end   string
	}{
		{"auto-s1-t1-0", "2026-03-02", "16:00", "17:00"},
		{"auto-s1-t2-1", "2026-03-02", "12:00", "13:00"},
		{"auto-s1-t3-2", "2026-03-03", "16:00", "17:00"},
		{"auto-s1-t4-3", "2026-03-03", "12:00", "13:00"},
	}
	for i, want := range expected {
		got := sessions[i]
		if got.ID != want.id {
			t.Errorf("第 %d 个时段 ID 期望 %s，实际 %s", i, want.id, got.ID)
		}
		if got.Date != want.date || got.StartTime != want.start || got.EndTime != want.end {
			t.Errorf("第 %d 个时段 期望 %s %s-%s，实际 %s %s-%s",
				i, want.date, want.start, want.end, got.Date, got.StartTime, got.EndTime)
		}
	}
}

func TestComputeBasePlanStartAfterCommitment(t *testing.T) {
	subjects := []model.Subject{
		makeSubject("s1", "Materia 1", makeTopic("t1", false, 2)),
	}
	commitments := []model.CommitmentEntry{
		{ID: "w-1", Day: "Lunedì", StartTime: "09:00", EndTime: "13:00", Type: model.CommitmentWork},
	}

	sessions := ComputeBasePlan(subjects, commitments, testToday, DefaultPlanningOptions())
	if len(sessions) != 1 {
		t.Fatalf("期望时段 1，实际 %d", len(sessions))
	}
	// 安排 13:00 结束 → 14:00 开始，时长 2 → 16:00 结束
	if sessions[0].StartTime != "14:00" || sessions[0].EndTime != "16:00" {
		t.Errorf("期望 14:00-16:00，实际 %s-%s", sessions[0].StartTime, sessions[0].EndTime)
	}
	if sessions[0].Date != "2026-03-02" {
		t.Errorf("期望排在当天，实际 %s", sessions[0].Date)
	}
}

func TestComputeBasePlanStartHourClamped(t *testing.T) {
	tests := []struct {
		name      string
		end       string
		wantStart string
	}{
		{"安排很早结束时不早于 13 点", "08:00", "13:00"},
		{"安排 17 点结束时 18 点开始", "17:00", "18:00"},
		{"安排很晚结束时不晚于 18 点", "19:00", "18:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subjects := []model.Subject{
				makeSubject("s1", "Materia 1", makeTopic("t1", false, 1)),
			}
			commitments := []model.CommitmentEntry{
				{ID: "w-1", Day: "Lunedì", StartTime: "06:00", EndTime: tt.end, Type: model.CommitmentWork},
			}
			sessions := ComputeBasePlan(subjects, commitments, testToday, DefaultPlanningOptions())
			if len(sessions) != 1 {
				t.Fatalf("期望时段 1，实际 %d", len(sessions))
			}
			if sessions[0].StartTime != tt.wantStart {
				t.Errorf("期望起始 %s，实际 %s", tt.wantStart, sessions[0].StartTime)
			}
		})
	}
}

func TestComputeBasePlanSessionType(t *testing.T) {
	subjects := []model.Subject{
		makeSubject("s1", "Materia 1",
			makeTopic("t1", false, 1), // 未出勤 → recupero
			makeTopic("t2", true, 2),  // 已出勤 → ripasso
		),
	}

	sessions := ComputeBasePlan(subjects, nil, testToday, DefaultPlanningOptions())
	if len(sessions) != 2 {
		t.Fatalf("期望时段 2，实际 %d", len(sessions))
	}
	if sessions[0].Type != model.SessionRecovery {
		t.Errorf("未出勤课题期望 %s，实际 %s", model.SessionRecovery, sessions[0].Type)
	}
	if sessions[1].Type != model.SessionReview {
		t.Errorf("已出勤课题期望 %s，实际 %s", model.SessionReview, sessions[1].Type)
	}
}

func TestComputeBasePlanDailyCap(t *testing.T) {
	var topics []model.Topic
	for i := 0; i < 9; i++ {
		topics = append(topics, makeTopic("t"+string(rune('1'+i)), false, 1))
	}
	subjects := []model.Subject{makeSubject("s1", "Materia 1", topics...)}

	sessions := ComputeBasePlan(subjects, nil, testToday, DefaultPlanningOptions())
	perDay := make(map[string]int)
	for _, s := range sessions {
		perDay[s.Date]++
	}
	for date, n := range perDay {
		if n > 3 {
			t.Errorf("日期 %s 排了 %d 个时段，超过单日上限 3", date, n)
		}
	}
}

func TestComputeBasePlanDeterministic(t *testing.T) {
	subjects := []model.Subject{
		makeSubject("s1", "Materia 1",
			makeTopic("t1", false, 2),
			makeTopic("t2", true, 1.5),
			makeTopic("t3", false, 0),
		),
	}
	commitments := []model.CommitmentEntry{
		{ID: "w-1", Day: "Mercoledì", StartTime: "14:00", EndTime: "18:00", Type: model.CommitmentWork},
	}

	a := ComputeBasePlan(subjects, commitments, testToday, DefaultPlanningOptions())
	b := ComputeBasePlan(subjects, commitments, testToday, DefaultPlanningOptions())
	if len(a) != len(b) {
		t.Fatalf("两次生成数量不一致: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("第 %d 个时段不一致: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestClampDuration(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 1},   // 缺省 1
		{0.4, 1}, // 下限 1
		{1, 1},
		{2.5, 3}, // 四舍五入
		{3, 3},
		{8, 3}, // 上限 3
	}
	for _, tt := range tests {
		if got := clampDuration(tt.in); got != tt.want {
			t.Errorf("clampDuration(%v) 期望 %d，实际 %d", tt.in, tt.want, got)
		}
	}
}

// ── 纯函数：覆盖合并 ──

func TestMergeOverridesKeepsEdits(t *testing.T) {
	base := []model.StudySession{
		{ID: "auto-s1-t1-0", Date: "2026-03-02", StartTime: "16:00"},
		{ID: "auto-s1-t2-1", Date: "2026-03-02", StartTime: "12:00"},
	}
	previous := []model.StudySession{
		{ID: "auto-s1-t1-0", Date: "2026-03-05", StartTime: "10:00"}, // 用户改过
		{ID: "user-abc", Date: "2026-03-04", StartTime: "18:00"},     // 手动时段
	}

	merged := MergeOverrides(previous, base)
	if len(merged) != 3 {
		t.Fatalf("期望合并后 3 个时段，实际 %d", len(merged))
	}
	if merged[0].Date != "2026-03-05" || merged[0].StartTime != "10:00" {
		t.Errorf("用户编辑未保留: %+v", merged[0])
	}
	if merged[1].ID != "auto-s1-t2-1" {
		t.Errorf("新自动时段未采用: %+v", merged[1])
	}
	if merged[2].ID != "user-abc" {
		t.Errorf("手动时段未存活: %+v", merged[2])
	}
}

func TestMergeOverridesIdempotent(t *testing.T) {
	base := []model.StudySession{
		{ID: "auto-s1-t1-0", Date: "2026-03-02"},
	}
	previous := []model.StudySession{
		{ID: "auto-s1-t1-0", Date: "2026-03-09"},
		{ID: "user-abc", Date: "2026-03-04"},
	}

	once := MergeOverrides(previous, base)
	twice := MergeOverrides(once, base)
	if len(once) != len(twice) {
		t.Fatalf("重复合并数量变化: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("重复合并第 %d 个时段被扰动: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestMergeOverridesDeletedAutoReappears(t *testing.T) {
	base := []model.StudySession{
		{ID: "auto-s1-t1-0", Date: "2026-03-02"},
	}
	// 用户删除了该自动时段（previous 为空）
	merged := MergeOverrides(nil, base)
	if len(merged) != 1 || merged[0].ID != "auto-s1-t1-0" {
		t.Errorf("被删除的自动时段重算后应重新出现: %+v", merged)
	}
}

// ── Service 层 ──

func TestPlannerServicePlanIdempotent(t *testing.T) {
	svc, _ := newTestPlanner([]model.Subject{
		makeSubject("s1", "Materia 1",
			makeTopic("t1", false, 2),
			makeTopic("t2", false, 1),
		),
	}, nil)

	first, err := svc.Plan(context.Background())
	if err != nil {
		t.Fatalf("Plan 失败: %v", err)
	}
	second, err := svc.Plan(context.Background())
	if err != nil {
		t.Fatalf("第二次 Plan 失败: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("重复读取数量变化: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("第 %d 个时段不稳定: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestPlannerServiceEditSurvivesRecompute(t *testing.T) {
	svc, repo := newTestPlanner([]model.Subject{
		makeSubject("s1", "Materia 1", makeTopic("t1", false, 1)),
	}, nil)

	ctx := context.Background()
	plan, err := svc.Plan(ctx)
	if err != nil {
		t.Fatalf("Plan 失败: %v", err)
	}
	if len(plan) != 1 {
		t.Fatalf("期望时段 1，实际 %d", len(plan))
	}

	title := "Ripasso personalizzato"
	if _, err := svc.SaveSession(ctx, plan[0].ID, &dto.SaveSessionRequest{TopicTitle: &title}); err != nil {
		t.Fatalf("SaveSession 失败: %v", err)
	}

	// 固定安排变化 → 输入版本推进 → 下次读取触发重算
	if err := repo.Commitment.Create(ctx, &model.CommitmentEntry{
		ID: "w-x", Day: "Giovedì", StartTime: "09:00", EndTime: "11:00", Type: model.CommitmentWork,
	}); err != nil {
		t.Fatalf("创建固定安排失败: %v", err)
	}

	after, err := svc.Plan(ctx)
	if err != nil {
		t.Fatalf("重算后 Plan 失败: %v", err)
	}
	found := false
	for _, s := range after {
		if s.ID == plan[0].ID {
			found = true
			if s.TopicTitle != title {
				t.Errorf("重算后用户编辑丢失: %s", s.TopicTitle)
			}
		}
	}
	if !found {
		t.Errorf("重算后原时段消失: %s", plan[0].ID)
	}
}

func TestPlannerServiceCreateSession(t *testing.T) {
	svc, _ := newTestPlanner([]model.Subject{
		makeSubject("s1", "Materia 1", makeTopic("t1", true, 0)),
	}, nil)

	ctx := context.Background()
	session, err := svc.CreateSession(ctx, &dto.CreateSessionRequest{})
	if err != nil {
		t.Fatalf("CreateSession 失败: %v", err)
	}
	if session.IsAuto {
		t.Error("手动时段不应标记为自动")
	}
	if session.Date != "2026-03-03" {
		t.Errorf("期望默认排在明天 2026-03-03，实际 %s", session.Date)
	}
	if session.StartTime != "18:00" || session.EndTime != "19:00" || session.Duration != 1 {
		t.Errorf("默认时间错误: %s-%s (%dh)", session.StartTime, session.EndTime, session.Duration)
	}
	if session.Type != model.SessionFree {
		t.Errorf("期望类型 %s，实际 %s", model.SessionFree, session.Type)
	}
	if session.SubjectID != "s1" {
		t.Errorf("未指定学科时应取目录第一个，实际 %s", session.SubjectID)
	}
}

func TestPlannerServiceCreateSessionUnknownSubject(t *testing.T) {
	svc, _ := newTestPlanner([]model.Subject{
		makeSubject("s1", "Materia 1", makeTopic("t1", true, 0)),
	}, nil)

	_, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{SubjectID: "ghost"})
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("期望 ErrSubjectNotFound，实际 %v", err)
	}
}

func TestPlannerServiceSaveSessionUnknownIDCreatesManual(t *testing.T) {
	svc, _ := newTestPlanner([]model.Subject{
		makeSubject("s1", "Materia 1", makeTopic("t1", true, 0)),
	}, nil)

	ctx := context.Background()
	start := "09:00"
	duration := 2
	session, err := svc.SaveSession(ctx, "user-nuovo", &dto.SaveSessionRequest{
		StartTime: &start,
		Duration:  &duration,
	})
	if err != nil {
		t.Fatalf("SaveSession 失败: %v", err)
	}
	if session.ID != "user-nuovo" {
		t.Errorf("期望沿用传入 ID，实际 %s", session.ID)
	}
	if session.EndTime != "11:00" {
		t.Errorf("结束时间应为起始+时长: 期望 11:00，实际 %s", session.EndTime)
	}

	plan, err := svc.Plan(ctx)
	if err != nil {
		t.Fatalf("Plan 失败: %v", err)
	}
	found := false
	for _, s := range plan {
		if s.ID == "user-nuovo" {
			found = true
		}
	}
	if !found {
		t.Error("保存的手动时段未出现在计划中")
	}
}

func TestPlannerServiceDeleteSession(t *testing.T) {
	svc, _ := newTestPlanner([]model.Subject{
		makeSubject("s1", "Materia 1", makeTopic("t1", true, 0)),
	}, nil)

	ctx := context.Background()
	session, err := svc.CreateSession(ctx, &dto.CreateSessionRequest{})
	if err != nil {
		t.Fatalf("CreateSession 失败: %v", err)
	}

	if err := svc.DeleteSession(ctx, session.ID); err != nil {
		t.Fatalf("DeleteSession 失败: %v", err)
	}
	if err := svc.DeleteSession(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("重复删除期望 ErrSessionNotFound，实际 %v", err)
	}
}

func TestPlannerServiceDeletedAutoReappearsAfterRecompute(t *testing.T) {
	svc, repo := newTestPlanner([]model.Subject{
		makeSubject("s1", "Materia 1", makeTopic("t1", false, 1)),
	}, nil)

	ctx := context.Background()
	plan, err := svc.Plan(ctx)
	if err != nil {
		t.Fatalf("Plan 失败: %v", err)
	}
	if err := svc.DeleteSession(ctx, plan[0].ID); err != nil {
		t.Fatalf("DeleteSession 失败: %v", err)
	}

	// 版本未变时保持删除状态
	mid, err := svc.Plan(ctx)
	if err != nil {
		t.Fatalf("Plan 失败: %v", err)
	}
	if len(mid) != 0 {
		t.Errorf("版本未变时被删自动时段不应回来，实际 %d 个", len(mid))
	}

	// 版本推进后自动时段按基础计划重新出现
	if err := repo.Commitment.Create(ctx, &model.CommitmentEntry{
		ID: "w-x", Day: "Sabato", StartTime: "10:00", EndTime: "12:00", Type: model.CommitmentOther,
	}); err != nil {
		t.Fatalf("创建固定安排失败: %v", err)
	}
	after, err := svc.Plan(ctx)
	if err != nil {
		t.Fatalf("Plan 失败: %v", err)
	}
	if len(after) != 1 || after[0].ID != plan[0].ID {
		t.Errorf("重算后自动时段应重新出现: %+v", after)
	}
}

func TestPlannerServiceWeek(t *testing.T) {
	svc, _ := newTestPlanner([]model.Subject{
		makeSubject("s1", "Materia 1", makeTopic("t1", false, 1)),
	}, []model.CommitmentEntry{
		{ID: "w-1", Day: "Mercoledì", StartTime: "14:00", EndTime: "18:00", Type: model.CommitmentWork},
	})

	// 以周三为参考，周起点仍应回退到周一
	week, err := svc.Week(context.Background(), time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Week 失败: %v", err)
	}
	if week.WeekStart != "2026-03-02" {
		t.Errorf("期望周起点 2026-03-02，实际 %s", week.WeekStart)
	}
	if len(week.Days) != 7 {
		t.Fatalf("期望 7 天，实际 %d", len(week.Days))
	}
	if week.Days[0].Weekday != "Lunedì" || week.Days[6].Weekday != "Domenica" {
		t.Errorf("星期名错误: %s ... %s", week.Days[0].Weekday, week.Days[6].Weekday)
	}
	if !week.Days[0].IsToday {
		t.Error("2026-03-02 应标记为今天")
	}
	if week.Days[2].Commitment == nil || week.Days[2].Commitment.ID != "w-1" {
		t.Errorf("周三的固定安排未附加: %+v", week.Days[2].Commitment)
	}
	if week.Days[3].Commitment != nil {
		t.Errorf("周四不应有固定安排: %+v", week.Days[3].Commitment)
	}
}

func TestPlannerServiceWeekSundayReference(t *testing.T) {
	svc, _ := newTestPlanner([]model.Subject{
		makeSubject("s1", "Materia 1", makeTopic("t1", true, 0)),
	}, nil)

	// 周日参考 → 回退 6 天到本周周一
	week, err := svc.Week(context.Background(), time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Week 失败: %v", err)
	}
	if week.WeekStart != "2026-03-02" {
		t.Errorf("周日参考期望周起点 2026-03-02，实际 %s", week.WeekStart)
	}
}

func TestPlannerServiceStats(t *testing.T) {
	svc, _ := newTestPlanner([]model.Subject{
		makeSubject("s1", "Materia 1",
			makeTopic("t1", false, 2), // 未出勤
			makeTopic("t2", false, 1), // 未出勤
			makeTopic("t3", true, 3),  // 已出勤
		),
	}, []model.CommitmentEntry{
		{ID: "w-1", Day: "Lunedì", StartTime: "09:00", EndTime: "13:00", Type: model.CommitmentWork},
	})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats 失败: %v", err)
	}
	if stats.SessionCount != 3 {
		t.Errorf("期望时段数 3，实际 %d", stats.SessionCount)
	}
	if stats.MissedLessons != 2 {
		t.Errorf("期望缺勤课题 2，实际 %d", stats.MissedLessons)
	}
	if stats.CommitmentCount != 1 {
		t.Errorf("期望固定安排 1，实际 %d", stats.CommitmentCount)
	}
	if stats.TotalStudyHours != 2+1+3 {
		t.Errorf("期望总时长 6，实际 %d", stats.TotalStudyHours)
	}
}

func TestPlannerServiceEmptyCatalog(t *testing.T) {
	svc, _ := newTestPlanner(nil, nil)

	plan, err := svc.Plan(context.Background())
	if err != nil {
		t.Fatalf("空目录 Plan 不应报错: %v", err)
	}
	if len(plan) != 0 {
		t.Errorf("空目录期望空计划，实际 %d 个时段", len(plan))
	}

	_, err = svc.CreateSession(context.Background(), &dto.CreateSessionRequest{})
	if !errors.Is(err, ErrNoSubjects) {
		t.Errorf("空目录创建时段期望 ErrNoSubjects，实际 %v", err)
	}
}

// [自证通过] internal/service/planner_service_test.go
