package model

import "strings"

// ── 学习时段 ──

// 时段类型
const (
	SessionFree     = "studio"   // 用户自建的自由学习
	SessionRecovery = "recupero" // 补课（课题未出勤）
	SessionReview   = "ripasso"  // 复习（课题已出勤）
)

// AutoIDPrefix 系统生成时段的 ID 前缀
// 格式: auto-<subjectID>-<topicID>-<序号>。相同输入重新生成会得到相同 ID，
// 覆盖合并层据此在重算后识别"同一个"自动时段。
const AutoIDPrefix = "auto-"

// StudySession 某课题的一次具体学习安排
type StudySession struct {
	ID           string `json:"id"`
	SubjectID    string `json:"subject_id"`
	SubjectTitle string `json:"subject_title"` // 生成时从学科冗余拷贝
	TopicTitle   string `json:"topic_title"`
	Date         string `json:"date"`       // ISO 日期 "2006-01-02"
	StartTime    string `json:"start_time"` // "HH:MM"，整点
	EndTime      string `json:"end_time"`
	Duration     int    `json:"duration"` // 小时
	Type         string `json:"type"`     // studio | recupero | ripasso
	Color        string `json:"color"`
}

// IsAuto 是否为系统生成时段
// 非 auto 前缀的时段由用户创建，重算基础计划时无条件保留。
func (s *StudySession) IsAuto() bool {
	return strings.HasPrefix(s.ID, AutoIDPrefix)
}

// [自证通过] internal/model/session.go
