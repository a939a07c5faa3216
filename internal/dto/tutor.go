package dto

// ── AI 助教模块 DTO ──

// ChatRequest 提问请求
type ChatRequest struct {
	Message   string `json:"message"    binding:"required,min=1,max=1000"`
	SubjectID string `json:"subject_id" binding:"omitempty,max=50"` // 可选：回答中引用的课程
}

// ChatResponse 回答响应
// 回答来自关键词匹配的预置文案，无真实推理。
type ChatResponse struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// [自证通过] internal/dto/tutor.go
